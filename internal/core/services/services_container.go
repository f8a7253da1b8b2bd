package services

import (
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Invoice:    NewInvoiceService(repos.InvoiceRepo),
		Payment:    NewPaymentService(repos.PaymentRepo),
		Credit:     NewCreditService(repos.CreditRepo),
		Expense:    NewExpenseService(repos.ExpenseRepo),
		Income:     NewIncomeService(repos.IncomeRepo),
		Dictionary: NewDictionaryService(),
		Overdue:    NewOverdueService(repos.InvoiceRepo),
	}
}
