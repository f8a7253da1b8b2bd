package services

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/schema"
	"github.com/SscSPs/ledgerbook/internal/dto"
)

// NewInvoiceService creates the invoice record service.
func NewInvoiceService(repo portsrepo.InvoiceRepositoryFacade) portssvc.EntitySvcFacade[dto.InvoiceResponse] {
	return NewSerializingEntityService[domain.Invoice, domain.CreateInvoiceInput, domain.UpdateInvoiceInput, dto.InvoiceResponse](
		repo, schema.Invoice, dto.ToInvoiceResponse, WithResourceName("invoices"))
}

// NewPaymentService creates the payment record service.
func NewPaymentService(repo portsrepo.PaymentRepositoryFacade) portssvc.EntitySvcFacade[dto.PaymentResponse] {
	return NewSerializingEntityService[domain.Payment, domain.CreatePaymentInput, domain.UpdatePaymentInput, dto.PaymentResponse](
		repo, schema.Payment, dto.ToPaymentResponse, WithResourceName("payments"))
}

// NewCreditService creates the credit record service.
func NewCreditService(repo portsrepo.CreditRepositoryFacade) portssvc.EntitySvcFacade[dto.CreditResponse] {
	return NewSerializingEntityService[domain.Credit, domain.CreateCreditInput, domain.UpdateCreditInput, dto.CreditResponse](
		repo, schema.Credit, dto.ToCreditResponse, WithResourceName("credits"))
}

// NewExpenseService creates the expense record service.
func NewExpenseService(repo portsrepo.ExpenseRepositoryFacade) portssvc.EntitySvcFacade[dto.ExpenseResponse] {
	return NewSerializingEntityService[domain.Expense, domain.CreateExpenseInput, domain.UpdateExpenseInput, dto.ExpenseResponse](
		repo, schema.Expense, dto.ToExpenseResponse, WithResourceName("expenses"))
}

// NewIncomeService creates the income record service.
func NewIncomeService(repo portsrepo.IncomeRepositoryFacade) portssvc.EntitySvcFacade[dto.IncomeResponse] {
	return NewSerializingEntityService[domain.Income, domain.CreateIncomeInput, domain.UpdateIncomeInput, dto.IncomeResponse](
		repo, schema.Income, dto.ToIncomeResponse, WithResourceName("incomes"))
}
