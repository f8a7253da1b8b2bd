package services

import "github.com/SscSPs/ledgerbook/internal/dto"

// ServiceContainer holds instances of all the application services.
// Handlers, the sweeper and the seed command all go through it.
type ServiceContainer struct {
	Invoice    EntitySvcFacade[dto.InvoiceResponse]
	Payment    EntitySvcFacade[dto.PaymentResponse]
	Credit     EntitySvcFacade[dto.CreditResponse]
	Expense    EntitySvcFacade[dto.ExpenseResponse]
	Income     EntitySvcFacade[dto.IncomeResponse]
	Dictionary DictionarySvc
	Overdue    OverdueSvc
}
