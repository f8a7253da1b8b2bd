package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both storage engines build one.
type RepositoryProvider struct {
	InvoiceRepo InvoiceRepositoryFacade
	PaymentRepo PaymentRepositoryFacade
	CreditRepo  CreditRepositoryFacade
	ExpenseRepo ExpenseRepositoryFacade
	IncomeRepo  IncomeRepositoryFacade
	AdminRepo   AdminRepository
}
