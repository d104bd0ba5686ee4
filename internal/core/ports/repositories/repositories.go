package repositories

// RepositoryProvider bundles every repository implementation so the service
// layer can be wired from a single value.
type RepositoryProvider struct {
	AccountRepo     AccountRepository
	TransactionRepo TransactionRepository
	BudgetRepo      BudgetRepository
	AnalyticsRepo   AnalyticsRepository
	DebtRepo        DebtRepository
}
