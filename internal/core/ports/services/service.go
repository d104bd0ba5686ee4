package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Ledger    LedgerSvcFacade
	Analytics AnalyticsSvcFacade
	Budget    BudgetSvcFacade
	Debt      DebtSvcFacade
}
