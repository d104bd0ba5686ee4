package services

import (
	portsrepo "github.com/moneymap/moneymap_backend/internal/core/ports/repositories"
	portssvc "github.com/moneymap/moneymap_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service onto the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, repos.TransactionRepo),
		Ledger:    NewLedgerService(repos.TransactionRepo, repos.AccountRepo),
		Analytics: NewAnalyticsService(repos.AnalyticsRepo),
		Budget:    NewBudgetService(repos.BudgetRepo, repos.AnalyticsRepo),
		Debt:      NewDebtService(repos.DebtRepo),
	}
}
