package services

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// The posting engine is shared so every write path goes through the same writer
	engine := NewPostingEngine(repos.TxManager)

	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos),
		Ledger:  NewLedgerService(repos, engine),
		Period:  NewPeriodService(repos),
	}
}
