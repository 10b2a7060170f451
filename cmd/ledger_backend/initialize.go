package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/SscSPs/ledger_core/internal/platform/chart"
	"github.com/SscSPs/ledger_core/internal/platform/config"
)

// systemUser is recorded as the actor of startup writes.
const systemUser = "system"

// initializeLedger loads the configured chart of accounts and makes sure the
// current year has an open annual period. Both steps are safe to repeat.
func initializeLedger(ctx context.Context, cfg *config.Config, svc *portssvc.ServiceContainer) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if cfg.ChartOfAccountsFile != "" {
		accounts, err := chart.LoadFile(cfg.ChartOfAccountsFile)
		if err != nil {
			return err
		}
		if err := svc.Account.LoadChart(ctx, accounts, systemUser); err != nil {
			return fmt.Errorf("failed to load chart of accounts: %w", err)
		}
	}

	year := time.Now().UTC().Year()
	start, end := domain.YearBounds(year)
	_, err := svc.Period.CreatePeriod(ctx, year, start, end, domain.PeriodOpen, systemUser)
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Debug("Current year period already exists", slog.Int("year", year))
	case err != nil:
		return fmt.Errorf("failed to create period %d: %w", year, err)
	}
	return nil
}
