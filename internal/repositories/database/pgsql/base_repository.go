package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository
// can run either on the pool or inside the write transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db DBTX
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgLockNotAvailable    = "55P03"
)

// mapPgError translates driver errors into apperrors sentinels.
func mapPgError(err error, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w (%s)", op, apperrors.ErrConflict, pgErr.ConstraintName)
		}
	}
	return apperrors.NewAppError(http.StatusInternalServerError, op, err)
}

// repositorySet binds every repository to one database handle.
type repositorySet struct {
	*PgxAccountRepository
	*PgxEntryRepository
	*PgxPeriodRepository
	*PgxReportingRepository
}

var _ portsrepo.RepositoryFacade = (*repositorySet)(nil)

func newRepositorySet(db DBTX) *repositorySet {
	base := BaseRepository{db: db}
	return &repositorySet{
		PgxAccountRepository:   &PgxAccountRepository{BaseRepository: base},
		PgxEntryRepository:     &PgxEntryRepository{BaseRepository: base},
		PgxPeriodRepository:    &PgxPeriodRepository{BaseRepository: base},
		PgxReportingRepository: &PgxReportingRepository{BaseRepository: base},
	}
}

// DefaultWriteLockKey identifies the ledger's advisory lock.
const DefaultWriteLockKey int64 = 0x6c6564676572

// StoreOptions configures the write scope.
type StoreOptions struct {
	// LockTimeout bounds how long a writer waits for another process holding the ledger lock.
	LockTimeout time.Duration
	// LockKey is the pg_advisory_xact_lock key; DefaultWriteLockKey when zero.
	LockKey int64
}

// Store owns the exclusive write scope: one writer per process through the
// mutex, one writer per database through a transaction-level advisory lock.
type Store struct {
	pool        *pgxpool.Pool
	mu          sync.Mutex
	lockTimeout time.Duration
	lockKey     int64
}

var _ portsrepo.TransactionManager = (*Store)(nil)

// NewStore creates the write scope over pool.
func NewStore(pool *pgxpool.Pool, opts StoreOptions) *Store {
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = 5 * time.Second
	}
	if opts.LockKey == 0 {
		opts.LockKey = DefaultWriteLockKey
	}
	return &Store{pool: pool, lockTimeout: opts.LockTimeout, lockKey: opts.LockKey}
}

// WithinWriteTx implements portsrepo.TransactionManager.
func (s *Store) WithinWriteTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryFacade) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in write transaction: %v", r)
		}
		if err == nil {
			return
		}
		// Roll back even when ctx is already cancelled.
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back write transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if _, err = tx.Exec(ctx, "SELECT set_config('lock_timeout', $1, true)", fmt.Sprintf("%dms", s.lockTimeout.Milliseconds())); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to set lock timeout", err)
	}
	if _, err = tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", s.lockKey); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvailable {
			return apperrors.NewAppError(http.StatusServiceUnavailable, "ledger is locked by another writer", err)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to acquire ledger lock", err)
	}

	if err = fn(ctx, newRepositorySet(tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to commit transaction", err)
	}
	return nil
}
