package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
)

const (
	defaultTimeout   = 5 * time.Second
	retryBaseBackoff = 50 * time.Millisecond
	retryMaxBackoff  = time.Second

	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool        *pgxpool.Pool
	Timeout     time.Duration
	ReadRetries uint64
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, classify(err, "failed to begin transaction")
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return classify(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

func (r *BaseRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

// read runs an idempotent query, retrying transient failures with
// exponential backoff. Each attempt gets its own timeout.
func (r *BaseRepository) read(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(r.ReadRetries,
		retry.WithCappedDuration(retryMaxBackoff, retry.NewExponential(retryBaseBackoff)))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := r.withTimeout(ctx)
		defer cancel()
		err := fn(attemptCtx)
		if err != nil && isTransient(err) {
			return retry.RetryableError(err)
		}
		return err
	})
	return classify(err, op)
}

// write runs a single statement once. Writes are never retried.
func (r *BaseRepository) write(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return classify(fn(ctx), op)
}

// inTx runs fn inside a transaction that is committed only if fn succeeds.
func (r *BaseRepository) inTx(ctx context.Context, op string, fn func(ctx context.Context, tx pgx.Tx) error) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := fn(ctx, tx); err != nil {
		return classify(err, op)
	}
	return r.Commit(ctx, tx)
}

// isTransient reports whether err is worth another attempt.
func isTransient(err error) bool {
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err)
}

// classify maps driver errors onto apperrors kinds. Errors that already carry
// a kind are returned unchanged.
func classify(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(op + ": no rows")
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError(fmt.Sprintf("%s: referenced row does not exist", op))
		}
	}
	if isTransient(err) || errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewUnavailableError(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
