package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// safeToRetryErr is what pgconn reports for failures before any bytes were sent.
type safeToRetryErr struct{}

func (safeToRetryErr) Error() string { return "connection reset before send" }
func (safeToRetryErr) SafeToRetry() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: pgUniqueViolation}, apperrors.ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: pgForeignKeyViolation}, apperrors.ErrNotFound},
		{"deadline", context.DeadlineExceeded, apperrors.ErrUnavailable},
		{"safe to retry", safeToRetryErr{}, apperrors.ErrUnavailable},
		{"already classified", apperrors.NewConflictError("stale"), apperrors.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classify(tt.err, "op"), tt.sentinel)
		})
	}

	assert.NoError(t, classify(nil, "op"))
	plain := classify(assert.AnError, "failed to list funds")
	assert.ErrorIs(t, plain, assert.AnError)
	assert.NotErrorIs(t, plain, apperrors.ErrUnavailable)
}

func TestRead_RetriesTransientFailures(t *testing.T) {
	repo := BaseRepository{Timeout: time.Second, ReadRetries: 2}
	attempts := 0

	err := repo.read(context.Background(), "failed to list funds", func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return safeToRetryErr{}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRead_GivesUpAsUnavailable(t *testing.T) {
	repo := BaseRepository{Timeout: time.Second, ReadRetries: 1}
	attempts := 0

	err := repo.read(context.Background(), "failed to list funds", func(ctx context.Context) error {
		attempts++
		return safeToRetryErr{}
	})

	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
	assert.Equal(t, 2, attempts)
}

func TestRead_DoesNotRetryPermanentErrors(t *testing.T) {
	repo := BaseRepository{ReadRetries: 3}
	attempts := 0

	err := repo.read(context.Background(), "failed to find fund", func(ctx context.Context) error {
		attempts++
		return pgx.ErrNoRows
	})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, 1, attempts)
}

func TestWrite_AppliesTimeout(t *testing.T) {
	repo := BaseRepository{Timeout: 10 * time.Millisecond}

	err := repo.write(context.Background(), "failed to save fund", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	assert.True(t, errors.Is(err, apperrors.ErrUnavailable))
}
