package pgsql

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger_app/internal/models"
	"github.com/SscSPs/fund_ledger_app/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	lpCallColumns  = `lp_call_id, call_date, call_pct, revision, created_at, created_by, last_updated_at, last_updated_by`
	paymentColumns = `payment_id, lp_call_id, investor_id, is_paid, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxLPCallRepository struct {
	BaseRepository
}

func newPgxLPCallRepository(base BaseRepository) portsrepo.LPCallRepositoryFacade {
	return &PgxLPCallRepository{BaseRepository: base}
}

var _ portsrepo.LPCallRepositoryFacade = (*PgxLPCallRepository)(nil)

func scanLPCall(row pgx.Row) (models.LPCall, error) {
	var c models.LPCall
	err := row.Scan(&c.LPCallID, &c.CallDate, &c.CallPct, &c.Revision, &c.CreatedAt, &c.CreatedBy, &c.LastUpdatedAt, &c.LastUpdatedBy)
	return c, err
}

func scanPayment(row pgx.Row) (models.LPPayment, error) {
	var p models.LPPayment
	err := row.Scan(&p.PaymentID, &p.LPCallID, &p.InvestorID, &p.IsPaid, &p.CreatedAt, &p.CreatedBy, &p.LastUpdatedAt, &p.LastUpdatedBy)
	return p, err
}

func (r *PgxLPCallRepository) FindLPCallByID(ctx context.Context, lpCallID string) (*domain.LPCall, error) {
	query := `SELECT ` + lpCallColumns + ` FROM lp_calls WHERE lp_call_id = $1;`

	var m models.LPCall
	err := r.read(ctx, fmt.Sprintf("failed to find LP call %s", lpCallID), func(ctx context.Context) (err error) {
		m, err = scanLPCall(r.Pool.QueryRow(ctx, query, lpCallID))
		return err
	})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainLPCall(m)
	return &d, nil
}

func (r *PgxLPCallRepository) ListLPCalls(ctx context.Context) ([]domain.LPCall, error) {
	query := `SELECT ` + lpCallColumns + ` FROM lp_calls ORDER BY call_date, lp_call_id;`

	var ms []models.LPCall
	err := r.read(ctx, "failed to list LP calls", func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query)
		if err != nil {
			return err
		}
		ms, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LPCall, error) {
			return scanLPCall(row)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLPCallSlice(ms), nil
}

// ListPayments skips rows whose call or investor has gone.
func (r *PgxLPCallRepository) ListPayments(ctx context.Context) ([]domain.LPPayment, error) {
	query := `
		SELECT p.payment_id, p.lp_call_id, p.investor_id, p.is_paid, p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM lp_payments p
		JOIN lp_calls c ON c.lp_call_id = p.lp_call_id
		JOIN investors i ON i.investor_id = p.investor_id
		ORDER BY p.lp_call_id, p.investor_id;
	`
	var ms []models.LPPayment
	err := r.read(ctx, "failed to list LP payments", func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query)
		if err != nil {
			return err
		}
		ms, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LPPayment, error) {
			return scanPayment(row)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLPPaymentSlice(ms), nil
}

func (r *PgxLPCallRepository) FindPayment(ctx context.Context, lpCallID, investorID string) (*domain.LPPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM lp_payments WHERE lp_call_id = $1 AND investor_id = $2;`

	var m models.LPPayment
	err := r.read(ctx, fmt.Sprintf("failed to find payment (%s, %s)", lpCallID, investorID), func(ctx context.Context) (err error) {
		m, err = scanPayment(r.Pool.QueryRow(ctx, query, lpCallID, investorID))
		return err
	})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainLPPayment(m)
	return &d, nil
}

func (r *PgxLPCallRepository) SaveLPCall(ctx context.Context, call domain.LPCall) error {
	m := mapping.ToModelLPCall(call)
	query := `INSERT INTO lp_calls (` + lpCallColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	return r.write(ctx, fmt.Sprintf("failed to save LP call %s", m.LPCallID), func(ctx context.Context) error {
		_, err := r.Pool.Exec(ctx, query, m.LPCallID, m.CallDate, m.CallPct, m.Revision, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
		return err
	})
}

func (r *PgxLPCallRepository) DeleteLPCall(ctx context.Context, lpCallID string) error {
	return r.inTx(ctx, fmt.Sprintf("failed to delete LP call %s", lpCallID), func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM lp_payments WHERE lp_call_id = $1;`, lpCallID); err != nil {
			return fmt.Errorf("failed to delete LP call payments: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM lp_calls WHERE lp_call_id = $1;`, lpCallID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("LP call %s not found", lpCallID))
		}
		return nil
	})
}

const upsertPaymentQuery = `
	INSERT INTO lp_payments (` + paymentColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (lp_call_id, investor_id) DO UPDATE SET
		is_paid = EXCLUDED.is_paid,
		last_updated_at = EXCLUDED.last_updated_at,
		last_updated_by = EXCLUDED.last_updated_by
	WHERE lp_payments.is_paid IS DISTINCT FROM EXCLUDED.is_paid;
`

func upsertPayment(ctx context.Context, tx pgx.Tx, m models.LPPayment) (bool, error) {
	tag, err := tx.Exec(ctx, upsertPaymentQuery,
		m.PaymentID, m.LPCallID, m.InvestorID, m.IsPaid, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return false, fmt.Errorf("failed to write payment (%s, %s): %w", m.LPCallID, m.InvestorID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func bumpRevision(ctx context.Context, tx pgx.Tx, lpCallID string) (int64, error) {
	var revision int64
	err := tx.QueryRow(ctx, `UPDATE lp_calls SET revision = revision + 1 WHERE lp_call_id = $1 RETURNING revision;`, lpCallID).Scan(&revision)
	if err != nil {
		return 0, fmt.Errorf("failed to bump revision of LP call %s: %w", lpCallID, err)
	}
	return revision, nil
}

// UpsertPayment writes one cell. The call revision only moves when the stored
// value actually changed.
func (r *PgxLPCallRepository) UpsertPayment(ctx context.Context, payment domain.LPPayment) (int64, error) {
	m := mapping.ToModelLPPayment(payment)

	var revision int64
	err := r.inTx(ctx, fmt.Sprintf("failed to set payment (%s, %s)", m.LPCallID, m.InvestorID), func(ctx context.Context, tx pgx.Tx) error {
		changed, err := upsertPayment(ctx, tx, m)
		if err != nil {
			return err
		}
		if !changed {
			return tx.QueryRow(ctx, `SELECT revision FROM lp_calls WHERE lp_call_id = $1;`, m.LPCallID).Scan(&revision)
		}
		revision, err = bumpRevision(ctx, tx, m.LPCallID)
		return err
	})
	return revision, err
}

// BatchSavePayments locks every touched call, verifies its revision and then
// writes only the cells whose value differs from what is stored. Any
// revision mismatch aborts the whole batch.
func (r *PgxLPCallRepository) BatchSavePayments(ctx context.Context, cells []domain.PaymentCell, expected map[string]int64, userID string, now time.Time) (*domain.BatchSaveResult, error) {
	callIDs := make([]string, 0, len(expected))
	touched := make(map[string]bool)
	for _, c := range cells {
		if !touched[c.LPCallID] {
			touched[c.LPCallID] = true
			callIDs = append(callIDs, c.LPCallID)
		}
	}
	// Fixed lock order keeps concurrent batches from deadlocking.
	sort.Strings(callIDs)

	result := &domain.BatchSaveResult{Revisions: make(map[string]int64, len(callIDs))}
	err := r.inTx(ctx, "failed to save payment batch", func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			SELECT lp_call_id, revision FROM lp_calls
			WHERE lp_call_id = ANY($1)
			ORDER BY lp_call_id
			FOR UPDATE;
		`, callIDs)
		if err != nil {
			return err
		}
		current := make(map[string]int64, len(callIDs))
		var id string
		var rev int64
		if _, err := pgx.ForEachRow(rows, []any{&id, &rev}, func() error {
			current[id] = rev
			return nil
		}); err != nil {
			return err
		}

		for _, callID := range callIDs {
			got, ok := current[callID]
			if !ok {
				return apperrors.NewNotFoundError(fmt.Sprintf("LP call %s not found", callID))
			}
			if want := expected[callID]; got != want {
				return apperrors.NewConflictError(fmt.Sprintf("LP call %s is at revision %d, expected %d", callID, got, want))
			}
			result.Revisions[callID] = got
		}

		// An absent row reads as unpaid.
		stored := make(map[domain.PaymentKey]bool)
		rows, err = tx.Query(ctx, `SELECT lp_call_id, investor_id, is_paid FROM lp_payments WHERE lp_call_id = ANY($1);`, callIDs)
		if err != nil {
			return err
		}
		var investorID string
		var isPaid bool
		if _, err := pgx.ForEachRow(rows, []any{&id, &investorID, &isPaid}, func() error {
			stored[domain.PaymentKey{LPCallID: id, InvestorID: investorID}] = isPaid
			return nil
		}); err != nil {
			return err
		}

		changedCalls := make(map[string]bool)
		for _, c := range cells {
			if stored[domain.PaymentKey{LPCallID: c.LPCallID, InvestorID: c.InvestorID}] == c.IsPaid {
				result.Unchanged++
				continue
			}
			changed, err := upsertPayment(ctx, tx, models.LPPayment{
				PaymentID:  uuid.NewString(),
				LPCallID:   c.LPCallID,
				InvestorID: c.InvestorID,
				IsPaid:     c.IsPaid,
				AuditFields: models.AuditFields{
					CreatedAt:     now,
					CreatedBy:     userID,
					LastUpdatedAt: now,
					LastUpdatedBy: userID,
				},
			})
			if err != nil {
				return err
			}
			if changed {
				result.Written++
				changedCalls[c.LPCallID] = true
			} else {
				result.Unchanged++
			}
		}

		for _, callID := range callIDs {
			if !changedCalls[callID] {
				continue
			}
			revision, err := bumpRevision(ctx, tx, callID)
			if err != nil {
				return err
			}
			result.Revisions[callID] = revision
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
