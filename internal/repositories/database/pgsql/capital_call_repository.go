package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger_app/internal/models"
	"github.com/SscSPs/fund_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const capitalCallColumns = `call_id, fund_id, call_number, call_date, payment_date, amount, investments, mgmt_fee,
	fund_expenses, gp_contribution, is_future, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxCapitalCallRepository struct {
	BaseRepository
}

func newPgxCapitalCallRepository(base BaseRepository) portsrepo.CapitalCallRepositoryFacade {
	return &PgxCapitalCallRepository{BaseRepository: base}
}

var _ portsrepo.CapitalCallRepositoryFacade = (*PgxCapitalCallRepository)(nil)

func scanCapitalCall(row pgx.Row) (models.CapitalCall, error) {
	var c models.CapitalCall
	err := row.Scan(
		&c.CallID,
		&c.FundID,
		&c.CallNumber,
		&c.CallDate,
		&c.PaymentDate,
		&c.Amount,
		&c.Investments,
		&c.MgmtFee,
		&c.FundExpenses,
		&c.GPContribution,
		&c.IsFuture,
		&c.Notes,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxCapitalCallRepository) SaveCapitalCall(ctx context.Context, call domain.CapitalCall) error {
	m := mapping.ToModelCapitalCall(call)
	query := `
		INSERT INTO capital_calls (` + capitalCallColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	return r.write(ctx, fmt.Sprintf("failed to save capital call for fund %s", m.FundID), func(ctx context.Context) error {
		_, err := r.Pool.Exec(ctx, query,
			m.CallID, m.FundID, m.CallNumber, m.CallDate, m.PaymentDate, m.Amount, m.Investments, m.MgmtFee,
			m.FundExpenses, m.GPContribution, m.IsFuture, m.Notes, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		return err
	})
}

func (r *PgxCapitalCallRepository) DeleteCapitalCall(ctx context.Context, callID string) (string, error) {
	var fundID string
	err := r.write(ctx, fmt.Sprintf("failed to delete capital call %s", callID), func(ctx context.Context) error {
		return r.Pool.QueryRow(ctx, `DELETE FROM capital_calls WHERE call_id = $1 RETURNING fund_id;`, callID).Scan(&fundID)
	})
	return fundID, err
}

func (r *PgxCapitalCallRepository) ListCapitalCallsByFund(ctx context.Context, fundID string) ([]domain.CapitalCall, error) {
	query := `SELECT ` + capitalCallColumns + ` FROM capital_calls WHERE fund_id = $1 ORDER BY call_number, call_date;`
	return r.list(ctx, fmt.Sprintf("failed to list capital calls for fund %s", fundID), query, fundID)
}

func (r *PgxCapitalCallRepository) ListCapitalCalls(ctx context.Context) ([]domain.CapitalCall, error) {
	query := `SELECT ` + capitalCallColumns + ` FROM capital_calls ORDER BY fund_id, call_number, call_date;`
	return r.list(ctx, "failed to list capital calls", query)
}

func (r *PgxCapitalCallRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.CapitalCall, error) {
	var ms []models.CapitalCall
	err := r.read(ctx, op, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		ms, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CapitalCall, error) {
			return scanCapitalCall(row)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCapitalCallSlice(ms), nil
}
