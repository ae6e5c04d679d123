package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/fund_ledger_app/internal/apperrors"
	"github.com/SscSPs/fund_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fund_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/fund_ledger_app/internal/models"
	"github.com/SscSPs/fund_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const investorColumns = `investor_id, name, commitment, created_at, created_by, last_updated_at, last_updated_by`

type PgxInvestorRepository struct {
	BaseRepository
}

func newPgxInvestorRepository(base BaseRepository) portsrepo.InvestorRepositoryFacade {
	return &PgxInvestorRepository{BaseRepository: base}
}

var _ portsrepo.InvestorRepositoryFacade = (*PgxInvestorRepository)(nil)

func scanInvestor(row pgx.Row) (models.Investor, error) {
	var i models.Investor
	err := row.Scan(&i.InvestorID, &i.Name, &i.Commitment, &i.CreatedAt, &i.CreatedBy, &i.LastUpdatedAt, &i.LastUpdatedBy)
	return i, err
}

func (r *PgxInvestorRepository) SaveInvestor(ctx context.Context, investor domain.Investor) error {
	m := mapping.ToModelInvestor(investor)
	query := `INSERT INTO investors (` + investorColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`

	return r.write(ctx, fmt.Sprintf("failed to save investor %s", m.InvestorID), func(ctx context.Context) error {
		_, err := r.Pool.Exec(ctx, query, m.InvestorID, m.Name, m.Commitment, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
		return err
	})
}

func (r *PgxInvestorRepository) UpdateInvestor(ctx context.Context, investor domain.Investor) error {
	m := mapping.ToModelInvestor(investor)
	query := `
		UPDATE investors SET name = $2, commitment = $3, last_updated_at = $4, last_updated_by = $5
		WHERE investor_id = $1;
	`
	return r.write(ctx, fmt.Sprintf("failed to update investor %s", m.InvestorID), func(ctx context.Context) error {
		tag, err := r.Pool.Exec(ctx, query, m.InvestorID, m.Name, m.Commitment, m.LastUpdatedAt, m.LastUpdatedBy)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("investor %s not found", m.InvestorID))
		}
		return nil
	})
}

// DeleteInvestor removes the investor and its payment cells. Revisions of the
// affected LP calls are bumped so open batch edits see the change.
func (r *PgxInvestorRepository) DeleteInvestor(ctx context.Context, investorID string) error {
	return r.inTx(ctx, fmt.Sprintf("failed to delete investor %s", investorID), func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			UPDATE lp_calls SET revision = revision + 1
			WHERE lp_call_id IN (SELECT lp_call_id FROM lp_payments WHERE investor_id = $1);
		`, investorID)
		if err != nil {
			return fmt.Errorf("failed to bump lp call revisions: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM lp_payments WHERE investor_id = $1;`, investorID); err != nil {
			return fmt.Errorf("failed to delete investor payments: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM investors WHERE investor_id = $1;`, investorID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("investor %s not found", investorID))
		}
		return nil
	})
}

func (r *PgxInvestorRepository) FindInvestorByID(ctx context.Context, investorID string) (*domain.Investor, error) {
	query := `SELECT ` + investorColumns + ` FROM investors WHERE investor_id = $1;`

	var m models.Investor
	err := r.read(ctx, fmt.Sprintf("failed to find investor %s", investorID), func(ctx context.Context) (err error) {
		m, err = scanInvestor(r.Pool.QueryRow(ctx, query, investorID))
		return err
	})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainInvestor(m)
	return &d, nil
}

func (r *PgxInvestorRepository) ListInvestors(ctx context.Context) ([]domain.Investor, error) {
	query := `SELECT ` + investorColumns + ` FROM investors ORDER BY name, investor_id;`

	var ms []models.Investor
	err := r.read(ctx, "failed to list investors", func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query)
		if err != nil {
			return err
		}
		ms, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Investor, error) {
			return scanInvestor(row)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInvestorSlice(ms), nil
}
