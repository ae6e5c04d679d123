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

const fundColumns = `fund_id, name, manager, strategy, commitment, currency_code, status, vintage_year,
	investment_date, geographic_focus, created_at, created_by, last_updated_at, last_updated_by`

type PgxFundRepository struct {
	BaseRepository
}

// newPgxFundRepository creates a new repository for the fund registry.
func newPgxFundRepository(base BaseRepository) portsrepo.FundRepositoryFacade {
	return &PgxFundRepository{BaseRepository: base}
}

// Ensure implementation matches interface
var _ portsrepo.FundRepositoryFacade = (*PgxFundRepository)(nil)

func scanFund(row pgx.Row) (models.Fund, error) {
	var f models.Fund
	err := row.Scan(
		&f.FundID,
		&f.Name,
		&f.Manager,
		&f.Strategy,
		&f.Commitment,
		&f.CurrencyCode,
		&f.Status,
		&f.VintageYear,
		&f.InvestmentDate,
		&f.GeographicFocus,
		&f.CreatedAt,
		&f.CreatedBy,
		&f.LastUpdatedAt,
		&f.LastUpdatedBy,
	)
	return f, err
}

// SaveFund inserts a new fund.
func (r *PgxFundRepository) SaveFund(ctx context.Context, fund domain.Fund) error {
	m := mapping.ToModelFund(fund)
	query := `
		INSERT INTO funds (` + fundColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	return r.write(ctx, fmt.Sprintf("failed to save fund %s", m.FundID), func(ctx context.Context) error {
		_, err := r.Pool.Exec(ctx, query,
			m.FundID, m.Name, m.Manager, m.Strategy, m.Commitment, m.CurrencyCode, m.Status, m.VintageYear,
			m.InvestmentDate, m.GeographicFocus, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		return err
	})
}

// UpdateFund overwrites every mutable column of an existing fund.
func (r *PgxFundRepository) UpdateFund(ctx context.Context, fund domain.Fund) error {
	m := mapping.ToModelFund(fund)
	query := `
		UPDATE funds SET
			name = $2, manager = $3, strategy = $4, commitment = $5, currency_code = $6, status = $7,
			vintage_year = $8, investment_date = $9, geographic_focus = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE fund_id = $1;
	`
	return r.write(ctx, fmt.Sprintf("failed to update fund %s", m.FundID), func(ctx context.Context) error {
		tag, err := r.Pool.Exec(ctx, query,
			m.FundID, m.Name, m.Manager, m.Strategy, m.Commitment, m.CurrencyCode, m.Status,
			m.VintageYear, m.InvestmentDate, m.GeographicFocus, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("fund %s not found", m.FundID))
		}
		return nil
	})
}

// DeleteFund removes the fund and everything it owns in one transaction.
func (r *PgxFundRepository) DeleteFund(ctx context.Context, fundID string) error {
	return r.inTx(ctx, fmt.Sprintf("failed to delete fund %s", fundID), func(ctx context.Context, tx pgx.Tx) error {
		for _, table := range []string{"capital_calls", "distributions", "quarterly_reports"} {
			if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE fund_id = $1;`, fundID); err != nil {
				return fmt.Errorf("failed to delete %s: %w", table, err)
			}
		}
		tag, err := tx.Exec(ctx, `DELETE FROM funds WHERE fund_id = $1;`, fundID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("fund %s not found", fundID))
		}
		return nil
	})
}

// FindFundByID retrieves a fund by its ID.
func (r *PgxFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM funds WHERE fund_id = $1;`

	var m models.Fund
	err := r.read(ctx, fmt.Sprintf("failed to find fund %s", fundID), func(ctx context.Context) (err error) {
		m, err = scanFund(r.Pool.QueryRow(ctx, query, fundID))
		return err
	})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainFund(m)
	return &d, nil
}

// ListFunds retrieves all funds ordered by name.
func (r *PgxFundRepository) ListFunds(ctx context.Context) ([]domain.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM funds ORDER BY name, fund_id;`

	var ms []models.Fund
	err := r.read(ctx, "failed to list funds", func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query)
		if err != nil {
			return err
		}
		ms, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Fund, error) {
			return scanFund(row)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainFundSlice(ms), nil
}
