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

const distributionColumns = `distribution_id, fund_id, dist_number, dist_date, amount, dist_type,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxDistributionRepository struct {
	BaseRepository
}

func newPgxDistributionRepository(base BaseRepository) portsrepo.DistributionRepositoryFacade {
	return &PgxDistributionRepository{BaseRepository: base}
}

var _ portsrepo.DistributionRepositoryFacade = (*PgxDistributionRepository)(nil)

func (r *PgxDistributionRepository) SaveDistribution(ctx context.Context, dist domain.Distribution) error {
	m := mapping.ToModelDistribution(dist)
	query := `
		INSERT INTO distributions (` + distributionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	return r.write(ctx, fmt.Sprintf("failed to save distribution for fund %s", m.FundID), func(ctx context.Context) error {
		_, err := r.Pool.Exec(ctx, query,
			m.DistributionID, m.FundID, m.DistNumber, m.DistDate, m.Amount, m.DistType,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		return err
	})
}

func (r *PgxDistributionRepository) DeleteDistribution(ctx context.Context, distributionID string) (string, error) {
	var fundID string
	err := r.write(ctx, fmt.Sprintf("failed to delete distribution %s", distributionID), func(ctx context.Context) error {
		return r.Pool.QueryRow(ctx, `DELETE FROM distributions WHERE distribution_id = $1 RETURNING fund_id;`, distributionID).Scan(&fundID)
	})
	return fundID, err
}

func (r *PgxDistributionRepository) ListDistributionsByFund(ctx context.Context, fundID string) ([]domain.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM distributions WHERE fund_id = $1 ORDER BY dist_number, dist_date;`
	return r.list(ctx, fmt.Sprintf("failed to list distributions for fund %s", fundID), query, fundID)
}

func (r *PgxDistributionRepository) ListDistributions(ctx context.Context) ([]domain.Distribution, error) {
	query := `SELECT ` + distributionColumns + ` FROM distributions ORDER BY fund_id, dist_number, dist_date;`
	return r.list(ctx, "failed to list distributions", query)
}

func (r *PgxDistributionRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.Distribution, error) {
	var ms []models.Distribution
	err := r.read(ctx, op, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		ms, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Distribution, error) {
			var d models.Distribution
			err := row.Scan(
				&d.DistributionID,
				&d.FundID,
				&d.DistNumber,
				&d.DistDate,
				&d.Amount,
				&d.DistType,
				&d.CreatedAt,
				&d.CreatedBy,
				&d.LastUpdatedAt,
				&d.LastUpdatedBy,
			)
			return d, err
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainDistributionSlice(ms), nil
}
