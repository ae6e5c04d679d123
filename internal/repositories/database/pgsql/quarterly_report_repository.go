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

const reportColumns = `report_id, fund_id, year, quarter, report_date, nav, tvpi, dpi, rvpi, irr, notes,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxQuarterlyReportRepository struct {
	BaseRepository
}

func newPgxQuarterlyReportRepository(base BaseRepository) portsrepo.QuarterlyReportRepositoryFacade {
	return &PgxQuarterlyReportRepository{BaseRepository: base}
}

var _ portsrepo.QuarterlyReportRepositoryFacade = (*PgxQuarterlyReportRepository)(nil)

func scanReport(row pgx.Row) (models.QuarterlyReport, error) {
	var q models.QuarterlyReport
	err := row.Scan(
		&q.ReportID,
		&q.FundID,
		&q.Year,
		&q.Quarter,
		&q.ReportDate,
		&q.NAV,
		&q.TVPI,
		&q.DPI,
		&q.RVPI,
		&q.IRR,
		&q.Notes,
		&q.CreatedAt,
		&q.CreatedBy,
		&q.LastUpdatedAt,
		&q.LastUpdatedBy,
	)
	return q, err
}

// UpsertReport keeps one row per (fund, year, quarter). On replace the
// original report ID and creation stamp survive.
func (r *PgxQuarterlyReportRepository) UpsertReport(ctx context.Context, report domain.QuarterlyReport) (*domain.QuarterlyReport, error) {
	m := mapping.ToModelQuarterlyReport(report)
	query := `
		INSERT INTO quarterly_reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (fund_id, year, quarter) DO UPDATE SET
			report_date = EXCLUDED.report_date,
			nav = EXCLUDED.nav,
			tvpi = EXCLUDED.tvpi,
			dpi = EXCLUDED.dpi,
			rvpi = EXCLUDED.rvpi,
			irr = EXCLUDED.irr,
			notes = EXCLUDED.notes,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + reportColumns + `;
	`

	var stored models.QuarterlyReport
	err := r.write(ctx, fmt.Sprintf("failed to upsert report %d-Q%d for fund %s", m.Year, m.Quarter, m.FundID), func(ctx context.Context) (err error) {
		stored, err = scanReport(r.Pool.QueryRow(ctx, query,
			m.ReportID, m.FundID, m.Year, m.Quarter, m.ReportDate, m.NAV, m.TVPI, m.DPI, m.RVPI, m.IRR, m.Notes,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		))
		return err
	})
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainQuarterlyReport(stored)
	return &d, nil
}

func (r *PgxQuarterlyReportRepository) DeleteReport(ctx context.Context, reportID string) (string, error) {
	var fundID string
	err := r.write(ctx, fmt.Sprintf("failed to delete report %s", reportID), func(ctx context.Context) error {
		return r.Pool.QueryRow(ctx, `DELETE FROM quarterly_reports WHERE report_id = $1 RETURNING fund_id;`, reportID).Scan(&fundID)
	})
	return fundID, err
}

func (r *PgxQuarterlyReportRepository) ListReportsByFund(ctx context.Context, fundID string) ([]domain.QuarterlyReport, error) {
	query := `SELECT ` + reportColumns + ` FROM quarterly_reports WHERE fund_id = $1 ORDER BY year, quarter;`

	var ms []models.QuarterlyReport
	err := r.read(ctx, fmt.Sprintf("failed to list reports for fund %s", fundID), func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, fundID)
		if err != nil {
			return err
		}
		ms, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.QuarterlyReport, error) {
			return scanReport(row)
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainQuarterlyReportSlice(ms), nil
}
