package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/skuledger/skuledger/internal/models"
)

// AnalyticsStore aggregates change records over a date range.
type AnalyticsStore struct {
	db QueryInterceptor
}

func NewAnalyticsStore(db QueryInterceptor) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

func inRange(from, to string) sq.And {
	return sq.And{sq.GtOrEq{"date": from}, sq.LtOrEq{"date": to}}
}

func (s *AnalyticsStore) DailyTrends(ctx context.Context, from, to string) ([]models.DailyTrend, error) {
	builder := sq.Select(
		"date",
		"COUNT(*) AS changes_count",
		"CAST(COALESCE(SUM(absolute_change), 0) AS BIGINT) AS total_movement",
		"CAST(COALESCE(SUM(CASE WHEN change_type = 'increase' THEN 1 ELSE 0 END), 0) AS BIGINT) AS increases",
		"CAST(COALESCE(SUM(CASE WHEN change_type = 'decrease' THEN 1 ELSE 0 END), 0) AS BIGINT) AS decreases",
	).From("daily_changes").
		Where(inRange(from, to)).
		GroupBy("date").
		OrderBy("date")

	out := []models.DailyTrend{}
	return out, s.selectInto(ctx, builder, &out)
}

// TopMovers ranks SKUs by total absolute movement across the range.
func (s *AnalyticsStore) TopMovers(ctx context.Context, from, to string, limit uint64) ([]models.PeriodMover, error) {
	builder := sq.Select(
		"sku",
		"MAX(title) AS title",
		"CAST(COALESCE(SUM(absolute_change), 0) AS BIGINT) AS total_movement",
		"COUNT(*) AS change_frequency",
	).From("daily_changes").
		Where(inRange(from, to)).
		GroupBy("sku").
		OrderBy("total_movement DESC", "sku").
		Limit(limit)

	out := []models.PeriodMover{}
	return out, s.selectInto(ctx, builder, &out)
}

func (s *AnalyticsStore) CategoryBreakdown(ctx context.Context, from, to string) ([]models.CategoryBreakdown, error) {
	builder := sq.Select(
		"category1",
		"COUNT(DISTINCT sku) AS products",
		"COUNT(*) AS changes_count",
		"CAST(COALESCE(SUM(absolute_change), 0) AS BIGINT) AS total_movement",
	).From("daily_changes").
		Where(inRange(from, to)).
		Where(sq.NotEq{"category1": ""}).
		GroupBy("category1").
		OrderBy("total_movement DESC", "category1")

	out := []models.CategoryBreakdown{}
	return out, s.selectInto(ctx, builder, &out)
}

func (s *AnalyticsStore) selectInto(ctx context.Context, builder sq.SelectBuilder, dest any) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()
	return sqlx.StructScan(rows, dest)
}
