package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/skuledger/skuledger/internal/models"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

// MetricsStore handles the per-date summary table.
type MetricsStore struct {
	db QueryInterceptor
}

func NewMetricsStore(db QueryInterceptor) *MetricsStore {
	return &MetricsStore{db: db}
}

var metricsColumns = []string{
	"date", "total_products", "total_value", "out_of_stock", "low_stock",
	"increases", "decreases", "net_change_units", "total_abs_change_units",
	"total_abs_change_usd", "generated_at",
}

// Aggregate computes the metrics of date from its snapshot and change records.
// The result is not persisted.
func (s *MetricsStore) Aggregate(ctx context.Context, date string, lowStockThreshold int) (*models.DailyMetrics, error) {
	m := models.DailyMetrics{Date: date}

	err := s.db.QueryRowContext(ctx, querySnapshotAggregates, lowStockThreshold, date).Scan(
		&m.TotalProducts,
		&m.TotalValue,
		&m.OutOfStock,
		&m.LowStock,
	)
	if err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx, queryChangeAggregates, date).Scan(
		&m.Increases,
		&m.Decreases,
		&m.NetChangeUnits,
		&m.TotalAbsChangeUnits,
		&m.TotalAbsChangeUSD,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Upsert writes m, fully overwriting any earlier row of the same date.
// A zero GeneratedAt is stamped with the current time.
func (s *MetricsStore) Upsert(ctx context.Context, m models.DailyMetrics) error {
	if m.GeneratedAt.IsZero() {
		m.GeneratedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, queryUpsertMetrics,
		m.Date, m.TotalProducts, m.TotalValue, m.OutOfStock, m.LowStock,
		m.Increases, m.Decreases, m.NetChangeUnits, m.TotalAbsChangeUnits,
		m.TotalAbsChangeUSD, m.GeneratedAt,
	)
	return err
}

func (s *MetricsStore) Get(ctx context.Context, date string) (*models.DailyMetrics, error) {
	out, err := s.list(ctx, sq.Eq{"date": date})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, srvErrors.NewMetricsNotFoundError(date)
	}
	return &out[0], nil
}

// List returns the metrics dated within [from, to]; an empty bound is open.
func (s *MetricsStore) List(ctx context.Context, from, to string) ([]models.DailyMetrics, error) {
	where := sq.And{}
	if from != "" {
		where = append(where, sq.GtOrEq{"date": from})
	}
	if to != "" {
		where = append(where, sq.LtOrEq{"date": to})
	}
	return s.list(ctx, where)
}

func (s *MetricsStore) list(ctx context.Context, where sq.Sqlizer) ([]models.DailyMetrics, error) {
	query, args, err := sq.Select(metricsColumns...).
		From("daily_metrics").
		Where(where).
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DailyMetrics{}
	if err := sqlx.StructScan(rows, &out); err != nil {
		return nil, err
	}
	return out, nil
}
