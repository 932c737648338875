package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/skuledger/skuledger/internal/models"
)

// ChangeStore handles the derived day-over-day change records.
type ChangeStore struct {
	db QueryInterceptor
}

func NewChangeStore(db QueryInterceptor) *ChangeStore {
	return &ChangeStore{db: db}
}

var changeColumns = []string{
	"date", "sku", "title", "upc", "category1", "category2",
	"yesterday_qty", "today_qty", "quantity_change", "absolute_change",
	"percent_change", "change_type", "estimated_cost", "total_value",
}

// ReplaceDate makes records the change records of date. Existing records are
// updated in place and the ones not in records are deleted.
func (s *ChangeStore) ReplaceDate(ctx context.Context, date string, records []models.ChangeRecord) error {
	keep := make(map[string]struct{}, len(records))
	for _, r := range records {
		keep[r.SKU] = struct{}{}
		_, err := s.db.ExecContext(ctx, queryUpsertChange,
			r.Date, r.SKU, r.Title, r.UPC, r.Category1, r.Category2,
			r.YesterdayQty, r.TodayQty, r.QuantityChange, r.AbsoluteChange,
			r.PercentChange, string(r.ChangeType), r.EstimatedCost, r.TotalValue,
		)
		if err != nil {
			return err
		}
	}
	_, err := deleteExcept(ctx, s.db, queryChangeSkus, queryDeleteChange, date, keep)
	return err
}

// ListByDate returns the change records of date, largest movement first.
func (s *ChangeStore) ListByDate(ctx context.Context, date string, opts ...ListOption) ([]models.ChangeRecord, error) {
	return s.list(ctx, sq.Eq{"date": date}, opts...)
}

// ListRange returns the change records dated within [from, to].
func (s *ChangeStore) ListRange(ctx context.Context, from, to string, opts ...ListOption) ([]models.ChangeRecord, error) {
	return s.list(ctx, sq.And{sq.GtOrEq{"date": from}, sq.LtOrEq{"date": to}}, opts...)
}

func (s *ChangeStore) CountByDate(ctx context.Context, date string) (int, error) {
	query, args, err := sq.Select("COUNT(*)").From("daily_changes").Where(sq.Eq{"date": date}).ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (s *ChangeStore) list(ctx context.Context, where sq.Sqlizer, opts ...ListOption) ([]models.ChangeRecord, error) {
	builder := sq.Select(changeColumns...).
		From("daily_changes").
		Where(where).
		OrderBy("date", "absolute_change DESC", "sku")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.ChangeRecord{}
	if err := sqlx.StructScan(rows, &records); err != nil {
		return nil, err
	}
	return records, nil
}
