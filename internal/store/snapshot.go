package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/skuledger/skuledger/internal/models"
)

// SnapshotStore handles the per-date quantity and cost facts.
type SnapshotStore struct {
	db QueryInterceptor
}

func NewSnapshotStore(db QueryInterceptor) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// DeleteExcept removes the records of date whose SKU is not in keep and
// returns how many were removed. A nil keep clears the date.
//
// Replacing a date is Upsert for every new record followed by DeleteExcept.
// Deleting a key and inserting it again in one transaction makes DuckDB abort
// the commit with a write-write conflict while readers are open.
func (s *SnapshotStore) DeleteExcept(ctx context.Context, date string, keep map[string]struct{}) (int64, error) {
	return deleteExcept(ctx, s.db, querySnapshotSkus, queryDeleteSnapshot, date, keep)
}

// Upsert writes one (date, sku) record, replacing an existing one.
func (s *SnapshotStore) Upsert(ctx context.Context, r models.SnapshotRecord) error {
	_, err := s.db.ExecContext(ctx, queryInsertSnapshot, r.Date, r.SKU, r.Quantity, r.EstimatedCost)
	return err
}

func (s *SnapshotStore) ListByDate(ctx context.Context, date string) ([]models.SnapshotRecord, error) {
	rows, err := s.db.QueryContext(ctx, querySnapshotByDate, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.SnapshotRecord
	if err := sqlx.StructScan(rows, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ByDate returns the snapshot of date keyed by SKU.
func (s *SnapshotStore) ByDate(ctx context.Context, date string) (map[string]models.SnapshotRecord, error) {
	records, err := s.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	out := make(map[string]models.SnapshotRecord, len(records))
	for _, r := range records {
		out[r.SKU] = r
	}
	return out, nil
}

func (s *SnapshotStore) CountByDate(ctx context.Context, date string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, queryCountSnapshotDate, date).Scan(&count)
	return count, err
}

// LatestDate returns the most recent snapshot date, or "" when none exists.
func (s *SnapshotStore) LatestDate(ctx context.Context) (string, error) {
	return s.scanDate(ctx, queryLatestSnapshotDate)
}

// PreviousDate returns the latest snapshot date strictly before date, or "".
func (s *SnapshotStore) PreviousDate(ctx context.Context, date string) (string, error) {
	return s.scanDate(ctx, queryPreviousSnapshotDate, date)
}

// NextDate returns the earliest snapshot date strictly after date, or "".
func (s *SnapshotStore) NextDate(ctx context.Context, date string) (string, error) {
	return s.scanDate(ctx, queryNextSnapshotDate, date)
}

func (s *SnapshotStore) Dates(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, querySnapshotDates)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (s *SnapshotStore) scanDate(ctx context.Context, query string, args ...any) (string, error) {
	var d string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&d); err != nil {
		return "", err
	}
	return d, nil
}

// deleteExcept lists the SKUs of date with listQuery and runs deleteQuery
// (date, sku) for every one missing from keep.
func deleteExcept(ctx context.Context, db QueryInterceptor, listQuery, deleteQuery, date string, keep map[string]struct{}) (int64, error) {
	rows, err := db.QueryContext(ctx, listQuery, date)
	if err != nil {
		return 0, err
	}
	var stale []string
	for rows.Next() {
		var sku string
		if err := rows.Scan(&sku); err != nil {
			rows.Close()
			return 0, err
		}
		if _, ok := keep[sku]; !ok {
			stale = append(stale, sku)
		}
	}
	if err := rows.Close(); err != nil {
		return 0, err
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, sku := range stale {
		if _, err := db.ExecContext(ctx, deleteQuery, date, sku); err != nil {
			return 0, err
		}
	}
	return int64(len(stale)), nil
}
