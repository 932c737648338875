package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/skuledger/skuledger/internal/models"
)

// ViewStore handles the materialized current inventory view.
type ViewStore struct {
	db QueryInterceptor
}

func NewViewStore(db QueryInterceptor) *ViewStore {
	return &ViewStore{db: db}
}

const viewTable = "current_inventory_view"

var viewColumns = []string{
	"sku", "title", "upc", "category1", "category2", "quantity", "estimated_cost",
	"quantity_change", "absolute_change", "percent_change", "last_updated",
}

type viewIndex struct {
	name   string
	column string
	unique bool
}

// Indexes of current_inventory_view. They are recreated on every rebuild.
var viewIndexes = []viewIndex{
	{name: "idx_view_sku", column: "sku", unique: true},
	{name: "idx_view_title", column: "title"},
	{name: "idx_view_upc", column: "upc"},
	{name: "idx_view_category1", column: "category1"},
	{name: "idx_view_category2", column: "category2"},
	{name: "idx_view_quantity", column: "quantity"},
	{name: "idx_view_estimated_cost", column: "estimated_cost"},
	{name: "idx_view_quantity_change", column: "quantity_change"},
	{name: "idx_view_absolute_change", column: "absolute_change"},
}

func (i viewIndex) create() string {
	kind := "INDEX"
	if i.unique {
		kind = "UNIQUE INDEX"
	}
	return fmt.Sprintf("CREATE %s %s ON %s (%s)", kind, i.name, viewTable, i.column)
}

// Rebuild replaces the whole view with the snapshot of asOfDate joined with
// products and that date's change records. Returns the number of rows written.
//
// The rows are built in a staging table which is then renamed over the view,
// so no key is ever deleted and inserted again in the same table. Callers run
// it inside WriteTx: readers keep seeing the previous view until commit.
func (s *ViewStore) Rebuild(ctx context.Context, asOfDate string) (int64, error) {
	if _, err := s.db.ExecContext(ctx, queryDropViewStaging); err != nil {
		return 0, fmt.Errorf("failed to drop view staging table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, queryCreateViewStaging); err != nil {
		return 0, fmt.Errorf("failed to create view staging table: %w", err)
	}
	res, err := s.db.ExecContext(ctx, queryFillViewStaging, asOfDate)
	if err != nil {
		return 0, fmt.Errorf("failed to rebuild view: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	for _, idx := range viewIndexes {
		if _, err := s.db.ExecContext(ctx, "DROP INDEX IF EXISTS "+idx.name); err != nil {
			return 0, fmt.Errorf("failed to drop index %s: %w", idx.name, err)
		}
	}
	if _, err := s.db.ExecContext(ctx, queryDropView); err != nil {
		return 0, fmt.Errorf("failed to drop view: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, querySwapView); err != nil {
		return 0, fmt.Errorf("failed to swap view: %w", err)
	}
	for _, idx := range viewIndexes {
		if _, err := s.db.ExecContext(ctx, idx.create()); err != nil {
			return 0, fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}
	return n, nil
}

func (s *ViewStore) List(ctx context.Context, opts ...ListOption) ([]models.CurrentViewRow, error) {
	builder := sq.Select(viewColumns...).From(viewTable)

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

	out := []models.CurrentViewRow{}
	if err := sqlx.StructScan(rows, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count takes the filter options of a List call. Sort and paging options must
// not be passed.
func (s *ViewStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From(viewTable)

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// Search matches a SKU prefix or a title substring, case-insensitively.
func (s *ViewStore) Search(ctx context.Context, term string, limit uint64) ([]models.SearchResult, error) {
	lower := strings.ToLower(term)
	query, args, err := sq.Select("sku", "title", "quantity", "category1").
		From(viewTable).
		Where(sq.Or{
			sq.Expr(`LOWER(sku) LIKE ? ESCAPE '\'`, escapeLike(lower)+"%"),
			sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, "%"+escapeLike(lower)+"%"),
		}).
		OrderBy("sku").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SearchResult{}
	if err := sqlx.StructScan(rows, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats aggregates the whole view. Rows with 0 < quantity <= lowStockThreshold count as low stock.
func (s *ViewStore) Stats(ctx context.Context, lowStockThreshold int) (*models.InventoryStats, error) {
	var st models.InventoryStats
	err := s.db.QueryRowContext(ctx, queryViewStats, lowStockThreshold).Scan(
		&st.TotalProducts,
		&st.TotalValue,
		&st.OutOfStock,
		&st.LowStock,
		&st.ChangedToday,
		&st.AsOfDate,
	)
	if err != nil {
		return nil, err
	}
	if st.TotalProducts > 0 {
		st.AvgValue = st.TotalValue / float64(st.TotalProducts)
	}
	return &st, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

// ViewFilter is one validated column predicate over the current view.
// Number is used for numeric columns, Text for text columns.
type ViewFilter struct {
	Column models.ViewColumn
	Type   models.FilterType
	Text   string
	Number float64
}

// WithFilters ANDs every filter into the WHERE clause. Columns must already be
// resolved through models.ParseViewColumn.
func WithFilters(filters ...ViewFilter) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		for _, f := range filters {
			col := string(f.Column)
			switch f.Type {
			case models.FilterTypeContains:
				b = b.Where(sq.Expr("LOWER("+col+`) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(f.Text))+"%"))
			case models.FilterTypeEquals:
				if f.Column.IsNumeric() {
					b = b.Where(sq.Eq{col: f.Number})
				} else {
					b = b.Where(sq.Eq{col: f.Text})
				}
			case models.FilterTypeGreaterThan:
				b = b.Where(sq.Gt{col: f.Number})
			case models.FilterTypeLessThan:
				b = b.Where(sq.Lt{col: f.Number})
			}
		}
		return b
	}
}

// WithSearch matches term as a case-insensitive substring of sku, title or upc.
func WithSearch(term string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if term == "" {
			return b
		}
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		return b.Where(sq.Or{
			sq.Expr(`LOWER(sku) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(upc) LIKE ? ESCAPE '\'`, pattern),
		})
	}
}

func ByMovement() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Gt{"absolute_change": 0})
	}
}

// ByLowStock keeps rows with 0 < quantity <= threshold.
func ByLowStock(threshold int) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.And{sq.Gt{"quantity": 0}, sq.LtOrEq{"quantity": threshold}})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}

func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("sku ASC")
	}
}

// WithSort orders by column and always appends sku as tie-breaker so paging is stable.
func WithSort(column models.ViewColumn, desc bool) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if column == models.ViewColumnSKU {
			if desc {
				return b.OrderBy("sku DESC")
			}
			return b.OrderBy("sku ASC")
		}
		dir := " ASC"
		if desc {
			dir = " DESC"
		}
		return b.OrderBy(string(column)+dir, "sku ASC")
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
