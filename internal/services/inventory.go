package services

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/skuledger/skuledger/internal/config"
	"github.com/skuledger/skuledger/internal/models"
	"github.com/skuledger/skuledger/internal/store"
	"github.com/skuledger/skuledger/internal/util"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

// InventoryService is the read side over the current view.
type InventoryService struct {
	store *store.Store
	cfg   config.Query
}

func NewInventoryService(st *store.Store, cfg config.Query) *InventoryService {
	return &InventoryService{store: st, cfg: cfg}
}

// GetPaginated validates q and returns one page of the view plus the total
// number of matching rows. Both reads run in one transaction with the same
// predicate. Zero Page or Limit select the defaults.
func (s *InventoryService) GetPaginated(ctx context.Context, q models.InventoryQuery) (*models.PaginatedResult, error) {
	page, limit, err := s.pageAndLimit(q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	filters, err := s.buildFilterOptions(q)
	if err != nil {
		return nil, err
	}
	sortOpt, err := buildSortOption(q.Sort)
	if err != nil {
		return nil, err
	}

	listOpts := append([]store.ListOption{}, filters...)
	listOpts = append(listOpts,
		sortOpt,
		store.WithLimit(uint64(limit)),
		store.WithOffset(uint64((page-1)*limit)),
	)

	result := &models.PaginatedResult{Page: page, Limit: limit}
	err = s.store.ReadTx(ctx, func(ctx context.Context, tx *store.Tx) error {
		data, err := tx.View().List(ctx, listOpts...)
		if err != nil {
			return err
		}
		total, err := tx.View().Count(ctx, filters...)
		if err != nil {
			return err
		}
		result.Data = data
		result.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	result.TotalPages = util.PageCount(result.Total, limit)
	return result, nil
}

// GetPage returns limit rows starting at offset, ordered by SKU.
func (s *InventoryService) GetPage(ctx context.Context, limit, offset int) (*models.PageResult, error) {
	_, limit, err := s.pageAndLimit(1, limit)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, srvErrors.NewValidationError("offset", "must not be negative")
	}

	result := &models.PageResult{Limit: limit, Offset: offset}
	err = s.store.ReadTx(ctx, func(ctx context.Context, tx *store.Tx) error {
		data, err := tx.View().List(ctx,
			store.WithDefaultSort(),
			store.WithLimit(uint64(limit)),
			store.WithOffset(uint64(offset)),
		)
		if err != nil {
			return err
		}
		total, err := tx.View().Count(ctx)
		if err != nil {
			return err
		}
		result.Data = data
		result.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Search matches a SKU prefix or a title substring. A blank term returns nothing.
func (s *InventoryService) Search(ctx context.Context, term string, limit int) ([]models.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.SearchResult{}, nil
	}
	limit, err := s.boundedLimit("limit", limit, s.cfg.SearchDefaultLimit)
	if err != nil {
		return nil, err
	}
	return s.store.View().Search(ctx, term, uint64(limit))
}

// TopMovers returns the rows that moved, largest absolute change first.
func (s *InventoryService) TopMovers(ctx context.Context, limit int) ([]models.CurrentViewRow, error) {
	limit, err := s.boundedLimit("limit", limit, s.cfg.TopMoversDefaultLimit)
	if err != nil {
		return nil, err
	}
	return s.store.View().List(ctx,
		store.ByMovement(),
		store.WithSort(models.ViewColumnAbsoluteChange, true),
		store.WithLimit(uint64(limit)),
	)
}

// LowStock returns rows with 0 < quantity <= threshold, lowest quantity first.
// A nil threshold selects the configured default.
func (s *InventoryService) LowStock(ctx context.Context, threshold *int) (*models.LowStockResult, error) {
	t := s.cfg.LowStockDefault
	if threshold != nil {
		t = *threshold
	}
	if t < 0 {
		return nil, srvErrors.NewValidationError("threshold", "must not be negative")
	}

	items, err := s.store.View().List(ctx,
		store.ByLowStock(t),
		store.WithSort(models.ViewColumnQuantity, false),
	)
	if err != nil {
		return nil, err
	}
	return &models.LowStockResult{Items: items, Count: len(items), Threshold: t}, nil
}

// DailyStats returns the stored metrics of date.
func (s *InventoryService) DailyStats(ctx context.Context, date string) (*models.DailyMetrics, error) {
	date, err := models.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	return s.store.Metrics().Get(ctx, date)
}

// Stats summarizes the current view.
func (s *InventoryService) Stats(ctx context.Context) (*models.InventoryStats, error) {
	st, err := s.store.View().Stats(ctx, s.cfg.StatsLowStockThreshold)
	if err != nil {
		return nil, err
	}
	st.TotalValue = util.Round(st.TotalValue)
	st.AvgValue = util.Round(st.AvgValue)
	return st, nil
}

func (s *InventoryService) pageAndLimit(page, limit int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return 0, 0, srvErrors.NewValidationErrorf("page", "must be at least 1, got %d", page)
	}
	limit, err := s.boundedLimit("limit", limit, s.cfg.DefaultPageSize)
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func (s *InventoryService) boundedLimit(field string, limit, def int) (int, error) {
	if limit == 0 {
		limit = def
	}
	if limit < 1 {
		return 0, srvErrors.NewValidationErrorf(field, "must be at least 1, got %d", limit)
	}
	if s.cfg.MaxPageSize > 0 && limit > s.cfg.MaxPageSize {
		return 0, srvErrors.NewValidationErrorf(field, "must be within [1, %d], got %d", s.cfg.MaxPageSize, limit)
	}
	return limit, nil
}

// buildFilterOptions validates every filter against the column allow-list.
// The returned options carry no sort or paging so they can drive Count too.
func (s *InventoryService) buildFilterOptions(q models.InventoryQuery) ([]store.ListOption, error) {
	names := make([]string, 0, len(q.Filters))
	for name := range q.Filters {
		names = append(names, name)
	}
	sort.Strings(names)

	filters := make([]store.ViewFilter, 0, len(names))
	for _, name := range names {
		f, err := validateFilter(name, q.Filters[name])
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	var opts []store.ListOption
	if len(filters) > 0 {
		opts = append(opts, store.WithFilters(filters...))
	}
	if term := strings.TrimSpace(q.Search); term != "" {
		opts = append(opts, store.WithSearch(term))
	}
	return opts, nil
}

func validateFilter(name string, cond models.FilterCondition) (store.ViewFilter, error) {
	field := "filter." + name
	col, err := models.ParseViewColumn(field, name)
	if err != nil {
		return store.ViewFilter{}, err
	}

	f := store.ViewFilter{Column: col, Type: cond.Type}
	value := strings.TrimSpace(cond.Value)

	switch cond.Type {
	case models.FilterTypeContains:
		if col.IsNumeric() {
			return f, srvErrors.NewValidationErrorf(field, "contains is not supported on numeric column %s", col)
		}
		if value == "" {
			return f, srvErrors.NewValidationError(field, "contains requires a value")
		}
		f.Text = value
	case models.FilterTypeEquals:
		if !col.IsNumeric() {
			f.Text = value
			return f, nil
		}
		if f.Number, err = parseNumber(field, value); err != nil {
			return f, err
		}
	case models.FilterTypeGreaterThan, models.FilterTypeLessThan:
		if !col.IsNumeric() {
			return f, srvErrors.NewValidationErrorf(field, "%s requires a numeric column, %s is text", cond.Type, col)
		}
		if f.Number, err = parseNumber(field, value); err != nil {
			return f, err
		}
	case "":
		return f, srvErrors.NewValidationError(field, "filter type is required")
	default:
		return f, srvErrors.NewValidationErrorf(field, "unknown filter type %q", cond.Type)
	}
	return f, nil
}

func parseNumber(field, value string) (float64, error) {
	if value == "" {
		return 0, srvErrors.NewValidationError(field, "a numeric value is required")
	}
	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, srvErrors.NewValidationErrorf(field, "%q is not a number", value)
	}
	return n, nil
}

func buildSortOption(spec *models.SortSpec) (store.ListOption, error) {
	if spec == nil || strings.TrimSpace(spec.Column) == "" {
		return store.WithDefaultSort(), nil
	}
	col, err := models.ParseViewColumn("sort.column", spec.Column)
	if err != nil {
		return nil, err
	}
	switch spec.Direction {
	case "", models.SortAsc:
		return store.WithSort(col, false), nil
	case models.SortDesc:
		return store.WithSort(col, true), nil
	default:
		return nil, srvErrors.NewValidationErrorf("sort.direction", "must be asc or desc, got %q", spec.Direction)
	}
}
