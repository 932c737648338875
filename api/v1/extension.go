package v1

import (
	"encoding/json"
	"strings"

	"github.com/skuledger/skuledger/internal/models"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

// NewInventoryItemFromModel converts a view row to an API item.
func NewInventoryItemFromModel(r models.CurrentViewRow) InventoryItem {
	return InventoryItem{
		Sku:            r.SKU,
		Title:          r.Title,
		Upc:            r.UPC,
		Category1:      r.Category1,
		Category2:      r.Category2,
		Quantity:       r.Quantity,
		EstimatedCost:  r.EstimatedCost,
		QuantityChange: r.QuantityChange,
		AbsoluteChange: r.AbsoluteChange,
		PercentChange:  r.PercentChange,
		LastUpdated:    r.LastUpdated,
	}
}

func NewInventoryItems(rows []models.CurrentViewRow) []InventoryItem {
	items := make([]InventoryItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, NewInventoryItemFromModel(r))
	}
	return items
}

func NewPaginatedInventory(r *models.PaginatedResult) PaginatedInventory {
	return PaginatedInventory{
		Data:       NewInventoryItems(r.Data),
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
	}
}

func NewCurrentInventory(r *models.PageResult) CurrentInventory {
	return CurrentInventory{
		Data:   NewInventoryItems(r.Data),
		Total:  r.Total,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

func NewSearchResults(results []models.SearchResult) SearchResults {
	out := SearchResults{Results: make([]SearchResult, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, SearchResult{
			Sku:       r.SKU,
			Title:     r.Title,
			Quantity:  r.Quantity,
			Category1: r.Category1,
		})
	}
	return out
}

func NewLowStock(r *models.LowStockResult) LowStock {
	return LowStock{
		Items:     NewInventoryItems(r.Items),
		Count:     r.Count,
		Threshold: r.Threshold,
	}
}

func NewInventoryStats(s *models.InventoryStats) InventoryStats {
	return InventoryStats{
		AsOfDate:      s.AsOfDate,
		TotalProducts: s.TotalProducts,
		TotalValue:    s.TotalValue,
		OutOfStock:    s.OutOfStock,
		LowStock:      s.LowStock,
		ChangedToday:  s.ChangedToday,
		AvgValue:      s.AvgValue,
	}
}

func NewDailyMetricsFromModel(m models.DailyMetrics) DailyMetrics {
	return DailyMetrics{
		Date:                m.Date,
		TotalProducts:       m.TotalProducts,
		TotalValue:          m.TotalValue,
		OutOfStock:          m.OutOfStock,
		LowStock:            m.LowStock,
		Increases:           m.Increases,
		Decreases:           m.Decreases,
		NetChangeUnits:      m.NetChangeUnits,
		TotalAbsChangeUnits: m.TotalAbsChangeUnits,
		TotalAbsChangeUsd:   m.TotalAbsChangeUSD,
		GeneratedAt:         m.GeneratedAt,
	}
}

func NewChangeList(records []models.ChangeRecord) ChangeList {
	out := ChangeList{Changes: make([]ChangeRecord, 0, len(records)), Count: len(records)}
	for _, c := range records {
		out.Changes = append(out.Changes, ChangeRecord{
			Date:           c.Date,
			Sku:            c.SKU,
			Title:          c.Title,
			Upc:            c.UPC,
			Category1:      c.Category1,
			Category2:      c.Category2,
			YesterdayQty:   c.YesterdayQty,
			TodayQty:       c.TodayQty,
			QuantityChange: c.QuantityChange,
			AbsoluteChange: c.AbsoluteChange,
			PercentChange:  c.PercentChange,
			ChangeType:     string(c.ChangeType),
			EstimatedCost:  c.EstimatedCost,
			TotalValue:     c.TotalValue,
		})
	}
	return out
}

func NewJobFromModel(j models.Job) Job {
	job := Job{
		Id:         j.ID,
		Kind:       string(j.Kind),
		Result:     j.Result,
		CreatedAt:  j.CreatedAt,
		StartedAt:  j.StartedAt,
		FinishedAt: j.FinishedAt,
	}

	switch j.State {
	case models.JobStateRunning:
		job.State = JobStateRunning
	case models.JobStateSucceeded:
		job.State = JobStateSucceeded
	case models.JobStateFailed:
		job.State = JobStateFailed
	default:
		job.State = JobStatePending
	}

	if j.Error != "" {
		e := j.Error
		job.Error = &e
	}
	return job
}

// ToModel converts the posted rows to export rows.
func (u SnapshotUpload) ToModel() []models.ExportRow {
	rows := make([]models.ExportRow, 0, len(u.Rows))
	for _, r := range u.Rows {
		rows = append(rows, models.ExportRow{
			SKU:           r.Sku,
			Title:         r.Title,
			UPC:           r.Upc,
			Category1:     r.Category1,
			Category2:     r.Category2,
			Quantity:      r.Quantity,
			EstimatedCost: r.EstimatedCost,
		})
	}
	return rows
}

// ToQuery decodes the sort and filter parameters. Malformed JSON is a
// validation error, never silently ignored.
func (p GetPaginatedInventoryParams) ToQuery() (models.InventoryQuery, error) {
	var q models.InventoryQuery

	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.Limit != nil {
		q.Limit = *p.Limit
	}
	if p.Search != nil {
		q.Search = strings.TrimSpace(*p.Search)
	}

	if p.Sort != nil && strings.TrimSpace(*p.Sort) != "" {
		sort, err := parseSort(strings.TrimSpace(*p.Sort))
		if err != nil {
			return q, err
		}
		q.Sort = sort
	}

	if p.Filter != nil && strings.TrimSpace(*p.Filter) != "" {
		var filters map[string]models.FilterCondition
		if err := json.Unmarshal([]byte(*p.Filter), &filters); err != nil {
			return q, srvErrors.NewValidationErrorf("filter", "invalid filter: %v", err)
		}
		q.Filters = filters
	}
	return q, nil
}

// parseSort accepts a JSON sort object or column[:direction].
func parseSort(raw string) (*models.SortSpec, error) {
	if strings.HasPrefix(raw, "{") {
		var spec models.SortSpec
		if err := json.Unmarshal([]byte(raw), &spec); err != nil {
			return nil, srvErrors.NewValidationErrorf("sort", "invalid sort: %v", err)
		}
		return &spec, nil
	}

	column, direction, _ := strings.Cut(raw, ":")
	return &models.SortSpec{
		Column:    strings.TrimSpace(column),
		Direction: models.SortDirection(strings.ToLower(strings.TrimSpace(direction))),
	}, nil
}
