package v1

import "time"

// ErrorResponse is the body of every 4xx/5xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// InventoryItem is one row of the current inventory view.
type InventoryItem struct {
	Sku            string  `json:"sku"`
	Title          string  `json:"title"`
	Upc            string  `json:"upc"`
	Category1      string  `json:"category1"`
	Category2      string  `json:"category2"`
	Quantity       int64   `json:"quantity"`
	EstimatedCost  float64 `json:"estimatedCost"`
	QuantityChange int64   `json:"quantityChange"`
	AbsoluteChange int64   `json:"absoluteChange"`
	PercentChange  string  `json:"percentChange"`
	LastUpdated    string  `json:"lastUpdated"`
}

type PaginatedInventory struct {
	Data       []InventoryItem `json:"data"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

type CurrentInventory struct {
	Data   []InventoryItem `json:"data"`
	Total  int             `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

type SearchResult struct {
	Sku       string `json:"sku"`
	Title     string `json:"title"`
	Quantity  int64  `json:"quantity"`
	Category1 string `json:"category1"`
}

type SearchResults struct {
	Results []SearchResult `json:"results"`
}

type TopMovers struct {
	Movers []InventoryItem `json:"movers"`
}

type LowStock struct {
	Items     []InventoryItem `json:"items"`
	Count     int             `json:"count"`
	Threshold int             `json:"threshold"`
}

type InventoryStats struct {
	AsOfDate      string  `json:"asOfDate"`
	TotalProducts int64   `json:"totalProducts"`
	TotalValue    float64 `json:"totalValue"`
	OutOfStock    int64   `json:"outOfStock"`
	LowStock      int64   `json:"lowStock"`
	ChangedToday  int64   `json:"changedToday"`
	AvgValue      float64 `json:"avgValue"`
}

type DailyMetrics struct {
	Date                string    `json:"date"`
	TotalProducts       int64     `json:"totalProducts"`
	TotalValue          float64   `json:"totalValue"`
	OutOfStock          int64     `json:"outOfStock"`
	LowStock            int64     `json:"lowStock"`
	Increases           int64     `json:"increases"`
	Decreases           int64     `json:"decreases"`
	NetChangeUnits      int64     `json:"netChangeUnits"`
	TotalAbsChangeUnits int64     `json:"totalAbsChangeUnits"`
	TotalAbsChangeUsd   float64   `json:"totalAbsChangeUsd"`
	GeneratedAt         time.Time `json:"generatedAt"`
}

type DailyMetricsList struct {
	Metrics []DailyMetrics `json:"metrics"`
}

type ChangeRecord struct {
	Date           string  `json:"date"`
	Sku            string  `json:"sku"`
	Title          string  `json:"title"`
	Upc            string  `json:"upc"`
	Category1      string  `json:"category1"`
	Category2      string  `json:"category2"`
	YesterdayQty   int64   `json:"yesterdayQty"`
	TodayQty       int64   `json:"todayQty"`
	QuantityChange int64   `json:"quantityChange"`
	AbsoluteChange int64   `json:"absoluteChange"`
	PercentChange  string  `json:"percentChange"`
	ChangeType     string  `json:"changeType"`
	EstimatedCost  float64 `json:"estimatedCost"`
	TotalValue     float64 `json:"totalValue"`
}

type ChangeList struct {
	Changes []ChangeRecord `json:"changes"`
	Count   int            `json:"count"`
}

// RefreshViewRequest is the optional body of POST /inventory/refresh-view.
type RefreshViewRequest struct {
	Date *string `json:"date,omitempty"`
}

// ExportRow is one raw export row posted as JSON.
type ExportRow struct {
	Sku           string `json:"sku"`
	Title         string `json:"title"`
	Upc           string `json:"upc"`
	Category1     string `json:"category1"`
	Category2     string `json:"category2"`
	Quantity      string `json:"quantity"`
	EstimatedCost string `json:"estimatedCost"`
}

// SnapshotUpload is the JSON body of POST /snapshots/{date}.
type SnapshotUpload struct {
	Rows []ExportRow `json:"rows"`
}

type JobAccepted struct {
	JobId string `json:"jobId"`
}

type JobState string

const (
	JobStatePending   JobState = "pending"
	JobStateRunning   JobState = "running"
	JobStateSucceeded JobState = "succeeded"
	JobStateFailed    JobState = "failed"
)

type Job struct {
	Id         string     `json:"id"`
	Kind       string     `json:"kind"`
	State      JobState   `json:"state"`
	Error      *string    `json:"error,omitempty"`
	Result     any        `json:"result,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// GetPaginatedInventoryParams defines parameters for GetPaginatedInventory.
type GetPaginatedInventoryParams struct {
	Page  *int `form:"page,omitempty" json:"page,omitempty"`
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`

	// Sort is {"column":"quantity","direction":"desc"}, {"colId":"quantity","sort":"desc"} or quantity:desc.
	Sort *string `form:"sort,omitempty" json:"sort,omitempty"`

	// Filter is a JSON object keyed by column: {"quantity":{"type":"greaterThan","filter":100}}.
	Filter *string `form:"filter,omitempty" json:"filter,omitempty"`
	Search *string `form:"search,omitempty" json:"search,omitempty"`
}

// GetCurrentInventoryParams defines parameters for GetCurrentInventory.
type GetCurrentInventoryParams struct {
	Limit  *int `form:"limit,omitempty" json:"limit,omitempty"`
	Offset *int `form:"offset,omitempty" json:"offset,omitempty"`
}

// SearchInventoryParams defines parameters for SearchInventory.
type SearchInventoryParams struct {
	Q     *string `form:"q,omitempty" json:"q,omitempty"`
	Limit *int    `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetTopMoversParams defines parameters for GetTopMovers.
type GetTopMoversParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetLowStockParams defines parameters for GetLowStock.
type GetLowStockParams struct {
	Threshold *int `form:"threshold,omitempty" json:"threshold,omitempty"`
}

// ListDailyMetricsParams defines parameters for ListDailyMetrics.
type ListDailyMetricsParams struct {
	From *string `form:"from,omitempty" json:"from,omitempty"`
	To   *string `form:"to,omitempty" json:"to,omitempty"`
}

// ListChangesParams defines parameters for ListChanges.
type ListChangesParams struct {
	From string `form:"from" json:"from"`
	To   string `form:"to" json:"to"`
}

// GetAnalyticsParams defines parameters for GetAnalytics.
type GetAnalyticsParams struct {
	From  string `form:"from" json:"from"`
	To    string `form:"to" json:"to"`
	Limit *int   `form:"limit,omitempty" json:"limit,omitempty"`
}
