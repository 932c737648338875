package models

import "time"

// DailyMetrics holds the aggregate statistics of one snapshot date.
type DailyMetrics struct {
	Date                string    `db:"date" json:"date"`
	TotalProducts       int64     `db:"total_products" json:"totalProducts"`
	TotalValue          float64   `db:"total_value" json:"totalValue"`
	OutOfStock          int64     `db:"out_of_stock" json:"outOfStock"`
	LowStock            int64     `db:"low_stock" json:"lowStock"`
	Increases           int64     `db:"increases" json:"increases"`
	Decreases           int64     `db:"decreases" json:"decreases"`
	NetChangeUnits      int64     `db:"net_change_units" json:"netChangeUnits"`
	TotalAbsChangeUnits int64     `db:"total_abs_change_units" json:"totalAbsChangeUnits"`
	TotalAbsChangeUSD   float64   `db:"total_abs_change_usd" json:"totalAbsChangeUsd"`
	GeneratedAt         time.Time `db:"generated_at" json:"generatedAt"`
}

// InventoryStats summarizes the current view.
type InventoryStats struct {
	AsOfDate      string  `json:"asOfDate"`
	TotalProducts int64   `json:"totalProducts"`
	TotalValue    float64 `json:"totalValue"`
	OutOfStock    int64   `json:"outOfStock"`
	LowStock      int64   `json:"lowStock"`
	ChangedToday  int64   `json:"changedToday"`
	AvgValue      float64 `json:"avgValue"`
}

type DailyTrend struct {
	Date          string `db:"date" json:"date"`
	ChangesCount  int64  `db:"changes_count" json:"changesCount"`
	TotalMovement int64  `db:"total_movement" json:"totalMovement"`
	Increases     int64  `db:"increases" json:"increases"`
	Decreases     int64  `db:"decreases" json:"decreases"`
}

type PeriodMover struct {
	SKU             string `db:"sku" json:"sku"`
	Title           string `db:"title" json:"title"`
	TotalMovement   int64  `db:"total_movement" json:"totalMovement"`
	ChangeFrequency int64  `db:"change_frequency" json:"changeFrequency"`
}

type CategoryBreakdown struct {
	Category      string `db:"category1" json:"category"`
	Products      int64  `db:"products" json:"products"`
	ChangesCount  int64  `db:"changes_count" json:"changesCount"`
	TotalMovement int64  `db:"total_movement" json:"totalMovement"`
}

// Analytics aggregates change records over a date range.
type Analytics struct {
	From              string              `json:"startDate"`
	To                string              `json:"endDate"`
	DailyTrends       []DailyTrend        `json:"dailyTrends"`
	TopMovers         []PeriodMover       `json:"topMovers"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
}
