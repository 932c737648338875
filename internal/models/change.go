package models

type ChangeType string

const (
	ChangeTypeIncrease ChangeType = "increase"
	ChangeTypeDecrease ChangeType = "decrease"
)

// PercentNotAvailable is the percent change of a SKU whose previous quantity was zero.
const PercentNotAvailable = "N/A"

// ChangeRecord is the movement of one SKU between two snapshot dates.
// Only records with a non-zero absolute change are persisted.
type ChangeRecord struct {
	Date           string     `db:"date" json:"date"`
	SKU            string     `db:"sku" json:"sku"`
	Title          string     `db:"title" json:"title"`
	UPC            string     `db:"upc" json:"upc"`
	Category1      string     `db:"category1" json:"category1"`
	Category2      string     `db:"category2" json:"category2"`
	YesterdayQty   int64      `db:"yesterday_qty" json:"yesterdayQty"`
	TodayQty       int64      `db:"today_qty" json:"todayQty"`
	QuantityChange int64      `db:"quantity_change" json:"quantityChange"`
	AbsoluteChange int64      `db:"absolute_change" json:"absoluteChange"`
	PercentChange  string     `db:"percent_change" json:"percentChange"`
	ChangeType     ChangeType `db:"change_type" json:"changeType"`
	EstimatedCost  float64    `db:"estimated_cost" json:"estimatedCost"`
	TotalValue     float64    `db:"total_value" json:"totalValue"`
}

// DeltaResult summarizes a delta computation.
type DeltaResult struct {
	Date         string         `json:"date"`
	PreviousDate string         `json:"previousDate"`
	Changes      []ChangeRecord `json:"-"`
	Increases    int            `json:"increases"`
	Decreases    int            `json:"decreases"`
}
