package models

import "time"

// Product is the SKU master record.
type Product struct {
	SKU       string    `db:"sku" json:"sku"`
	Title     string    `db:"title" json:"title"`
	UPC       string    `db:"upc" json:"upc"`
	Category1 string    `db:"category1" json:"category1"`
	Category2 string    `db:"category2" json:"category2"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// UnknownTitle replaces a blank title on upsert.
const UnknownTitle = "Unknown"
