package models

// ExportRow is one raw row of a per-date inventory export. All fields are
// kept as text; numeric coercion happens during ingestion.
type ExportRow struct {
	SKU           string `json:"sku"`
	Title         string `json:"title"`
	UPC           string `json:"upc"`
	Category1     string `json:"category1"`
	Category2     string `json:"category2"`
	Quantity      string `json:"quantity"`
	EstimatedCost string `json:"estimatedCost"`
}

// SnapshotRecord is the quantity and cost of one SKU on one date.
type SnapshotRecord struct {
	Date          string  `db:"date" json:"date"`
	SKU           string  `db:"sku" json:"sku"`
	Quantity      int64   `db:"quantity" json:"quantity"`
	EstimatedCost float64 `db:"estimated_cost" json:"estimatedCost"`
}

// IngestResult summarizes a snapshot ingest.
type IngestResult struct {
	Date    string   `json:"date"`
	Saved   int      `json:"saved"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// DatedExport is the content of one export file with its resolved date.
type DatedExport struct {
	Date   string
	Source string
	Rows   []ExportRow
}
