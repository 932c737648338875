package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

// CurrentViewRow is one row of the materialized current view.
type CurrentViewRow struct {
	SKU            string  `db:"sku" json:"sku"`
	Title          string  `db:"title" json:"title"`
	UPC            string  `db:"upc" json:"upc"`
	Category1      string  `db:"category1" json:"category1"`
	Category2      string  `db:"category2" json:"category2"`
	Quantity       int64   `db:"quantity" json:"quantity"`
	EstimatedCost  float64 `db:"estimated_cost" json:"estimatedCost"`
	QuantityChange int64   `db:"quantity_change" json:"quantityChange"`
	AbsoluteChange int64   `db:"absolute_change" json:"absoluteChange"`
	PercentChange  string  `db:"percent_change" json:"percentChange"`
	LastUpdated    string  `db:"last_updated" json:"lastUpdated"`
}

// ViewColumn is the closed set of current view columns that may appear in a
// sort or filter. Anything else is rejected before it reaches SQL.
type ViewColumn string

const (
	ViewColumnSKU            ViewColumn = "sku"
	ViewColumnTitle          ViewColumn = "title"
	ViewColumnUPC            ViewColumn = "upc"
	ViewColumnCategory1      ViewColumn = "category1"
	ViewColumnCategory2      ViewColumn = "category2"
	ViewColumnQuantity       ViewColumn = "quantity"
	ViewColumnEstimatedCost  ViewColumn = "estimated_cost"
	ViewColumnQuantityChange ViewColumn = "quantity_change"
	ViewColumnAbsoluteChange ViewColumn = "absolute_change"
	ViewColumnPercentChange  ViewColumn = "percent_change"
	ViewColumnLastUpdated    ViewColumn = "last_updated"
)

type ColumnKind int

const (
	ColumnKindText ColumnKind = iota
	ColumnKindInteger
	ColumnKindFloat
)

var viewColumnKinds = map[ViewColumn]ColumnKind{
	ViewColumnSKU:            ColumnKindText,
	ViewColumnTitle:          ColumnKindText,
	ViewColumnUPC:            ColumnKindText,
	ViewColumnCategory1:      ColumnKindText,
	ViewColumnCategory2:      ColumnKindText,
	ViewColumnQuantity:       ColumnKindInteger,
	ViewColumnEstimatedCost:  ColumnKindFloat,
	ViewColumnQuantityChange: ColumnKindInteger,
	ViewColumnAbsoluteChange: ColumnKindInteger,
	ViewColumnPercentChange:  ColumnKindText,
	ViewColumnLastUpdated:    ColumnKindText,
}

// camelCase aliases used by grid clients.
var viewColumnAliases = map[string]ViewColumn{
	"estimatedCost":  ViewColumnEstimatedCost,
	"quantityChange": ViewColumnQuantityChange,
	"absoluteChange": ViewColumnAbsoluteChange,
	"percentChange":  ViewColumnPercentChange,
	"lastUpdated":    ViewColumnLastUpdated,
}

// ParseViewColumn resolves a caller-supplied column name against the allow-list.
func ParseViewColumn(field, name string) (ViewColumn, error) {
	c := ViewColumn(strings.TrimSpace(name))
	if _, ok := viewColumnKinds[c]; ok {
		return c, nil
	}
	if alias, ok := viewColumnAliases[string(c)]; ok {
		return alias, nil
	}
	return "", srvErrors.NewValidationErrorf(field, "unknown column %q, expected one of %s", name, columnList())
}

func (c ViewColumn) Kind() ColumnKind {
	return viewColumnKinds[c]
}

func (c ViewColumn) IsNumeric() bool {
	k := c.Kind()
	return k == ColumnKindInteger || k == ColumnKindFloat
}

// ViewColumns returns every queryable column.
func ViewColumns() []ViewColumn {
	return []ViewColumn{
		ViewColumnSKU, ViewColumnTitle, ViewColumnUPC, ViewColumnCategory1, ViewColumnCategory2,
		ViewColumnQuantity, ViewColumnEstimatedCost, ViewColumnQuantityChange,
		ViewColumnAbsoluteChange, ViewColumnPercentChange, ViewColumnLastUpdated,
	}
}

func columnList() string {
	names := make([]string, 0, len(viewColumnKinds))
	for _, c := range ViewColumns() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

type FilterType string

const (
	FilterTypeContains    FilterType = "contains"
	FilterTypeEquals      FilterType = "equals"
	FilterTypeGreaterThan FilterType = "greaterThan"
	FilterTypeLessThan    FilterType = "lessThan"
)

// FilterCondition is one column predicate. The value is accepted under
// "value" or, for grid clients, "filter", as a JSON string or number.
type FilterCondition struct {
	Type  FilterType `json:"type"`
	Value string     `json:"value"`
}

func (f *FilterCondition) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("filter descriptor must be an object: %w", err)
	}
	if t, ok := raw["type"]; ok {
		var s string
		if err := json.Unmarshal(t, &s); err != nil {
			return fmt.Errorf("filter type must be a string: %w", err)
		}
		f.Type = FilterType(s)
	}
	v, ok := raw["value"]
	if !ok {
		v, ok = raw["filter"]
	}
	if !ok {
		return nil
	}
	value, err := scalarString(v)
	if err != nil {
		return err
	}
	f.Value = value
	return nil
}

func scalarString(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("filter value must be a string or number")
	}
	return n.String(), nil
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec orders a paginated read. Grid clients may send {colId, sort}.
type SortSpec struct {
	Column    string        `json:"column"`
	Direction SortDirection `json:"direction"`
}

func (s *SortSpec) UnmarshalJSON(data []byte) error {
	var raw struct {
		Column    string `json:"column"`
		Direction string `json:"direction"`
		ColID     string `json:"colId"`
		Sort      string `json:"sort"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("sort descriptor must be an object: %w", err)
	}
	s.Column = raw.Column
	if s.Column == "" {
		s.Column = raw.ColID
	}
	s.Direction = SortDirection(strings.ToLower(raw.Direction))
	if s.Direction == "" {
		s.Direction = SortDirection(strings.ToLower(raw.Sort))
	}
	return nil
}

// InventoryQuery is the input of a paginated current view read.
type InventoryQuery struct {
	Page    int
	Limit   int
	Sort    *SortSpec
	Filters map[string]FilterCondition
	Search  string
}

type PaginatedResult struct {
	Data       []CurrentViewRow `json:"data"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

type PageResult struct {
	Data   []CurrentViewRow `json:"data"`
	Total  int              `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type SearchResult struct {
	SKU       string `db:"sku" json:"sku"`
	Title     string `db:"title" json:"title"`
	Quantity  int64  `db:"quantity" json:"quantity"`
	Category1 string `db:"category1" json:"category1"`
}

type LowStockResult struct {
	Items     []CurrentViewRow `json:"items"`
	Count     int              `json:"count"`
	Threshold int              `json:"threshold"`
}
