package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/skuledger/skuledger/internal/models"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

// Format of an export file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// header names of the export columns, lowercased. The first entry of each
// list is the name written by the inventory system; the others are aliases.
var headerAliases = map[string][]string{
	"sku":            {"master sku", "sku"},
	"title":          {"title", "name"},
	"upc":            {"upc"},
	"category1":      {"category 1", "category1"},
	"category2":      {"category 2", "category2"},
	"quantity":       {"quantity", "qty"},
	"estimated_cost": {"estimated cost", "cost"},
}

// columnIndex maps each known field to its position in a header row.
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	idx := columnIndex{}
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			if pos, ok := positions[alias]; ok {
				idx[field] = pos
				break
			}
		}
	}
	if _, ok := idx["sku"]; !ok {
		return nil, srvErrors.NewValidationError("header", "missing Master SKU column")
	}
	return idx, nil
}

func (c columnIndex) row(record []string) models.ExportRow {
	cell := func(field string) string {
		pos, ok := c[field]
		if !ok || pos >= len(record) {
			return ""
		}
		return record[pos]
	}
	return models.ExportRow{
		SKU:           cell("sku"),
		Title:         cell("title"),
		UPC:           cell("upc"),
		Category1:     cell("category1"),
		Category2:     cell("category2"),
		Quantity:      cell("quantity"),
		EstimatedCost: cell("estimated_cost"),
	}
}

// rowsFromRecords turns a header row plus data rows into export rows.
// Completely empty rows are dropped.
func rowsFromRecords(records [][]string) ([]models.ExportRow, error) {
	if len(records) == 0 {
		return nil, srvErrors.NewValidationError("file", "export is empty")
	}
	idx, err := newColumnIndex(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]models.ExportRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if blank(record) {
			continue
		}
		rows = append(rows, idx.row(record))
	}
	return rows, nil
}

func blank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// FormatOf picks the reader from the file extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", srvErrors.NewValidationErrorf("file", "unsupported export type %q", filepath.Ext(filename))
	}
}

// Read parses an export in the given format.
func Read(r io.Reader, format Format) ([]models.ExportRow, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r)
	default:
		return nil, srvErrors.NewValidationErrorf("format", "unsupported export format %q", format)
	}
}

// ReadFile parses the export at path, choosing the format from its extension.
func ReadFile(path string) ([]models.ExportRow, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export %s: %w", path, err)
	}
	defer f.Close()

	rows, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", path, err)
	}
	return rows, nil
}

var (
	isoDate   = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
	shortDate = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{2})`)
)

// DateFromFilename resolves the snapshot date an export file name carries.
//
//	flxpoint-export-2025-08-09T07-08-52.csv → 2025-08-09
//	Original-export-8-8-25.csv              → 2025-08-08
//
// Two-digit years below 70 are read as 20xx.
func DateFromFilename(filename string) (string, error) {
	base := filepath.Base(filename)

	if m := isoDate.FindString(base); m != "" {
		return models.ParseDate("filename", m)
	}
	if m := shortDate.FindStringSubmatch(base); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 70 {
			year += 2000
		} else {
			year += 1900
		}
		return models.ParseDate("filename", fmt.Sprintf("%04d-%02d-%02d", year, month, day))
	}
	return "", srvErrors.NewValidationErrorf("filename", "no date found in %q", base)
}

// Load reads every export file and resolves its date from the file name.
func Load(paths ...string) ([]models.DatedExport, error) {
	exports := make([]models.DatedExport, 0, len(paths))
	for _, p := range paths {
		date, err := DateFromFilename(p)
		if err != nil {
			return nil, err
		}
		rows, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		exports = append(exports, models.DatedExport{Date: date, Source: p, Rows: rows})
	}
	return exports, nil
}
