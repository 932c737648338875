package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/skuledger/skuledger/internal/models"
)

// ReadCSV parses a comma separated export. A UTF-8 byte order mark is
// ignored and rows may have fewer or more cells than the header.
func ReadCSV(r io.Reader) ([]models.ExportRow, error) {
	br := bufio.NewReader(r)
	if bom, err := br.Peek(3); err == nil && string(bom) == "\xef\xbb\xbf" {
		_, _ = br.Discard(3)
	}

	reader := csv.NewReader(br)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rowsFromRecords(records)
}
