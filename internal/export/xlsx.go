package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/skuledger/skuledger/internal/models"
	srvErrors "github.com/skuledger/skuledger/pkg/errors"
)

// ReadXLSX parses the first sheet of an Excel workbook.
func ReadXLSX(r io.Reader) ([]models.ExportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, srvErrors.NewValidationError("file", "workbook has no sheet")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rowsFromRecords(records)
}
