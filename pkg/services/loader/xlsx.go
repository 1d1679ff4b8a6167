package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

// ReadXLSX parses the first sheet of an XLSX workbook. The first row is
// the header and the remaining rows follow the same contract as CSV.
func ReadXLSX(path string) ([]domain.Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &ValidationError{Column: colDate, Reason: "missing header row"}
	}

	return parseRows(rows[0], rows[1:])
}
