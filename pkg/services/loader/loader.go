// Package loader parses tabular transaction exports into the normalized
// domain model. A load either yields the complete dataset or fails with
// a ValidationError; rows are never silently dropped.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/services/tags"
)

const (
	colDate        = "date"
	colAmount      = "amount"
	colIncome      = "income"
	colCategory    = "category name"
	colSubcategory = "subcategory name"
	colTitle       = "title"
	colNote        = "note"
)

var requiredColumns = []string{
	colDate, colAmount, colIncome, colCategory, colSubcategory, colTitle, colNote,
}

// Accepted date layouts, tried in order. Parsed values are truncated to
// day granularity.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02/01/2006",
}

// ValidationError describes why a load was rejected. Row is the 1-based
// data row (0 for header-level problems such as a missing column).
type ValidationError struct {
	Row    int
	Column string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("invalid input: column %q: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("invalid input: row %d, column %q: %s", e.Row, e.Column, e.Reason)
}

// ReadCSV parses a CSV export with a header row into transactions.
func ReadCSV(r io.Reader) ([]domain.Transaction, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ValidationError{Column: colDate, Reason: "missing header row"}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ValidationError{Row: len(rows) + 1, Column: "", Reason: err.Error()}
			}
			return nil, fmt.Errorf("reading record: %w", err)
		}
		rows = append(rows, record)
	}

	return parseRows(header, rows)
}

// parseRows converts a header and raw string rows into transactions,
// shared by the CSV and XLSX readers.
func parseRows(header []string, rows [][]string) ([]domain.Transaction, error) {
	index, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	txs := make([]domain.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := parseRow(index, row, i+1)
		if err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func indexColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, &ValidationError{Column: name, Reason: "missing required column"}
		}
	}
	return index, nil
}

func parseRow(index map[string]int, row []string, rowNum int) (domain.Transaction, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	date, err := parseDate(field(colDate))
	if err != nil {
		return domain.Transaction{}, &ValidationError{Row: rowNum, Column: colDate, Reason: err.Error()}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(field(colAmount)))
	if err != nil {
		return domain.Transaction{}, &ValidationError{Row: rowNum, Column: colAmount, Reason: "not a number"}
	}

	income, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(field(colIncome))))
	if err != nil {
		return domain.Transaction{}, &ValidationError{Row: rowNum, Column: colIncome, Reason: "not a boolean"}
	}

	kind := domain.Expense
	if income {
		kind = domain.Income
	}

	note := field(colNote)
	return domain.Transaction{
		Date:        date,
		Magnitude:   amount.Abs(),
		Kind:        kind,
		Category:    field(colCategory),
		Subcategory: field(colSubcategory),
		Title:       field(colTitle),
		Note:        note,
		Tags:        tags.Extract(note),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
