// Package commands implements the terminal subcommands. Each command
// loads the export file in full and recomputes its view from scratch.
package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/services/analytics"
	"github.com/fin-tools/expense-atlas/pkg/services/loader"
)

func loadTransactions(ctx context.Context, file string) ([]domain.Transaction, error) {
	source := &loader.FileSource{Path: file}
	txs, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", file, err)
	}
	return txs, nil
}

// newReport builds a report skeleton covering the dataset's date span.
func newReport(title string, txs []domain.Transaction) *domain.Report {
	report := &domain.Report{Title: title}
	start, end, ok := analytics.Span(txs)
	if ok {
		report.Period = domain.TimePeriod{
			Start:    start,
			End:      end,
			Duration: int(end.Sub(start).Hours()/24) + 1,
		}
	}
	return report
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
