package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
	"github.com/fin-tools/expense-atlas/pkg/services/tags"
)

// BuildPivot sums expense magnitudes per (category, group) pair over
// the transactions tagged with at least one of the selected groups. A
// transaction tagged with several selected groups contributes its full
// magnitude to each matching column. The matrix is dense: pairs with no
// transactions hold zero.
//
// Columns keep the selection order (duplicates dropped); rows are the
// categories present in the filtered set, sorted by name.
func BuildPivot(txs []domain.Transaction, groups []string) domain.Pivot {
	columns := dedupe(groups)

	// Tags may contain duplicates; a transaction still contributes to a
	// matching column exactly once.
	sums := make(map[string][]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind != domain.Expense {
			continue
		}
		for j, g := range columns {
			if !tx.HasTag(g) {
				continue
			}
			row, ok := sums[tx.Category]
			if !ok {
				row = make([]decimal.Decimal, len(columns))
				sums[tx.Category] = row
			}
			row[j] = row[j].Add(tx.Magnitude)
		}
	}

	categories := make([]string, 0, len(sums))
	for c := range sums {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	cells := make([][]decimal.Decimal, len(categories))
	for i, c := range categories {
		cells[i] = sums[c]
	}

	return domain.Pivot{Categories: categories, Groups: columns, Cells: cells}
}

// DrillDown returns the expense transactions behind one pivot cell,
// sorted by magnitude descending, with tag lines stripped from notes.
// Total equals the corresponding cell of BuildPivot for any selection
// containing the group.
func DrillDown(txs []domain.Transaction, category, group string) domain.DrillDown {
	dd := domain.DrillDown{Category: category, Group: group}
	for _, tx := range txs {
		if tx.Kind != domain.Expense || tx.Category != category || !tx.HasTag(group) {
			continue
		}
		dd.Total = dd.Total.Add(tx.Magnitude)
		dd.Transactions = append(dd.Transactions, domain.DrillDownRow{
			Date:        tx.Date,
			Title:       tx.Title,
			Subcategory: tx.Subcategory,
			Magnitude:   tx.Magnitude,
			Note:        tags.CleanNote(tx.Note),
		})
	}

	sort.SliceStable(dd.Transactions, func(i, j int) bool {
		return dd.Transactions[i].Magnitude.Cmp(dd.Transactions[j].Magnitude) > 0
	})
	return dd
}

func dedupe(groups []string) []string {
	seen := make(map[string]struct{}, len(groups))
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
