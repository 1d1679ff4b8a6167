package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

// Groups returns the distinct tags present in the collection, sorted.
// An empty result means no notes carried tag lines; that is data, not
// an error.
func Groups(txs []domain.Transaction) []string {
	seen := make(map[string]struct{})
	for _, tx := range txs {
		for _, tag := range tx.Tags {
			seen[tag] = struct{}{}
		}
	}

	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// SummarizeGroup computes the summary row for one group over the
// transactions tagged with it. The group must have at least one
// transaction; callers are expected to select groups from Groups().
//
// Duration spans all transactions in the group (income included),
// inclusive of both endpoint days. TopCategory considers expenses only
// and is nil when the group has none; ties go to the lexicographically
// smallest category.
func SummarizeGroup(txs []domain.Transaction, group string) (domain.GroupSummary, error) {
	var subset []domain.Transaction
	for _, tx := range txs {
		if tx.HasTag(group) {
			subset = append(subset, tx)
		}
	}
	if len(subset) == 0 {
		return domain.GroupSummary{}, fmt.Errorf("no transactions tagged %q", group)
	}

	summary := domain.GroupSummary{Group: group}
	categorySums := make(map[string]decimal.Decimal)

	minDate, maxDate := subset[0].Date, subset[0].Date
	for _, tx := range subset {
		if tx.Date.Before(minDate) {
			minDate = tx.Date
		}
		if tx.Date.After(maxDate) {
			maxDate = tx.Date
		}
		if tx.Kind != domain.Expense {
			continue
		}
		summary.TotalSpent = summary.TotalSpent.Add(tx.Magnitude)
		summary.TransactionCount++
		categorySums[tx.Category] = categorySums[tx.Category].Add(tx.Magnitude)
	}

	summary.DurationDays = daysBetween(minDate, maxDate) + 1

	if len(categorySums) > 0 {
		var top string
		var topAmount decimal.Decimal
		first := true
		for category, amount := range categorySums {
			c := amount.Cmp(topAmount)
			if first || c > 0 || (c == 0 && category < top) {
				top, topAmount = category, amount
				first = false
			}
		}
		summary.TopCategory = &top
	}

	return summary, nil
}

// daysBetween counts whole days from a to b, comparing at day
// granularity regardless of any time component.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
