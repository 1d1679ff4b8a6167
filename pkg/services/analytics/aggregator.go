// Package analytics computes the derived views over a transaction
// collection: headline metrics, period trends, category breakdowns,
// per-group summaries and the category×group pivot. Every function is a
// pure pass over its input; nothing is cached between calls.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

// Summarize computes the headline figures for the whole collection.
func Summarize(txs []domain.Transaction) domain.SummaryMetrics {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range txs {
		switch tx.Kind {
		case domain.Income:
			income = income.Add(tx.Magnitude)
		case domain.Expense:
			expenses = expenses.Add(tx.Magnitude)
		}
	}

	net := income.Sub(expenses)
	rate := 0.0
	if !income.IsZero() {
		rate, _ = net.Div(income).Mul(decimal.NewFromInt(100)).Float64()
	}

	return domain.SummaryMetrics{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetSavings:    net,
		SavingsRate:   rate,
	}
}

// PeriodTrend buckets transactions by period key and sums income and
// expense magnitudes per bucket. Points come back ordered by period key
// ascending; only periods with at least one transaction appear.
func PeriodTrend(txs []domain.Transaction, g domain.Granularity) ([]domain.TrendPoint, error) {
	switch g {
	case domain.Daily, domain.Weekly, domain.Monthly:
	default:
		return nil, fmt.Errorf("unsupported granularity: %q", g)
	}

	buckets := make(map[string]*domain.TrendPoint)
	for _, tx := range txs {
		key := PeriodKey(tx.Date, g)
		point, ok := buckets[key]
		if !ok {
			point = &domain.TrendPoint{Period: key}
			buckets[key] = point
		}
		switch tx.Kind {
		case domain.Income:
			point.Income = point.Income.Add(tx.Magnitude)
		case domain.Expense:
			point.Expense = point.Expense.Add(tx.Magnitude)
		}
	}

	points := make([]domain.TrendPoint, 0, len(buckets))
	for _, p := range buckets {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Period < points[j].Period
	})
	return points, nil
}

// PeriodKey assigns a date to its trend bucket. Weeks use the ISO 8601
// numbering (Monday-based, no week zero), so early-January days may key
// into the previous ISO year.
func PeriodKey(d time.Time, g domain.Granularity) string {
	switch g {
	case domain.Daily:
		return d.Format("2006-01-02")
	case domain.Weekly:
		year, week := d.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return d.Format("2006-01")
	}
}

// CategoryTotals sums expense magnitudes per category, largest first.
// Ties are broken by category name ascending.
func CategoryTotals(txs []domain.Transaction) []domain.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind != domain.Expense {
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Magnitude)
	}

	totals := make([]domain.CategoryTotal, 0, len(sums))
	for name, amount := range sums {
		totals = append(totals, domain.CategoryTotal{Category: name, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Amount.Cmp(totals[j].Amount); c != 0 {
			return c > 0
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// SubcategoryTotals sums expense magnitudes per (category, subcategory)
// pair, largest first. The pair totals for a category add up to exactly
// that category's one-level total.
func SubcategoryTotals(txs []domain.Transaction) []domain.SubcategoryTotal {
	type pair struct {
		category    string
		subcategory string
	}

	sums := make(map[pair]decimal.Decimal)
	for _, tx := range txs {
		if tx.Kind != domain.Expense {
			continue
		}
		k := pair{tx.Category, tx.Subcategory}
		sums[k] = sums[k].Add(tx.Magnitude)
	}

	totals := make([]domain.SubcategoryTotal, 0, len(sums))
	for k, amount := range sums {
		totals = append(totals, domain.SubcategoryTotal{
			Category:    k.category,
			Subcategory: k.subcategory,
			Amount:      amount,
		})
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Amount.Cmp(totals[j].Amount); c != 0 {
			return c > 0
		}
		if totals[i].Category != totals[j].Category {
			return totals[i].Category < totals[j].Category
		}
		return totals[i].Subcategory < totals[j].Subcategory
	})
	return totals
}

// Span returns the inclusive date range covered by the collection.
func Span(txs []domain.Transaction) (start, end time.Time, ok bool) {
	for _, tx := range txs {
		if !ok || tx.Date.Before(start) {
			start = tx.Date
		}
		if !ok || tx.Date.After(end) {
			end = tx.Date
		}
		ok = true
	}
	return start, end, ok
}
