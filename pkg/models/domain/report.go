package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryMetrics are the headline figures for the whole dataset.
// SavingsRate is a percentage and defined as 0 when there is no income.
type SummaryMetrics struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal
	SavingsRate   float64
}

// TrendPoint is one period bucket of the income/expense trend.
// Both totals are magnitudes; a kind absent from the period is zero.
type TrendPoint struct {
	Period  string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

type SubcategoryTotal struct {
	Category    string
	Subcategory string
	Amount      decimal.Decimal
}

// GroupSummary describes spending within one tag group. TopCategory is
// nil when the group has no expense transactions.
type GroupSummary struct {
	Group            string
	TotalSpent       decimal.Decimal
	DurationDays     int
	TopCategory      *string
	TransactionCount int
}

// Pivot is a dense category×group expense matrix. Cells[i][j] holds the
// summed magnitude for Categories[i] within Groups[j]; pairs with no
// transactions hold zero.
type Pivot struct {
	Categories []string
	Groups     []string
	Cells      [][]decimal.Decimal
}

// Cell returns the amount for a (category, group) pair, zero when the
// pair is not part of the matrix.
func (p Pivot) Cell(category, group string) decimal.Decimal {
	for i, c := range p.Categories {
		if c != category {
			continue
		}
		for j, g := range p.Groups {
			if g == group {
				return p.Cells[i][j]
			}
		}
	}
	return decimal.Zero
}

// DrillDownRow is one transaction underlying a pivot cell. Note has the
// tag lines removed.
type DrillDownRow struct {
	Date        time.Time
	Title       string
	Subcategory string
	Magnitude   decimal.Decimal
	Note        string
}

type DrillDown struct {
	Category     string
	Group        string
	Total        decimal.Decimal
	Transactions []DrillDownRow
}

// Report represents a rendered analysis report for the terminal surface.
type Report struct {
	Title    string
	Period   TimePeriod
	Sections []ReportSection
}

// TimePeriod is the date span covered by a report.
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days, inclusive of both endpoints
}

// ReportSection represents a logical section in the report.
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents one row within a section.
type ReportDetail struct {
	Name        string
	Value       interface{}
	Description string
}
