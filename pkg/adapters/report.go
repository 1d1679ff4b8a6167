package adapters

import (
	"github.com/fin-tools/expense-atlas/pkg/models/api"
	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

func MapSummaryDomainToApi(s domain.SummaryMetrics) api.SummaryMetrics {
	return api.SummaryMetrics{
		TotalIncome:   s.TotalIncome,
		TotalExpenses: s.TotalExpenses,
		NetSavings:    s.NetSavings,
		SavingsRate:   s.SavingsRate,
	}
}

func MapTrendDomainToApi(points []domain.TrendPoint) []api.TrendPoint {
	out := make([]api.TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, api.TrendPoint{Period: p.Period, Income: p.Income, Expense: p.Expense})
	}
	return out
}

func MapCategoryTotalsDomainToApi(totals []domain.CategoryTotal) []api.CategoryTotal {
	out := make([]api.CategoryTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, api.CategoryTotal{Category: t.Category, Amount: t.Amount})
	}
	return out
}

func MapSubcategoryTotalsDomainToApi(totals []domain.SubcategoryTotal) []api.SubcategoryTotal {
	out := make([]api.SubcategoryTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, api.SubcategoryTotal{
			Category:    t.Category,
			Subcategory: t.Subcategory,
			Amount:      t.Amount,
		})
	}
	return out
}

func MapGroupSummaryDomainToApi(s domain.GroupSummary) api.GroupSummary {
	return api.GroupSummary{
		Group:            s.Group,
		TotalSpent:       s.TotalSpent,
		DurationDays:     s.DurationDays,
		TopCategory:      s.TopCategory,
		TransactionCount: s.TransactionCount,
	}
}

func MapPivotDomainToApi(p domain.Pivot) api.Pivot {
	return api.Pivot{Categories: p.Categories, Groups: p.Groups, Cells: p.Cells}
}

func MapDrillDownDomainToApi(dd domain.DrillDown) api.DrillDown {
	out := api.DrillDown{
		Category:     dd.Category,
		Group:        dd.Group,
		Total:        dd.Total,
		Transactions: []api.DrillDownRow{},
	}
	for _, row := range dd.Transactions {
		out.Transactions = append(out.Transactions, api.DrillDownRow{
			Date:        row.Date.Format(dateLayout),
			Title:       row.Title,
			Subcategory: row.Subcategory,
			Amount:      row.Magnitude,
			Note:        row.Note,
		})
	}
	return out
}

func MapTransactionDomainToApi(tx domain.Transaction) api.Transaction {
	return api.Transaction{
		Date:        tx.Date.Format(dateLayout),
		Amount:      tx.Magnitude,
		Kind:        string(tx.Kind),
		Category:    tx.Category,
		Subcategory: tx.Subcategory,
		Title:       tx.Title,
		Note:        tx.Note,
		Tags:        tx.Tags,
	}
}
