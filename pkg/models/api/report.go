package api

import "github.com/shopspring/decimal"

type SummaryMetrics struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetSavings    decimal.Decimal `json:"net_savings"`
	SavingsRate   float64         `json:"savings_rate"`
}

type TrendPoint struct {
	Period  string          `json:"period"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

type SubcategoryTotal struct {
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Amount      decimal.Decimal `json:"amount"`
}

type GroupSummary struct {
	Group            string          `json:"group"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	DurationDays     int             `json:"duration_days"`
	TopCategory      *string         `json:"top_category,omitempty"`
	TransactionCount int             `json:"transaction_count"`
}

type Pivot struct {
	Categories []string            `json:"categories"`
	Groups     []string            `json:"groups"`
	Cells      [][]decimal.Decimal `json:"cells"`
}

type DrillDownRow struct {
	Date        string          `json:"date"`
	Title       string          `json:"title"`
	Subcategory string          `json:"subcategory"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
}

type DrillDown struct {
	Category     string          `json:"category"`
	Group        string          `json:"group"`
	Total        decimal.Decimal `json:"total"`
	Transactions []DrillDownRow  `json:"transactions"`
}

type Transaction struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Kind        string          `json:"kind"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Title       string          `json:"title"`
	Note        string          `json:"note"`
	Tags        []string        `json:"tags"`
}

type ReloadResult struct {
	Transactions int    `json:"transactions"`
	Origin       string `json:"origin"`
}
