package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Transaction is a single normalized ledger entry. Magnitude is always
// non-negative; the sign convention lives in Kind.
type Transaction struct {
	Date        time.Time
	Magnitude   decimal.Decimal
	Kind        Kind
	Category    string
	Subcategory string
	Title       string
	Note        string
	Tags        []string
}

// SignedAmount returns the magnitude negated for expenses. It exists for
// trend plotting only; aggregation sums work on Magnitude directly.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == Expense {
		return t.Magnitude.Neg()
	}
	return t.Magnitude
}

func (t Transaction) HasTag(tag string) bool {
	for _, g := range t.Tags {
		if g == tag {
			return true
		}
	}
	return false
}

type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Daily, Weekly, Monthly:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("unsupported granularity: %q", s)
}
