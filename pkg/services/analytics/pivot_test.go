package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

func TestBuildPivot(t *testing.T) {
	txs := []domain.Transaction{
		tx("2025-03-01", "40", domain.Expense, "Food", "", "Trip"),
		tx("2025-03-02", "30", domain.Expense, "Hotels", "", "Trip"),
		tx("2025-03-03", "20", domain.Expense, "Food", "", "Weekend"),
		tx("2025-03-04", "99", domain.Expense, "Food", "", "Unselected"),
		tx("2025-03-05", "500", domain.Income, "Salary", "", "Trip"),
	}

	t.Run("dense matrix with zero cells", func(t *testing.T) {
		p := BuildPivot(txs, []string{"Trip", "Weekend"})

		assert.Equal(t, []string{"Food", "Hotels"}, p.Categories)
		assert.Equal(t, []string{"Trip", "Weekend"}, p.Groups)
		require.Len(t, p.Cells, 2)

		assert.True(t, p.Cell("Food", "Trip").Equal(decimal.NewFromInt(40)))
		assert.True(t, p.Cell("Food", "Weekend").Equal(decimal.NewFromInt(20)))
		assert.True(t, p.Cell("Hotels", "Trip").Equal(decimal.NewFromInt(30)))
		assert.True(t, p.Cell("Hotels", "Weekend").IsZero())
	})

	t.Run("multi-group transaction contributes fully to each column", func(t *testing.T) {
		shared := []domain.Transaction{
			tx("2025-03-01", "50", domain.Expense, "Food", "", "A", "B"),
		}
		p := BuildPivot(shared, []string{"A", "B"})
		assert.True(t, p.Cell("Food", "A").Equal(decimal.NewFromInt(50)))
		assert.True(t, p.Cell("Food", "B").Equal(decimal.NewFromInt(50)))
	})

	t.Run("duplicate tags count once", func(t *testing.T) {
		dup := []domain.Transaction{
			tx("2025-03-01", "50", domain.Expense, "Food", "", "A", "A"),
		}
		p := BuildPivot(dup, []string{"A"})
		assert.True(t, p.Cell("Food", "A").Equal(decimal.NewFromInt(50)))
	})

	t.Run("empty selection yields an empty matrix", func(t *testing.T) {
		p := BuildPivot(txs, nil)
		assert.Empty(t, p.Categories)
		assert.Empty(t, p.Groups)
	})
}

func TestDrillDown(t *testing.T) {
	txs := []domain.Transaction{
		{
			Date:      date("2025-03-01"),
			Magnitude: decimal.NewFromInt(40),
			Kind:      domain.Expense,
			Category:  "Food",
			Title:     "Dinner",
			Note:      "great pizza\n#Trip",
			Tags:      []string{"Trip"},
		},
		{
			Date:      date("2025-03-02"),
			Magnitude: decimal.NewFromInt(60),
			Kind:      domain.Expense,
			Category:  "Food",
			Title:     "Groceries",
			Note:      "#Trip",
			Tags:      []string{"Trip"},
		},
		tx("2025-03-03", "99", domain.Expense, "Hotels", "", "Trip"),
		tx("2025-03-04", "500", domain.Income, "Refund", "", "Trip"),
	}

	t.Run("rows sorted by magnitude descending with cleaned notes", func(t *testing.T) {
		dd := DrillDown(txs, "Food", "Trip")

		require.Len(t, dd.Transactions, 2)
		assert.Equal(t, "Groceries", dd.Transactions[0].Title)
		assert.Equal(t, "", dd.Transactions[0].Note)
		assert.Equal(t, "Dinner", dd.Transactions[1].Title)
		assert.Equal(t, "great pizza", dd.Transactions[1].Note)
		assert.True(t, dd.Total.Equal(decimal.NewFromInt(100)))
	})

	t.Run("total equals the pivot cell", func(t *testing.T) {
		p := BuildPivot(txs, []string{"Trip"})
		dd := DrillDown(txs, "Food", "Trip")
		assert.True(t, dd.Total.Equal(p.Cell("Food", "Trip")))
	})

	t.Run("no matches yields an empty result", func(t *testing.T) {
		dd := DrillDown(txs, "Food", "Nowhere")
		assert.Empty(t, dd.Transactions)
		assert.True(t, dd.Total.IsZero())
	})
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}
