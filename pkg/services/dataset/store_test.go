package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fin-tools/expense-atlas/pkg/models/domain"
)

func TestStore(t *testing.T) {
	t.Run("empty store has no snapshot", func(t *testing.T) {
		s := NewStore()
		_, ok := s.Current()
		assert.False(t, ok)
	})

	t.Run("replace publishes a full snapshot", func(t *testing.T) {
		s := NewStore()
		s.Replace([]domain.Transaction{{Magnitude: decimal.NewFromInt(1)}}, "a.csv")

		snap, ok := s.Current()
		require.True(t, ok)
		assert.Len(t, snap.Transactions, 1)
		assert.Equal(t, "a.csv", snap.Origin)
		assert.False(t, snap.LoadedAt.IsZero())
	})

	t.Run("a new load replaces the prior snapshot wholesale", func(t *testing.T) {
		s := NewStore()
		s.Replace([]domain.Transaction{{}, {}}, "a.csv")
		s.Replace([]domain.Transaction{{}}, "b.csv")

		snap, ok := s.Current()
		require.True(t, ok)
		assert.Len(t, snap.Transactions, 1)
		assert.Equal(t, "b.csv", snap.Origin)
	})
}
