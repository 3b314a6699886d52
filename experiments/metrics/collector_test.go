package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counting one search", func(t *testing.T) {
		c := NewCollector()
		c.Start("alphabeta", 3)
		c.AddNode()
		c.AddLeaf()
		c.AddLeaf()
		c.AddPrune()

		m := c.Complete()

		require.Equal(t, "alphabeta", m.Policy)
		require.Equal(t, 3, m.Depth)
		require.Equal(t, 1, m.Nodes)
		require.Equal(t, 2, m.Leaves)
		require.Equal(t, 1, m.Prunes)
	})

	t.Run("start resets the counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("minimax", 1)
		c.AddLeaf()
		c.Complete()

		c.Start("minimax", 1)
		m := c.Complete()

		require.Zero(t, m.Leaves)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("minimax", 1)
		c.AddNode()
		require.Equal(t, SearchMetric{}, c.Complete())
	})
}
