package engine

import (
	"bytes"
	"strings"
	"testing"

	"pacman/agent"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const corridor = `
%%%%%%%
%G P..%
%%%%%%%
`

func newTestState(t *testing.T, text string) *game.GameState {
	t.Helper()
	layout, err := game.ParseLayout("corridor", text)
	require.NoError(t, err)
	return game.NewGameState(layout, game.NewStandardRules())
}

func newAgents(policy searcher.Policy, numGhosts int, seed uint64) []agent.Agent {
	rng := rand.New(rand.NewSource(seed))
	s := searcher.New(policy, searcher.WithDepth(2), searcher.WithMetrics(metrics.NewCollector()))
	agents := []agent.Agent{agent.NewSearchAgent(s)}
	for i := 1; i <= numGhosts; i++ {
		agents = append(agents, agent.NewRandomGhost(i, rng))
	}
	return agents
}

func TestNewLocal(t *testing.T) {
	t.Run("agent count must match the layout", func(t *testing.T) {
		require.Panics(t, func() {
			NewLocal(newTestState(t, corridor), newAgents(searcher.Minimax, 2, 1))
		})
	})

	t.Run("agents must sit in their own slot", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		agents := []agent.Agent{agent.NewRandomGhost(1, rng), agent.NewReflexAgent(rng)}
		require.Panics(t, func() {
			NewLocal(newTestState(t, corridor), agents)
		})
	})
}

func TestLocalRun(t *testing.T) {
	t.Run("eating all food wins", func(t *testing.T) {
		l := NewLocal(newTestState(t, corridor), newAgents(searcher.AlphaBeta, 1, 1))

		gameMetric, moveMetrics, err := l.Run()

		require.NoError(t, err)
		require.True(t, gameMetric.Win)
		require.False(t, gameMetric.Lose)
		require.Equal(t, "corridor", gameMetric.Layout)
		require.Equal(t, 518.0, gameMetric.Score)
		require.Equal(t, 3, gameMetric.TotalMoves, "pacman, ghost, pacman")
		require.Len(t, moveMetrics, 2)
		require.Equal(t, "alphabeta", moveMetrics[0].Policy)
		require.Equal(t, 2, moveMetrics[1].Step)
		require.True(t, l.State().IsWin())
	})

	t.Run("move limit", func(t *testing.T) {
		l := NewLocal(newTestState(t, corridor), newAgents(searcher.Minimax, 1, 1), WithMaxMoves(1))

		gameMetric, moveMetrics, err := l.Run()

		require.NoError(t, err)
		require.False(t, gameMetric.Win)
		require.False(t, gameMetric.Lose)
		require.Equal(t, 1, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 1)
		require.Equal(t, 9.0, gameMetric.Score)
	})

	t.Run("reproducible with a seed", func(t *testing.T) {
		layout, err := game.LoadLayout("smallClassic")
		require.NoError(t, err)
		play := func() metrics.GameMetric {
			state := game.NewGameState(layout, game.NewStandardRules())
			l := NewLocal(state, newAgents(searcher.Expectimax, layout.NumGhosts(), 5), WithMaxMoves(60))
			gameMetric, _, err := l.Run()
			require.NoError(t, err)
			return gameMetric
		}

		first, second := play(), play()

		require.Equal(t, first.Score, second.Score)
		require.Equal(t, first.TotalMoves, second.TotalMoves)
	})
}

func TestDisplay(t *testing.T) {
	t.Run("plain text", func(t *testing.T) {
		var out bytes.Buffer
		l := NewLocal(newTestState(t, corridor), newAgents(searcher.Minimax, 1, 1),
			WithMaxMoves(1), WithDisplay(NewDisplay(&out, false)))

		_, _, err := l.Run()

		require.NoError(t, err)
		require.Contains(t, out.String(), "step 0\n%%%%%%%\n%G P..%\n")
		require.Contains(t, out.String(), "step 1\n%%%%%%%\n%G  P.%\n")
	})

	t.Run("coloured", func(t *testing.T) {
		var out bytes.Buffer
		state := newTestState(t, corridor)

		require.NoError(t, NewDisplay(&out, true).Render(state, 0))

		require.True(t, strings.Contains(out.String(), "\x1b["), "expected ANSI escapes")
	})
}
