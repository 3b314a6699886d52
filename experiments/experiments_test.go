package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) meta.Config {
	t.Helper()
	cfg := meta.Default()
	cfg.Layout = "testClassic"
	cfg.Games = 2
	cfg.MaxMoves = 200
	cfg.Experiment = meta.Experiment{
		Name:     "test",
		Policies: []string{"minimax", "alphabeta", "expectimax"},
		Depths:   []int{1},
		Output:   t.TempDir(),
	}
	return cfg
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)

	summaries, err := Run(cfg)

	require.NoError(t, err)
	require.Len(t, summaries, 3)
	for i, s := range summaries {
		require.Equal(t, i+1, s.Config.ID)
		require.Equal(t, 2, s.Games)
	}
	require.Equal(t, "minimax", summaries[0].Config.Policy)
	require.Equal(t, summaries[0].MeanScore, summaries[1].MeanScore, "alpha-beta plays the same games as minimax")
	require.Equal(t, summaries[0].Wins, summaries[1].Wins)

	runs, err := os.ReadDir(filepath.Join(cfg.Experiment.Output, "test"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		require.FileExists(t, filepath.Join(cfg.Experiment.Output, "test", runs[0].Name(), name))
	}
}

func TestRunRejectsBadNames(t *testing.T) {
	t.Run("unknown policy", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Experiment.Policies = []string{"mcts"}
		_, err := Run(cfg)
		require.ErrorIs(t, err, searcher.ErrUnknownPolicy)
	})

	t.Run("unknown evaluation", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Evaluation = "magic"
		_, err := Run(cfg)
		require.ErrorIs(t, err, game.ErrUnknownEvaluation)
	})

	t.Run("no pairings", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Experiment.Depths = nil
		_, err := Run(cfg)
		require.ErrorIs(t, err, meta.ErrInvalidConfig)
	})

	t.Run("unknown layout", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Layout = "bigMaze"
		_, err := Run(cfg)
		require.ErrorIs(t, err, game.ErrInvalidLayout)
	})
}

func TestRunGame(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ghosts = meta.DirectionalGhosts
	config := metrics.AgentConfig{ID: 1, Policy: "expectimax", Evaluation: "better", Depth: 2}

	first, moves, err := RunGame(cfg, config, 3)
	require.NoError(t, err)
	second, _, err := RunGame(cfg, config, 3)
	require.NoError(t, err)

	require.Equal(t, first.Score, second.Score)
	require.Equal(t, first.TotalMoves, second.TotalMoves)
	require.NotEmpty(t, moves)
	require.Equal(t, "expectimax", moves[0].Policy)
}
