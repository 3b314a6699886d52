package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("overriding defaults", func(t *testing.T) {
		path := writeConfig(t, `
layout: trappedClassic
policy: alphabeta
depth: 3
experiment:
  depths: [1, 3]
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "trappedClassic", cfg.Layout)
		require.Equal(t, "alphabeta", cfg.Policy)
		require.Equal(t, 3, cfg.Depth)
		require.Equal(t, []int{1, 3}, cfg.Experiment.Depths)
		require.Equal(t, "better", cfg.Evaluation, "unset keys keep their default")
		require.Equal(t, DefaultGames, cfg.Games)
		require.Equal(t, []string{"minimax", "alphabeta", "expectimax"}, cfg.Experiment.Policies)
	})

	t.Run("rejecting a zero depth", func(t *testing.T) {
		path := writeConfig(t, "depth: 0\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejecting unknown ghosts", func(t *testing.T) {
		path := writeConfig(t, "ghosts: clyde\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejecting malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "depth: [\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}
