package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	t.Run("surviving the wire mid-game", func(t *testing.T) {
		s := State(newTestState(t, capsuleCorridor))
		s = play(t, s, PacmanIndex, East) // Eats the capsule
		s = play(t, s, 1, East)
		gs := s.(*GameState)

		data, err := json.Marshal(gs.Snapshot())
		require.NoError(t, err)
		var snap Snapshot
		require.NoError(t, json.Unmarshal(data, &snap))
		restored, err := FromSnapshot(snap)
		require.NoError(t, err)

		require.Equal(t, gs.String(), restored.String())
		require.Equal(t, gs.Score(), restored.Score())
		require.Equal(t, gs.ScaredTimers(), restored.ScaredTimers())
		require.Equal(t, gs.Capsules(), restored.Capsules())
		require.Equal(t, *gs.Rules, *restored.Rules)
		for agent := 0; agent < gs.NumAgents(); agent++ {
			require.Equal(t, gs.LegalActions(agent), restored.LegalActions(agent))
		}
	})

	t.Run("actions travel by name", func(t *testing.T) {
		data, err := json.Marshal(AgentSnapshot{Direction: West})
		require.NoError(t, err)
		require.Contains(t, string(data), `"direction":"West"`)
	})

	t.Run("agent count must match the maze", func(t *testing.T) {
		snap := newTestState(t, corridor).Snapshot()
		snap.Agents = snap.Agents[:1]

		_, err := FromSnapshot(snap)

		require.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("food inside a wall", func(t *testing.T) {
		snap := newTestState(t, corridor).Snapshot()
		snap.Food = append(snap.Food, Position{X: 0, Y: 0})

		_, err := FromSnapshot(snap)

		require.ErrorIs(t, err, ErrInvalidLayout)
	})
}

func TestParseAction(t *testing.T) {
	for _, a := range []Action{North, South, East, West, Stop} {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}

	got, err := ParseAction("north")
	require.NoError(t, err)
	require.Equal(t, North, got)

	_, err = ParseAction("Up")
	require.ErrorIs(t, err, ErrInvalidAction)
}
