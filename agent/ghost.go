package agent

import (
	"fmt"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"golang.org/x/exp/rand"
)

// DefaultAttackProb is how often a directional ghost takes its best move
const DefaultAttackProb = 0.8

type randomGhost struct {
	index int
	rng   *rand.Rand
}

// NewRandomGhost returns a ghost that picks uniformly among its legal actions,
// the behaviour expectimax models
func NewRandomGhost(index int, rng *rand.Rand) Agent {
	return randomGhost{index: index, rng: rng}
}

func (g randomGhost) Index() int {
	return g.index
}

func (g randomGhost) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: ghost %d", searcher.ErrNoLegalActions, g.index)
	}
	return actions[g.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
}

type directionalGhost struct {
	index      int
	attackProb float64
	rng        *rand.Rand
}

// NewDirectionalGhost returns a ghost that moves toward Pacman, or away from
// it while scared, with probability attackProb and at random otherwise
func NewDirectionalGhost(index int, attackProb float64, rng *rand.Rand) Agent {
	return directionalGhost{index: index, attackProb: attackProb, rng: rng}
}

func (g directionalGhost) Index() int {
	return g.index
}

func (g directionalGhost) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: ghost %d", searcher.ErrNoLegalActions, g.index)
	}
	if g.rng.Float64() >= g.attackProb {
		return actions[g.rng.Intn(len(actions))], metrics.SearchMetric{}, nil
	}

	best := g.bestActions(state, actions)
	return best[g.rng.Intn(len(best))], metrics.SearchMetric{}, nil
}

func (g directionalGhost) bestActions(state game.State, actions []game.Action) []game.Action {
	ghost := g.index - 1
	pos := state.GhostPositions()[ghost]
	scared := state.ScaredTimers()[ghost] > 0
	pacman := state.PacmanPosition()

	var best []game.Action
	bestDistance := 0
	for _, action := range actions {
		d := game.Manhattan(pos.Apply(action), pacman)
		if scared {
			d = -d
		}
		switch {
		case len(best) == 0 || d < bestDistance:
			best = []game.Action{action}
			bestDistance = d
		case d == bestDistance:
			best = append(best, action)
		}
	}
	return best
}
