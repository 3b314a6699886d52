package agent

import (
	"fmt"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	rng *rand.Rand
}

// NewReflexAgent returns a Pacman agent that looks a single move ahead with
// game.EvaluateAction. Equally good actions are chosen between at random.
func NewReflexAgent(rng *rand.Rand) Agent {
	return reflexAgent{rng: rng}
}

func (a reflexAgent) Index() int {
	return game.PacmanIndex
}

func (a reflexAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	actions := state.LegalActions(game.PacmanIndex)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: reflex agent", searcher.ErrNoLegalActions)
	}

	var best []game.Action
	bestScore := 0.0
	for _, action := range actions {
		score := game.EvaluateAction(state, action)
		switch {
		case len(best) == 0 || score > bestScore:
			best = []game.Action{action}
			bestScore = score
		case score == bestScore:
			best = append(best, action)
		}
	}
	return best[a.rng.Intn(len(best))], metrics.SearchMetric{Policy: "reflex", Depth: 1, Leaves: len(actions)}, nil
}
