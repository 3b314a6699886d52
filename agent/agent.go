package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
)

type Agent interface {
	// Index is the agent slot this agent moves for
	Index() int
	// FindMove returns the agent's action and performance metrics (if collected) from the search
	FindMove(state game.State) (game.Action, metrics.SearchMetric, error)
}

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns a Pacman agent that plays whatever the searcher's
// policy chooses
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) Index() int {
	return game.PacmanIndex
}

func (a searchAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	return a.searcher.Search(state)
}
