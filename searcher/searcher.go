package searcher

import (
	"fmt"
	"math"

	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"

	"github.com/rs/zerolog/log"
)

type Option func(s *Searcher)

// Searcher picks Pacman's move with a depth-limited search. A Searcher keeps
// no state between calls other than its metrics collector.
type Searcher struct {
	policy   Policy
	strategy strategy
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithDepth sets the number of full rounds (every agent moving once) searched
// before the evaluation function is applied
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(s *Searcher) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

func New(policy Policy, options ...Option) *Searcher {
	st, ok := strategies[policy]
	if !ok {
		panic(fmt.Sprintf("unknown search policy %d", policy))
	}

	s := &Searcher{ // Default values
		policy:   policy,
		strategy: st,
		depth:    meta.DefaultDepth,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Policy() Policy { return s.policy }
func (s *Searcher) Depth() int     { return s.depth }

// ChooseAction returns the root action with the highest backed-up value. Ties
// keep the earliest action in legal order.
func (s *Searcher) ChooseAction(state game.State) (game.Action, error) {
	action, _, err := s.Search(state)
	return action, err
}

// Search is ChooseAction that also reports the work the search did
func (s *Searcher) Search(state game.State) (game.Action, metrics.SearchMetric, error) {
	s.metrics.Start(s.policy.String(), s.depth)
	action, value, err := s.root(state)
	metric := s.metrics.Complete()
	if err != nil {
		return game.Stop, metric, err
	}

	log.Debug().Msgf("%s chose %s with value %.2f after %d leaves", s.policy, action, value, metric.Leaves)
	return action, metric, nil
}

// Value returns the backed-up value of state with agent to move, depth full
// rounds already spent
func (s *Searcher) Value(state game.State, agent, depth int) (float64, error) {
	return s.value(state, agent, depth, fullWindow())
}

func (s *Searcher) root(state game.State) (game.Action, float64, error) {
	actions := state.LegalActions(game.PacmanIndex)
	if len(actions) == 0 {
		return game.Stop, 0, fmt.Errorf("%w: pacman at %v", ErrNoLegalActions, state.PacmanPosition())
	}
	s.metrics.AddNode()

	next, nextDepth := advance(game.PacmanIndex, 0, state.NumAgents())
	best := actions[0]
	bestValue := math.Inf(-1)
	w := fullWindow()
	for _, action := range actions {
		child, err := state.Successor(game.PacmanIndex, action)
		if err != nil {
			return game.Stop, 0, fmt.Errorf("root move: %w", err)
		}
		v, err := s.value(child, next, nextDepth, w)
		if err != nil {
			return game.Stop, 0, err
		}
		if v > bestValue {
			bestValue = v
			best = action
		}
		// Ignored by every strategy except alpha-beta
		w.alpha = math.Max(w.alpha, bestValue)
	}
	return best, bestValue, nil
}
