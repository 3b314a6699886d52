package searcher

import (
	"fmt"
	"math"

	"pacman/game"
)

// window holds the alpha-beta bounds. Policies without pruning carry it
// through unchanged.
type window struct {
	alpha float64 // Best value Pacman is already guaranteed
	beta  float64 // Best value the ghosts are already guaranteed
}

func fullWindow() window {
	return window{alpha: math.Inf(-1), beta: math.Inf(1)}
}

// node is one expanded position of the search tree. It lives only for the
// duration of the call that expands it.
type node struct {
	state     game.State
	agent     int
	actions   []game.Action
	next      int // Agent to move in the children
	nextDepth int // Depth of the children
}

// combine backs up the values of a node's children
type combine func(s *Searcher, n node, w window) (float64, error)

// strategy picks a combine function per agent role
type strategy struct {
	maximize  combine
	adversary combine
}

func (st strategy) forAgent(agent int) combine {
	if agent == game.PacmanIndex {
		return st.maximize
	}
	return st.adversary
}

var strategies = map[Policy]strategy{
	Minimax:    {maximize: maxValue, adversary: minValue},
	AlphaBeta:  {maximize: maxPruned, adversary: minPruned},
	Expectimax: {maximize: maxValue, adversary: meanValue},
}

// advance returns who moves after agent and at which depth. A depth unit is
// one full round, so depth only grows when play returns to Pacman.
func advance(agent, depth, numAgents int) (next, nextDepth int) {
	next = (agent + 1) % numAgents
	if next == game.PacmanIndex {
		return next, depth + 1
	}
	return next, depth
}

func (s *Searcher) value(state game.State, agent, depth int, w window) (float64, error) {
	if depth >= s.depth || state.IsWin() || state.IsLose() {
		s.metrics.AddLeaf()
		return s.evaluate(state), nil
	}

	actions := state.LegalActions(agent)
	if len(actions) == 0 { // Stuck agent, treat as a leaf
		s.metrics.AddLeaf()
		return s.evaluate(state), nil
	}
	s.metrics.AddNode()

	next, nextDepth := advance(agent, depth, state.NumAgents())
	n := node{
		state:     state,
		agent:     agent,
		actions:   actions,
		next:      next,
		nextDepth: nextDepth,
	}
	return s.strategy.forAgent(agent)(s, n, w)
}

func (s *Searcher) childValue(n node, action game.Action, w window) (float64, error) {
	child, err := n.state.Successor(n.agent, action)
	if err != nil {
		return 0, fmt.Errorf("agent %d: %w", n.agent, err)
	}
	return s.value(child, n.next, n.nextDepth, w)
}
