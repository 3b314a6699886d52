package searcher

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLegalActions = errors.New("no legal actions")
	ErrUnknownPolicy  = errors.New("unknown search policy")
)

// Policy selects how ghost nodes combine their children. Pacman always
// maximizes.
type Policy int

const (
	Minimax    Policy = iota // Ghosts minimize
	AlphaBeta                // Ghosts minimize, with pruning
	Expectimax               // Ghosts move uniformly at random
)

func (p Policy) String() string {
	switch p {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	case Expectimax:
		return "expectimax"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy resolves a configured policy name
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "minimax", "minimaxagent":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "alphabetaagent":
		return AlphaBeta, nil
	case "expectimax", "expectimaxagent":
		return Expectimax, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Policies lists every policy in declaration order
func Policies() []Policy {
	return []Policy{Minimax, AlphaBeta, Expectimax}
}
