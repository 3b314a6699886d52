package game

import "errors"

var (
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrUnknownEvaluation = errors.New("unknown evaluation")
)

// PacmanIndex is the agent index of the maximizing agent. Ghosts follow it.
const PacmanIndex = 0

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Manhattan returns the taxicab distance between two positions
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// State should be immutable - Successor always returns a new value and never
// modifies the receiver
type State interface {
	LegalActions(agent int) []Action
	Successor(agent int, action Action) (State, error)
	NumAgents() int
	IsWin() bool
	IsLose() bool
	Score() float64
	PacmanPosition() Position
	GhostPositions() []Position
	ScaredTimers() []int
	Food() Grid
	Capsules() []Position
}

// Evaluate scores a game state; higher is better for Pacman.
type Evaluate func(State) float64
