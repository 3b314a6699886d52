package game

import (
	"fmt"
	"math"
	"strings"
)

const (
	DangerDistance = 2    // Ghosts this close (taxicab) repel Pacman
	GhostPenalty   = 20.0 // Repulsion of a non-scared ghost at distance 1
	HuntWeight     = 20.0 // Attraction of the nearest scared ghost at distance 1
)

// EvaluationID selects one of the built-in cutoff evaluations.
type EvaluationID int

const (
	ScoreEvaluation EvaluationID = iota
	BetterEvaluation
)

func (id EvaluationID) String() string {
	switch id {
	case ScoreEvaluation:
		return "score"
	case BetterEvaluation:
		return "better"
	default:
		return "unknown"
	}
}

// Func returns the evaluation the identifier names
func (id EvaluationID) Func() Evaluate {
	switch id {
	case BetterEvaluation:
		return EvaluateBetter
	default:
		return EvaluateScore
	}
}

// ParseEvaluation resolves a configured evaluation name
func ParseEvaluation(name string) (EvaluationID, error) {
	switch strings.ToLower(name) {
	case "score", "scoreevaluationfunction":
		return ScoreEvaluation, nil
	case "better", "betterevaluationfunction":
		return BetterEvaluation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvaluation, name)
	}
}

// EvaluateScore returns the game score with no look-ahead
func EvaluateScore(s State) float64 {
	return s.Score()
}

// EvaluateBetter shapes the game score towards food and scared ghosts and away
// from dangerous ones
func EvaluateBetter(s State) float64 {
	pos := s.PacmanPosition()
	ghosts := s.GhostPositions()
	timers := s.ScaredTimers()

	score := s.Score()
	score += foodAttraction(pos, s.Food())
	score -= ghostRepulsion(pos, ghosts, timers)
	if len(s.Capsules()) > 0 {
		score += huntBonus(pos, ghosts, timers)
	}
	return score
}

// EvaluateAction scores the state reached when Pacman plays action, without
// looking further ahead. Illegal actions score -Inf.
func EvaluateAction(s State, action Action) float64 {
	next, err := s.Successor(PacmanIndex, action)
	if err != nil {
		return math.Inf(-1)
	}

	pos := next.PacmanPosition()
	return next.Score() +
		foodAttraction(pos, next.Food()) -
		ghostRepulsion(pos, next.GhostPositions(), next.ScaredTimers())
}

func foodAttraction(pos Position, food Grid) float64 {
	total := 0.0
	for _, f := range food.Positions() {
		if d := Manhattan(pos, f); d != 0 {
			total += 1.0 / float64(d)
		}
	}
	return total
}

func ghostRepulsion(pos Position, ghosts []Position, timers []int) float64 {
	total := 0.0
	for i, g := range ghosts {
		if i < len(timers) && timers[i] > 0 {
			continue
		}
		if d := Manhattan(pos, g); d <= DangerDistance {
			total += GhostPenalty / float64(max(d, 1))
		}
	}
	return total
}

// huntBonus pulls Pacman toward the nearest scared ghost
func huntBonus(pos Position, ghosts []Position, timers []int) float64 {
	nearest := -1
	for i, g := range ghosts {
		if i >= len(timers) || timers[i] <= 0 {
			continue
		}
		if d := Manhattan(pos, g); nearest < 0 || d < nearest {
			nearest = d
		}
	}
	if nearest < 0 {
		return 0
	}
	return HuntWeight / float64(max(nearest, 1))
}
