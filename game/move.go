package game

import (
	"fmt"
	"strings"
)

// Action is a direction an agent can move in.
type Action int

const (
	North Action = iota
	South
	East
	West
	Stop
)

// Directions lists the moving actions in the order legal actions are generated
var Directions = []Action{North, South, East, West}

func (a Action) String() string {
	switch a {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	case Stop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// ParseAction is the inverse of String, ignoring case
func ParseAction(name string) (Action, error) {
	for _, a := range []Action{North, South, East, West, Stop} {
		if strings.EqualFold(name, a.String()) {
			return a, nil
		}
	}
	return Stop, fmt.Errorf("%w: unknown action %q", ErrInvalidAction, name)
}

func (a Action) MarshalText() ([]byte, error) {
	if a < North || a > Stop {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAction, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	parsed, err := ParseAction(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Vector returns the position offset of the action (y grows northward)
func (a Action) Vector() (dx, dy int) {
	switch a {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func (a Action) Reverse() Action {
	switch a {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return a
	}
}

// Apply moves a position by the action's vector
func (p Position) Apply(a Action) Position {
	dx, dy := a.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}
