package game

import "fmt"

// Snapshot is the wire form of a GameState. The layout travels as text so
// that custom mazes survive the trip.
type Snapshot struct {
	LayoutName string          `json:"layout_name"`
	LayoutText string          `json:"layout_text"`
	Rules      Rules           `json:"rules"`
	Agents     []AgentSnapshot `json:"agents"`
	Food       []Position      `json:"food"`
	Capsules   []Position      `json:"capsules"`
	Score      float64         `json:"score"`
	Win        bool            `json:"win"`
	Lose       bool            `json:"lose"`
}

type AgentSnapshot struct {
	Position  Position `json:"position"`
	Direction Action   `json:"direction"`
	Scared    int      `json:"scared"`
}

func (gs *GameState) Snapshot() Snapshot {
	agents := make([]AgentSnapshot, len(gs.agents))
	for i, a := range gs.agents {
		agents[i] = AgentSnapshot{Position: a.position, Direction: a.direction, Scared: a.scared}
	}
	return Snapshot{
		LayoutName: gs.Layout.Name,
		LayoutText: gs.Layout.Text(),
		Rules:      *gs.Rules,
		Agents:     agents,
		Food:       gs.food.Positions(),
		Capsules:   gs.Capsules(),
		Score:      gs.score,
		Win:        gs.win,
		Lose:       gs.lose,
	}
}

// FromSnapshot rebuilds a state, rejecting agents or items placed off the maze
func FromSnapshot(snap Snapshot) (*GameState, error) {
	layout, err := ParseLayout(snap.LayoutName, snap.LayoutText)
	if err != nil {
		return nil, err
	}
	if len(snap.Agents) != 1+layout.NumGhosts() {
		return nil, fmt.Errorf("%w: %s has %d agents, snapshot has %d", ErrInvalidLayout, layout.Name, 1+layout.NumGhosts(), len(snap.Agents))
	}

	rules := snap.Rules
	gs := &GameState{
		Layout:   layout,
		Rules:    &rules,
		agents:   make([]agentState, len(snap.Agents)),
		food:     NewGrid(layout.Width, layout.Height),
		capsules: make([]Position, 0, len(snap.Capsules)),
		score:    snap.Score,
		win:      snap.Win,
		lose:     snap.Lose,
	}
	for i, a := range snap.Agents {
		if layout.IsWall(a.Position) {
			return nil, fmt.Errorf("%w: agent %d inside a wall at %v", ErrInvalidLayout, i, a.Position)
		}
		gs.agents[i] = agentState{position: a.Position, direction: a.Direction, scared: a.Scared}
	}
	for _, p := range snap.Food {
		if layout.IsWall(p) {
			return nil, fmt.Errorf("%w: food inside a wall at %v", ErrInvalidLayout, p)
		}
		gs.food.Set(p, true)
	}
	for _, p := range snap.Capsules {
		if layout.IsWall(p) {
			return nil, fmt.Errorf("%w: capsule inside a wall at %v", ErrInvalidLayout, p)
		}
		gs.capsules = append(gs.capsules, p)
	}
	return gs, nil
}
