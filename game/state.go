package game

import (
	"fmt"
	"strings"

	"pacman/utils"
)

type agentState struct {
	position  Position
	direction Action // Last move, Stop before the first one
	scared    int    // Remaining scared moves, always 0 for Pacman
}

// GameState is a snapshot of a maze game. Food and capsules are shared
// between a state and its successors until one of them eats something.
type GameState struct {
	Layout   *Layout
	Rules    *Rules
	agents   []agentState // Index 0 is Pacman
	food     Grid
	capsules []Position
	score    float64
	win      bool
	lose     bool
}

// NewGameState places every agent on its starting position.
func NewGameState(layout *Layout, rules *Rules) *GameState {
	agents := make([]agentState, 1+layout.NumGhosts())
	agents[PacmanIndex] = agentState{position: layout.pacmanStart, direction: Stop}
	for i, start := range layout.ghostStarts {
		agents[i+1] = agentState{position: start, direction: Stop}
	}

	capsules := make([]Position, len(layout.capsules))
	copy(capsules, layout.capsules)

	return &GameState{
		Layout:   layout,
		Rules:    rules,
		agents:   agents,
		food:     layout.food.Copy(),
		capsules: capsules,
	}
}

func (gs *GameState) copy() *GameState {
	agents := make([]agentState, len(gs.agents))
	copy(agents, gs.agents)

	next := *gs
	next.agents = agents
	return &next
}

// LegalActions returns the moves agent can make. Terminal states have none.
func (gs *GameState) LegalActions(agent int) []Action {
	if gs.win || gs.lose || agent < 0 || agent >= len(gs.agents) {
		return nil
	}

	a := gs.agents[agent]
	var actions []Action
	for _, dir := range Directions {
		if !gs.Layout.IsWall(a.position.Apply(dir)) {
			actions = append(actions, dir)
		}
	}

	if agent == PacmanIndex {
		return append(actions, Stop)
	}

	// Ghosts never stop and only turn back at dead ends
	if len(actions) == 0 {
		return []Action{Stop}
	}
	if len(actions) > 1 {
		actions = utils.Without(actions, a.direction.Reverse())
	}
	return actions
}

// Successor returns the state after agent plays action
func (gs *GameState) Successor(agent int, action Action) (State, error) {
	if utils.FindIndex(gs.LegalActions(agent), action) < 0 {
		return nil, fmt.Errorf("%w: %s for agent %d", ErrInvalidAction, action, agent)
	}

	next := gs.copy()
	if agent == PacmanIndex {
		next.movePacman(action)
	} else {
		next.moveGhost(agent, action)
	}
	return next, nil
}

func (gs *GameState) movePacman(action Action) {
	pacman := &gs.agents[PacmanIndex]
	pacman.position = pacman.position.Apply(action)
	pacman.direction = action
	gs.score -= gs.Rules.TimePenalty

	pos := pacman.position
	if gs.food.At(pos) {
		gs.food = gs.food.Copy()
		gs.food.Set(pos, false)
		gs.score += gs.Rules.FoodScore
		if gs.food.Count() == 0 && !gs.lose {
			gs.score += gs.Rules.WinScore
			gs.win = true
		}
	}

	if utils.FindIndex(gs.capsules, pos) >= 0 {
		gs.capsules = utils.Without(gs.capsules, pos)
		for ghost := 1; ghost < len(gs.agents); ghost++ {
			gs.agents[ghost].scared = gs.Rules.ScaredTime
		}
	}

	for ghost := 1; ghost < len(gs.agents); ghost++ {
		gs.checkCollision(ghost)
	}
}

func (gs *GameState) moveGhost(ghost int, action Action) {
	g := &gs.agents[ghost]
	g.position = g.position.Apply(action)
	g.direction = action
	if g.scared > 0 {
		g.scared--
	}
	gs.checkCollision(ghost)
}

func (gs *GameState) checkCollision(ghost int) {
	g := &gs.agents[ghost]
	if g.position != gs.agents[PacmanIndex].position {
		return
	}

	if g.scared > 0 {
		gs.score += gs.Rules.GhostScore
		*g = agentState{position: gs.Layout.ghostStarts[ghost-1], direction: Stop}
		return
	}
	if !gs.win {
		gs.score += gs.Rules.LoseScore
		gs.lose = true
	}
}

func (gs *GameState) NumAgents() int   { return len(gs.agents) }
func (gs *GameState) IsWin() bool      { return gs.win }
func (gs *GameState) IsLose() bool     { return gs.lose }
func (gs *GameState) Score() float64   { return gs.score }
func (gs *GameState) Food() Grid       { return gs.food }
func (gs *GameState) NumFood() int     { return gs.food.Count() }
func (gs *GameState) IsTerminal() bool { return gs.win || gs.lose }

func (gs *GameState) PacmanPosition() Position {
	return gs.agents[PacmanIndex].position
}

func (gs *GameState) GhostPositions() []Position {
	positions := make([]Position, 0, len(gs.agents)-1)
	for _, g := range gs.agents[1:] {
		positions = append(positions, g.position)
	}
	return positions
}

func (gs *GameState) ScaredTimers() []int {
	timers := make([]int, 0, len(gs.agents)-1)
	for _, g := range gs.agents[1:] {
		timers = append(timers, g.scared)
	}
	return timers
}

func (gs *GameState) Capsules() []Position {
	capsules := make([]Position, len(gs.capsules))
	copy(capsules, gs.capsules)
	return capsules
}

// String draws the maze with the same symbols ParseLayout reads; scared
// ghosts are drawn as S
func (gs *GameState) String() string {
	cells := make([][]rune, gs.Layout.Height)
	for row := range cells {
		y := gs.Layout.Height - 1 - row
		cells[row] = make([]rune, gs.Layout.Width)
		for x := range cells[row] {
			p := Position{X: x, Y: y}
			switch {
			case gs.Layout.IsWall(p):
				cells[row][x] = '%'
			case gs.food.At(p):
				cells[row][x] = '.'
			case utils.FindIndex(gs.capsules, p) >= 0:
				cells[row][x] = 'o'
			default:
				cells[row][x] = ' '
			}
		}
	}

	draw := func(p Position, r rune) {
		cells[gs.Layout.Height-1-p.Y][p.X] = r
	}
	for _, g := range gs.agents[1:] {
		if g.scared > 0 {
			draw(g.position, 'S')
		} else {
			draw(g.position, 'G')
		}
	}
	draw(gs.agents[PacmanIndex].position, 'P')

	var b strings.Builder
	for _, row := range cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Score: %.0f\n", gs.score)
	return b.String()
}
