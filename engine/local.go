package engine

import (
	"fmt"
	"time"

	"pacman/agent"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"

	"github.com/rs/zerolog/log"
)

type Option func(l *Local)

// Local runs every agent in-process, one move at a time in index order
type Local struct {
	state    *game.GameState
	agents   []agent.Agent
	maxMoves int
	display  *Display
}

func WithMaxMoves(maxMoves int) Option {
	return func(l *Local) {
		if maxMoves > 0 {
			l.maxMoves = maxMoves
		}
	}
}

// WithDisplay renders the board after every move
func WithDisplay(display *Display) Option {
	return func(l *Local) {
		l.display = display
	}
}

func NewLocal(state *game.GameState, agents []agent.Agent, options ...Option) *Local {
	if len(agents) != state.NumAgents() {
		panic(fmt.Sprintf("layout %s needs %d agents, got %d", state.Layout.Name, state.NumAgents(), len(agents)))
	}
	for i, a := range agents {
		if a.Index() != i {
			panic(fmt.Sprintf("agent in slot %d plays for index %d", i, a.Index()))
		}
	}

	l := &Local{
		state:    state,
		agents:   agents,
		maxMoves: meta.MaxMoves,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

// State returns the current position, the final one once Run has returned
func (l *Local) State() *game.GameState {
	return l.state
}

func (l *Local) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Layout:    l.state.Layout.Name,
		StartTime: time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("starting %s with %d ghosts", l.state.Layout.Name, l.state.NumAgents()-1)
	if err := l.render(0); err != nil {
		return gameMetric, moveMetrics, err
	}

	step := 0
	for !l.state.IsTerminal() && step < l.maxMoves {
		index := step % len(l.agents)
		action, searchMetric, err := l.agents[index].FindMove(l.state)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}
		if index == game.PacmanIndex {
			moveMetrics = append(moveMetrics, metrics.MoveMetric{
				Step:         step,
				Agent:        index,
				SearchMetric: searchMetric,
			})
		}

		next, err := l.state.Successor(index, action)
		if err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}
		l.state = next.(*game.GameState)
		step++

		log.Debug().Msgf("step %d: agent %d played %s, score %.0f", step, index, action, l.state.Score())
		if err := l.render(step); err != nil {
			return gameMetric, moveMetrics, err
		}
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = step
	gameMetric.Win = l.state.IsWin()
	gameMetric.Lose = l.state.IsLose()
	gameMetric.Score = l.state.Score()

	switch {
	case gameMetric.Win:
		log.Info().Msgf("pacman won with score %.0f after %d moves", gameMetric.Score, step)
	case gameMetric.Lose:
		log.Info().Msgf("pacman lost with score %.0f after %d moves", gameMetric.Score, step)
	default:
		log.Warn().Msgf("game stopped after %d moves with score %.0f", step, gameMetric.Score)
	}
	return gameMetric, moveMetrics, nil
}

func (l *Local) render(step int) error {
	if l.display == nil {
		return nil
	}
	return l.display.Render(l.state, step)
}
