package experiments

import (
	"fmt"

	"pacman/agent"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the games played by one agent config
type Summary struct {
	Config    metrics.AgentConfig
	Games     int
	Wins      int
	MeanScore float64
	StdScore  float64
}

// Run plays cfg.Games games for every policy and depth pairing of the
// experiment and stores the records under cfg.Experiment.Output. Game i of
// every pairing uses seed cfg.Seed+i so pairings face the same ghosts.
func Run(cfg meta.Config) ([]Summary, error) {
	configs, err := agentConfigs(cfg)
	if err != nil {
		return nil, err
	}

	name := cfg.Experiment.Name
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]Summary, 0, len(configs))

	log.Info().Msgf("starting %s experiment on %s...", name, cfg.Layout)
	for ci, config := range configs {
		log.Info().Msgf("starting pairing %d of %d: %s at depth %d...", ci+1, len(configs), config.Policy, config.Depth)

		scores := make([]float64, 0, cfg.Games)
		wins := 0
		for i := 0; i < cfg.Games; i++ {
			seed := cfg.Seed + uint64(i)
			gameMetric, moveMetrics, err := RunGame(cfg, config, seed)
			if err != nil {
				return nil, fmt.Errorf("pairing %d game %d: %w", config.ID, i+1, err)
			}

			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      config.ID,
				Seed:       seed,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
			}

			scores = append(scores, gameMetric.Score)
			if gameMetric.Win {
				wins++
			}
		}

		mean, std := stat.MeanStdDev(scores, nil)
		summaries = append(summaries, Summary{
			Config:    config,
			Games:     cfg.Games,
			Wins:      wins,
			MeanScore: mean,
			StdScore:  std,
		})
		log.Info().Msgf("completed pairing %d of %d: won %d/%d, score %.1f ± %.1f", ci+1, len(configs), wins, cfg.Games, mean, std)
	}
	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.Experiment.Output, name)
	if err != nil {
		return summaries, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return summaries, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summaries, fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summaries, fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return summaries, nil
}

// RunGame plays one game on cfg.Layout with a Pacman built from config and
// ghosts seeded with seed
func RunGame(cfg meta.Config, config metrics.AgentConfig, seed uint64, options ...engine.Option) (metrics.GameMetric, []metrics.MoveMetric, error) {
	pacman, err := NewPacman(config)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return PlayGame(cfg, pacman, seed, options...)
}

// PlayGame plays one game on cfg.Layout with the given Pacman, local or remote
func PlayGame(cfg meta.Config, pacman agent.Agent, seed uint64, options ...engine.Option) (metrics.GameMetric, []metrics.MoveMetric, error) {
	layout, err := game.LoadLayout(cfg.Layout)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	agents := []agent.Agent{pacman}
	for i := 1; i <= layout.NumGhosts(); i++ {
		if cfg.Ghosts == meta.DirectionalGhosts {
			agents = append(agents, agent.NewDirectionalGhost(i, agent.DefaultAttackProb, rng))
		} else {
			agents = append(agents, agent.NewRandomGhost(i, rng))
		}
	}

	options = append([]engine.Option{engine.WithMaxMoves(cfg.MaxMoves)}, options...)
	e := engine.NewLocal(game.NewGameState(layout, game.NewStandardRules()), agents, options...)
	return e.Run()
}

// NewPacman builds a search agent from a named policy and evaluation
func NewPacman(config metrics.AgentConfig) (agent.Agent, error) {
	policy, err := searcher.ParsePolicy(config.Policy)
	if err != nil {
		return nil, err
	}
	evaluation, err := game.ParseEvaluation(config.Evaluation)
	if err != nil {
		return nil, err
	}

	s := searcher.New(policy,
		searcher.WithDepth(config.Depth),
		searcher.WithEvaluationFn(evaluation.Func()),
		searcher.WithMetrics(metrics.NewCollector()),
	)
	return agent.NewSearchAgent(s), nil
}

// agentConfigs pairs every experiment policy with every experiment depth,
// validating names up front so a typo fails before any game is played
func agentConfigs(cfg meta.Config) ([]metrics.AgentConfig, error) {
	if _, err := game.ParseEvaluation(cfg.Evaluation); err != nil {
		return nil, err
	}

	configs := []metrics.AgentConfig{}
	for _, name := range cfg.Experiment.Policies {
		policy, err := searcher.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		for _, depth := range cfg.Experiment.Depths {
			configs = append(configs, metrics.AgentConfig{
				ID:         len(configs) + 1,
				Policy:     policy.String(),
				Evaluation: cfg.Evaluation,
				Depth:      depth,
			})
		}
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("%w: experiment %s has no policy and depth pairing", meta.ErrInvalidConfig, cfg.Experiment.Name)
	}
	return configs, nil
}
