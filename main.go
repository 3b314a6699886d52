package main

import (
	"flag"

	"pacman/communication"
	"pacman/engine"
	"pacman/experiments"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	layout := flag.String("layout", meta.DefaultLayout, "Built-in layout to play")
	policy := flag.String("policy", "expectimax", "Search policy: minimax, alphabeta or expectimax")
	evaluation := flag.String("eval", "better", "Evaluation function: score or better")
	depth := flag.Int("depth", meta.DefaultDepth, "Search depth in full rounds")
	games := flag.Int("games", meta.DefaultGames, "Games per experiment pairing")
	seed := flag.Uint64("seed", 1, "Seed for the ghosts")
	ghosts := flag.String("ghosts", meta.RandomGhosts, "Ghost behaviour: random or directional")
	display := flag.Bool("display", false, "Draw the board after every move")
	experiment := flag.Bool("experiment", false, "Compare every configured policy and depth")
	logLevel := flag.String("log-level", "info", "Log level")
	serve := flag.String("serve", "", "Serve the configured Pacman on this address instead of playing")
	remote := flag.String("remote", "", "Play with the Pacman served at this URL")
	flag.Parse()

	out := colorable.NewColorableStdout()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})

	cfg := meta.Default()
	if *configPath != "" {
		loaded, err := meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = loaded
	}

	// Flags given on the command line win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			cfg.Layout = *layout
		case "policy":
			cfg.Policy = *policy
		case "eval":
			cfg.Evaluation = *evaluation
		case "depth":
			cfg.Depth = *depth
		case "games":
			cfg.Games = *games
		case "seed":
			cfg.Seed = *seed
		case "ghosts":
			cfg.Ghosts = *ghosts
		case "display":
			cfg.Display = *display
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	if *experiment {
		if _, err := experiments.Run(cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	config := metrics.AgentConfig{ID: 1, Policy: cfg.Policy, Evaluation: cfg.Evaluation, Depth: cfg.Depth}
	pacman, err := experiments.NewPacman(config)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid pacman")
	}

	if *serve != "" {
		err := communication.NewServer(pacman).ListenAndServe(*serve)
		log.Fatal().Err(err).Msg("agent server stopped")
	}
	if *remote != "" {
		pacman = communication.NewRemoteAgent(game.PacmanIndex, *remote, nil)
	}

	var options []engine.Option
	if cfg.Display {
		options = append(options, engine.WithDisplay(engine.NewDisplay(out, true)))
	}
	gameMetric, _, err := experiments.PlayGame(cfg, pacman, cfg.Seed, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	log.Info().Msgf("%s: win=%t score=%.0f moves=%d in %s",
		gameMetric.Layout, gameMetric.Win, gameMetric.Score, gameMetric.TotalMoves, gameMetric.Duration)
}
