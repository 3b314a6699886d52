package meta

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// Ghost behaviours
const (
	RandomGhosts      = "random"
	DirectionalGhosts = "directional"
)

// Config describes a single game or an experiment. Names are resolved to
// policies and evaluations once, when agents are built.
type Config struct {
	Layout     string     `yaml:"layout"`
	Policy     string     `yaml:"policy"`
	Evaluation string     `yaml:"evaluation"`
	Depth      int        `yaml:"depth"`
	Ghosts     string     `yaml:"ghosts"`
	Games      int        `yaml:"games"`
	Seed       uint64     `yaml:"seed"`
	MaxMoves   int        `yaml:"max_moves"`
	Display    bool       `yaml:"display"`
	LogLevel   string     `yaml:"log_level"`
	Experiment Experiment `yaml:"experiment"`
}

// Experiment pairs every listed policy with every listed depth
type Experiment struct {
	Name     string   `yaml:"name"`
	Policies []string `yaml:"policies"`
	Depths   []int    `yaml:"depths"`
	Output   string   `yaml:"output"`
}

func Default() Config {
	return Config{
		Layout:     DefaultLayout,
		Policy:     "expectimax",
		Evaluation: "better",
		Depth:      DefaultDepth,
		Ghosts:     RandomGhosts,
		Games:      DefaultGames,
		Seed:       1,
		MaxMoves:   MaxMoves,
		LogLevel:   "info",
		Experiment: Experiment{
			Name:     "policies",
			Policies: []string{"minimax", "alphabeta", "expectimax"},
			Depths:   []int{1, 2},
			Output:   DefaultOutput,
		},
	}
}

// Load reads a YAML file over the defaults; missing keys keep their default
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Depth < 1 {
		return fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidConfig, c.Depth)
	}
	if c.Games < 1 {
		return fmt.Errorf("%w: games must be at least 1, got %d", ErrInvalidConfig, c.Games)
	}
	if c.Ghosts != RandomGhosts && c.Ghosts != DirectionalGhosts {
		return fmt.Errorf("%w: unknown ghost behaviour %q", ErrInvalidConfig, c.Ghosts)
	}
	if c.MaxMoves < 1 {
		return fmt.Errorf("%w: max_moves must be at least 1, got %d", ErrInvalidConfig, c.MaxMoves)
	}
	for _, depth := range c.Experiment.Depths {
		if depth < 1 {
			return fmt.Errorf("%w: experiment depth must be at least 1, got %d", ErrInvalidConfig, depth)
		}
	}
	return nil
}
