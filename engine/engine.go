package engine

import "pacman/experiments/metrics"

type Engine interface {
	// Run plays a game till Pacman wins or loses or the move limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
