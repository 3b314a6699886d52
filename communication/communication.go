package communication

import (
	"errors"

	"pacman/experiments/metrics"
	"pacman/game"
)

var ErrRemoteAgent = errors.New("remote agent failed")

// FindMovePath is the route an agent server answers on
const FindMovePath = "/findmove"

type FindMoveRequest struct {
	Agent int           `json:"agent"`
	State game.Snapshot `json:"state"`
}

type FindMoveResponse struct {
	RequestID string               `json:"request_id"`
	Action    game.Action          `json:"action"`
	Metric    metrics.SearchMetric `json:"metric"`
}
