package communication

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"pacman/agent"
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/rs/zerolog/log"
)

// remoteAgent forwards every decision to an agent server
type remoteAgent struct {
	index     int
	serverURL string
	client    *http.Client
}

// NewRemoteAgent returns an agent playing index through the server at
// serverURL. States must be *game.GameState to be sent over the wire.
func NewRemoteAgent(index int, serverURL string, client *http.Client) agent.Agent {
	if client == nil {
		client = http.DefaultClient
	}
	return &remoteAgent{
		index:     index,
		serverURL: strings.TrimRight(serverURL, "/"),
		client:    client,
	}
}

func (a *remoteAgent) Index() int {
	return a.index
}

func (a *remoteAgent) FindMove(state game.State) (game.Action, metrics.SearchMetric, error) {
	gs, ok := state.(*game.GameState)
	if !ok {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: cannot send %T", ErrRemoteAgent, state)
	}

	data, err := json.Marshal(FindMoveRequest{Agent: a.index, State: gs.Snapshot()})
	if err != nil {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: %w", ErrRemoteAgent, err)
	}
	resp, err := a.client.Post(a.serverURL+FindMovePath, "application/json", bytes.NewReader(data))
	if err != nil {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: %w", ErrRemoteAgent, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: %s: %s", ErrRemoteAgent, resp.Status, strings.TrimSpace(string(body)))
	}
	var response FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return game.Stop, metrics.SearchMetric{}, fmt.Errorf("%w: %w", ErrRemoteAgent, err)
	}

	log.Debug().Str("request", response.RequestID).Msgf("remote agent %d plays %s", a.index, response.Action)
	return response.Action, response.Metric, nil
}
