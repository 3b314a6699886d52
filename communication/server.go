package communication

import (
	"encoding/json"
	"net/http"
	"sync"

	"pacman/agent"
	"pacman/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Server answers move requests for a set of local agents, one per index.
// Searches run one at a time since agents reuse their metrics collector.
type Server struct {
	agents map[int]agent.Agent
	mutex  sync.Mutex
}

func NewServer(agents ...agent.Agent) *Server {
	s := &Server{agents: make(map[int]agent.Agent, len(agents))}
	for _, a := range agents {
		s.agents[a.Index()] = a
	}
	return s
}

// Handler uses a local mux rather than the global DefaultServeMux
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+FindMovePath, s.handleFindMove)
	return mux
}

// ListenAndServe blocks serving on addr
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Msgf("starting agent server on %s for %d agents...", addr, len(s.agents))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var payload FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	a, ok := s.agents[payload.Agent]
	if !ok {
		http.Error(w, "no agent for this index", http.StatusNotFound)
		return
	}
	state, err := game.FromSnapshot(payload.State)
	if err != nil {
		http.Error(w, "bad state: "+err.Error(), http.StatusBadRequest)
		return
	}

	s.mutex.Lock()
	action, metric, err := a.FindMove(state)
	s.mutex.Unlock()
	if err != nil {
		log.Warn().Err(err).Str("request", requestID).Msg("agent failed to find a move")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	log.Debug().Str("request", requestID).Msgf("agent %d plays %s", payload.Agent, action)

	w.Header().Set("Content-Type", "application/json")
	response := FindMoveResponse{RequestID: requestID, Action: action, Metric: metric}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Str("request", requestID).Msg("failed to encode move")
	}
}
