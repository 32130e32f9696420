package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/pickbattle/go/internal/battle"
)

// WebSocketHandler serves battle feeds and their state.
type WebSocketHandler struct {
	connectionManager *ConnectionManager
	states            StateProvider
}

// NewWebSocketHandler creates a handler. states may be nil, in which case
// subscribers get no initial frame and the state route is not served.
func NewWebSocketHandler(cm *ConnectionManager, states StateProvider) *WebSocketHandler {
	return &WebSocketHandler{
		connectionManager: cm,
		states:            states,
	}
}

// HandleBattleConnection subscribes a WebSocket to ?battle_id=.
func (h *WebSocketHandler) HandleBattleConnection(w http.ResponseWriter, r *http.Request) {
	battleIDStr := r.URL.Query().Get("battle_id")
	if battleIDStr == "" {
		http.Error(w, "battle_id is required", http.StatusBadRequest)
		return
	}
	battleID, err := uuid.Parse(battleIDStr)
	if err != nil {
		http.Error(w, "invalid battle_id format", http.StatusBadRequest)
		return
	}

	var initial *BattleEvent
	if h.states != nil {
		b, err := h.states.GetBattle(r.Context(), battleID)
		if err != nil {
			writeStateError(w, err)
			return
		}
		if initial, err = stateEvent(b, time.Now().UTC()); err != nil {
			http.Error(w, "failed to build battle state", http.StatusInternalServerError)
			return
		}
	}

	// The upgrader has already replied on failure.
	if err := h.connectionManager.UpgradeConnection(w, r, battleID, initial); err != nil {
		log.Error().
			Err(err).
			Str("battle_id", battleID.String()).
			Msg("failed to upgrade WebSocket connection")
	}
}

// HandleBattleState returns the stored battle as JSON.
func (h *WebSocketHandler) HandleBattleState(w http.ResponseWriter, r *http.Request) {
	battleID, err := uuid.Parse(chi.URLParam(r, "battleID"))
	if err != nil {
		http.Error(w, "invalid battle id", http.StatusBadRequest)
		return
	}

	b, err := h.states.GetBattle(r.Context(), battleID)
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewBattleState(b))
}

// HandleConnectionStats returns statistics about active connections
func (h *WebSocketHandler) HandleConnectionStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.connectionManager.GetConnectionStats())
}

// RegisterRoutes registers the gateway routes on a chi router.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/battle", h.HandleBattleConnection)
	r.Get("/ws/stats", h.HandleConnectionStats)
	if h.states != nil {
		r.Get("/api/battles/{battleID}/state", h.HandleBattleState)
	}
}

func writeStateError(w http.ResponseWriter, err error) {
	if errors.Is(err, battle.ErrNotFound) {
		http.Error(w, "battle not found", http.StatusNotFound)
		return
	}
	log.Error().Err(err).Msg("failed to load battle state")
	http.Error(w, "failed to load battle", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
