package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"card-battle-server/auth"
	"card-battle-server/config"
	"card-battle-server/storage"
)

const bearerPrefix = "Bearer "

// Handler holds dependencies for API handlers.
type Handler struct {
	Config *config.Config
	Store  *storage.Store
}

// NewHandler creates a new API handler with the given dependencies.
func NewHandler(cfg *config.Config, store *storage.Store) *Handler {
	return &Handler{Config: cfg, Store: store}
}

// CORS sets CORS headers on the response. Call before writing the body;
// returns true when the request was a handled preflight.
func CORS(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return true
	}
	return false
}

// authorized checks the bearer token when an auth provider is configured.
// Without AUTH_BASE_URL the API is open.
func (h *Handler) authorized(r *http.Request) bool {
	if h.Config.AuthBaseURL == "" {
		return true
	}
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return false
	}
	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	claims, err := auth.ValidateToken(h.Config.AuthBaseURL, token)
	if err != nil {
		return false
	}
	return auth.SubjectFromClaims(claims) != ""
}

// History returns the recorded score awards for a session.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if CORS(w, r) {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.authorized(r) {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "session query parameter is required", http.StatusBadRequest)
		return
	}

	list := []storage.ScoreAward{}
	if h.Store != nil {
		var err error
		list, err = h.Store.ListBySession(r.Context(), sessionID)
		if err != nil {
			slog.Error("listing score awards", "tag", "api", "session", sessionID, "err", err)
			http.Error(w, "failed to load history", http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(list); err != nil {
		slog.Error("encoding history response", "tag", "api", "err", err)
	}
}
