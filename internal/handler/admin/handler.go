package admin

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatmodel "supportbot/internal/model/chat"
	"supportbot/pkg/utils"
)

// Handler serves the conversation review views of the dashboard.
type Handler struct {
	messages chatmodel.Store
}

// New creates the admin handler.
func New(messages chatmodel.Store) *Handler {
	return &Handler{messages: messages}
}

// RegisterRoutes attaches the admin routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/sessions", h.handleListSessions)
	r.Get("/admin/sessions/{sessionID}/messages", h.handleTranscript)
}

func (h *Handler) handleListSessions(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.messages.ListSessions(r.Context())
	if err != nil {
		log.Printf("[admin] list sessions failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load sessions")
		return
	}
	if summaries == nil {
		summaries = []chatmodel.SessionSummary{}
	}
	utils.RespondJSON(w, http.StatusOK, summaries)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionID is required")
		return
	}

	transcript, err := h.messages.LoadTranscript(r.Context(), sessionID)
	if err != nil {
		log.Printf("[admin] load transcript failed for session=%s: %v", sessionID, err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load transcript")
		return
	}
	if transcript == nil {
		transcript = []chatmodel.Message{}
	}
	utils.RespondJSON(w, http.StatusOK, transcript)
}
