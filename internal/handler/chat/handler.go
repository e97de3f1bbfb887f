package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatmodel "supportbot/internal/model/chat"
	chatservice "supportbot/internal/service/chat"
	"supportbot/pkg/utils"
)

// processingErrorMessage is all a caller learns about a server-side
// failure; the cause is only logged.
const processingErrorMessage = "Fehler bei der Verarbeitung."

// Handler serves the conversation-turn endpoint.
type Handler struct {
	chatSvc *chatservice.Service
}

// New creates the chat handler. chatSvc may be nil when no completion model
// is configured; the endpoint then answers 503.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes attaches the chat route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	if h.chatSvc == nil {
		utils.RespondError(w, http.StatusServiceUnavailable, "chat service unavailable")
		return
	}

	var payload struct {
		Message   string           `json:"message"`
		SessionID string           `json:"sessionId"`
		History   []chatmodel.Turn `json:"history"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Message == "" || payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "message and sessionId required")
		return
	}

	reply, err := h.chatSvc.HandleTurn(r.Context(), payload.SessionID, payload.Message, payload.History)
	if err != nil {
		log.Printf("[chat] turn failed for session=%s: %v", payload.SessionID, err)
		utils.RespondError(w, http.StatusInternalServerError, processingErrorMessage)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{"reply": reply})
}
