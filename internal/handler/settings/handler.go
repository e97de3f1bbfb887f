package settings

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	settingsmodel "supportbot/internal/model/settings"
	settingsservice "supportbot/internal/service/settings"
	"supportbot/pkg/utils"
)

// Handler serves the bot configuration endpoints. The widget shell reads
// them to render name, greeting, and color; the dashboard edits them.
type Handler struct {
	settingsSvc *settingsservice.Service
}

// New creates the settings handler.
func New(settingsSvc *settingsservice.Service) *Handler {
	return &Handler{settingsSvc: settingsSvc}
}

// RegisterRoutes attaches the settings routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/settings", h.handleGet)
	r.Put("/settings", h.handleUpdate)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsSvc.Get(r.Context())
	if err != nil {
		if errors.Is(err, settingsmodel.ErrNotFound) {
			utils.RespondJSON(w, http.StatusOK, settingsmodel.Defaults())
			return
		}
		log.Printf("[settings] read failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to load settings")
		return
	}
	utils.RespondJSON(w, http.StatusOK, cfg)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		BotName        string `json:"bot_name"`
		WelcomeMessage string `json:"welcome_message"`
		SystemPrompt   string `json:"system_prompt"`
		PrimaryColor   string `json:"primary_color"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.settingsSvc.Update(r.Context(), settingsmodel.Settings{
		BotName:        payload.BotName,
		WelcomeMessage: payload.WelcomeMessage,
		SystemPrompt:   payload.SystemPrompt,
		PrimaryColor:   payload.PrimaryColor,
	})
	if err != nil {
		log.Printf("[settings] update failed: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "failed to update settings")
		return
	}
	utils.RespondJSON(w, http.StatusOK, updated)
}
