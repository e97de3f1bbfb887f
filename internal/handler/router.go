package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	adminHandler "supportbot/internal/handler/admin"
	chatHandler "supportbot/internal/handler/chat"
	settingsHandler "supportbot/internal/handler/settings"
	middlewarePkg "supportbot/internal/middleware"
	chatmodel "supportbot/internal/model/chat"
	chatService "supportbot/internal/service/chat"
	settingsService "supportbot/internal/service/settings"
)

// NewRouter wires HTTP routes to core services. chatSvc may be nil when no
// completion model is configured.
func NewRouter(chatSvc *chatService.Service, settingsSvc *settingsService.Service, messages chatmodel.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		chatHandler.New(chatSvc).RegisterRoutes(api)
		settingsHandler.New(settingsSvc).RegisterRoutes(api)
		adminHandler.New(messages).RegisterRoutes(api)
	})

	return r
}
