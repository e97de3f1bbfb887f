package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"supportbot/internal/cache"
	"supportbot/internal/config"
	"supportbot/internal/handler"
	"supportbot/internal/service/ai"
	chatservice "supportbot/internal/service/chat"
	settingsservice "supportbot/internal/service/settings"
	"supportbot/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := storage.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.Migrate(db, cfg.Database.Driver); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	messageStore := storage.NewMessageStore(db)
	settingsStore := storage.NewSettingsStore(db)

	// Optional settings cache; the server runs fine without it.
	var settingsCache settingsservice.Cache
	if cfg.Redis.Enabled() {
		cacheClient, err := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Printf("warning: failed to connect to redis: %v", err)
			log.Println("continuing without settings cache")
		} else {
			defer cacheClient.Close()
			settingsCache = cacheClient
			log.Println("settings cache enabled")
		}
	}
	settingsSvc := settingsservice.NewService(settingsStore, settingsCache, cfg.Redis.CacheTTL)

	// The chat endpoint needs a completion model; admin and settings work
	// without one.
	var chatSvc *chatservice.Service
	if cfg.AI.Enabled() {
		chatModel, err := cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Fatalf("failed to create chat model: %v", err)
		}
		aiSvc, err := ai.NewService(ctx, chatModel, cfg.AI)
		if err != nil {
			log.Fatalf("failed to initialize AI service: %v", err)
		}
		chatSvc = chatservice.NewService(aiSvc, settingsSvc, messageStore)
		log.Printf("chat service initialized with provider %s", cfg.AI.Provider)
	} else {
		log.Println("warning: completion credentials not configured, chat endpoint will answer 503")
	}

	router := handler.NewRouter(chatSvc, settingsSvc, messageStore)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("supportbot backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
