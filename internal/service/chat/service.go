package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	chatmodel "supportbot/internal/model/chat"
	settingsmodel "supportbot/internal/model/settings"
)

// ReplyGenerator produces the assistant reply for one turn.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, systemPrompt string, history []chatmodel.Turn, userMessage string) (string, error)
}

// SettingsSource supplies the current bot configuration.
type SettingsSource interface {
	Get(ctx context.Context) (settingsmodel.Settings, error)
}

// Service orchestrates one conversation turn: settings read, completion
// call, pair persistence. It is stateless across calls; the caller resends
// the history it wants considered.
type Service struct {
	generator ReplyGenerator
	settings  SettingsSource
	messages  chatmodel.Store
}

// NewService wires the orchestrator. All collaborators are constructed once
// at startup and shared across requests.
func NewService(generator ReplyGenerator, settings SettingsSource, messages chatmodel.Store) *Service {
	return &Service{
		generator: generator,
		settings:  settings,
		messages:  messages,
	}
}

// HandleTurn processes one inbound user message and returns the reply.
// Persistence failure is logged and masked: the visitor still gets the
// answer even if the transcript write failed.
func (s *Service) HandleTurn(ctx context.Context, sessionID, message string, history []chatmodel.Turn) (string, error) {
	systemPrompt := settingsmodel.DefaultSystemPrompt
	cfg, err := s.settings.Get(ctx)
	switch {
	case err == nil && strings.TrimSpace(cfg.SystemPrompt) != "":
		systemPrompt = cfg.SystemPrompt
	case err != nil && !errors.Is(err, settingsmodel.ErrNotFound):
		log.Printf("[chat] settings read failed, using default prompt: %v", err)
	}

	reply, err := s.generator.GenerateReply(ctx, systemPrompt, history, message)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	userMsg := chatmodel.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      chatmodel.RoleUser,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	assistantMsg := chatmodel.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      chatmodel.RoleAssistant,
		Message:   reply,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.messages.SaveTurn(ctx, userMsg, assistantMsg); err != nil {
		log.Printf("[chat] persist turn failed for session=%s: %v", sessionID, err)
	}

	return reply, nil
}
