package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"supportbot/internal/config"
	"supportbot/internal/model/chat"
)

// FallbackReply is returned and persisted when the completion API yields no
// content. The user cannot distinguish it from a regular answer.
const FallbackReply = "Entschuldigung, ich konnte keine Antwort generieren."

// Service runs conversation turns through the completion model.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the prompt chain around the supplied chat model. The
// model is injected so tests can substitute a stub.
func NewService(ctx context.Context, chatModel model.ChatModel, cfg config.AIConfig) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// GenerateReply invokes the model with the system prompt, the bounded
// history window, and the new user message. An empty completion is replaced
// by FallbackReply; only a failed model call surfaces as an error.
func (s *Service) GenerateReply(ctx context.Context, systemPrompt string, history []chat.Turn, userMessage string) (string, error) {
	input := map[string]any{
		"system":  systemPrompt,
		"history": s.buildHistoryMessages(history),
		"query":   userMessage,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}

	reply := response.Content
	if strings.TrimSpace(reply) == "" {
		log.Printf("[ai] empty completion, substituting fallback reply")
		return FallbackReply, nil
	}
	return reply, nil
}

// buildHistoryMessages keeps the last HistoryLimit turns, oldest of the
// window first. Older turns are dropped silently.
func (s *Service) buildHistoryMessages(history []chat.Turn) []*schema.Message {
	limit := s.cfg.HistoryLimit
	if limit <= 0 {
		limit = 10
	}

	if len(history) == 0 {
		return nil
	}

	startIdx := 0
	if len(history) > limit {
		startIdx = len(history) - limit
	}

	messages := make([]*schema.Message, 0, len(history)-startIdx)
	for _, turn := range history[startIdx:] {
		switch turn.Role {
		case chat.RoleUser:
			messages = append(messages, schema.UserMessage(turn.Message))
		case chat.RoleAssistant:
			messages = append(messages, schema.AssistantMessage(turn.Message, nil))
		}
	}

	return messages
}
