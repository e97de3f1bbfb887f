package chat

import (
	"context"
	"time"
)

// Roles a persisted message can carry. Every turn writes exactly one of each.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message persists one side of a conversation turn. Rows are immutable once
// written; created_at is the only ordering key.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Turn is a prior exchange entry the widget resends with every request. The
// server keeps no conversational memory beyond what the caller supplies.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// Store exposes transcript persistence for handlers and the orchestrator.
type Store interface {
	// SaveTurn writes the user/assistant pair of one turn atomically.
	SaveTurn(ctx context.Context, user, assistant Message) error
	// ListSessions aggregates all messages into per-session summaries,
	// sorted by most recent activity first.
	ListSessions(ctx context.Context) ([]SessionSummary, error)
	// LoadTranscript returns all messages of one session in
	// chronological order.
	LoadTranscript(ctx context.Context, sessionID string) ([]Message, error)
}
