package memory

import (
	"context"
	"sort"
	"sync"

	"supportbot/internal/model/chat"
)

// MessageStore keeps transcripts in process memory. Used by tests and when
// running without a database file.
type MessageStore struct {
	mu       sync.RWMutex
	messages []chat.Message
}

// NewMessageStore returns an empty in-memory transcript store.
func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

// SaveTurn appends the user/assistant pair under the write lock, so the
// pair is observed together like the SQL store's transaction.
func (s *MessageStore) SaveTurn(_ context.Context, user, assistant chat.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, user, assistant)
	return nil
}

// ListSessions groups the stored messages into per-session summaries.
func (s *MessageStore) ListSessions(_ context.Context) ([]chat.SessionSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Summarize expects newest first by created_at, matching the SQL
	// store's ORDER BY. Ties keep reverse insertion order.
	reversed := make([]chat.Message, 0, len(s.messages))
	for i := len(s.messages) - 1; i >= 0; i-- {
		reversed = append(reversed, s.messages[i])
	}
	sort.SliceStable(reversed, func(i, j int) bool {
		return reversed[i].CreatedAt.After(reversed[j].CreatedAt)
	})
	return chat.Summarize(reversed), nil
}

// LoadTranscript returns the messages of one session in insertion order.
func (s *MessageStore) LoadTranscript(_ context.Context, sessionID string) ([]chat.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var transcript []chat.Message
	for _, msg := range s.messages {
		if msg.SessionID == sessionID {
			transcript = append(transcript, msg)
		}
	}
	return transcript, nil
}

// Len reports the number of stored messages, for tests.
func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
