package memory

import (
	"context"
	"testing"
	"time"

	"supportbot/internal/model/chat"
)

func saveTurn(t *testing.T, store *MessageStore, sessionID, question, answer string, at time.Time) {
	t.Helper()
	user := chat.Message{
		ID: sessionID + "-u-" + at.String(), SessionID: sessionID,
		Role: chat.RoleUser, Message: question, CreatedAt: at,
	}
	assistant := chat.Message{
		ID: sessionID + "-a-" + at.String(), SessionID: sessionID,
		Role: chat.RoleAssistant, Message: answer, CreatedAt: at.Add(time.Second),
	}
	if err := store.SaveTurn(context.Background(), user, assistant); err != nil {
		t.Fatalf("SaveTurn err: %v", err)
	}
}

func TestListSessionsOrdersByTimestampNotInsertion(t *testing.T) {
	store := NewMessageStore()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	// The chronologically later turn is inserted first. Summaries must
	// still follow created_at, like the SQL store's ORDER BY.
	saveTurn(t, store, "session-a", "später", "und danach", base.Add(time.Hour))
	saveTurn(t, store, "session-a", "eigentlich zuerst", "gleich darauf", base)

	summaries, err := store.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions err: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 session, got %d", len(summaries))
	}
	if summaries[0].FirstMessage != "eigentlich zuerst" {
		t.Fatalf("first message: got %q", summaries[0].FirstMessage)
	}
	if want := base.Add(time.Hour + time.Second); !summaries[0].LastActive.Equal(want) {
		t.Fatalf("last active: got %v want %v", summaries[0].LastActive, want)
	}
}

func TestListSessionsSortsSessionsByLastActivity(t *testing.T) {
	store := NewMessageStore()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	saveTurn(t, store, "session-b", "neue Frage", "neue Antwort", base.Add(time.Hour))
	saveTurn(t, store, "session-a", "alte Frage", "alte Antwort", base)

	summaries, err := store.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("ListSessions err: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(summaries))
	}
	if summaries[0].SessionID != "session-b" || summaries[1].SessionID != "session-a" {
		t.Fatalf("unexpected order: %s, %s", summaries[0].SessionID, summaries[1].SessionID)
	}
	if summaries[0].MessageCount != 2 {
		t.Fatalf("message count: got %d", summaries[0].MessageCount)
	}
}
