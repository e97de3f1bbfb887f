package chat_test

import (
	"testing"
	"time"

	"supportbot/internal/model/chat"
)

func TestSummarizeGroupsBySession(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	// Newest first, as the stores deliver.
	messages := []chat.Message{
		{SessionID: "B", Role: chat.RoleUser, Message: "hello from B", CreatedAt: base.Add(2 * time.Minute)},
		{SessionID: "A", Role: chat.RoleAssistant, Message: "reply", CreatedAt: base.Add(time.Minute)},
		{SessionID: "A", Role: chat.RoleUser, Message: "hello from A", CreatedAt: base},
	}

	summaries := chat.Summarize(messages)

	if len(summaries) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(summaries))
	}
	if summaries[0].SessionID != "B" || summaries[1].SessionID != "A" {
		t.Fatalf("expected order [B A], got [%s %s]", summaries[0].SessionID, summaries[1].SessionID)
	}
	if summaries[0].MessageCount != 1 {
		t.Fatalf("session B count: got %d want 1", summaries[0].MessageCount)
	}
	if summaries[1].MessageCount != 2 {
		t.Fatalf("session A count: got %d want 2", summaries[1].MessageCount)
	}
}

func TestSummarizeFirstMessageIsEarliestUserMessage(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	messages := []chat.Message{
		{SessionID: "A", Role: chat.RoleUser, Message: "second question", CreatedAt: base.Add(2 * time.Minute)},
		{SessionID: "A", Role: chat.RoleAssistant, Message: "greeting reply", CreatedAt: base.Add(time.Minute)},
		{SessionID: "A", Role: chat.RoleUser, Message: "first question", CreatedAt: base},
	}

	summaries := chat.Summarize(messages)

	if len(summaries) != 1 {
		t.Fatalf("expected 1 session, got %d", len(summaries))
	}
	if summaries[0].FirstMessage != "first question" {
		t.Fatalf("first message: got %q want %q", summaries[0].FirstMessage, "first question")
	}
	if !summaries[0].LastActive.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("last active: got %v", summaries[0].LastActive)
	}
}

func TestSummarizeNoUserMessageUsesFallbackLabel(t *testing.T) {
	messages := []chat.Message{
		{SessionID: "A", Role: chat.RoleAssistant, Message: "orphan reply", CreatedAt: time.Now().UTC()},
	}

	summaries := chat.Summarize(messages)

	if len(summaries) != 1 {
		t.Fatalf("expected 1 session, got %d", len(summaries))
	}
	if summaries[0].FirstMessage != "..." {
		t.Fatalf("expected fallback label, got %q", summaries[0].FirstMessage)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	if got := chat.Summarize(nil); len(got) != 0 {
		t.Fatalf("expected no summaries, got %d", len(got))
	}
}
