package chat

import (
	"sort"
	"time"
)

// SessionSummary is the derived admin view of one visitor conversation.
// Sessions are never stored; they exist only as this read-time grouping.
type SessionSummary struct {
	SessionID    string `json:"session_id"`
	MessageCount int    `json:"message_count"`
	// FirstMessage is the earliest user message, used as a list label.
	FirstMessage string `json:"first_message"`
	// LastActive is the timestamp of the newest message in the session.
	LastActive time.Time `json:"last_active"`
}

// firstMessageFallback labels sessions that contain no user message yet.
const firstMessageFallback = "..."

// Summarize groups messages into per-session summaries. The input must be
// sorted newest first; the result is sorted by last activity descending.
func Summarize(messages []Message) []SessionSummary {
	order := make([]string, 0)
	grouped := make(map[string][]Message)
	for _, msg := range messages {
		if _, ok := grouped[msg.SessionID]; !ok {
			order = append(order, msg.SessionID)
		}
		grouped[msg.SessionID] = append(grouped[msg.SessionID], msg)
	}

	summaries := make([]SessionSummary, 0, len(order))
	for _, sid := range order {
		msgs := grouped[sid]
		first := firstMessageFallback
		// msgs is newest first, so the last user entry is the
		// chronologically earliest one.
		for i := len(msgs) - 1; i >= 0; i-- {
			if msgs[i].Role == RoleUser {
				first = msgs[i].Message
				break
			}
		}
		summaries = append(summaries, SessionSummary{
			SessionID:    sid,
			MessageCount: len(msgs),
			FirstMessage: first,
			LastActive:   msgs[0].CreatedAt,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastActive.After(summaries[j].LastActive)
	})
	return summaries
}
