package storage

import (
	"context"
	"database/sql"
	"fmt"

	"supportbot/internal/model/chat"
)

// MessageStore persists conversation turns through database/sql.
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore wraps the shared connection pool.
func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

// SaveTurn writes the user and assistant rows of one turn in a single
// transaction, so a half-written turn can never be observed.
func (s *MessageStore) SaveTurn(ctx context.Context, user, assistant chat.Message) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin turn: %w", err)
	}

	const insert = `INSERT INTO conversations (id, session_id, role, message, created_at) VALUES (?, ?, ?, ?, ?)`
	for _, msg := range []chat.Message{user, assistant} {
		if _, err := tx.ExecContext(ctx, insert,
			msg.ID, msg.SessionID, msg.Role, msg.Message, msg.CreatedAt,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s message: %w", msg.Role, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit turn: %w", err)
	}
	return nil
}

// ListSessions reads all messages newest first and groups them into
// per-session summaries.
func (s *MessageStore) ListSessions(ctx context.Context) ([]chat.SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, role, message, created_at FROM conversations ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	messages, err := scanMessages(rows)
	if err != nil {
		return nil, err
	}
	return chat.Summarize(messages), nil
}

// LoadTranscript returns the stored messages of one session in
// chronological order.
func (s *MessageStore) LoadTranscript(ctx context.Context, sessionID string) ([]chat.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, role, message, created_at FROM conversations WHERE session_id = ? ORDER BY created_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]chat.Message, error) {
	var messages []chat.Message
	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
