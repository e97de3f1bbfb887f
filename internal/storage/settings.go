package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"supportbot/internal/model/settings"
)

// SettingsStore persists the single chatbot configuration row.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore wraps the shared connection pool.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get reads the settings row. Returns settings.ErrNotFound when the row is
// missing, which callers treat as "use defaults".
func (s *SettingsStore) Get(ctx context.Context) (settings.Settings, error) {
	var cfg settings.Settings
	err := s.db.QueryRowContext(ctx,
		`SELECT id, bot_name, welcome_message, system_prompt, primary_color FROM chatbot_settings LIMIT 1`,
	).Scan(&cfg.ID, &cfg.BotName, &cfg.WelcomeMessage, &cfg.SystemPrompt, &cfg.PrimaryColor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.Settings{}, settings.ErrNotFound
		}
		return settings.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return cfg, nil
}

// Update overwrites the four mutable fields of the settings row.
func (s *SettingsStore) Update(ctx context.Context, cfg settings.Settings) (settings.Settings, error) {
	// The row is seeded by the migration; mysql reports zero affected
	// rows for a no-op update, so RowsAffected is not a presence check.
	_, err := s.db.ExecContext(ctx,
		`UPDATE chatbot_settings SET bot_name = ?, welcome_message = ?, system_prompt = ?, primary_color = ? WHERE id = 1`,
		cfg.BotName, cfg.WelcomeMessage, cfg.SystemPrompt, cfg.PrimaryColor,
	)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("update settings: %w", err)
	}
	cfg.ID = 1
	return cfg, nil
}
