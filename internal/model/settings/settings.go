package settings

import (
	"context"
	"errors"
)

// Settings is the single configuration record controlling bot persona and
// presentation. Exactly one row is expected to exist; it is seeded by the
// migration, never created through the API.
type Settings struct {
	ID             int64  `json:"id"`
	BotName        string `json:"bot_name"`
	WelcomeMessage string `json:"welcome_message"`
	SystemPrompt   string `json:"system_prompt"`
	PrimaryColor   string `json:"primary_color"`
}

// Defaults used when the row is absent or a field is left blank.
const (
	DefaultBotName        = "Support Bot"
	DefaultWelcomeMessage = "Hallo! Wie kann ich Ihnen helfen?"
	DefaultSystemPrompt   = "Du bist ein freundlicher Kundensupport-Assistent."
	DefaultPrimaryColor   = "#2563eb"
)

// Defaults returns the out-of-the-box settings record.
func Defaults() Settings {
	return Settings{
		ID:             1,
		BotName:        DefaultBotName,
		WelcomeMessage: DefaultWelcomeMessage,
		SystemPrompt:   DefaultSystemPrompt,
		PrimaryColor:   DefaultPrimaryColor,
	}
}

// ErrNotFound reports a missing settings row.
var ErrNotFound = errors.New("settings not found")

// Store exposes settings retrieval and full-field update.
type Store interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
}
