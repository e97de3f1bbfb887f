// Package widget implements the session and transport contract of the chat
// widget: one opaque session identifier per client lifetime and an
// in-memory transcript that is resent as context with every turn. The
// rendering layer around it lives in the browser and is out of scope here.
package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrorReply is appended to the transcript when the chat endpoint cannot be
// reached or returns an unreadable body.
const ErrorReply = "Entschuldigung, es gab einen Fehler."

// ErrEmptyMessage reports a whitespace-only send. No request is made and no
// turn is appended.
var ErrEmptyMessage = errors.New("message is empty")

// Turn is one transcript entry.
type Turn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// Settings is the bot presentation record the rendering shell needs.
type Settings struct {
	BotName        string `json:"bot_name"`
	WelcomeMessage string `json:"welcome_message"`
	SystemPrompt   string `json:"system_prompt"`
	PrimaryColor   string `json:"primary_color"`
}

// Client talks to the chat backend on behalf of one widget instance. The
// session identifier is generated once and stays stable for the client's
// lifetime; a new client means a new session.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessionID  string

	mu    sync.Mutex
	turns []Turn
}

// New creates a widget client for the given backend base URL. A nil
// httpClient falls back to a 30s-timeout default.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		sessionID:  uuid.NewString(),
	}
}

// SessionID returns the client's opaque session identifier.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Transcript returns a copy of the in-memory conversation.
func (c *Client) Transcript() []Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Turn(nil), c.turns...)
}

// Send submits one user message and returns the assistant reply. The user
// turn is appended optimistically and the prior transcript is sent as
// history. A transport or decode failure appends ErrorReply instead of a
// real answer; an error-status body without a reply appends nothing and
// returns an empty string.
func (c *Client) Send(ctx context.Context, text string) (string, error) {
	message := strings.TrimSpace(text)
	if message == "" {
		return "", ErrEmptyMessage
	}

	c.mu.Lock()
	history := append([]Turn(nil), c.turns...)
	c.turns = append(c.turns, Turn{Role: "user", Message: message})
	c.mu.Unlock()

	payload, err := json.Marshal(map[string]any{
		"message":   message,
		"sessionId": c.sessionID,
		"history":   history,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.appendErrorReply(), nil
	}
	defer resp.Body.Close()

	var body struct {
		Reply string `json:"reply"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return c.appendErrorReply(), nil
	}

	if body.Reply == "" {
		return "", nil
	}

	c.mu.Lock()
	c.turns = append(c.turns, Turn{Role: "assistant", Message: body.Reply})
	c.mu.Unlock()
	return body.Reply, nil
}

func (c *Client) appendErrorReply() string {
	c.mu.Lock()
	c.turns = append(c.turns, Turn{Role: "assistant", Message: ErrorReply})
	c.mu.Unlock()
	return ErrorReply
}

// Settings fetches the bot configuration the shell renders with.
func (c *Client) Settings(ctx context.Context) (Settings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/settings", nil)
	if err != nil {
		return Settings{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Settings{}, err
	}
	defer resp.Body.Close()

	var cfg Settings
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}
