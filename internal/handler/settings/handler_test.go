package settings

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	settingsmodel "supportbot/internal/model/settings"
	settingsservice "supportbot/internal/service/settings"
	"supportbot/internal/storage/memory"
)

func setupRouter(seed *settingsmodel.Settings) *chi.Mux {
	svc := settingsservice.NewService(memory.NewSettingsStore(seed), nil, 0)
	r := chi.NewRouter()
	New(svc).RegisterRoutes(r)
	return r
}

func TestGetSettingsReturnsStoredRecord(t *testing.T) {
	seed := settingsmodel.Defaults()
	seed.BotName = "Bäckerei Bot"
	r := setupRouter(&seed)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got settingsmodel.Settings
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.BotName != "Bäckerei Bot" {
		t.Fatalf("bot name: got %q", got.BotName)
	}
}

func TestGetSettingsMissingRowFallsBackToDefaults(t *testing.T) {
	r := setupRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got settingsmodel.Settings
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.SystemPrompt != settingsmodel.DefaultSystemPrompt {
		t.Fatalf("system prompt: got %q want default", got.SystemPrompt)
	}
}

func TestUpdateSettingsOverwritesAllFields(t *testing.T) {
	seed := settingsmodel.Defaults()
	r := setupRouter(&seed)

	payload, _ := json.Marshal(map[string]string{
		"bot_name":        "Neuer Name",
		"welcome_message": "Willkommen!",
		"system_prompt":   "Sei knapp.",
		"primary_color":   "#ff0000",
	})
	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var got settingsmodel.Settings
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.BotName != "Neuer Name" || got.PrimaryColor != "#ff0000" {
		t.Fatalf("unexpected record: %+v", got)
	}
	if got.ID != 1 {
		t.Fatalf("id: got %d want 1", got.ID)
	}
}

func TestUpdateSettingsInvalidBody(t *testing.T) {
	seed := settingsmodel.Defaults()
	r := setupRouter(&seed)

	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewReader([]byte("{broken")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
