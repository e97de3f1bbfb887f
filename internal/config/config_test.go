package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	// Clear anything the surrounding environment may define.
	for _, key := range []string{
		"PORT", "AI_PROVIDER", "OPENAI_MODEL", "CHAT_TEMPERATURE",
		"CHAT_MAX_TOKENS", "CHAT_HISTORY_LIMIT", "DB_DRIVER", "REDIS_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr: got %q want :8080", cfg.Server.Addr)
	}
	if cfg.AI.Provider != ProviderOpenAI {
		t.Errorf("provider: got %q want openai", cfg.AI.Provider)
	}
	if cfg.AI.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("model: got %q", cfg.AI.OpenAIModel)
	}
	if cfg.AI.Temperature == nil || *cfg.AI.Temperature != 0.7 {
		t.Errorf("temperature: got %v want 0.7", cfg.AI.Temperature)
	}
	if cfg.AI.MaxTokens == nil || *cfg.AI.MaxTokens != 500 {
		t.Errorf("max tokens: got %v want 500", cfg.AI.MaxTokens)
	}
	if cfg.AI.HistoryLimit != 10 {
		t.Errorf("history limit: got %d want 10", cfg.AI.HistoryLimit)
	}
	if cfg.Database.Driver != "sqlite3" {
		t.Errorf("db driver: got %q", cfg.Database.Driver)
	}
	if cfg.Redis.Enabled() {
		t.Error("redis must be disabled without REDIS_ADDR")
	}
}

func TestLoadPortVariants(t *testing.T) {
	t.Setenv("PORT", "127.0.0.1:9000")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("addr: got %q", cfg.Server.Addr)
	}

	t.Setenv("PORT", "bad value")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid PORT")
	}
}

func TestLoadInvalidProvider(t *testing.T) {
	t.Setenv("AI_PROVIDER", "mistral")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestLoadHistoryLimitFloor(t *testing.T) {
	t.Setenv("CHAT_HISTORY_LIMIT", "0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if cfg.AI.HistoryLimit != 1 {
		t.Fatalf("history limit floor: got %d want 1", cfg.AI.HistoryLimit)
	}
}

func TestAIConfigEnabled(t *testing.T) {
	if (AIConfig{Provider: ProviderOpenAI}).Enabled() {
		t.Error("openai without key must be disabled")
	}
	if !(AIConfig{Provider: ProviderOpenAI, OpenAIAPIKey: "sk-test"}).Enabled() {
		t.Error("openai with key must be enabled")
	}
	if (AIConfig{Provider: ProviderArk, ArkAPIKey: "key"}).Enabled() {
		t.Error("ark without model must be disabled")
	}
	if !(AIConfig{Provider: ProviderArk, ArkAPIKey: "key", ArkModel: "doubao"}).Enabled() {
		t.Error("ark with key and model must be enabled")
	}
}

func TestLoadInvalidCacheTTL(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SETTINGS_CACHE_TTL", "five minutes")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid SETTINGS_CACHE_TTL")
	}
}
