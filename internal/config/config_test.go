package config

import (
	"testing"

	"github.com/Echen1246/force.ai/internal/types"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("BROWSERUSE_MODEL", "")
	t.Setenv("BROWSERUSE_ENGINE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey != "sk-env" {
		t.Errorf("expected API key from env, got %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("expected default model gpt-4o, got %q", cfg.Model)
	}
	if cfg.Engine != "browseruse" {
		t.Errorf("expected default engine, got %q", cfg.Engine)
	}
	if cfg.Provider != types.ProviderOpenAI {
		t.Errorf("expected openai provider, got %q", cfg.Provider)
	}
}

func TestLoad_EmbeddedEngines(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	engine, ok := cfg.EngineByName("browseruse")
	if !ok {
		t.Fatal("expected embedded browseruse engine definition")
	}
	if engine.Command == "" {
		t.Error("expected engine command")
	}
	if engine.ResultMarker == "" {
		t.Error("expected result marker")
	}

	if _, ok := cfg.EngineByName("generic"); !ok {
		t.Error("expected embedded generic engine definition")
	}
}

func TestModelConfig(t *testing.T) {
	cfg := &Config{
		APIKey:   "sk-123",
		Model:    "gpt-4o-mini",
		BaseURL:  "https://example.test/v1",
		Provider: types.ProviderOpenAI,
	}

	mc := cfg.ModelConfig()
	if mc.APIKey != "sk-123" || mc.ModelName != "gpt-4o-mini" || mc.BaseURL != "https://example.test/v1" {
		t.Errorf("unexpected model config: %+v", mc)
	}
}
