package engine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Echen1246/force.ai/internal/config"
	"github.com/Echen1246/force.ai/internal/types"
)

func TestNew_UnavailableCommand(t *testing.T) {
	cfg := config.EngineConfig{
		Name:    "ghost",
		Command: "definitely-not-installed-anywhere",
	}

	_, err := New(cfg, "task", types.ModelConfig{})
	if err == nil {
		t.Fatal("expected error for missing command")
	}

	var unavailable ErrEngineUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrEngineUnavailable, got %T", err)
	}
	if unavailable.Command != cfg.Command {
		t.Errorf("expected command in error, got %q", unavailable.Command)
	}
}

func TestBuildEnv_InjectsModelCredentials(t *testing.T) {
	a := &BaseAgent{
		name: "fake",
		env:  map[string]string{"HEADLESS": "1"},
		model: types.ModelConfig{
			APIKey:    "sk-test",
			ModelName: "gpt-4o",
			BaseURL:   "https://example.test/v1",
		},
	}

	env := a.buildEnv()

	want := []string{
		"OPENAI_API_KEY=sk-test",
		"BROWSERUSE_MODEL=gpt-4o",
		"OPENAI_BASE_URL=https://example.test/v1",
		"HEADLESS=1",
	}
	for _, entry := range want {
		if !containsEnv(env, entry) {
			t.Errorf("expected %q in child env", entry)
		}
	}
}

func TestBuildEnv_EmptyCredentialsOmitted(t *testing.T) {
	a := &BaseAgent{name: "fake"}

	for _, entry := range a.buildEnv() {
		if strings.HasPrefix(entry, "BROWSERUSE_MODEL=") {
			t.Errorf("unexpected model entry %q", entry)
		}
	}
}

func TestTimeoutOrDefault(t *testing.T) {
	cfg := config.EngineConfig{Timeout: "90s"}
	if got := cfg.TimeoutOrDefault(time.Minute); got != 90*time.Second {
		t.Errorf("expected parsed timeout, got %v", got)
	}

	cfg = config.EngineConfig{}
	if got := cfg.TimeoutOrDefault(time.Minute); got != time.Minute {
		t.Errorf("expected default timeout, got %v", got)
	}

	cfg = config.EngineConfig{Timeout: "bogus"}
	if got := cfg.TimeoutOrDefault(time.Minute); got != time.Minute {
		t.Errorf("expected default for bogus timeout, got %v", got)
	}
}

func containsEnv(env []string, entry string) bool {
	for _, e := range env {
		if e == entry {
			return true
		}
	}
	return false
}
