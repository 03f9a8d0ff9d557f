package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/Echen1246/force.ai/configs"
	"github.com/Echen1246/force.ai/internal/types"
)

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Config holds all configuration
type Config struct {
	// Version info
	Version   string
	Commit    string
	BuildTime string

	// Model provider
	APIKey   string
	Model    string
	BaseURL  string
	Provider types.ProviderType

	// Worker behavior
	Engine   string
	LogLevel string

	// Engine definitions, keyed by name
	Engines map[string]EngineConfig
}

// EngineConfig defines an external browser-automation engine
type EngineConfig struct {
	Name           string            `json:"name"`
	Command        string            `json:"command"`
	AdditionalArgs []string          `json:"additional_args"`
	Env            map[string]string `json:"env,omitempty"`
	Timeout        string            `json:"timeout,omitempty"`
	ResultMarker   string            `json:"result_marker,omitempty"`
}

// TimeoutOrDefault parses the configured timeout, falling back to def.
func (e EngineConfig) TimeoutOrDefault(def time.Duration) time.Duration {
	if e.Timeout == "" {
		return def
	}
	d, err := time.ParseDuration(e.Timeout)
	if err != nil {
		return def
	}
	return d
}

// Load reads configuration from the environment and embedded engine files.
// The API key is kept in the returned Config and handed to the provider
// client directly; it is never written back into the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,

		APIKey:   os.Getenv("OPENAI_API_KEY"),
		BaseURL:  os.Getenv("OPENAI_BASE_URL"),
		Provider: types.ProviderOpenAI,

		Model:    getEnvOrDefault("BROWSERUSE_MODEL", "gpt-4o"),
		Engine:   getEnvOrDefault("BROWSERUSE_ENGINE", "browseruse"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),

		Engines: make(map[string]EngineConfig),
	}

	if err := cfg.loadEngines(); err != nil {
		return nil, fmt.Errorf("loading engine definitions: %w", err)
	}

	return cfg, nil
}

// EngineByName returns the engine definition for name.
func (c *Config) EngineByName(name string) (EngineConfig, bool) {
	e, ok := c.Engines[name]
	return e, ok
}

// ModelConfig returns the model configuration handed to providers and engines.
func (c *Config) ModelConfig() types.ModelConfig {
	return types.ModelConfig{
		Provider:  c.Provider,
		ModelName: c.Model,
		APIKey:    c.APIKey,
		BaseURL:   c.BaseURL,
	}
}

func (c *Config) loadEngines() error {
	// Embedded definitions ship with the binary.
	if err := c.loadEnginesFS(configs.Engines, "engines"); err != nil {
		return err
	}

	// On-disk definitions override embedded ones.
	const overrideDir = "configs/engines"
	if _, err := os.Stat(overrideDir); err == nil {
		if err := c.loadEnginesFS(os.DirFS("."), overrideDir); err != nil {
			return err
		}
	}

	return nil
}

func (c *Config) loadEnginesFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		name := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}

		var engine EngineConfig
		if err := json.Unmarshal(data, &engine); err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}

		c.Engines[engine.Name] = engine
	}

	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
