// Package config loads the YAML configuration used by the aaaai command:
// which model provider to talk to, retry and logging settings, the router
// mission and the named agents.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aaaai-dev/aaaai/logging"
	"github.com/aaaai-dev/aaaai/selection"
)

// Supported providers.
const (
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemma3:12b"

// Config is the root configuration document.
type Config struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	// BaseURL overrides the provider endpoint. Ollama defaults to
	// http://localhost:11434.
	BaseURL  string        `yaml:"baseURL,omitempty"`
	APIKey   string        `yaml:"apiKey,omitempty"`
	MaxRetry int           `yaml:"maxRetry"`
	Think    bool          `yaml:"think,omitempty"`
	Log      LogConfig     `yaml:"log"`
	Router   RouterConfig  `yaml:"router,omitempty"`
	Agents   []AgentConfig `yaml:"agents,omitempty"`
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// RouterConfig configures the orchestration's routing agent.
type RouterConfig struct {
	Mission string `yaml:"mission,omitempty"`
}

// AgentConfig declares one named agent. Model and MaxRetry fall back to the
// top-level values when unset.
type AgentConfig struct {
	Name     string   `yaml:"name"`
	Mission  string   `yaml:"mission"`
	Model    string   `yaml:"model,omitempty"`
	MaxRetry *int     `yaml:"maxRetry,omitempty"`
	Tools    []string `yaml:"tools,omitempty"`
}

// Default returns a configuration for a local Ollama server.
func Default() *Config {
	return &Config{
		Provider: ProviderOllama,
		Model:    DefaultModel,
		MaxRetry: selection.DefaultMaxRetry,
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data into cfg, keeping values the document leaves unset.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from the environment: OLLAMA_HOST,
// AAAAI_PROVIDER, AAAAI_MODEL, AAAAI_MAX_RETRY, and the provider API key
// (OPENAI_API_KEY or ANTHROPIC_API_KEY) when no key is configured.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("AAAAI_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := getenv("AAAAI_MODEL"); v != "" {
		c.Model = v
	}
	if v := getenv("AAAAI_MAX_RETRY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("AAAAI_MAX_RETRY: %w", err)
		}
		c.MaxRetry = n
	}
	if v := getenv("OLLAMA_HOST"); v != "" && c.Provider == ProviderOllama {
		if !strings.Contains(v, "://") {
			v = "http://" + v
		}
		c.BaseURL = v
	}
	if c.APIKey == "" {
		switch c.Provider {
		case ProviderOpenAI:
			c.APIKey = getenv("OPENAI_API_KEY")
		case ProviderAnthropic:
			c.APIKey = getenv("ANTHROPIC_API_KEY")
		}
	}
	return nil
}

// Validate reports every configuration problem found.
func (c *Config) Validate() error {
	var errs []error

	switch c.Provider {
	case ProviderOllama, ProviderOpenAI, ProviderAnthropic:
	default:
		errs = append(errs, fmt.Errorf("unknown provider %q", c.Provider))
	}
	if strings.TrimSpace(c.Model) == "" {
		errs = append(errs, errors.New("model is required"))
	}
	if c.MaxRetry < 0 {
		errs = append(errs, fmt.Errorf("maxRetry must not be negative, got %d", c.MaxRetry))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	seen := make(map[string]struct{}, len(c.Agents))
	for i, a := range c.Agents {
		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Errorf("agents[%d]: name is required", i))
		} else if _, dup := seen[a.Name]; dup {
			errs = append(errs, fmt.Errorf("agents[%d]: duplicate name %q", i, a.Name))
		}
		seen[a.Name] = struct{}{}
		if strings.TrimSpace(a.Mission) == "" {
			errs = append(errs, fmt.Errorf("agents[%d]: mission is required", i))
		}
		if a.MaxRetry != nil && *a.MaxRetry < 0 {
			errs = append(errs, fmt.Errorf("agents[%d]: maxRetry must not be negative", i))
		}
	}

	return errors.Join(errs...)
}

// Agent returns the agent declared under name.
func (c *Config) Agent(name string) (AgentConfig, bool) {
	for _, a := range c.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return AgentConfig{}, false
}

// ModelFor returns the model an agent runs on.
func (c *Config) ModelFor(a AgentConfig) string {
	if a.Model != "" {
		return a.Model
	}
	return c.Model
}

// MaxRetryFor returns the retry bound of an agent.
func (c *Config) MaxRetryFor(a AgentConfig) int {
	if a.MaxRetry != nil {
		return *a.MaxRetry
	}
	return c.MaxRetry
}

// Logger builds the configured logger.
func (c *Config) Logger() logging.Logger {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		level = logging.LogLevelInfo
	}
	return logging.NewSlogLogger(level, c.Log.Format, false)
}
