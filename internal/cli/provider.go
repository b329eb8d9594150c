package cli

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/aaaai-dev/aaaai/config"
	"github.com/aaaai-dev/aaaai/model"
	anthropicmodel "github.com/aaaai-dev/aaaai/model/anthropic"
	"github.com/aaaai-dev/aaaai/model/ollama"
	"github.com/aaaai-dev/aaaai/model/openai"
)

// NewModel builds the configured provider's client for the model name.
func NewModel(cfg *config.Config, name string) (model.Model, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return ollama.NewModel(name, func(o *ollama.Options) {
			if cfg.BaseURL != "" {
				o.BaseURL = cfg.BaseURL
			}
		})
	case config.ProviderOpenAI:
		return openai.NewModel(func(o *openai.Options) {
			o.Model = name
			o.BaseURL = cfg.BaseURL
			o.APIKey = cfg.APIKey
		}), nil
	case config.ProviderAnthropic:
		return anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
			o.Model = anthropic.Model(name)
			o.BaseURL = cfg.BaseURL
			o.APIKey = cfg.APIKey
		}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}
