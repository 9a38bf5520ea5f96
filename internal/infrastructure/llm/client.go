package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/alfredhq/alfred/internal/config"
)

// ErrMissingAPIKey is returned by Generate, before any network activity,
// when the client was built without an API key.
var ErrMissingAPIKey = errors.New("llm: api key not configured")

// Provider defines the one call the assistant makes per chat turn.
type Provider interface {
	// Generate sends the system instruction and the prompt in a single
	// non-streaming request that asks for JSON output and returns the raw
	// text of the reply.
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// NewProvider builds the provider named by cfg.Provider. The API key is
// taken from cfg and never read from the environment at call time.
func NewProvider(cfg config.ModelConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai", "":
		return NewOpenAIClient(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	case "deepseek":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = DeepSeekBaseURL
		}
		return NewOpenAIClient(cfg.APIKey, baseURL, cfg.Model), nil
	case "gemini":
		return NewGeminiClient(cfg.APIKey, cfg.BaseURL, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Provider)
	}
}
