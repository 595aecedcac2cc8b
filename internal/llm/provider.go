package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Settings selects and configures a completion provider.
type Settings struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
}

// New builds the Completer for settings.Provider.
func New(ctx context.Context, settings Settings) (*Model, error) {
	switch NormalizeProvider(settings.Provider) {
	case ProviderGemini, "":
		opts := []googleai.Option{googleai.WithAPIKey(settings.APIKey)}
		if settings.Model != "" {
			opts = append(opts, googleai.WithDefaultModel(settings.Model))
		}
		client, err := googleai.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		return NewModel(client, settings.Temperature), nil
	case ProviderOpenAI:
		opts := []openai.Option{openai.WithToken(settings.APIKey)}
		if settings.Model != "" {
			opts = append(opts, openai.WithModel(settings.Model))
		}
		if settings.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(settings.BaseURL))
		}
		client, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("openai client: %w", err)
		}
		return NewModel(client, settings.Temperature), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", settings.Provider)
	}
}
