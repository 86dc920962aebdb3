package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/wcfjeffrey/jeffreywoo-study-ai-model/internal/config"
)

// New builds the configured provider. The API key is a precondition: a
// missing key for a real provider fails here rather than mid-pipeline.
func New(ctx context.Context, cfg config.Config) (LLMProvider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "mock":
		return NewMockProvider(), nil
	case "gemini":
		return NewGeminiProvider(ctx, cfg.GeminiModel)
	case "openai", "chatanywhere":
		p := NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIModel)
		if p.apiKey == "" {
			return nil, fmt.Errorf("openai api key missing: set OPENAI_API_KEY")
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}
}
