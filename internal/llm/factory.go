package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/tutorlens/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// standard middleware chain: caller → retry → logging → vendor client.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, eventRepo, log)
	return WithRetry(logged, cfg.Retry), nil
}
