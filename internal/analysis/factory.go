package analysis

import (
	"go.uber.org/zap"

	"github.com/abhisek/tutorlens/internal/llm"
)

// NewProcessor selects the extraction implementation. With a provider
// it is LLM-backed; without one it falls back to the rule-based
// extractor, which needs no configuration and always succeeds.
func NewProcessor(provider llm.Provider, cfg Config, log *zap.Logger) Processor {
	if provider == nil {
		return NewRuleBasedProcessor()
	}
	return NewLLMProcessor(provider, cfg, log)
}
