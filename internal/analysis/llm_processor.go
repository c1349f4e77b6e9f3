package analysis

import (
	"context"

	"go.uber.org/zap"

	"github.com/abhisek/tutorlens/internal/llm"
)

// LLMProcessor extracts via a configured model provider. It owns prompt
// construction, transcript truncation, output recovery, and the mapping
// of provider failures into the extraction error taxonomy; everything
// transport-level (retries, validation, logging) lives in the provider
// chain it was given.
type LLMProcessor struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewLLMProcessor creates an LLM-backed processor. A nil logger is
// replaced with a no-op one.
func NewLLMProcessor(provider llm.Provider, cfg Config, log *zap.Logger) *LLMProcessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &LLMProcessor{provider: provider, cfg: cfg, log: log}
}

func (p *LLMProcessor) Name() string { return "llm" }

// ProcessTrial analyzes a trial/intake transcript with the model.
// studentID is unused.
func (p *LLMProcessor) ProcessTrial(ctx context.Context, transcript, _ string) (*TrialResult, error) {
	if err := checkTranscript(transcript); err != nil {
		return nil, err
	}
	transcript = truncateTranscript(transcript, p.cfg.MaxTranscriptChars)

	ctx = llm.WithPurpose(ctx, "trial-analysis")
	resp, err := p.provider.Generate(ctx, llm.Request{
		System: trialSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTrialUserMessage(transcript)},
		},
		Schema:      TrialSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, &ErrExtraction{Op: "trial", Err: err}
	}

	data, err := ExtractJSON(string(resp.Content))
	if err != nil {
		return nil, &ErrExtraction{Op: "trial", Err: err}
	}
	result, err := DecodeTrialResult(data)
	if err != nil {
		return nil, &ErrExtraction{Op: "trial", Err: err}
	}

	p.log.Debug("trial extraction complete",
		zap.String("model", resp.Model),
		zap.Int("goals", len(result.Goals)),
		zap.Int("topics", len(result.Topics)),
		zap.Int("output_tokens", resp.Usage.OutputTokens))
	return result, nil
}

// ProcessSession analyzes a session transcript with the model.
// studentID is unused.
func (p *LLMProcessor) ProcessSession(ctx context.Context, transcript, _ string) (*SessionResult, error) {
	if err := checkTranscript(transcript); err != nil {
		return nil, err
	}
	transcript = truncateTranscript(transcript, p.cfg.MaxTranscriptChars)

	ctx = llm.WithPurpose(ctx, "session-analysis")
	resp, err := p.provider.Generate(ctx, llm.Request{
		System: sessionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSessionUserMessage(transcript)},
		},
		Schema:      SessionSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, &ErrExtraction{Op: "session", Err: err}
	}

	data, err := ExtractJSON(string(resp.Content))
	if err != nil {
		return nil, &ErrExtraction{Op: "session", Err: err}
	}
	result, err := DecodeSessionResult(data)
	if err != nil {
		return nil, &ErrExtraction{Op: "session", Err: err}
	}

	p.log.Debug("session extraction complete",
		zap.String("model", resp.Model),
		zap.Float64("engagement", result.EngagementScore),
		zap.Int("mastery_updates", len(result.MasteryUpdates)),
		zap.Int("output_tokens", resp.Usage.OutputTokens))
	return result, nil
}
