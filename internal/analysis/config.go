package analysis

// Engine constants with their documented defaults. Retry behavior
// (3 attempts, 1s base delay, doubling) lives in llm.RetryConfig.
const (
	// DefaultMaxTranscriptChars caps transcript length sent to the
	// model (~30K tokens safety limit).
	DefaultMaxTranscriptChars = 120_000

	// truncationMarker is appended when a transcript is cut off.
	truncationMarker = "\n\n[TRANSCRIPT TRUNCATED — original was too long]"
)

// Config controls the LLM-backed processor.
type Config struct {
	// MaxTranscriptChars is the transcript-length ceiling. Longer
	// transcripts are truncated with a marker appended.
	MaxTranscriptChars int

	// MaxTokens is the token budget for the model response.
	MaxTokens int

	// Temperature for generation. Low by default: extraction should be
	// reproducible, not creative.
	Temperature float64
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		MaxTranscriptChars: DefaultMaxTranscriptChars,
		MaxTokens:          4096,
		Temperature:        0.2,
	}
}
