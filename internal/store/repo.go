package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
	Before  int64  // sequence < Before
	Kind    string // analysis kind filter: trial, session
	Purpose string // LLM purpose filter
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token consumption for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// AnalysisEventData captures one completed transcript analysis run.
type AnalysisEventData struct {
	RunID           string
	Kind            string // trial, session
	Processor       string // llm, rule-based
	StudentID       string
	TranscriptChars int
	EngagementScore float64
	Result          string // JSON-encoded analysis result
}

// AnalysisRun is a stored analysis event.
type AnalysisRun struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnalysisEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// AppendAnalysis records a completed analysis run.
	AppendAnalysis(ctx context.Context, data AnalysisEventData) error

	// QueryAnalyses returns analysis runs, newest first.
	QueryAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisRun, error)

	// GetAnalysis returns one analysis run by run ID, or nil if not found.
	GetAnalysis(ctx context.Context, runID string) (*AnalysisRun, error)
}

// TopicState is the persistent longitudinal record for one topic.
type TopicState struct {
	Name       string
	Parent     string
	Mastery    float64
	Confidence float64
	Sessions   int
	LastSeen   time.Time
}

// TopicRepo manages longitudinal topic mastery state.
type TopicRepo interface {
	// Get returns the state for a topic, or nil if never seen.
	Get(ctx context.Context, name string) (*TopicState, error)

	// Upsert creates or updates a topic's state by name.
	Upsert(ctx context.Context, state *TopicState) error

	// List returns all topic states ordered by name.
	List(ctx context.Context) ([]TopicState, error)
}

// MentalBlock is the persistent aggregate of a recurring block.
type MentalBlock struct {
	ID          int
	Description string
	BlockType   string
	Severity    float64
	Frequency   int
	Resolved    bool
	StudentID   string
	Evidence    string
	FirstSeen   time.Time
	LastSeen    time.Time
}

// BlockRepo manages persistent mental block aggregates.
type BlockRepo interface {
	// ListUnresolved returns active blocks for a student ("" = all).
	ListUnresolved(ctx context.Context, studentID string) ([]MentalBlock, error)

	// Create inserts a new block and sets its ID.
	Create(ctx context.Context, block *MentalBlock) error

	// Update rewrites a block's mutable fields by ID.
	Update(ctx context.Context, block *MentalBlock) error

	// Resolve marks a block resolved.
	Resolve(ctx context.Context, id int) error
}
