// Package analysis turns free-text tutoring-session transcripts into
// structured pedagogical signals: learning goals, topic placement,
// misconception/strength extraction, engagement scoring, and mental
// block detection.
//
// Two Processor implementations exist: a deterministic rule-based
// extractor that is always available, and an LLM-backed extractor that
// needs a configured provider. Both are stateless per call; callers
// pick one at startup and may substitute the rule-based result when
// the LLM path fails.
package analysis

import "context"

// Processor is the extraction contract both implementations satisfy.
//
// studentID is accepted for symmetry with persistence-aware callers but
// is not consulted by either current implementation; a future variant
// could use it to personalize on stored history without widening the
// interface.
type Processor interface {
	// ProcessTrial analyzes an intake/trial transcript into goals,
	// topics, and a curriculum recommendation.
	ProcessTrial(ctx context.Context, transcript, studentID string) (*TrialResult, error)

	// ProcessSession analyzes a regular session transcript into
	// performance signals and narrative summaries.
	ProcessSession(ctx context.Context, transcript, studentID string) (*SessionResult, error)

	// Name identifies the implementation ("rule-based", "llm") for
	// event logging and reports.
	Name() string
}

// TrialResult is the structured output of trial/intake processing.
type TrialResult struct {
	Summary                  string                 `json:"summary"`
	Goals                    []Goal                 `json:"goals"`
	Topics                   []TopicRef             `json:"topics"`
	CurriculumRecommendation string                 `json:"curriculum_recommendation"`
	MentalBlocks             []MentalBlockCandidate `json:"mental_blocks,omitempty"`
	LessonRecommendations    []LessonRecommendation `json:"lesson_recommendations,omitempty"`
}

// Goal is one extracted learning goal. The engine creates goals; it
// never mutates them after creation.
type Goal struct {
	Description           string  `json:"description"`
	MeasurableOutcome     string  `json:"measurable_outcome"`
	EvidenceQuote         string  `json:"evidence_quote,omitempty"`
	SuggestedIntervention string  `json:"suggested_intervention,omitempty"`
	Deadline              *string `json:"deadline"`
}

// TopicRef names a detected topic. Parent is a topic name, not an ID;
// resolving it against a stored hierarchy is the caller's job.
type TopicRef struct {
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

// SessionResult is the structured output of session processing.
type SessionResult struct {
	TopicsDiscussed       []string               `json:"topics_discussed"`
	Misconceptions        []string               `json:"misconceptions"`
	Strengths             []string               `json:"strengths"`
	EngagementScore       float64                `json:"engagement_score"`
	MasteryUpdates        []MasteryUpdate        `json:"mastery_updates"`
	MentalBlockSignals    []MentalBlockSignal    `json:"mental_block_signals"`
	LessonRecommendations []LessonRecommendation `json:"lesson_recommendations,omitempty"`
	ParentSummary         string                 `json:"parent_summary"`
	TutorInsight          string                 `json:"tutor_insight"`
	RecommendedNext       string                 `json:"recommended_next"`
}

// MasteryUpdate is a per-topic signal vector for one session. It is
// transient: the caller folds it into persistent mastery/confidence
// state via the scoring formulas.
type MasteryUpdate struct {
	Topic             string  `json:"topic"`
	Improvement       float64 `json:"improvement"` // 0.0–1.0
	Errors            int     `json:"errors"`
	IndependentSolves int     `json:"independent_solves"`
}

// BlockType classifies a mental block signal.
type BlockType string

const (
	BlockAvoidance  BlockType = "avoidance"
	BlockEmotional  BlockType = "emotional"
	BlockConfusion  BlockType = "confusion"
	BlockConfidence BlockType = "confidence"
	BlockHesitation BlockType = "hesitation"
)

// MentalBlockSignal is one detected block cue within a single session.
// Transient per call; the caller aggregates repeated signals into
// persistent block records.
type MentalBlockSignal struct {
	Description            string    `json:"description"`
	Type                   BlockType `json:"type"`
	Severity               float64   `json:"severity"`
	EvidenceFromTranscript string    `json:"evidence_from_transcript,omitempty"`
	CognitiveExplanation   string    `json:"cognitive_explanation,omitempty"`
	ImpactOnLearning       string    `json:"impact_on_learning,omitempty"`
}

// MentalBlockCandidate is a block pattern identified during trial
// processing, with an integer 1–10 severity per the wire contract.
type MentalBlockCandidate struct {
	BlockType              BlockType `json:"block_type"`
	Severity               int       `json:"severity"`
	EvidenceFromTranscript string    `json:"evidence_from_transcript"`
	CognitiveExplanation   string    `json:"cognitive_explanation,omitempty"`
	ImpactOnLearning       string    `json:"impact_on_learning,omitempty"`
}

// LessonRecommendation is a prescriptive teaching action.
type LessonRecommendation struct {
	InterventionType string `json:"intervention_type"`
	SpecificStrategy string `json:"specific_strategy"`
	WhyThisWillWork  string `json:"why_this_will_work"`
}
