package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/tutorlens/internal/llm"
)

const mockSessionJSON = `{
	"topics_discussed": ["Quadratic Factoring"],
	"misconceptions": ["student believes (-3)^2 = -9"],
	"strengths": ["applied the distributive property across 4 problems"],
	"engagement_score": 78,
	"mastery_updates": [{"topic": "Quadratic Factoring", "improvement": 0.5, "errors": 1, "independent_solves": 2}],
	"mental_block_signals": [],
	"parent_summary": "Great session today.",
	"tutor_insight": "Sign-rule confusion in exponentiation.",
	"recommended_next": "Start with error-analysis on squared negatives."
}`

const mockTrialJSON = `{
	"summary": "Counts on fingers when simplifying like terms.",
	"goals": [{
		"description": "Simplify linear expressions without finger counting",
		"measurable_outcome": "10/10 on a like-terms drill in 5 minutes",
		"evidence_quote": "Student counted 3x + 2x on fingers",
		"suggested_intervention": "Color-code like terms across 5 guided problems",
		"deadline": null
	}],
	"topics": [{"name": "Expressions & Simplification", "parent": "Algebra"}],
	"curriculum_recommendation": "Common Core Aligned"
}`

func TestLLMProcessorSession(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mockSessionJSON)})
	p := NewLLMProcessor(mock, DefaultConfig(), nil)

	result, err := p.ProcessSession(context.Background(), "Tutor: let's factor x^2 - 9.", "student-1")
	if err != nil {
		t.Fatalf("ProcessSession: %v", err)
	}

	if result.EngagementScore != 78 {
		t.Errorf("engagement = %v, want 78", result.EngagementScore)
	}
	if len(result.MasteryUpdates) != 1 || result.MasteryUpdates[0].IndependentSolves != 2 {
		t.Errorf("mastery updates = %+v", result.MasteryUpdates)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider called %d times, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "session_analysis" {
		t.Errorf("request schema = %+v, want session_analysis", req.Schema)
	}
	if len(req.Messages) != 1 || !strings.Contains(req.Messages[0].Content, "factor x^2 - 9") {
		t.Error("user message does not carry the transcript")
	}
	if req.System == "" {
		t.Error("system prompt is empty")
	}
}

func TestLLMProcessorTrial(t *testing.T) {
	// Fenced output exercises the recovery path end to end.
	fenced := "```json\n" + mockTrialJSON + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	p := NewLLMProcessor(mock, DefaultConfig(), nil)

	result, err := p.ProcessTrial(context.Background(), "Student counted 3x + 2x on fingers.", "student-1")
	if err != nil {
		t.Fatalf("ProcessTrial: %v", err)
	}
	if len(result.Goals) != 1 || result.Goals[0].SuggestedIntervention == "" {
		t.Errorf("goals = %+v", result.Goals)
	}
	if result.CurriculumRecommendation != "Common Core Aligned" {
		t.Errorf("curriculum = %q", result.CurriculumRecommendation)
	}
}

func TestLLMProcessorTruncatesTranscript(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mockSessionJSON)})
	cfg := DefaultConfig()
	cfg.MaxTranscriptChars = 200
	p := NewLLMProcessor(mock, cfg, nil)

	long := strings.Repeat("student solved another equation. ", 50)
	if _, err := p.ProcessSession(context.Background(), long, "s"); err != nil {
		t.Fatalf("ProcessSession: %v", err)
	}

	content := mock.Calls[0].Messages[0].Content
	if !strings.Contains(content, "TRANSCRIPT TRUNCATED") {
		t.Error("truncation marker missing from prompt")
	}
	if strings.Count(content, "student solved") > 10 {
		t.Error("transcript was not truncated")
	}
}

func TestLLMProcessorErrorWrapping(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("the model refused to answer")})
	p := NewLLMProcessor(mock, DefaultConfig(), nil)

	_, err := p.ProcessSession(context.Background(), "transcript", "s")
	var extraction *ErrExtraction
	if !errors.As(err, &extraction) {
		t.Fatalf("error = %v, want *ErrExtraction", err)
	}
	var malformed *ErrMalformedOutput
	if !errors.As(err, &malformed) {
		t.Errorf("ErrExtraction should wrap *ErrMalformedOutput, got %v", err)
	}

	// Provider failure surfaces through the same boundary.
	exhausted := llm.NewMockProvider()
	p = NewLLMProcessor(exhausted, DefaultConfig(), nil)
	_, err = p.ProcessTrial(context.Background(), "transcript", "s")
	if !errors.As(err, &extraction) {
		t.Fatalf("error = %v, want *ErrExtraction", err)
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("ErrExtraction should wrap provider error, got %v", err)
	}
}
