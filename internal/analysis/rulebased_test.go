package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRuleBasedProcessTrial(t *testing.T) {
	transcript := `Parent: Our goal is to prepare for the AMC 8 competition.
Student: I want to get better at algebra and fractions.`

	p := NewRuleBasedProcessor()
	result, err := p.ProcessTrial(context.Background(), transcript, "student-1")
	if err != nil {
		t.Fatalf("ProcessTrial: %v", err)
	}

	if result.CurriculumRecommendation != "Competition Math (AMC/MathCounts)" {
		t.Errorf("curriculum = %q, want competition track", result.CurriculumRecommendation)
	}
	if len(result.Goals) == 0 || len(result.Goals) > 6 {
		t.Fatalf("got %d goals, want 1-6", len(result.Goals))
	}
	if !strings.Contains(strings.ToLower(result.Goals[0].Description), "prepare for the amc") {
		t.Errorf("first goal = %q, want explicit AMC goal", result.Goals[0].Description)
	}
	for _, g := range result.Goals {
		if g.MeasurableOutcome == "" {
			t.Errorf("goal %q has no measurable outcome", g.Description)
		}
	}

	names := topicNames(result.Topics)
	if !contains(names, "Algebra") || !contains(names, "Fractions") {
		t.Errorf("topics = %v, want Algebra and Fractions", names)
	}
	for _, ref := range result.Topics {
		if ref.Name == "Fractions" && ref.Parent != "Number Sense" {
			t.Errorf("Fractions parent = %q, want Number Sense", ref.Parent)
		}
	}
	if result.Summary == "" {
		t.Error("summary is empty")
	}
}

func TestRuleBasedProcessTrialFallbackGoal(t *testing.T) {
	p := NewRuleBasedProcessor()
	result, err := p.ProcessTrial(context.Background(), "hello there, nice weather today", "student-1")
	if err != nil {
		t.Fatalf("ProcessTrial: %v", err)
	}
	if len(result.Goals) != 1 {
		t.Fatalf("got %d goals, want exactly the fallback goal", len(result.Goals))
	}
	if result.Goals[0].Description != "Build overall math proficiency" {
		t.Errorf("fallback goal = %q", result.Goals[0].Description)
	}
	if result.CurriculumRecommendation != "General Math Proficiency" {
		t.Errorf("curriculum = %q, want default track", result.CurriculumRecommendation)
	}
}

func TestRuleBasedEmptyTranscript(t *testing.T) {
	p := NewRuleBasedProcessor()

	if _, err := p.ProcessTrial(context.Background(), "   \n\t ", "s"); err == nil {
		t.Fatal("ProcessTrial accepted blank transcript")
	} else {
		var invalid *ErrInvalidInput
		if !errors.As(err, &invalid) {
			t.Errorf("ProcessTrial error = %T, want *ErrInvalidInput", err)
		}
	}

	if _, err := p.ProcessSession(context.Background(), "", "s"); err == nil {
		t.Fatal("ProcessSession accepted empty transcript")
	}
}

func TestRuleBasedProcessSession(t *testing.T) {
	transcript := `Tutor: Let's work on fractions today.
Student: I'm not sure about the common denominator. I don't know how to start.
Student: Umm, I thought it was just adding the tops.
Tutor: Let's go step by step.
Student: Oh, I got it!
Tutor: Try the next one.
Student: I give up on this one.`

	p := NewRuleBasedProcessor()
	result, err := p.ProcessSession(context.Background(), transcript, "student-1")
	if err != nil {
		t.Fatalf("ProcessSession: %v", err)
	}

	if !contains(result.TopicsDiscussed, "Fractions") {
		t.Errorf("topics = %v, want Fractions", result.TopicsDiscussed)
	}
	if len(result.Misconceptions) == 0 {
		t.Error("no misconceptions detected, want at least the 'i thought it was' hit")
	}
	if len(result.Strengths) == 0 {
		t.Error("no strengths detected, want at least the 'i got it' hit")
	}
	if result.EngagementScore < 0 || result.EngagementScore > 100 {
		t.Errorf("engagement = %v, want [0,100]", result.EngagementScore)
	}

	if len(result.MasteryUpdates) != 1 {
		t.Fatalf("got %d mastery updates, want 1 (Fractions)", len(result.MasteryUpdates))
	}
	u := result.MasteryUpdates[0]
	if u.Topic != "Fractions" || u.Improvement != 0.1 || u.Errors != 1 || u.IndependentSolves != 1 {
		t.Errorf("mastery update = %+v, want {Fractions 0.1 1 1}", u)
	}

	var sawAvoidance, sawHesitation bool
	for _, s := range result.MentalBlockSignals {
		switch s.Type {
		case BlockAvoidance:
			sawAvoidance = true
		case BlockHesitation:
			sawHesitation = true
			if s.Severity < 3.5 {
				t.Errorf("hesitation severity = %v, want >= 3.5 at density 3", s.Severity)
			}
		}
	}
	if !sawAvoidance {
		t.Error("no avoidance signal for 'i give up'")
	}
	if !sawHesitation {
		t.Error("no hesitation-density signal")
	}

	if result.ParentSummary == "" || result.TutorInsight == "" || result.RecommendedNext == "" {
		t.Error("narrative fields must always be populated")
	}
	if !strings.Contains(result.RecommendedNext, "scaffolded") {
		t.Errorf("recommended next = %q, want misconception-driven recommendation", result.RecommendedNext)
	}
}

func TestScoreEngagementSignals(t *testing.T) {
	base := "we solved several practice problems together and checked the answers"

	withPositive := scoreEngagement(base + " can we do more")
	withNegative := scoreEngagement(base + " this was so boring")
	neutral := scoreEngagement(base)

	if withPositive <= neutral {
		t.Errorf("positive phrase should raise score: %v <= %v", withPositive, neutral)
	}
	if withNegative >= neutral {
		t.Errorf("negative phrase should lower score: %v >= %v", withNegative, neutral)
	}
}

func TestInferOutcome(t *testing.T) {
	tests := []struct {
		desc string
		want string
	}{
		{"raise the SAT test score", "Achieve target score on relevant assessment"},
		{"get faster at mental math with quick drills", "Complete timed practice within target duration"},
		{"understand the concept of slope", "Demonstrate conceptual understanding through explanation tasks"},
		{"finish homework every week", "Show measurable improvement over 4 consecutive sessions"},
	}
	for _, tt := range tests {
		if got := inferOutcome(tt.desc); got != tt.want {
			t.Errorf("inferOutcome(%q) = %q, want %q", tt.desc, got, tt.want)
		}
	}
}

func topicNames(refs []TopicRef) []string {
	names := make([]string, len(refs))
	for i, r := range refs {
		names[i] = r.Name
	}
	return names
}

func contains(items []string, want string) bool {
	for _, s := range items {
		if s == want {
			return true
		}
	}
	return false
}
