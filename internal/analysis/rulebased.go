package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// RuleBasedProcessor extracts structure with keyword and pattern
// matching only. Deterministic, no external calls, and it degrades to
// generic defaults instead of failing: the only error it returns is
// rejection of an empty transcript.
type RuleBasedProcessor struct{}

// NewRuleBasedProcessor creates the rule-based processor.
func NewRuleBasedProcessor() *RuleBasedProcessor {
	return &RuleBasedProcessor{}
}

func (p *RuleBasedProcessor) Name() string { return "rule-based" }

// goalPatterns are the explicit/directive goal regex families. Implicit
// goals come from detected topics afterward.
var goalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:goal|objective|target|aim|want to|hope to|need to|would like to)\s*(?:is|are|:)?\s*(.+?)(?:\.|$)`),
	regexp.MustCompile(`(?:we want|i want|she wants|he wants)\s+(?:him|her|them|to)\s*(.+?)(?:\.|$)`),
	regexp.MustCompile(`(?:improve|get better at|work on|focus on|master)\s+(.+?)(?:\.|$)`),
}

const (
	maxGoals          = 6
	maxImplicitTopics = 3
	minGoalDescLen    = 10
)

// ProcessTrial extracts goals, topics, and a curriculum recommendation
// from a trial/intake transcript. studentID is unused.
func (p *RuleBasedProcessor) ProcessTrial(_ context.Context, transcript, _ string) (*TrialResult, error) {
	if err := checkTranscript(transcript); err != nil {
		return nil, err
	}
	lower := strings.ToLower(transcript)

	goals := extractGoals(lower)
	topics := detectTopics(lower)
	curriculum := inferCurriculum(lower)

	refs := make([]TopicRef, len(topics))
	for i, t := range topics {
		refs[i] = TopicRef{Name: t, Parent: ParentTopic(t)}
	}

	return &TrialResult{
		Summary:                  trialSummary(goals, topics, curriculum),
		Goals:                    goals,
		Topics:                   refs,
		CurriculumRecommendation: curriculum,
	}, nil
}

// ProcessSession extracts performance signals from a session
// transcript. studentID is unused.
func (p *RuleBasedProcessor) ProcessSession(_ context.Context, transcript, _ string) (*SessionResult, error) {
	if err := checkTranscript(transcript); err != nil {
		return nil, err
	}
	lower := strings.ToLower(transcript)

	topics := detectTopics(lower)
	misconceptions := detectMisconceptions(lower)
	strengths := detectStrengths(lower)
	engagement := scoreEngagement(lower)
	masteryUpdates := computeMasterySignals(topics, misconceptions, strengths)
	blockSignals := detectMentalBlockSignals(lower)

	return &SessionResult{
		TopicsDiscussed:    topics,
		Misconceptions:     misconceptions,
		Strengths:          strengths,
		EngagementScore:    engagement,
		MasteryUpdates:     masteryUpdates,
		MentalBlockSignals: blockSignals,
		ParentSummary:      parentSummary(topics, strengths, misconceptions, engagement),
		TutorInsight:       tutorInsight(topics, misconceptions, strengths, blockSignals),
		RecommendedNext:    nextRecommendation(topics, misconceptions, masteryUpdates),
	}, nil
}

func checkTranscript(transcript string) error {
	if strings.TrimSpace(transcript) == "" {
		return &ErrInvalidInput{Reason: "transcript is empty"}
	}
	return nil
}

// extractGoals captures explicit declarations, directive phrasing, and
// implicit goals synthesized from the first detected topics. Duplicate
// descriptions are suppressed case-insensitively; output is capped at
// six; a generic fallback guarantees at least one goal.
func extractGoals(lower string) []Goal {
	var goals []Goal
	seen := make(map[string]bool)

	for _, pattern := range goalPatterns {
		for _, m := range pattern.FindAllStringSubmatch(lower, -1) {
			desc := capitalize(strings.TrimSpace(m[1]))
			if len(desc) <= minGoalDescLen || seen[strings.ToLower(desc)] {
				continue
			}
			seen[strings.ToLower(desc)] = true
			goals = append(goals, Goal{
				Description:       desc,
				MeasurableOutcome: inferOutcome(desc),
			})
		}
	}

	topics := detectTopics(lower)
	for i, topic := range topics {
		if i == maxImplicitTopics {
			break
		}
		desc := fmt.Sprintf("Build proficiency in %s", topic)
		if seen[strings.ToLower(desc)] {
			continue
		}
		seen[strings.ToLower(desc)] = true
		goals = append(goals, Goal{
			Description:       desc,
			MeasurableOutcome: fmt.Sprintf("Score 80%%+ on %s assessments", topic),
		})
	}

	if len(goals) == 0 {
		goals = append(goals, Goal{
			Description:       "Build overall math proficiency",
			MeasurableOutcome: "Demonstrate consistent improvement across sessions",
		})
	}

	if len(goals) > maxGoals {
		goals = goals[:maxGoals]
	}
	return goals
}

// inferOutcome derives a measurable outcome from keyword categories in
// the goal description.
func inferOutcome(desc string) string {
	lower := strings.ToLower(desc)
	switch {
	case containsAny(lower, "score", "grade", "test"):
		return "Achieve target score on relevant assessment"
	case containsAny(lower, "speed", "fast", "quick"):
		return "Complete timed practice within target duration"
	case containsAny(lower, "understand", "concept", "foundation"):
		return "Demonstrate conceptual understanding through explanation tasks"
	default:
		return "Show measurable improvement over 4 consecutive sessions"
	}
}

// computeMasterySignals builds the per-topic update vectors. Every
// detected topic gets the same improvement/error/solve values in one
// pass — the extractor does not differentiate topics within a single
// transcript.
func computeMasterySignals(topics, misconceptions, strengths []string) []MasteryUpdate {
	errorCount := min(len(misconceptions), 3)
	independent := countIndependentSolves(strengths)

	improvement := 0.1
	if len(strengths) > len(misconceptions) {
		improvement = 0.3
	}

	updates := make([]MasteryUpdate, len(topics))
	for i, topic := range topics {
		updates[i] = MasteryUpdate{
			Topic:             topic,
			Improvement:       improvement,
			Errors:            errorCount,
			IndependentSolves: independent,
		}
	}
	return updates
}

// ── narrative templates ──

func parentSummary(topics, strengths, misconceptions []string, engagement float64) string {
	var parts []string
	if len(topics) > 0 {
		parts = append(parts, fmt.Sprintf("Today we worked on: %s.", strings.Join(firstN(topics, 3), ", ")))
	}
	if len(strengths) > 0 {
		parts = append(parts, "Your child showed strength in understanding key concepts.")
	}
	if len(misconceptions) > 0 {
		parts = append(parts, fmt.Sprintf("We identified %d area(s) that need more practice.", len(misconceptions)))
	}
	switch {
	case engagement >= 70:
		parts = append(parts, "Engagement was great today!")
	case engagement >= 50:
		parts = append(parts, "Engagement was steady.")
	default:
		parts = append(parts, "We're working on building more engagement and motivation.")
	}
	parts = append(parts, "Looking forward to continued progress next session!")
	return strings.Join(parts, " ")
}

func tutorInsight(topics, misconceptions, strengths []string, blocks []MentalBlockSignal) string {
	covered := "General review"
	if len(topics) > 0 {
		covered = strings.Join(topics, ", ")
	}
	parts := []string{fmt.Sprintf("Topics covered: %s.", covered)}

	if len(misconceptions) > 0 {
		parts = append(parts, fmt.Sprintf("Misconceptions detected (%d): Focus on conceptual reinforcement before procedural practice.", len(misconceptions)))
	}
	if len(strengths) > 0 {
		parts = append(parts, fmt.Sprintf("Positive signals (%d): Student showing readiness to advance on demonstrated topics.", len(strengths)))
	}
	if len(blocks) > 0 {
		parts = append(parts, fmt.Sprintf("Mental block signals (%d): Consider scaffolding approach and confidence-building exercises.", len(blocks)))
	}
	return strings.Join(parts, " ")
}

func nextRecommendation(topics, misconceptions []string, updates []MasteryUpdate) string {
	if len(misconceptions) > 0 {
		return "Recommended: Revisit concepts with errors using scaffolded examples. Start with guided practice before independent work."
	}
	for _, u := range updates {
		if u.Improvement < 0.3 {
			return fmt.Sprintf("Recommended: Focus on strengthening %s with varied problem types.", u.Topic)
		}
	}
	if len(topics) > 0 {
		return fmt.Sprintf("Recommended: Build on today's progress — introduce next-level problems in %s.", topics[0])
	}
	return "Recommended: Review previous session topics and assess readiness for new material."
}

func trialSummary(goals []Goal, topics []string, curriculum string) string {
	parts := []string{fmt.Sprintf("Curriculum track: %s.", curriculum)}
	if len(goals) > 0 {
		parts = append(parts, fmt.Sprintf("Identified %d learning goal(s).", len(goals)))
	}
	if len(topics) > 0 {
		parts = append(parts, fmt.Sprintf("Key topic areas: %s.", strings.Join(firstN(topics, 4), ", ")))
	}
	parts = append(parts, "Initial assessment complete — ready for structured lesson planning.")
	return strings.Join(parts, " ")
}

// ── small helpers ──

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
