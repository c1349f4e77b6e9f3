package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Model output frequently arrives wrapped in markdown fences or with
// trailing prose. ExtractJSON peels those layers off; the Decode*
// functions then tolerate per-entry damage so one bad array element
// does not discard the whole extraction.

var (
	fenceJSONRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fenceAnyRe  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// ExtractJSON recovers a JSON object from raw model output. It tries,
// in order: a ```json fence, any fence, the text as-is, and finally a
// balanced-brace scan from the first '{'. Returns ErrMalformedOutput
// when no parseable object exists.
func ExtractJSON(raw string) (json.RawMessage, error) {
	candidates := []string{}
	if m := fenceJSONRe.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, m[1])
	}
	if m := fenceAnyRe.FindStringSubmatch(raw); m != nil {
		candidates = append(candidates, m[1])
	}
	candidates = append(candidates, strings.TrimSpace(raw))

	for _, c := range candidates {
		if json.Valid([]byte(c)) && strings.HasPrefix(strings.TrimSpace(c), "{") {
			return json.RawMessage(strings.TrimSpace(c)), nil
		}
	}

	if obj, ok := scanBalancedObject(raw); ok {
		return json.RawMessage(obj), nil
	}

	return nil, &ErrMalformedOutput{
		Raw: raw,
		Err: fmt.Errorf("no JSON object found in output"),
	}
}

// scanBalancedObject walks from the first '{' tracking brace depth and
// string/escape state, returning the first balanced object that parses.
func scanBalancedObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	for start >= 0 {
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(raw); i++ {
			ch := raw[i]
			switch {
			case escaped:
				escaped = false
			case ch == '\\' && inString:
				escaped = true
			case ch == '"':
				inString = !inString
			case inString:
			case ch == '{':
				depth++
			case ch == '}':
				depth--
				if depth == 0 {
					candidate := raw[start : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate, true
					}
					i = len(raw) // abandon this start point
				}
			}
		}
		next := strings.IndexByte(raw[start+1:], '{')
		if next < 0 {
			return "", false
		}
		start += 1 + next
	}
	return "", false
}

// rawTrialResult mirrors TrialResult but defers collection entries so
// individually damaged elements can be dropped.
type rawTrialResult struct {
	Summary                  string            `json:"summary"`
	Goals                    []json.RawMessage `json:"goals"`
	Topics                   []json.RawMessage `json:"topics"`
	CurriculumRecommendation string            `json:"curriculum_recommendation"`
	MentalBlocks             []json.RawMessage `json:"mental_blocks"`
	LessonRecommendations    []json.RawMessage `json:"lesson_recommendations"`
}

// DecodeTrialResult decodes an extracted JSON object into a
// TrialResult, dropping malformed collection entries and coercing
// damaged numeric fields. Returns ErrIncompleteExtraction when no
// valid goal survives.
func DecodeTrialResult(data json.RawMessage) (*TrialResult, error) {
	var raw rawTrialResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ErrMalformedOutput{Raw: string(data), Err: err}
	}

	out := &TrialResult{
		Summary:                  raw.Summary,
		CurriculumRecommendation: raw.CurriculumRecommendation,
	}

	for _, entry := range raw.Goals {
		var g Goal
		if err := json.Unmarshal(entry, &g); err != nil {
			continue
		}
		if strings.TrimSpace(g.Description) == "" || strings.TrimSpace(g.MeasurableOutcome) == "" {
			continue
		}
		out.Goals = append(out.Goals, g)
	}
	if len(out.Goals) == 0 {
		return nil, &ErrIncompleteExtraction{Reason: "no valid goals in output"}
	}

	for _, entry := range raw.Topics {
		var t TopicRef
		if err := json.Unmarshal(entry, &t); err != nil || strings.TrimSpace(t.Name) == "" {
			continue
		}
		out.Topics = append(out.Topics, t)
	}

	for _, entry := range raw.MentalBlocks {
		if c, ok := decodeBlockCandidate(entry); ok {
			out.MentalBlocks = append(out.MentalBlocks, c)
		}
	}

	for _, entry := range raw.LessonRecommendations {
		var r LessonRecommendation
		if err := json.Unmarshal(entry, &r); err != nil || strings.TrimSpace(r.SpecificStrategy) == "" {
			continue
		}
		out.LessonRecommendations = append(out.LessonRecommendations, r)
	}

	return out, nil
}

type rawSessionResult struct {
	TopicsDiscussed       []string          `json:"topics_discussed"`
	Misconceptions        []string          `json:"misconceptions"`
	Strengths             []string          `json:"strengths"`
	EngagementScore       json.RawMessage   `json:"engagement_score"`
	MasteryUpdates        []json.RawMessage `json:"mastery_updates"`
	MentalBlockSignals    []json.RawMessage `json:"mental_block_signals"`
	LessonRecommendations []json.RawMessage `json:"lesson_recommendations"`
	ParentSummary         string            `json:"parent_summary"`
	TutorInsight          string            `json:"tutor_insight"`
	RecommendedNext       string            `json:"recommended_next"`
}

// DecodeSessionResult decodes an extracted JSON object into a
// SessionResult with the same drop-damaged-entries policy. Numeric
// coercion failures substitute neutral defaults rather than failing.
func DecodeSessionResult(data json.RawMessage) (*SessionResult, error) {
	var raw rawSessionResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ErrMalformedOutput{Raw: string(data), Err: err}
	}

	out := &SessionResult{
		TopicsDiscussed: raw.TopicsDiscussed,
		Misconceptions:  raw.Misconceptions,
		Strengths:       raw.Strengths,
		EngagementScore: clampRange(coerceFloat(raw.EngagementScore, 50), 0, 100),
		ParentSummary:   raw.ParentSummary,
		TutorInsight:    raw.TutorInsight,
		RecommendedNext: raw.RecommendedNext,
	}

	for _, entry := range raw.MasteryUpdates {
		if u, ok := decodeMasteryUpdate(entry); ok {
			out.MasteryUpdates = append(out.MasteryUpdates, u)
		}
	}

	for _, entry := range raw.MentalBlockSignals {
		if s, ok := decodeBlockSignal(entry); ok {
			out.MentalBlockSignals = append(out.MentalBlockSignals, s)
		}
	}

	for _, entry := range raw.LessonRecommendations {
		var r LessonRecommendation
		if err := json.Unmarshal(entry, &r); err != nil || strings.TrimSpace(r.SpecificStrategy) == "" {
			continue
		}
		out.LessonRecommendations = append(out.LessonRecommendations, r)
	}

	return out, nil
}

func decodeMasteryUpdate(entry json.RawMessage) (MasteryUpdate, bool) {
	var raw struct {
		Topic             string          `json:"topic"`
		Improvement       json.RawMessage `json:"improvement"`
		Errors            json.RawMessage `json:"errors"`
		IndependentSolves json.RawMessage `json:"independent_solves"`
	}
	if err := json.Unmarshal(entry, &raw); err != nil || strings.TrimSpace(raw.Topic) == "" {
		return MasteryUpdate{}, false
	}
	return MasteryUpdate{
		Topic:             raw.Topic,
		Improvement:       clampRange(coerceFloat(raw.Improvement, 0), 0, 1),
		Errors:            int(coerceFloat(raw.Errors, 0)),
		IndependentSolves: int(coerceFloat(raw.IndependentSolves, 0)),
	}, true
}

func decodeBlockSignal(entry json.RawMessage) (MentalBlockSignal, bool) {
	var raw struct {
		Description            string          `json:"description"`
		Type                   string          `json:"type"`
		Severity               json.RawMessage `json:"severity"`
		EvidenceFromTranscript string          `json:"evidence_from_transcript"`
		CognitiveExplanation   string          `json:"cognitive_explanation"`
		ImpactOnLearning       string          `json:"impact_on_learning"`
	}
	if err := json.Unmarshal(entry, &raw); err != nil || strings.TrimSpace(raw.Description) == "" {
		return MentalBlockSignal{}, false
	}
	return MentalBlockSignal{
		Description:            raw.Description,
		Type:                   BlockType(raw.Type),
		Severity:               clampRange(coerceFloat(raw.Severity, 1), 0, 10),
		EvidenceFromTranscript: raw.EvidenceFromTranscript,
		CognitiveExplanation:   raw.CognitiveExplanation,
		ImpactOnLearning:       raw.ImpactOnLearning,
	}, true
}

func decodeBlockCandidate(entry json.RawMessage) (MentalBlockCandidate, bool) {
	var raw struct {
		BlockType              string          `json:"block_type"`
		Severity               json.RawMessage `json:"severity"`
		EvidenceFromTranscript string          `json:"evidence_from_transcript"`
		CognitiveExplanation   string          `json:"cognitive_explanation"`
		ImpactOnLearning       string          `json:"impact_on_learning"`
	}
	if err := json.Unmarshal(entry, &raw); err != nil || strings.TrimSpace(raw.BlockType) == "" {
		return MentalBlockCandidate{}, false
	}
	sev := int(clampRange(coerceFloat(raw.Severity, 5), 1, 10))
	return MentalBlockCandidate{
		BlockType:              BlockType(raw.BlockType),
		Severity:               sev,
		EvidenceFromTranscript: raw.EvidenceFromTranscript,
		CognitiveExplanation:   raw.CognitiveExplanation,
		ImpactOnLearning:       raw.ImpactOnLearning,
	}, true
}

// coerceFloat reads a numeric field that may arrive as a number, a
// numeric string, or null/absent. Anything unreadable yields def.
func coerceFloat(raw json.RawMessage, def float64) float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return def
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f
		}
	}
	return def
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
