package analysis

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	want := `{"summary":"ok"}`

	tests := []struct {
		name string
		raw  string
	}{
		{"bare object", `{"summary":"ok"}`},
		{"json fence", "```json\n{\"summary\":\"ok\"}\n```"},
		{"plain fence", "```\n{\"summary\":\"ok\"}\n```"},
		{"leading prose", "Here is the analysis you asked for:\n{\"summary\":\"ok\"}"},
		{"trailing prose", `{"summary":"ok"}` + "\n\nLet me know if you need anything else."},
		{"surrounding whitespace", "  \n{\"summary\":\"ok\"}\n  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if err != nil {
				t.Fatalf("ExtractJSON: %v", err)
			}
			if string(got) != want {
				t.Errorf("got %s, want %s", got, want)
			}
		})
	}
}

func TestExtractJSONNestedBraces(t *testing.T) {
	raw := `The result: {"outer":{"inner":"has } in a string"},"n":1} done`
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(got, &decoded); err != nil {
		t.Fatalf("recovered object does not parse: %v", err)
	}
	if decoded["n"] != float64(1) {
		t.Errorf("recovered object missing trailing field: %v", decoded)
	}
}

func TestExtractJSONMalformed(t *testing.T) {
	for _, raw := range []string{"", "no json here", `{"unterminated": `, "[1, 2, 3]"} {
		_, err := ExtractJSON(raw)
		var malformed *ErrMalformedOutput
		if !errors.As(err, &malformed) {
			t.Errorf("ExtractJSON(%q) error = %v, want *ErrMalformedOutput", raw, err)
		}
	}
}

func TestDecodeTrialResult(t *testing.T) {
	data := json.RawMessage(`{
		"summary": "Student relies on arithmetic over algebraic reasoning.",
		"goals": [
			{"description": "Solve two-step equations independently", "measurable_outcome": "8/10 on a timed drill", "deadline": null},
			{"description": "", "measurable_outcome": "dropped: no description"},
			{"description": "Missing outcome gets dropped too"}
		],
		"topics": [
			{"name": "Linear Equations", "parent": "Algebra"},
			{"name": ""}
		],
		"curriculum_recommendation": "SAT/ACT Prep",
		"mental_blocks": [
			{"block_type": "avoidance", "severity": "7", "evidence_from_transcript": "can we skip this"},
			{"block_type": "", "severity": 4}
		]
	}`)

	result, err := DecodeTrialResult(data)
	if err != nil {
		t.Fatalf("DecodeTrialResult: %v", err)
	}
	if len(result.Goals) != 1 {
		t.Fatalf("got %d goals, want 1 surviving goal", len(result.Goals))
	}
	if result.Goals[0].Deadline != nil {
		t.Errorf("deadline = %v, want nil", *result.Goals[0].Deadline)
	}
	if len(result.Topics) != 1 || result.Topics[0].Parent != "Algebra" {
		t.Errorf("topics = %+v, want one entry with parent Algebra", result.Topics)
	}
	if len(result.MentalBlocks) != 1 {
		t.Fatalf("got %d mental blocks, want 1", len(result.MentalBlocks))
	}
	if result.MentalBlocks[0].Severity != 7 {
		t.Errorf("severity = %d, want string-coerced 7", result.MentalBlocks[0].Severity)
	}
}

func TestDecodeTrialResultNoGoals(t *testing.T) {
	data := json.RawMessage(`{"summary": "x", "goals": [], "curriculum_recommendation": "y"}`)
	_, err := DecodeTrialResult(data)
	var incomplete *ErrIncompleteExtraction
	if !errors.As(err, &incomplete) {
		t.Fatalf("error = %v, want *ErrIncompleteExtraction", err)
	}
}

func TestDecodeSessionResult(t *testing.T) {
	data := json.RawMessage(`{
		"topics_discussed": ["Fractions"],
		"misconceptions": ["believes 1/2 + 1/3 = 2/5"],
		"strengths": [],
		"engagement_score": 250,
		"mastery_updates": [
			{"topic": "Fractions", "improvement": 1.7, "errors": 2, "independent_solves": 1},
			{"topic": "", "improvement": 0.5}
		],
		"mental_block_signals": [
			{"description": "avoids fraction problems", "type": "avoidance", "severity": null}
		],
		"parent_summary": "p",
		"tutor_insight": "t",
		"recommended_next": "r"
	}`)

	result, err := DecodeSessionResult(data)
	if err != nil {
		t.Fatalf("DecodeSessionResult: %v", err)
	}
	if result.EngagementScore != 100 {
		t.Errorf("engagement = %v, want clamped 100", result.EngagementScore)
	}
	if len(result.MasteryUpdates) != 1 {
		t.Fatalf("got %d mastery updates, want 1 surviving entry", len(result.MasteryUpdates))
	}
	if result.MasteryUpdates[0].Improvement != 1.0 {
		t.Errorf("improvement = %v, want clamped 1.0", result.MasteryUpdates[0].Improvement)
	}
	if len(result.MentalBlockSignals) != 1 {
		t.Fatalf("got %d block signals, want 1", len(result.MentalBlockSignals))
	}
	if result.MentalBlockSignals[0].Severity != 1 {
		t.Errorf("null severity = %v, want default 1", result.MentalBlockSignals[0].Severity)
	}
}

func TestDecodeSessionResultRoundTrip(t *testing.T) {
	orig := &SessionResult{
		TopicsDiscussed: []string{"Algebra"},
		Misconceptions:  []string{"sign error in distribution"},
		Strengths:       []string{"applied FOIL without prompting"},
		EngagementScore: 72.5,
		MasteryUpdates: []MasteryUpdate{
			{Topic: "Algebra", Improvement: 0.5, Errors: 1, IndependentSolves: 2},
		},
		MentalBlockSignals: []MentalBlockSignal{
			{Description: "hesitates on word problems", Type: BlockHesitation, Severity: 3.5},
		},
		ParentSummary:   "p",
		TutorInsight:    "t",
		RecommendedNext: "r",
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := DecodeSessionResult(data)
	if err != nil {
		t.Fatalf("DecodeSessionResult: %v", err)
	}

	if got.EngagementScore != orig.EngagementScore {
		t.Errorf("engagement = %v, want %v", got.EngagementScore, orig.EngagementScore)
	}
	if len(got.MasteryUpdates) != 1 || got.MasteryUpdates[0] != orig.MasteryUpdates[0] {
		t.Errorf("mastery updates = %+v, want %+v", got.MasteryUpdates, orig.MasteryUpdates)
	}
	if len(got.MentalBlockSignals) != 1 || got.MentalBlockSignals[0] != orig.MentalBlockSignals[0] {
		t.Errorf("block signals = %+v, want %+v", got.MentalBlockSignals, orig.MentalBlockSignals)
	}
}
