package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func sessionishSchema() *Schema {
	return &Schema{
		Name:        "test-session",
		Description: "A minimal session-shaped object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topics_discussed": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"engagement_score": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 100,
				},
				"parent_summary": map[string]any{"type": "string"},
			},
			"required": []any{"topics_discussed", "engagement_score"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"topics_discussed":["Fractions"],"engagement_score":72.5,"parent_summary":"Good session."}`)
	if err := validateResponse(sessionishSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"topics_discussed":["Fractions"]}`)
	err := validateResponse(sessionishSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"topics_discussed":[],"engagement_score":140}`)
	if err := validateResponse(sessionishSchema(), raw); err == nil {
		t.Fatal("expected error for score above maximum")
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"topics_discussed":"Fractions","engagement_score":70}`)
	err := validateResponse(sessionishSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(sessionishSchema(), json.RawMessage(`{not json}`))
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidateResponse_NilSchemaAccepted(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
