package analysis

import "github.com/abhisek/tutorlens/internal/llm"

// Structured-output schemas for the two extraction calls. These are
// sent to the provider for constrained generation and re-used by the
// response validator, so the wire contract lives in exactly one place.

// TrialSchema constrains trial/intake extraction output.
var TrialSchema = &llm.Schema{
	Name:        "trial_analysis",
	Description: "Structured analysis of a trial/intake tutoring session transcript",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"summary", "goals", "topics", "curriculum_recommendation"},
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"goals": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": 6,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"description", "measurable_outcome"},
					"properties": map[string]any{
						"description":            map[string]any{"type": "string"},
						"measurable_outcome":     map[string]any{"type": "string"},
						"evidence_quote":         map[string]any{"type": "string"},
						"suggested_intervention": map[string]any{"type": "string"},
						"deadline":               map[string]any{"type": []string{"string", "null"}},
					},
				},
			},
			"topics": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]any{
						"name":   map[string]any{"type": "string"},
						"parent": map[string]any{"type": []string{"string", "null"}},
					},
				},
			},
			"curriculum_recommendation": map[string]any{"type": "string"},
			"mental_blocks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"block_type", "severity", "evidence_from_transcript"},
					"properties": map[string]any{
						"block_type": map[string]any{
							"type": "string",
							"enum": []string{"avoidance", "emotional", "confusion", "confidence"},
						},
						"severity":                 map[string]any{"type": "integer", "minimum": 1, "maximum": 10},
						"evidence_from_transcript": map[string]any{"type": "string"},
						"cognitive_explanation":    map[string]any{"type": "string"},
						"impact_on_learning":       map[string]any{"type": "string"},
					},
				},
			},
			"lesson_recommendations": map[string]any{
				"type": "array",
				"items": lessonRecommendationSchema,
			},
		},
	},
}

// SessionSchema constrains session extraction output.
var SessionSchema = &llm.Schema{
	Name:        "session_analysis",
	Description: "Structured analysis of a regular tutoring session transcript",
	Definition: map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required": []string{
			"topics_discussed", "misconceptions", "strengths", "engagement_score",
			"mastery_updates", "mental_block_signals",
			"parent_summary", "tutor_insight", "recommended_next",
		},
		"properties": map[string]any{
			"topics_discussed": stringArraySchema,
			"misconceptions":   stringArraySchema,
			"strengths":        stringArraySchema,
			"engagement_score": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"mastery_updates": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"topic", "improvement", "errors", "independent_solves"},
					"properties": map[string]any{
						"topic":              map[string]any{"type": "string"},
						"improvement":        map[string]any{"type": "number", "minimum": 0, "maximum": 1},
						"errors":             map[string]any{"type": "integer", "minimum": 0},
						"independent_solves": map[string]any{"type": "integer", "minimum": 0},
					},
				},
			},
			"mental_block_signals": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"description", "type", "severity"},
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []string{"avoidance", "emotional", "confusion", "confidence", "hesitation"},
						},
						"severity":                 map[string]any{"type": "number", "minimum": 0, "maximum": 10},
						"evidence_from_transcript": map[string]any{"type": "string"},
						"cognitive_explanation":    map[string]any{"type": "string"},
						"impact_on_learning":       map[string]any{"type": "string"},
					},
				},
			},
			"lesson_recommendations": map[string]any{
				"type": "array",
				"items": lessonRecommendationSchema,
			},
			"parent_summary":   map[string]any{"type": "string"},
			"tutor_insight":    map[string]any{"type": "string"},
			"recommended_next": map[string]any{"type": "string"},
		},
	},
}

var stringArraySchema = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var lessonRecommendationSchema = map[string]any{
	"type":     "object",
	"required": []string{"intervention_type", "specific_strategy", "why_this_will_work"},
	"properties": map[string]any{
		"intervention_type": map[string]any{
			"type": "string",
			"enum": []string{"scaffolding", "drill", "conceptual_rebuild", "confidence_building", "metacognitive"},
		},
		"specific_strategy":  map[string]any{"type": "string"},
		"why_this_will_work": map[string]any{"type": "string"},
	},
}
