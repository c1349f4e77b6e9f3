// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "processor", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeString, Default: ""},
		{Name: "transcript_chars", Type: field.TypeInt, Default: 0},
		{Name: "engagement_score", Type: field.TypeFloat64, Default: 0},
		{Name: "result", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
			{
				Name:    "analysisevent_kind",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[4]},
			},
			{
				Name:    "analysisevent_student_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MentalBlocksColumns holds the columns for the "mental_blocks" table.
	MentalBlocksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "description", Type: field.TypeString},
		{Name: "block_type", Type: field.TypeString},
		{Name: "severity", Type: field.TypeFloat64, Default: 1},
		{Name: "frequency", Type: field.TypeInt, Default: 1},
		{Name: "resolved", Type: field.TypeBool, Default: false},
		{Name: "student_id", Type: field.TypeString, Default: ""},
		{Name: "evidence", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "first_seen", Type: field.TypeTime},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// MentalBlocksTable holds the schema information for the "mental_blocks" table.
	MentalBlocksTable = &schema.Table{
		Name:       "mental_blocks",
		Columns:    MentalBlocksColumns,
		PrimaryKey: []*schema.Column{MentalBlocksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mentalblock_resolved",
				Unique:  false,
				Columns: []*schema.Column{MentalBlocksColumns[5]},
			},
			{
				Name:    "mentalblock_block_type",
				Unique:  false,
				Columns: []*schema.Column{MentalBlocksColumns[2]},
			},
			{
				Name:    "mentalblock_student_id",
				Unique:  false,
				Columns: []*schema.Column{MentalBlocksColumns[6]},
			},
		},
	}
	// TopicStatesColumns holds the columns for the "topic_states" table.
	TopicStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "parent", Type: field.TypeString, Default: ""},
		{Name: "mastery", Type: field.TypeFloat64, Default: 50},
		{Name: "confidence", Type: field.TypeFloat64, Default: 50},
		{Name: "sessions", Type: field.TypeInt, Default: 0},
		{Name: "last_seen", Type: field.TypeTime},
	}
	// TopicStatesTable holds the schema information for the "topic_states" table.
	TopicStatesTable = &schema.Table{
		Name:       "topic_states",
		Columns:    TopicStatesColumns,
		PrimaryKey: []*schema.Column{TopicStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicstate_parent",
				Unique:  false,
				Columns: []*schema.Column{TopicStatesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
		LlmRequestEventsTable,
		MentalBlocksTable,
		TopicStatesTable,
	}
)

func init() {
}
