package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records one completed transcript analysis run, with the
// full structured result for later review.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Unique().
			Comment("UUID identifying this analysis run"),
		field.String("kind").
			NotEmpty().
			Comment("Analysis kind: trial or session"),
		field.String("processor").
			NotEmpty().
			Comment("Implementation that produced the result: llm, rule-based"),
		field.String("student_id").
			Default("").
			Comment("External student identifier, if provided"),
		field.Int("transcript_chars").
			Default(0).
			Comment("Length of the analyzed transcript after truncation"),
		field.Float("engagement_score").
			Default(0).
			Comment("Session engagement score in [0,100]; 0 for trials"),
		field.Text("result").
			Default("").
			Comment("Full JSON-encoded analysis result"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("student_id"),
	}
}
