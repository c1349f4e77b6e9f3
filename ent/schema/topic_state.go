package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicState is the persistent longitudinal mastery record for one
// math topic. Session analyses fold their transient update vectors
// into this state via the scoring formulas.
type TopicState struct {
	ent.Schema
}

func (TopicState) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique().
			Comment("Canonical topic name, e.g. 'Linear Equations'"),
		field.String("parent").
			Default("").
			Comment("Parent topic name, empty for root topics"),
		field.Float("mastery").
			Default(50).
			Comment("Mastery score in [0,100]"),
		field.Float("confidence").
			Default(50).
			Comment("Confidence score in [0,100]"),
		field.Int("sessions").
			Default(0).
			Comment("Number of sessions that touched this topic"),
		field.Time("last_seen").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Most recent session that touched this topic"),
	}
}

func (TopicState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("parent"),
	}
}
