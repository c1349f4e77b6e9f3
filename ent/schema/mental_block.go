package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MentalBlock is the persistent aggregate of a recurring learning
// block. Per-session signals increment frequency and re-score severity
// until the block is marked resolved.
type MentalBlock struct {
	ent.Schema
}

func (MentalBlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("description").
			NotEmpty().
			Comment("Human-readable description of the block"),
		field.String("block_type").
			NotEmpty().
			Comment("Classification: avoidance, emotional, confusion, confidence, hesitation"),
		field.Float("severity").
			Default(1).
			Comment("Current severity in [0,10]"),
		field.Int("frequency").
			Default(1).
			Comment("Number of sessions this block recurred in"),
		field.Bool("resolved").
			Default(false).
			Comment("Set when the block no longer recurs"),
		field.String("student_id").
			Default("").
			Comment("External student identifier, if provided"),
		field.Text("evidence").
			Default("").
			Comment("Most recent transcript evidence"),
		field.Time("first_seen").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MentalBlock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resolved"),
		index.Fields("block_type"),
		index.Fields("student_id"),
	}
}
