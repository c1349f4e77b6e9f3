// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisEvent is the predicate function for analysisevent builders.
type AnalysisEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MentalBlock is the predicate function for mentalblock builders.
type MentalBlock func(*sql.Selector)

// TopicState is the predicate function for topicstate builders.
type TopicState func(*sql.Selector)
