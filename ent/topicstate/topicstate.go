// Code generated by ent, DO NOT EDIT.

package topicstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicstate type in the database.
	Label = "topic_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldParent holds the string denoting the parent field in the database.
	FieldParent = "parent"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSessions holds the string denoting the sessions field in the database.
	FieldSessions = "sessions"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the topicstate in the database.
	Table = "topic_states"
)

// Columns holds all SQL columns for topicstate fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldParent,
	FieldMastery,
	FieldConfidence,
	FieldSessions,
	FieldLastSeen,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultParent holds the default value on creation for the "parent" field.
	DefaultParent string
	// DefaultMastery holds the default value on creation for the "mastery" field.
	DefaultMastery float64
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float64
	// DefaultSessions holds the default value on creation for the "sessions" field.
	DefaultSessions int
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// UpdateDefaultLastSeen holds the default value on update for the "last_seen" field.
	UpdateDefaultLastSeen func() time.Time
)

// OrderOption defines the ordering options for the TopicState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByParent orders the results by the parent field.
func ByParent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParent, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySessions orders the results by the sessions field.
func BySessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessions, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
