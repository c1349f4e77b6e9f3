// Code generated by ent, DO NOT EDIT.

package mentalblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the mentalblock type in the database.
	Label = "mental_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldBlockType holds the string denoting the block_type field in the database.
	FieldBlockType = "block_type"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldFrequency holds the string denoting the frequency field in the database.
	FieldFrequency = "frequency"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the mentalblock in the database.
	Table = "mental_blocks"
)

// Columns holds all SQL columns for mentalblock fields.
var Columns = []string{
	FieldID,
	FieldDescription,
	FieldBlockType,
	FieldSeverity,
	FieldFrequency,
	FieldResolved,
	FieldStudentID,
	FieldEvidence,
	FieldFirstSeen,
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
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// BlockTypeValidator is a validator for the "block_type" field. It is called by the builders before save.
	BlockTypeValidator func(string) error
	// DefaultSeverity holds the default value on creation for the "severity" field.
	DefaultSeverity float64
	// DefaultFrequency holds the default value on creation for the "frequency" field.
	DefaultFrequency int
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
	// DefaultStudentID holds the default value on creation for the "student_id" field.
	DefaultStudentID string
	// DefaultEvidence holds the default value on creation for the "evidence" field.
	DefaultEvidence string
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// UpdateDefaultLastSeen holds the default value on update for the "last_seen" field.
	UpdateDefaultLastSeen func() time.Time
)

// OrderOption defines the ordering options for the MentalBlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByBlockType orders the results by the block_type field.
func ByBlockType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockType, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByFrequency orders the results by the frequency field.
func ByFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrequency, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByEvidence orders the results by the evidence field.
func ByEvidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvidence, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
