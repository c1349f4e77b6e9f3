// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisevent type in the database.
	Label = "analysis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldProcessor holds the string denoting the processor field in the database.
	FieldProcessor = "processor"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldTranscriptChars holds the string denoting the transcript_chars field in the database.
	FieldTranscriptChars = "transcript_chars"
	// FieldEngagementScore holds the string denoting the engagement_score field in the database.
	FieldEngagementScore = "engagement_score"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// Table holds the table name of the analysisevent in the database.
	Table = "analysis_events"
)

// Columns holds all SQL columns for analysisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRunID,
	FieldKind,
	FieldProcessor,
	FieldStudentID,
	FieldTranscriptChars,
	FieldEngagementScore,
	FieldResult,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	RunIDValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// ProcessorValidator is a validator for the "processor" field. It is called by the builders before save.
	ProcessorValidator func(string) error
	// DefaultStudentID holds the default value on creation for the "student_id" field.
	DefaultStudentID string
	// DefaultTranscriptChars holds the default value on creation for the "transcript_chars" field.
	DefaultTranscriptChars int
	// DefaultEngagementScore holds the default value on creation for the "engagement_score" field.
	DefaultEngagementScore float64
	// DefaultResult holds the default value on creation for the "result" field.
	DefaultResult string
)

// OrderOption defines the ordering options for the AnalysisEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByProcessor orders the results by the processor field.
func ByProcessor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessor, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByTranscriptChars orders the results by the transcript_chars field.
func ByTranscriptChars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTranscriptChars, opts...).ToFunc()
}

// ByEngagementScore orders the results by the engagement_score field.
func ByEngagementScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngagementScore, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}
