// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorlens/ent/analysisevent"
)

// AnalysisEvent is the model entity for the AnalysisEvent schema.
type AnalysisEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID identifying this analysis run
	RunID string `json:"run_id,omitempty"`
	// Analysis kind: trial or session
	Kind string `json:"kind,omitempty"`
	// Implementation that produced the result: llm, rule-based
	Processor string `json:"processor,omitempty"`
	// External student identifier, if provided
	StudentID string `json:"student_id,omitempty"`
	// Length of the analyzed transcript after truncation
	TranscriptChars int `json:"transcript_chars,omitempty"`
	// Session engagement score in [0,100]; 0 for trials
	EngagementScore float64 `json:"engagement_score,omitempty"`
	// Full JSON-encoded analysis result
	Result       string `json:"result,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldEngagementScore:
			values[i] = new(sql.NullFloat64)
		case analysisevent.FieldID, analysisevent.FieldSequence, analysisevent.FieldTranscriptChars:
			values[i] = new(sql.NullInt64)
		case analysisevent.FieldRunID, analysisevent.FieldKind, analysisevent.FieldProcessor, analysisevent.FieldStudentID, analysisevent.FieldResult:
			values[i] = new(sql.NullString)
		case analysisevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisEvent fields.
func (_m *AnalysisEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case analysisevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case analysisevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case analysisevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case analysisevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case analysisevent.FieldProcessor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processor", values[i])
			} else if value.Valid {
				_m.Processor = value.String
			}
		case analysisevent.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case analysisevent.FieldTranscriptChars:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field transcript_chars", values[i])
			} else if value.Valid {
				_m.TranscriptChars = int(value.Int64)
			}
		case analysisevent.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = value.Float64
			}
		case analysisevent.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnalysisEvent.
// Note that you need to call AnalysisEvent.Unwrap() before calling this method if this AnalysisEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisEvent) Update() *AnalysisEventUpdateOne {
	return NewAnalysisEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisEvent) Unwrap() *AnalysisEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("processor=")
	builder.WriteString(_m.Processor)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("transcript_chars=")
	builder.WriteString(fmt.Sprintf("%v", _m.TranscriptChars))
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(_m.Result)
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisEvents is a parsable slice of AnalysisEvent.
type AnalysisEvents []*AnalysisEvent
