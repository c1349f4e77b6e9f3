// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorlens/ent/topicstate"
)

// TopicState is the model entity for the TopicState schema.
type TopicState struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Canonical topic name, e.g. 'Linear Equations'
	Name string `json:"name,omitempty"`
	// Parent topic name, empty for root topics
	Parent string `json:"parent,omitempty"`
	// Mastery score in [0,100]
	Mastery float64 `json:"mastery,omitempty"`
	// Confidence score in [0,100]
	Confidence float64 `json:"confidence,omitempty"`
	// Number of sessions that touched this topic
	Sessions int `json:"sessions,omitempty"`
	// Most recent session that touched this topic
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicstate.FieldMastery, topicstate.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case topicstate.FieldID, topicstate.FieldSessions:
			values[i] = new(sql.NullInt64)
		case topicstate.FieldName, topicstate.FieldParent:
			values[i] = new(sql.NullString)
		case topicstate.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicState fields.
func (_m *TopicState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicstate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicstate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case topicstate.FieldParent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent", values[i])
			} else if value.Valid {
				_m.Parent = value.String
			}
		case topicstate.FieldMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.Float64
			}
		case topicstate.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case topicstate.FieldSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions", values[i])
			} else if value.Valid {
				_m.Sessions = int(value.Int64)
			}
		case topicstate.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicState.
// This includes values selected through modifiers, order, etc.
func (_m *TopicState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TopicState.
// Note that you need to call TopicState.Unwrap() before calling this method if this TopicState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicState) Update() *TopicStateUpdateOne {
	return NewTopicStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicState) Unwrap() *TopicState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicState) String() string {
	var builder strings.Builder
	builder.WriteString("TopicState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("parent=")
	builder.WriteString(_m.Parent)
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sessions))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicStates is a parsable slice of TopicState.
type TopicStates []*TopicState
