// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorlens/ent/mentalblock"
)

// MentalBlock is the model entity for the MentalBlock schema.
type MentalBlock struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Human-readable description of the block
	Description string `json:"description,omitempty"`
	// Classification: avoidance, emotional, confusion, confidence, hesitation
	BlockType string `json:"block_type,omitempty"`
	// Current severity in [0,10]
	Severity float64 `json:"severity,omitempty"`
	// Number of sessions this block recurred in
	Frequency int `json:"frequency,omitempty"`
	// Set when the block no longer recurs
	Resolved bool `json:"resolved,omitempty"`
	// External student identifier, if provided
	StudentID string `json:"student_id,omitempty"`
	// Most recent transcript evidence
	Evidence string `json:"evidence,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MentalBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mentalblock.FieldResolved:
			values[i] = new(sql.NullBool)
		case mentalblock.FieldSeverity:
			values[i] = new(sql.NullFloat64)
		case mentalblock.FieldID, mentalblock.FieldFrequency:
			values[i] = new(sql.NullInt64)
		case mentalblock.FieldDescription, mentalblock.FieldBlockType, mentalblock.FieldStudentID, mentalblock.FieldEvidence:
			values[i] = new(sql.NullString)
		case mentalblock.FieldFirstSeen, mentalblock.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MentalBlock fields.
func (_m *MentalBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mentalblock.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case mentalblock.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case mentalblock.FieldBlockType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field block_type", values[i])
			} else if value.Valid {
				_m.BlockType = value.String
			}
		case mentalblock.FieldSeverity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.Float64
			}
		case mentalblock.FieldFrequency:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field frequency", values[i])
			} else if value.Valid {
				_m.Frequency = int(value.Int64)
			}
		case mentalblock.FieldResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field resolved", values[i])
			} else if value.Valid {
				_m.Resolved = value.Bool
			}
		case mentalblock.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case mentalblock.FieldEvidence:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evidence", values[i])
			} else if value.Valid {
				_m.Evidence = value.String
			}
		case mentalblock.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case mentalblock.FieldLastSeen:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MentalBlock.
// This includes values selected through modifiers, order, etc.
func (_m *MentalBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MentalBlock.
// Note that you need to call MentalBlock.Unwrap() before calling this method if this MentalBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MentalBlock) Update() *MentalBlockUpdateOne {
	return NewMentalBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MentalBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MentalBlock) Unwrap() *MentalBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MentalBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MentalBlock) String() string {
	var builder strings.Builder
	builder.WriteString("MentalBlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("block_type=")
	builder.WriteString(_m.BlockType)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("frequency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Frequency))
	builder.WriteString(", ")
	builder.WriteString("resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolved))
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("evidence=")
	builder.WriteString(_m.Evidence)
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MentalBlocks is a parsable slice of MentalBlock.
type MentalBlocks []*MentalBlock
