// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorlens/ent/mentalblock"
	"github.com/abhisek/tutorlens/ent/predicate"
)

// MentalBlockUpdate is the builder for updating MentalBlock entities.
type MentalBlockUpdate struct {
	config
	hooks    []Hook
	mutation *MentalBlockMutation
}

// Where appends a list predicates to the MentalBlockUpdate builder.
func (_u *MentalBlockUpdate) Where(ps ...predicate.MentalBlock) *MentalBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *MentalBlockUpdate) SetDescription(v string) *MentalBlockUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableDescription(v *string) *MentalBlockUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetBlockType sets the "block_type" field.
func (_u *MentalBlockUpdate) SetBlockType(v string) *MentalBlockUpdate {
	_u.mutation.SetBlockType(v)
	return _u
}

// SetNillableBlockType sets the "block_type" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableBlockType(v *string) *MentalBlockUpdate {
	if v != nil {
		_u.SetBlockType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *MentalBlockUpdate) SetSeverity(v float64) *MentalBlockUpdate {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableSeverity(v *float64) *MentalBlockUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *MentalBlockUpdate) AddSeverity(v float64) *MentalBlockUpdate {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *MentalBlockUpdate) SetFrequency(v int) *MentalBlockUpdate {
	_u.mutation.ResetFrequency()
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableFrequency(v *int) *MentalBlockUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// AddFrequency adds value to the "frequency" field.
func (_u *MentalBlockUpdate) AddFrequency(v int) *MentalBlockUpdate {
	_u.mutation.AddFrequency(v)
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *MentalBlockUpdate) SetResolved(v bool) *MentalBlockUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableResolved(v *bool) *MentalBlockUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MentalBlockUpdate) SetStudentID(v string) *MentalBlockUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableStudentID(v *string) *MentalBlockUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *MentalBlockUpdate) SetEvidence(v string) *MentalBlockUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *MentalBlockUpdate) SetNillableEvidence(v *string) *MentalBlockUpdate {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MentalBlockUpdate) SetLastSeen(v time.Time) *MentalBlockUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the MentalBlockMutation object of the builder.
func (_u *MentalBlockUpdate) Mutation() *MentalBlockMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MentalBlockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MentalBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentalBlockUpdate) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := mentalblock.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalBlockUpdate) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := mentalblock.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlockType(); ok {
		if err := mentalblock.BlockTypeValidator(v); err != nil {
			return &ValidationError{Name: "block_type", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.block_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalblock.Table, mentalblock.Columns, sqlgraph.NewFieldSpec(mentalblock.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentalblock.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlockType(); ok {
		_spec.SetField(mentalblock.FieldBlockType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(mentalblock.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(mentalblock.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(mentalblock.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequency(); ok {
		_spec.AddField(mentalblock.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(mentalblock.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(mentalblock.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(mentalblock.FieldEvidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(mentalblock.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MentalBlockUpdateOne is the builder for updating a single MentalBlock entity.
type MentalBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MentalBlockMutation
}

// SetDescription sets the "description" field.
func (_u *MentalBlockUpdateOne) SetDescription(v string) *MentalBlockUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableDescription(v *string) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetBlockType sets the "block_type" field.
func (_u *MentalBlockUpdateOne) SetBlockType(v string) *MentalBlockUpdateOne {
	_u.mutation.SetBlockType(v)
	return _u
}

// SetNillableBlockType sets the "block_type" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableBlockType(v *string) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetBlockType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *MentalBlockUpdateOne) SetSeverity(v float64) *MentalBlockUpdateOne {
	_u.mutation.ResetSeverity()
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableSeverity(v *float64) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// AddSeverity adds value to the "severity" field.
func (_u *MentalBlockUpdateOne) AddSeverity(v float64) *MentalBlockUpdateOne {
	_u.mutation.AddSeverity(v)
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *MentalBlockUpdateOne) SetFrequency(v int) *MentalBlockUpdateOne {
	_u.mutation.ResetFrequency()
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableFrequency(v *int) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// AddFrequency adds value to the "frequency" field.
func (_u *MentalBlockUpdateOne) AddFrequency(v int) *MentalBlockUpdateOne {
	_u.mutation.AddFrequency(v)
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *MentalBlockUpdateOne) SetResolved(v bool) *MentalBlockUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableResolved(v *bool) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *MentalBlockUpdateOne) SetStudentID(v string) *MentalBlockUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableStudentID(v *string) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *MentalBlockUpdateOne) SetEvidence(v string) *MentalBlockUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *MentalBlockUpdateOne) SetNillableEvidence(v *string) *MentalBlockUpdateOne {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MentalBlockUpdateOne) SetLastSeen(v time.Time) *MentalBlockUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the MentalBlockMutation object of the builder.
func (_u *MentalBlockUpdateOne) Mutation() *MentalBlockMutation {
	return _u.mutation
}

// Where appends a list predicates to the MentalBlockUpdate builder.
func (_u *MentalBlockUpdateOne) Where(ps ...predicate.MentalBlock) *MentalBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MentalBlockUpdateOne) Select(field string, fields ...string) *MentalBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MentalBlock entity.
func (_u *MentalBlockUpdateOne) Save(ctx context.Context) (*MentalBlock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MentalBlockUpdateOne) SaveX(ctx context.Context) *MentalBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MentalBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MentalBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MentalBlockUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := mentalblock.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MentalBlockUpdateOne) check() error {
	if v, ok := _u.mutation.Description(); ok {
		if err := mentalblock.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.description": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlockType(); ok {
		if err := mentalblock.BlockTypeValidator(v); err != nil {
			return &ValidationError{Name: "block_type", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.block_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MentalBlockUpdateOne) sqlSave(ctx context.Context) (_node *MentalBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mentalblock.Table, mentalblock.Columns, sqlgraph.NewFieldSpec(mentalblock.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MentalBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mentalblock.FieldID)
		for _, f := range fields {
			if !mentalblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mentalblock.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(mentalblock.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlockType(); ok {
		_spec.SetField(mentalblock.FieldBlockType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(mentalblock.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverity(); ok {
		_spec.AddField(mentalblock.FieldSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(mentalblock.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFrequency(); ok {
		_spec.AddField(mentalblock.FieldFrequency, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(mentalblock.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(mentalblock.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(mentalblock.FieldEvidence, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(mentalblock.FieldLastSeen, field.TypeTime, value)
	}
	_node = &MentalBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mentalblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
