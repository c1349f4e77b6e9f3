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
	"github.com/abhisek/tutorlens/ent/predicate"
	"github.com/abhisek/tutorlens/ent/topicstate"
)

// TopicStateUpdate is the builder for updating TopicState entities.
type TopicStateUpdate struct {
	config
	hooks    []Hook
	mutation *TopicStateMutation
}

// Where appends a list predicates to the TopicStateUpdate builder.
func (_u *TopicStateUpdate) Where(ps ...predicate.TopicState) *TopicStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TopicStateUpdate) SetName(v string) *TopicStateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicStateUpdate) SetNillableName(v *string) *TopicStateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetParent sets the "parent" field.
func (_u *TopicStateUpdate) SetParent(v string) *TopicStateUpdate {
	_u.mutation.SetParent(v)
	return _u
}

// SetNillableParent sets the "parent" field if the given value is not nil.
func (_u *TopicStateUpdate) SetNillableParent(v *string) *TopicStateUpdate {
	if v != nil {
		_u.SetParent(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *TopicStateUpdate) SetMastery(v float64) *TopicStateUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *TopicStateUpdate) SetNillableMastery(v *float64) *TopicStateUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *TopicStateUpdate) AddMastery(v float64) *TopicStateUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TopicStateUpdate) SetConfidence(v float64) *TopicStateUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TopicStateUpdate) SetNillableConfidence(v *float64) *TopicStateUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TopicStateUpdate) AddConfidence(v float64) *TopicStateUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSessions sets the "sessions" field.
func (_u *TopicStateUpdate) SetSessions(v int) *TopicStateUpdate {
	_u.mutation.ResetSessions()
	_u.mutation.SetSessions(v)
	return _u
}

// SetNillableSessions sets the "sessions" field if the given value is not nil.
func (_u *TopicStateUpdate) SetNillableSessions(v *int) *TopicStateUpdate {
	if v != nil {
		_u.SetSessions(*v)
	}
	return _u
}

// AddSessions adds value to the "sessions" field.
func (_u *TopicStateUpdate) AddSessions(v int) *TopicStateUpdate {
	_u.mutation.AddSessions(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *TopicStateUpdate) SetLastSeen(v time.Time) *TopicStateUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the TopicStateMutation object of the builder.
func (_u *TopicStateUpdate) Mutation() *TopicStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicStateUpdate) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := topicstate.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicStateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := topicstate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TopicState.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicstate.Table, topicstate.Columns, sqlgraph.NewFieldSpec(topicstate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topicstate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parent(); ok {
		_spec.SetField(topicstate.FieldParent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(topicstate.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(topicstate.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(topicstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(topicstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Sessions(); ok {
		_spec.SetField(topicstate.FieldSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessions(); ok {
		_spec.AddField(topicstate.FieldSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(topicstate.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicStateUpdateOne is the builder for updating a single TopicState entity.
type TopicStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicStateMutation
}

// SetName sets the "name" field.
func (_u *TopicStateUpdateOne) SetName(v string) *TopicStateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TopicStateUpdateOne) SetNillableName(v *string) *TopicStateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetParent sets the "parent" field.
func (_u *TopicStateUpdateOne) SetParent(v string) *TopicStateUpdateOne {
	_u.mutation.SetParent(v)
	return _u
}

// SetNillableParent sets the "parent" field if the given value is not nil.
func (_u *TopicStateUpdateOne) SetNillableParent(v *string) *TopicStateUpdateOne {
	if v != nil {
		_u.SetParent(*v)
	}
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *TopicStateUpdateOne) SetMastery(v float64) *TopicStateUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *TopicStateUpdateOne) SetNillableMastery(v *float64) *TopicStateUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *TopicStateUpdateOne) AddMastery(v float64) *TopicStateUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *TopicStateUpdateOne) SetConfidence(v float64) *TopicStateUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *TopicStateUpdateOne) SetNillableConfidence(v *float64) *TopicStateUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *TopicStateUpdateOne) AddConfidence(v float64) *TopicStateUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSessions sets the "sessions" field.
func (_u *TopicStateUpdateOne) SetSessions(v int) *TopicStateUpdateOne {
	_u.mutation.ResetSessions()
	_u.mutation.SetSessions(v)
	return _u
}

// SetNillableSessions sets the "sessions" field if the given value is not nil.
func (_u *TopicStateUpdateOne) SetNillableSessions(v *int) *TopicStateUpdateOne {
	if v != nil {
		_u.SetSessions(*v)
	}
	return _u
}

// AddSessions adds value to the "sessions" field.
func (_u *TopicStateUpdateOne) AddSessions(v int) *TopicStateUpdateOne {
	_u.mutation.AddSessions(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *TopicStateUpdateOne) SetLastSeen(v time.Time) *TopicStateUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the TopicStateMutation object of the builder.
func (_u *TopicStateUpdateOne) Mutation() *TopicStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicStateUpdate builder.
func (_u *TopicStateUpdateOne) Where(ps ...predicate.TopicState) *TopicStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicStateUpdateOne) Select(field string, fields ...string) *TopicStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicState entity.
func (_u *TopicStateUpdateOne) Save(ctx context.Context) (*TopicState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicStateUpdateOne) SaveX(ctx context.Context) *TopicState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TopicStateUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := topicstate.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicStateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := topicstate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TopicState.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicStateUpdateOne) sqlSave(ctx context.Context) (_node *TopicState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicstate.Table, topicstate.Columns, sqlgraph.NewFieldSpec(topicstate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicstate.FieldID)
		for _, f := range fields {
			if !topicstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicstate.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(topicstate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parent(); ok {
		_spec.SetField(topicstate.FieldParent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(topicstate.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(topicstate.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(topicstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(topicstate.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Sessions(); ok {
		_spec.SetField(topicstate.FieldSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessions(); ok {
		_spec.AddField(topicstate.FieldSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(topicstate.FieldLastSeen, field.TypeTime, value)
	}
	_node = &TopicState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
