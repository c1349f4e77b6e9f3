// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorlens/ent/topicstate"
)

// TopicStateCreate is the builder for creating a TopicState entity.
type TopicStateCreate struct {
	config
	mutation *TopicStateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *TopicStateCreate) SetName(v string) *TopicStateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetParent sets the "parent" field.
func (_c *TopicStateCreate) SetParent(v string) *TopicStateCreate {
	_c.mutation.SetParent(v)
	return _c
}

// SetNillableParent sets the "parent" field if the given value is not nil.
func (_c *TopicStateCreate) SetNillableParent(v *string) *TopicStateCreate {
	if v != nil {
		_c.SetParent(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *TopicStateCreate) SetMastery(v float64) *TopicStateCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *TopicStateCreate) SetNillableMastery(v *float64) *TopicStateCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *TopicStateCreate) SetConfidence(v float64) *TopicStateCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *TopicStateCreate) SetNillableConfidence(v *float64) *TopicStateCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSessions sets the "sessions" field.
func (_c *TopicStateCreate) SetSessions(v int) *TopicStateCreate {
	_c.mutation.SetSessions(v)
	return _c
}

// SetNillableSessions sets the "sessions" field if the given value is not nil.
func (_c *TopicStateCreate) SetNillableSessions(v *int) *TopicStateCreate {
	if v != nil {
		_c.SetSessions(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *TopicStateCreate) SetLastSeen(v time.Time) *TopicStateCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *TopicStateCreate) SetNillableLastSeen(v *time.Time) *TopicStateCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the TopicStateMutation object of the builder.
func (_c *TopicStateCreate) Mutation() *TopicStateMutation {
	return _c.mutation
}

// Save creates the TopicState in the database.
func (_c *TopicStateCreate) Save(ctx context.Context) (*TopicState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicStateCreate) SaveX(ctx context.Context) *TopicState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicStateCreate) defaults() {
	if _, ok := _c.mutation.Parent(); !ok {
		v := topicstate.DefaultParent
		_c.mutation.SetParent(v)
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		v := topicstate.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := topicstate.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Sessions(); !ok {
		v := topicstate.DefaultSessions
		_c.mutation.SetSessions(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := topicstate.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicStateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TopicState.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := topicstate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TopicState.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Parent(); !ok {
		return &ValidationError{Name: "parent", err: errors.New(`ent: missing required field "TopicState.parent"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "TopicState.mastery"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "TopicState.confidence"`)}
	}
	if _, ok := _c.mutation.Sessions(); !ok {
		return &ValidationError{Name: "sessions", err: errors.New(`ent: missing required field "TopicState.sessions"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "TopicState.last_seen"`)}
	}
	return nil
}

func (_c *TopicStateCreate) sqlSave(ctx context.Context) (*TopicState, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TopicStateCreate) createSpec() (*TopicState, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicstate.Table, sqlgraph.NewFieldSpec(topicstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(topicstate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Parent(); ok {
		_spec.SetField(topicstate.FieldParent, field.TypeString, value)
		_node.Parent = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(topicstate.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(topicstate.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Sessions(); ok {
		_spec.SetField(topicstate.FieldSessions, field.TypeInt, value)
		_node.Sessions = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(topicstate.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// TopicStateCreateBulk is the builder for creating many TopicState entities in bulk.
type TopicStateCreateBulk struct {
	config
	err      error
	builders []*TopicStateCreate
}

// Save creates the TopicState entities in the database.
func (_c *TopicStateCreateBulk) Save(ctx context.Context) ([]*TopicState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicStateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TopicStateCreateBulk) SaveX(ctx context.Context) []*TopicState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
