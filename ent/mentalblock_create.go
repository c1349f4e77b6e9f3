// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorlens/ent/mentalblock"
)

// MentalBlockCreate is the builder for creating a MentalBlock entity.
type MentalBlockCreate struct {
	config
	mutation *MentalBlockMutation
	hooks    []Hook
}

// SetDescription sets the "description" field.
func (_c *MentalBlockCreate) SetDescription(v string) *MentalBlockCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetBlockType sets the "block_type" field.
func (_c *MentalBlockCreate) SetBlockType(v string) *MentalBlockCreate {
	_c.mutation.SetBlockType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *MentalBlockCreate) SetSeverity(v float64) *MentalBlockCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableSeverity(v *float64) *MentalBlockCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *MentalBlockCreate) SetFrequency(v int) *MentalBlockCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableFrequency(v *int) *MentalBlockCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *MentalBlockCreate) SetResolved(v bool) *MentalBlockCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableResolved(v *bool) *MentalBlockCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *MentalBlockCreate) SetStudentID(v string) *MentalBlockCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableStudentID(v *string) *MentalBlockCreate {
	if v != nil {
		_c.SetStudentID(*v)
	}
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *MentalBlockCreate) SetEvidence(v string) *MentalBlockCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableEvidence(v *string) *MentalBlockCreate {
	if v != nil {
		_c.SetEvidence(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *MentalBlockCreate) SetFirstSeen(v time.Time) *MentalBlockCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableFirstSeen(v *time.Time) *MentalBlockCreate {
	if v != nil {
		_c.SetFirstSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *MentalBlockCreate) SetLastSeen(v time.Time) *MentalBlockCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *MentalBlockCreate) SetNillableLastSeen(v *time.Time) *MentalBlockCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the MentalBlockMutation object of the builder.
func (_c *MentalBlockCreate) Mutation() *MentalBlockMutation {
	return _c.mutation
}

// Save creates the MentalBlock in the database.
func (_c *MentalBlockCreate) Save(ctx context.Context) (*MentalBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MentalBlockCreate) SaveX(ctx context.Context) *MentalBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MentalBlockCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := mentalblock.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		v := mentalblock.DefaultFrequency
		_c.mutation.SetFrequency(v)
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		v := mentalblock.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		v := mentalblock.DefaultStudentID
		_c.mutation.SetStudentID(v)
	}
	if _, ok := _c.mutation.Evidence(); !ok {
		v := mentalblock.DefaultEvidence
		_c.mutation.SetEvidence(v)
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		v := mentalblock.DefaultFirstSeen()
		_c.mutation.SetFirstSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := mentalblock.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MentalBlockCreate) check() error {
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "MentalBlock.description"`)}
	}
	if v, ok := _c.mutation.Description(); ok {
		if err := mentalblock.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.description": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlockType(); !ok {
		return &ValidationError{Name: "block_type", err: errors.New(`ent: missing required field "MentalBlock.block_type"`)}
	}
	if v, ok := _c.mutation.BlockType(); ok {
		if err := mentalblock.BlockTypeValidator(v); err != nil {
			return &ValidationError{Name: "block_type", err: fmt.Errorf(`ent: validator failed for field "MentalBlock.block_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "MentalBlock.severity"`)}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`ent: missing required field "MentalBlock.frequency"`)}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "MentalBlock.resolved"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "MentalBlock.student_id"`)}
	}
	if _, ok := _c.mutation.Evidence(); !ok {
		return &ValidationError{Name: "evidence", err: errors.New(`ent: missing required field "MentalBlock.evidence"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "MentalBlock.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "MentalBlock.last_seen"`)}
	}
	return nil
}

func (_c *MentalBlockCreate) sqlSave(ctx context.Context) (*MentalBlock, error) {
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

func (_c *MentalBlockCreate) createSpec() (*MentalBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &MentalBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mentalblock.Table, sqlgraph.NewFieldSpec(mentalblock.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(mentalblock.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.BlockType(); ok {
		_spec.SetField(mentalblock.FieldBlockType, field.TypeString, value)
		_node.BlockType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(mentalblock.FieldSeverity, field.TypeFloat64, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(mentalblock.FieldFrequency, field.TypeInt, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(mentalblock.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(mentalblock.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(mentalblock.FieldEvidence, field.TypeString, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(mentalblock.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(mentalblock.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// MentalBlockCreateBulk is the builder for creating many MentalBlock entities in bulk.
type MentalBlockCreateBulk struct {
	config
	err      error
	builders []*MentalBlockCreate
}

// Save creates the MentalBlock entities in the database.
func (_c *MentalBlockCreateBulk) Save(ctx context.Context) ([]*MentalBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MentalBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MentalBlockMutation)
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
func (_c *MentalBlockCreateBulk) SaveX(ctx context.Context) []*MentalBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MentalBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MentalBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
