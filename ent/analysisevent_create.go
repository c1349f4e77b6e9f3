// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorlens/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *AnalysisEventCreate) SetRunID(v string) *AnalysisEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AnalysisEventCreate) SetKind(v string) *AnalysisEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetProcessor sets the "processor" field.
func (_c *AnalysisEventCreate) SetProcessor(v string) *AnalysisEventCreate {
	_c.mutation.SetProcessor(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AnalysisEventCreate) SetStudentID(v string) *AnalysisEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableStudentID(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetStudentID(*v)
	}
	return _c
}

// SetTranscriptChars sets the "transcript_chars" field.
func (_c *AnalysisEventCreate) SetTranscriptChars(v int) *AnalysisEventCreate {
	_c.mutation.SetTranscriptChars(v)
	return _c
}

// SetNillableTranscriptChars sets the "transcript_chars" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTranscriptChars(v *int) *AnalysisEventCreate {
	if v != nil {
		_c.SetTranscriptChars(*v)
	}
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *AnalysisEventCreate) SetEngagementScore(v float64) *AnalysisEventCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableEngagementScore(v *float64) *AnalysisEventCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *AnalysisEventCreate) SetResult(v string) *AnalysisEventCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableResult(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		v := analysisevent.DefaultStudentID
		_c.mutation.SetStudentID(v)
	}
	if _, ok := _c.mutation.TranscriptChars(); !ok {
		v := analysisevent.DefaultTranscriptChars
		_c.mutation.SetTranscriptChars(v)
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		v := analysisevent.DefaultEngagementScore
		_c.mutation.SetEngagementScore(v)
	}
	if _, ok := _c.mutation.Result(); !ok {
		v := analysisevent.DefaultResult
		_c.mutation.SetResult(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AnalysisEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := analysisevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AnalysisEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := analysisevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Processor(); !ok {
		return &ValidationError{Name: "processor", err: errors.New(`ent: missing required field "AnalysisEvent.processor"`)}
	}
	if v, ok := _c.mutation.Processor(); ok {
		if err := analysisevent.ProcessorValidator(v); err != nil {
			return &ValidationError{Name: "processor", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.processor": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AnalysisEvent.student_id"`)}
	}
	if _, ok := _c.mutation.TranscriptChars(); !ok {
		return &ValidationError{Name: "transcript_chars", err: errors.New(`ent: missing required field "AnalysisEvent.transcript_chars"`)}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "AnalysisEvent.engagement_score"`)}
	}
	if _, ok := _c.mutation.Result(); !ok {
		return &ValidationError{Name: "result", err: errors.New(`ent: missing required field "AnalysisEvent.result"`)}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
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

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(analysisevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(analysisevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Processor(); ok {
		_spec.SetField(analysisevent.FieldProcessor, field.TypeString, value)
		_node.Processor = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(analysisevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.TranscriptChars(); ok {
		_spec.SetField(analysisevent.FieldTranscriptChars, field.TypeInt, value)
		_node.TranscriptChars = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(analysisevent.FieldEngagementScore, field.TypeFloat64, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(analysisevent.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
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
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
