// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorlens/ent/analysisevent"
	"github.com/abhisek/tutorlens/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AnalysisEventUpdate) SetRunID(v string) *AnalysisEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableRunID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnalysisEventUpdate) SetKind(v string) *AnalysisEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableKind(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetProcessor sets the "processor" field.
func (_u *AnalysisEventUpdate) SetProcessor(v string) *AnalysisEventUpdate {
	_u.mutation.SetProcessor(v)
	return _u
}

// SetNillableProcessor sets the "processor" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableProcessor(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetProcessor(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnalysisEventUpdate) SetStudentID(v string) *AnalysisEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableStudentID(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTranscriptChars sets the "transcript_chars" field.
func (_u *AnalysisEventUpdate) SetTranscriptChars(v int) *AnalysisEventUpdate {
	_u.mutation.ResetTranscriptChars()
	_u.mutation.SetTranscriptChars(v)
	return _u
}

// SetNillableTranscriptChars sets the "transcript_chars" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTranscriptChars(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTranscriptChars(*v)
	}
	return _u
}

// AddTranscriptChars adds value to the "transcript_chars" field.
func (_u *AnalysisEventUpdate) AddTranscriptChars(v int) *AnalysisEventUpdate {
	_u.mutation.AddTranscriptChars(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *AnalysisEventUpdate) SetEngagementScore(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableEngagementScore(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *AnalysisEventUpdate) AddEngagementScore(v float64) *AnalysisEventUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *AnalysisEventUpdate) SetResult(v string) *AnalysisEventUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableResult(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := analysisevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := analysisevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Processor(); ok {
		if err := analysisevent.ProcessorValidator(v); err != nil {
			return &ValidationError{Name: "processor", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.processor": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(analysisevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(analysisevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Processor(); ok {
		_spec.SetField(analysisevent.FieldProcessor, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(analysisevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TranscriptChars(); ok {
		_spec.SetField(analysisevent.FieldTranscriptChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranscriptChars(); ok {
		_spec.AddField(analysisevent.FieldTranscriptChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(analysisevent.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(analysisevent.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(analysisevent.FieldResult, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *AnalysisEventUpdateOne) SetRunID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableRunID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *AnalysisEventUpdateOne) SetKind(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableKind(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetProcessor sets the "processor" field.
func (_u *AnalysisEventUpdateOne) SetProcessor(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetProcessor(v)
	return _u
}

// SetNillableProcessor sets the "processor" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableProcessor(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetProcessor(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnalysisEventUpdateOne) SetStudentID(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableStudentID(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTranscriptChars sets the "transcript_chars" field.
func (_u *AnalysisEventUpdateOne) SetTranscriptChars(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetTranscriptChars()
	_u.mutation.SetTranscriptChars(v)
	return _u
}

// SetNillableTranscriptChars sets the "transcript_chars" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTranscriptChars(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTranscriptChars(*v)
	}
	return _u
}

// AddTranscriptChars adds value to the "transcript_chars" field.
func (_u *AnalysisEventUpdateOne) AddTranscriptChars(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddTranscriptChars(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *AnalysisEventUpdateOne) SetEngagementScore(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableEngagementScore(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *AnalysisEventUpdateOne) AddEngagementScore(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *AnalysisEventUpdateOne) SetResult(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableResult(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := analysisevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := analysisevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Processor(); ok {
		if err := analysisevent.ProcessorValidator(v); err != nil {
			return &ValidationError{Name: "processor", err: fmt.Errorf(`ent: validator failed for field "AnalysisEvent.processor": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(analysisevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(analysisevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Processor(); ok {
		_spec.SetField(analysisevent.FieldProcessor, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(analysisevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TranscriptChars(); ok {
		_spec.SetField(analysisevent.FieldTranscriptChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTranscriptChars(); ok {
		_spec.AddField(analysisevent.FieldTranscriptChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(analysisevent.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(analysisevent.FieldEngagementScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(analysisevent.FieldResult, field.TypeString, value)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
