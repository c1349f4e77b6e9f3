// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorlens/ent/analysisevent"
	"github.com/abhisek/tutorlens/ent/predicate"
)

// AnalysisEventDelete is the builder for deleting a AnalysisEvent entity.
type AnalysisEventDelete struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventDelete builder.
func (_d *AnalysisEventDelete) Where(ps ...predicate.AnalysisEvent) *AnalysisEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnalysisEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnalysisEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AnalysisEventDeleteOne is the builder for deleting a single AnalysisEvent entity.
type AnalysisEventDeleteOne struct {
	_d *AnalysisEventDelete
}

// Where appends a list predicates to the AnalysisEventDelete builder.
func (_d *AnalysisEventDeleteOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnalysisEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{analysisevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnalysisEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
