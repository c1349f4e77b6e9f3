// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorlens/ent/mentalblock"
	"github.com/abhisek/tutorlens/ent/predicate"
)

// MentalBlockDelete is the builder for deleting a MentalBlock entity.
type MentalBlockDelete struct {
	config
	hooks    []Hook
	mutation *MentalBlockMutation
}

// Where appends a list predicates to the MentalBlockDelete builder.
func (_d *MentalBlockDelete) Where(ps ...predicate.MentalBlock) *MentalBlockDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MentalBlockDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MentalBlockDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MentalBlockDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mentalblock.Table, sqlgraph.NewFieldSpec(mentalblock.FieldID, field.TypeInt))
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

// MentalBlockDeleteOne is the builder for deleting a single MentalBlock entity.
type MentalBlockDeleteOne struct {
	_d *MentalBlockDelete
}

// Where appends a list predicates to the MentalBlockDelete builder.
func (_d *MentalBlockDeleteOne) Where(ps ...predicate.MentalBlock) *MentalBlockDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MentalBlockDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mentalblock.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MentalBlockDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
