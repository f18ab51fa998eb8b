// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/predicate"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
)

// SchedulingCaseDelete is the builder for deleting a SchedulingCase entity.
type SchedulingCaseDelete struct {
	config
	hooks    []Hook
	mutation *SchedulingCaseMutation
}

// Where appends a list predicates to the SchedulingCaseDelete builder.
func (_d *SchedulingCaseDelete) Where(ps ...predicate.SchedulingCase) *SchedulingCaseDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SchedulingCaseDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SchedulingCaseDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SchedulingCaseDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(schedulingcase.Table, sqlgraph.NewFieldSpec(schedulingcase.FieldID, field.TypeString))
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

// SchedulingCaseDeleteOne is the builder for deleting a single SchedulingCase entity.
type SchedulingCaseDeleteOne struct {
	_d *SchedulingCaseDelete
}

// Where appends a list predicates to the SchedulingCaseDelete builder.
func (_d *SchedulingCaseDeleteOne) Where(ps ...predicate.SchedulingCase) *SchedulingCaseDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SchedulingCaseDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{schedulingcase.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SchedulingCaseDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
