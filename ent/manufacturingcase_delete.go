// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ManufacturingCaseDelete is the builder for deleting a ManufacturingCase entity.
type ManufacturingCaseDelete struct {
	config
	hooks    []Hook
	mutation *ManufacturingCaseMutation
}

// Where appends a list predicates to the ManufacturingCaseDelete builder.
func (_d *ManufacturingCaseDelete) Where(ps ...predicate.ManufacturingCase) *ManufacturingCaseDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ManufacturingCaseDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ManufacturingCaseDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ManufacturingCaseDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(manufacturingcase.Table, sqlgraph.NewFieldSpec(manufacturingcase.FieldID, field.TypeString))
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

// ManufacturingCaseDeleteOne is the builder for deleting a single ManufacturingCase entity.
type ManufacturingCaseDeleteOne struct {
	_d *ManufacturingCaseDelete
}

// Where appends a list predicates to the ManufacturingCaseDelete builder.
func (_d *ManufacturingCaseDeleteOne) Where(ps ...predicate.ManufacturingCase) *ManufacturingCaseDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ManufacturingCaseDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{manufacturingcase.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ManufacturingCaseDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
