// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// AnomalyCaseDelete is the builder for deleting a AnomalyCase entity.
type AnomalyCaseDelete struct {
	config
	hooks    []Hook
	mutation *AnomalyCaseMutation
}

// Where appends a list predicates to the AnomalyCaseDelete builder.
func (_d *AnomalyCaseDelete) Where(ps ...predicate.AnomalyCase) *AnomalyCaseDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AnomalyCaseDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnomalyCaseDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AnomalyCaseDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(anomalycase.Table, sqlgraph.NewFieldSpec(anomalycase.FieldID, field.TypeString))
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

// AnomalyCaseDeleteOne is the builder for deleting a single AnomalyCase entity.
type AnomalyCaseDeleteOne struct {
	_d *AnomalyCaseDelete
}

// Where appends a list predicates to the AnomalyCaseDelete builder.
func (_d *AnomalyCaseDeleteOne) Where(ps ...predicate.AnomalyCase) *AnomalyCaseDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AnomalyCaseDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{anomalycase.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AnomalyCaseDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
