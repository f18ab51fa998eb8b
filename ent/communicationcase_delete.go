// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// CommunicationCaseDelete is the builder for deleting a CommunicationCase entity.
type CommunicationCaseDelete struct {
	config
	hooks    []Hook
	mutation *CommunicationCaseMutation
}

// Where appends a list predicates to the CommunicationCaseDelete builder.
func (_d *CommunicationCaseDelete) Where(ps ...predicate.CommunicationCase) *CommunicationCaseDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CommunicationCaseDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommunicationCaseDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CommunicationCaseDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(communicationcase.Table, sqlgraph.NewFieldSpec(communicationcase.FieldID, field.TypeString))
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

// CommunicationCaseDeleteOne is the builder for deleting a single CommunicationCase entity.
type CommunicationCaseDeleteOne struct {
	_d *CommunicationCaseDelete
}

// Where appends a list predicates to the CommunicationCaseDelete builder.
func (_d *CommunicationCaseDeleteOne) Where(ps ...predicate.CommunicationCase) *CommunicationCaseDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CommunicationCaseDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{communicationcase.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CommunicationCaseDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
