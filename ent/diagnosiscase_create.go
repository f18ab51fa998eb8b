// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
)

// DiagnosisCaseCreate is the builder for creating a DiagnosisCase entity.
type DiagnosisCaseCreate struct {
	config
	mutation *DiagnosisCaseMutation
	hooks    []Hook
}

// SetCaseID sets the "case_id" field.
func (_c *DiagnosisCaseCreate) SetCaseID(v string) *DiagnosisCaseCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *DiagnosisCaseCreate) SetVehicleID(v string) *DiagnosisCaseCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetComponent sets the "component" field.
func (_c *DiagnosisCaseCreate) SetComponent(v string) *DiagnosisCaseCreate {
	_c.mutation.SetComponent(v)
	return _c
}

// SetFailureProbability sets the "failure_probability" field.
func (_c *DiagnosisCaseCreate) SetFailureProbability(v float64) *DiagnosisCaseCreate {
	_c.mutation.SetFailureProbability(v)
	return _c
}

// SetEstimatedRulDays sets the "estimated_rul_days" field.
func (_c *DiagnosisCaseCreate) SetEstimatedRulDays(v int) *DiagnosisCaseCreate {
	_c.mutation.SetEstimatedRulDays(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *DiagnosisCaseCreate) SetSeverity(v diagnosiscase.Severity) *DiagnosisCaseCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetContextEventIds sets the "context_event_ids" field.
func (_c *DiagnosisCaseCreate) SetContextEventIds(v []string) *DiagnosisCaseCreate {
	_c.mutation.SetContextEventIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DiagnosisCaseCreate) SetStatus(v diagnosiscase.Status) *DiagnosisCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DiagnosisCaseCreate) SetNillableStatus(v *diagnosiscase.Status) *DiagnosisCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiagnosisCaseCreate) SetCreatedAt(v time.Time) *DiagnosisCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiagnosisCaseCreate) SetNillableCreatedAt(v *time.Time) *DiagnosisCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiagnosisCaseCreate) SetID(v string) *DiagnosisCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DiagnosisCaseMutation object of the builder.
func (_c *DiagnosisCaseCreate) Mutation() *DiagnosisCaseMutation {
	return _c.mutation
}

// Save creates the DiagnosisCase in the database.
func (_c *DiagnosisCaseCreate) Save(ctx context.Context) (*DiagnosisCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosisCaseCreate) SaveX(ctx context.Context) *DiagnosisCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosisCaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := diagnosiscase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := diagnosiscase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosisCaseCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "DiagnosisCase.case_id"`)}
	}
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "DiagnosisCase.vehicle_id"`)}
	}
	if _, ok := _c.mutation.Component(); !ok {
		return &ValidationError{Name: "component", err: errors.New(`ent: missing required field "DiagnosisCase.component"`)}
	}
	if _, ok := _c.mutation.FailureProbability(); !ok {
		return &ValidationError{Name: "failure_probability", err: errors.New(`ent: missing required field "DiagnosisCase.failure_probability"`)}
	}
	if _, ok := _c.mutation.EstimatedRulDays(); !ok {
		return &ValidationError{Name: "estimated_rul_days", err: errors.New(`ent: missing required field "DiagnosisCase.estimated_rul_days"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "DiagnosisCase.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := diagnosiscase.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "DiagnosisCase.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DiagnosisCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := diagnosiscase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosisCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DiagnosisCase.created_at"`)}
	}
	return nil
}

func (_c *DiagnosisCaseCreate) sqlSave(ctx context.Context) (*DiagnosisCase, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DiagnosisCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiagnosisCaseCreate) createSpec() (*DiagnosisCase, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagnosisCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosiscase.Table, sqlgraph.NewFieldSpec(diagnosiscase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(diagnosiscase.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(diagnosiscase.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.Component(); ok {
		_spec.SetField(diagnosiscase.FieldComponent, field.TypeString, value)
		_node.Component = value
	}
	if value, ok := _c.mutation.FailureProbability(); ok {
		_spec.SetField(diagnosiscase.FieldFailureProbability, field.TypeFloat64, value)
		_node.FailureProbability = value
	}
	if value, ok := _c.mutation.EstimatedRulDays(); ok {
		_spec.SetField(diagnosiscase.FieldEstimatedRulDays, field.TypeInt, value)
		_node.EstimatedRulDays = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(diagnosiscase.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.ContextEventIds(); ok {
		_spec.SetField(diagnosiscase.FieldContextEventIds, field.TypeJSON, value)
		_node.ContextEventIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(diagnosiscase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(diagnosiscase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DiagnosisCaseCreateBulk is the builder for creating many DiagnosisCase entities in bulk.
type DiagnosisCaseCreateBulk struct {
	config
	err      error
	builders []*DiagnosisCaseCreate
}

// Save creates the DiagnosisCase entities in the database.
func (_c *DiagnosisCaseCreateBulk) Save(ctx context.Context) ([]*DiagnosisCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagnosisCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosisCaseMutation)
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
func (_c *DiagnosisCaseCreateBulk) SaveX(ctx context.Context) []*DiagnosisCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosisCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosisCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
