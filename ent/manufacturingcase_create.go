// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
)

// ManufacturingCaseCreate is the builder for creating a ManufacturingCase entity.
type ManufacturingCaseCreate struct {
	config
	mutation *ManufacturingCaseMutation
	hooks    []Hook
}

// SetFeedbackID sets the "feedback_id" field.
func (_c *ManufacturingCaseCreate) SetFeedbackID(v string) *ManufacturingCaseCreate {
	_c.mutation.SetFeedbackID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *ManufacturingCaseCreate) SetCaseID(v string) *ManufacturingCaseCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *ManufacturingCaseCreate) SetVehicleID(v string) *ManufacturingCaseCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetIssue sets the "issue" field.
func (_c *ManufacturingCaseCreate) SetIssue(v string) *ManufacturingCaseCreate {
	_c.mutation.SetIssue(v)
	return _c
}

// SetCapaRecommendation sets the "capa_recommendation" field.
func (_c *ManufacturingCaseCreate) SetCapaRecommendation(v string) *ManufacturingCaseCreate {
	_c.mutation.SetCapaRecommendation(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ManufacturingCaseCreate) SetSeverity(v manufacturingcase.Severity) *ManufacturingCaseCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetRecurrenceClusterSize sets the "recurrence_cluster_size" field.
func (_c *ManufacturingCaseCreate) SetRecurrenceClusterSize(v int) *ManufacturingCaseCreate {
	_c.mutation.SetRecurrenceClusterSize(v)
	return _c
}

// SetVehicleRecurrenceCount sets the "vehicle_recurrence_count" field.
func (_c *ManufacturingCaseCreate) SetVehicleRecurrenceCount(v int) *ManufacturingCaseCreate {
	_c.mutation.SetVehicleRecurrenceCount(v)
	return _c
}

// SetNillableVehicleRecurrenceCount sets the "vehicle_recurrence_count" field if the given value is not nil.
func (_c *ManufacturingCaseCreate) SetNillableVehicleRecurrenceCount(v *int) *ManufacturingCaseCreate {
	if v != nil {
		_c.SetVehicleRecurrenceCount(*v)
	}
	return _c
}

// SetAnomalyTypeRecurrenceCount sets the "anomaly_type_recurrence_count" field.
func (_c *ManufacturingCaseCreate) SetAnomalyTypeRecurrenceCount(v int) *ManufacturingCaseCreate {
	_c.mutation.SetAnomalyTypeRecurrenceCount(v)
	return _c
}

// SetNillableAnomalyTypeRecurrenceCount sets the "anomaly_type_recurrence_count" field if the given value is not nil.
func (_c *ManufacturingCaseCreate) SetNillableAnomalyTypeRecurrenceCount(v *int) *ManufacturingCaseCreate {
	if v != nil {
		_c.SetAnomalyTypeRecurrenceCount(*v)
	}
	return _c
}

// SetComponentRecurrenceCount sets the "component_recurrence_count" field.
func (_c *ManufacturingCaseCreate) SetComponentRecurrenceCount(v int) *ManufacturingCaseCreate {
	_c.mutation.SetComponentRecurrenceCount(v)
	return _c
}

// SetNillableComponentRecurrenceCount sets the "component_recurrence_count" field if the given value is not nil.
func (_c *ManufacturingCaseCreate) SetNillableComponentRecurrenceCount(v *int) *ManufacturingCaseCreate {
	if v != nil {
		_c.SetComponentRecurrenceCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ManufacturingCaseCreate) SetCreatedAt(v time.Time) *ManufacturingCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ManufacturingCaseCreate) SetNillableCreatedAt(v *time.Time) *ManufacturingCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ManufacturingCaseCreate) SetID(v string) *ManufacturingCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ManufacturingCaseMutation object of the builder.
func (_c *ManufacturingCaseCreate) Mutation() *ManufacturingCaseMutation {
	return _c.mutation
}

// Save creates the ManufacturingCase in the database.
func (_c *ManufacturingCaseCreate) Save(ctx context.Context) (*ManufacturingCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ManufacturingCaseCreate) SaveX(ctx context.Context) *ManufacturingCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ManufacturingCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ManufacturingCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ManufacturingCaseCreate) defaults() {
	if _, ok := _c.mutation.VehicleRecurrenceCount(); !ok {
		v := manufacturingcase.DefaultVehicleRecurrenceCount
		_c.mutation.SetVehicleRecurrenceCount(v)
	}
	if _, ok := _c.mutation.AnomalyTypeRecurrenceCount(); !ok {
		v := manufacturingcase.DefaultAnomalyTypeRecurrenceCount
		_c.mutation.SetAnomalyTypeRecurrenceCount(v)
	}
	if _, ok := _c.mutation.ComponentRecurrenceCount(); !ok {
		v := manufacturingcase.DefaultComponentRecurrenceCount
		_c.mutation.SetComponentRecurrenceCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := manufacturingcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ManufacturingCaseCreate) check() error {
	if _, ok := _c.mutation.FeedbackID(); !ok {
		return &ValidationError{Name: "feedback_id", err: errors.New(`ent: missing required field "ManufacturingCase.feedback_id"`)}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "ManufacturingCase.case_id"`)}
	}
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "ManufacturingCase.vehicle_id"`)}
	}
	if _, ok := _c.mutation.Issue(); !ok {
		return &ValidationError{Name: "issue", err: errors.New(`ent: missing required field "ManufacturingCase.issue"`)}
	}
	if _, ok := _c.mutation.CapaRecommendation(); !ok {
		return &ValidationError{Name: "capa_recommendation", err: errors.New(`ent: missing required field "ManufacturingCase.capa_recommendation"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ManufacturingCase.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := manufacturingcase.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ManufacturingCase.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecurrenceClusterSize(); !ok {
		return &ValidationError{Name: "recurrence_cluster_size", err: errors.New(`ent: missing required field "ManufacturingCase.recurrence_cluster_size"`)}
	}
	if _, ok := _c.mutation.VehicleRecurrenceCount(); !ok {
		return &ValidationError{Name: "vehicle_recurrence_count", err: errors.New(`ent: missing required field "ManufacturingCase.vehicle_recurrence_count"`)}
	}
	if _, ok := _c.mutation.AnomalyTypeRecurrenceCount(); !ok {
		return &ValidationError{Name: "anomaly_type_recurrence_count", err: errors.New(`ent: missing required field "ManufacturingCase.anomaly_type_recurrence_count"`)}
	}
	if _, ok := _c.mutation.ComponentRecurrenceCount(); !ok {
		return &ValidationError{Name: "component_recurrence_count", err: errors.New(`ent: missing required field "ManufacturingCase.component_recurrence_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ManufacturingCase.created_at"`)}
	}
	return nil
}

func (_c *ManufacturingCaseCreate) sqlSave(ctx context.Context) (*ManufacturingCase, error) {
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
			return nil, fmt.Errorf("unexpected ManufacturingCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ManufacturingCaseCreate) createSpec() (*ManufacturingCase, *sqlgraph.CreateSpec) {
	var (
		_node = &ManufacturingCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(manufacturingcase.Table, sqlgraph.NewFieldSpec(manufacturingcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FeedbackID(); ok {
		_spec.SetField(manufacturingcase.FieldFeedbackID, field.TypeString, value)
		_node.FeedbackID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(manufacturingcase.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(manufacturingcase.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.Issue(); ok {
		_spec.SetField(manufacturingcase.FieldIssue, field.TypeString, value)
		_node.Issue = value
	}
	if value, ok := _c.mutation.CapaRecommendation(); ok {
		_spec.SetField(manufacturingcase.FieldCapaRecommendation, field.TypeString, value)
		_node.CapaRecommendation = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(manufacturingcase.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.RecurrenceClusterSize(); ok {
		_spec.SetField(manufacturingcase.FieldRecurrenceClusterSize, field.TypeInt, value)
		_node.RecurrenceClusterSize = value
	}
	if value, ok := _c.mutation.VehicleRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldVehicleRecurrenceCount, field.TypeInt, value)
		_node.VehicleRecurrenceCount = value
	}
	if value, ok := _c.mutation.AnomalyTypeRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldAnomalyTypeRecurrenceCount, field.TypeInt, value)
		_node.AnomalyTypeRecurrenceCount = value
	}
	if value, ok := _c.mutation.ComponentRecurrenceCount(); ok {
		_spec.SetField(manufacturingcase.FieldComponentRecurrenceCount, field.TypeInt, value)
		_node.ComponentRecurrenceCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(manufacturingcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ManufacturingCaseCreateBulk is the builder for creating many ManufacturingCase entities in bulk.
type ManufacturingCaseCreateBulk struct {
	config
	err      error
	builders []*ManufacturingCaseCreate
}

// Save creates the ManufacturingCase entities in the database.
func (_c *ManufacturingCaseCreateBulk) Save(ctx context.Context) ([]*ManufacturingCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ManufacturingCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ManufacturingCaseMutation)
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
func (_c *ManufacturingCaseCreateBulk) SaveX(ctx context.Context) []*ManufacturingCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ManufacturingCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ManufacturingCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
