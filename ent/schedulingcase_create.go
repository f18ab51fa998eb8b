// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
)

// SchedulingCaseCreate is the builder for creating a SchedulingCase entity.
type SchedulingCaseCreate struct {
	config
	mutation *SchedulingCaseMutation
	hooks    []Hook
}

// SetRcaID sets the "rca_id" field.
func (_c *SchedulingCaseCreate) SetRcaID(v string) *SchedulingCaseCreate {
	_c.mutation.SetRcaID(v)
	return _c
}

// SetDiagnosisID sets the "diagnosis_id" field.
func (_c *SchedulingCaseCreate) SetDiagnosisID(v string) *SchedulingCaseCreate {
	_c.mutation.SetDiagnosisID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *SchedulingCaseCreate) SetCaseID(v string) *SchedulingCaseCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *SchedulingCaseCreate) SetVehicleID(v string) *SchedulingCaseCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetBestSlot sets the "best_slot" field.
func (_c *SchedulingCaseCreate) SetBestSlot(v time.Time) *SchedulingCaseCreate {
	_c.mutation.SetBestSlot(v)
	return _c
}

// SetServiceCenter sets the "service_center" field.
func (_c *SchedulingCaseCreate) SetServiceCenter(v string) *SchedulingCaseCreate {
	_c.mutation.SetServiceCenter(v)
	return _c
}

// SetSlotType sets the "slot_type" field.
func (_c *SchedulingCaseCreate) SetSlotType(v schedulingcase.SlotType) *SchedulingCaseCreate {
	_c.mutation.SetSlotType(v)
	return _c
}

// SetFallbackSlots sets the "fallback_slots" field.
func (_c *SchedulingCaseCreate) SetFallbackSlots(v []string) *SchedulingCaseCreate {
	_c.mutation.SetFallbackSlots(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SchedulingCaseCreate) SetStatus(v schedulingcase.Status) *SchedulingCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SchedulingCaseCreate) SetNillableStatus(v *schedulingcase.Status) *SchedulingCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SchedulingCaseCreate) SetCreatedAt(v time.Time) *SchedulingCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SchedulingCaseCreate) SetNillableCreatedAt(v *time.Time) *SchedulingCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SchedulingCaseCreate) SetID(v string) *SchedulingCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SchedulingCaseMutation object of the builder.
func (_c *SchedulingCaseCreate) Mutation() *SchedulingCaseMutation {
	return _c.mutation
}

// Save creates the SchedulingCase in the database.
func (_c *SchedulingCaseCreate) Save(ctx context.Context) (*SchedulingCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SchedulingCaseCreate) SaveX(ctx context.Context) *SchedulingCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchedulingCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchedulingCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SchedulingCaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := schedulingcase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schedulingcase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SchedulingCaseCreate) check() error {
	if _, ok := _c.mutation.RcaID(); !ok {
		return &ValidationError{Name: "rca_id", err: errors.New(`ent: missing required field "SchedulingCase.rca_id"`)}
	}
	if _, ok := _c.mutation.DiagnosisID(); !ok {
		return &ValidationError{Name: "diagnosis_id", err: errors.New(`ent: missing required field "SchedulingCase.diagnosis_id"`)}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "SchedulingCase.case_id"`)}
	}
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "SchedulingCase.vehicle_id"`)}
	}
	if _, ok := _c.mutation.BestSlot(); !ok {
		return &ValidationError{Name: "best_slot", err: errors.New(`ent: missing required field "SchedulingCase.best_slot"`)}
	}
	if _, ok := _c.mutation.ServiceCenter(); !ok {
		return &ValidationError{Name: "service_center", err: errors.New(`ent: missing required field "SchedulingCase.service_center"`)}
	}
	if _, ok := _c.mutation.SlotType(); !ok {
		return &ValidationError{Name: "slot_type", err: errors.New(`ent: missing required field "SchedulingCase.slot_type"`)}
	}
	if v, ok := _c.mutation.SlotType(); ok {
		if err := schedulingcase.SlotTypeValidator(v); err != nil {
			return &ValidationError{Name: "slot_type", err: fmt.Errorf(`ent: validator failed for field "SchedulingCase.slot_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FallbackSlots(); !ok {
		return &ValidationError{Name: "fallback_slots", err: errors.New(`ent: missing required field "SchedulingCase.fallback_slots"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SchedulingCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := schedulingcase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SchedulingCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SchedulingCase.created_at"`)}
	}
	return nil
}

func (_c *SchedulingCaseCreate) sqlSave(ctx context.Context) (*SchedulingCase, error) {
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
			return nil, fmt.Errorf("unexpected SchedulingCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SchedulingCaseCreate) createSpec() (*SchedulingCase, *sqlgraph.CreateSpec) {
	var (
		_node = &SchedulingCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedulingcase.Table, sqlgraph.NewFieldSpec(schedulingcase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RcaID(); ok {
		_spec.SetField(schedulingcase.FieldRcaID, field.TypeString, value)
		_node.RcaID = value
	}
	if value, ok := _c.mutation.DiagnosisID(); ok {
		_spec.SetField(schedulingcase.FieldDiagnosisID, field.TypeString, value)
		_node.DiagnosisID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(schedulingcase.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(schedulingcase.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.BestSlot(); ok {
		_spec.SetField(schedulingcase.FieldBestSlot, field.TypeTime, value)
		_node.BestSlot = value
	}
	if value, ok := _c.mutation.ServiceCenter(); ok {
		_spec.SetField(schedulingcase.FieldServiceCenter, field.TypeString, value)
		_node.ServiceCenter = value
	}
	if value, ok := _c.mutation.SlotType(); ok {
		_spec.SetField(schedulingcase.FieldSlotType, field.TypeEnum, value)
		_node.SlotType = value
	}
	if value, ok := _c.mutation.FallbackSlots(); ok {
		_spec.SetField(schedulingcase.FieldFallbackSlots, field.TypeJSON, value)
		_node.FallbackSlots = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(schedulingcase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schedulingcase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SchedulingCaseCreateBulk is the builder for creating many SchedulingCase entities in bulk.
type SchedulingCaseCreateBulk struct {
	config
	err      error
	builders []*SchedulingCaseCreate
}

// Save creates the SchedulingCase entities in the database.
func (_c *SchedulingCaseCreateBulk) Save(ctx context.Context) ([]*SchedulingCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SchedulingCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SchedulingCaseMutation)
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
func (_c *SchedulingCaseCreateBulk) SaveX(ctx context.Context) []*SchedulingCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SchedulingCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SchedulingCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
