// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/rcacase"
)

// RcaCaseCreate is the builder for creating a RcaCase entity.
type RcaCaseCreate struct {
	config
	mutation *RcaCaseMutation
	hooks    []Hook
}

// SetDiagnosisID sets the "diagnosis_id" field.
func (_c *RcaCaseCreate) SetDiagnosisID(v string) *RcaCaseCreate {
	_c.mutation.SetDiagnosisID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *RcaCaseCreate) SetCaseID(v string) *RcaCaseCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *RcaCaseCreate) SetVehicleID(v string) *RcaCaseCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetRootCause sets the "root_cause" field.
func (_c *RcaCaseCreate) SetRootCause(v string) *RcaCaseCreate {
	_c.mutation.SetRootCause(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *RcaCaseCreate) SetConfidence(v float64) *RcaCaseCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetRecommendedAction sets the "recommended_action" field.
func (_c *RcaCaseCreate) SetRecommendedAction(v string) *RcaCaseCreate {
	_c.mutation.SetRecommendedAction(v)
	return _c
}

// SetCapaType sets the "capa_type" field.
func (_c *RcaCaseCreate) SetCapaType(v rcacase.CapaType) *RcaCaseCreate {
	_c.mutation.SetCapaType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RcaCaseCreate) SetStatus(v rcacase.Status) *RcaCaseCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RcaCaseCreate) SetNillableStatus(v *rcacase.Status) *RcaCaseCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RcaCaseCreate) SetCreatedAt(v time.Time) *RcaCaseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RcaCaseCreate) SetNillableCreatedAt(v *time.Time) *RcaCaseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RcaCaseCreate) SetID(v string) *RcaCaseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RcaCaseMutation object of the builder.
func (_c *RcaCaseCreate) Mutation() *RcaCaseMutation {
	return _c.mutation
}

// Save creates the RcaCase in the database.
func (_c *RcaCaseCreate) Save(ctx context.Context) (*RcaCase, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RcaCaseCreate) SaveX(ctx context.Context) *RcaCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RcaCaseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RcaCaseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RcaCaseCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := rcacase.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rcacase.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RcaCaseCreate) check() error {
	if _, ok := _c.mutation.DiagnosisID(); !ok {
		return &ValidationError{Name: "diagnosis_id", err: errors.New(`ent: missing required field "RcaCase.diagnosis_id"`)}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "RcaCase.case_id"`)}
	}
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "RcaCase.vehicle_id"`)}
	}
	if _, ok := _c.mutation.RootCause(); !ok {
		return &ValidationError{Name: "root_cause", err: errors.New(`ent: missing required field "RcaCase.root_cause"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "RcaCase.confidence"`)}
	}
	if _, ok := _c.mutation.RecommendedAction(); !ok {
		return &ValidationError{Name: "recommended_action", err: errors.New(`ent: missing required field "RcaCase.recommended_action"`)}
	}
	if _, ok := _c.mutation.CapaType(); !ok {
		return &ValidationError{Name: "capa_type", err: errors.New(`ent: missing required field "RcaCase.capa_type"`)}
	}
	if v, ok := _c.mutation.CapaType(); ok {
		if err := rcacase.CapaTypeValidator(v); err != nil {
			return &ValidationError{Name: "capa_type", err: fmt.Errorf(`ent: validator failed for field "RcaCase.capa_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RcaCase.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := rcacase.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RcaCase.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RcaCase.created_at"`)}
	}
	return nil
}

func (_c *RcaCaseCreate) sqlSave(ctx context.Context) (*RcaCase, error) {
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
			return nil, fmt.Errorf("unexpected RcaCase.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RcaCaseCreate) createSpec() (*RcaCase, *sqlgraph.CreateSpec) {
	var (
		_node = &RcaCase{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rcacase.Table, sqlgraph.NewFieldSpec(rcacase.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DiagnosisID(); ok {
		_spec.SetField(rcacase.FieldDiagnosisID, field.TypeString, value)
		_node.DiagnosisID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(rcacase.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(rcacase.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.RootCause(); ok {
		_spec.SetField(rcacase.FieldRootCause, field.TypeString, value)
		_node.RootCause = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(rcacase.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.RecommendedAction(); ok {
		_spec.SetField(rcacase.FieldRecommendedAction, field.TypeString, value)
		_node.RecommendedAction = value
	}
	if value, ok := _c.mutation.CapaType(); ok {
		_spec.SetField(rcacase.FieldCapaType, field.TypeEnum, value)
		_node.CapaType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(rcacase.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rcacase.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RcaCaseCreateBulk is the builder for creating many RcaCase entities in bulk.
type RcaCaseCreateBulk struct {
	config
	err      error
	builders []*RcaCaseCreate
}

// Save creates the RcaCase entities in the database.
func (_c *RcaCaseCreateBulk) Save(ctx context.Context) ([]*RcaCase, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RcaCase, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RcaCaseMutation)
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
func (_c *RcaCaseCreateBulk) SaveX(ctx context.Context) []*RcaCase {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RcaCaseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RcaCaseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
