// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/telemetryevent"
)

// TelemetryEventCreate is the builder for creating a TelemetryEvent entity.
type TelemetryEventCreate struct {
	config
	mutation *TelemetryEventMutation
	hooks    []Hook
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *TelemetryEventCreate) SetVehicleID(v string) *TelemetryEventCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TelemetryEventCreate) SetTimestamp(v time.Time) *TelemetryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *TelemetryEventCreate) SetLatitude(v float64) *TelemetryEventCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableLatitude(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *TelemetryEventCreate) SetLongitude(v float64) *TelemetryEventCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableLongitude(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetSpeedKmph sets the "speed_kmph" field.
func (_c *TelemetryEventCreate) SetSpeedKmph(v float64) *TelemetryEventCreate {
	_c.mutation.SetSpeedKmph(v)
	return _c
}

// SetNillableSpeedKmph sets the "speed_kmph" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableSpeedKmph(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetSpeedKmph(*v)
	}
	return _c
}

// SetOdometerKm sets the "odometer_km" field.
func (_c *TelemetryEventCreate) SetOdometerKm(v float64) *TelemetryEventCreate {
	_c.mutation.SetOdometerKm(v)
	return _c
}

// SetNillableOdometerKm sets the "odometer_km" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableOdometerKm(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetOdometerKm(*v)
	}
	return _c
}

// SetEngineRpm sets the "engine_rpm" field.
func (_c *TelemetryEventCreate) SetEngineRpm(v float64) *TelemetryEventCreate {
	_c.mutation.SetEngineRpm(v)
	return _c
}

// SetNillableEngineRpm sets the "engine_rpm" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableEngineRpm(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetEngineRpm(*v)
	}
	return _c
}

// SetCoolantTempC sets the "coolant_temp_c" field.
func (_c *TelemetryEventCreate) SetCoolantTempC(v float64) *TelemetryEventCreate {
	_c.mutation.SetCoolantTempC(v)
	return _c
}

// SetNillableCoolantTempC sets the "coolant_temp_c" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableCoolantTempC(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetCoolantTempC(*v)
	}
	return _c
}

// SetOilTempC sets the "oil_temp_c" field.
func (_c *TelemetryEventCreate) SetOilTempC(v float64) *TelemetryEventCreate {
	_c.mutation.SetOilTempC(v)
	return _c
}

// SetNillableOilTempC sets the "oil_temp_c" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableOilTempC(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetOilTempC(*v)
	}
	return _c
}

// SetFuelLevelPct sets the "fuel_level_pct" field.
func (_c *TelemetryEventCreate) SetFuelLevelPct(v float64) *TelemetryEventCreate {
	_c.mutation.SetFuelLevelPct(v)
	return _c
}

// SetNillableFuelLevelPct sets the "fuel_level_pct" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableFuelLevelPct(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetFuelLevelPct(*v)
	}
	return _c
}

// SetBatterySocPct sets the "battery_soc_pct" field.
func (_c *TelemetryEventCreate) SetBatterySocPct(v float64) *TelemetryEventCreate {
	_c.mutation.SetBatterySocPct(v)
	return _c
}

// SetNillableBatterySocPct sets the "battery_soc_pct" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableBatterySocPct(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetBatterySocPct(*v)
	}
	return _c
}

// SetBatterySohPct sets the "battery_soh_pct" field.
func (_c *TelemetryEventCreate) SetBatterySohPct(v float64) *TelemetryEventCreate {
	_c.mutation.SetBatterySohPct(v)
	return _c
}

// SetNillableBatterySohPct sets the "battery_soh_pct" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableBatterySohPct(v *float64) *TelemetryEventCreate {
	if v != nil {
		_c.SetBatterySohPct(*v)
	}
	return _c
}

// SetDtcCodes sets the "dtc_codes" field.
func (_c *TelemetryEventCreate) SetDtcCodes(v []string) *TelemetryEventCreate {
	_c.mutation.SetDtcCodes(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TelemetryEventCreate) SetCreatedAt(v time.Time) *TelemetryEventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableCreatedAt(v *time.Time) *TelemetryEventCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TelemetryEventCreate) SetID(v string) *TelemetryEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_c *TelemetryEventCreate) Mutation() *TelemetryEventMutation {
	return _c.mutation
}

// Save creates the TelemetryEvent in the database.
func (_c *TelemetryEventCreate) Save(ctx context.Context) (*TelemetryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TelemetryEventCreate) SaveX(ctx context.Context) *TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TelemetryEventCreate) defaults() {
	if _, ok := _c.mutation.SpeedKmph(); !ok {
		v := telemetryevent.DefaultSpeedKmph
		_c.mutation.SetSpeedKmph(v)
	}
	if _, ok := _c.mutation.OdometerKm(); !ok {
		v := telemetryevent.DefaultOdometerKm
		_c.mutation.SetOdometerKm(v)
	}
	if _, ok := _c.mutation.EngineRpm(); !ok {
		v := telemetryevent.DefaultEngineRpm
		_c.mutation.SetEngineRpm(v)
	}
	if _, ok := _c.mutation.CoolantTempC(); !ok {
		v := telemetryevent.DefaultCoolantTempC
		_c.mutation.SetCoolantTempC(v)
	}
	if _, ok := _c.mutation.OilTempC(); !ok {
		v := telemetryevent.DefaultOilTempC
		_c.mutation.SetOilTempC(v)
	}
	if _, ok := _c.mutation.FuelLevelPct(); !ok {
		v := telemetryevent.DefaultFuelLevelPct
		_c.mutation.SetFuelLevelPct(v)
	}
	if _, ok := _c.mutation.BatterySocPct(); !ok {
		v := telemetryevent.DefaultBatterySocPct
		_c.mutation.SetBatterySocPct(v)
	}
	if _, ok := _c.mutation.BatterySohPct(); !ok {
		v := telemetryevent.DefaultBatterySohPct
		_c.mutation.SetBatterySohPct(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := telemetryevent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TelemetryEventCreate) check() error {
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "TelemetryEvent.vehicle_id"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TelemetryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SpeedKmph(); !ok {
		return &ValidationError{Name: "speed_kmph", err: errors.New(`ent: missing required field "TelemetryEvent.speed_kmph"`)}
	}
	if _, ok := _c.mutation.OdometerKm(); !ok {
		return &ValidationError{Name: "odometer_km", err: errors.New(`ent: missing required field "TelemetryEvent.odometer_km"`)}
	}
	if _, ok := _c.mutation.EngineRpm(); !ok {
		return &ValidationError{Name: "engine_rpm", err: errors.New(`ent: missing required field "TelemetryEvent.engine_rpm"`)}
	}
	if _, ok := _c.mutation.CoolantTempC(); !ok {
		return &ValidationError{Name: "coolant_temp_c", err: errors.New(`ent: missing required field "TelemetryEvent.coolant_temp_c"`)}
	}
	if _, ok := _c.mutation.OilTempC(); !ok {
		return &ValidationError{Name: "oil_temp_c", err: errors.New(`ent: missing required field "TelemetryEvent.oil_temp_c"`)}
	}
	if _, ok := _c.mutation.FuelLevelPct(); !ok {
		return &ValidationError{Name: "fuel_level_pct", err: errors.New(`ent: missing required field "TelemetryEvent.fuel_level_pct"`)}
	}
	if _, ok := _c.mutation.BatterySocPct(); !ok {
		return &ValidationError{Name: "battery_soc_pct", err: errors.New(`ent: missing required field "TelemetryEvent.battery_soc_pct"`)}
	}
	if _, ok := _c.mutation.BatterySohPct(); !ok {
		return &ValidationError{Name: "battery_soh_pct", err: errors.New(`ent: missing required field "TelemetryEvent.battery_soh_pct"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TelemetryEvent.created_at"`)}
	}
	return nil
}

func (_c *TelemetryEventCreate) sqlSave(ctx context.Context) (*TelemetryEvent, error) {
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
			return nil, fmt.Errorf("unexpected TelemetryEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TelemetryEventCreate) createSpec() (*TelemetryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TelemetryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(telemetryevent.Table, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(telemetryevent.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(telemetryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(telemetryevent.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = &value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(telemetryevent.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = &value
	}
	if value, ok := _c.mutation.SpeedKmph(); ok {
		_spec.SetField(telemetryevent.FieldSpeedKmph, field.TypeFloat64, value)
		_node.SpeedKmph = value
	}
	if value, ok := _c.mutation.OdometerKm(); ok {
		_spec.SetField(telemetryevent.FieldOdometerKm, field.TypeFloat64, value)
		_node.OdometerKm = value
	}
	if value, ok := _c.mutation.EngineRpm(); ok {
		_spec.SetField(telemetryevent.FieldEngineRpm, field.TypeFloat64, value)
		_node.EngineRpm = value
	}
	if value, ok := _c.mutation.CoolantTempC(); ok {
		_spec.SetField(telemetryevent.FieldCoolantTempC, field.TypeFloat64, value)
		_node.CoolantTempC = value
	}
	if value, ok := _c.mutation.OilTempC(); ok {
		_spec.SetField(telemetryevent.FieldOilTempC, field.TypeFloat64, value)
		_node.OilTempC = value
	}
	if value, ok := _c.mutation.FuelLevelPct(); ok {
		_spec.SetField(telemetryevent.FieldFuelLevelPct, field.TypeFloat64, value)
		_node.FuelLevelPct = value
	}
	if value, ok := _c.mutation.BatterySocPct(); ok {
		_spec.SetField(telemetryevent.FieldBatterySocPct, field.TypeFloat64, value)
		_node.BatterySocPct = value
	}
	if value, ok := _c.mutation.BatterySohPct(); ok {
		_spec.SetField(telemetryevent.FieldBatterySohPct, field.TypeFloat64, value)
		_node.BatterySohPct = value
	}
	if value, ok := _c.mutation.DtcCodes(); ok {
		_spec.SetField(telemetryevent.FieldDtcCodes, field.TypeJSON, value)
		_node.DtcCodes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(telemetryevent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TelemetryEventCreateBulk is the builder for creating many TelemetryEvent entities in bulk.
type TelemetryEventCreateBulk struct {
	config
	err      error
	builders []*TelemetryEventCreate
}

// Save creates the TelemetryEvent entities in the database.
func (_c *TelemetryEventCreateBulk) Save(ctx context.Context) ([]*TelemetryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TelemetryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TelemetryEventMutation)
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
func (_c *TelemetryEventCreateBulk) SaveX(ctx context.Context) []*TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
