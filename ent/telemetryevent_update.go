// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fleetsense/fleetsense/ent/predicate"
	"github.com/fleetsense/fleetsense/ent/telemetryevent"
)

// TelemetryEventUpdate is the builder for updating TelemetryEvent entities.
type TelemetryEventUpdate struct {
	config
	hooks    []Hook
	mutation *TelemetryEventMutation
}

// Where appends a list predicates to the TelemetryEventUpdate builder.
func (_u *TelemetryEventUpdate) Where(ps ...predicate.TelemetryEvent) *TelemetryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *TelemetryEventUpdate) SetLatitude(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableLatitude(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *TelemetryEventUpdate) AddLatitude(v float64) *TelemetryEventUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *TelemetryEventUpdate) ClearLatitude() *TelemetryEventUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *TelemetryEventUpdate) SetLongitude(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableLongitude(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *TelemetryEventUpdate) AddLongitude(v float64) *TelemetryEventUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *TelemetryEventUpdate) ClearLongitude() *TelemetryEventUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetSpeedKmph sets the "speed_kmph" field.
func (_u *TelemetryEventUpdate) SetSpeedKmph(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetSpeedKmph()
	_u.mutation.SetSpeedKmph(v)
	return _u
}

// SetNillableSpeedKmph sets the "speed_kmph" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableSpeedKmph(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetSpeedKmph(*v)
	}
	return _u
}

// AddSpeedKmph adds value to the "speed_kmph" field.
func (_u *TelemetryEventUpdate) AddSpeedKmph(v float64) *TelemetryEventUpdate {
	_u.mutation.AddSpeedKmph(v)
	return _u
}

// SetOdometerKm sets the "odometer_km" field.
func (_u *TelemetryEventUpdate) SetOdometerKm(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetOdometerKm()
	_u.mutation.SetOdometerKm(v)
	return _u
}

// SetNillableOdometerKm sets the "odometer_km" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableOdometerKm(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetOdometerKm(*v)
	}
	return _u
}

// AddOdometerKm adds value to the "odometer_km" field.
func (_u *TelemetryEventUpdate) AddOdometerKm(v float64) *TelemetryEventUpdate {
	_u.mutation.AddOdometerKm(v)
	return _u
}

// SetEngineRpm sets the "engine_rpm" field.
func (_u *TelemetryEventUpdate) SetEngineRpm(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetEngineRpm()
	_u.mutation.SetEngineRpm(v)
	return _u
}

// SetNillableEngineRpm sets the "engine_rpm" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableEngineRpm(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetEngineRpm(*v)
	}
	return _u
}

// AddEngineRpm adds value to the "engine_rpm" field.
func (_u *TelemetryEventUpdate) AddEngineRpm(v float64) *TelemetryEventUpdate {
	_u.mutation.AddEngineRpm(v)
	return _u
}

// SetCoolantTempC sets the "coolant_temp_c" field.
func (_u *TelemetryEventUpdate) SetCoolantTempC(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetCoolantTempC()
	_u.mutation.SetCoolantTempC(v)
	return _u
}

// SetNillableCoolantTempC sets the "coolant_temp_c" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableCoolantTempC(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetCoolantTempC(*v)
	}
	return _u
}

// AddCoolantTempC adds value to the "coolant_temp_c" field.
func (_u *TelemetryEventUpdate) AddCoolantTempC(v float64) *TelemetryEventUpdate {
	_u.mutation.AddCoolantTempC(v)
	return _u
}

// SetOilTempC sets the "oil_temp_c" field.
func (_u *TelemetryEventUpdate) SetOilTempC(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetOilTempC()
	_u.mutation.SetOilTempC(v)
	return _u
}

// SetNillableOilTempC sets the "oil_temp_c" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableOilTempC(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetOilTempC(*v)
	}
	return _u
}

// AddOilTempC adds value to the "oil_temp_c" field.
func (_u *TelemetryEventUpdate) AddOilTempC(v float64) *TelemetryEventUpdate {
	_u.mutation.AddOilTempC(v)
	return _u
}

// SetFuelLevelPct sets the "fuel_level_pct" field.
func (_u *TelemetryEventUpdate) SetFuelLevelPct(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetFuelLevelPct()
	_u.mutation.SetFuelLevelPct(v)
	return _u
}

// SetNillableFuelLevelPct sets the "fuel_level_pct" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableFuelLevelPct(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetFuelLevelPct(*v)
	}
	return _u
}

// AddFuelLevelPct adds value to the "fuel_level_pct" field.
func (_u *TelemetryEventUpdate) AddFuelLevelPct(v float64) *TelemetryEventUpdate {
	_u.mutation.AddFuelLevelPct(v)
	return _u
}

// SetBatterySocPct sets the "battery_soc_pct" field.
func (_u *TelemetryEventUpdate) SetBatterySocPct(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetBatterySocPct()
	_u.mutation.SetBatterySocPct(v)
	return _u
}

// SetNillableBatterySocPct sets the "battery_soc_pct" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableBatterySocPct(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetBatterySocPct(*v)
	}
	return _u
}

// AddBatterySocPct adds value to the "battery_soc_pct" field.
func (_u *TelemetryEventUpdate) AddBatterySocPct(v float64) *TelemetryEventUpdate {
	_u.mutation.AddBatterySocPct(v)
	return _u
}

// SetBatterySohPct sets the "battery_soh_pct" field.
func (_u *TelemetryEventUpdate) SetBatterySohPct(v float64) *TelemetryEventUpdate {
	_u.mutation.ResetBatterySohPct()
	_u.mutation.SetBatterySohPct(v)
	return _u
}

// SetNillableBatterySohPct sets the "battery_soh_pct" field if the given value is not nil.
func (_u *TelemetryEventUpdate) SetNillableBatterySohPct(v *float64) *TelemetryEventUpdate {
	if v != nil {
		_u.SetBatterySohPct(*v)
	}
	return _u
}

// AddBatterySohPct adds value to the "battery_soh_pct" field.
func (_u *TelemetryEventUpdate) AddBatterySohPct(v float64) *TelemetryEventUpdate {
	_u.mutation.AddBatterySohPct(v)
	return _u
}

// SetDtcCodes sets the "dtc_codes" field.
func (_u *TelemetryEventUpdate) SetDtcCodes(v []string) *TelemetryEventUpdate {
	_u.mutation.SetDtcCodes(v)
	return _u
}

// AppendDtcCodes appends value to the "dtc_codes" field.
func (_u *TelemetryEventUpdate) AppendDtcCodes(v []string) *TelemetryEventUpdate {
	_u.mutation.AppendDtcCodes(v)
	return _u
}

// ClearDtcCodes clears the value of the "dtc_codes" field.
func (_u *TelemetryEventUpdate) ClearDtcCodes() *TelemetryEventUpdate {
	_u.mutation.ClearDtcCodes()
	return _u
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_u *TelemetryEventUpdate) Mutation() *TelemetryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TelemetryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelemetryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TelemetryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelemetryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TelemetryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(telemetryevent.Table, telemetryevent.Columns, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(telemetryevent.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(telemetryevent.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(telemetryevent.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(telemetryevent.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(telemetryevent.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(telemetryevent.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SpeedKmph(); ok {
		_spec.SetField(telemetryevent.FieldSpeedKmph, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpeedKmph(); ok {
		_spec.AddField(telemetryevent.FieldSpeedKmph, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OdometerKm(); ok {
		_spec.SetField(telemetryevent.FieldOdometerKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOdometerKm(); ok {
		_spec.AddField(telemetryevent.FieldOdometerKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EngineRpm(); ok {
		_spec.SetField(telemetryevent.FieldEngineRpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngineRpm(); ok {
		_spec.AddField(telemetryevent.FieldEngineRpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CoolantTempC(); ok {
		_spec.SetField(telemetryevent.FieldCoolantTempC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoolantTempC(); ok {
		_spec.AddField(telemetryevent.FieldCoolantTempC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OilTempC(); ok {
		_spec.SetField(telemetryevent.FieldOilTempC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOilTempC(); ok {
		_spec.AddField(telemetryevent.FieldOilTempC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FuelLevelPct(); ok {
		_spec.SetField(telemetryevent.FieldFuelLevelPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFuelLevelPct(); ok {
		_spec.AddField(telemetryevent.FieldFuelLevelPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatterySocPct(); ok {
		_spec.SetField(telemetryevent.FieldBatterySocPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatterySocPct(); ok {
		_spec.AddField(telemetryevent.FieldBatterySocPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatterySohPct(); ok {
		_spec.SetField(telemetryevent.FieldBatterySohPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatterySohPct(); ok {
		_spec.AddField(telemetryevent.FieldBatterySohPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DtcCodes(); ok {
		_spec.SetField(telemetryevent.FieldDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, telemetryevent.FieldDtcCodes, value)
		})
	}
	if _u.mutation.DtcCodesCleared() {
		_spec.ClearField(telemetryevent.FieldDtcCodes, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telemetryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TelemetryEventUpdateOne is the builder for updating a single TelemetryEvent entity.
type TelemetryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TelemetryEventMutation
}

// SetLatitude sets the "latitude" field.
func (_u *TelemetryEventUpdateOne) SetLatitude(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableLatitude(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *TelemetryEventUpdateOne) AddLatitude(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *TelemetryEventUpdateOne) ClearLatitude() *TelemetryEventUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *TelemetryEventUpdateOne) SetLongitude(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableLongitude(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *TelemetryEventUpdateOne) AddLongitude(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *TelemetryEventUpdateOne) ClearLongitude() *TelemetryEventUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetSpeedKmph sets the "speed_kmph" field.
func (_u *TelemetryEventUpdateOne) SetSpeedKmph(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetSpeedKmph()
	_u.mutation.SetSpeedKmph(v)
	return _u
}

// SetNillableSpeedKmph sets the "speed_kmph" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableSpeedKmph(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetSpeedKmph(*v)
	}
	return _u
}

// AddSpeedKmph adds value to the "speed_kmph" field.
func (_u *TelemetryEventUpdateOne) AddSpeedKmph(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddSpeedKmph(v)
	return _u
}

// SetOdometerKm sets the "odometer_km" field.
func (_u *TelemetryEventUpdateOne) SetOdometerKm(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetOdometerKm()
	_u.mutation.SetOdometerKm(v)
	return _u
}

// SetNillableOdometerKm sets the "odometer_km" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableOdometerKm(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetOdometerKm(*v)
	}
	return _u
}

// AddOdometerKm adds value to the "odometer_km" field.
func (_u *TelemetryEventUpdateOne) AddOdometerKm(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddOdometerKm(v)
	return _u
}

// SetEngineRpm sets the "engine_rpm" field.
func (_u *TelemetryEventUpdateOne) SetEngineRpm(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetEngineRpm()
	_u.mutation.SetEngineRpm(v)
	return _u
}

// SetNillableEngineRpm sets the "engine_rpm" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableEngineRpm(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetEngineRpm(*v)
	}
	return _u
}

// AddEngineRpm adds value to the "engine_rpm" field.
func (_u *TelemetryEventUpdateOne) AddEngineRpm(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddEngineRpm(v)
	return _u
}

// SetCoolantTempC sets the "coolant_temp_c" field.
func (_u *TelemetryEventUpdateOne) SetCoolantTempC(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetCoolantTempC()
	_u.mutation.SetCoolantTempC(v)
	return _u
}

// SetNillableCoolantTempC sets the "coolant_temp_c" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableCoolantTempC(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetCoolantTempC(*v)
	}
	return _u
}

// AddCoolantTempC adds value to the "coolant_temp_c" field.
func (_u *TelemetryEventUpdateOne) AddCoolantTempC(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddCoolantTempC(v)
	return _u
}

// SetOilTempC sets the "oil_temp_c" field.
func (_u *TelemetryEventUpdateOne) SetOilTempC(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetOilTempC()
	_u.mutation.SetOilTempC(v)
	return _u
}

// SetNillableOilTempC sets the "oil_temp_c" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableOilTempC(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetOilTempC(*v)
	}
	return _u
}

// AddOilTempC adds value to the "oil_temp_c" field.
func (_u *TelemetryEventUpdateOne) AddOilTempC(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddOilTempC(v)
	return _u
}

// SetFuelLevelPct sets the "fuel_level_pct" field.
func (_u *TelemetryEventUpdateOne) SetFuelLevelPct(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetFuelLevelPct()
	_u.mutation.SetFuelLevelPct(v)
	return _u
}

// SetNillableFuelLevelPct sets the "fuel_level_pct" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableFuelLevelPct(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetFuelLevelPct(*v)
	}
	return _u
}

// AddFuelLevelPct adds value to the "fuel_level_pct" field.
func (_u *TelemetryEventUpdateOne) AddFuelLevelPct(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddFuelLevelPct(v)
	return _u
}

// SetBatterySocPct sets the "battery_soc_pct" field.
func (_u *TelemetryEventUpdateOne) SetBatterySocPct(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetBatterySocPct()
	_u.mutation.SetBatterySocPct(v)
	return _u
}

// SetNillableBatterySocPct sets the "battery_soc_pct" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableBatterySocPct(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetBatterySocPct(*v)
	}
	return _u
}

// AddBatterySocPct adds value to the "battery_soc_pct" field.
func (_u *TelemetryEventUpdateOne) AddBatterySocPct(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddBatterySocPct(v)
	return _u
}

// SetBatterySohPct sets the "battery_soh_pct" field.
func (_u *TelemetryEventUpdateOne) SetBatterySohPct(v float64) *TelemetryEventUpdateOne {
	_u.mutation.ResetBatterySohPct()
	_u.mutation.SetBatterySohPct(v)
	return _u
}

// SetNillableBatterySohPct sets the "battery_soh_pct" field if the given value is not nil.
func (_u *TelemetryEventUpdateOne) SetNillableBatterySohPct(v *float64) *TelemetryEventUpdateOne {
	if v != nil {
		_u.SetBatterySohPct(*v)
	}
	return _u
}

// AddBatterySohPct adds value to the "battery_soh_pct" field.
func (_u *TelemetryEventUpdateOne) AddBatterySohPct(v float64) *TelemetryEventUpdateOne {
	_u.mutation.AddBatterySohPct(v)
	return _u
}

// SetDtcCodes sets the "dtc_codes" field.
func (_u *TelemetryEventUpdateOne) SetDtcCodes(v []string) *TelemetryEventUpdateOne {
	_u.mutation.SetDtcCodes(v)
	return _u
}

// AppendDtcCodes appends value to the "dtc_codes" field.
func (_u *TelemetryEventUpdateOne) AppendDtcCodes(v []string) *TelemetryEventUpdateOne {
	_u.mutation.AppendDtcCodes(v)
	return _u
}

// ClearDtcCodes clears the value of the "dtc_codes" field.
func (_u *TelemetryEventUpdateOne) ClearDtcCodes() *TelemetryEventUpdateOne {
	_u.mutation.ClearDtcCodes()
	return _u
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_u *TelemetryEventUpdateOne) Mutation() *TelemetryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TelemetryEventUpdate builder.
func (_u *TelemetryEventUpdateOne) Where(ps ...predicate.TelemetryEvent) *TelemetryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TelemetryEventUpdateOne) Select(field string, fields ...string) *TelemetryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TelemetryEvent entity.
func (_u *TelemetryEventUpdateOne) Save(ctx context.Context) (*TelemetryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TelemetryEventUpdateOne) SaveX(ctx context.Context) *TelemetryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TelemetryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TelemetryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TelemetryEventUpdateOne) sqlSave(ctx context.Context) (_node *TelemetryEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(telemetryevent.Table, telemetryevent.Columns, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TelemetryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, telemetryevent.FieldID)
		for _, f := range fields {
			if !telemetryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != telemetryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(telemetryevent.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(telemetryevent.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(telemetryevent.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(telemetryevent.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(telemetryevent.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(telemetryevent.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SpeedKmph(); ok {
		_spec.SetField(telemetryevent.FieldSpeedKmph, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSpeedKmph(); ok {
		_spec.AddField(telemetryevent.FieldSpeedKmph, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OdometerKm(); ok {
		_spec.SetField(telemetryevent.FieldOdometerKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOdometerKm(); ok {
		_spec.AddField(telemetryevent.FieldOdometerKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EngineRpm(); ok {
		_spec.SetField(telemetryevent.FieldEngineRpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEngineRpm(); ok {
		_spec.AddField(telemetryevent.FieldEngineRpm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CoolantTempC(); ok {
		_spec.SetField(telemetryevent.FieldCoolantTempC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCoolantTempC(); ok {
		_spec.AddField(telemetryevent.FieldCoolantTempC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.OilTempC(); ok {
		_spec.SetField(telemetryevent.FieldOilTempC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedOilTempC(); ok {
		_spec.AddField(telemetryevent.FieldOilTempC, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.FuelLevelPct(); ok {
		_spec.SetField(telemetryevent.FieldFuelLevelPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFuelLevelPct(); ok {
		_spec.AddField(telemetryevent.FieldFuelLevelPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatterySocPct(); ok {
		_spec.SetField(telemetryevent.FieldBatterySocPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatterySocPct(); ok {
		_spec.AddField(telemetryevent.FieldBatterySocPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BatterySohPct(); ok {
		_spec.SetField(telemetryevent.FieldBatterySohPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBatterySohPct(); ok {
		_spec.AddField(telemetryevent.FieldBatterySohPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DtcCodes(); ok {
		_spec.SetField(telemetryevent.FieldDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, telemetryevent.FieldDtcCodes, value)
		})
	}
	if _u.mutation.DtcCodesCleared() {
		_spec.ClearField(telemetryevent.FieldDtcCodes, field.TypeJSON)
	}
	_node = &TelemetryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{telemetryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
