// Code generated by ent, DO NOT EDIT.

package telemetryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldID, id))
}

// VehicleID applies equality check predicate on the "vehicle_id" field. It's identical to VehicleIDEQ.
func VehicleID(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldVehicleID, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Latitude applies equality check predicate on the "latitude" field. It's identical to LatitudeEQ.
func Latitude(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldLatitude, v))
}

// Longitude applies equality check predicate on the "longitude" field. It's identical to LongitudeEQ.
func Longitude(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldLongitude, v))
}

// SpeedKmph applies equality check predicate on the "speed_kmph" field. It's identical to SpeedKmphEQ.
func SpeedKmph(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSpeedKmph, v))
}

// OdometerKm applies equality check predicate on the "odometer_km" field. It's identical to OdometerKmEQ.
func OdometerKm(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldOdometerKm, v))
}

// EngineRpm applies equality check predicate on the "engine_rpm" field. It's identical to EngineRpmEQ.
func EngineRpm(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldEngineRpm, v))
}

// CoolantTempC applies equality check predicate on the "coolant_temp_c" field. It's identical to CoolantTempCEQ.
func CoolantTempC(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldCoolantTempC, v))
}

// OilTempC applies equality check predicate on the "oil_temp_c" field. It's identical to OilTempCEQ.
func OilTempC(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldOilTempC, v))
}

// FuelLevelPct applies equality check predicate on the "fuel_level_pct" field. It's identical to FuelLevelPctEQ.
func FuelLevelPct(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldFuelLevelPct, v))
}

// BatterySocPct applies equality check predicate on the "battery_soc_pct" field. It's identical to BatterySocPctEQ.
func BatterySocPct(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldBatterySocPct, v))
}

// BatterySohPct applies equality check predicate on the "battery_soh_pct" field. It's identical to BatterySohPctEQ.
func BatterySohPct(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldBatterySohPct, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// VehicleIDEQ applies the EQ predicate on the "vehicle_id" field.
func VehicleIDEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldVehicleID, v))
}

// VehicleIDNEQ applies the NEQ predicate on the "vehicle_id" field.
func VehicleIDNEQ(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldVehicleID, v))
}

// VehicleIDIn applies the In predicate on the "vehicle_id" field.
func VehicleIDIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldVehicleID, vs...))
}

// VehicleIDNotIn applies the NotIn predicate on the "vehicle_id" field.
func VehicleIDNotIn(vs ...string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldVehicleID, vs...))
}

// VehicleIDGT applies the GT predicate on the "vehicle_id" field.
func VehicleIDGT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldVehicleID, v))
}

// VehicleIDGTE applies the GTE predicate on the "vehicle_id" field.
func VehicleIDGTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldVehicleID, v))
}

// VehicleIDLT applies the LT predicate on the "vehicle_id" field.
func VehicleIDLT(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldVehicleID, v))
}

// VehicleIDLTE applies the LTE predicate on the "vehicle_id" field.
func VehicleIDLTE(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldVehicleID, v))
}

// VehicleIDContains applies the Contains predicate on the "vehicle_id" field.
func VehicleIDContains(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContains(FieldVehicleID, v))
}

// VehicleIDHasPrefix applies the HasPrefix predicate on the "vehicle_id" field.
func VehicleIDHasPrefix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasPrefix(FieldVehicleID, v))
}

// VehicleIDHasSuffix applies the HasSuffix predicate on the "vehicle_id" field.
func VehicleIDHasSuffix(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldHasSuffix(FieldVehicleID, v))
}

// VehicleIDEqualFold applies the EqualFold predicate on the "vehicle_id" field.
func VehicleIDEqualFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEqualFold(FieldVehicleID, v))
}

// VehicleIDContainsFold applies the ContainsFold predicate on the "vehicle_id" field.
func VehicleIDContainsFold(v string) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldContainsFold(FieldVehicleID, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// LatitudeEQ applies the EQ predicate on the "latitude" field.
func LatitudeEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldLatitude, v))
}

// LatitudeNEQ applies the NEQ predicate on the "latitude" field.
func LatitudeNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldLatitude, v))
}

// LatitudeIn applies the In predicate on the "latitude" field.
func LatitudeIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldLatitude, vs...))
}

// LatitudeNotIn applies the NotIn predicate on the "latitude" field.
func LatitudeNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldLatitude, vs...))
}

// LatitudeGT applies the GT predicate on the "latitude" field.
func LatitudeGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldLatitude, v))
}

// LatitudeGTE applies the GTE predicate on the "latitude" field.
func LatitudeGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldLatitude, v))
}

// LatitudeLT applies the LT predicate on the "latitude" field.
func LatitudeLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldLatitude, v))
}

// LatitudeLTE applies the LTE predicate on the "latitude" field.
func LatitudeLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldLatitude, v))
}

// LatitudeIsNil applies the IsNil predicate on the "latitude" field.
func LatitudeIsNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIsNull(FieldLatitude))
}

// LatitudeNotNil applies the NotNil predicate on the "latitude" field.
func LatitudeNotNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotNull(FieldLatitude))
}

// LongitudeEQ applies the EQ predicate on the "longitude" field.
func LongitudeEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldLongitude, v))
}

// LongitudeNEQ applies the NEQ predicate on the "longitude" field.
func LongitudeNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldLongitude, v))
}

// LongitudeIn applies the In predicate on the "longitude" field.
func LongitudeIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldLongitude, vs...))
}

// LongitudeNotIn applies the NotIn predicate on the "longitude" field.
func LongitudeNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldLongitude, vs...))
}

// LongitudeGT applies the GT predicate on the "longitude" field.
func LongitudeGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldLongitude, v))
}

// LongitudeGTE applies the GTE predicate on the "longitude" field.
func LongitudeGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldLongitude, v))
}

// LongitudeLT applies the LT predicate on the "longitude" field.
func LongitudeLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldLongitude, v))
}

// LongitudeLTE applies the LTE predicate on the "longitude" field.
func LongitudeLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldLongitude, v))
}

// LongitudeIsNil applies the IsNil predicate on the "longitude" field.
func LongitudeIsNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIsNull(FieldLongitude))
}

// LongitudeNotNil applies the NotNil predicate on the "longitude" field.
func LongitudeNotNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotNull(FieldLongitude))
}

// SpeedKmphEQ applies the EQ predicate on the "speed_kmph" field.
func SpeedKmphEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldSpeedKmph, v))
}

// SpeedKmphNEQ applies the NEQ predicate on the "speed_kmph" field.
func SpeedKmphNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldSpeedKmph, v))
}

// SpeedKmphIn applies the In predicate on the "speed_kmph" field.
func SpeedKmphIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldSpeedKmph, vs...))
}

// SpeedKmphNotIn applies the NotIn predicate on the "speed_kmph" field.
func SpeedKmphNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldSpeedKmph, vs...))
}

// SpeedKmphGT applies the GT predicate on the "speed_kmph" field.
func SpeedKmphGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldSpeedKmph, v))
}

// SpeedKmphGTE applies the GTE predicate on the "speed_kmph" field.
func SpeedKmphGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldSpeedKmph, v))
}

// SpeedKmphLT applies the LT predicate on the "speed_kmph" field.
func SpeedKmphLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldSpeedKmph, v))
}

// SpeedKmphLTE applies the LTE predicate on the "speed_kmph" field.
func SpeedKmphLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldSpeedKmph, v))
}

// OdometerKmEQ applies the EQ predicate on the "odometer_km" field.
func OdometerKmEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldOdometerKm, v))
}

// OdometerKmNEQ applies the NEQ predicate on the "odometer_km" field.
func OdometerKmNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldOdometerKm, v))
}

// OdometerKmIn applies the In predicate on the "odometer_km" field.
func OdometerKmIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldOdometerKm, vs...))
}

// OdometerKmNotIn applies the NotIn predicate on the "odometer_km" field.
func OdometerKmNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldOdometerKm, vs...))
}

// OdometerKmGT applies the GT predicate on the "odometer_km" field.
func OdometerKmGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldOdometerKm, v))
}

// OdometerKmGTE applies the GTE predicate on the "odometer_km" field.
func OdometerKmGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldOdometerKm, v))
}

// OdometerKmLT applies the LT predicate on the "odometer_km" field.
func OdometerKmLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldOdometerKm, v))
}

// OdometerKmLTE applies the LTE predicate on the "odometer_km" field.
func OdometerKmLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldOdometerKm, v))
}

// EngineRpmEQ applies the EQ predicate on the "engine_rpm" field.
func EngineRpmEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldEngineRpm, v))
}

// EngineRpmNEQ applies the NEQ predicate on the "engine_rpm" field.
func EngineRpmNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldEngineRpm, v))
}

// EngineRpmIn applies the In predicate on the "engine_rpm" field.
func EngineRpmIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldEngineRpm, vs...))
}

// EngineRpmNotIn applies the NotIn predicate on the "engine_rpm" field.
func EngineRpmNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldEngineRpm, vs...))
}

// EngineRpmGT applies the GT predicate on the "engine_rpm" field.
func EngineRpmGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldEngineRpm, v))
}

// EngineRpmGTE applies the GTE predicate on the "engine_rpm" field.
func EngineRpmGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldEngineRpm, v))
}

// EngineRpmLT applies the LT predicate on the "engine_rpm" field.
func EngineRpmLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldEngineRpm, v))
}

// EngineRpmLTE applies the LTE predicate on the "engine_rpm" field.
func EngineRpmLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldEngineRpm, v))
}

// CoolantTempCEQ applies the EQ predicate on the "coolant_temp_c" field.
func CoolantTempCEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldCoolantTempC, v))
}

// CoolantTempCNEQ applies the NEQ predicate on the "coolant_temp_c" field.
func CoolantTempCNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldCoolantTempC, v))
}

// CoolantTempCIn applies the In predicate on the "coolant_temp_c" field.
func CoolantTempCIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldCoolantTempC, vs...))
}

// CoolantTempCNotIn applies the NotIn predicate on the "coolant_temp_c" field.
func CoolantTempCNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldCoolantTempC, vs...))
}

// CoolantTempCGT applies the GT predicate on the "coolant_temp_c" field.
func CoolantTempCGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldCoolantTempC, v))
}

// CoolantTempCGTE applies the GTE predicate on the "coolant_temp_c" field.
func CoolantTempCGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldCoolantTempC, v))
}

// CoolantTempCLT applies the LT predicate on the "coolant_temp_c" field.
func CoolantTempCLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldCoolantTempC, v))
}

// CoolantTempCLTE applies the LTE predicate on the "coolant_temp_c" field.
func CoolantTempCLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldCoolantTempC, v))
}

// OilTempCEQ applies the EQ predicate on the "oil_temp_c" field.
func OilTempCEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldOilTempC, v))
}

// OilTempCNEQ applies the NEQ predicate on the "oil_temp_c" field.
func OilTempCNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldOilTempC, v))
}

// OilTempCIn applies the In predicate on the "oil_temp_c" field.
func OilTempCIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldOilTempC, vs...))
}

// OilTempCNotIn applies the NotIn predicate on the "oil_temp_c" field.
func OilTempCNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldOilTempC, vs...))
}

// OilTempCGT applies the GT predicate on the "oil_temp_c" field.
func OilTempCGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldOilTempC, v))
}

// OilTempCGTE applies the GTE predicate on the "oil_temp_c" field.
func OilTempCGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldOilTempC, v))
}

// OilTempCLT applies the LT predicate on the "oil_temp_c" field.
func OilTempCLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldOilTempC, v))
}

// OilTempCLTE applies the LTE predicate on the "oil_temp_c" field.
func OilTempCLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldOilTempC, v))
}

// FuelLevelPctEQ applies the EQ predicate on the "fuel_level_pct" field.
func FuelLevelPctEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldFuelLevelPct, v))
}

// FuelLevelPctNEQ applies the NEQ predicate on the "fuel_level_pct" field.
func FuelLevelPctNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldFuelLevelPct, v))
}

// FuelLevelPctIn applies the In predicate on the "fuel_level_pct" field.
func FuelLevelPctIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldFuelLevelPct, vs...))
}

// FuelLevelPctNotIn applies the NotIn predicate on the "fuel_level_pct" field.
func FuelLevelPctNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldFuelLevelPct, vs...))
}

// FuelLevelPctGT applies the GT predicate on the "fuel_level_pct" field.
func FuelLevelPctGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldFuelLevelPct, v))
}

// FuelLevelPctGTE applies the GTE predicate on the "fuel_level_pct" field.
func FuelLevelPctGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldFuelLevelPct, v))
}

// FuelLevelPctLT applies the LT predicate on the "fuel_level_pct" field.
func FuelLevelPctLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldFuelLevelPct, v))
}

// FuelLevelPctLTE applies the LTE predicate on the "fuel_level_pct" field.
func FuelLevelPctLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldFuelLevelPct, v))
}

// BatterySocPctEQ applies the EQ predicate on the "battery_soc_pct" field.
func BatterySocPctEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldBatterySocPct, v))
}

// BatterySocPctNEQ applies the NEQ predicate on the "battery_soc_pct" field.
func BatterySocPctNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldBatterySocPct, v))
}

// BatterySocPctIn applies the In predicate on the "battery_soc_pct" field.
func BatterySocPctIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldBatterySocPct, vs...))
}

// BatterySocPctNotIn applies the NotIn predicate on the "battery_soc_pct" field.
func BatterySocPctNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldBatterySocPct, vs...))
}

// BatterySocPctGT applies the GT predicate on the "battery_soc_pct" field.
func BatterySocPctGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldBatterySocPct, v))
}

// BatterySocPctGTE applies the GTE predicate on the "battery_soc_pct" field.
func BatterySocPctGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldBatterySocPct, v))
}

// BatterySocPctLT applies the LT predicate on the "battery_soc_pct" field.
func BatterySocPctLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldBatterySocPct, v))
}

// BatterySocPctLTE applies the LTE predicate on the "battery_soc_pct" field.
func BatterySocPctLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldBatterySocPct, v))
}

// BatterySohPctEQ applies the EQ predicate on the "battery_soh_pct" field.
func BatterySohPctEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldBatterySohPct, v))
}

// BatterySohPctNEQ applies the NEQ predicate on the "battery_soh_pct" field.
func BatterySohPctNEQ(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldBatterySohPct, v))
}

// BatterySohPctIn applies the In predicate on the "battery_soh_pct" field.
func BatterySohPctIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldBatterySohPct, vs...))
}

// BatterySohPctNotIn applies the NotIn predicate on the "battery_soh_pct" field.
func BatterySohPctNotIn(vs ...float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldBatterySohPct, vs...))
}

// BatterySohPctGT applies the GT predicate on the "battery_soh_pct" field.
func BatterySohPctGT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldBatterySohPct, v))
}

// BatterySohPctGTE applies the GTE predicate on the "battery_soh_pct" field.
func BatterySohPctGTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldBatterySohPct, v))
}

// BatterySohPctLT applies the LT predicate on the "battery_soh_pct" field.
func BatterySohPctLT(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldBatterySohPct, v))
}

// BatterySohPctLTE applies the LTE predicate on the "battery_soh_pct" field.
func BatterySohPctLTE(v float64) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldBatterySohPct, v))
}

// DtcCodesIsNil applies the IsNil predicate on the "dtc_codes" field.
func DtcCodesIsNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIsNull(FieldDtcCodes))
}

// DtcCodesNotNil applies the NotNil predicate on the "dtc_codes" field.
func DtcCodesNotNil() predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotNull(FieldDtcCodes))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TelemetryEvent) predicate.TelemetryEvent {
	return predicate.TelemetryEvent(sql.NotPredicates(p))
}
