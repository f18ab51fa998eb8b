// Code generated by ent, DO NOT EDIT.

package telemetryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the telemetryevent type in the database.
	Label = "telemetry_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldVehicleID holds the string denoting the vehicle_id field in the database.
	FieldVehicleID = "vehicle_id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLatitude holds the string denoting the latitude field in the database.
	FieldLatitude = "latitude"
	// FieldLongitude holds the string denoting the longitude field in the database.
	FieldLongitude = "longitude"
	// FieldSpeedKmph holds the string denoting the speed_kmph field in the database.
	FieldSpeedKmph = "speed_kmph"
	// FieldOdometerKm holds the string denoting the odometer_km field in the database.
	FieldOdometerKm = "odometer_km"
	// FieldEngineRpm holds the string denoting the engine_rpm field in the database.
	FieldEngineRpm = "engine_rpm"
	// FieldCoolantTempC holds the string denoting the coolant_temp_c field in the database.
	FieldCoolantTempC = "coolant_temp_c"
	// FieldOilTempC holds the string denoting the oil_temp_c field in the database.
	FieldOilTempC = "oil_temp_c"
	// FieldFuelLevelPct holds the string denoting the fuel_level_pct field in the database.
	FieldFuelLevelPct = "fuel_level_pct"
	// FieldBatterySocPct holds the string denoting the battery_soc_pct field in the database.
	FieldBatterySocPct = "battery_soc_pct"
	// FieldBatterySohPct holds the string denoting the battery_soh_pct field in the database.
	FieldBatterySohPct = "battery_soh_pct"
	// FieldDtcCodes holds the string denoting the dtc_codes field in the database.
	FieldDtcCodes = "dtc_codes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the telemetryevent in the database.
	Table = "telemetry_events"
)

// Columns holds all SQL columns for telemetryevent fields.
var Columns = []string{
	FieldID,
	FieldVehicleID,
	FieldTimestamp,
	FieldLatitude,
	FieldLongitude,
	FieldSpeedKmph,
	FieldOdometerKm,
	FieldEngineRpm,
	FieldCoolantTempC,
	FieldOilTempC,
	FieldFuelLevelPct,
	FieldBatterySocPct,
	FieldBatterySohPct,
	FieldDtcCodes,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSpeedKmph holds the default value on creation for the "speed_kmph" field.
	DefaultSpeedKmph float64
	// DefaultOdometerKm holds the default value on creation for the "odometer_km" field.
	DefaultOdometerKm float64
	// DefaultEngineRpm holds the default value on creation for the "engine_rpm" field.
	DefaultEngineRpm float64
	// DefaultCoolantTempC holds the default value on creation for the "coolant_temp_c" field.
	DefaultCoolantTempC float64
	// DefaultOilTempC holds the default value on creation for the "oil_temp_c" field.
	DefaultOilTempC float64
	// DefaultFuelLevelPct holds the default value on creation for the "fuel_level_pct" field.
	DefaultFuelLevelPct float64
	// DefaultBatterySocPct holds the default value on creation for the "battery_soc_pct" field.
	DefaultBatterySocPct float64
	// DefaultBatterySohPct holds the default value on creation for the "battery_soh_pct" field.
	DefaultBatterySohPct float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the TelemetryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVehicleID orders the results by the vehicle_id field.
func ByVehicleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehicleID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLatitude orders the results by the latitude field.
func ByLatitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatitude, opts...).ToFunc()
}

// ByLongitude orders the results by the longitude field.
func ByLongitude(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLongitude, opts...).ToFunc()
}

// BySpeedKmph orders the results by the speed_kmph field.
func BySpeedKmph(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpeedKmph, opts...).ToFunc()
}

// ByOdometerKm orders the results by the odometer_km field.
func ByOdometerKm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOdometerKm, opts...).ToFunc()
}

// ByEngineRpm orders the results by the engine_rpm field.
func ByEngineRpm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngineRpm, opts...).ToFunc()
}

// ByCoolantTempC orders the results by the coolant_temp_c field.
func ByCoolantTempC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoolantTempC, opts...).ToFunc()
}

// ByOilTempC orders the results by the oil_temp_c field.
func ByOilTempC(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOilTempC, opts...).ToFunc()
}

// ByFuelLevelPct orders the results by the fuel_level_pct field.
func ByFuelLevelPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFuelLevelPct, opts...).ToFunc()
}

// ByBatterySocPct orders the results by the battery_soc_pct field.
func ByBatterySocPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatterySocPct, opts...).ToFunc()
}

// ByBatterySohPct orders the results by the battery_soh_pct field.
func ByBatterySohPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatterySohPct, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
