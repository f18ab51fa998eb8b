// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/telemetryevent"
)

// TelemetryEvent is the model entity for the TelemetryEvent schema.
type TelemetryEvent struct {
	config `json:"-"`
	// ID of the ent.
	// External or generated key (evt_<hex>)
	ID string `json:"id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// Sample instant (UTC) as reported by the vehicle
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Latitude holds the value of the "latitude" field.
	Latitude *float64 `json:"latitude,omitempty"`
	// Longitude holds the value of the "longitude" field.
	Longitude *float64 `json:"longitude,omitempty"`
	// SpeedKmph holds the value of the "speed_kmph" field.
	SpeedKmph float64 `json:"speed_kmph,omitempty"`
	// OdometerKm holds the value of the "odometer_km" field.
	OdometerKm float64 `json:"odometer_km,omitempty"`
	// EngineRpm holds the value of the "engine_rpm" field.
	EngineRpm float64 `json:"engine_rpm,omitempty"`
	// CoolantTempC holds the value of the "coolant_temp_c" field.
	CoolantTempC float64 `json:"coolant_temp_c,omitempty"`
	// OilTempC holds the value of the "oil_temp_c" field.
	OilTempC float64 `json:"oil_temp_c,omitempty"`
	// FuelLevelPct holds the value of the "fuel_level_pct" field.
	FuelLevelPct float64 `json:"fuel_level_pct,omitempty"`
	// BatterySocPct holds the value of the "battery_soc_pct" field.
	BatterySocPct float64 `json:"battery_soc_pct,omitempty"`
	// BatterySohPct holds the value of the "battery_soh_pct" field.
	BatterySohPct float64 `json:"battery_soh_pct,omitempty"`
	// Ordered diagnostic trouble codes present in the sample
	DtcCodes []string `json:"dtc_codes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TelemetryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case telemetryevent.FieldDtcCodes:
			values[i] = new([]byte)
		case telemetryevent.FieldLatitude, telemetryevent.FieldLongitude, telemetryevent.FieldSpeedKmph, telemetryevent.FieldOdometerKm, telemetryevent.FieldEngineRpm, telemetryevent.FieldCoolantTempC, telemetryevent.FieldOilTempC, telemetryevent.FieldFuelLevelPct, telemetryevent.FieldBatterySocPct, telemetryevent.FieldBatterySohPct:
			values[i] = new(sql.NullFloat64)
		case telemetryevent.FieldID, telemetryevent.FieldVehicleID:
			values[i] = new(sql.NullString)
		case telemetryevent.FieldTimestamp, telemetryevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TelemetryEvent fields.
func (_m *TelemetryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case telemetryevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case telemetryevent.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case telemetryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case telemetryevent.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = new(float64)
				*_m.Latitude = value.Float64
			}
		case telemetryevent.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = new(float64)
				*_m.Longitude = value.Float64
			}
		case telemetryevent.FieldSpeedKmph:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field speed_kmph", values[i])
			} else if value.Valid {
				_m.SpeedKmph = value.Float64
			}
		case telemetryevent.FieldOdometerKm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field odometer_km", values[i])
			} else if value.Valid {
				_m.OdometerKm = value.Float64
			}
		case telemetryevent.FieldEngineRpm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engine_rpm", values[i])
			} else if value.Valid {
				_m.EngineRpm = value.Float64
			}
		case telemetryevent.FieldCoolantTempC:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field coolant_temp_c", values[i])
			} else if value.Valid {
				_m.CoolantTempC = value.Float64
			}
		case telemetryevent.FieldOilTempC:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field oil_temp_c", values[i])
			} else if value.Valid {
				_m.OilTempC = value.Float64
			}
		case telemetryevent.FieldFuelLevelPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fuel_level_pct", values[i])
			} else if value.Valid {
				_m.FuelLevelPct = value.Float64
			}
		case telemetryevent.FieldBatterySocPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field battery_soc_pct", values[i])
			} else if value.Valid {
				_m.BatterySocPct = value.Float64
			}
		case telemetryevent.FieldBatterySohPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field battery_soh_pct", values[i])
			} else if value.Valid {
				_m.BatterySohPct = value.Float64
			}
		case telemetryevent.FieldDtcCodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dtc_codes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DtcCodes); err != nil {
					return fmt.Errorf("unmarshal field dtc_codes: %w", err)
				}
			}
		case telemetryevent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TelemetryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TelemetryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TelemetryEvent.
// Note that you need to call TelemetryEvent.Unwrap() before calling this method if this TelemetryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TelemetryEvent) Update() *TelemetryEventUpdateOne {
	return NewTelemetryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TelemetryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TelemetryEvent) Unwrap() *TelemetryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TelemetryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TelemetryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TelemetryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Latitude; v != nil {
		builder.WriteString("latitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Longitude; v != nil {
		builder.WriteString("longitude=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("speed_kmph=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpeedKmph))
	builder.WriteString(", ")
	builder.WriteString("odometer_km=")
	builder.WriteString(fmt.Sprintf("%v", _m.OdometerKm))
	builder.WriteString(", ")
	builder.WriteString("engine_rpm=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngineRpm))
	builder.WriteString(", ")
	builder.WriteString("coolant_temp_c=")
	builder.WriteString(fmt.Sprintf("%v", _m.CoolantTempC))
	builder.WriteString(", ")
	builder.WriteString("oil_temp_c=")
	builder.WriteString(fmt.Sprintf("%v", _m.OilTempC))
	builder.WriteString(", ")
	builder.WriteString("fuel_level_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.FuelLevelPct))
	builder.WriteString(", ")
	builder.WriteString("battery_soc_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatterySocPct))
	builder.WriteString(", ")
	builder.WriteString("battery_soh_pct=")
	builder.WriteString(fmt.Sprintf("%v", _m.BatterySohPct))
	builder.WriteString(", ")
	builder.WriteString("dtc_codes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DtcCodes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TelemetryEvents is a parsable slice of TelemetryEvent.
type TelemetryEvents []*TelemetryEvent
