// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fleetsense/fleetsense/ent/anomalycase"
	"github.com/fleetsense/fleetsense/ent/booking"
	"github.com/fleetsense/fleetsense/ent/busmessage"
	"github.com/fleetsense/fleetsense/ent/callcontext"
	"github.com/fleetsense/fleetsense/ent/communicationcase"
	"github.com/fleetsense/fleetsense/ent/diagnosiscase"
	"github.com/fleetsense/fleetsense/ent/engagementcase"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
	"github.com/fleetsense/fleetsense/ent/humanreview"
	"github.com/fleetsense/fleetsense/ent/manufacturingcase"
	"github.com/fleetsense/fleetsense/ent/pipelinestate"
	"github.com/fleetsense/fleetsense/ent/rcacase"
	"github.com/fleetsense/fleetsense/ent/schedulingcase"
	"github.com/fleetsense/fleetsense/ent/schema"
	"github.com/fleetsense/fleetsense/ent/telemetryevent"
	"github.com/fleetsense/fleetsense/ent/vehicle"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	anomalycaseFields := schema.AnomalyCase{}.Fields()
	_ = anomalycaseFields
	// anomalycaseDescAnomalyDetected is the schema descriptor for anomaly_detected field.
	anomalycaseDescAnomalyDetected := anomalycaseFields[2].Descriptor()
	// anomalycase.DefaultAnomalyDetected holds the default value on creation for the anomaly_detected field.
	anomalycase.DefaultAnomalyDetected = anomalycaseDescAnomalyDetected.Default.(bool)
	// anomalycaseDescCreatedAt is the schema descriptor for created_at field.
	anomalycaseDescCreatedAt := anomalycaseFields[7].Descriptor()
	// anomalycase.DefaultCreatedAt holds the default value on creation for the created_at field.
	anomalycase.DefaultCreatedAt = anomalycaseDescCreatedAt.Default.(func() time.Time)
	bookingFields := schema.Booking{}.Fields()
	_ = bookingFields
	// bookingDescCreatedAt is the schema descriptor for created_at field.
	bookingDescCreatedAt := bookingFields[6].Descriptor()
	// booking.DefaultCreatedAt holds the default value on creation for the created_at field.
	booking.DefaultCreatedAt = bookingDescCreatedAt.Default.(func() time.Time)
	busmessageFields := schema.BusMessage{}.Fields()
	_ = busmessageFields
	// busmessageDescAttempts is the schema descriptor for attempts field.
	busmessageDescAttempts := busmessageFields[4].Descriptor()
	// busmessage.DefaultAttempts holds the default value on creation for the attempts field.
	busmessage.DefaultAttempts = busmessageDescAttempts.Default.(int)
	// busmessageDescAvailableAt is the schema descriptor for available_at field.
	busmessageDescAvailableAt := busmessageFields[5].Descriptor()
	// busmessage.DefaultAvailableAt holds the default value on creation for the available_at field.
	busmessage.DefaultAvailableAt = busmessageDescAvailableAt.Default.(func() time.Time)
	// busmessageDescCreatedAt is the schema descriptor for created_at field.
	busmessageDescCreatedAt := busmessageFields[7].Descriptor()
	// busmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	busmessage.DefaultCreatedAt = busmessageDescCreatedAt.Default.(func() time.Time)
	callcontextFields := schema.CallContext{}.Fields()
	_ = callcontextFields
	// callcontextDescCreatedAt is the schema descriptor for created_at field.
	callcontextDescCreatedAt := callcontextFields[7].Descriptor()
	// callcontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	callcontext.DefaultCreatedAt = callcontextDescCreatedAt.Default.(func() time.Time)
	communicationcaseFields := schema.CommunicationCase{}.Fields()
	_ = communicationcaseFields
	// communicationcaseDescCreatedAt is the schema descriptor for created_at field.
	communicationcaseDescCreatedAt := communicationcaseFields[12].Descriptor()
	// communicationcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	communicationcase.DefaultCreatedAt = communicationcaseDescCreatedAt.Default.(func() time.Time)
	// communicationcaseDescUpdatedAt is the schema descriptor for updated_at field.
	communicationcaseDescUpdatedAt := communicationcaseFields[13].Descriptor()
	// communicationcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	communicationcase.DefaultUpdatedAt = communicationcaseDescUpdatedAt.Default.(func() time.Time)
	// communicationcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	communicationcase.UpdateDefaultUpdatedAt = communicationcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
	diagnosiscaseFields := schema.DiagnosisCase{}.Fields()
	_ = diagnosiscaseFields
	// diagnosiscaseDescCreatedAt is the schema descriptor for created_at field.
	diagnosiscaseDescCreatedAt := diagnosiscaseFields[9].Descriptor()
	// diagnosiscase.DefaultCreatedAt holds the default value on creation for the created_at field.
	diagnosiscase.DefaultCreatedAt = diagnosiscaseDescCreatedAt.Default.(func() time.Time)
	engagementcaseFields := schema.EngagementCase{}.Fields()
	_ = engagementcaseFields
	// engagementcaseDescCreatedAt is the schema descriptor for created_at field.
	engagementcaseDescCreatedAt := engagementcaseFields[11].Descriptor()
	// engagementcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	engagementcase.DefaultCreatedAt = engagementcaseDescCreatedAt.Default.(func() time.Time)
	feedbackcaseFields := schema.FeedbackCase{}.Fields()
	_ = feedbackcaseFields
	// feedbackcaseDescCreatedAt is the schema descriptor for created_at field.
	feedbackcaseDescCreatedAt := feedbackcaseFields[10].Descriptor()
	// feedbackcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedbackcase.DefaultCreatedAt = feedbackcaseDescCreatedAt.Default.(func() time.Time)
	humanreviewFields := schema.HumanReview{}.Fields()
	_ = humanreviewFields
	// humanreviewDescCreatedAt is the schema descriptor for created_at field.
	humanreviewDescCreatedAt := humanreviewFields[6].Descriptor()
	// humanreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	humanreview.DefaultCreatedAt = humanreviewDescCreatedAt.Default.(func() time.Time)
	manufacturingcaseFields := schema.ManufacturingCase{}.Fields()
	_ = manufacturingcaseFields
	// manufacturingcaseDescVehicleRecurrenceCount is the schema descriptor for vehicle_recurrence_count field.
	manufacturingcaseDescVehicleRecurrenceCount := manufacturingcaseFields[8].Descriptor()
	// manufacturingcase.DefaultVehicleRecurrenceCount holds the default value on creation for the vehicle_recurrence_count field.
	manufacturingcase.DefaultVehicleRecurrenceCount = manufacturingcaseDescVehicleRecurrenceCount.Default.(int)
	// manufacturingcaseDescAnomalyTypeRecurrenceCount is the schema descriptor for anomaly_type_recurrence_count field.
	manufacturingcaseDescAnomalyTypeRecurrenceCount := manufacturingcaseFields[9].Descriptor()
	// manufacturingcase.DefaultAnomalyTypeRecurrenceCount holds the default value on creation for the anomaly_type_recurrence_count field.
	manufacturingcase.DefaultAnomalyTypeRecurrenceCount = manufacturingcaseDescAnomalyTypeRecurrenceCount.Default.(int)
	// manufacturingcaseDescComponentRecurrenceCount is the schema descriptor for component_recurrence_count field.
	manufacturingcaseDescComponentRecurrenceCount := manufacturingcaseFields[10].Descriptor()
	// manufacturingcase.DefaultComponentRecurrenceCount holds the default value on creation for the component_recurrence_count field.
	manufacturingcase.DefaultComponentRecurrenceCount = manufacturingcaseDescComponentRecurrenceCount.Default.(int)
	// manufacturingcaseDescCreatedAt is the schema descriptor for created_at field.
	manufacturingcaseDescCreatedAt := manufacturingcaseFields[11].Descriptor()
	// manufacturingcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	manufacturingcase.DefaultCreatedAt = manufacturingcaseDescCreatedAt.Default.(func() time.Time)
	pipelinestateFields := schema.PipelineState{}.Fields()
	_ = pipelinestateFields
	// pipelinestateDescCreatedAt is the schema descriptor for created_at field.
	pipelinestateDescCreatedAt := pipelinestateFields[4].Descriptor()
	// pipelinestate.DefaultCreatedAt holds the default value on creation for the created_at field.
	pipelinestate.DefaultCreatedAt = pipelinestateDescCreatedAt.Default.(func() time.Time)
	// pipelinestateDescUpdatedAt is the schema descriptor for updated_at field.
	pipelinestateDescUpdatedAt := pipelinestateFields[5].Descriptor()
	// pipelinestate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pipelinestate.DefaultUpdatedAt = pipelinestateDescUpdatedAt.Default.(func() time.Time)
	// pipelinestate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pipelinestate.UpdateDefaultUpdatedAt = pipelinestateDescUpdatedAt.UpdateDefault.(func() time.Time)
	rcacaseFields := schema.RcaCase{}.Fields()
	_ = rcacaseFields
	// rcacaseDescCreatedAt is the schema descriptor for created_at field.
	rcacaseDescCreatedAt := rcacaseFields[9].Descriptor()
	// rcacase.DefaultCreatedAt holds the default value on creation for the created_at field.
	rcacase.DefaultCreatedAt = rcacaseDescCreatedAt.Default.(func() time.Time)
	schedulingcaseFields := schema.SchedulingCase{}.Fields()
	_ = schedulingcaseFields
	// schedulingcaseDescCreatedAt is the schema descriptor for created_at field.
	schedulingcaseDescCreatedAt := schedulingcaseFields[10].Descriptor()
	// schedulingcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	schedulingcase.DefaultCreatedAt = schedulingcaseDescCreatedAt.Default.(func() time.Time)
	telemetryeventFields := schema.TelemetryEvent{}.Fields()
	_ = telemetryeventFields
	// telemetryeventDescSpeedKmph is the schema descriptor for speed_kmph field.
	telemetryeventDescSpeedKmph := telemetryeventFields[5].Descriptor()
	// telemetryevent.DefaultSpeedKmph holds the default value on creation for the speed_kmph field.
	telemetryevent.DefaultSpeedKmph = telemetryeventDescSpeedKmph.Default.(float64)
	// telemetryeventDescOdometerKm is the schema descriptor for odometer_km field.
	telemetryeventDescOdometerKm := telemetryeventFields[6].Descriptor()
	// telemetryevent.DefaultOdometerKm holds the default value on creation for the odometer_km field.
	telemetryevent.DefaultOdometerKm = telemetryeventDescOdometerKm.Default.(float64)
	// telemetryeventDescEngineRpm is the schema descriptor for engine_rpm field.
	telemetryeventDescEngineRpm := telemetryeventFields[7].Descriptor()
	// telemetryevent.DefaultEngineRpm holds the default value on creation for the engine_rpm field.
	telemetryevent.DefaultEngineRpm = telemetryeventDescEngineRpm.Default.(float64)
	// telemetryeventDescCoolantTempC is the schema descriptor for coolant_temp_c field.
	telemetryeventDescCoolantTempC := telemetryeventFields[8].Descriptor()
	// telemetryevent.DefaultCoolantTempC holds the default value on creation for the coolant_temp_c field.
	telemetryevent.DefaultCoolantTempC = telemetryeventDescCoolantTempC.Default.(float64)
	// telemetryeventDescOilTempC is the schema descriptor for oil_temp_c field.
	telemetryeventDescOilTempC := telemetryeventFields[9].Descriptor()
	// telemetryevent.DefaultOilTempC holds the default value on creation for the oil_temp_c field.
	telemetryevent.DefaultOilTempC = telemetryeventDescOilTempC.Default.(float64)
	// telemetryeventDescFuelLevelPct is the schema descriptor for fuel_level_pct field.
	telemetryeventDescFuelLevelPct := telemetryeventFields[10].Descriptor()
	// telemetryevent.DefaultFuelLevelPct holds the default value on creation for the fuel_level_pct field.
	telemetryevent.DefaultFuelLevelPct = telemetryeventDescFuelLevelPct.Default.(float64)
	// telemetryeventDescBatterySocPct is the schema descriptor for battery_soc_pct field.
	telemetryeventDescBatterySocPct := telemetryeventFields[11].Descriptor()
	// telemetryevent.DefaultBatterySocPct holds the default value on creation for the battery_soc_pct field.
	telemetryevent.DefaultBatterySocPct = telemetryeventDescBatterySocPct.Default.(float64)
	// telemetryeventDescBatterySohPct is the schema descriptor for battery_soh_pct field.
	telemetryeventDescBatterySohPct := telemetryeventFields[12].Descriptor()
	// telemetryevent.DefaultBatterySohPct holds the default value on creation for the battery_soh_pct field.
	telemetryevent.DefaultBatterySohPct = telemetryeventDescBatterySohPct.Default.(float64)
	// telemetryeventDescCreatedAt is the schema descriptor for created_at field.
	telemetryeventDescCreatedAt := telemetryeventFields[14].Descriptor()
	// telemetryevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	telemetryevent.DefaultCreatedAt = telemetryeventDescCreatedAt.Default.(func() time.Time)
	vehicleFields := schema.Vehicle{}.Fields()
	_ = vehicleFields
	// vehicleDescCreatedAt is the schema descriptor for created_at field.
	vehicleDescCreatedAt := vehicleFields[5].Descriptor()
	// vehicle.DefaultCreatedAt holds the default value on creation for the created_at field.
	vehicle.DefaultCreatedAt = vehicleDescCreatedAt.Default.(func() time.Time)
	// vehicleDescUpdatedAt is the schema descriptor for updated_at field.
	vehicleDescUpdatedAt := vehicleFields[6].Descriptor()
	// vehicle.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vehicle.DefaultUpdatedAt = vehicleDescUpdatedAt.Default.(func() time.Time)
	// vehicle.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vehicle.UpdateDefaultUpdatedAt = vehicleDescUpdatedAt.UpdateDefault.(func() time.Time)
}
