// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/feedbackcase"
)

// FeedbackCase is the model entity for the FeedbackCase schema.
type FeedbackCase struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// BookingID holds the value of the "booking_id" field.
	BookingID string `json:"booking_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// VehicleID holds the value of the "vehicle_id" field.
	VehicleID string `json:"vehicle_id,omitempty"`
	// Customer Effort Index, [1.0,5.0]
	CeiScore float64 `json:"cei_score,omitempty"`
	// ValidationLabel holds the value of the "validation_label" field.
	ValidationLabel feedbackcase.ValidationLabel `json:"validation_label,omitempty"`
	// True exactly when validation_label is Recurring or Incorrect
	RecommendedRetrain bool `json:"recommended_retrain,omitempty"`
	// TechnicianNotes holds the value of the "technician_notes" field.
	TechnicianNotes string `json:"technician_notes,omitempty"`
	// CustomerRating holds the value of the "customer_rating" field.
	CustomerRating *int `json:"customer_rating,omitempty"`
	// Status holds the value of the "status" field.
	Status feedbackcase.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FeedbackCase) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case feedbackcase.FieldRecommendedRetrain:
			values[i] = new(sql.NullBool)
		case feedbackcase.FieldCeiScore:
			values[i] = new(sql.NullFloat64)
		case feedbackcase.FieldCustomerRating:
			values[i] = new(sql.NullInt64)
		case feedbackcase.FieldID, feedbackcase.FieldBookingID, feedbackcase.FieldCaseID, feedbackcase.FieldVehicleID, feedbackcase.FieldValidationLabel, feedbackcase.FieldTechnicianNotes, feedbackcase.FieldStatus:
			values[i] = new(sql.NullString)
		case feedbackcase.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FeedbackCase fields.
func (_m *FeedbackCase) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case feedbackcase.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case feedbackcase.FieldBookingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field booking_id", values[i])
			} else if value.Valid {
				_m.BookingID = value.String
			}
		case feedbackcase.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case feedbackcase.FieldVehicleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vehicle_id", values[i])
			} else if value.Valid {
				_m.VehicleID = value.String
			}
		case feedbackcase.FieldCeiScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cei_score", values[i])
			} else if value.Valid {
				_m.CeiScore = value.Float64
			}
		case feedbackcase.FieldValidationLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_label", values[i])
			} else if value.Valid {
				_m.ValidationLabel = feedbackcase.ValidationLabel(value.String)
			}
		case feedbackcase.FieldRecommendedRetrain:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_retrain", values[i])
			} else if value.Valid {
				_m.RecommendedRetrain = value.Bool
			}
		case feedbackcase.FieldTechnicianNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field technician_notes", values[i])
			} else if value.Valid {
				_m.TechnicianNotes = value.String
			}
		case feedbackcase.FieldCustomerRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field customer_rating", values[i])
			} else if value.Valid {
				_m.CustomerRating = new(int)
				*_m.CustomerRating = int(value.Int64)
			}
		case feedbackcase.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = feedbackcase.Status(value.String)
			}
		case feedbackcase.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the FeedbackCase.
// This includes values selected through modifiers, order, etc.
func (_m *FeedbackCase) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FeedbackCase.
// Note that you need to call FeedbackCase.Unwrap() before calling this method if this FeedbackCase
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FeedbackCase) Update() *FeedbackCaseUpdateOne {
	return NewFeedbackCaseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FeedbackCase entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FeedbackCase) Unwrap() *FeedbackCase {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FeedbackCase is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FeedbackCase) String() string {
	var builder strings.Builder
	builder.WriteString("FeedbackCase(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("booking_id=")
	builder.WriteString(_m.BookingID)
	builder.WriteString(", ")
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("vehicle_id=")
	builder.WriteString(_m.VehicleID)
	builder.WriteString(", ")
	builder.WriteString("cei_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.CeiScore))
	builder.WriteString(", ")
	builder.WriteString("validation_label=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationLabel))
	builder.WriteString(", ")
	builder.WriteString("recommended_retrain=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedRetrain))
	builder.WriteString(", ")
	builder.WriteString("technician_notes=")
	builder.WriteString(_m.TechnicianNotes)
	builder.WriteString(", ")
	if v := _m.CustomerRating; v != nil {
		builder.WriteString("customer_rating=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FeedbackCases is a parsable slice of FeedbackCase.
type FeedbackCases []*FeedbackCase
