// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fleetsense/fleetsense/ent/pipelinestate"
)

// PipelineState is the model entity for the PipelineState schema.
type PipelineState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CurrentStage holds the value of the "current_stage" field.
	CurrentStage string `json:"current_stage,omitempty"`
	// null when terminal or gated to human review
	NextStage *string `json:"next_stage,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinestate.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case pipelinestate.FieldID, pipelinestate.FieldCurrentStage, pipelinestate.FieldNextStage:
			values[i] = new(sql.NullString)
		case pipelinestate.FieldCreatedAt, pipelinestate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineState fields.
func (_m *PipelineState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinestate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipelinestate.FieldCurrentStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_stage", values[i])
			} else if value.Valid {
				_m.CurrentStage = value.String
			}
		case pipelinestate.FieldNextStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field next_stage", values[i])
			} else if value.Valid {
				_m.NextStage = new(string)
				*_m.NextStage = value.String
			}
		case pipelinestate.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case pipelinestate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipelinestate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineState.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineState.
// Note that you need to call PipelineState.Unwrap() before calling this method if this PipelineState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineState) Update() *PipelineStateUpdateOne {
	return NewPipelineStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineState) Unwrap() *PipelineState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineState) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("current_stage=")
	builder.WriteString(_m.CurrentStage)
	builder.WriteString(", ")
	if v := _m.NextStage; v != nil {
		builder.WriteString("next_stage=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineStates is a parsable slice of PipelineState.
type PipelineStates []*PipelineState
