// Code generated by ent, DO NOT EDIT.

package humanreview

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the humanreview type in the database.
	Label = "human_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldMessage holds the string denoting the message field in the database.
	FieldMessage = "message"
	// FieldReviewStatus holds the string denoting the review_status field in the database.
	FieldReviewStatus = "review_status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// Table holds the table name of the humanreview in the database.
	Table = "human_reviews"
)

// Columns holds all SQL columns for humanreview fields.
var Columns = []string{
	FieldID,
	FieldCaseID,
	FieldStage,
	FieldConfidence,
	FieldMessage,
	FieldReviewStatus,
	FieldCreatedAt,
	FieldResolvedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ReviewStatus defines the type for the "review_status" enum field.
type ReviewStatus string

// ReviewStatusPending is the default value of the ReviewStatus enum.
const DefaultReviewStatus = ReviewStatusPending

// ReviewStatus values.
const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusResolved ReviewStatus = "resolved"
)

func (rs ReviewStatus) String() string {
	return string(rs)
}

// ReviewStatusValidator is a validator for the "review_status" field enum values. It is called by the builders before save.
func ReviewStatusValidator(rs ReviewStatus) error {
	switch rs {
	case ReviewStatusPending, ReviewStatusResolved:
		return nil
	default:
		return fmt.Errorf("humanreview: invalid enum value for review_status field: %q", rs)
	}
}

// OrderOption defines the ordering options for the HumanReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByReviewStatus orders the results by the review_status field.
func ByReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}
