// Code generated by ent, DO NOT EDIT.

package turn

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turn type in the database.
	Label = "turn"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldModuleIdx holds the string denoting the module_idx field in the database.
	FieldModuleIdx = "module_idx"
	// FieldStepIdx holds the string denoting the step_idx field in the database.
	FieldStepIdx = "step_idx"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// Table holds the table name of the turn in the database.
	Table = "turns"
)

// Columns holds all SQL columns for turn fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldPlanID,
	FieldModuleIdx,
	FieldStepIdx,
	FieldRole,
	FieldContent,
	FieldTimestamp,
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
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	PlanIDValidator func(string) error
	// ModuleIdxValidator is a validator for the "module_idx" field. It is called by the builders before save.
	ModuleIdxValidator func(int) error
	// StepIdxValidator is a validator for the "step_idx" field. It is called by the builders before save.
	StepIdxValidator func(int) error
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RoleAssistant Role = "assistant"
	RoleLearner   Role = "learner"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleAssistant, RoleLearner:
		return nil
	default:
		return fmt.Errorf("turn: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the Turn queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByModuleIdx orders the results by the module_idx field.
func ByModuleIdx(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleIdx, opts...).ToFunc()
}

// ByStepIdx orders the results by the step_idx field.
func ByStepIdx(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIdx, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}
