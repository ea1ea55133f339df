// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressrecord type in the database.
	Label = "progress_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldModuleIdx holds the string denoting the module_idx field in the database.
	FieldModuleIdx = "module_idx"
	// FieldStepIdx holds the string denoting the step_idx field in the database.
	FieldStepIdx = "step_idx"
	// FieldSnapshot holds the string denoting the snapshot field in the database.
	FieldSnapshot = "snapshot"
	// FieldPrevSummary holds the string denoting the prev_summary field in the database.
	FieldPrevSummary = "prev_summary"
	// FieldLastSentStepID holds the string denoting the last_sent_step_id field in the database.
	FieldLastSentStepID = "last_sent_step_id"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the progressrecord in the database.
	Table = "progress_records"
)

// Columns holds all SQL columns for progressrecord fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldPlanID,
	FieldTopic,
	FieldModuleIdx,
	FieldStepIdx,
	FieldSnapshot,
	FieldPrevSummary,
	FieldLastSentStepID,
	FieldUpdatedAt,
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
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultModuleIdx holds the default value on creation for the "module_idx" field.
	DefaultModuleIdx int
	// ModuleIdxValidator is a validator for the "module_idx" field. It is called by the builders before save.
	ModuleIdxValidator func(int) error
	// DefaultStepIdx holds the default value on creation for the "step_idx" field.
	DefaultStepIdx int
	// StepIdxValidator is a validator for the "step_idx" field. It is called by the builders before save.
	StepIdxValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProgressRecord queries.
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

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByModuleIdx orders the results by the module_idx field.
func ByModuleIdx(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleIdx, opts...).ToFunc()
}

// ByStepIdx orders the results by the step_idx field.
func ByStepIdx(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIdx, opts...).ToFunc()
}

// BySnapshot orders the results by the snapshot field.
func BySnapshot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnapshot, opts...).ToFunc()
}

// ByPrevSummary orders the results by the prev_summary field.
func ByPrevSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrevSummary, opts...).ToFunc()
}

// ByLastSentStepID orders the results by the last_sent_step_id field.
func ByLastSentStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSentStepID, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
