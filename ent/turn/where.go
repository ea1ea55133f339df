// Code generated by ent, DO NOT EDIT.

package turn

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tsarev/lernio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldLearnerID, v))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldPlanID, v))
}

// ModuleIdx applies equality check predicate on the "module_idx" field. It's identical to ModuleIdxEQ.
func ModuleIdx(v int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldModuleIdx, v))
}

// StepIdx applies equality check predicate on the "step_idx" field. It's identical to StepIdxEQ.
func StepIdx(v int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldStepIdx, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldContent, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldTimestamp, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldLearnerID, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldPlanID, v))
}

// ModuleIdxEQ applies the EQ predicate on the "module_idx" field.
func ModuleIdxEQ(v int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldModuleIdx, v))
}

// ModuleIdxNEQ applies the NEQ predicate on the "module_idx" field.
func ModuleIdxNEQ(v int) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldModuleIdx, v))
}

// ModuleIdxIn applies the In predicate on the "module_idx" field.
func ModuleIdxIn(vs ...int) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldModuleIdx, vs...))
}

// ModuleIdxNotIn applies the NotIn predicate on the "module_idx" field.
func ModuleIdxNotIn(vs ...int) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldModuleIdx, vs...))
}

// ModuleIdxGT applies the GT predicate on the "module_idx" field.
func ModuleIdxGT(v int) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldModuleIdx, v))
}

// ModuleIdxGTE applies the GTE predicate on the "module_idx" field.
func ModuleIdxGTE(v int) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldModuleIdx, v))
}

// ModuleIdxLT applies the LT predicate on the "module_idx" field.
func ModuleIdxLT(v int) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldModuleIdx, v))
}

// ModuleIdxLTE applies the LTE predicate on the "module_idx" field.
func ModuleIdxLTE(v int) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldModuleIdx, v))
}

// StepIdxEQ applies the EQ predicate on the "step_idx" field.
func StepIdxEQ(v int) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldStepIdx, v))
}

// StepIdxNEQ applies the NEQ predicate on the "step_idx" field.
func StepIdxNEQ(v int) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldStepIdx, v))
}

// StepIdxIn applies the In predicate on the "step_idx" field.
func StepIdxIn(vs ...int) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldStepIdx, vs...))
}

// StepIdxNotIn applies the NotIn predicate on the "step_idx" field.
func StepIdxNotIn(vs ...int) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldStepIdx, vs...))
}

// StepIdxGT applies the GT predicate on the "step_idx" field.
func StepIdxGT(v int) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldStepIdx, v))
}

// StepIdxGTE applies the GTE predicate on the "step_idx" field.
func StepIdxGTE(v int) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldStepIdx, v))
}

// StepIdxLT applies the LT predicate on the "step_idx" field.
func StepIdxLT(v int) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldStepIdx, v))
}

// StepIdxLTE applies the LTE predicate on the "step_idx" field.
func StepIdxLTE(v int) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldStepIdx, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldRole, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Turn {
	return predicate.Turn(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Turn {
	return predicate.Turn(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Turn {
	return predicate.Turn(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Turn {
	return predicate.Turn(sql.FieldContainsFold(FieldContent, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.Turn {
	return predicate.Turn(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Turn) predicate.Turn {
	return predicate.Turn(sql.NotPredicates(p))
}
