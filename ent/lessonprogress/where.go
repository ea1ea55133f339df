// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tsarev/lernio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LessonSlug applies equality check predicate on the "lesson_slug" field. It's identical to LessonSlugEQ.
func LessonSlug(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonSlug, v))
}

// StepIdx applies equality check predicate on the "step_idx" field. It's identical to StepIdxEQ.
func StepIdx(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldStepIdx, v))
}

// QuestionIdx applies equality check predicate on the "question_idx" field. It's identical to QuestionIdxEQ.
func QuestionIdx(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuestionIdx, v))
}

// QuizCorrect applies equality check predicate on the "quiz_correct" field. It's identical to QuizCorrectEQ.
func QuizCorrect(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuizCorrect, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompleted, v))
}

// QuizScore applies equality check predicate on the "quiz_score" field. It's identical to QuizScoreEQ.
func QuizScore(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuizScore, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldLearnerID, v))
}

// LessonSlugEQ applies the EQ predicate on the "lesson_slug" field.
func LessonSlugEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldLessonSlug, v))
}

// LessonSlugNEQ applies the NEQ predicate on the "lesson_slug" field.
func LessonSlugNEQ(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldLessonSlug, v))
}

// LessonSlugIn applies the In predicate on the "lesson_slug" field.
func LessonSlugIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldLessonSlug, vs...))
}

// LessonSlugNotIn applies the NotIn predicate on the "lesson_slug" field.
func LessonSlugNotIn(vs ...string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldLessonSlug, vs...))
}

// LessonSlugGT applies the GT predicate on the "lesson_slug" field.
func LessonSlugGT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldLessonSlug, v))
}

// LessonSlugGTE applies the GTE predicate on the "lesson_slug" field.
func LessonSlugGTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldLessonSlug, v))
}

// LessonSlugLT applies the LT predicate on the "lesson_slug" field.
func LessonSlugLT(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldLessonSlug, v))
}

// LessonSlugLTE applies the LTE predicate on the "lesson_slug" field.
func LessonSlugLTE(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldLessonSlug, v))
}

// LessonSlugContains applies the Contains predicate on the "lesson_slug" field.
func LessonSlugContains(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContains(FieldLessonSlug, v))
}

// LessonSlugHasPrefix applies the HasPrefix predicate on the "lesson_slug" field.
func LessonSlugHasPrefix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasPrefix(FieldLessonSlug, v))
}

// LessonSlugHasSuffix applies the HasSuffix predicate on the "lesson_slug" field.
func LessonSlugHasSuffix(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldHasSuffix(FieldLessonSlug, v))
}

// LessonSlugEqualFold applies the EqualFold predicate on the "lesson_slug" field.
func LessonSlugEqualFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEqualFold(FieldLessonSlug, v))
}

// LessonSlugContainsFold applies the ContainsFold predicate on the "lesson_slug" field.
func LessonSlugContainsFold(v string) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldContainsFold(FieldLessonSlug, v))
}

// StepIdxEQ applies the EQ predicate on the "step_idx" field.
func StepIdxEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldStepIdx, v))
}

// StepIdxNEQ applies the NEQ predicate on the "step_idx" field.
func StepIdxNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldStepIdx, v))
}

// StepIdxIn applies the In predicate on the "step_idx" field.
func StepIdxIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldStepIdx, vs...))
}

// StepIdxNotIn applies the NotIn predicate on the "step_idx" field.
func StepIdxNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldStepIdx, vs...))
}

// StepIdxGT applies the GT predicate on the "step_idx" field.
func StepIdxGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldStepIdx, v))
}

// StepIdxGTE applies the GTE predicate on the "step_idx" field.
func StepIdxGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldStepIdx, v))
}

// StepIdxLT applies the LT predicate on the "step_idx" field.
func StepIdxLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldStepIdx, v))
}

// StepIdxLTE applies the LTE predicate on the "step_idx" field.
func StepIdxLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldStepIdx, v))
}

// QuestionIdxEQ applies the EQ predicate on the "question_idx" field.
func QuestionIdxEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuestionIdx, v))
}

// QuestionIdxNEQ applies the NEQ predicate on the "question_idx" field.
func QuestionIdxNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldQuestionIdx, v))
}

// QuestionIdxIn applies the In predicate on the "question_idx" field.
func QuestionIdxIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldQuestionIdx, vs...))
}

// QuestionIdxNotIn applies the NotIn predicate on the "question_idx" field.
func QuestionIdxNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldQuestionIdx, vs...))
}

// QuestionIdxGT applies the GT predicate on the "question_idx" field.
func QuestionIdxGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldQuestionIdx, v))
}

// QuestionIdxGTE applies the GTE predicate on the "question_idx" field.
func QuestionIdxGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldQuestionIdx, v))
}

// QuestionIdxLT applies the LT predicate on the "question_idx" field.
func QuestionIdxLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldQuestionIdx, v))
}

// QuestionIdxLTE applies the LTE predicate on the "question_idx" field.
func QuestionIdxLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldQuestionIdx, v))
}

// QuizCorrectEQ applies the EQ predicate on the "quiz_correct" field.
func QuizCorrectEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuizCorrect, v))
}

// QuizCorrectNEQ applies the NEQ predicate on the "quiz_correct" field.
func QuizCorrectNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldQuizCorrect, v))
}

// QuizCorrectIn applies the In predicate on the "quiz_correct" field.
func QuizCorrectIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldQuizCorrect, vs...))
}

// QuizCorrectNotIn applies the NotIn predicate on the "quiz_correct" field.
func QuizCorrectNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldQuizCorrect, vs...))
}

// QuizCorrectGT applies the GT predicate on the "quiz_correct" field.
func QuizCorrectGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldQuizCorrect, v))
}

// QuizCorrectGTE applies the GTE predicate on the "quiz_correct" field.
func QuizCorrectGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldQuizCorrect, v))
}

// QuizCorrectLT applies the LT predicate on the "quiz_correct" field.
func QuizCorrectLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldQuizCorrect, v))
}

// QuizCorrectLTE applies the LTE predicate on the "quiz_correct" field.
func QuizCorrectLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldQuizCorrect, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldCompleted, v))
}

// QuizScoreEQ applies the EQ predicate on the "quiz_score" field.
func QuizScoreEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldQuizScore, v))
}

// QuizScoreNEQ applies the NEQ predicate on the "quiz_score" field.
func QuizScoreNEQ(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldQuizScore, v))
}

// QuizScoreIn applies the In predicate on the "quiz_score" field.
func QuizScoreIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldQuizScore, vs...))
}

// QuizScoreNotIn applies the NotIn predicate on the "quiz_score" field.
func QuizScoreNotIn(vs ...int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldQuizScore, vs...))
}

// QuizScoreGT applies the GT predicate on the "quiz_score" field.
func QuizScoreGT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldQuizScore, v))
}

// QuizScoreGTE applies the GTE predicate on the "quiz_score" field.
func QuizScoreGTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldQuizScore, v))
}

// QuizScoreLT applies the LT predicate on the "quiz_score" field.
func QuizScoreLT(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldQuizScore, v))
}

// QuizScoreLTE applies the LTE predicate on the "quiz_score" field.
func QuizScoreLTE(v int) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldQuizScore, v))
}

// QuizScoreIsNil applies the IsNil predicate on the "quiz_score" field.
func QuizScoreIsNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIsNull(FieldQuizScore))
}

// QuizScoreNotNil applies the NotNil predicate on the "quiz_score" field.
func QuizScoreNotNil() predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotNull(FieldQuizScore))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LessonProgress {
	return predicate.LessonProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonProgress) predicate.LessonProgress {
	return predicate.LessonProgress(sql.NotPredicates(p))
}
