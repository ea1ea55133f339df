// Code generated by ent, DO NOT EDIT.

package lessonprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonprogress type in the database.
	Label = "lesson_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLessonSlug holds the string denoting the lesson_slug field in the database.
	FieldLessonSlug = "lesson_slug"
	// FieldStepIdx holds the string denoting the step_idx field in the database.
	FieldStepIdx = "step_idx"
	// FieldQuestionIdx holds the string denoting the question_idx field in the database.
	FieldQuestionIdx = "question_idx"
	// FieldQuizCorrect holds the string denoting the quiz_correct field in the database.
	FieldQuizCorrect = "quiz_correct"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldQuizScore holds the string denoting the quiz_score field in the database.
	FieldQuizScore = "quiz_score"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the lessonprogress in the database.
	Table = "lesson_progresses"
)

// Columns holds all SQL columns for lessonprogress fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldLessonSlug,
	FieldStepIdx,
	FieldQuestionIdx,
	FieldQuizCorrect,
	FieldCompleted,
	FieldQuizScore,
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
	// LessonSlugValidator is a validator for the "lesson_slug" field. It is called by the builders before save.
	LessonSlugValidator func(string) error
	// DefaultStepIdx holds the default value on creation for the "step_idx" field.
	DefaultStepIdx int
	// StepIdxValidator is a validator for the "step_idx" field. It is called by the builders before save.
	StepIdxValidator func(int) error
	// DefaultQuestionIdx holds the default value on creation for the "question_idx" field.
	DefaultQuestionIdx int
	// QuestionIdxValidator is a validator for the "question_idx" field. It is called by the builders before save.
	QuestionIdxValidator func(int) error
	// DefaultQuizCorrect holds the default value on creation for the "quiz_correct" field.
	DefaultQuizCorrect int
	// QuizCorrectValidator is a validator for the "quiz_correct" field. It is called by the builders before save.
	QuizCorrectValidator func(int) error
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LessonProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByLessonSlug orders the results by the lesson_slug field.
func ByLessonSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonSlug, opts...).ToFunc()
}

// ByStepIdx orders the results by the step_idx field.
func ByStepIdx(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepIdx, opts...).ToFunc()
}

// ByQuestionIdx orders the results by the question_idx field.
func ByQuestionIdx(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionIdx, opts...).ToFunc()
}

// ByQuizCorrect orders the results by the quiz_correct field.
func ByQuizCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizCorrect, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByQuizScore orders the results by the quiz_score field.
func ByQuizScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizScore, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
