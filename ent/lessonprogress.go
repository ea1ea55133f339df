// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tsarev/lernio/ent/lessonprogress"
)

// LessonProgress is the model entity for the LessonProgress schema.
type LessonProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// LessonSlug holds the value of the "lesson_slug" field.
	LessonSlug string `json:"lesson_slug,omitempty"`
	// StepIdx holds the value of the "step_idx" field.
	StepIdx int `json:"step_idx,omitempty"`
	// QuestionIdx holds the value of the "question_idx" field.
	QuestionIdx int `json:"question_idx,omitempty"`
	// Running count of correctly answered quiz questions
	QuizCorrect int `json:"quiz_correct,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Percentage 0-100, set once on completion
	QuizScore *int `json:"quiz_score,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldCompleted:
			values[i] = new(sql.NullBool)
		case lessonprogress.FieldID, lessonprogress.FieldStepIdx, lessonprogress.FieldQuestionIdx, lessonprogress.FieldQuizCorrect, lessonprogress.FieldQuizScore:
			values[i] = new(sql.NullInt64)
		case lessonprogress.FieldLearnerID, lessonprogress.FieldLessonSlug:
			values[i] = new(sql.NullString)
		case lessonprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonProgress fields.
func (_m *LessonProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonprogress.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case lessonprogress.FieldLessonSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_slug", values[i])
			} else if value.Valid {
				_m.LessonSlug = value.String
			}
		case lessonprogress.FieldStepIdx:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_idx", values[i])
			} else if value.Valid {
				_m.StepIdx = int(value.Int64)
			}
		case lessonprogress.FieldQuestionIdx:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_idx", values[i])
			} else if value.Valid {
				_m.QuestionIdx = int(value.Int64)
			}
		case lessonprogress.FieldQuizCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_correct", values[i])
			} else if value.Valid {
				_m.QuizCorrect = int(value.Int64)
			}
		case lessonprogress.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case lessonprogress.FieldQuizScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_score", values[i])
			} else if value.Valid {
				_m.QuizScore = new(int)
				*_m.QuizScore = int(value.Int64)
			}
		case lessonprogress.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LessonProgress.
// This includes values selected through modifiers, order, etc.
func (_m *LessonProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonProgress.
// Note that you need to call LessonProgress.Unwrap() before calling this method if this LessonProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonProgress) Update() *LessonProgressUpdateOne {
	return NewLessonProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonProgress) Unwrap() *LessonProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonProgress) String() string {
	var builder strings.Builder
	builder.WriteString("LessonProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("lesson_slug=")
	builder.WriteString(_m.LessonSlug)
	builder.WriteString(", ")
	builder.WriteString("step_idx=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepIdx))
	builder.WriteString(", ")
	builder.WriteString("question_idx=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionIdx))
	builder.WriteString(", ")
	builder.WriteString("quiz_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizCorrect))
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	if v := _m.QuizScore; v != nil {
		builder.WriteString("quiz_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonProgresses is a parsable slice of LessonProgress.
type LessonProgresses []*LessonProgress
