// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/lessonprogress"
	"github.com/tsarev/lernio/ent/predicate"
)

// LessonProgressUpdate is the builder for updating LessonProgress entities.
type LessonProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LessonProgressMutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdate) Where(ps ...predicate.LessonProgress) *LessonProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LessonProgressUpdate) SetLearnerID(v string) *LessonProgressUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableLearnerID(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLessonSlug sets the "lesson_slug" field.
func (_u *LessonProgressUpdate) SetLessonSlug(v string) *LessonProgressUpdate {
	_u.mutation.SetLessonSlug(v)
	return _u
}

// SetNillableLessonSlug sets the "lesson_slug" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableLessonSlug(v *string) *LessonProgressUpdate {
	if v != nil {
		_u.SetLessonSlug(*v)
	}
	return _u
}

// SetStepIdx sets the "step_idx" field.
func (_u *LessonProgressUpdate) SetStepIdx(v int) *LessonProgressUpdate {
	_u.mutation.ResetStepIdx()
	_u.mutation.SetStepIdx(v)
	return _u
}

// SetNillableStepIdx sets the "step_idx" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableStepIdx(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetStepIdx(*v)
	}
	return _u
}

// AddStepIdx adds value to the "step_idx" field.
func (_u *LessonProgressUpdate) AddStepIdx(v int) *LessonProgressUpdate {
	_u.mutation.AddStepIdx(v)
	return _u
}

// SetQuestionIdx sets the "question_idx" field.
func (_u *LessonProgressUpdate) SetQuestionIdx(v int) *LessonProgressUpdate {
	_u.mutation.ResetQuestionIdx()
	_u.mutation.SetQuestionIdx(v)
	return _u
}

// SetNillableQuestionIdx sets the "question_idx" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableQuestionIdx(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetQuestionIdx(*v)
	}
	return _u
}

// AddQuestionIdx adds value to the "question_idx" field.
func (_u *LessonProgressUpdate) AddQuestionIdx(v int) *LessonProgressUpdate {
	_u.mutation.AddQuestionIdx(v)
	return _u
}

// SetQuizCorrect sets the "quiz_correct" field.
func (_u *LessonProgressUpdate) SetQuizCorrect(v int) *LessonProgressUpdate {
	_u.mutation.ResetQuizCorrect()
	_u.mutation.SetQuizCorrect(v)
	return _u
}

// SetNillableQuizCorrect sets the "quiz_correct" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableQuizCorrect(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetQuizCorrect(*v)
	}
	return _u
}

// AddQuizCorrect adds value to the "quiz_correct" field.
func (_u *LessonProgressUpdate) AddQuizCorrect(v int) *LessonProgressUpdate {
	_u.mutation.AddQuizCorrect(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LessonProgressUpdate) SetCompleted(v bool) *LessonProgressUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableCompleted(v *bool) *LessonProgressUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetQuizScore sets the "quiz_score" field.
func (_u *LessonProgressUpdate) SetQuizScore(v int) *LessonProgressUpdate {
	_u.mutation.ResetQuizScore()
	_u.mutation.SetQuizScore(v)
	return _u
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_u *LessonProgressUpdate) SetNillableQuizScore(v *int) *LessonProgressUpdate {
	if v != nil {
		_u.SetQuizScore(*v)
	}
	return _u
}

// AddQuizScore adds value to the "quiz_score" field.
func (_u *LessonProgressUpdate) AddQuizScore(v int) *LessonProgressUpdate {
	_u.mutation.AddQuizScore(v)
	return _u
}

// ClearQuizScore clears the value of the "quiz_score" field.
func (_u *LessonProgressUpdate) ClearQuizScore() *LessonProgressUpdate {
	_u.mutation.ClearQuizScore()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProgressUpdate) SetUpdatedAt(v time.Time) *LessonProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdate) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonProgressUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProgressUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonProgressUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := lessonprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonSlug(); ok {
		if err := lessonprogress.LessonSlugValidator(v); err != nil {
			return &ValidationError{Name: "lesson_slug", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIdx(); ok {
		if err := lessonprogress.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.step_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionIdx(); ok {
		if err := lessonprogress.QuestionIdxValidator(v); err != nil {
			return &ValidationError{Name: "question_idx", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.question_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizCorrect(); ok {
		if err := lessonprogress.QuizCorrectValidator(v); err != nil {
			return &ValidationError{Name: "quiz_correct", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.quiz_correct": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(lessonprogress.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonSlug(); ok {
		_spec.SetField(lessonprogress.FieldLessonSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIdx(); ok {
		_spec.SetField(lessonprogress.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIdx(); ok {
		_spec.AddField(lessonprogress.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionIdx(); ok {
		_spec.SetField(lessonprogress.FieldQuestionIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIdx(); ok {
		_spec.AddField(lessonprogress.FieldQuestionIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizCorrect(); ok {
		_spec.SetField(lessonprogress.FieldQuizCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizCorrect(); ok {
		_spec.AddField(lessonprogress.FieldQuizCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuizScore(); ok {
		_spec.SetField(lessonprogress.FieldQuizScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizScore(); ok {
		_spec.AddField(lessonprogress.FieldQuizScore, field.TypeInt, value)
	}
	if _u.mutation.QuizScoreCleared() {
		_spec.ClearField(lessonprogress.FieldQuizScore, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonProgressUpdateOne is the builder for updating a single LessonProgress entity.
type LessonProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonProgressMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LessonProgressUpdateOne) SetLearnerID(v string) *LessonProgressUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableLearnerID(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetLessonSlug sets the "lesson_slug" field.
func (_u *LessonProgressUpdateOne) SetLessonSlug(v string) *LessonProgressUpdateOne {
	_u.mutation.SetLessonSlug(v)
	return _u
}

// SetNillableLessonSlug sets the "lesson_slug" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableLessonSlug(v *string) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetLessonSlug(*v)
	}
	return _u
}

// SetStepIdx sets the "step_idx" field.
func (_u *LessonProgressUpdateOne) SetStepIdx(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetStepIdx()
	_u.mutation.SetStepIdx(v)
	return _u
}

// SetNillableStepIdx sets the "step_idx" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableStepIdx(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetStepIdx(*v)
	}
	return _u
}

// AddStepIdx adds value to the "step_idx" field.
func (_u *LessonProgressUpdateOne) AddStepIdx(v int) *LessonProgressUpdateOne {
	_u.mutation.AddStepIdx(v)
	return _u
}

// SetQuestionIdx sets the "question_idx" field.
func (_u *LessonProgressUpdateOne) SetQuestionIdx(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetQuestionIdx()
	_u.mutation.SetQuestionIdx(v)
	return _u
}

// SetNillableQuestionIdx sets the "question_idx" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableQuestionIdx(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetQuestionIdx(*v)
	}
	return _u
}

// AddQuestionIdx adds value to the "question_idx" field.
func (_u *LessonProgressUpdateOne) AddQuestionIdx(v int) *LessonProgressUpdateOne {
	_u.mutation.AddQuestionIdx(v)
	return _u
}

// SetQuizCorrect sets the "quiz_correct" field.
func (_u *LessonProgressUpdateOne) SetQuizCorrect(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetQuizCorrect()
	_u.mutation.SetQuizCorrect(v)
	return _u
}

// SetNillableQuizCorrect sets the "quiz_correct" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableQuizCorrect(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetQuizCorrect(*v)
	}
	return _u
}

// AddQuizCorrect adds value to the "quiz_correct" field.
func (_u *LessonProgressUpdateOne) AddQuizCorrect(v int) *LessonProgressUpdateOne {
	_u.mutation.AddQuizCorrect(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *LessonProgressUpdateOne) SetCompleted(v bool) *LessonProgressUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableCompleted(v *bool) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetQuizScore sets the "quiz_score" field.
func (_u *LessonProgressUpdateOne) SetQuizScore(v int) *LessonProgressUpdateOne {
	_u.mutation.ResetQuizScore()
	_u.mutation.SetQuizScore(v)
	return _u
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_u *LessonProgressUpdateOne) SetNillableQuizScore(v *int) *LessonProgressUpdateOne {
	if v != nil {
		_u.SetQuizScore(*v)
	}
	return _u
}

// AddQuizScore adds value to the "quiz_score" field.
func (_u *LessonProgressUpdateOne) AddQuizScore(v int) *LessonProgressUpdateOne {
	_u.mutation.AddQuizScore(v)
	return _u
}

// ClearQuizScore clears the value of the "quiz_score" field.
func (_u *LessonProgressUpdateOne) ClearQuizScore() *LessonProgressUpdateOne {
	_u.mutation.ClearQuizScore()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonProgressUpdateOne) SetUpdatedAt(v time.Time) *LessonProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_u *LessonProgressUpdateOne) Mutation() *LessonProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonProgressUpdate builder.
func (_u *LessonProgressUpdateOne) Where(ps ...predicate.LessonProgress) *LessonProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonProgressUpdateOne) Select(field string, fields ...string) *LessonProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonProgress entity.
func (_u *LessonProgressUpdateOne) Save(ctx context.Context) (*LessonProgress, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) SaveX(ctx context.Context) *LessonProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonProgressUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessonprogress.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonProgressUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := lessonprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.learner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonSlug(); ok {
		if err := lessonprogress.LessonSlugValidator(v); err != nil {
			return &ValidationError{Name: "lesson_slug", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StepIdx(); ok {
		if err := lessonprogress.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.step_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionIdx(); ok {
		if err := lessonprogress.QuestionIdxValidator(v); err != nil {
			return &ValidationError{Name: "question_idx", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.question_idx": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizCorrect(); ok {
		if err := lessonprogress.QuizCorrectValidator(v); err != nil {
			return &ValidationError{Name: "quiz_correct", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.quiz_correct": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonProgressUpdateOne) sqlSave(ctx context.Context) (_node *LessonProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonprogress.Table, lessonprogress.Columns, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonprogress.FieldID)
		for _, f := range fields {
			if !lessonprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(lessonprogress.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonSlug(); ok {
		_spec.SetField(lessonprogress.FieldLessonSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepIdx(); ok {
		_spec.SetField(lessonprogress.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepIdx(); ok {
		_spec.AddField(lessonprogress.FieldStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuestionIdx(); ok {
		_spec.SetField(lessonprogress.FieldQuestionIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionIdx(); ok {
		_spec.AddField(lessonprogress.FieldQuestionIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizCorrect(); ok {
		_spec.SetField(lessonprogress.FieldQuizCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizCorrect(); ok {
		_spec.AddField(lessonprogress.FieldQuizCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.QuizScore(); ok {
		_spec.SetField(lessonprogress.FieldQuizScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuizScore(); ok {
		_spec.AddField(lessonprogress.FieldQuizScore, field.TypeInt, value)
	}
	if _u.mutation.QuizScoreCleared() {
		_spec.ClearField(lessonprogress.FieldQuizScore, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LessonProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
