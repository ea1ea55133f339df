// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/lessonprogress"
)

// LessonProgressCreate is the builder for creating a LessonProgress entity.
type LessonProgressCreate struct {
	config
	mutation *LessonProgressMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LessonProgressCreate) SetLearnerID(v string) *LessonProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLessonSlug sets the "lesson_slug" field.
func (_c *LessonProgressCreate) SetLessonSlug(v string) *LessonProgressCreate {
	_c.mutation.SetLessonSlug(v)
	return _c
}

// SetStepIdx sets the "step_idx" field.
func (_c *LessonProgressCreate) SetStepIdx(v int) *LessonProgressCreate {
	_c.mutation.SetStepIdx(v)
	return _c
}

// SetNillableStepIdx sets the "step_idx" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableStepIdx(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetStepIdx(*v)
	}
	return _c
}

// SetQuestionIdx sets the "question_idx" field.
func (_c *LessonProgressCreate) SetQuestionIdx(v int) *LessonProgressCreate {
	_c.mutation.SetQuestionIdx(v)
	return _c
}

// SetNillableQuestionIdx sets the "question_idx" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableQuestionIdx(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetQuestionIdx(*v)
	}
	return _c
}

// SetQuizCorrect sets the "quiz_correct" field.
func (_c *LessonProgressCreate) SetQuizCorrect(v int) *LessonProgressCreate {
	_c.mutation.SetQuizCorrect(v)
	return _c
}

// SetNillableQuizCorrect sets the "quiz_correct" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableQuizCorrect(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetQuizCorrect(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *LessonProgressCreate) SetCompleted(v bool) *LessonProgressCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableCompleted(v *bool) *LessonProgressCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetQuizScore sets the "quiz_score" field.
func (_c *LessonProgressCreate) SetQuizScore(v int) *LessonProgressCreate {
	_c.mutation.SetQuizScore(v)
	return _c
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableQuizScore(v *int) *LessonProgressCreate {
	if v != nil {
		_c.SetQuizScore(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonProgressCreate) SetUpdatedAt(v time.Time) *LessonProgressCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonProgressCreate) SetNillableUpdatedAt(v *time.Time) *LessonProgressCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonProgressMutation object of the builder.
func (_c *LessonProgressCreate) Mutation() *LessonProgressMutation {
	return _c.mutation
}

// Save creates the LessonProgress in the database.
func (_c *LessonProgressCreate) Save(ctx context.Context) (*LessonProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonProgressCreate) SaveX(ctx context.Context) *LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonProgressCreate) defaults() {
	if _, ok := _c.mutation.StepIdx(); !ok {
		v := lessonprogress.DefaultStepIdx
		_c.mutation.SetStepIdx(v)
	}
	if _, ok := _c.mutation.QuestionIdx(); !ok {
		v := lessonprogress.DefaultQuestionIdx
		_c.mutation.SetQuestionIdx(v)
	}
	if _, ok := _c.mutation.QuizCorrect(); !ok {
		v := lessonprogress.DefaultQuizCorrect
		_c.mutation.SetQuizCorrect(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := lessonprogress.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lessonprogress.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonProgressCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LessonProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := lessonprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LessonSlug(); !ok {
		return &ValidationError{Name: "lesson_slug", err: errors.New(`ent: missing required field "LessonProgress.lesson_slug"`)}
	}
	if v, ok := _c.mutation.LessonSlug(); ok {
		if err := lessonprogress.LessonSlugValidator(v); err != nil {
			return &ValidationError{Name: "lesson_slug", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.lesson_slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepIdx(); !ok {
		return &ValidationError{Name: "step_idx", err: errors.New(`ent: missing required field "LessonProgress.step_idx"`)}
	}
	if v, ok := _c.mutation.StepIdx(); ok {
		if err := lessonprogress.StepIdxValidator(v); err != nil {
			return &ValidationError{Name: "step_idx", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.step_idx": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIdx(); !ok {
		return &ValidationError{Name: "question_idx", err: errors.New(`ent: missing required field "LessonProgress.question_idx"`)}
	}
	if v, ok := _c.mutation.QuestionIdx(); ok {
		if err := lessonprogress.QuestionIdxValidator(v); err != nil {
			return &ValidationError{Name: "question_idx", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.question_idx": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizCorrect(); !ok {
		return &ValidationError{Name: "quiz_correct", err: errors.New(`ent: missing required field "LessonProgress.quiz_correct"`)}
	}
	if v, ok := _c.mutation.QuizCorrect(); ok {
		if err := lessonprogress.QuizCorrectValidator(v); err != nil {
			return &ValidationError{Name: "quiz_correct", err: fmt.Errorf(`ent: validator failed for field "LessonProgress.quiz_correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "LessonProgress.completed"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonProgress.updated_at"`)}
	}
	return nil
}

func (_c *LessonProgressCreate) sqlSave(ctx context.Context) (*LessonProgress, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonProgressCreate) createSpec() (*LessonProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonprogress.Table, sqlgraph.NewFieldSpec(lessonprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(lessonprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.LessonSlug(); ok {
		_spec.SetField(lessonprogress.FieldLessonSlug, field.TypeString, value)
		_node.LessonSlug = value
	}
	if value, ok := _c.mutation.StepIdx(); ok {
		_spec.SetField(lessonprogress.FieldStepIdx, field.TypeInt, value)
		_node.StepIdx = value
	}
	if value, ok := _c.mutation.QuestionIdx(); ok {
		_spec.SetField(lessonprogress.FieldQuestionIdx, field.TypeInt, value)
		_node.QuestionIdx = value
	}
	if value, ok := _c.mutation.QuizCorrect(); ok {
		_spec.SetField(lessonprogress.FieldQuizCorrect, field.TypeInt, value)
		_node.QuizCorrect = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(lessonprogress.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.QuizScore(); ok {
		_spec.SetField(lessonprogress.FieldQuizScore, field.TypeInt, value)
		_node.QuizScore = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lessonprogress.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LessonProgressCreateBulk is the builder for creating many LessonProgress entities in bulk.
type LessonProgressCreateBulk struct {
	config
	err      error
	builders []*LessonProgressCreate
}

// Save creates the LessonProgress entities in the database.
func (_c *LessonProgressCreateBulk) Save(ctx context.Context) ([]*LessonProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonProgressMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonProgressCreateBulk) SaveX(ctx context.Context) []*LessonProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
