// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/lesson"
	"github.com/tsarev/lernio/ent/predicate"
	"github.com/tsarev/lernio/ent/quizquestion"
)

// QuizQuestionUpdate is the builder for updating QuizQuestion entities.
type QuizQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdate) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrd sets the "ord" field.
func (_u *QuizQuestionUpdate) SetOrd(v int) *QuizQuestionUpdate {
	_u.mutation.ResetOrd()
	_u.mutation.SetOrd(v)
	return _u
}

// SetNillableOrd sets the "ord" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableOrd(v *int) *QuizQuestionUpdate {
	if v != nil {
		_u.SetOrd(*v)
	}
	return _u
}

// AddOrd adds value to the "ord" field.
func (_u *QuizQuestionUpdate) AddOrd(v int) *QuizQuestionUpdate {
	_u.mutation.AddOrd(v)
	return _u
}

// SetText sets the "text" field.
func (_u *QuizQuestionUpdate) SetText(v string) *QuizQuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableText(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuizQuestionUpdate) SetOptions(v []string) *QuizQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuizQuestionUpdate) AppendOptions(v []string) *QuizQuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizQuestionUpdate) SetCorrect(v int) *QuizQuestionUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableCorrect(v *int) *QuizQuestionUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *QuizQuestionUpdate) AddCorrect(v int) *QuizQuestionUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_u *QuizQuestionUpdate) SetLessonID(id int) *QuizQuestionUpdate {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *QuizQuestionUpdate) SetLesson(v *Lesson) *QuizQuestionUpdate {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdate) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *QuizQuestionUpdate) ClearLesson() *QuizQuestionUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizQuestionUpdate) check() error {
	if v, ok := _u.mutation.Ord(); ok {
		if err := quizquestion.OrdValidator(v); err != nil {
			return &ValidationError{Name: "ord", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.ord": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := quizquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := quizquestion.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.correct": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizQuestion.lesson"`)
	}
	return nil
}

func (_u *QuizQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ord(); ok {
		_spec.SetField(quizquestion.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrd(); ok {
		_spec.AddField(quizquestion.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(quizquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizquestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizquestion.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(quizquestion.FieldCorrect, field.TypeInt, value)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.LessonTable,
			Columns: []string{quizquestion.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.LessonTable,
			Columns: []string{quizquestion.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizQuestionUpdateOne is the builder for updating a single QuizQuestion entity.
type QuizQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// SetOrd sets the "ord" field.
func (_u *QuizQuestionUpdateOne) SetOrd(v int) *QuizQuestionUpdateOne {
	_u.mutation.ResetOrd()
	_u.mutation.SetOrd(v)
	return _u
}

// SetNillableOrd sets the "ord" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableOrd(v *int) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetOrd(*v)
	}
	return _u
}

// AddOrd adds value to the "ord" field.
func (_u *QuizQuestionUpdateOne) AddOrd(v int) *QuizQuestionUpdateOne {
	_u.mutation.AddOrd(v)
	return _u
}

// SetText sets the "text" field.
func (_u *QuizQuestionUpdateOne) SetText(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableText(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuizQuestionUpdateOne) SetOptions(v []string) *QuizQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuizQuestionUpdateOne) AppendOptions(v []string) *QuizQuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizQuestionUpdateOne) SetCorrect(v int) *QuizQuestionUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableCorrect(v *int) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *QuizQuestionUpdateOne) AddCorrect(v int) *QuizQuestionUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_u *QuizQuestionUpdateOne) SetLessonID(id int) *QuizQuestionUpdateOne {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *QuizQuestionUpdateOne) SetLesson(v *Lesson) *QuizQuestionUpdateOne {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdateOne) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *QuizQuestionUpdateOne) ClearLesson() *QuizQuestionUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdateOne) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizQuestionUpdateOne) Select(field string, fields ...string) *QuizQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizQuestion entity.
func (_u *QuizQuestionUpdateOne) Save(ctx context.Context) (*QuizQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) SaveX(ctx context.Context) *QuizQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Ord(); ok {
		if err := quizquestion.OrdValidator(v); err != nil {
			return &ValidationError{Name: "ord", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.ord": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := quizquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := quizquestion.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "QuizQuestion.correct": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuizQuestion.lesson"`)
	}
	return nil
}

func (_u *QuizQuestionUpdateOne) sqlSave(ctx context.Context) (_node *QuizQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizquestion.FieldID)
		for _, f := range fields {
			if !quizquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizquestion.FieldID {
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
	if value, ok := _u.mutation.Ord(); ok {
		_spec.SetField(quizquestion.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrd(); ok {
		_spec.AddField(quizquestion.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(quizquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizquestion.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizquestion.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(quizquestion.FieldCorrect, field.TypeInt, value)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.LessonTable,
			Columns: []string{quizquestion.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LessonIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   quizquestion.LessonTable,
			Columns: []string{quizquestion.LessonColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lesson.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
