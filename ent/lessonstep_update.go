// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/lesson"
	"github.com/tsarev/lernio/ent/lessonstep"
	"github.com/tsarev/lernio/ent/predicate"
)

// LessonStepUpdate is the builder for updating LessonStep entities.
type LessonStepUpdate struct {
	config
	hooks    []Hook
	mutation *LessonStepMutation
}

// Where appends a list predicates to the LessonStepUpdate builder.
func (_u *LessonStepUpdate) Where(ps ...predicate.LessonStep) *LessonStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrd sets the "ord" field.
func (_u *LessonStepUpdate) SetOrd(v int) *LessonStepUpdate {
	_u.mutation.ResetOrd()
	_u.mutation.SetOrd(v)
	return _u
}

// SetNillableOrd sets the "ord" field if the given value is not nil.
func (_u *LessonStepUpdate) SetNillableOrd(v *int) *LessonStepUpdate {
	if v != nil {
		_u.SetOrd(*v)
	}
	return _u
}

// AddOrd adds value to the "ord" field.
func (_u *LessonStepUpdate) AddOrd(v int) *LessonStepUpdate {
	_u.mutation.AddOrd(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *LessonStepUpdate) SetBody(v string) *LessonStepUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *LessonStepUpdate) SetNillableBody(v *string) *LessonStepUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_u *LessonStepUpdate) SetLessonID(id int) *LessonStepUpdate {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *LessonStepUpdate) SetLesson(v *Lesson) *LessonStepUpdate {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the LessonStepMutation object of the builder.
func (_u *LessonStepUpdate) Mutation() *LessonStepMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *LessonStepUpdate) ClearLesson() *LessonStepUpdate {
	_u.mutation.ClearLesson()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonStepUpdate) check() error {
	if v, ok := _u.mutation.Ord(); ok {
		if err := lessonstep.OrdValidator(v); err != nil {
			return &ValidationError{Name: "ord", err: fmt.Errorf(`ent: validator failed for field "LessonStep.ord": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := lessonstep.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "LessonStep.body": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LessonStep.lesson"`)
	}
	return nil
}

func (_u *LessonStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonstep.Table, lessonstep.Columns, sqlgraph.NewFieldSpec(lessonstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Ord(); ok {
		_spec.SetField(lessonstep.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrd(); ok {
		_spec.AddField(lessonstep.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(lessonstep.FieldBody, field.TypeString, value)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lessonstep.LessonTable,
			Columns: []string{lessonstep.LessonColumn},
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
			Table:   lessonstep.LessonTable,
			Columns: []string{lessonstep.LessonColumn},
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
			err = &NotFoundError{lessonstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonStepUpdateOne is the builder for updating a single LessonStep entity.
type LessonStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonStepMutation
}

// SetOrd sets the "ord" field.
func (_u *LessonStepUpdateOne) SetOrd(v int) *LessonStepUpdateOne {
	_u.mutation.ResetOrd()
	_u.mutation.SetOrd(v)
	return _u
}

// SetNillableOrd sets the "ord" field if the given value is not nil.
func (_u *LessonStepUpdateOne) SetNillableOrd(v *int) *LessonStepUpdateOne {
	if v != nil {
		_u.SetOrd(*v)
	}
	return _u
}

// AddOrd adds value to the "ord" field.
func (_u *LessonStepUpdateOne) AddOrd(v int) *LessonStepUpdateOne {
	_u.mutation.AddOrd(v)
	return _u
}

// SetBody sets the "body" field.
func (_u *LessonStepUpdateOne) SetBody(v string) *LessonStepUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *LessonStepUpdateOne) SetNillableBody(v *string) *LessonStepUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_u *LessonStepUpdateOne) SetLessonID(id int) *LessonStepUpdateOne {
	_u.mutation.SetLessonID(id)
	return _u
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_u *LessonStepUpdateOne) SetLesson(v *Lesson) *LessonStepUpdateOne {
	return _u.SetLessonID(v.ID)
}

// Mutation returns the LessonStepMutation object of the builder.
func (_u *LessonStepUpdateOne) Mutation() *LessonStepMutation {
	return _u.mutation
}

// ClearLesson clears the "lesson" edge to the Lesson entity.
func (_u *LessonStepUpdateOne) ClearLesson() *LessonStepUpdateOne {
	_u.mutation.ClearLesson()
	return _u
}

// Where appends a list predicates to the LessonStepUpdate builder.
func (_u *LessonStepUpdateOne) Where(ps ...predicate.LessonStep) *LessonStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonStepUpdateOne) Select(field string, fields ...string) *LessonStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonStep entity.
func (_u *LessonStepUpdateOne) Save(ctx context.Context) (*LessonStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonStepUpdateOne) SaveX(ctx context.Context) *LessonStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonStepUpdateOne) check() error {
	if v, ok := _u.mutation.Ord(); ok {
		if err := lessonstep.OrdValidator(v); err != nil {
			return &ValidationError{Name: "ord", err: fmt.Errorf(`ent: validator failed for field "LessonStep.ord": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := lessonstep.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "LessonStep.body": %w`, err)}
		}
	}
	if _u.mutation.LessonCleared() && len(_u.mutation.LessonIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "LessonStep.lesson"`)
	}
	return nil
}

func (_u *LessonStepUpdateOne) sqlSave(ctx context.Context) (_node *LessonStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonstep.Table, lessonstep.Columns, sqlgraph.NewFieldSpec(lessonstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonstep.FieldID)
		for _, f := range fields {
			if !lessonstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonstep.FieldID {
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
		_spec.SetField(lessonstep.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrd(); ok {
		_spec.AddField(lessonstep.FieldOrd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(lessonstep.FieldBody, field.TypeString, value)
	}
	if _u.mutation.LessonCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   lessonstep.LessonTable,
			Columns: []string{lessonstep.LessonColumn},
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
			Table:   lessonstep.LessonTable,
			Columns: []string{lessonstep.LessonColumn},
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
	_node = &LessonStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
