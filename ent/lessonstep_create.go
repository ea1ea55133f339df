// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tsarev/lernio/ent/lesson"
	"github.com/tsarev/lernio/ent/lessonstep"
)

// LessonStepCreate is the builder for creating a LessonStep entity.
type LessonStepCreate struct {
	config
	mutation *LessonStepMutation
	hooks    []Hook
}

// SetOrd sets the "ord" field.
func (_c *LessonStepCreate) SetOrd(v int) *LessonStepCreate {
	_c.mutation.SetOrd(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *LessonStepCreate) SetBody(v string) *LessonStepCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetLessonID sets the "lesson" edge to the Lesson entity by ID.
func (_c *LessonStepCreate) SetLessonID(id int) *LessonStepCreate {
	_c.mutation.SetLessonID(id)
	return _c
}

// SetLesson sets the "lesson" edge to the Lesson entity.
func (_c *LessonStepCreate) SetLesson(v *Lesson) *LessonStepCreate {
	return _c.SetLessonID(v.ID)
}

// Mutation returns the LessonStepMutation object of the builder.
func (_c *LessonStepCreate) Mutation() *LessonStepMutation {
	return _c.mutation
}

// Save creates the LessonStep in the database.
func (_c *LessonStepCreate) Save(ctx context.Context) (*LessonStep, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonStepCreate) SaveX(ctx context.Context) *LessonStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonStepCreate) check() error {
	if _, ok := _c.mutation.Ord(); !ok {
		return &ValidationError{Name: "ord", err: errors.New(`ent: missing required field "LessonStep.ord"`)}
	}
	if v, ok := _c.mutation.Ord(); ok {
		if err := lessonstep.OrdValidator(v); err != nil {
			return &ValidationError{Name: "ord", err: fmt.Errorf(`ent: validator failed for field "LessonStep.ord": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "LessonStep.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := lessonstep.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "LessonStep.body": %w`, err)}
		}
	}
	if len(_c.mutation.LessonIDs()) == 0 {
		return &ValidationError{Name: "lesson", err: errors.New(`ent: missing required edge "LessonStep.lesson"`)}
	}
	return nil
}

func (_c *LessonStepCreate) sqlSave(ctx context.Context) (*LessonStep, error) {
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

func (_c *LessonStepCreate) createSpec() (*LessonStep, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessonstep.Table, sqlgraph.NewFieldSpec(lessonstep.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Ord(); ok {
		_spec.SetField(lessonstep.FieldOrd, field.TypeInt, value)
		_node.Ord = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(lessonstep.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if nodes := _c.mutation.LessonIDs(); len(nodes) > 0 {
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
		_node.lesson_steps = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// LessonStepCreateBulk is the builder for creating many LessonStep entities in bulk.
type LessonStepCreateBulk struct {
	config
	err      error
	builders []*LessonStepCreate
}

// Save creates the LessonStep entities in the database.
func (_c *LessonStepCreateBulk) Save(ctx context.Context) ([]*LessonStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonStepMutation)
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
func (_c *LessonStepCreateBulk) SaveX(ctx context.Context) []*LessonStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
