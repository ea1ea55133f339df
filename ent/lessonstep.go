// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tsarev/lernio/ent/lesson"
	"github.com/tsarev/lernio/ent/lessonstep"
)

// LessonStep is the model entity for the LessonStep schema.
type LessonStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Dense zero-based position within the lesson
	Ord int `json:"ord,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LessonStepQuery when eager-loading is set.
	Edges        LessonStepEdges `json:"edges"`
	lesson_steps *int
	selectValues sql.SelectValues
}

// LessonStepEdges holds the relations/edges for other nodes in the graph.
type LessonStepEdges struct {
	// Lesson holds the value of the lesson edge.
	Lesson *Lesson `json:"lesson,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// LessonOrErr returns the Lesson value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LessonStepEdges) LessonOrErr() (*Lesson, error) {
	if e.Lesson != nil {
		return e.Lesson, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lesson.Label}
	}
	return nil, &NotLoadedError{edge: "lesson"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonstep.FieldID, lessonstep.FieldOrd:
			values[i] = new(sql.NullInt64)
		case lessonstep.FieldBody:
			values[i] = new(sql.NullString)
		case lessonstep.ForeignKeys[0]: // lesson_steps
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonStep fields.
func (_m *LessonStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonstep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessonstep.FieldOrd:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ord", values[i])
			} else if value.Valid {
				_m.Ord = int(value.Int64)
			}
		case lessonstep.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case lessonstep.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field lesson_steps", value)
			} else if value.Valid {
				_m.lesson_steps = new(int)
				*_m.lesson_steps = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonStep.
// This includes values selected through modifiers, order, etc.
func (_m *LessonStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLesson queries the "lesson" edge of the LessonStep entity.
func (_m *LessonStep) QueryLesson() *LessonQuery {
	return NewLessonStepClient(_m.config).QueryLesson(_m)
}

// Update returns a builder for updating this LessonStep.
// Note that you need to call LessonStep.Unwrap() before calling this method if this LessonStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonStep) Update() *LessonStepUpdateOne {
	return NewLessonStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonStep) Unwrap() *LessonStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonStep) String() string {
	var builder strings.Builder
	builder.WriteString("LessonStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ord=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ord))
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteByte(')')
	return builder.String()
}

// LessonSteps is a parsable slice of LessonStep.
type LessonSteps []*LessonStep
