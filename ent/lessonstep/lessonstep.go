// Code generated by ent, DO NOT EDIT.

package lessonstep

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the lessonstep type in the database.
	Label = "lesson_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOrd holds the string denoting the ord field in the database.
	FieldOrd = "ord"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// EdgeLesson holds the string denoting the lesson edge name in mutations.
	EdgeLesson = "lesson"
	// Table holds the table name of the lessonstep in the database.
	Table = "lesson_steps"
	// LessonTable is the table that holds the lesson relation/edge.
	LessonTable = "lesson_steps"
	// LessonInverseTable is the table name for the Lesson entity.
	// It exists in this package in order to avoid circular dependency with the "lesson" package.
	LessonInverseTable = "lessons"
	// LessonColumn is the table column denoting the lesson relation/edge.
	LessonColumn = "lesson_steps"
)

// Columns holds all SQL columns for lessonstep fields.
var Columns = []string{
	FieldID,
	FieldOrd,
	FieldBody,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "lesson_steps"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"lesson_steps",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// OrdValidator is a validator for the "ord" field. It is called by the builders before save.
	OrdValidator func(int) error
	// BodyValidator is a validator for the "body" field. It is called by the builders before save.
	BodyValidator func(string) error
)

// OrderOption defines the ordering options for the LessonStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrd orders the results by the ord field.
func ByOrd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrd, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByLessonField orders the results by lesson field.
func ByLessonField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLessonStep(), sql.OrderByField(field, opts...))
	}
}
func newLessonStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LessonInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
	)
}
