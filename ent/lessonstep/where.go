// Code generated by ent, DO NOT EDIT.

package lessonstep

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tsarev/lernio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldLTE(FieldID, id))
}

// Ord applies equality check predicate on the "ord" field. It's identical to OrdEQ.
func Ord(v int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldEQ(FieldOrd, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldEQ(FieldBody, v))
}

// OrdEQ applies the EQ predicate on the "ord" field.
func OrdEQ(v int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldEQ(FieldOrd, v))
}

// OrdNEQ applies the NEQ predicate on the "ord" field.
func OrdNEQ(v int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldNEQ(FieldOrd, v))
}

// OrdIn applies the In predicate on the "ord" field.
func OrdIn(vs ...int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldIn(FieldOrd, vs...))
}

// OrdNotIn applies the NotIn predicate on the "ord" field.
func OrdNotIn(vs ...int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldNotIn(FieldOrd, vs...))
}

// OrdGT applies the GT predicate on the "ord" field.
func OrdGT(v int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldGT(FieldOrd, v))
}

// OrdGTE applies the GTE predicate on the "ord" field.
func OrdGTE(v int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldGTE(FieldOrd, v))
}

// OrdLT applies the LT predicate on the "ord" field.
func OrdLT(v int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldLT(FieldOrd, v))
}

// OrdLTE applies the LTE predicate on the "ord" field.
func OrdLTE(v int) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldLTE(FieldOrd, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.LessonStep {
	return predicate.LessonStep(sql.FieldContainsFold(FieldBody, v))
}

// HasLesson applies the HasEdge predicate on the "lesson" edge.
func HasLesson() predicate.LessonStep {
	return predicate.LessonStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LessonTable, LessonColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLessonWith applies the HasEdge predicate on the "lesson" edge with a given conditions (other predicates).
func HasLessonWith(preds ...predicate.Lesson) predicate.LessonStep {
	return predicate.LessonStep(func(s *sql.Selector) {
		step := newLessonStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonStep) predicate.LessonStep {
	return predicate.LessonStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonStep) predicate.LessonStep {
	return predicate.LessonStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonStep) predicate.LessonStep {
	return predicate.LessonStep(sql.NotPredicates(p))
}
