// Code generated by ent, DO NOT EDIT.

package topicstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicState {
	return predicate.TopicState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicState {
	return predicate.TopicState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicState {
	return predicate.TopicState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicState {
	return predicate.TopicState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicState {
	return predicate.TopicState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicState {
	return predicate.TopicState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicState {
	return predicate.TopicState(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldName, v))
}

// Parent applies equality check predicate on the "parent" field. It's identical to ParentEQ.
func Parent(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldParent, v))
}

// Mastery applies equality check predicate on the "mastery" field. It's identical to MasteryEQ.
func Mastery(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldMastery, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldConfidence, v))
}

// Sessions applies equality check predicate on the "sessions" field. It's identical to SessionsEQ.
func Sessions(v int) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldSessions, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldLastSeen, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.TopicState {
	return predicate.TopicState(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.TopicState {
	return predicate.TopicState(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldContainsFold(FieldName, v))
}

// ParentEQ applies the EQ predicate on the "parent" field.
func ParentEQ(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldParent, v))
}

// ParentNEQ applies the NEQ predicate on the "parent" field.
func ParentNEQ(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldNEQ(FieldParent, v))
}

// ParentIn applies the In predicate on the "parent" field.
func ParentIn(vs ...string) predicate.TopicState {
	return predicate.TopicState(sql.FieldIn(FieldParent, vs...))
}

// ParentNotIn applies the NotIn predicate on the "parent" field.
func ParentNotIn(vs ...string) predicate.TopicState {
	return predicate.TopicState(sql.FieldNotIn(FieldParent, vs...))
}

// ParentGT applies the GT predicate on the "parent" field.
func ParentGT(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldGT(FieldParent, v))
}

// ParentGTE applies the GTE predicate on the "parent" field.
func ParentGTE(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldGTE(FieldParent, v))
}

// ParentLT applies the LT predicate on the "parent" field.
func ParentLT(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldLT(FieldParent, v))
}

// ParentLTE applies the LTE predicate on the "parent" field.
func ParentLTE(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldLTE(FieldParent, v))
}

// ParentContains applies the Contains predicate on the "parent" field.
func ParentContains(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldContains(FieldParent, v))
}

// ParentHasPrefix applies the HasPrefix predicate on the "parent" field.
func ParentHasPrefix(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldHasPrefix(FieldParent, v))
}

// ParentHasSuffix applies the HasSuffix predicate on the "parent" field.
func ParentHasSuffix(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldHasSuffix(FieldParent, v))
}

// ParentEqualFold applies the EqualFold predicate on the "parent" field.
func ParentEqualFold(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldEqualFold(FieldParent, v))
}

// ParentContainsFold applies the ContainsFold predicate on the "parent" field.
func ParentContainsFold(v string) predicate.TopicState {
	return predicate.TopicState(sql.FieldContainsFold(FieldParent, v))
}

// MasteryEQ applies the EQ predicate on the "mastery" field.
func MasteryEQ(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldMastery, v))
}

// MasteryNEQ applies the NEQ predicate on the "mastery" field.
func MasteryNEQ(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldNEQ(FieldMastery, v))
}

// MasteryIn applies the In predicate on the "mastery" field.
func MasteryIn(vs ...float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldIn(FieldMastery, vs...))
}

// MasteryNotIn applies the NotIn predicate on the "mastery" field.
func MasteryNotIn(vs ...float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldNotIn(FieldMastery, vs...))
}

// MasteryGT applies the GT predicate on the "mastery" field.
func MasteryGT(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldGT(FieldMastery, v))
}

// MasteryGTE applies the GTE predicate on the "mastery" field.
func MasteryGTE(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldGTE(FieldMastery, v))
}

// MasteryLT applies the LT predicate on the "mastery" field.
func MasteryLT(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldLT(FieldMastery, v))
}

// MasteryLTE applies the LTE predicate on the "mastery" field.
func MasteryLTE(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldLTE(FieldMastery, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.TopicState {
	return predicate.TopicState(sql.FieldLTE(FieldConfidence, v))
}

// SessionsEQ applies the EQ predicate on the "sessions" field.
func SessionsEQ(v int) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldSessions, v))
}

// SessionsNEQ applies the NEQ predicate on the "sessions" field.
func SessionsNEQ(v int) predicate.TopicState {
	return predicate.TopicState(sql.FieldNEQ(FieldSessions, v))
}

// SessionsIn applies the In predicate on the "sessions" field.
func SessionsIn(vs ...int) predicate.TopicState {
	return predicate.TopicState(sql.FieldIn(FieldSessions, vs...))
}

// SessionsNotIn applies the NotIn predicate on the "sessions" field.
func SessionsNotIn(vs ...int) predicate.TopicState {
	return predicate.TopicState(sql.FieldNotIn(FieldSessions, vs...))
}

// SessionsGT applies the GT predicate on the "sessions" field.
func SessionsGT(v int) predicate.TopicState {
	return predicate.TopicState(sql.FieldGT(FieldSessions, v))
}

// SessionsGTE applies the GTE predicate on the "sessions" field.
func SessionsGTE(v int) predicate.TopicState {
	return predicate.TopicState(sql.FieldGTE(FieldSessions, v))
}

// SessionsLT applies the LT predicate on the "sessions" field.
func SessionsLT(v int) predicate.TopicState {
	return predicate.TopicState(sql.FieldLT(FieldSessions, v))
}

// SessionsLTE applies the LTE predicate on the "sessions" field.
func SessionsLTE(v int) predicate.TopicState {
	return predicate.TopicState(sql.FieldLTE(FieldSessions, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.TopicState {
	return predicate.TopicState(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicState) predicate.TopicState {
	return predicate.TopicState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicState) predicate.TopicState {
	return predicate.TopicState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicState) predicate.TopicState {
	return predicate.TopicState(sql.NotPredicates(p))
}
