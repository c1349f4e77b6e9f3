// Code generated by ent, DO NOT EDIT.

package mentalblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldID, id))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldDescription, v))
}

// BlockType applies equality check predicate on the "block_type" field. It's identical to BlockTypeEQ.
func BlockType(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldBlockType, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldSeverity, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldFrequency, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldResolved, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldStudentID, v))
}

// Evidence applies equality check predicate on the "evidence" field. It's identical to EvidenceEQ.
func Evidence(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldEvidence, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldFirstSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldLastSeen, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContainsFold(FieldDescription, v))
}

// BlockTypeEQ applies the EQ predicate on the "block_type" field.
func BlockTypeEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldBlockType, v))
}

// BlockTypeNEQ applies the NEQ predicate on the "block_type" field.
func BlockTypeNEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldBlockType, v))
}

// BlockTypeIn applies the In predicate on the "block_type" field.
func BlockTypeIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldBlockType, vs...))
}

// BlockTypeNotIn applies the NotIn predicate on the "block_type" field.
func BlockTypeNotIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldBlockType, vs...))
}

// BlockTypeGT applies the GT predicate on the "block_type" field.
func BlockTypeGT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldBlockType, v))
}

// BlockTypeGTE applies the GTE predicate on the "block_type" field.
func BlockTypeGTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldBlockType, v))
}

// BlockTypeLT applies the LT predicate on the "block_type" field.
func BlockTypeLT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldBlockType, v))
}

// BlockTypeLTE applies the LTE predicate on the "block_type" field.
func BlockTypeLTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldBlockType, v))
}

// BlockTypeContains applies the Contains predicate on the "block_type" field.
func BlockTypeContains(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContains(FieldBlockType, v))
}

// BlockTypeHasPrefix applies the HasPrefix predicate on the "block_type" field.
func BlockTypeHasPrefix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasPrefix(FieldBlockType, v))
}

// BlockTypeHasSuffix applies the HasSuffix predicate on the "block_type" field.
func BlockTypeHasSuffix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasSuffix(FieldBlockType, v))
}

// BlockTypeEqualFold applies the EqualFold predicate on the "block_type" field.
func BlockTypeEqualFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEqualFold(FieldBlockType, v))
}

// BlockTypeContainsFold applies the ContainsFold predicate on the "block_type" field.
func BlockTypeContainsFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContainsFold(FieldBlockType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v float64) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldSeverity, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v int) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldFrequency, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldResolved, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContainsFold(FieldStudentID, v))
}

// EvidenceEQ applies the EQ predicate on the "evidence" field.
func EvidenceEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldEvidence, v))
}

// EvidenceNEQ applies the NEQ predicate on the "evidence" field.
func EvidenceNEQ(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldEvidence, v))
}

// EvidenceIn applies the In predicate on the "evidence" field.
func EvidenceIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldEvidence, vs...))
}

// EvidenceNotIn applies the NotIn predicate on the "evidence" field.
func EvidenceNotIn(vs ...string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldEvidence, vs...))
}

// EvidenceGT applies the GT predicate on the "evidence" field.
func EvidenceGT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldEvidence, v))
}

// EvidenceGTE applies the GTE predicate on the "evidence" field.
func EvidenceGTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldEvidence, v))
}

// EvidenceLT applies the LT predicate on the "evidence" field.
func EvidenceLT(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldEvidence, v))
}

// EvidenceLTE applies the LTE predicate on the "evidence" field.
func EvidenceLTE(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldEvidence, v))
}

// EvidenceContains applies the Contains predicate on the "evidence" field.
func EvidenceContains(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContains(FieldEvidence, v))
}

// EvidenceHasPrefix applies the HasPrefix predicate on the "evidence" field.
func EvidenceHasPrefix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasPrefix(FieldEvidence, v))
}

// EvidenceHasSuffix applies the HasSuffix predicate on the "evidence" field.
func EvidenceHasSuffix(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldHasSuffix(FieldEvidence, v))
}

// EvidenceEqualFold applies the EqualFold predicate on the "evidence" field.
func EvidenceEqualFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEqualFold(FieldEvidence, v))
}

// EvidenceContainsFold applies the ContainsFold predicate on the "evidence" field.
func EvidenceContainsFold(v string) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldContainsFold(FieldEvidence, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldFirstSeen, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.MentalBlock {
	return predicate.MentalBlock(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MentalBlock) predicate.MentalBlock {
	return predicate.MentalBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MentalBlock) predicate.MentalBlock {
	return predicate.MentalBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MentalBlock) predicate.MentalBlock {
	return predicate.MentalBlock(sql.NotPredicates(p))
}
