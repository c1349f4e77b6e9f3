// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/tutorlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldRunID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldKind, v))
}

// Processor applies equality check predicate on the "processor" field. It's identical to ProcessorEQ.
func Processor(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldProcessor, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldStudentID, v))
}

// TranscriptChars applies equality check predicate on the "transcript_chars" field. It's identical to TranscriptCharsEQ.
func TranscriptChars(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTranscriptChars, v))
}

// EngagementScore applies equality check predicate on the "engagement_score" field. It's identical to EngagementScoreEQ.
func EngagementScore(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldEngagementScore, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldResult, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldRunID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldKind, v))
}

// ProcessorEQ applies the EQ predicate on the "processor" field.
func ProcessorEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldProcessor, v))
}

// ProcessorNEQ applies the NEQ predicate on the "processor" field.
func ProcessorNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldProcessor, v))
}

// ProcessorIn applies the In predicate on the "processor" field.
func ProcessorIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldProcessor, vs...))
}

// ProcessorNotIn applies the NotIn predicate on the "processor" field.
func ProcessorNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldProcessor, vs...))
}

// ProcessorGT applies the GT predicate on the "processor" field.
func ProcessorGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldProcessor, v))
}

// ProcessorGTE applies the GTE predicate on the "processor" field.
func ProcessorGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldProcessor, v))
}

// ProcessorLT applies the LT predicate on the "processor" field.
func ProcessorLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldProcessor, v))
}

// ProcessorLTE applies the LTE predicate on the "processor" field.
func ProcessorLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldProcessor, v))
}

// ProcessorContains applies the Contains predicate on the "processor" field.
func ProcessorContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldProcessor, v))
}

// ProcessorHasPrefix applies the HasPrefix predicate on the "processor" field.
func ProcessorHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldProcessor, v))
}

// ProcessorHasSuffix applies the HasSuffix predicate on the "processor" field.
func ProcessorHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldProcessor, v))
}

// ProcessorEqualFold applies the EqualFold predicate on the "processor" field.
func ProcessorEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldProcessor, v))
}

// ProcessorContainsFold applies the ContainsFold predicate on the "processor" field.
func ProcessorContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldProcessor, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// TranscriptCharsEQ applies the EQ predicate on the "transcript_chars" field.
func TranscriptCharsEQ(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldTranscriptChars, v))
}

// TranscriptCharsNEQ applies the NEQ predicate on the "transcript_chars" field.
func TranscriptCharsNEQ(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldTranscriptChars, v))
}

// TranscriptCharsIn applies the In predicate on the "transcript_chars" field.
func TranscriptCharsIn(vs ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldTranscriptChars, vs...))
}

// TranscriptCharsNotIn applies the NotIn predicate on the "transcript_chars" field.
func TranscriptCharsNotIn(vs ...int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldTranscriptChars, vs...))
}

// TranscriptCharsGT applies the GT predicate on the "transcript_chars" field.
func TranscriptCharsGT(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldTranscriptChars, v))
}

// TranscriptCharsGTE applies the GTE predicate on the "transcript_chars" field.
func TranscriptCharsGTE(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldTranscriptChars, v))
}

// TranscriptCharsLT applies the LT predicate on the "transcript_chars" field.
func TranscriptCharsLT(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldTranscriptChars, v))
}

// TranscriptCharsLTE applies the LTE predicate on the "transcript_chars" field.
func TranscriptCharsLTE(v int) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldTranscriptChars, v))
}

// EngagementScoreEQ applies the EQ predicate on the "engagement_score" field.
func EngagementScoreEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldEngagementScore, v))
}

// EngagementScoreNEQ applies the NEQ predicate on the "engagement_score" field.
func EngagementScoreNEQ(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldEngagementScore, v))
}

// EngagementScoreIn applies the In predicate on the "engagement_score" field.
func EngagementScoreIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldEngagementScore, vs...))
}

// EngagementScoreNotIn applies the NotIn predicate on the "engagement_score" field.
func EngagementScoreNotIn(vs ...float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldEngagementScore, vs...))
}

// EngagementScoreGT applies the GT predicate on the "engagement_score" field.
func EngagementScoreGT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldEngagementScore, v))
}

// EngagementScoreGTE applies the GTE predicate on the "engagement_score" field.
func EngagementScoreGTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldEngagementScore, v))
}

// EngagementScoreLT applies the LT predicate on the "engagement_score" field.
func EngagementScoreLT(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldEngagementScore, v))
}

// EngagementScoreLTE applies the LTE predicate on the "engagement_score" field.
func EngagementScoreLTE(v float64) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldEngagementScore, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldHasSuffix(FieldResult, v))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.FieldContainsFold(FieldResult, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnalysisEvent) predicate.AnalysisEvent {
	return predicate.AnalysisEvent(sql.NotPredicates(p))
}
