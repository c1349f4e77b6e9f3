// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/tutorlens/ent/analysisevent"
	"github.com/abhisek/tutorlens/ent/llmrequestevent"
	"github.com/abhisek/tutorlens/ent/mentalblock"
	"github.com/abhisek/tutorlens/ent/schema"
	"github.com/abhisek/tutorlens/ent/topicstate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescRunID is the schema descriptor for run_id field.
	analysiseventDescRunID := analysiseventFields[0].Descriptor()
	// analysisevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	analysisevent.RunIDValidator = analysiseventDescRunID.Validators[0].(func(string) error)
	// analysiseventDescKind is the schema descriptor for kind field.
	analysiseventDescKind := analysiseventFields[1].Descriptor()
	// analysisevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	analysisevent.KindValidator = analysiseventDescKind.Validators[0].(func(string) error)
	// analysiseventDescProcessor is the schema descriptor for processor field.
	analysiseventDescProcessor := analysiseventFields[2].Descriptor()
	// analysisevent.ProcessorValidator is a validator for the "processor" field. It is called by the builders before save.
	analysisevent.ProcessorValidator = analysiseventDescProcessor.Validators[0].(func(string) error)
	// analysiseventDescStudentID is the schema descriptor for student_id field.
	analysiseventDescStudentID := analysiseventFields[3].Descriptor()
	// analysisevent.DefaultStudentID holds the default value on creation for the student_id field.
	analysisevent.DefaultStudentID = analysiseventDescStudentID.Default.(string)
	// analysiseventDescTranscriptChars is the schema descriptor for transcript_chars field.
	analysiseventDescTranscriptChars := analysiseventFields[4].Descriptor()
	// analysisevent.DefaultTranscriptChars holds the default value on creation for the transcript_chars field.
	analysisevent.DefaultTranscriptChars = analysiseventDescTranscriptChars.Default.(int)
	// analysiseventDescEngagementScore is the schema descriptor for engagement_score field.
	analysiseventDescEngagementScore := analysiseventFields[5].Descriptor()
	// analysisevent.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	analysisevent.DefaultEngagementScore = analysiseventDescEngagementScore.Default.(float64)
	// analysiseventDescResult is the schema descriptor for result field.
	analysiseventDescResult := analysiseventFields[6].Descriptor()
	// analysisevent.DefaultResult holds the default value on creation for the result field.
	analysisevent.DefaultResult = analysiseventDescResult.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	mentalblockFields := schema.MentalBlock{}.Fields()
	_ = mentalblockFields
	// mentalblockDescDescription is the schema descriptor for description field.
	mentalblockDescDescription := mentalblockFields[0].Descriptor()
	// mentalblock.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	mentalblock.DescriptionValidator = mentalblockDescDescription.Validators[0].(func(string) error)
	// mentalblockDescBlockType is the schema descriptor for block_type field.
	mentalblockDescBlockType := mentalblockFields[1].Descriptor()
	// mentalblock.BlockTypeValidator is a validator for the "block_type" field. It is called by the builders before save.
	mentalblock.BlockTypeValidator = mentalblockDescBlockType.Validators[0].(func(string) error)
	// mentalblockDescSeverity is the schema descriptor for severity field.
	mentalblockDescSeverity := mentalblockFields[2].Descriptor()
	// mentalblock.DefaultSeverity holds the default value on creation for the severity field.
	mentalblock.DefaultSeverity = mentalblockDescSeverity.Default.(float64)
	// mentalblockDescFrequency is the schema descriptor for frequency field.
	mentalblockDescFrequency := mentalblockFields[3].Descriptor()
	// mentalblock.DefaultFrequency holds the default value on creation for the frequency field.
	mentalblock.DefaultFrequency = mentalblockDescFrequency.Default.(int)
	// mentalblockDescResolved is the schema descriptor for resolved field.
	mentalblockDescResolved := mentalblockFields[4].Descriptor()
	// mentalblock.DefaultResolved holds the default value on creation for the resolved field.
	mentalblock.DefaultResolved = mentalblockDescResolved.Default.(bool)
	// mentalblockDescStudentID is the schema descriptor for student_id field.
	mentalblockDescStudentID := mentalblockFields[5].Descriptor()
	// mentalblock.DefaultStudentID holds the default value on creation for the student_id field.
	mentalblock.DefaultStudentID = mentalblockDescStudentID.Default.(string)
	// mentalblockDescEvidence is the schema descriptor for evidence field.
	mentalblockDescEvidence := mentalblockFields[6].Descriptor()
	// mentalblock.DefaultEvidence holds the default value on creation for the evidence field.
	mentalblock.DefaultEvidence = mentalblockDescEvidence.Default.(string)
	// mentalblockDescFirstSeen is the schema descriptor for first_seen field.
	mentalblockDescFirstSeen := mentalblockFields[7].Descriptor()
	// mentalblock.DefaultFirstSeen holds the default value on creation for the first_seen field.
	mentalblock.DefaultFirstSeen = mentalblockDescFirstSeen.Default.(func() time.Time)
	// mentalblockDescLastSeen is the schema descriptor for last_seen field.
	mentalblockDescLastSeen := mentalblockFields[8].Descriptor()
	// mentalblock.DefaultLastSeen holds the default value on creation for the last_seen field.
	mentalblock.DefaultLastSeen = mentalblockDescLastSeen.Default.(func() time.Time)
	// mentalblock.UpdateDefaultLastSeen holds the default value on update for the last_seen field.
	mentalblock.UpdateDefaultLastSeen = mentalblockDescLastSeen.UpdateDefault.(func() time.Time)
	topicstateFields := schema.TopicState{}.Fields()
	_ = topicstateFields
	// topicstateDescName is the schema descriptor for name field.
	topicstateDescName := topicstateFields[0].Descriptor()
	// topicstate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topicstate.NameValidator = topicstateDescName.Validators[0].(func(string) error)
	// topicstateDescParent is the schema descriptor for parent field.
	topicstateDescParent := topicstateFields[1].Descriptor()
	// topicstate.DefaultParent holds the default value on creation for the parent field.
	topicstate.DefaultParent = topicstateDescParent.Default.(string)
	// topicstateDescMastery is the schema descriptor for mastery field.
	topicstateDescMastery := topicstateFields[2].Descriptor()
	// topicstate.DefaultMastery holds the default value on creation for the mastery field.
	topicstate.DefaultMastery = topicstateDescMastery.Default.(float64)
	// topicstateDescConfidence is the schema descriptor for confidence field.
	topicstateDescConfidence := topicstateFields[3].Descriptor()
	// topicstate.DefaultConfidence holds the default value on creation for the confidence field.
	topicstate.DefaultConfidence = topicstateDescConfidence.Default.(float64)
	// topicstateDescSessions is the schema descriptor for sessions field.
	topicstateDescSessions := topicstateFields[4].Descriptor()
	// topicstate.DefaultSessions holds the default value on creation for the sessions field.
	topicstate.DefaultSessions = topicstateDescSessions.Default.(int)
	// topicstateDescLastSeen is the schema descriptor for last_seen field.
	topicstateDescLastSeen := topicstateFields[5].Descriptor()
	// topicstate.DefaultLastSeen holds the default value on creation for the last_seen field.
	topicstate.DefaultLastSeen = topicstateDescLastSeen.Default.(func() time.Time)
	// topicstate.UpdateDefaultLastSeen holds the default value on update for the last_seen field.
	topicstate.UpdateDefaultLastSeen = topicstateDescLastSeen.UpdateDefault.(func() time.Time)
}
