// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/sciquest/ent/answerevent"
	"github.com/abhisek/sciquest/ent/lessonevent"
	"github.com/abhisek/sciquest/ent/llmrequestevent"
	"github.com/abhisek/sciquest/ent/quizevent"
	"github.com/abhisek/sciquest/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[2].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[7].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int64)
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
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescTopic is the schema descriptor for topic field.
	lessoneventDescTopic := lessoneventFields[1].Descriptor()
	// lessonevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	lessonevent.TopicValidator = lessoneventDescTopic.Validators[0].(func(string) error)
	// lessoneventDescTitle is the schema descriptor for title field.
	lessoneventDescTitle := lessoneventFields[2].Descriptor()
	// lessonevent.DefaultTitle holds the default value on creation for the title field.
	lessonevent.DefaultTitle = lessoneventDescTitle.Default.(string)
	// lessoneventDescDifficulty is the schema descriptor for difficulty field.
	lessoneventDescDifficulty := lessoneventFields[3].Descriptor()
	// lessonevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	lessonevent.DifficultyValidator = lessoneventDescDifficulty.Validators[0].(func(string) error)
	// lessoneventDescSource is the schema descriptor for source field.
	lessoneventDescSource := lessoneventFields[6].Descriptor()
	// lessonevent.DefaultSource holds the default value on creation for the source field.
	lessonevent.DefaultSource = lessoneventDescSource.Default.(string)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescTopic is the schema descriptor for topic field.
	quizeventDescTopic := quizeventFields[1].Descriptor()
	// quizevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizevent.TopicValidator = quizeventDescTopic.Validators[0].(func(string) error)
	// quizeventDescDifficulty is the schema descriptor for difficulty field.
	quizeventDescDifficulty := quizeventFields[2].Descriptor()
	// quizevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	quizevent.DifficultyValidator = quizeventDescDifficulty.Validators[0].(func(string) error)
	// quizeventDescQuestions is the schema descriptor for questions field.
	quizeventDescQuestions := quizeventFields[3].Descriptor()
	// quizevent.DefaultQuestions holds the default value on creation for the questions field.
	quizevent.DefaultQuestions = quizeventDescQuestions.Default.(int)
	// quizeventDescCorrect is the schema descriptor for correct field.
	quizeventDescCorrect := quizeventFields[4].Descriptor()
	// quizevent.DefaultCorrect holds the default value on creation for the correct field.
	quizevent.DefaultCorrect = quizeventDescCorrect.Default.(int)
	// quizeventDescDurationSecs is the schema descriptor for duration_secs field.
	quizeventDescDurationSecs := quizeventFields[5].Descriptor()
	// quizevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	quizevent.DefaultDurationSecs = quizeventDescDurationSecs.Default.(int)
}
