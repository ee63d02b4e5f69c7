// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sproutedu/sprout/ent/answerevent"
	"github.com/sproutedu/sprout/ent/interventionevent"
	"github.com/sproutedu/sprout/ent/llmrequestevent"
	"github.com/sproutedu/sprout/ent/rewardevent"
	"github.com/sproutedu/sprout/ent/schema"
	"github.com/sproutedu/sprout/ent/sessionevent"
	"github.com/sproutedu/sprout/ent/snapshot"
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
	// answereventDescStudentID is the schema descriptor for student_id field.
	answereventDescStudentID := answereventFields[1].Descriptor()
	// answerevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	answerevent.StudentIDValidator = answereventDescStudentID.Validators[0].(func(string) error)
	// answereventDescTopic is the schema descriptor for topic field.
	answereventDescTopic := answereventFields[2].Descriptor()
	// answerevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	answerevent.TopicValidator = answereventDescTopic.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[4].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[5].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[6].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescHintsUsed is the schema descriptor for hints_used field.
	answereventDescHintsUsed := answereventFields[10].Descriptor()
	// answerevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	answerevent.DefaultHintsUsed = answereventDescHintsUsed.Default.(int)
	// answereventDescAttempts is the schema descriptor for attempts field.
	answereventDescAttempts := answereventFields[11].Descriptor()
	// answerevent.DefaultAttempts holds the default value on creation for the attempts field.
	answerevent.DefaultAttempts = answereventDescAttempts.Default.(int)
	// answereventDescStreakAfter is the schema descriptor for streak_after field.
	answereventDescStreakAfter := answereventFields[12].Descriptor()
	// answerevent.DefaultStreakAfter holds the default value on creation for the streak_after field.
	answerevent.DefaultStreakAfter = answereventDescStreakAfter.Default.(int)
	// answereventDescMasteryAfter is the schema descriptor for mastery_after field.
	answereventDescMasteryAfter := answereventFields[13].Descriptor()
	// answerevent.DefaultMasteryAfter holds the default value on creation for the mastery_after field.
	answerevent.DefaultMasteryAfter = answereventDescMasteryAfter.Default.(int)
	// answereventDescDifficultyAfter is the schema descriptor for difficulty_after field.
	answereventDescDifficultyAfter := answereventFields[14].Descriptor()
	// answerevent.DifficultyAfterValidator is a validator for the "difficulty_after" field. It is called by the builders before save.
	answerevent.DifficultyAfterValidator = answereventDescDifficultyAfter.Validators[0].(func(string) error)
	// answereventDescDifficultyReason is the schema descriptor for difficulty_reason field.
	answereventDescDifficultyReason := answereventFields[15].Descriptor()
	// answerevent.DifficultyReasonValidator is a validator for the "difficulty_reason" field. It is called by the builders before save.
	answerevent.DifficultyReasonValidator = answereventDescDifficultyReason.Validators[0].(func(string) error)
	interventioneventMixin := schema.InterventionEvent{}.Mixin()
	interventioneventMixinFields0 := interventioneventMixin[0].Fields()
	_ = interventioneventMixinFields0
	interventioneventFields := schema.InterventionEvent{}.Fields()
	_ = interventioneventFields
	// interventioneventDescTimestamp is the schema descriptor for timestamp field.
	interventioneventDescTimestamp := interventioneventMixinFields0[1].Descriptor()
	// interventionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interventionevent.DefaultTimestamp = interventioneventDescTimestamp.Default.(func() time.Time)
	// interventioneventDescSessionID is the schema descriptor for session_id field.
	interventioneventDescSessionID := interventioneventFields[0].Descriptor()
	// interventionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	interventionevent.SessionIDValidator = interventioneventDescSessionID.Validators[0].(func(string) error)
	// interventioneventDescStudentID is the schema descriptor for student_id field.
	interventioneventDescStudentID := interventioneventFields[1].Descriptor()
	// interventionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	interventionevent.StudentIDValidator = interventioneventDescStudentID.Validators[0].(func(string) error)
	// interventioneventDescTopic is the schema descriptor for topic field.
	interventioneventDescTopic := interventioneventFields[2].Descriptor()
	// interventionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	interventionevent.TopicValidator = interventioneventDescTopic.Validators[0].(func(string) error)
	// interventioneventDescKind is the schema descriptor for kind field.
	interventioneventDescKind := interventioneventFields[3].Descriptor()
	// interventionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	interventionevent.KindValidator = interventioneventDescKind.Validators[0].(func(string) error)
	// interventioneventDescPriority is the schema descriptor for priority field.
	interventioneventDescPriority := interventioneventFields[4].Descriptor()
	// interventionevent.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	interventionevent.PriorityValidator = interventioneventDescPriority.Validators[0].(func(string) error)
	// interventioneventDescMessageKey is the schema descriptor for message_key field.
	interventioneventDescMessageKey := interventioneventFields[5].Descriptor()
	// interventionevent.MessageKeyValidator is a validator for the "message_key" field. It is called by the builders before save.
	interventionevent.MessageKeyValidator = interventioneventDescMessageKey.Validators[0].(func(string) error)
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
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescSessionID is the schema descriptor for session_id field.
	rewardeventDescSessionID := rewardeventFields[0].Descriptor()
	// rewardevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	rewardevent.SessionIDValidator = rewardeventDescSessionID.Validators[0].(func(string) error)
	// rewardeventDescStudentID is the schema descriptor for student_id field.
	rewardeventDescStudentID := rewardeventFields[1].Descriptor()
	// rewardevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	rewardevent.StudentIDValidator = rewardeventDescStudentID.Validators[0].(func(string) error)
	// rewardeventDescXp is the schema descriptor for xp field.
	rewardeventDescXp := rewardeventFields[2].Descriptor()
	// rewardevent.DefaultXp holds the default value on creation for the xp field.
	rewardevent.DefaultXp = rewardeventDescXp.Default.(int)
	// rewardeventDescBadgeXp is the schema descriptor for badge_xp field.
	rewardeventDescBadgeXp := rewardeventFields[3].Descriptor()
	// rewardevent.DefaultBadgeXp holds the default value on creation for the badge_xp field.
	rewardevent.DefaultBadgeXp = rewardeventDescBadgeXp.Default.(int)
	// rewardeventDescLevelBefore is the schema descriptor for level_before field.
	rewardeventDescLevelBefore := rewardeventFields[6].Descriptor()
	// rewardevent.DefaultLevelBefore holds the default value on creation for the level_before field.
	rewardevent.DefaultLevelBefore = rewardeventDescLevelBefore.Default.(int)
	// rewardeventDescLevelAfter is the schema descriptor for level_after field.
	rewardeventDescLevelAfter := rewardeventFields[7].Descriptor()
	// rewardevent.DefaultLevelAfter holds the default value on creation for the level_after field.
	rewardevent.DefaultLevelAfter = rewardeventDescLevelAfter.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescStudentID is the schema descriptor for student_id field.
	sessioneventDescStudentID := sessioneventFields[1].Descriptor()
	// sessionevent.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	sessionevent.StudentIDValidator = sessioneventDescStudentID.Validators[0].(func(string) error)
	// sessioneventDescTopic is the schema descriptor for topic field.
	sessioneventDescTopic := sessioneventFields[2].Descriptor()
	// sessionevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	sessionevent.TopicValidator = sessioneventDescTopic.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDifficulty is the schema descriptor for difficulty field.
	sessioneventDescDifficulty := sessioneventFields[4].Descriptor()
	// sessionevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	sessionevent.DifficultyValidator = sessioneventDescDifficulty.Validators[0].(func(string) error)
	// sessioneventDescQuestionsTotal is the schema descriptor for questions_total field.
	sessioneventDescQuestionsTotal := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestionsTotal holds the default value on creation for the questions_total field.
	sessionevent.DefaultQuestionsTotal = sessioneventDescQuestionsTotal.Default.(int)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescInterventionsUsed is the schema descriptor for interventions_used field.
	sessioneventDescInterventionsUsed := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultInterventionsUsed holds the default value on creation for the interventions_used field.
	sessionevent.DefaultInterventionsUsed = sessioneventDescInterventionsUsed.Default.(int)
	// sessioneventDescDurationMs is the schema descriptor for duration_ms field.
	sessioneventDescDurationMs := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	sessionevent.DefaultDurationMs = sessioneventDescDurationMs.Default.(int64)
	// sessioneventDescXpAwarded is the schema descriptor for xp_awarded field.
	sessioneventDescXpAwarded := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	sessionevent.DefaultXpAwarded = sessioneventDescXpAwarded.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescKind is the schema descriptor for kind field.
	snapshotDescKind := snapshotFields[0].Descriptor()
	// snapshot.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	snapshot.KindValidator = snapshotDescKind.Validators[0].(func(string) error)
	// snapshotDescKey is the schema descriptor for key field.
	snapshotDescKey := snapshotFields[1].Descriptor()
	// snapshot.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	snapshot.KeyValidator = snapshotDescKey.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[3].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
