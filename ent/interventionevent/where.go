// Code generated by ent, DO NOT EDIT.

package interventionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sproutedu/sprout/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSessionID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldStudentID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTopic, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldKind, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldPriority, v))
}

// MessageKey applies equality check predicate on the "message_key" field. It's identical to MessageKeyEQ.
func MessageKey(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldMessageKey, v))
}

// Emotion applies equality check predicate on the "emotion" field. It's identical to EmotionEQ.
func Emotion(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldEmotion, v))
}

// Phase applies equality check predicate on the "phase" field. It's identical to PhaseEQ.
func Phase(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldPhase, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldStudentID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldTopic, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldKind, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldPriority, v))
}

// PriorityContains applies the Contains predicate on the "priority" field.
func PriorityContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldPriority, v))
}

// PriorityHasPrefix applies the HasPrefix predicate on the "priority" field.
func PriorityHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldPriority, v))
}

// PriorityHasSuffix applies the HasSuffix predicate on the "priority" field.
func PriorityHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldPriority, v))
}

// PriorityEqualFold applies the EqualFold predicate on the "priority" field.
func PriorityEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldPriority, v))
}

// PriorityContainsFold applies the ContainsFold predicate on the "priority" field.
func PriorityContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldPriority, v))
}

// MessageKeyEQ applies the EQ predicate on the "message_key" field.
func MessageKeyEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldMessageKey, v))
}

// MessageKeyNEQ applies the NEQ predicate on the "message_key" field.
func MessageKeyNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldMessageKey, v))
}

// MessageKeyIn applies the In predicate on the "message_key" field.
func MessageKeyIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldMessageKey, vs...))
}

// MessageKeyNotIn applies the NotIn predicate on the "message_key" field.
func MessageKeyNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldMessageKey, vs...))
}

// MessageKeyGT applies the GT predicate on the "message_key" field.
func MessageKeyGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldMessageKey, v))
}

// MessageKeyGTE applies the GTE predicate on the "message_key" field.
func MessageKeyGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldMessageKey, v))
}

// MessageKeyLT applies the LT predicate on the "message_key" field.
func MessageKeyLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldMessageKey, v))
}

// MessageKeyLTE applies the LTE predicate on the "message_key" field.
func MessageKeyLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldMessageKey, v))
}

// MessageKeyContains applies the Contains predicate on the "message_key" field.
func MessageKeyContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldMessageKey, v))
}

// MessageKeyHasPrefix applies the HasPrefix predicate on the "message_key" field.
func MessageKeyHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldMessageKey, v))
}

// MessageKeyHasSuffix applies the HasSuffix predicate on the "message_key" field.
func MessageKeyHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldMessageKey, v))
}

// MessageKeyEqualFold applies the EqualFold predicate on the "message_key" field.
func MessageKeyEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldMessageKey, v))
}

// MessageKeyContainsFold applies the ContainsFold predicate on the "message_key" field.
func MessageKeyContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldMessageKey, v))
}

// EmotionEQ applies the EQ predicate on the "emotion" field.
func EmotionEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldEmotion, v))
}

// EmotionNEQ applies the NEQ predicate on the "emotion" field.
func EmotionNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldEmotion, v))
}

// EmotionIn applies the In predicate on the "emotion" field.
func EmotionIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldEmotion, vs...))
}

// EmotionNotIn applies the NotIn predicate on the "emotion" field.
func EmotionNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldEmotion, vs...))
}

// EmotionGT applies the GT predicate on the "emotion" field.
func EmotionGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldEmotion, v))
}

// EmotionGTE applies the GTE predicate on the "emotion" field.
func EmotionGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldEmotion, v))
}

// EmotionLT applies the LT predicate on the "emotion" field.
func EmotionLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldEmotion, v))
}

// EmotionLTE applies the LTE predicate on the "emotion" field.
func EmotionLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldEmotion, v))
}

// EmotionContains applies the Contains predicate on the "emotion" field.
func EmotionContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldEmotion, v))
}

// EmotionHasPrefix applies the HasPrefix predicate on the "emotion" field.
func EmotionHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldEmotion, v))
}

// EmotionHasSuffix applies the HasSuffix predicate on the "emotion" field.
func EmotionHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldEmotion, v))
}

// EmotionIsNil applies the IsNil predicate on the "emotion" field.
func EmotionIsNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIsNull(FieldEmotion))
}

// EmotionNotNil applies the NotNil predicate on the "emotion" field.
func EmotionNotNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotNull(FieldEmotion))
}

// EmotionEqualFold applies the EqualFold predicate on the "emotion" field.
func EmotionEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldEmotion, v))
}

// EmotionContainsFold applies the ContainsFold predicate on the "emotion" field.
func EmotionContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldEmotion, v))
}

// PhaseEQ applies the EQ predicate on the "phase" field.
func PhaseEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEQ(FieldPhase, v))
}

// PhaseNEQ applies the NEQ predicate on the "phase" field.
func PhaseNEQ(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNEQ(FieldPhase, v))
}

// PhaseIn applies the In predicate on the "phase" field.
func PhaseIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIn(FieldPhase, vs...))
}

// PhaseNotIn applies the NotIn predicate on the "phase" field.
func PhaseNotIn(vs ...string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotIn(FieldPhase, vs...))
}

// PhaseGT applies the GT predicate on the "phase" field.
func PhaseGT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGT(FieldPhase, v))
}

// PhaseGTE applies the GTE predicate on the "phase" field.
func PhaseGTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldGTE(FieldPhase, v))
}

// PhaseLT applies the LT predicate on the "phase" field.
func PhaseLT(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLT(FieldPhase, v))
}

// PhaseLTE applies the LTE predicate on the "phase" field.
func PhaseLTE(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldLTE(FieldPhase, v))
}

// PhaseContains applies the Contains predicate on the "phase" field.
func PhaseContains(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContains(FieldPhase, v))
}

// PhaseHasPrefix applies the HasPrefix predicate on the "phase" field.
func PhaseHasPrefix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasPrefix(FieldPhase, v))
}

// PhaseHasSuffix applies the HasSuffix predicate on the "phase" field.
func PhaseHasSuffix(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldHasSuffix(FieldPhase, v))
}

// PhaseIsNil applies the IsNil predicate on the "phase" field.
func PhaseIsNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldIsNull(FieldPhase))
}

// PhaseNotNil applies the NotNil predicate on the "phase" field.
func PhaseNotNil() predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldNotNull(FieldPhase))
}

// PhaseEqualFold applies the EqualFold predicate on the "phase" field.
func PhaseEqualFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldEqualFold(FieldPhase, v))
}

// PhaseContainsFold applies the ContainsFold predicate on the "phase" field.
func PhaseContainsFold(v string) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.FieldContainsFold(FieldPhase, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterventionEvent) predicate.InterventionEvent {
	return predicate.InterventionEvent(sql.NotPredicates(p))
}
