// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sproutedu/sprout/ent/answerevent"
	"github.com/sproutedu/sprout/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnswerEventUpdate) SetStudentID(v string) *AnswerEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStudentID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerEventUpdate) SetTopic(v string) *AnswerEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTopic(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *AnswerEventUpdate) SetSubtopic(v string) *AnswerEventUpdate {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSubtopic(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// ClearSubtopic clears the value of the "subtopic" field.
func (_u *AnswerEventUpdate) ClearSubtopic() *AnswerEventUpdate {
	_u.mutation.ClearSubtopic()
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdate) SetQuestionType(v string) *AnswerEventUpdate {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdate) SetDifficulty(v string) *AnswerEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficulty(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *AnswerEventUpdate) SetValue(v string) *AnswerEventUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableValue(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int64) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int64) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int64) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AnswerEventUpdate) SetHintsUsed(v int) *AnswerEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableHintsUsed(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AnswerEventUpdate) AddHintsUsed(v int) *AnswerEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AnswerEventUpdate) SetAttempts(v int) *AnswerEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAttempts(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AnswerEventUpdate) AddAttempts(v int) *AnswerEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *AnswerEventUpdate) SetStreakAfter(v int) *AnswerEventUpdate {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStreakAfter(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *AnswerEventUpdate) AddStreakAfter(v int) *AnswerEventUpdate {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *AnswerEventUpdate) SetMasteryAfter(v int) *AnswerEventUpdate {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMasteryAfter(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *AnswerEventUpdate) AddMasteryAfter(v int) *AnswerEventUpdate {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetDifficultyAfter sets the "difficulty_after" field.
func (_u *AnswerEventUpdate) SetDifficultyAfter(v string) *AnswerEventUpdate {
	_u.mutation.SetDifficultyAfter(v)
	return _u
}

// SetNillableDifficultyAfter sets the "difficulty_after" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficultyAfter(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficultyAfter(*v)
	}
	return _u
}

// SetDifficultyReason sets the "difficulty_reason" field.
func (_u *AnswerEventUpdate) SetDifficultyReason(v string) *AnswerEventUpdate {
	_u.mutation.SetDifficultyReason(v)
	return _u
}

// SetNillableDifficultyReason sets the "difficulty_reason" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableDifficultyReason(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetDifficultyReason(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := answerevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyAfter(); ok {
		if err := answerevent.DifficultyAfterValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_after", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyReason(); ok {
		if err := answerevent.DifficultyReasonValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_reason", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(answerevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(answerevent.FieldSubtopic, field.TypeString, value)
	}
	if _u.mutation.SubtopicCleared() {
		_spec.ClearField(answerevent.FieldSubtopic, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(answerevent.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(answerevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(answerevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(answerevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(answerevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(answerevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(answerevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(answerevent.FieldMasteryAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(answerevent.FieldMasteryAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyAfter(); ok {
		_spec.SetField(answerevent.FieldDifficultyAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyReason(); ok {
		_spec.SetField(answerevent.FieldDifficultyReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AnswerEventUpdateOne) SetStudentID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStudentID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AnswerEventUpdateOne) SetTopic(v string) *AnswerEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTopic(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubtopic sets the "subtopic" field.
func (_u *AnswerEventUpdateOne) SetSubtopic(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSubtopic(v)
	return _u
}

// SetNillableSubtopic sets the "subtopic" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSubtopic(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSubtopic(*v)
	}
	return _u
}

// ClearSubtopic clears the value of the "subtopic" field.
func (_u *AnswerEventUpdateOne) ClearSubtopic() *AnswerEventUpdateOne {
	_u.mutation.ClearSubtopic()
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionType sets the "question_type" field.
func (_u *AnswerEventUpdateOne) SetQuestionType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetQuestionType(v)
	return _u
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *AnswerEventUpdateOne) SetDifficulty(v string) *AnswerEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficulty(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *AnswerEventUpdateOne) SetValue(v string) *AnswerEventUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableValue(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int64) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int64) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *AnswerEventUpdateOne) SetHintsUsed(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableHintsUsed(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *AnswerEventUpdateOne) AddHintsUsed(v int) *AnswerEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AnswerEventUpdateOne) SetAttempts(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAttempts(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AnswerEventUpdateOne) AddAttempts(v int) *AnswerEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *AnswerEventUpdateOne) SetStreakAfter(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStreakAfter(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *AnswerEventUpdateOne) AddStreakAfter(v int) *AnswerEventUpdateOne {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetMasteryAfter sets the "mastery_after" field.
func (_u *AnswerEventUpdateOne) SetMasteryAfter(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetMasteryAfter()
	_u.mutation.SetMasteryAfter(v)
	return _u
}

// SetNillableMasteryAfter sets the "mastery_after" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMasteryAfter(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMasteryAfter(*v)
	}
	return _u
}

// AddMasteryAfter adds value to the "mastery_after" field.
func (_u *AnswerEventUpdateOne) AddMasteryAfter(v int) *AnswerEventUpdateOne {
	_u.mutation.AddMasteryAfter(v)
	return _u
}

// SetDifficultyAfter sets the "difficulty_after" field.
func (_u *AnswerEventUpdateOne) SetDifficultyAfter(v string) *AnswerEventUpdateOne {
	_u.mutation.SetDifficultyAfter(v)
	return _u
}

// SetNillableDifficultyAfter sets the "difficulty_after" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficultyAfter(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficultyAfter(*v)
	}
	return _u
}

// SetDifficultyReason sets the "difficulty_reason" field.
func (_u *AnswerEventUpdateOne) SetDifficultyReason(v string) *AnswerEventUpdateOne {
	_u.mutation.SetDifficultyReason(v)
	return _u
}

// SetNillableDifficultyReason sets the "difficulty_reason" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableDifficultyReason(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetDifficultyReason(*v)
	}
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := answerevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := answerevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := answerevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := answerevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyAfter(); ok {
		if err := answerevent.DifficultyAfterValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_after", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty_after": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DifficultyReason(); ok {
		if err := answerevent.DifficultyReasonValidator(v); err != nil {
			return &ValidationError{Name: "difficulty_reason", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.difficulty_reason": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(answerevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(answerevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subtopic(); ok {
		_spec.SetField(answerevent.FieldSubtopic, field.TypeString, value)
	}
	if _u.mutation.SubtopicCleared() {
		_spec.ClearField(answerevent.FieldSubtopic, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(answerevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(answerevent.FieldValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(answerevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(answerevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(answerevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(answerevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(answerevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(answerevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryAfter(); ok {
		_spec.SetField(answerevent.FieldMasteryAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMasteryAfter(); ok {
		_spec.AddField(answerevent.FieldMasteryAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DifficultyAfter(); ok {
		_spec.SetField(answerevent.FieldDifficultyAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.DifficultyReason(); ok {
		_spec.SetField(answerevent.FieldDifficultyReason, field.TypeString, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
