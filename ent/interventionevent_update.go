// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sproutedu/sprout/ent/interventionevent"
	"github.com/sproutedu/sprout/ent/predicate"
)

// InterventionEventUpdate is the builder for updating InterventionEvent entities.
type InterventionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InterventionEventMutation
}

// Where appends a list predicates to the InterventionEventUpdate builder.
func (_u *InterventionEventUpdate) Where(ps ...predicate.InterventionEvent) *InterventionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InterventionEventUpdate) SetSessionID(v string) *InterventionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableSessionID(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *InterventionEventUpdate) SetStudentID(v string) *InterventionEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableStudentID(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *InterventionEventUpdate) SetTopic(v string) *InterventionEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableTopic(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *InterventionEventUpdate) SetKind(v string) *InterventionEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableKind(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InterventionEventUpdate) SetPriority(v string) *InterventionEventUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillablePriority(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetMessageKey sets the "message_key" field.
func (_u *InterventionEventUpdate) SetMessageKey(v string) *InterventionEventUpdate {
	_u.mutation.SetMessageKey(v)
	return _u
}

// SetNillableMessageKey sets the "message_key" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableMessageKey(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetMessageKey(*v)
	}
	return _u
}

// SetEmotion sets the "emotion" field.
func (_u *InterventionEventUpdate) SetEmotion(v string) *InterventionEventUpdate {
	_u.mutation.SetEmotion(v)
	return _u
}

// SetNillableEmotion sets the "emotion" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillableEmotion(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetEmotion(*v)
	}
	return _u
}

// ClearEmotion clears the value of the "emotion" field.
func (_u *InterventionEventUpdate) ClearEmotion() *InterventionEventUpdate {
	_u.mutation.ClearEmotion()
	return _u
}

// SetPhase sets the "phase" field.
func (_u *InterventionEventUpdate) SetPhase(v string) *InterventionEventUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *InterventionEventUpdate) SetNillablePhase(v *string) *InterventionEventUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *InterventionEventUpdate) ClearPhase() *InterventionEventUpdate {
	_u.mutation.ClearPhase()
	return _u
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_u *InterventionEventUpdate) Mutation() *InterventionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterventionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterventionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interventionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := interventionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := interventionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := interventionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := interventionevent.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageKey(); ok {
		if err := interventionevent.MessageKeyValidator(v); err != nil {
			return &ValidationError{Name: "message_key", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.message_key": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interventionevent.Table, interventionevent.Columns, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(interventionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(interventionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(interventionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(interventionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(interventionevent.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageKey(); ok {
		_spec.SetField(interventionevent.FieldMessageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Emotion(); ok {
		_spec.SetField(interventionevent.FieldEmotion, field.TypeString, value)
	}
	if _u.mutation.EmotionCleared() {
		_spec.ClearField(interventionevent.FieldEmotion, field.TypeString)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(interventionevent.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(interventionevent.FieldPhase, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interventionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterventionEventUpdateOne is the builder for updating a single InterventionEvent entity.
type InterventionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterventionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InterventionEventUpdateOne) SetSessionID(v string) *InterventionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableSessionID(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *InterventionEventUpdateOne) SetStudentID(v string) *InterventionEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableStudentID(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *InterventionEventUpdateOne) SetTopic(v string) *InterventionEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableTopic(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *InterventionEventUpdateOne) SetKind(v string) *InterventionEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableKind(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InterventionEventUpdateOne) SetPriority(v string) *InterventionEventUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillablePriority(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetMessageKey sets the "message_key" field.
func (_u *InterventionEventUpdateOne) SetMessageKey(v string) *InterventionEventUpdateOne {
	_u.mutation.SetMessageKey(v)
	return _u
}

// SetNillableMessageKey sets the "message_key" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableMessageKey(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetMessageKey(*v)
	}
	return _u
}

// SetEmotion sets the "emotion" field.
func (_u *InterventionEventUpdateOne) SetEmotion(v string) *InterventionEventUpdateOne {
	_u.mutation.SetEmotion(v)
	return _u
}

// SetNillableEmotion sets the "emotion" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillableEmotion(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetEmotion(*v)
	}
	return _u
}

// ClearEmotion clears the value of the "emotion" field.
func (_u *InterventionEventUpdateOne) ClearEmotion() *InterventionEventUpdateOne {
	_u.mutation.ClearEmotion()
	return _u
}

// SetPhase sets the "phase" field.
func (_u *InterventionEventUpdateOne) SetPhase(v string) *InterventionEventUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *InterventionEventUpdateOne) SetNillablePhase(v *string) *InterventionEventUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// ClearPhase clears the value of the "phase" field.
func (_u *InterventionEventUpdateOne) ClearPhase() *InterventionEventUpdateOne {
	_u.mutation.ClearPhase()
	return _u
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_u *InterventionEventUpdateOne) Mutation() *InterventionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterventionEventUpdate builder.
func (_u *InterventionEventUpdateOne) Where(ps ...predicate.InterventionEvent) *InterventionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterventionEventUpdateOne) Select(field string, fields ...string) *InterventionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InterventionEvent entity.
func (_u *InterventionEventUpdateOne) Save(ctx context.Context) (*InterventionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterventionEventUpdateOne) SaveX(ctx context.Context) *InterventionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterventionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterventionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InterventionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := interventionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := interventionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := interventionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := interventionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := interventionevent.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageKey(); ok {
		if err := interventionevent.MessageKeyValidator(v); err != nil {
			return &ValidationError{Name: "message_key", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.message_key": %w`, err)}
		}
	}
	return nil
}

func (_u *InterventionEventUpdateOne) sqlSave(ctx context.Context) (_node *InterventionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interventionevent.Table, interventionevent.Columns, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InterventionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interventionevent.FieldID)
		for _, f := range fields {
			if !interventionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interventionevent.FieldID {
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
		_spec.SetField(interventionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(interventionevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(interventionevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(interventionevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(interventionevent.FieldPriority, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageKey(); ok {
		_spec.SetField(interventionevent.FieldMessageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Emotion(); ok {
		_spec.SetField(interventionevent.FieldEmotion, field.TypeString, value)
	}
	if _u.mutation.EmotionCleared() {
		_spec.ClearField(interventionevent.FieldEmotion, field.TypeString)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(interventionevent.FieldPhase, field.TypeString, value)
	}
	if _u.mutation.PhaseCleared() {
		_spec.ClearField(interventionevent.FieldPhase, field.TypeString)
	}
	_node = &InterventionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interventionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
