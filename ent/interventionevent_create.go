// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sproutedu/sprout/ent/interventionevent"
)

// InterventionEventCreate is the builder for creating a InterventionEvent entity.
type InterventionEventCreate struct {
	config
	mutation *InterventionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InterventionEventCreate) SetSequence(v int64) *InterventionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InterventionEventCreate) SetTimestamp(v time.Time) *InterventionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableTimestamp(v *time.Time) *InterventionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *InterventionEventCreate) SetSessionID(v string) *InterventionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *InterventionEventCreate) SetStudentID(v string) *InterventionEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *InterventionEventCreate) SetTopic(v string) *InterventionEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *InterventionEventCreate) SetKind(v string) *InterventionEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *InterventionEventCreate) SetPriority(v string) *InterventionEventCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetMessageKey sets the "message_key" field.
func (_c *InterventionEventCreate) SetMessageKey(v string) *InterventionEventCreate {
	_c.mutation.SetMessageKey(v)
	return _c
}

// SetEmotion sets the "emotion" field.
func (_c *InterventionEventCreate) SetEmotion(v string) *InterventionEventCreate {
	_c.mutation.SetEmotion(v)
	return _c
}

// SetNillableEmotion sets the "emotion" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillableEmotion(v *string) *InterventionEventCreate {
	if v != nil {
		_c.SetEmotion(*v)
	}
	return _c
}

// SetPhase sets the "phase" field.
func (_c *InterventionEventCreate) SetPhase(v string) *InterventionEventCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *InterventionEventCreate) SetNillablePhase(v *string) *InterventionEventCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// Mutation returns the InterventionEventMutation object of the builder.
func (_c *InterventionEventCreate) Mutation() *InterventionEventMutation {
	return _c.mutation
}

// Save creates the InterventionEvent in the database.
func (_c *InterventionEventCreate) Save(ctx context.Context) (*InterventionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterventionEventCreate) SaveX(ctx context.Context) *InterventionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterventionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interventionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterventionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InterventionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InterventionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "InterventionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := interventionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "InterventionEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := interventionevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "InterventionEvent.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := interventionevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "InterventionEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := interventionevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "InterventionEvent.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := interventionevent.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageKey(); !ok {
		return &ValidationError{Name: "message_key", err: errors.New(`ent: missing required field "InterventionEvent.message_key"`)}
	}
	if v, ok := _c.mutation.MessageKey(); ok {
		if err := interventionevent.MessageKeyValidator(v); err != nil {
			return &ValidationError{Name: "message_key", err: fmt.Errorf(`ent: validator failed for field "InterventionEvent.message_key": %w`, err)}
		}
	}
	return nil
}

func (_c *InterventionEventCreate) sqlSave(ctx context.Context) (*InterventionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterventionEventCreate) createSpec() (*InterventionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InterventionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interventionevent.Table, sqlgraph.NewFieldSpec(interventionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interventionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interventionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interventionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(interventionevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(interventionevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(interventionevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(interventionevent.FieldPriority, field.TypeString, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.MessageKey(); ok {
		_spec.SetField(interventionevent.FieldMessageKey, field.TypeString, value)
		_node.MessageKey = value
	}
	if value, ok := _c.mutation.Emotion(); ok {
		_spec.SetField(interventionevent.FieldEmotion, field.TypeString, value)
		_node.Emotion = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(interventionevent.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	return _node, _spec
}

// InterventionEventCreateBulk is the builder for creating many InterventionEvent entities in bulk.
type InterventionEventCreateBulk struct {
	config
	err      error
	builders []*InterventionEventCreate
}

// Save creates the InterventionEvent entities in the database.
func (_c *InterventionEventCreateBulk) Save(ctx context.Context) ([]*InterventionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InterventionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterventionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterventionEventCreateBulk) SaveX(ctx context.Context) []*InterventionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterventionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterventionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
