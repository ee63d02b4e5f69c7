// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sproutedu/sprout/ent/rewardevent"
)

// RewardEventCreate is the builder for creating a RewardEvent entity.
type RewardEventCreate struct {
	config
	mutation *RewardEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RewardEventCreate) SetSequence(v int64) *RewardEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RewardEventCreate) SetTimestamp(v time.Time) *RewardEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableTimestamp(v *time.Time) *RewardEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RewardEventCreate) SetSessionID(v string) *RewardEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *RewardEventCreate) SetStudentID(v string) *RewardEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *RewardEventCreate) SetXp(v int) *RewardEventCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableXp(v *int) *RewardEventCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetBadgeXp sets the "badge_xp" field.
func (_c *RewardEventCreate) SetBadgeXp(v int) *RewardEventCreate {
	_c.mutation.SetBadgeXp(v)
	return _c
}

// SetNillableBadgeXp sets the "badge_xp" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableBadgeXp(v *int) *RewardEventCreate {
	if v != nil {
		_c.SetBadgeXp(*v)
	}
	return _c
}

// SetBadges sets the "badges" field.
func (_c *RewardEventCreate) SetBadges(v []string) *RewardEventCreate {
	_c.mutation.SetBadges(v)
	return _c
}

// SetWorlds sets the "worlds" field.
func (_c *RewardEventCreate) SetWorlds(v []string) *RewardEventCreate {
	_c.mutation.SetWorlds(v)
	return _c
}

// SetLevelBefore sets the "level_before" field.
func (_c *RewardEventCreate) SetLevelBefore(v int) *RewardEventCreate {
	_c.mutation.SetLevelBefore(v)
	return _c
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableLevelBefore(v *int) *RewardEventCreate {
	if v != nil {
		_c.SetLevelBefore(*v)
	}
	return _c
}

// SetLevelAfter sets the "level_after" field.
func (_c *RewardEventCreate) SetLevelAfter(v int) *RewardEventCreate {
	_c.mutation.SetLevelAfter(v)
	return _c
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_c *RewardEventCreate) SetNillableLevelAfter(v *int) *RewardEventCreate {
	if v != nil {
		_c.SetLevelAfter(*v)
	}
	return _c
}

// Mutation returns the RewardEventMutation object of the builder.
func (_c *RewardEventCreate) Mutation() *RewardEventMutation {
	return _c.mutation
}

// Save creates the RewardEvent in the database.
func (_c *RewardEventCreate) Save(ctx context.Context) (*RewardEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RewardEventCreate) SaveX(ctx context.Context) *RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RewardEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := rewardevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Xp(); !ok {
		v := rewardevent.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.BadgeXp(); !ok {
		v := rewardevent.DefaultBadgeXp
		_c.mutation.SetBadgeXp(v)
	}
	if _, ok := _c.mutation.LevelBefore(); !ok {
		v := rewardevent.DefaultLevelBefore
		_c.mutation.SetLevelBefore(v)
	}
	if _, ok := _c.mutation.LevelAfter(); !ok {
		v := rewardevent.DefaultLevelAfter
		_c.mutation.SetLevelAfter(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RewardEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RewardEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RewardEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RewardEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "RewardEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := rewardevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "RewardEvent.xp"`)}
	}
	if _, ok := _c.mutation.BadgeXp(); !ok {
		return &ValidationError{Name: "badge_xp", err: errors.New(`ent: missing required field "RewardEvent.badge_xp"`)}
	}
	if _, ok := _c.mutation.LevelBefore(); !ok {
		return &ValidationError{Name: "level_before", err: errors.New(`ent: missing required field "RewardEvent.level_before"`)}
	}
	if _, ok := _c.mutation.LevelAfter(); !ok {
		return &ValidationError{Name: "level_after", err: errors.New(`ent: missing required field "RewardEvent.level_after"`)}
	}
	return nil
}

func (_c *RewardEventCreate) sqlSave(ctx context.Context) (*RewardEvent, error) {
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

func (_c *RewardEventCreate) createSpec() (*RewardEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RewardEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rewardevent.Table, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(rewardevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(rewardevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(rewardevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(rewardevent.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.BadgeXp(); ok {
		_spec.SetField(rewardevent.FieldBadgeXp, field.TypeInt, value)
		_node.BadgeXp = value
	}
	if value, ok := _c.mutation.Badges(); ok {
		_spec.SetField(rewardevent.FieldBadges, field.TypeJSON, value)
		_node.Badges = value
	}
	if value, ok := _c.mutation.Worlds(); ok {
		_spec.SetField(rewardevent.FieldWorlds, field.TypeJSON, value)
		_node.Worlds = value
	}
	if value, ok := _c.mutation.LevelBefore(); ok {
		_spec.SetField(rewardevent.FieldLevelBefore, field.TypeInt, value)
		_node.LevelBefore = value
	}
	if value, ok := _c.mutation.LevelAfter(); ok {
		_spec.SetField(rewardevent.FieldLevelAfter, field.TypeInt, value)
		_node.LevelAfter = value
	}
	return _node, _spec
}

// RewardEventCreateBulk is the builder for creating many RewardEvent entities in bulk.
type RewardEventCreateBulk struct {
	config
	err      error
	builders []*RewardEventCreate
}

// Save creates the RewardEvent entities in the database.
func (_c *RewardEventCreateBulk) Save(ctx context.Context) ([]*RewardEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RewardEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RewardEventMutation)
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
func (_c *RewardEventCreateBulk) SaveX(ctx context.Context) []*RewardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RewardEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RewardEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
