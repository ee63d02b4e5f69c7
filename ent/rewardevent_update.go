// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/sproutedu/sprout/ent/predicate"
	"github.com/sproutedu/sprout/ent/rewardevent"
)

// RewardEventUpdate is the builder for updating RewardEvent entities.
type RewardEventUpdate struct {
	config
	hooks    []Hook
	mutation *RewardEventMutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdate) Where(ps ...predicate.RewardEvent) *RewardEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RewardEventUpdate) SetSessionID(v string) *RewardEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableSessionID(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *RewardEventUpdate) SetStudentID(v string) *RewardEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableStudentID(v *string) *RewardEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *RewardEventUpdate) SetXp(v int) *RewardEventUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableXp(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *RewardEventUpdate) AddXp(v int) *RewardEventUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetBadgeXp sets the "badge_xp" field.
func (_u *RewardEventUpdate) SetBadgeXp(v int) *RewardEventUpdate {
	_u.mutation.ResetBadgeXp()
	_u.mutation.SetBadgeXp(v)
	return _u
}

// SetNillableBadgeXp sets the "badge_xp" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableBadgeXp(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetBadgeXp(*v)
	}
	return _u
}

// AddBadgeXp adds value to the "badge_xp" field.
func (_u *RewardEventUpdate) AddBadgeXp(v int) *RewardEventUpdate {
	_u.mutation.AddBadgeXp(v)
	return _u
}

// SetBadges sets the "badges" field.
func (_u *RewardEventUpdate) SetBadges(v []string) *RewardEventUpdate {
	_u.mutation.SetBadges(v)
	return _u
}

// AppendBadges appends value to the "badges" field.
func (_u *RewardEventUpdate) AppendBadges(v []string) *RewardEventUpdate {
	_u.mutation.AppendBadges(v)
	return _u
}

// ClearBadges clears the value of the "badges" field.
func (_u *RewardEventUpdate) ClearBadges() *RewardEventUpdate {
	_u.mutation.ClearBadges()
	return _u
}

// SetWorlds sets the "worlds" field.
func (_u *RewardEventUpdate) SetWorlds(v []string) *RewardEventUpdate {
	_u.mutation.SetWorlds(v)
	return _u
}

// AppendWorlds appends value to the "worlds" field.
func (_u *RewardEventUpdate) AppendWorlds(v []string) *RewardEventUpdate {
	_u.mutation.AppendWorlds(v)
	return _u
}

// ClearWorlds clears the value of the "worlds" field.
func (_u *RewardEventUpdate) ClearWorlds() *RewardEventUpdate {
	_u.mutation.ClearWorlds()
	return _u
}

// SetLevelBefore sets the "level_before" field.
func (_u *RewardEventUpdate) SetLevelBefore(v int) *RewardEventUpdate {
	_u.mutation.ResetLevelBefore()
	_u.mutation.SetLevelBefore(v)
	return _u
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableLevelBefore(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetLevelBefore(*v)
	}
	return _u
}

// AddLevelBefore adds value to the "level_before" field.
func (_u *RewardEventUpdate) AddLevelBefore(v int) *RewardEventUpdate {
	_u.mutation.AddLevelBefore(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *RewardEventUpdate) SetLevelAfter(v int) *RewardEventUpdate {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *RewardEventUpdate) SetNillableLevelAfter(v *int) *RewardEventUpdate {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *RewardEventUpdate) AddLevelAfter(v int) *RewardEventUpdate {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdate) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RewardEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RewardEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := rewardevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(rewardevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(rewardevent.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(rewardevent.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BadgeXp(); ok {
		_spec.SetField(rewardevent.FieldBadgeXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBadgeXp(); ok {
		_spec.AddField(rewardevent.FieldBadgeXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badges(); ok {
		_spec.SetField(rewardevent.FieldBadges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBadges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rewardevent.FieldBadges, value)
		})
	}
	if _u.mutation.BadgesCleared() {
		_spec.ClearField(rewardevent.FieldBadges, field.TypeJSON)
	}
	if value, ok := _u.mutation.Worlds(); ok {
		_spec.SetField(rewardevent.FieldWorlds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorlds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rewardevent.FieldWorlds, value)
		})
	}
	if _u.mutation.WorldsCleared() {
		_spec.ClearField(rewardevent.FieldWorlds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LevelBefore(); ok {
		_spec.SetField(rewardevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelBefore(); ok {
		_spec.AddField(rewardevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(rewardevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(rewardevent.FieldLevelAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RewardEventUpdateOne is the builder for updating a single RewardEvent entity.
type RewardEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RewardEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RewardEventUpdateOne) SetSessionID(v string) *RewardEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableSessionID(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *RewardEventUpdateOne) SetStudentID(v string) *RewardEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableStudentID(v *string) *RewardEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *RewardEventUpdateOne) SetXp(v int) *RewardEventUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableXp(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *RewardEventUpdateOne) AddXp(v int) *RewardEventUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetBadgeXp sets the "badge_xp" field.
func (_u *RewardEventUpdateOne) SetBadgeXp(v int) *RewardEventUpdateOne {
	_u.mutation.ResetBadgeXp()
	_u.mutation.SetBadgeXp(v)
	return _u
}

// SetNillableBadgeXp sets the "badge_xp" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableBadgeXp(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetBadgeXp(*v)
	}
	return _u
}

// AddBadgeXp adds value to the "badge_xp" field.
func (_u *RewardEventUpdateOne) AddBadgeXp(v int) *RewardEventUpdateOne {
	_u.mutation.AddBadgeXp(v)
	return _u
}

// SetBadges sets the "badges" field.
func (_u *RewardEventUpdateOne) SetBadges(v []string) *RewardEventUpdateOne {
	_u.mutation.SetBadges(v)
	return _u
}

// AppendBadges appends value to the "badges" field.
func (_u *RewardEventUpdateOne) AppendBadges(v []string) *RewardEventUpdateOne {
	_u.mutation.AppendBadges(v)
	return _u
}

// ClearBadges clears the value of the "badges" field.
func (_u *RewardEventUpdateOne) ClearBadges() *RewardEventUpdateOne {
	_u.mutation.ClearBadges()
	return _u
}

// SetWorlds sets the "worlds" field.
func (_u *RewardEventUpdateOne) SetWorlds(v []string) *RewardEventUpdateOne {
	_u.mutation.SetWorlds(v)
	return _u
}

// AppendWorlds appends value to the "worlds" field.
func (_u *RewardEventUpdateOne) AppendWorlds(v []string) *RewardEventUpdateOne {
	_u.mutation.AppendWorlds(v)
	return _u
}

// ClearWorlds clears the value of the "worlds" field.
func (_u *RewardEventUpdateOne) ClearWorlds() *RewardEventUpdateOne {
	_u.mutation.ClearWorlds()
	return _u
}

// SetLevelBefore sets the "level_before" field.
func (_u *RewardEventUpdateOne) SetLevelBefore(v int) *RewardEventUpdateOne {
	_u.mutation.ResetLevelBefore()
	_u.mutation.SetLevelBefore(v)
	return _u
}

// SetNillableLevelBefore sets the "level_before" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableLevelBefore(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetLevelBefore(*v)
	}
	return _u
}

// AddLevelBefore adds value to the "level_before" field.
func (_u *RewardEventUpdateOne) AddLevelBefore(v int) *RewardEventUpdateOne {
	_u.mutation.AddLevelBefore(v)
	return _u
}

// SetLevelAfter sets the "level_after" field.
func (_u *RewardEventUpdateOne) SetLevelAfter(v int) *RewardEventUpdateOne {
	_u.mutation.ResetLevelAfter()
	_u.mutation.SetLevelAfter(v)
	return _u
}

// SetNillableLevelAfter sets the "level_after" field if the given value is not nil.
func (_u *RewardEventUpdateOne) SetNillableLevelAfter(v *int) *RewardEventUpdateOne {
	if v != nil {
		_u.SetLevelAfter(*v)
	}
	return _u
}

// AddLevelAfter adds value to the "level_after" field.
func (_u *RewardEventUpdateOne) AddLevelAfter(v int) *RewardEventUpdateOne {
	_u.mutation.AddLevelAfter(v)
	return _u
}

// Mutation returns the RewardEventMutation object of the builder.
func (_u *RewardEventUpdateOne) Mutation() *RewardEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RewardEventUpdate builder.
func (_u *RewardEventUpdateOne) Where(ps ...predicate.RewardEvent) *RewardEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RewardEventUpdateOne) Select(field string, fields ...string) *RewardEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RewardEvent entity.
func (_u *RewardEventUpdateOne) Save(ctx context.Context) (*RewardEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RewardEventUpdateOne) SaveX(ctx context.Context) *RewardEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RewardEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RewardEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RewardEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := rewardevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := rewardevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "RewardEvent.student_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RewardEventUpdateOne) sqlSave(ctx context.Context) (_node *RewardEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rewardevent.Table, rewardevent.Columns, sqlgraph.NewFieldSpec(rewardevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RewardEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rewardevent.FieldID)
		for _, f := range fields {
			if !rewardevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rewardevent.FieldID {
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
		_spec.SetField(rewardevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(rewardevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(rewardevent.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(rewardevent.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BadgeXp(); ok {
		_spec.SetField(rewardevent.FieldBadgeXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBadgeXp(); ok {
		_spec.AddField(rewardevent.FieldBadgeXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badges(); ok {
		_spec.SetField(rewardevent.FieldBadges, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBadges(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rewardevent.FieldBadges, value)
		})
	}
	if _u.mutation.BadgesCleared() {
		_spec.ClearField(rewardevent.FieldBadges, field.TypeJSON)
	}
	if value, ok := _u.mutation.Worlds(); ok {
		_spec.SetField(rewardevent.FieldWorlds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWorlds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rewardevent.FieldWorlds, value)
		})
	}
	if _u.mutation.WorldsCleared() {
		_spec.ClearField(rewardevent.FieldWorlds, field.TypeJSON)
	}
	if value, ok := _u.mutation.LevelBefore(); ok {
		_spec.SetField(rewardevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelBefore(); ok {
		_spec.AddField(rewardevent.FieldLevelBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelAfter(); ok {
		_spec.SetField(rewardevent.FieldLevelAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevelAfter(); ok {
		_spec.AddField(rewardevent.FieldLevelAfter, field.TypeInt, value)
	}
	_node = &RewardEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rewardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
