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
	"github.com/abhisek/sciquest/ent/lessonevent"
	"github.com/abhisek/sciquest/ent/predicate"
)

// LessonEventUpdate is the builder for updating LessonEvent entities.
type LessonEventUpdate struct {
	config
	hooks    []Hook
	mutation *LessonEventMutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdate) Where(ps ...predicate.LessonEvent) *LessonEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdate) SetSessionID(v string) *LessonEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSessionID(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonEventUpdate) SetTopic(v string) *LessonEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableTopic(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonEventUpdate) SetTitle(v string) *LessonEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableTitle(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LessonEventUpdate) SetDifficulty(v string) *LessonEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableDifficulty(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *LessonEventUpdate) SetExplanation(v string) *LessonEventUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableExplanation(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetFunFacts sets the "fun_facts" field.
func (_u *LessonEventUpdate) SetFunFacts(v []string) *LessonEventUpdate {
	_u.mutation.SetFunFacts(v)
	return _u
}

// AppendFunFacts appends value to the "fun_facts" field.
func (_u *LessonEventUpdate) AppendFunFacts(v []string) *LessonEventUpdate {
	_u.mutation.AppendFunFacts(v)
	return _u
}

// ClearFunFacts clears the value of the "fun_facts" field.
func (_u *LessonEventUpdate) ClearFunFacts() *LessonEventUpdate {
	_u.mutation.ClearFunFacts()
	return _u
}

// SetSource sets the "source" field.
func (_u *LessonEventUpdate) SetSource(v string) *LessonEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LessonEventUpdate) SetNillableSource(v *string) *LessonEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdate) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := lessonevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(lessonevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(lessonevent.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.FunFacts(); ok {
		_spec.SetField(lessonevent.FieldFunFacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFunFacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonevent.FieldFunFacts, value)
		})
	}
	if _u.mutation.FunFactsCleared() {
		_spec.ClearField(lessonevent.FieldFunFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lessonevent.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonEventUpdateOne is the builder for updating a single LessonEvent entity.
type LessonEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LessonEventUpdateOne) SetSessionID(v string) *LessonEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSessionID(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *LessonEventUpdateOne) SetTopic(v string) *LessonEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableTopic(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonEventUpdateOne) SetTitle(v string) *LessonEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableTitle(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *LessonEventUpdateOne) SetDifficulty(v string) *LessonEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableDifficulty(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *LessonEventUpdateOne) SetExplanation(v string) *LessonEventUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableExplanation(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetFunFacts sets the "fun_facts" field.
func (_u *LessonEventUpdateOne) SetFunFacts(v []string) *LessonEventUpdateOne {
	_u.mutation.SetFunFacts(v)
	return _u
}

// AppendFunFacts appends value to the "fun_facts" field.
func (_u *LessonEventUpdateOne) AppendFunFacts(v []string) *LessonEventUpdateOne {
	_u.mutation.AppendFunFacts(v)
	return _u
}

// ClearFunFacts clears the value of the "fun_facts" field.
func (_u *LessonEventUpdateOne) ClearFunFacts() *LessonEventUpdateOne {
	_u.mutation.ClearFunFacts()
	return _u
}

// SetSource sets the "source" field.
func (_u *LessonEventUpdateOne) SetSource(v string) *LessonEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LessonEventUpdateOne) SetNillableSource(v *string) *LessonEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the LessonEventMutation object of the builder.
func (_u *LessonEventUpdateOne) Mutation() *LessonEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonEventUpdate builder.
func (_u *LessonEventUpdateOne) Where(ps ...predicate.LessonEvent) *LessonEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonEventUpdateOne) Select(field string, fields ...string) *LessonEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonEvent entity.
func (_u *LessonEventUpdateOne) Save(ctx context.Context) (*LessonEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonEventUpdateOne) SaveX(ctx context.Context) *LessonEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := lessonevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := lessonevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := lessonevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "LessonEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonEventUpdateOne) sqlSave(ctx context.Context) (_node *LessonEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonevent.Table, lessonevent.Columns, sqlgraph.NewFieldSpec(lessonevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonevent.FieldID)
		for _, f := range fields {
			if !lessonevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonevent.FieldID {
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
		_spec.SetField(lessonevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(lessonevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessonevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(lessonevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(lessonevent.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.FunFacts(); ok {
		_spec.SetField(lessonevent.FieldFunFacts, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFunFacts(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lessonevent.FieldFunFacts, value)
		})
	}
	if _u.mutation.FunFactsCleared() {
		_spec.ClearField(lessonevent.FieldFunFacts, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(lessonevent.FieldSource, field.TypeString, value)
	}
	_node = &LessonEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
