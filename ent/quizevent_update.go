// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/sciquest/ent/predicate"
	"github.com/abhisek/sciquest/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizEventUpdate) SetSessionID(v string) *QuizEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableSessionID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizEventUpdate) SetTopic(v string) *QuizEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableTopic(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizEventUpdate) SetDifficulty(v string) *QuizEventUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableDifficulty(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizEventUpdate) SetQuestions(v int) *QuizEventUpdate {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuestions(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *QuizEventUpdate) AddQuestions(v int) *QuizEventUpdate {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizEventUpdate) SetCorrect(v int) *QuizEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCorrect(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *QuizEventUpdate) AddCorrect(v int) *QuizEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *QuizEventUpdate) SetDurationSecs(v int) *QuizEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableDurationSecs(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *QuizEventUpdate) AddDurationSecs(v int) *QuizEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quizevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(quizevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(quizevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(quizevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizEventUpdateOne) SetSessionID(v string) *QuizEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableSessionID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizEventUpdateOne) SetTopic(v string) *QuizEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableTopic(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizEventUpdateOne) SetDifficulty(v string) *QuizEventUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableDifficulty(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *QuizEventUpdateOne) SetQuestions(v int) *QuizEventUpdateOne {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuestions(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *QuizEventUpdateOne) AddQuestions(v int) *QuizEventUpdateOne {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuizEventUpdateOne) SetCorrect(v int) *QuizEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCorrect(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *QuizEventUpdateOne) AddCorrect(v int) *QuizEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *QuizEventUpdateOne) SetDurationSecs(v int) *QuizEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableDurationSecs(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *QuizEventUpdateOne) AddDurationSecs(v int) *QuizEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := quizevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizevent.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := quizevent.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.difficulty": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
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
		_spec.SetField(quizevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(quizevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(quizevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(quizevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(quizevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(quizevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
