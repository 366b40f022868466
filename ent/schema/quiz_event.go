package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records the outcome of one completed quiz.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID linking back to the lesson"),
		field.String("topic").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty(),
		field.Int("questions").
			Default(0).
			Comment("Questions served"),
		field.Int("correct").
			Default(0).
			Comment("Questions answered correctly"),
		field.Int("duration_secs").
			Default(0).
			Comment("Time from first question to last answer"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
	}
}
