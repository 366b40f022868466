package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single quiz answer with full question context, so
// history can replay exactly what the learner saw.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("question_index").
			Comment("Zero-based position within the quiz"),
		field.Text("question_text").
			NotEmpty(),
		field.JSON("options", []string{}).
			Comment("The four options as displayed"),
		field.Int("correct_index").
			Comment("Index of the correct option"),
		field.Int("chosen_index").
			Comment("Index the learner picked"),
		field.Bool("correct"),
		field.Int64("time_ms").
			Default(0).
			Comment("Time spent on this question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
