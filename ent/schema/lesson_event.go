package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonEvent records one generated topic lesson: the explanation and fun
// facts the learner saw, plus how the content was recovered from the model.
type LessonEvent struct {
	ent.Schema
}

func (LessonEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LessonEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping this lesson with its quiz and answers"),
		field.String("topic").
			NotEmpty().
			Comment("Topic as the learner typed it"),
		field.String("title").
			Default("").
			Comment("Display title produced by the model"),
		field.String("difficulty").
			NotEmpty().
			Comment("beginner, intermediate, or advanced"),
		field.Text("explanation").
			Comment("Full explanation text"),
		field.JSON("fun_facts", []string{}).
			Optional().
			Comment("Fixed-size list of fun facts"),
		field.String("source").
			Default("llm").
			Comment("How content was obtained: llm, scraped, or placeholder"),
	}
}

func (LessonEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("difficulty"),
	}
}
