// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonEvent is the predicate function for lessonevent builders.
type LessonEvent func(*sql.Selector)

// QuizEvent is the predicate function for quizevent builders.
type QuizEvent func(*sql.Selector)
