// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_index", Type: field.TypeInt},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_index", Type: field.TypeInt},
		{Name: "chosen_index", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_ms", Type: field.TypeInt64, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonEventsColumns holds the columns for the "lesson_events" table.
	LessonEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString, Size: 2147483647},
		{Name: "fun_facts", Type: field.TypeJSON, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "llm"},
	}
	// LessonEventsTable holds the schema information for the "lesson_events" table.
	LessonEventsTable = &schema.Table{
		Name:       "lesson_events",
		Columns:    LessonEventsColumns,
		PrimaryKey: []*schema.Column{LessonEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessonevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[1]},
			},
			{
				Name:    "lessonevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[2]},
			},
			{
				Name:    "lessonevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[3]},
			},
			{
				Name:    "lessonevent_topic",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[4]},
			},
			{
				Name:    "lessonevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{LessonEventsColumns[6]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "questions", Type: field.TypeInt, Default: 0},
		{Name: "correct", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[2]},
			},
			{
				Name:    "quizevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[3]},
			},
			{
				Name:    "quizevent_topic",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		LlmRequestEventsTable,
		LessonEventsTable,
		QuizEventsTable,
	}
)

func init() {
}
