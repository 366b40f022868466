// Package quiz generates and grades multiple-choice quizzes for a topic.
package quiz

import "github.com/abhisek/sciquest/internal/content"

const (
	// QuestionCount is the number of questions per quiz.
	QuestionCount = 5
	// OptionCount is the number of choices per question.
	OptionCount = 4
)

// Source records how a quiz was obtained.
type Source string

const (
	// SourceLLM means the quiz came back as valid structured output.
	SourceLLM Source = "llm"
	// SourceScraped means the quiz was recovered from loose model text.
	SourceScraped Source = "scraped"
	// SourcePlaceholder means generation failed and a canned quiz was used.
	SourcePlaceholder Source = "placeholder"
)

// Question is one multiple-choice question.
type Question struct {
	Text         string
	Options      []string
	CorrectIndex int
	// Explanation says why the correct answer is right. May be empty
	// when the model did not provide one.
	Explanation string
}

// Quiz is a set of questions on one topic.
type Quiz struct {
	Topic      string
	Difficulty content.Difficulty
	Questions  []Question
	Source     Source
}

// OptionLabel returns the display letter for an option index: A, B, C, D.
func OptionLabel(i int) string {
	if i < 0 || i >= 26 {
		return "?"
	}
	return string(rune('A' + i))
}
