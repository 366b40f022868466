// Package explain generates topic explanations with fun facts.
package explain

import "github.com/abhisek/sciquest/internal/content"

// FunFactCount is the number of fun facts every lesson carries. Shorter
// model output is padded, longer output is truncated.
const FunFactCount = 5

// Source records how a lesson was obtained.
type Source string

const (
	// SourceLLM means the lesson came back as valid structured output.
	SourceLLM Source = "llm"
	// SourceScraped means the lesson was recovered from loose model text.
	SourceScraped Source = "scraped"
	// SourcePlaceholder means generation failed and a canned lesson was used.
	SourcePlaceholder Source = "placeholder"
)

// Lesson is one generated explanation of a topic.
type Lesson struct {
	Topic       string
	Title       string
	Difficulty  content.Difficulty
	Explanation string
	FunFacts    []string
	Source      Source
}
