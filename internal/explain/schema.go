package explain

import "github.com/abhisek/sciquest/internal/llm"

// lessonSchema is the structured-output contract for a topic lesson.
var lessonSchema = &llm.Schema{
	Name:        "topic-lesson",
	Description: "An explanation of a science topic with fun facts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short engaging lesson title",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "The topic explanation, in paragraphs",
				"minLength":   1,
			},
			"fun_facts": map[string]any{
				"type":        "array",
				"description": "Surprising true facts about the topic",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
			},
		},
		"required":             []string{"title", "explanation", "fun_facts"},
		"additionalProperties": false,
	},
}

// lessonPayload mirrors lessonSchema for decoding.
type lessonPayload struct {
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	FunFacts    []string `json:"fun_facts"`
}
