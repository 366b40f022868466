package quiz

import "github.com/abhisek/sciquest/internal/llm"

// quizSchema is the structured-output contract for a quiz.
var quizSchema = &llm.Schema{
	Name:        "topic-quiz",
	Description: "A multiple-choice quiz about a science topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": OptionCount,
							"maxItems": OptionCount,
						},
						"correct_index": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": OptionCount - 1,
						},
						"explanation": map[string]any{
							"type": "string",
						},
					},
					"required":             []string{"question", "options", "correct_index"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	},
}

type quizPayload struct {
	Questions []questionPayload `json:"questions"`
}

type questionPayload struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}
