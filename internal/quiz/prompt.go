package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/sciquest/internal/content"
)

const systemPrompt = `You are SciQuest, a science educator writing quiz
questions. Every question must be factually correct, have exactly one right
answer, and use plausible but clearly wrong distractors. Always answer with
the exact JSON structure requested. Do not wrap the JSON in markdown fences
or add any text outside it.`

func buildPrompt(topic string, difficulty content.Difficulty) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a %d-question multiple-choice quiz about %q, pitched at %s.\n\n",
		QuestionCount, topic, difficulty.Audience())
	b.WriteString("Respond with JSON containing a \"questions\" array. Each question has:\n")
	b.WriteString("- \"question\": the question text\n")
	fmt.Fprintf(&b, "- \"options\": exactly %d answer choices, no letter prefixes\n", OptionCount)
	b.WriteString("- \"correct_index\": the zero-based index of the right option\n")
	b.WriteString("- \"explanation\": one sentence on why the right answer is correct\n\n")
	b.WriteString("Vary which index holds the correct answer. Do not reuse options across questions.\n")
	return b.String()
}
