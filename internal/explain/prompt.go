package explain

import (
	"fmt"
	"strings"

	"github.com/abhisek/sciquest/internal/content"
)

const systemPrompt = `You are SciQuest, a science educator who makes any topic
clear and exciting. You explain accurately, never invent facts, and always
answer with the exact JSON structure requested. Do not wrap the JSON in
markdown fences or add any text outside it.`

func buildPrompt(topic string, difficulty content.Difficulty) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Explain the science topic %q for %s.\n\n", topic, difficulty.Audience())
	b.WriteString("Respond with JSON containing:\n")
	b.WriteString("- \"title\": a short engaging title for the lesson\n")

	switch difficulty {
	case content.Beginner:
		b.WriteString("- \"explanation\": 2-3 short paragraphs using everyday words and one simple analogy\n")
	case content.Advanced:
		b.WriteString("- \"explanation\": 3-4 paragraphs covering the underlying mechanism, with concrete numbers where they exist\n")
	default:
		b.WriteString("- \"explanation\": 3 paragraphs balancing intuition with correct terminology\n")
	}

	fmt.Fprintf(&b, "- \"fun_facts\": exactly %d surprising, true facts about the topic, each one sentence\n", FunFactCount)
	return b.String()
}
