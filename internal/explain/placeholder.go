package explain

import (
	"fmt"

	"github.com/abhisek/sciquest/internal/content"
)

// Placeholder builds a canned lesson for when generation fails entirely.
// It is honest about being a stand-in so the learner is not misled.
func Placeholder(topic string, difficulty content.Difficulty) *Lesson {
	return &Lesson{
		Topic:      topic,
		Title:      "Exploring " + titleCase(topic),
		Difficulty: difficulty,
		Explanation: fmt.Sprintf(
			"We couldn't generate an explanation of %q right now. "+
				"This usually means the AI service is unreachable or overloaded.\n\n"+
				"In the meantime: %s is a great topic to explore. Try asking again in a "+
				"moment, or pick it from your recent topics later.",
			topic, topic),
		FunFacts: normalizeFacts(nil, topic),
		Source:   SourcePlaceholder,
	}
}

// fillerFacts pads a fact list that came back short. Generic but true.
func fillerFacts(topic string) []string {
	return []string{
		fmt.Sprintf("Scientists are still actively researching %s today.", topic),
		fmt.Sprintf("You can find %s mentioned in school science curricula around the world.", topic),
		"Science explanations improve as new evidence comes in, so facts can be refined over time.",
		"Asking a more specific question about a topic often reveals its most surprising details.",
		"Most scientific discoveries started with someone asking a simple question.",
	}
}
