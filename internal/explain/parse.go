package explain

import (
	"regexp"
	"strings"

	"github.com/abhisek/sciquest/internal/content"
)

var (
	// Matches a "Fun Facts" style section header, with or without
	// markdown decoration.
	funFactsHeaderRe = regexp.MustCompile(`(?i)^\s*(?:#+\s*|\*\*)?\s*(?:\d+\s*)?fun\s*facts?\b`)

	// Matches list markers at the start of a line: "- ", "* ", "1.", "1)".
	listMarkerRe = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)

	// Markdown emphasis and heading decoration.
	markdownNoiseRe = regexp.MustCompile(`^\s*#+\s*|\*\*|__`)
)

// scrapeLessonText recovers a lesson from loose prose. The heuristic: the
// first short line is the title, everything before a "Fun Facts" header is
// the explanation, and list items after it are the facts. Without a header,
// list items anywhere in the text are treated as facts. Returns nil when
// no explanation body can be found.
func scrapeLessonText(topic string, difficulty content.Difficulty, raw string) *Lesson {
	lines := strings.Split(raw, "\n")

	var (
		title     string
		bodyLines []string
		facts     []string
		inFacts   bool
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if !inFacts {
				bodyLines = append(bodyLines, "")
			}
			continue
		}

		if funFactsHeaderRe.MatchString(trimmed) {
			inFacts = true
			continue
		}

		if inFacts {
			facts = append(facts, cleanFact(trimmed))
			continue
		}

		cleaned := markdownNoiseRe.ReplaceAllString(trimmed, "")
		cleaned = strings.TrimSpace(cleaned)

		// A short first line reads as a title, not body text.
		if title == "" && len(bodyLines) == 0 && len(cleaned) <= 80 && !strings.ContainsAny(cleaned, ".!?") {
			title = cleaned
			continue
		}

		if listMarkerRe.MatchString(trimmed) {
			facts = append(facts, cleanFact(trimmed))
			continue
		}

		bodyLines = append(bodyLines, cleaned)
	}

	explanation := strings.TrimSpace(strings.Join(bodyLines, "\n"))
	if explanation == "" {
		return nil
	}

	return &Lesson{
		Topic:       topic,
		Title:       normalizeTitle(title, topic),
		Difficulty:  difficulty,
		Explanation: explanation,
		FunFacts:    normalizeFacts(facts, topic),
		Source:      SourceScraped,
	}
}

func cleanFact(line string) string {
	s := listMarkerRe.ReplaceAllString(line, "")
	s = strings.ReplaceAll(s, "**", "")
	return strings.TrimSpace(s)
}

// normalizeTitle falls back to a title built from the topic when the model
// did not supply one.
func normalizeTitle(title, topic string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		return title
	}
	return "All About " + titleCase(topic)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// normalizeFacts trims, deduplicates markers, and forces exactly
// FunFactCount entries by truncating or padding with generic fillers.
func normalizeFacts(facts []string, topic string) []string {
	out := make([]string, 0, FunFactCount)
	for _, f := range facts {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
		if len(out) == FunFactCount {
			return out
		}
	}

	fillers := fillerFacts(topic)
	for i := 0; len(out) < FunFactCount; i++ {
		out = append(out, fillers[i%len(fillers)])
	}
	return out
}
