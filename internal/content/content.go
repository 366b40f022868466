// Package content holds the small vocabulary shared by lesson and quiz
// generation: difficulty levels and topic normalization.
package content

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Difficulty selects how a topic is pitched.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists all levels in display order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// ParseDifficulty parses a difficulty name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "easy":
		return Beginner, nil
	case "intermediate", "medium":
		return Intermediate, nil
	case "advanced", "hard":
		return Advanced, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q (want beginner, intermediate, or advanced)", s)
	}
}

// Label returns the capitalized display form.
func (d Difficulty) Label() string {
	if d == "" {
		return ""
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Audience describes the target reader for prompt construction.
func (d Difficulty) Audience() string {
	switch d {
	case Beginner:
		return "a curious 10-year-old with no prior knowledge of the topic"
	case Intermediate:
		return "a high-school student comfortable with basic science vocabulary"
	case Advanced:
		return "a university student who wants mechanisms and real numbers"
	default:
		return "a general reader"
	}
}

// MaxTopicLen bounds topic input. Longer topics are truncated rather than
// rejected, matching how the input field behaves.
const MaxTopicLen = 120

// ErrEmptyTopic is returned for blank topic input.
var ErrEmptyTopic = errors.New("topic must not be empty")

// NormalizeTopic trims, collapses inner whitespace, and truncates the
// topic. Returns ErrEmptyTopic if nothing printable remains.
func NormalizeTopic(raw string) (string, error) {
	fields := strings.Fields(raw)
	topic := strings.Join(fields, " ")
	if topic == "" {
		return "", ErrEmptyTopic
	}

	hasPrintable := false
	for _, r := range topic {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			hasPrintable = true
			break
		}
	}
	if !hasPrintable {
		return "", ErrEmptyTopic
	}

	// Truncate on a rune boundary; a byte slice could split a multi-byte
	// character and leak invalid UTF-8 into prompts and the event log.
	if runes := []rune(topic); len(runes) > MaxTopicLen {
		topic = strings.TrimSpace(string(runes[:MaxTopicLen]))
	}
	return topic, nil
}
