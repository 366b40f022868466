package quiz

import (
	"regexp"
	"strings"
)

// Line patterns for scraping quizzes out of loose model text. Models write
// quizzes a few well-known ways: "Q1. ...", "Question 1: ...", "1) ...",
// options as "A) ..." or "b. ...", and an "Answer: C" line somewhere after.
var (
	questionLineRe = regexp.MustCompile(`^\s*(?:\*\*)?\s*(?:Q(?:uestion)?\s*)?(\d+)\s*[.):\-]\s*(?:\*\*)?\s*(.+?)\s*(?:\*\*)?\s*$`)
	optionLineRe   = regexp.MustCompile(`^\s*(?:\*\*)?\s*\(?([A-Da-d])[.):\-]\s*(.+?)\s*(?:\*\*)?\s*$`)
	answerLineRe   = regexp.MustCompile(`(?i)^\s*(?:\*\*)?\s*(?:correct\s+)?answer\s*[:\-]?\s*\(?([A-Da-d1-4])\)?`)
	explainLineRe  = regexp.MustCompile(`(?i)^\s*(?:\*\*)?\s*explanation\s*[:\-]?\s*(.*?)\s*(?:\*\*)?\s*$`)
)

// ParseText scrapes multiple-choice questions out of loose text. Questions
// missing options or an answer line are dropped rather than guessed at.
// Returns nil when the text contains no complete question.
func ParseText(raw string) []Question {
	lines := strings.Split(raw, "\n")

	var (
		questions []Question
		cur       *Question
		answered  bool
	)

	flush := func() {
		if cur != nil && answered {
			questions = append(questions, *cur)
		}
		cur = nil
		answered = false
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := optionLineRe.FindStringSubmatch(trimmed); m != nil && cur != nil {
			idx := optionIndex(m[1])
			// Options must arrive in order. An out-of-order letter means
			// this line is something else, like "D) all of the above"
			// quoted inside an explanation.
			if idx == len(cur.Options) && idx < OptionCount {
				cur.Options = append(cur.Options, strings.TrimSpace(m[2]))
				continue
			}
		}

		if m := answerLineRe.FindStringSubmatch(trimmed); m != nil && cur != nil {
			if idx := optionIndex(m[1]); idx >= 0 && idx < len(cur.Options) {
				cur.CorrectIndex = idx
				answered = true
			}
			continue
		}

		if m := explainLineRe.FindStringSubmatch(trimmed); m != nil && cur != nil {
			cur.Explanation = m[1]
			continue
		}

		if m := questionLineRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			cur = &Question{Text: strings.TrimSpace(m[2])}
			continue
		}

		// Continuation of question text before any options appear.
		if cur != nil && len(cur.Options) == 0 && !answered {
			cur.Text = strings.TrimSpace(cur.Text + " " + trimmed)
		}
	}
	flush()

	return sanitizeQuestions(questions)
}

// optionIndex maps an answer token to a zero-based option index.
// Accepts letters A-D in either case and digits 1-4.
func optionIndex(token string) int {
	if token == "" {
		return -1
	}
	c := token[0]
	switch {
	case c >= 'A' && c <= 'D':
		return int(c - 'A')
	case c >= 'a' && c <= 'd':
		return int(c - 'a')
	case c >= '1' && c <= '4':
		return int(c - '1')
	default:
		return -1
	}
}
