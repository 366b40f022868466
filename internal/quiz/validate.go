package quiz

import "strings"

// sanitizeQuestions drops structurally broken questions and caps the list
// at QuestionCount. A question survives when it has text, exactly
// OptionCount non-empty distinct options, and a correct index in range.
func sanitizeQuestions(in []Question) []Question {
	out := make([]Question, 0, QuestionCount)
	for _, q := range in {
		if !validQuestion(q) {
			continue
		}
		q.Text = strings.TrimSpace(q.Text)
		for i := range q.Options {
			q.Options[i] = strings.TrimSpace(q.Options[i])
		}
		q.Explanation = strings.TrimSpace(q.Explanation)
		out = append(out, q)
		if len(out) == QuestionCount {
			break
		}
	}
	return out
}

// padQuestions tops the list up to QuestionCount with canned filler
// questions, so every quiz that ships has a full set of slots.
func padQuestions(in []Question) []Question {
	for _, filler := range fillerQuestions {
		if len(in) >= QuestionCount {
			break
		}
		in = append(in, filler)
	}
	return in
}

func validQuestion(q Question) bool {
	if strings.TrimSpace(q.Text) == "" {
		return false
	}
	if len(q.Options) != OptionCount {
		return false
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return false
	}

	seen := make(map[string]bool, OptionCount)
	for _, opt := range q.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if key == "" || seen[key] {
			return false
		}
		seen[key] = true
	}
	return true
}
