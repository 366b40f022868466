package quiz

// AnswerOutcome is the graded result of one question.
type AnswerOutcome struct {
	Question    Question
	ChosenIndex int // -1 when skipped
	Correct     bool
}

// Result is the graded outcome of a full quiz.
type Result struct {
	Total    int
	Correct  int
	Outcomes []AnswerOutcome
}

// Percent returns the score as a 0-100 integer. An empty quiz scores 0.
func (r Result) Percent() int {
	if r.Total == 0 {
		return 0
	}
	return r.Correct * 100 / r.Total
}

// Message returns an encouragement line matched to the score.
func (r Result) Message() string {
	switch p := r.Percent(); {
	case p == 100:
		return "Perfect score! You've mastered this topic."
	case p >= 80:
		return "Excellent work! You really know your stuff."
	case p >= 60:
		return "Good job! A quick re-read would lock it in."
	case p >= 40:
		return "Not bad! Review the explanation and try again."
	default:
		return "Keep exploring! Every scientist starts somewhere."
	}
}

// Grade scores chosen answer indexes against the quiz. A missing or
// out-of-range choice counts as a skip, recorded as -1.
func Grade(q *Quiz, chosen []int) Result {
	r := Result{Total: len(q.Questions)}

	for i, question := range q.Questions {
		idx := -1
		if i < len(chosen) && chosen[i] >= 0 && chosen[i] < len(question.Options) {
			idx = chosen[i]
		}

		correct := idx == question.CorrectIndex
		if correct {
			r.Correct++
		}
		r.Outcomes = append(r.Outcomes, AnswerOutcome{
			Question:    question,
			ChosenIndex: idx,
			Correct:     correct,
		})
	}
	return r
}
