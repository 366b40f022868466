package quiz

import (
	"strings"
	"testing"
)

func TestParseTextNumberedFormat(t *testing.T) {
	raw := strings.Join([]string{
		"Q1. What planet is known as the Red Planet?",
		"A) Venus",
		"B) Mars",
		"C) Jupiter",
		"D) Mercury",
		"Answer: B",
		"Explanation: Iron oxide on the surface gives Mars its color.",
		"",
		"Q2. What gas do plants absorb from the air?",
		"A) Oxygen",
		"B) Nitrogen",
		"C) Carbon dioxide",
		"D) Helium",
		"Answer: C",
	}, "\n")

	questions := ParseText(raw)
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.Text != "What planet is known as the Red Planet?" {
		t.Errorf("unexpected question text %q", q.Text)
	}
	if q.CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1", q.CorrectIndex)
	}
	if q.Options[1] != "Mars" {
		t.Errorf("option B = %q, want Mars", q.Options[1])
	}
	if !strings.Contains(q.Explanation, "Iron oxide") {
		t.Errorf("explanation lost: %q", q.Explanation)
	}
	if questions[1].CorrectIndex != 2 {
		t.Errorf("Q2 correct index = %d, want 2", questions[1].CorrectIndex)
	}
}

func TestParseTextMarkdownDecorated(t *testing.T) {
	raw := strings.Join([]string{
		"**Question 1:** How many bones are in the adult human body?",
		"a. 106",
		"b. 206",
		"c. 306",
		"d. 406",
		"**Correct Answer: b**",
	}, "\n")

	questions := ParseText(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1", questions[0].CorrectIndex)
	}
}

func TestParseTextNumericAnswer(t *testing.T) {
	raw := strings.Join([]string{
		"1) Which layer of Earth is liquid?",
		"A) Crust",
		"B) Mantle",
		"C) Outer core",
		"D) Inner core",
		"Answer: 3",
	}, "\n")

	questions := ParseText(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].CorrectIndex != 2 {
		t.Errorf("correct index = %d, want 2", questions[0].CorrectIndex)
	}
}

func TestParseTextDropsIncompleteQuestions(t *testing.T) {
	raw := strings.Join([]string{
		"Q1. Complete question?",
		"A) one",
		"B) two",
		"C) three",
		"D) four",
		"Answer: A",
		"",
		"Q2. Question missing its answer line?",
		"A) one",
		"B) two",
		"C) three",
		"D) four",
		"",
		"Q3. Question with too few options?",
		"A) one",
		"B) two",
		"Answer: A",
	}, "\n")

	questions := ParseText(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 complete question, got %d", len(questions))
	}
	if questions[0].Text != "Complete question?" {
		t.Errorf("wrong question survived: %q", questions[0].Text)
	}
}

func TestParseTextMultilineQuestion(t *testing.T) {
	raw := strings.Join([]string{
		"Q1. A ball is dropped from a tower.",
		"Ignoring air resistance, what happens to its speed?",
		"A) It stays constant",
		"B) It increases",
		"C) It decreases",
		"D) It becomes zero",
		"Answer: B",
	}, "\n")

	questions := ParseText(raw)
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if !strings.Contains(questions[0].Text, "air resistance") {
		t.Errorf("continuation line lost: %q", questions[0].Text)
	}
}

func TestParseTextNoQuestions(t *testing.T) {
	if got := ParseText("Sorry, I can't write a quiz about that."); got != nil {
		if len(got) != 0 {
			t.Errorf("expected no questions, got %d", len(got))
		}
	}
}

func TestSanitizeQuestions(t *testing.T) {
	good := Question{
		Text:         "ok?",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: 0,
	}
	dupOptions := Question{
		Text:         "dup?",
		Options:      []string{"same", "Same", "c", "d"},
		CorrectIndex: 0,
	}
	badIndex := Question{
		Text:         "bad index?",
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: 7,
	}

	out := sanitizeQuestions([]Question{good, dupOptions, badIndex})
	if len(out) != 1 {
		t.Fatalf("expected 1 surviving question, got %d", len(out))
	}
	if out[0].Text != "ok?" {
		t.Errorf("wrong survivor: %q", out[0].Text)
	}
}

func TestSanitizeCapsAtQuestionCount(t *testing.T) {
	var many []Question
	for i := 0; i < QuestionCount+3; i++ {
		many = append(many, Question{
			Text:         "q?",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: 0,
		})
	}
	if got := sanitizeQuestions(many); len(got) != QuestionCount {
		t.Errorf("expected cap at %d, got %d", QuestionCount, len(got))
	}
}
