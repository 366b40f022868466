package quiz

import (
	"strings"
	"testing"

	"github.com/abhisek/sciquest/internal/content"
)

func twoQuestionQuiz() *Quiz {
	return &Quiz{
		Topic:      "test",
		Difficulty: content.Beginner,
		Source:     SourceLLM,
		Questions: []Question{
			{Text: "q1?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0},
			{Text: "q2?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 3},
		},
	}
}

func TestGrade(t *testing.T) {
	q := twoQuestionQuiz()

	r := Grade(q, []int{0, 1})
	if r.Total != 2 || r.Correct != 1 {
		t.Fatalf("got %d/%d, want 1/2", r.Correct, r.Total)
	}
	if !r.Outcomes[0].Correct || r.Outcomes[1].Correct {
		t.Error("wrong per-question outcomes")
	}
	if r.Percent() != 50 {
		t.Errorf("percent = %d, want 50", r.Percent())
	}
}

func TestGradeSkippedAndOutOfRange(t *testing.T) {
	q := twoQuestionQuiz()

	// Only one answer given, and it is out of range.
	r := Grade(q, []int{9})
	if r.Correct != 0 {
		t.Errorf("expected 0 correct, got %d", r.Correct)
	}
	if r.Outcomes[0].ChosenIndex != -1 || r.Outcomes[1].ChosenIndex != -1 {
		t.Error("skipped and invalid answers should record -1")
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	r := Grade(&Quiz{}, nil)
	if r.Percent() != 0 {
		t.Errorf("empty quiz percent = %d", r.Percent())
	}
	if r.Message() == "" {
		t.Error("message should never be empty")
	}
}

func TestResultMessageTiers(t *testing.T) {
	tests := []struct {
		correct, total int
		wantContains   string
	}{
		{5, 5, "Perfect"},
		{4, 5, "Excellent"},
		{3, 5, "Good job"},
		{2, 5, "Not bad"},
		{0, 5, "Keep exploring"},
	}

	for _, tt := range tests {
		r := Result{Total: tt.total, Correct: tt.correct}
		if msg := r.Message(); !strings.Contains(msg, tt.wantContains) {
			t.Errorf("%d/%d: message %q does not contain %q", tt.correct, tt.total, msg, tt.wantContains)
		}
	}
}

func TestOptionLabel(t *testing.T) {
	if OptionLabel(0) != "A" || OptionLabel(3) != "D" {
		t.Error("unexpected option labels")
	}
	if OptionLabel(-1) != "?" {
		t.Error("negative index should be ?")
	}
}
