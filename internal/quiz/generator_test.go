package quiz

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/llm"
)

func structuredQuizJSON(n int) string {
	var b strings.Builder
	b.WriteString(`{"questions": [`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{
			"question": "Question ` + string(rune('0'+i)) + `?",
			"options": ["opt a", "opt b", "opt c", "opt d"],
			"correct_index": 1,
			"explanation": "Because."
		}`)
	}
	b.WriteString(`]}`)
	return b.String()
}

func TestGenerateStructured(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(structuredQuizJSON(5))})
	gen := NewGenerator(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), "photosynthesis", content.Beginner)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if quiz.Source != SourceLLM {
		t.Errorf("source = %q, want %q", quiz.Source, SourceLLM)
	}
	if len(quiz.Questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(quiz.Questions))
	}
	if quiz.Questions[0].CorrectIndex != 1 {
		t.Errorf("correct index = %d, want 1", quiz.Questions[0].CorrectIndex)
	}
	if len(mock.Calls) != 1 || mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "topic-quiz" {
		t.Error("expected one call carrying the quiz schema")
	}
}

func TestGeneratePadsPartialQuiz(t *testing.T) {
	// Three valid questions out of five: canned fillers top the quiz up to
	// the full question count.
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(structuredQuizJSON(3))})
	gen := NewGenerator(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), "magnets", content.Intermediate)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(quiz.Questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(quiz.Questions))
	}
	if quiz.Questions[2].Text != "Question 2?" {
		t.Errorf("question 3 = %q, want the model's question", quiz.Questions[2].Text)
	}
	if quiz.Questions[3].Text != fillerQuestions[0].Text {
		t.Errorf("question 4 = %q, want the first filler question", quiz.Questions[3].Text)
	}
	if got := sanitizeQuestions(quiz.Questions); len(got) != QuestionCount {
		t.Errorf("padded quiz failed structural checks: %d survived", len(got))
	}
}

func TestGenerateRecoversFencedJSON(t *testing.T) {
	fenced := "```json\n" + structuredQuizJSON(2) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage(fenced)},
	})
	gen := NewGenerator(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), "electricity", content.Beginner)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if quiz.Source != SourceScraped {
		t.Errorf("source = %q, want %q", quiz.Source, SourceScraped)
	}
	if len(quiz.Questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(quiz.Questions))
	}
	if quiz.Questions[0].Text != "Question 0?" {
		t.Errorf("question 1 = %q, want the recovered question", quiz.Questions[0].Text)
	}
	if quiz.Questions[2].Text != fillerQuestions[0].Text {
		t.Errorf("question 3 = %q, want the first filler question", quiz.Questions[2].Text)
	}
}

func TestGenerateScrapesLooseText(t *testing.T) {
	loose := strings.Join([]string{
		"Here's your quiz!",
		"",
		"Q1. What force pulls objects toward Earth?",
		"A) Magnetism",
		"B) Gravity",
		"C) Friction",
		"D) Inertia",
		"Answer: B",
	}, "\n")
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage(loose)},
	})
	gen := NewGenerator(mock, DefaultConfig())

	quiz, err := gen.Generate(context.Background(), "gravity", content.Beginner)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if quiz.Source != SourceScraped {
		t.Errorf("source = %q, want %q", quiz.Source, SourceScraped)
	}
	if len(quiz.Questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(quiz.Questions))
	}
	if quiz.Questions[0].Text != "What force pulls objects toward Earth?" || quiz.Questions[0].CorrectIndex != 1 {
		t.Fatalf("unexpected first question: %+v", quiz.Questions[0])
	}
	for i := 1; i < QuestionCount; i++ {
		if quiz.Questions[i].Text != fillerQuestions[i-1].Text {
			t.Errorf("question %d = %q, want filler", i+1, quiz.Questions[i].Text)
		}
	}
}

func TestGenerateUnrecoverable(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage("no quiz here, sorry")},
	})
	gen := NewGenerator(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), "gravity", content.Beginner); err == nil {
		t.Fatal("expected error when nothing can be recovered")
	}
}

func TestPlaceholderQuizIsValid(t *testing.T) {
	quiz := Placeholder("anything", content.Beginner)
	if quiz.Source != SourcePlaceholder {
		t.Errorf("source = %q", quiz.Source)
	}
	if len(quiz.Questions) != QuestionCount {
		t.Fatalf("expected %d questions, got %d", QuestionCount, len(quiz.Questions))
	}
	if got := sanitizeQuestions(quiz.Questions); len(got) != QuestionCount {
		t.Errorf("placeholder questions failed structural checks: %d survived", len(got))
	}
}
