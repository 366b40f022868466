package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/llm"
	"github.com/abhisek/sciquest/internal/store"
)

const askLessonJSON = `{
	"title": "Gravity Basics",
	"explanation": "Mass attracts mass. Drop something and the Earth pulls it down.",
	"fun_facts": ["f1", "f2", "f3", "f4", "f5"]
}`

func askQuizJSON() string {
	var b strings.Builder
	b.WriteString(`{"questions": [`)
	for i := 0; i < 5; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{
			"question": "Question ` + string(rune('0'+i)) + `?",
			"options": ["opt a", "opt b", "opt c", "opt d"],
			"correct_index": 0,
			"explanation": "Because."
		}`)
	}
	b.WriteString(`]}`)
	return b.String()
}

func TestRunAskRecordsLesson(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()
	repo := s.EventRepo()

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(askLessonJSON)},
		llm.MockResponse{Content: json.RawMessage(askQuizJSON())},
	)

	var out bytes.Buffer
	ctx := context.Background()
	if err := runAsk(ctx, &out, mock, repo, "gravity", content.Beginner, true); err != nil {
		t.Fatalf("runAsk: %v", err)
	}

	if got := out.String(); !strings.Contains(got, "Gravity Basics") || !strings.Contains(got, "Quiz") {
		t.Errorf("output missing lesson or quiz sections:\n%s", got)
	}

	// The one-shot path must leave the same trail as a TUI session.
	lessons, err := repo.QueryLessons(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query lessons: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("expected 1 recorded lesson, got %d", len(lessons))
	}
	if lessons[0].Topic != "gravity" || lessons[0].Title != "Gravity Basics" {
		t.Errorf("unexpected lesson record: %+v", lessons[0])
	}
	if lessons[0].SessionID == "" {
		t.Error("lesson record missing its session ID")
	}
}

func TestRunAskWithoutQuiz(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(askLessonJSON)},
	)

	var out bytes.Buffer
	if err := runAsk(context.Background(), &out, mock, s.EventRepo(), "gravity", content.Beginner, false); err != nil {
		t.Fatalf("runAsk: %v", err)
	}
	if strings.Contains(out.String(), "Quiz") {
		t.Error("quiz printed despite --quiz=false")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 LLM call, got %d", mock.CallCount())
	}
}
