package session

import (
	"context"
	"testing"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/explain"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/store"
)

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		Topic:      "volcanoes",
		Difficulty: content.Beginner,
		Source:     quiz.SourceLLM,
		Questions: []quiz.Question{
			{Text: "q1?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
			{Text: "q2?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2},
		},
	}
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionIDsUnique(t *testing.T) {
	a := New("gravity", content.Beginner)
	b := New("gravity", content.Beginner)
	if a.ID == "" || a.ID == b.ID {
		t.Error("expected distinct non-empty session IDs")
	}
}

func TestSessionFullRun(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	s := New("volcanoes", content.Beginner)
	lesson := &explain.Lesson{
		Topic:       "volcanoes",
		Title:       "Volcanoes",
		Difficulty:  content.Beginner,
		Explanation: "Molten rock...",
		FunFacts:    []string{"f1", "f2", "f3", "f4", "f5"},
		Source:      explain.SourceLLM,
	}
	if err := s.SetLesson(ctx, repo, lesson); err != nil {
		t.Fatalf("set lesson: %v", err)
	}

	s.SetQuiz(testQuiz())
	if s.Answered() != 0 {
		t.Errorf("fresh quiz reports %d answered", s.Answered())
	}

	if err := s.Answer(ctx, repo, 0, 1); err != nil {
		t.Fatalf("answer 0: %v", err)
	}
	if err := s.Answer(ctx, repo, 1, 0); err != nil {
		t.Fatalf("answer 1: %v", err)
	}
	if s.Answered() != 2 {
		t.Errorf("answered = %d, want 2", s.Answered())
	}
	if s.Chosen(0) != 1 {
		t.Errorf("chosen(0) = %d, want 1", s.Chosen(0))
	}

	result, err := s.Finish(ctx, repo)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if result.Correct != 1 || result.Total != 2 {
		t.Errorf("got %d/%d, want 1/2", result.Correct, result.Total)
	}

	// Everything should be queryable back out by session ID.
	quizRec, err := repo.QuizBySession(ctx, s.ID)
	if err != nil || quizRec == nil {
		t.Fatalf("quiz by session: %v, %v", quizRec, err)
	}
	if quizRec.Correct != 1 {
		t.Errorf("stored correct = %d, want 1", quizRec.Correct)
	}
	answers, err := repo.AnswersBySession(ctx, s.ID)
	if err != nil {
		t.Fatalf("answers by session: %v", err)
	}
	if len(answers) != 2 {
		t.Errorf("stored answers = %d, want 2", len(answers))
	}
}

func TestSessionNilRepoSkipsPersistence(t *testing.T) {
	ctx := context.Background()
	s := New("gravity", content.Beginner)

	if err := s.SetLesson(ctx, nil, explain.Placeholder("gravity", content.Beginner)); err != nil {
		t.Fatalf("set lesson: %v", err)
	}
	s.SetQuiz(testQuiz())
	if err := s.Answer(ctx, nil, 0, 1); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := s.Finish(ctx, nil); err != nil {
		t.Fatalf("finish: %v", err)
	}
}

func TestAnswerValidation(t *testing.T) {
	ctx := context.Background()
	s := New("gravity", content.Beginner)

	if err := s.Answer(ctx, nil, 0, 0); err == nil {
		t.Error("expected error before quiz is attached")
	}

	s.SetQuiz(testQuiz())
	if err := s.Answer(ctx, nil, 5, 0); err == nil {
		t.Error("expected error for bad question index")
	}
	if err := s.Answer(ctx, nil, 0, 9); err == nil {
		t.Error("expected error for out-of-range choice")
	}
}

func TestFinishWithoutQuiz(t *testing.T) {
	s := New("gravity", content.Beginner)
	result, err := s.Finish(context.Background(), nil)
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if result.Total != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}
