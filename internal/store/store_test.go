package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL falls back to "memory" for in-memory databases, so
		// journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for range 5 {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not monotonic: %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestLessonAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLesson(ctx, LessonEventData{
		SessionID:   "sess-1",
		Topic:       "black holes",
		Title:       "Black Holes",
		Difficulty:  "beginner",
		Explanation: "A black hole is a region of space...",
		FunFacts:    []string{"Fact one", "Fact two"},
		Source:      "llm",
	})
	if err != nil {
		t.Fatalf("append lesson: %v", err)
	}

	lessons, err := repo.QueryLessons(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query lessons: %v", err)
	}
	if len(lessons) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(lessons))
	}
	l := lessons[0]
	if l.Topic != "black holes" || l.Difficulty != "beginner" {
		t.Errorf("unexpected lesson: %+v", l)
	}
	if len(l.FunFacts) != 2 {
		t.Errorf("expected 2 fun facts, got %d", len(l.FunFacts))
	}
}

func TestQuizAndAnswersBySession(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendQuiz(ctx, QuizEventData{
		SessionID:    "sess-2",
		Topic:        "volcanoes",
		Difficulty:   "intermediate",
		Questions:    5,
		Correct:      4,
		DurationSecs: 90,
	}); err != nil {
		t.Fatalf("append quiz: %v", err)
	}

	for i := range 2 {
		if err := repo.AppendAnswer(ctx, AnswerEventData{
			SessionID:     "sess-2",
			QuestionIndex: i,
			QuestionText:  "What is magma?",
			Options:       []string{"a", "b", "c", "d"},
			CorrectIndex:  1,
			ChosenIndex:   1,
			Correct:       true,
			TimeMs:        3000,
		}); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	quiz, err := repo.QuizBySession(ctx, "sess-2")
	if err != nil {
		t.Fatalf("quiz by session: %v", err)
	}
	if quiz == nil || quiz.Correct != 4 {
		t.Fatalf("unexpected quiz: %+v", quiz)
	}

	answers, err := repo.AnswersBySession(ctx, "sess-2")
	if err != nil {
		t.Fatalf("answers by session: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(answers))
	}
	if answers[0].QuestionIndex != 0 || answers[1].QuestionIndex != 1 {
		t.Error("answers not in question order")
	}

	missing, err := repo.QuizBySession(ctx, "no-such-session")
	if err != nil {
		t.Fatalf("quiz by missing session: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing session")
	}
}

func TestStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, topic := range []string{"gravity", "Gravity", "cells"} {
		if err := repo.AppendLesson(ctx, LessonEventData{
			SessionID:   "sess-" + topic,
			Topic:       topic,
			Difficulty:  "beginner",
			Explanation: "...",
			Source:      "llm",
		}); err != nil {
			t.Fatalf("append lesson: %v", err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Lessons != 3 {
		t.Errorf("expected 3 lessons, got %d", stats.Lessons)
	}
	// "gravity" and "Gravity" are the same topic.
	if stats.Topics != 2 {
		t.Errorf("expected 2 distinct topics, got %d", stats.Topics)
	}
}

func TestRecentTopicsDedup(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, topic := range []string{"atoms", "dna", "atoms", "rainbows"} {
		if err := repo.AppendLesson(ctx, LessonEventData{
			SessionID:   "s",
			Topic:       topic,
			Difficulty:  "beginner",
			Explanation: "...",
			Source:      "llm",
		}); err != nil {
			t.Fatalf("append lesson: %v", err)
		}
	}

	topics, err := repo.RecentTopics(ctx, 10)
	if err != nil {
		t.Fatalf("recent topics: %v", err)
	}
	want := []string{"rainbows", "atoms", "dna"}
	if len(topics) != len(want) {
		t.Fatalf("expected %v, got %v", want, topics)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "lesson",
		InputTokens:  100,
		OutputTokens: 400,
		LatencyMs:    1200,
		Success:      true,
		RequestBody:  "[user]\nexplain gravity",
		ResponseBody: `{"explanation": "..."}`,
	}); err != nil {
		t.Fatalf("append LLM request: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Purpose != "lesson" || events[0].OutputTokens != 400 {
		t.Errorf("unexpected event: %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get LLM event: %v", err)
	}
	if got == nil || got.RequestBody == "" {
		t.Error("expected request body to round-trip")
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 1 || stats[0].Calls != 1 || stats[0].InputTokens != 100 {
		t.Errorf("unexpected usage stats: %+v", stats)
	}
}
