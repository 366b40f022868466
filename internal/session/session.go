// Package session tracks one learning run: a topic, its lesson, the quiz,
// and the learner's answers, with persistence into the event log.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/explain"
	"github.com/abhisek/sciquest/internal/quiz"
	"github.com/abhisek/sciquest/internal/store"
)

// Session is one learning run. It is not safe for concurrent use; the UI
// drives it from a single goroutine.
type Session struct {
	ID         string
	Topic      string
	Difficulty content.Difficulty

	Lesson *explain.Lesson
	Quiz   *quiz.Quiz

	chosen      []int
	started     time.Time
	quizStarted time.Time
	lastAnswer  time.Time
}

// New starts a session for a topic. The topic is assumed normalized.
func New(topic string, difficulty content.Difficulty) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Topic:      topic,
		Difficulty: difficulty,
		started:    time.Now(),
	}
}

// SetLesson attaches the generated lesson and records it in the event log.
// A nil repo skips persistence.
func (s *Session) SetLesson(ctx context.Context, repo store.EventRepo, lesson *explain.Lesson) error {
	s.Lesson = lesson
	if repo == nil {
		return nil
	}

	err := repo.AppendLesson(ctx, store.LessonEventData{
		SessionID:   s.ID,
		Topic:       s.Topic,
		Title:       lesson.Title,
		Difficulty:  string(s.Difficulty),
		Explanation: lesson.Explanation,
		FunFacts:    lesson.FunFacts,
		Source:      string(lesson.Source),
	})
	if err != nil {
		return fmt.Errorf("record lesson: %w", err)
	}
	return nil
}

// SetQuiz attaches the generated quiz and starts the quiz clock.
func (s *Session) SetQuiz(q *quiz.Quiz) {
	s.Quiz = q
	s.chosen = make([]int, len(q.Questions))
	for i := range s.chosen {
		s.chosen[i] = -1
	}
	now := time.Now()
	s.quizStarted = now
	s.lastAnswer = now
}

// Answer records the learner's choice for a question and appends an answer
// event. Answering again overwrites the choice in memory but each submission
// is logged.
func (s *Session) Answer(ctx context.Context, repo store.EventRepo, questionIndex, choice int) error {
	if s.Quiz == nil || questionIndex < 0 || questionIndex >= len(s.Quiz.Questions) {
		return fmt.Errorf("answer: no question %d", questionIndex)
	}
	q := s.Quiz.Questions[questionIndex]
	if choice < 0 || choice >= len(q.Options) {
		return fmt.Errorf("answer: choice %d out of range", choice)
	}

	s.chosen[questionIndex] = choice

	now := time.Now()
	elapsed := now.Sub(s.lastAnswer)
	s.lastAnswer = now

	if repo == nil {
		return nil
	}
	err := repo.AppendAnswer(ctx, store.AnswerEventData{
		SessionID:     s.ID,
		QuestionIndex: questionIndex,
		QuestionText:  q.Text,
		Options:       q.Options,
		CorrectIndex:  q.CorrectIndex,
		ChosenIndex:   choice,
		Correct:       choice == q.CorrectIndex,
		TimeMs:        elapsed.Milliseconds(),
	})
	if err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	return nil
}

// Chosen returns the choice for a question, or -1 when unanswered.
func (s *Session) Chosen(questionIndex int) int {
	if questionIndex < 0 || questionIndex >= len(s.chosen) {
		return -1
	}
	return s.chosen[questionIndex]
}

// Answered reports how many questions have a recorded choice.
func (s *Session) Answered() int {
	n := 0
	for _, c := range s.chosen {
		if c >= 0 {
			n++
		}
	}
	return n
}

// Finish grades the quiz, appends the quiz-completed event, and returns
// the result. Safe to call with no quiz attached; the result is empty.
func (s *Session) Finish(ctx context.Context, repo store.EventRepo) (quiz.Result, error) {
	if s.Quiz == nil {
		return quiz.Result{}, nil
	}

	result := quiz.Grade(s.Quiz, s.chosen)

	if repo == nil {
		return result, nil
	}
	err := repo.AppendQuiz(ctx, store.QuizEventData{
		SessionID:    s.ID,
		Topic:        s.Topic,
		Difficulty:   string(s.Difficulty),
		Questions:    result.Total,
		Correct:      result.Correct,
		DurationSecs: int(time.Since(s.quizStarted).Seconds()),
	})
	if err != nil {
		return result, fmt.Errorf("record quiz: %w", err)
	}
	return result, nil
}

// Duration reports how long the session has been running.
func (s *Session) Duration() time.Duration {
	return time.Since(s.started)
}
