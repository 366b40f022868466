package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/sciquest/ent"
	"github.com/abhisek/sciquest/ent/answerevent"
	"github.com/abhisek/sciquest/ent/lessonevent"
)

func (r *eventRepo) Stats(ctx context.Context) (*LearningStats, error) {
	stats := &LearningStats{}

	lessons, err := r.client.LessonEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons for stats: %w", err)
	}
	stats.Lessons = len(lessons)

	// Distinct topics, case-insensitive.
	topics := make(map[string]bool)
	for _, l := range lessons {
		topics[strings.ToLower(strings.TrimSpace(l.Topic))] = true
	}
	stats.Topics = len(topics)

	quizzes, err := r.client.QuizEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count quizzes for stats: %w", err)
	}
	stats.QuizzesTaken = quizzes

	served, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count answers for stats: %w", err)
	}
	stats.QuestionsServed = served

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count correct answers for stats: %w", err)
	}
	stats.CorrectAnswers = correct

	return stats, nil
}

// RecentTopics returns up to limit distinct topics, newest first.
// Used by the home screen to suggest what to revisit.
func (r *eventRepo) RecentTopics(ctx context.Context, limit int) ([]string, error) {
	events, err := r.client.LessonEvent.Query().
		Order(ent.Desc(lessonevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent topics: %w", err)
	}

	seen := make(map[string]bool)
	var out []string
	for _, e := range events {
		key := strings.ToLower(strings.TrimSpace(e.Topic))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e.Topic)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}
