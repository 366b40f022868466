package store

import (
	"context"
	"fmt"

	"github.com/abhisek/sciquest/ent"
	"github.com/abhisek/sciquest/ent/answerevent"
	"github.com/abhisek/sciquest/ent/quizevent"
)

func (r *eventRepo) AppendQuiz(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetQuestions(data.Questions).
		SetCorrect(data.Correct).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizBySession(ctx context.Context, sessionID string) (*QuizRecord, error) {
	e, err := r.client.QuizEvent.Query().
		Where(quizevent.SessionID(sessionID)).
		Order(ent.Desc(quizevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query quiz by session: %w", err)
	}

	return &QuizRecord{
		ID:           e.ID,
		Sequence:     e.Sequence,
		Timestamp:    e.Timestamp,
		SessionID:    e.SessionID,
		Topic:        e.Topic,
		Difficulty:   e.Difficulty,
		Questions:    e.Questions,
		Correct:      e.Correct,
		DurationSecs: e.DurationSecs,
	}, nil
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionIndex(data.QuestionIndex).
		SetQuestionText(data.QuestionText).
		SetOptions(data.Options).
		SetCorrectIndex(data.CorrectIndex).
		SetChosenIndex(data.ChosenIndex).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswersBySession(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.SessionID(sessionID)).
		Order(ent.Asc(answerevent.FieldQuestionIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers by session: %w", err)
	}

	out := make([]AnswerRecord, len(events))
	for i, e := range events {
		out[i] = AnswerRecord{
			ID:            e.ID,
			Sequence:      e.Sequence,
			Timestamp:     e.Timestamp,
			SessionID:     e.SessionID,
			QuestionIndex: e.QuestionIndex,
			QuestionText:  e.QuestionText,
			Options:       e.Options,
			CorrectIndex:  e.CorrectIndex,
			ChosenIndex:   e.ChosenIndex,
			Correct:       e.Correct,
			TimeMs:        e.TimeMs,
		}
	}
	return out, nil
}
