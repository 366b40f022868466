package store

import (
	"context"
	"fmt"

	"github.com/abhisek/sciquest/ent"
	"github.com/abhisek/sciquest/ent/lessonevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLesson(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetTitle(data.Title).
		SetDifficulty(data.Difficulty).
		SetExplanation(data.Explanation).
		SetSource(data.Source)

	if len(data.FunFacts) > 0 {
		builder = builder.SetFunFacts(data.FunFacts)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLessons(ctx context.Context, opts QueryOpts) ([]LessonRecord, error) {
	q := r.client.LessonEvent.Query().
		Order(ent.Desc(lessonevent.FieldSequence))

	if opts.After > 0 {
		q = q.Where(lessonevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(lessonevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(lessonevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(lessonevent.TimestampLTE(opts.To))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}

	out := make([]LessonRecord, len(events))
	for i, e := range events {
		out[i] = LessonRecord{
			ID:          e.ID,
			Sequence:    e.Sequence,
			Timestamp:   e.Timestamp,
			SessionID:   e.SessionID,
			Topic:       e.Topic,
			Title:       e.Title,
			Difficulty:  e.Difficulty,
			Explanation: e.Explanation,
			FunFacts:    e.FunFacts,
			Source:      e.Source,
		}
	}
	return out, nil
}
