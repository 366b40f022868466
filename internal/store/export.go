package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Export formats. The original SciQuest prototype persisted history as a
// single JSON blob on disk; that document shape is preserved here as the
// interchange format.

// ExportDocument is the top-level structure written by Export.
type ExportDocument struct {
	ExportedAt time.Time       `json:"exported_at"`
	Version    int             `json:"version"`
	Sessions   []ExportSession `json:"sessions"`
}

// ExportSession groups one lesson with its quiz outcome and answers.
type ExportSession struct {
	SessionID   string         `json:"session_id"`
	Timestamp   time.Time      `json:"timestamp"`
	Topic       string         `json:"topic"`
	Title       string         `json:"title,omitempty"`
	Difficulty  string         `json:"difficulty"`
	Explanation string         `json:"explanation"`
	FunFacts    []string       `json:"fun_facts,omitempty"`
	Quiz        *ExportQuiz    `json:"quiz,omitempty"`
	Answers     []ExportAnswer `json:"answers,omitempty"`
}

// ExportQuiz is the quiz summary inside an ExportSession.
type ExportQuiz struct {
	Questions    int `json:"questions"`
	Correct      int `json:"correct"`
	DurationSecs int `json:"duration_secs"`
}

// ExportAnswer is one answered question inside an ExportSession.
type ExportAnswer struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	ChosenIndex  int      `json:"chosen_index"`
	Correct      bool     `json:"correct"`
}

// BuildExport assembles the full history into an ExportDocument.
func BuildExport(ctx context.Context, repo EventRepo) (*ExportDocument, error) {
	lessons, err := repo.QueryLessons(ctx, QueryOpts{})
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	doc := &ExportDocument{
		ExportedAt: time.Now().UTC(),
		Version:    1,
	}

	for _, l := range lessons {
		sess := ExportSession{
			SessionID:   l.SessionID,
			Timestamp:   l.Timestamp,
			Topic:       l.Topic,
			Title:       l.Title,
			Difficulty:  l.Difficulty,
			Explanation: l.Explanation,
			FunFacts:    l.FunFacts,
		}

		quiz, err := repo.QuizBySession(ctx, l.SessionID)
		if err != nil {
			return nil, fmt.Errorf("export quiz for %s: %w", l.SessionID, err)
		}
		if quiz != nil {
			sess.Quiz = &ExportQuiz{
				Questions:    quiz.Questions,
				Correct:      quiz.Correct,
				DurationSecs: quiz.DurationSecs,
			}
		}

		answers, err := repo.AnswersBySession(ctx, l.SessionID)
		if err != nil {
			return nil, fmt.Errorf("export answers for %s: %w", l.SessionID, err)
		}
		for _, a := range answers {
			sess.Answers = append(sess.Answers, ExportAnswer{
				Question:     a.QuestionText,
				Options:      a.Options,
				CorrectIndex: a.CorrectIndex,
				ChosenIndex:  a.ChosenIndex,
				Correct:      a.Correct,
			})
		}

		doc.Sessions = append(doc.Sessions, sess)
	}

	return doc, nil
}

// WriteExport writes the export document to path as indented JSON.
func WriteExport(ctx context.Context, repo EventRepo, path string) error {
	doc, err := BuildExport(ctx, repo)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
