package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/llm"
)

// Config tunes quiz generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard quiz generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.8,
	}
}

// Generator produces quizzes through an LLM provider.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a quiz generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate produces a quiz for the topic at the given difficulty. Like
// lesson generation, it prefers structured output and falls back to
// scraping loose text; questions that fail structural checks are dropped.
// An error is returned only when no complete question could be recovered.
func (g *Generator) Generate(ctx context.Context, topic string, difficulty content.Difficulty) (*Quiz, error) {
	topic, err := content.NormalizeTopic(topic)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)

	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(topic, difficulty)}},
		Schema:      quizSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		if raw := rawContent(err); raw != "" {
			if quiz := recoverQuiz(topic, difficulty, raw); quiz != nil {
				return quiz, nil
			}
		}
		return nil, fmt.Errorf("generate quiz for %q: %w", topic, err)
	}

	quiz := decodeQuiz(topic, difficulty, resp.Content, SourceLLM)
	if quiz == nil {
		if q := recoverQuiz(topic, difficulty, string(resp.Content)); q != nil {
			return q, nil
		}
		return nil, fmt.Errorf("generate quiz for %q: no usable questions in response", topic)
	}
	return quiz, nil
}

func rawContent(err error) string {
	var invalid *llm.ErrInvalidResponse
	if errors.As(err, &invalid) && len(invalid.Content) > 0 {
		return string(invalid.Content)
	}
	var truncated *llm.ErrMaxTokensExceeded
	if errors.As(err, &truncated) && len(truncated.Content) > 0 {
		return string(truncated.Content)
	}
	return ""
}

// decodeQuiz parses a structured quiz payload and sanitizes its questions.
// Returns nil when nothing survives.
func decodeQuiz(topic string, difficulty content.Difficulty, raw json.RawMessage, source Source) *Quiz {
	var payload quizPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	questions := make([]Question, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		questions = append(questions, Question{
			Text:         q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}

	questions = sanitizeQuestions(questions)
	if len(questions) == 0 {
		return nil
	}
	questions = padQuestions(questions)
	return &Quiz{Topic: topic, Difficulty: difficulty, Questions: questions, Source: source}
}

// recoverQuiz tries progressively looser readings of raw model text:
// fenced JSON, a JSON object embedded in prose, then line scraping.
func recoverQuiz(topic string, difficulty content.Difficulty, raw string) *Quiz {
	cleaned := llm.StripFences(raw)

	candidate := cleaned
	if !json.Valid([]byte(candidate)) {
		candidate = llm.FirstJSONObject(cleaned)
	}
	if candidate != "" {
		if quiz := decodeQuiz(topic, difficulty, json.RawMessage(candidate), SourceScraped); quiz != nil {
			return quiz
		}
	}

	if questions := sanitizeQuestions(ParseText(cleaned)); len(questions) > 0 {
		return &Quiz{Topic: topic, Difficulty: difficulty, Questions: padQuestions(questions), Source: SourceScraped}
	}
	return nil
}

// Placeholder builds a canned quiz for when generation fails entirely.
// The questions are about science in general rather than the topic, and
// the quiz is marked so the UI can say so.
func Placeholder(topic string, difficulty content.Difficulty) *Quiz {
	return &Quiz{
		Topic:      topic,
		Difficulty: difficulty,
		Source:     SourcePlaceholder,
		Questions:  append([]Question(nil), fillerQuestions...),
	}
}

// fillerQuestions are canned general-science questions. They make up the
// whole placeholder quiz and fill the slots a partial recovery leaves open.
var fillerQuestions = []Question{
	{
		Text:         "What do scientists call a well-tested explanation for observations of the natural world?",
		Options:      []string{"A guess", "A theory", "A law of opinion", "A hunch"},
		CorrectIndex: 1,
		Explanation:  "In science, a theory is an explanation supported by extensive evidence.",
	},
	{
		Text:         "Which step usually comes first in the scientific method?",
		Options:      []string{"Publishing results", "Running an experiment", "Asking a question", "Drawing conclusions"},
		CorrectIndex: 2,
		Explanation:  "Scientific inquiry starts with a question about an observation.",
	},
	{
		Text:         "What is a hypothesis?",
		Options:      []string{"A proven fact", "A testable prediction", "A measurement error", "A type of experiment"},
		CorrectIndex: 1,
		Explanation:  "A hypothesis is a prediction that can be tested by experiment.",
	},
	{
		Text:         "Why do scientists repeat experiments?",
		Options:      []string{"To use up materials", "To check that results are reliable", "Because the first run never counts", "To make the work take longer"},
		CorrectIndex: 1,
		Explanation:  "Repeated results are much less likely to be flukes.",
	},
	{
		Text:         "What should a scientist do when evidence contradicts their hypothesis?",
		Options:      []string{"Ignore the evidence", "Revise or reject the hypothesis", "Repeat the claim louder", "Hide the data"},
		CorrectIndex: 1,
		Explanation:  "Hypotheses must change to fit the evidence, not the other way around.",
	},
}
