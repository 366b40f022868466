package explain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/llm"
)

// Config tunes lesson generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard lesson generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Service generates topic lessons through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lesson service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate produces a lesson for the topic at the given difficulty.
//
// The happy path is structured output validated against the lesson schema.
// When the model returns something looser, Generate tries to recover the
// lesson from the raw text before giving up; the returned Lesson's Source
// records which path produced it. Callers that want a lesson no matter
// what should fall back to Placeholder on error.
func (s *Service) Generate(ctx context.Context, topic string, difficulty content.Difficulty) (*Lesson, error) {
	topic, err := content.NormalizeTopic(topic)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeLesson)

	req := llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(topic, difficulty)}},
		Schema:      lessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		// Recover from loose output when the raw content survived.
		if raw := rawContent(err); raw != "" {
			if lesson := recoverLesson(topic, difficulty, raw); lesson != nil {
				return lesson, nil
			}
		}
		return nil, fmt.Errorf("generate lesson for %q: %w", topic, err)
	}

	var payload lessonPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		if lesson := recoverLesson(topic, difficulty, string(resp.Content)); lesson != nil {
			return lesson, nil
		}
		return nil, fmt.Errorf("decode lesson for %q: %w", topic, err)
	}

	return &Lesson{
		Topic:       topic,
		Title:       normalizeTitle(payload.Title, topic),
		Difficulty:  difficulty,
		Explanation: strings.TrimSpace(payload.Explanation),
		FunFacts:    normalizeFacts(payload.FunFacts, topic),
		Source:      SourceLLM,
	}, nil
}

// rawContent pulls the raw model output out of recoverable provider
// errors so the scrape path can take a shot at it.
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

// recoverLesson tries progressively looser readings of raw model text:
// fenced JSON, a JSON object embedded in prose, then plain-text scraping.
// Returns nil when nothing usable can be extracted.
func recoverLesson(topic string, difficulty content.Difficulty, raw string) *Lesson {
	cleaned := llm.StripFences(raw)

	candidate := cleaned
	if !json.Valid([]byte(candidate)) {
		candidate = llm.FirstJSONObject(cleaned)
	}
	if candidate != "" {
		var payload lessonPayload
		if err := json.Unmarshal([]byte(candidate), &payload); err == nil && strings.TrimSpace(payload.Explanation) != "" {
			return &Lesson{
				Topic:       topic,
				Title:       normalizeTitle(payload.Title, topic),
				Difficulty:  difficulty,
				Explanation: strings.TrimSpace(payload.Explanation),
				FunFacts:    normalizeFacts(payload.FunFacts, topic),
				Source:      SourceScraped,
			}
		}
	}

	return scrapeLessonText(topic, difficulty, cleaned)
}
