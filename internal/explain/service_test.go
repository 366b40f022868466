package explain

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/sciquest/internal/content"
	"github.com/abhisek/sciquest/internal/llm"
)

func TestGenerateStructured(t *testing.T) {
	payload := `{
		"title": "Black Holes: Gravity's Point of No Return",
		"explanation": "A black hole is a region of space where gravity is so strong that nothing can escape.",
		"fun_facts": ["Fact 1", "Fact 2", "Fact 3", "Fact 4", "Fact 5"]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultConfig())

	lesson, err := svc.Generate(context.Background(), "black holes", content.Beginner)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lesson.Source != SourceLLM {
		t.Errorf("source = %q, want %q", lesson.Source, SourceLLM)
	}
	if lesson.Title != "Black Holes: Gravity's Point of No Return" {
		t.Errorf("unexpected title %q", lesson.Title)
	}
	if len(lesson.FunFacts) != FunFactCount {
		t.Errorf("expected %d facts, got %d", FunFactCount, len(lesson.FunFacts))
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "topic-lesson" {
		t.Error("expected lesson schema on the request")
	}
}

func TestGenerateEmptyTopic(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), "   ", content.Beginner); err == nil {
		t.Fatal("expected error for blank topic")
	}
	if mock.CallCount() != 0 {
		t.Error("blank topic should not reach the provider")
	}
}

func TestGeneratePadsShortFactList(t *testing.T) {
	payload := `{"title": "T", "explanation": "E.", "fun_facts": ["only one"]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	svc := NewService(mock, DefaultConfig())

	lesson, err := svc.Generate(context.Background(), "cells", content.Intermediate)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(lesson.FunFacts) != FunFactCount {
		t.Fatalf("expected %d facts, got %d", FunFactCount, len(lesson.FunFacts))
	}
	if lesson.FunFacts[0] != "only one" {
		t.Error("real fact should come before fillers")
	}
}

func TestGenerateRecoversFencedJSON(t *testing.T) {
	fenced := "```json\n{\"title\": \"T\", \"explanation\": \"Recovered.\", \"fun_facts\": [\"f1\"]}\n```"
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage(fenced)},
	})
	svc := NewService(mock, DefaultConfig())

	lesson, err := svc.Generate(context.Background(), "volcanoes", content.Beginner)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lesson.Source != SourceScraped {
		t.Errorf("source = %q, want %q", lesson.Source, SourceScraped)
	}
	if lesson.Explanation != "Recovered." {
		t.Errorf("unexpected explanation %q", lesson.Explanation)
	}
}

func TestGenerateScrapesLooseText(t *testing.T) {
	loose := strings.Join([]string{
		"The Water Cycle",
		"",
		"Water moves between the oceans, the air, and the land in a loop.",
		"It evaporates, condenses into clouds, and falls back as rain.",
		"",
		"## Fun Facts",
		"1. A water molecule can spend thousands of years in the ocean.",
		"2. Some rain never reaches the ground.",
	}, "\n")
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrInvalidResponse{Content: json.RawMessage(loose)},
	})
	svc := NewService(mock, DefaultConfig())

	lesson, err := svc.Generate(context.Background(), "the water cycle", content.Beginner)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if lesson.Source != SourceScraped {
		t.Errorf("source = %q, want %q", lesson.Source, SourceScraped)
	}
	if lesson.Title != "The Water Cycle" {
		t.Errorf("unexpected title %q", lesson.Title)
	}
	if !strings.Contains(lesson.Explanation, "evaporates") {
		t.Errorf("explanation lost body text: %q", lesson.Explanation)
	}
	if lesson.FunFacts[0] != "A water molecule can spend thousands of years in the ocean." {
		t.Errorf("unexpected first fact %q", lesson.FunFacts[0])
	}
	if len(lesson.FunFacts) != FunFactCount {
		t.Errorf("expected padded fact list, got %d", len(lesson.FunFacts))
	}
}

func TestGenerateUnrecoverableError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), "gravity", content.Beginner); err == nil {
		t.Fatal("expected error when provider is down")
	}
}

func TestPlaceholder(t *testing.T) {
	lesson := Placeholder("quantum tunneling", content.Advanced)
	if lesson.Source != SourcePlaceholder {
		t.Errorf("source = %q", lesson.Source)
	}
	if !strings.Contains(lesson.Explanation, "quantum tunneling") {
		t.Error("placeholder should mention the topic")
	}
	if len(lesson.FunFacts) != FunFactCount {
		t.Errorf("expected %d facts, got %d", FunFactCount, len(lesson.FunFacts))
	}
}
