package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-fact",
	Description: "A single fact with a source",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fact":  map[string]any{"type": "string"},
			"count": map[string]any{"type": "integer"},
		},
		"required":             []any{"fact", "count"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"fact": "Octopuses have three hearts", "count": 3}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"fact": `))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"fact": "no count"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	err := validateResponse(testSchema, json.RawMessage(`{"fact": "x", "count": "three"}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	raw := json.RawMessage(`{"fact": "cached", "count": 1}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load(testSchema.Name); !ok {
		t.Error("expected schema to be cached after first use")
	}
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("second validation: %v", err)
	}
}
