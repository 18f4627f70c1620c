package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "test-answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer"},
		},
		"required":             []any{"answer", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponseConforming(t *testing.T) {
	raw := json.RawMessage(`{"answer":"B","score":100}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("conforming response rejected: %v", err)
	}
}

func TestValidateResponseMissingField(t *testing.T) {
	raw := json.RawMessage(`{"answer":"B"}`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseNotJSON(t *testing.T) {
	raw := json.RawMessage(`the answer is B`)
	err := validateResponse(testSchema, raw)
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
