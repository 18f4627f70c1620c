package generator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdeck/quizdeck/internal/llm"
	"github.com/quizdeck/quizdeck/internal/store"
)

func canned(t *testing.T, p store.QuestionPayload) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return llm.MockResponse{Content: raw}
}

func validPayload() store.QuestionPayload {
	return store.QuestionPayload{
		Question:    "Which planet has the shortest day?",
		Options:     []string{"Mercury", "Jupiter", "Venus", "Mars"},
		Answer:      "Jupiter",
		Explanation: "Jupiter rotates once in under 10 hours.",
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(canned(t, validPayload()))
	gen := New(mock, DefaultConfig())

	got, err := gen.Generate(context.Background(), "astronomy")
	require.NoError(t, err)
	assert.Equal(t, "Jupiter", got.Answer)
	assert.Len(t, got.Options, 4)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, QuestionSchema, req.Schema)
	require.Len(t, req.Messages, 1)
	assert.Contains(t, req.Messages[0].Content, "astronomy")
}

func TestGenerateProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "astronomy")
	require.Error(t, err)

	var rl *llm.ErrRateLimit
	assert.True(t, errors.As(err, &rl), "provider error should be preserved in the chain")
}

func TestGenerateMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"question": `)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), "astronomy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestGenerateStructuralValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*store.QuestionPayload)
	}{
		{"empty question", func(p *store.QuestionPayload) { p.Question = "" }},
		{"three options", func(p *store.QuestionPayload) { p.Options = p.Options[:3] }},
		{"empty option", func(p *store.QuestionPayload) { p.Options[2] = "" }},
		{"answer not among options", func(p *store.QuestionPayload) { p.Answer = "Saturn" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)

			mock := llm.NewMockProvider(canned(t, p))
			gen := New(mock, DefaultConfig())

			_, err := gen.Generate(context.Background(), "astronomy")
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, verr.Retryable)
		})
	}
}
