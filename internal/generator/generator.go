// Package generator produces multiple-choice quiz questions with an
// LLM provider, in the shape the supplier endpoint serves.
package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quizdeck/quizdeck/internal/llm"
	"github.com/quizdeck/quizdeck/internal/store"
)

// Generator produces one question per call for a topic.
type Generator interface {
	// Generate returns a validated question payload for the topic.
	Generate(ctx context.Context, topic string) (*store.QuestionPayload, error)
}

// Config holds generation parameters.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults. Temperature is high on
// purpose: repeated calls for the same topic should produce distinct
// questions.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.9,
	}
}

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a single question for the topic.
func (g *LLMGenerator) Generate(ctx context.Context, topic string) (*store.QuestionPayload, error) {
	ctx = llm.WithPurpose(ctx, "question-generation")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userPrompt(topic)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var payload store.QuestionPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	if verr := validatePayload(&payload); verr != nil {
		return nil, verr
	}

	return &payload, nil
}
