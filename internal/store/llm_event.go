package store

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/ent"
)

// LLMRequestEventData captures one LLM API call.
type LLMRequestEventData struct {
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	create := r.client.LLMRequestEvent.Create().
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success)
	if data.ErrorMessage != "" {
		create.SetErrorMessage(data.ErrorMessage)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}
