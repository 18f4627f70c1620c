package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quizdeck/quizdeck/internal/store"
)

// LoggingProvider records every LLM call as an event in the store.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
}

// WithLogging wraps a Provider with event logging. A nil repo disables
// logging without changing behavior.
func WithLogging(p Provider, events store.EventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	if l.events != nil {
		data := store.LLMRequestEventData{
			Model:     l.inner.ModelID(),
			Purpose:   PurposeFrom(ctx),
			LatencyMs: time.Since(start).Milliseconds(),
			Success:   err == nil,
		}
		if resp != nil {
			data.Model = resp.Model
			data.InputTokens = resp.Usage.InputTokens
			data.OutputTokens = resp.Usage.OutputTokens
		}
		if err != nil {
			data.ErrorMessage = err.Error()
		}
		// Logging failure never fails the request itself.
		if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
