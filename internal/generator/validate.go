package generator

import (
	"fmt"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/store"
)

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Message   string
	Retryable bool // whether regeneration is likely to fix it
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("generated question rejected: %s", e.Message)
}

// validatePayload runs the structural checks the schema alone cannot
// express: exactly 4 non-empty options and an answer that matches one
// of them verbatim. All of these are generation flukes, so regeneration
// may fix them.
func validatePayload(p *store.QuestionPayload) *ValidationError {
	if p.Question == "" {
		return &ValidationError{Message: "empty question text", Retryable: true}
	}
	if len(p.Options) != quiz.OptionCount {
		return &ValidationError{
			Message:   fmt.Sprintf("got %d options, want %d", len(p.Options), quiz.OptionCount),
			Retryable: true,
		}
	}
	for i, opt := range p.Options {
		if opt == "" {
			return &ValidationError{
				Message:   fmt.Sprintf("option %d is empty", i),
				Retryable: true,
			}
		}
	}
	for _, opt := range p.Options {
		if opt == p.Answer {
			return nil
		}
	}
	return &ValidationError{
		Message:   fmt.Sprintf("answer %q is not among the options", p.Answer),
		Retryable: true,
	}
}
