// Package supplier fetches question batches from the question supplier
// endpoint. Every failure mode — transport error, non-2xx status,
// malformed body, violated batch invariants — collapses into the single
// ErrFetchFailed; the session controller has exactly one failure notice
// and nothing downstream distinguishes causes.
package supplier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// ErrFetchFailed is the single error kind the quiz client observes.
var ErrFetchFailed = errors.New("question fetch failed")

// Client fetches question batches over HTTP.
type Client struct {
	http *resty.Client
}

// New creates a Client against the supplier base URL. No timeout is
// configured: the session has no cancellation path and stays in the
// loading phase for as long as the fetch takes.
func New(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

// batchEnvelope is the wire shape of a supplier response.
type batchEnvelope struct {
	Count     int            `json:"count"`
	Questions []questionWire `json:"questions"`
}

type questionWire struct {
	ID     int    `json:"id"`
	Source string `json:"source"`
	Quiz   struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		Answer      string   `json:"answer"`
		Explanation string   `json:"explanation"`
	} `json:"quiz"`
}

// Fetch requests one batch of questions. An empty topic requests the
// supplier's default topic; otherwise the topic is appended as a path
// segment, matching the supplier's /quiz/{topic} route.
func (c *Client) Fetch(ctx context.Context, topic string) (*quiz.Batch, error) {
	path := "/quiz"
	req := c.http.R().SetContext(ctx)
	if topic != "" {
		path = "/quiz/{topic}"
		req.SetPathParam("topic", topic)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: supplier returned %s", ErrFetchFailed, resp.Status())
	}

	var envelope batchEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	batch := &quiz.Batch{Count: envelope.Count}
	for _, qw := range envelope.Questions {
		batch.Questions = append(batch.Questions, quiz.Question{
			ID:          qw.ID,
			Source:      qw.Source,
			Text:        qw.Quiz.Question,
			Options:     qw.Quiz.Options,
			Answer:      qw.Quiz.Answer,
			Explanation: qw.Quiz.Explanation,
		})
	}

	if err := batch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return batch, nil
}
