package store

import (
	"context"
	"fmt"

	"github.com/quizdeck/quizdeck/ent"
	"github.com/quizdeck/quizdeck/ent/question"
	"github.com/quizdeck/quizdeck/ent/schema"
)

// MaxUsage is how many times a cached question is served before a
// fresh one is generated for its topic.
const MaxUsage = 5

// QuestionPayload is the stored question body.
type QuestionPayload = schema.QuestionPayload

// CachedQuestion is one row of the question cache.
type CachedQuestion struct {
	ID         int
	Topic      string
	UsageCount int
	Payload    QuestionPayload
}

// QuestionRepo manages the question cache.
type QuestionRepo interface {
	// NextReusable returns the least-used cached question for the topic
	// with usage_count below MaxUsage, incrementing its usage count.
	// Rows whose IDs are in exclude are skipped, so one batch never
	// serves the same question twice. Returns (nil, nil) when the
	// topic has no reusable question left.
	NextReusable(ctx context.Context, topic string, exclude ...int) (*CachedQuestion, error)

	// Save stores a freshly generated question with usage_count = 1.
	Save(ctx context.Context, topic string, payload QuestionPayload) (*CachedQuestion, error)

	// Wipe deletes the entire cache.
	Wipe(ctx context.Context) (int, error)
}

type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) NextReusable(ctx context.Context, topic string, exclude ...int) (*CachedQuestion, error) {
	q := r.client.Question.Query().
		Where(
			question.Topic(topic),
			question.UsageCountLT(MaxUsage),
		)
	if len(exclude) > 0 {
		q = q.Where(question.IDNotIn(exclude...))
	}
	row, err := q.
		Order(ent.Asc(question.FieldUsageCount)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query reusable question: %w", err)
	}

	row, err = row.Update().AddUsageCount(1).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("bump usage count: %w", err)
	}

	return fromRow(row), nil
}

func (r *questionRepo) Save(ctx context.Context, topic string, payload QuestionPayload) (*CachedQuestion, error) {
	row, err := r.client.Question.Create().
		SetTopic(topic).
		SetPayload(payload).
		SetUsageCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	return fromRow(row), nil
}

func (r *questionRepo) Wipe(ctx context.Context) (int, error) {
	n, err := r.client.Question.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("wipe question cache: %w", err)
	}
	return n, nil
}

func fromRow(row *ent.Question) *CachedQuestion {
	return &CachedQuestion{
		ID:         row.ID,
		Topic:      row.Topic,
		UsageCount: row.UsageCount,
		Payload:    row.Payload,
	}
}
