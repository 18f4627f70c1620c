package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a cached generated question. Each row is served up to
// five times before a fresh one is generated for its topic.
type Question struct {
	ent.Schema
}

// QuestionPayload is the generated question body stored as JSON.
type QuestionPayload struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Topic the question was generated for"),
		field.JSON("payload", QuestionPayload{}).
			Comment("Question body: text, options, answer, explanation"),
		field.Int("usage_count").
			Default(0).
			Comment("Times this question has been served"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "usage_count"),
	}
}
