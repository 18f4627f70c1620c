package quiz

import "testing"

func validQuestion() Question {
	return Question{
		ID:          1,
		Source:      "database",
		Text:        "Which planet is known as the red planet?",
		Options:     []string{"Venus", "Mars", "Jupiter", "Saturn"},
		Answer:      "Mars",
		Explanation: "Iron oxide on the surface gives Mars its color.",
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"empty text", func(q *Question) { q.Text = "" }, true},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }, true},
		{"five options", func(q *Question) { q.Options = append(q.Options, "Pluto") }, true},
		{"blank option", func(q *Question) { q.Options[2] = "" }, true},
		{"answer not an option", func(q *Question) { q.Answer = "Mercury" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBatchValidate(t *testing.T) {
	b := &Batch{Count: 1, Questions: []Question{validQuestion()}}
	if err := b.Validate(); err != nil {
		t.Errorf("valid batch: %v", err)
	}

	if err := (&Batch{}).Validate(); err == nil {
		t.Error("empty batch should fail validation")
	}

	b.Count = 2
	if err := b.Validate(); err == nil {
		t.Error("count mismatch should fail validation")
	}
}
