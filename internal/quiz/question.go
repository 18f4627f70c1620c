package quiz

import "fmt"

// OptionCount is the fixed number of choices per question.
const OptionCount = 4

// Question is a single multiple-choice question as received from the
// supplier. Immutable once part of a Batch.
type Question struct {
	ID          int
	Source      string
	Text        string
	Options     []string
	Answer      string
	Explanation string
}

// Validate checks the structural invariants of a single question.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question %d: empty question text", q.ID)
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("question %d: got %d options, want %d", q.ID, len(q.Options), OptionCount)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("question %d: option %d is empty", q.ID, i)
		}
	}
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return fmt.Errorf("question %d: answer %q is not among the options", q.ID, q.Answer)
}

// Batch is the ordered set of questions for one play session.
// The wire order defines play order and is never rearranged.
type Batch struct {
	Count     int
	Questions []Question
}

// Len returns the number of questions in the batch.
func (b *Batch) Len() int {
	return len(b.Questions)
}

// Validate checks the batch invariants: the declared count matches the
// sequence length, the batch is non-empty, and every question is
// structurally sound.
func (b *Batch) Validate() error {
	if len(b.Questions) == 0 {
		return fmt.Errorf("empty batch")
	}
	if b.Count != len(b.Questions) {
		return fmt.Errorf("batch count %d does not match %d questions", b.Count, len(b.Questions))
	}
	for _, q := range b.Questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
