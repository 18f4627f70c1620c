package quiz

import "testing"

func testBatch(answers ...string) *Batch {
	qs := make([]Question, len(answers))
	for i, ans := range answers {
		qs[i] = Question{
			ID:          i + 1,
			Source:      "database",
			Text:        "question",
			Options:     []string{"A", "B", "C", "D"},
			Answer:      ans,
			Explanation: "because",
		}
	}
	return &Batch{Count: len(qs), Questions: qs}
}

func startSession(t *testing.T, b *Batch) *Controller {
	t.Helper()
	c := NewController()
	if !c.Begin() {
		t.Fatal("Begin from not-started should succeed")
	}
	c.Deliver(b)
	if c.Phase() != PhaseInProgress {
		t.Fatalf("phase after Deliver = %v, want in-progress", c.Phase())
	}
	return c
}

func TestDeliverResetsRoundState(t *testing.T) {
	c := startSession(t, testBatch("B", "C"))

	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
	if c.Score() != 0 {
		t.Errorf("score = %d, want 0", c.Score())
	}
	if c.Selected() != "" {
		t.Errorf("selected = %q, want empty", c.Selected())
	}
	if c.ExplanationVisible() {
		t.Error("explanation should be hidden at round start")
	}
}

func TestSubmitIsIdempotent(t *testing.T) {
	c := startSession(t, testBatch("B"))

	c.Submit("B")
	if c.Score() != PointsPerCorrect {
		t.Fatalf("score = %d, want %d", c.Score(), PointsPerCorrect)
	}

	// Second submission for the same question must not change anything,
	// even if it names a different option.
	c.Submit("B")
	c.Submit("A")
	if c.Score() != PointsPerCorrect {
		t.Errorf("score after repeat submit = %d, want %d", c.Score(), PointsPerCorrect)
	}
	if c.Selected() != "B" {
		t.Errorf("selected after repeat submit = %q, want B", c.Selected())
	}
}

func TestAdvanceRequiresExplanation(t *testing.T) {
	c := startSession(t, testBatch("B", "C"))

	c.Advance()
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0 (advance before submit must be ignored)", c.Index())
	}
	if c.Phase() != PhaseInProgress {
		t.Errorf("phase = %v, want in-progress", c.Phase())
	}
}

func TestFullRunCompletes(t *testing.T) {
	const n = 5
	c := startSession(t, testBatch("A", "B", "C", "D", "A"))

	for i := 0; i < n; i++ {
		c.Submit("A")
		c.Advance()
	}

	if c.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", c.Phase())
	}
	if c.Score()%PointsPerCorrect != 0 {
		t.Errorf("score %d is not a multiple of %d", c.Score(), PointsPerCorrect)
	}
	if c.Score() < 0 || c.Score() > n*PointsPerCorrect {
		t.Errorf("score %d out of range [0, %d]", c.Score(), n*PointsPerCorrect)
	}
}

func TestSingleQuestionCorrect(t *testing.T) {
	c := startSession(t, testBatch("B"))

	c.Submit("B")
	if !c.WasCorrect() {
		t.Error("answer B should be correct")
	}
	if c.Score() != 100 {
		t.Errorf("score = %d, want 100", c.Score())
	}
	if !c.ExplanationVisible() {
		t.Error("explanation should be visible after submit")
	}

	c.Advance()
	if c.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", c.Phase())
	}
	if c.CorrectCount() != 1 {
		t.Errorf("correct = %d, want 1", c.CorrectCount())
	}
	if c.IncorrectCount() != 0 {
		t.Errorf("incorrect = %d, want 0", c.IncorrectCount())
	}
}

func TestMixedRun(t *testing.T) {
	c := startSession(t, testBatch("B", "C"))

	c.Submit("A") // wrong
	if c.WasCorrect() {
		t.Error("answer A should be wrong")
	}
	if c.Score() != 0 {
		t.Errorf("score = %d, want 0", c.Score())
	}
	c.Advance()

	c.Submit("C") // right
	if c.Score() != 100 {
		t.Errorf("score = %d, want 100", c.Score())
	}
	c.Advance()

	if c.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", c.Phase())
	}
	if c.CorrectCount() != 1 || c.IncorrectCount() != 1 {
		t.Errorf("correct/incorrect = %d/%d, want 1/1", c.CorrectCount(), c.IncorrectCount())
	}
}

func TestFetchFailureReturnsToNotStarted(t *testing.T) {
	c := NewController()
	c.Begin()
	c.Fail("could not load questions")

	if c.Phase() != PhaseNotStarted {
		t.Fatalf("phase = %v, want not-started", c.Phase())
	}
	if c.BatchLen() != 0 {
		t.Error("no batch should be retained after a failed fetch")
	}
	if got := c.Notice(); got != "could not load questions" {
		t.Errorf("notice = %q", got)
	}
	// The notice is one-shot.
	if got := c.Notice(); got != "" {
		t.Errorf("second notice read = %q, want empty", got)
	}
}

func TestBeginWhileLoadingIsNoOp(t *testing.T) {
	c := NewController()
	if !c.Begin() {
		t.Fatal("first Begin should succeed")
	}
	if c.Begin() {
		t.Error("Begin while loading must be rejected")
	}
	if c.Phase() != PhaseLoading {
		t.Errorf("phase = %v, want loading", c.Phase())
	}
}

func TestBeginWhileInProgressIsNoOp(t *testing.T) {
	c := startSession(t, testBatch("B"))
	if c.Begin() {
		t.Error("Begin while in progress must be rejected")
	}
}

func TestRestartRefetches(t *testing.T) {
	c := startSession(t, testBatch("B"))
	c.Submit("B")
	c.Advance()

	if !c.Restart() {
		t.Fatal("Restart from completed should succeed")
	}
	if c.Phase() != PhaseLoading {
		t.Fatalf("phase = %v, want loading", c.Phase())
	}

	c.Deliver(testBatch("A", "B"))
	if c.Score() != 0 || c.Index() != 0 {
		t.Errorf("score/index = %d/%d, want 0/0 after restart", c.Score(), c.Index())
	}
	if c.BatchLen() != 2 {
		t.Errorf("batch len = %d, want 2 (new batch, not the old one)", c.BatchLen())
	}
}

func TestRestartInvalidOutsideCompleted(t *testing.T) {
	c := NewController()
	if c.Restart() {
		t.Error("Restart from not-started must be rejected")
	}
	c.Begin()
	if c.Restart() {
		t.Error("Restart while loading must be rejected")
	}
}

func TestSubmitOutsideInProgressIsNoOp(t *testing.T) {
	c := NewController()
	c.Submit("A") // not started: nothing to answer
	if c.Phase() != PhaseNotStarted || c.Score() != 0 {
		t.Error("Submit before a session must be ignored")
	}

	c = startSession(t, testBatch("B"))
	c.Submit("B")
	c.Advance() // completed
	c.Submit("B")
	if c.Score() != 100 {
		t.Errorf("score = %d, want 100 (Submit after completion ignored)", c.Score())
	}
}
