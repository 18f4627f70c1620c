package quiz

// PointsPerCorrect is the flat score award for a correct first
// submission. Scoring is independent of difficulty and time.
const PointsPerCorrect = 100

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseLoading
	PhaseInProgress
	PhaseCompleted
)

// String returns the phase name for display and logging.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseLoading:
		return "loading"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Controller owns all quiz session state and transition logic. It is a
// plain state machine: the fetch itself happens outside (the UI layer
// issues it while the controller sits in PhaseLoading) and completes
// through Deliver or Fail.
//
// Out-of-order calls are silent no-ops rather than errors; the UI event
// loop is the single caller and gates everything on Phase anyway.
type Controller struct {
	phase Phase
	batch *Batch

	index        int
	score        int
	correctCount int

	answered    bool
	selected    string
	wasCorrect  bool
	explanation bool

	notice string
}

// NewController returns a Controller in the not-started phase.
func NewController() *Controller {
	return &Controller{}
}

// Phase returns the current session phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Begin starts a new session: valid only from not-started or completed.
// It moves the session to loading and reports whether a fetch should be
// issued. A Begin while a fetch is already in flight is a no-op, so
// overlapping fetches cannot happen.
func (c *Controller) Begin() bool {
	if c.phase != PhaseNotStarted && c.phase != PhaseCompleted {
		return false
	}
	c.phase = PhaseLoading
	c.notice = ""
	return true
}

// Restart is Begin from the completed phase. The previous batch is
// never reused; a fresh fetch is always issued.
func (c *Controller) Restart() bool {
	if c.phase != PhaseCompleted {
		return false
	}
	return c.Begin()
}

// Deliver completes a successful fetch. The batch replaces any previous
// one and the round state is reset: index 0, score 0, nothing selected,
// explanation hidden.
func (c *Controller) Deliver(batch *Batch) {
	if c.phase != PhaseLoading {
		return
	}
	c.batch = batch
	c.index = 0
	c.score = 0
	c.correctCount = 0
	c.resetRound()
	c.phase = PhaseInProgress
}

// Fail completes a failed fetch: the session returns to not-started
// with no batch retained, and a one-shot notice is recorded for the UI.
// No retry is scheduled; the user may Begin again.
func (c *Controller) Fail(notice string) {
	if c.phase != PhaseLoading {
		return
	}
	c.batch = nil
	c.notice = notice
	c.phase = PhaseNotStarted
}

// Notice returns the failure notice from the last failed fetch and
// clears it, so it is surfaced exactly once.
func (c *Controller) Notice() string {
	n := c.notice
	c.notice = ""
	return n
}

// Submit records the answer for the active question. Only the first
// submission per question counts; repeat calls leave the selection and
// score untouched. A correct answer awards PointsPerCorrect and every
// submission reveals the explanation.
func (c *Controller) Submit(option string) {
	if c.phase != PhaseInProgress || c.answered {
		return
	}
	c.answered = true
	c.selected = option
	c.wasCorrect = option == c.Current().Answer
	if c.wasCorrect {
		c.score += PointsPerCorrect
		c.correctCount++
	}
	c.explanation = true
}

// Advance moves to the next question, or to the completed phase when
// the active question is the last one. It is gated on the explanation
// being visible: advancing without answering is impossible.
func (c *Controller) Advance() {
	if c.phase != PhaseInProgress || !c.explanation {
		return
	}
	if c.index+1 >= c.batch.Len() {
		c.phase = PhaseCompleted
		return
	}
	c.index++
	c.resetRound()
}

func (c *Controller) resetRound() {
	c.answered = false
	c.selected = ""
	c.wasCorrect = false
	c.explanation = false
}

// Current returns the active question. Valid only while in progress.
func (c *Controller) Current() Question {
	return c.batch.Questions[c.index]
}

// Index returns the zero-based position of the active question.
func (c *Controller) Index() int { return c.index }

// Score returns the accumulated score.
func (c *Controller) Score() int { return c.score }

// BatchLen returns the number of questions in the current batch, or 0
// when no batch is held.
func (c *Controller) BatchLen() int {
	if c.batch == nil {
		return 0
	}
	return c.batch.Len()
}

// Answered reports whether the active question has a submission.
func (c *Controller) Answered() bool { return c.answered }

// Selected returns the submitted option for the active question, empty
// when nothing has been submitted yet.
func (c *Controller) Selected() string { return c.selected }

// WasCorrect reports whether the submission for the active question was
// correct. Meaningful only when Answered is true.
func (c *Controller) WasCorrect() bool { return c.wasCorrect }

// ExplanationVisible reports whether the explanation for the active
// question should be shown.
func (c *Controller) ExplanationVisible() bool { return c.explanation }

// CorrectCount returns the number of correctly answered questions.
// Tracked directly rather than derived from Score, so it stays exact
// even if the award constant changes.
func (c *Controller) CorrectCount() int { return c.correctCount }

// IncorrectCount returns the number of incorrectly answered questions.
func (c *Controller) IncorrectCount() int {
	return c.BatchLen() - c.correctCount
}
