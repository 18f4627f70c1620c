package play

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
)

// fakeFetcher implements Fetcher for testing.
type fakeFetcher struct {
	batch  *quiz.Batch
	err    error
	topics []string
}

func (f *fakeFetcher) Fetch(_ context.Context, topic string) (*quiz.Batch, error) {
	f.topics = append(f.topics, topic)
	if f.err != nil {
		return nil, f.err
	}
	return f.batch, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testBatch() *quiz.Batch {
	q := func(text, answer string) quiz.Question {
		return quiz.Question{
			Source:      "database",
			Text:        text,
			Options:     []string{answer, "wrong 1", "wrong 2", "wrong 3"},
			Answer:      answer,
			Explanation: "because",
		}
	}
	return &quiz.Batch{
		Count: 2,
		Questions: []quiz.Question{
			q("first question", "alpha"),
			q("second question", "beta"),
		},
	}
}

func testDeps(f *fakeFetcher) *Deps {
	return &Deps{
		Controller: quiz.NewController(),
		Fetcher:    f,
		Topic:      "general knowledge",
	}
}

// runCmd executes a command and returns the message it produces.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	return cmd()
}

func TestStartBeginsLoading(t *testing.T) {
	deps := testDeps(&fakeFetcher{batch: testBatch()})
	s := NewStart(deps)

	_, cmd := s.Update(enterKey())
	if deps.Controller.Phase() != quiz.PhaseLoading {
		t.Fatalf("phase = %v, want loading", deps.Controller.Phase())
	}
	if cmd == nil {
		t.Fatal("expected spinner + fetch command")
	}
}

func TestStartDeliveryReplacesWithGame(t *testing.T) {
	deps := testDeps(&fakeFetcher{batch: testBatch()})
	s := NewStart(deps)
	s.Update(enterKey())

	_, cmd := s.Update(batchDeliveredMsg{Batch: testBatch()})
	msg := runCmd(t, cmd)

	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*GameScreen); !ok {
		t.Fatalf("expected GameScreen, got %T", rep.Screen)
	}
	if deps.Controller.Phase() != quiz.PhaseInProgress {
		t.Fatalf("phase = %v, want in-progress", deps.Controller.Phase())
	}
}

func TestStartFetchFailureShowsNotice(t *testing.T) {
	deps := testDeps(&fakeFetcher{err: errors.New("boom")})
	s := NewStart(deps)
	s.Update(enterKey())

	updated, _ := s.Update(batchFailedMsg{Err: errors.New("boom")})
	start := updated.(*StartScreen)

	if deps.Controller.Phase() != quiz.PhaseNotStarted {
		t.Fatalf("phase = %v, want not-started", deps.Controller.Phase())
	}
	view := start.View(80, 24)
	if !strings.Contains(view, "Couldn't load questions") {
		t.Error("expected failure notice in view")
	}

	// A fresh attempt clears the notice.
	start.Update(enterKey())
	view = start.View(80, 24)
	if strings.Contains(view, "Couldn't load questions") {
		t.Error("notice must clear when a new attempt starts")
	}
}

func TestStartIgnoresEnterWhileLoading(t *testing.T) {
	fetcher := &fakeFetcher{batch: testBatch()}
	deps := testDeps(fetcher)
	s := NewStart(deps)

	s.Update(enterKey())
	_, cmd := s.Update(enterKey())
	if cmd != nil {
		t.Error("enter while loading must not start another fetch")
	}
}

func TestStartUsesTypedTopic(t *testing.T) {
	fetcher := &fakeFetcher{batch: testBatch()}
	deps := testDeps(fetcher)
	s := NewStart(deps)
	s.Init()

	for _, r := range "jazz" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("expected fetch command")
	}
	// Run the batched command's sub-commands to reach the fetch.
	drainCmd(cmd)

	if len(fetcher.topics) != 1 || fetcher.topics[0] != "jazz" {
		t.Fatalf("fetched topics = %v, want [jazz]", fetcher.topics)
	}
}

// drainCmd runs a command tree, executing batched sub-commands.
func drainCmd(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			drainCmd(sub)
		}
	}
}

func activeGame(t *testing.T) (*GameScreen, *Deps) {
	t.Helper()
	deps := testDeps(&fakeFetcher{batch: testBatch()})
	deps.Controller.Begin()
	deps.Controller.Deliver(testBatch())
	return NewGame(deps), deps
}

func TestGameSubmitCorrectAnswer(t *testing.T) {
	g, deps := activeGame(t)

	// Option 1 is the correct answer in testBatch.
	g.Update(keyPress('1'))

	if !deps.Controller.Answered() {
		t.Fatal("expected question answered")
	}
	if !deps.Controller.WasCorrect() {
		t.Error("option 1 should be correct")
	}
	if deps.Controller.Score() != quiz.PointsPerCorrect {
		t.Errorf("score = %d, want %d", deps.Controller.Score(), quiz.PointsPerCorrect)
	}

	view := g.View(80, 24)
	if !strings.Contains(view, "because") {
		t.Error("expected explanation in view after submit")
	}
}

func TestGameSubmitWrongAnswer(t *testing.T) {
	g, deps := activeGame(t)

	g.Update(keyPress('2'))

	if deps.Controller.WasCorrect() {
		t.Error("option 2 should be wrong")
	}
	if deps.Controller.Score() != 0 {
		t.Errorf("score = %d, want 0", deps.Controller.Score())
	}

	view := g.View(80, 24)
	if !strings.Contains(view, "alpha") {
		t.Error("expected the correct answer revealed in view")
	}
}

func TestGameEnterSubmitsHighlighted(t *testing.T) {
	g, deps := activeGame(t)

	g.Update(keyPress('j')) // move highlight to option 2
	g.Update(enterKey())

	if deps.Controller.Selected() != "wrong 1" {
		t.Errorf("selected = %q, want %q", deps.Controller.Selected(), "wrong 1")
	}
}

func TestGameAdvanceToNextQuestion(t *testing.T) {
	g, deps := activeGame(t)

	g.Update(keyPress('1'))
	g.Update(enterKey())

	if deps.Controller.Index() != 1 {
		t.Fatalf("index = %d, want 1", deps.Controller.Index())
	}
	view := g.View(80, 24)
	if !strings.Contains(view, "second question") {
		t.Error("expected second question in view")
	}
}

func TestGameCompletionReplacesWithResults(t *testing.T) {
	g, deps := activeGame(t)

	g.Update(keyPress('1'))
	g.Update(enterKey())
	g.Update(keyPress('1'))
	_, cmd := g.Update(enterKey())

	if deps.Controller.Phase() != quiz.PhaseCompleted {
		t.Fatalf("phase = %v, want completed", deps.Controller.Phase())
	}
	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*ResultsScreen); !ok {
		t.Fatalf("expected ResultsScreen, got %T", rep.Screen)
	}
}

func TestGameAdvanceRequiresAnswer(t *testing.T) {
	g, deps := activeGame(t)

	// Enter before choosing submits the highlighted option, so use a
	// fresh controller check: advancing explicitly is gated.
	deps.Controller.Advance()
	if deps.Controller.Index() != 0 {
		t.Error("advance before answering must be a no-op")
	}
	_ = g
}

func finishedResults(t *testing.T, fetcher *fakeFetcher) (*ResultsScreen, *Deps) {
	t.Helper()
	deps := testDeps(fetcher)
	deps.Controller.Begin()
	deps.Controller.Deliver(testBatch())
	for i := 0; i < 2; i++ {
		deps.Controller.Submit("alpha")
		deps.Controller.Advance()
	}
	return NewResults(deps), deps
}

func TestResultsShowsScoreAndCounts(t *testing.T) {
	r, _ := finishedResults(t, &fakeFetcher{batch: testBatch()})

	view := r.View(80, 24)
	if !strings.Contains(view, "100 points") {
		t.Errorf("expected score in view, got:\n%s", view)
	}
	if !strings.Contains(view, "Correct: 1") || !strings.Contains(view, "Incorrect: 1") {
		t.Error("expected correct/incorrect counts in view")
	}
}

func TestResultsRestartRefetches(t *testing.T) {
	fetcher := &fakeFetcher{batch: testBatch()}
	r, deps := finishedResults(t, fetcher)

	_, cmd := r.Update(keyPress('r'))
	if deps.Controller.Phase() != quiz.PhaseLoading {
		t.Fatalf("phase = %v, want loading", deps.Controller.Phase())
	}
	drainCmd(cmd)
	if len(fetcher.topics) != 1 {
		t.Fatalf("expected one fetch after restart, got %d", len(fetcher.topics))
	}

	// Delivery lands on a fresh game with reset round state.
	updated, cmd := r.Update(batchDeliveredMsg{Batch: testBatch()})
	_ = updated
	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := rep.Screen.(*GameScreen); !ok {
		t.Fatalf("expected GameScreen, got %T", rep.Screen)
	}
	if deps.Controller.Score() != 0 {
		t.Errorf("score = %d, want 0 after restart", deps.Controller.Score())
	}
}

func TestResultsRestartFailureReturnsToStart(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("down")}
	r, deps := finishedResults(t, fetcher)

	r.Update(keyPress('r'))
	_, cmd := r.Update(batchFailedMsg{Err: errors.New("down")})

	msg := runCmd(t, cmd)
	rep, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	start, ok := rep.Screen.(*StartScreen)
	if !ok {
		t.Fatalf("expected StartScreen, got %T", rep.Screen)
	}
	if deps.Controller.Phase() != quiz.PhaseNotStarted {
		t.Fatalf("phase = %v, want not-started", deps.Controller.Phase())
	}
	view := start.View(80, 24)
	if !strings.Contains(view, "Couldn't load questions") {
		t.Error("expected failure notice on start screen")
	}
}
