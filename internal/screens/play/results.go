package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/router"
	"github.com/quizdeck/quizdeck/internal/screen"
	"github.com/quizdeck/quizdeck/internal/ui/components"
	"github.com/quizdeck/quizdeck/internal/ui/layout"
	"github.com/quizdeck/quizdeck/internal/ui/theme"
)

// ResultsScreen shows the final score and offers a restart, which
// refetches a fresh batch right away.
type ResultsScreen struct {
	deps    *Deps
	spinner components.Spinner
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// NewResults creates the results screen.
func NewResults(deps *Deps) *ResultsScreen {
	return &ResultsScreen{
		deps:    deps,
		spinner: components.NewSpinner("Fetching questions..."),
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	if r.loading() {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "R", Description: "Play again"},
		{Key: "Q", Description: "Quit"},
	}
}

func (r *ResultsScreen) loading() bool {
	return r.deps.Controller.Phase() == quiz.PhaseLoading
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchDeliveredMsg:
		r.deps.Controller.Deliver(msg.Batch)
		game := NewGame(r.deps)
		return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: game} }

	case batchFailedMsg:
		// Back to the start screen, which consumes and shows the notice.
		r.deps.Controller.Fail(fetchNotice)
		start := NewStart(r.deps)
		return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: start} }

	case tea.KeyMsg:
		if r.loading() {
			return r, nil
		}
		switch msg.String() {
		case "r", "R":
			return r.restart()
		case "q", "Q":
			return r, tea.Quit
		}
		return r, nil
	}

	if r.loading() {
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd
	}

	return r, nil
}

// restart drops the finished batch and fetches a new one.
func (r *ResultsScreen) restart() (screen.Screen, tea.Cmd) {
	if !r.deps.Controller.Restart() {
		return r, nil
	}
	return r, tea.Batch(
		r.spinner.Init(),
		fetchBatch(r.deps.Fetcher, r.deps.Topic),
	)
}

func (r *ResultsScreen) View(width, height int) string {
	ctrl := r.deps.Controller

	var sections []string

	sections = append(sections, theme.Title.Render("Quiz complete!"), "")

	score := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("%d points", ctrl.Score()))
	sections = append(sections, score, "")

	stats := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Correct: %d    Incorrect: %d", ctrl.CorrectCount(), ctrl.IncorrectCount()))
	sections = append(sections, stats, "")

	if r.loading() {
		sections = append(sections, r.spinner.View())
	} else {
		hint := theme.Hint.Render("R to play again, Q to quit")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
