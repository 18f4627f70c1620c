package play

import (
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

// StartScreen is the pre-session screen: pick a topic and start. It
// also owns the loading phase and shows the failure notice when a
// fetch fails.
type StartScreen struct {
	deps    *Deps
	input   components.TextInput
	spinner components.Spinner
	notice  string
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// NewStart creates the start screen. A pending failure notice on the
// controller is consumed here, so a restart that failed on the results
// screen lands with its message intact.
func NewStart(deps *Deps) *StartScreen {
	placeholder := deps.Topic
	if placeholder == "" {
		placeholder = "any topic"
	}
	return &StartScreen{
		deps:    deps,
		input:   components.NewTextInput(placeholder, 40),
		spinner: components.NewSpinner("Fetching questions..."),
		notice:  deps.Controller.Notice(),
	}
}

func (s *StartScreen) Title() string {
	return "New Quiz"
}

func (s *StartScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	if s.loading() {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *StartScreen) loading() bool {
	return s.deps.Controller.Phase() == quiz.PhaseLoading
}

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchDeliveredMsg:
		s.deps.Controller.Deliver(msg.Batch)
		if s.deps.Controller.Phase() != quiz.PhaseInProgress {
			return s, nil
		}
		game := NewGame(s.deps)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: game} }

	case batchFailedMsg:
		s.deps.Controller.Fail(fetchNotice)
		s.notice = s.deps.Controller.Notice()
		return s, nil

	case tea.KeyMsg:
		if s.loading() {
			return s, nil
		}
		if msg.String() == "enter" {
			return s.start()
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if s.loading() {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// start transitions to loading and kicks off the fetch.
func (s *StartScreen) start() (screen.Screen, tea.Cmd) {
	if !s.deps.Controller.Begin() {
		return s, nil
	}
	s.notice = ""

	topic := strings.TrimSpace(s.input.Value())
	if topic == "" {
		topic = s.deps.Topic
	}

	return s, tea.Batch(
		s.spinner.Init(),
		fetchBatch(s.deps.Fetcher, topic),
	)
}

func (s *StartScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("QUIZDECK")
	sections = append(sections, title, "")

	subtitle := theme.Subtitle.Render("Five questions. 100 points each. No second chances.")
	sections = append(sections, subtitle, "")

	if s.loading() {
		sections = append(sections, s.spinner.View())
	} else {
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("Topic: ") + s.input.View()
		sections = append(sections, prompt, "")

		button := components.NewButton("Start quiz", true, nil)
		sections = append(sections, button.View())

		if s.notice != "" {
			sections = append(sections, "", theme.Incorrect.Render(s.notice))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
