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

// GameScreen plays through the delivered batch one question at a time.
type GameScreen struct {
	deps *Deps
	mc   components.MultiChoice
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)

// NewGame creates the game screen for the controller's current
// question.
func NewGame(deps *Deps) *GameScreen {
	g := &GameScreen{deps: deps}
	g.loadQuestion()
	return g
}

// loadQuestion rebuilds the selector for the controller's current
// question.
func (g *GameScreen) loadQuestion() {
	if g.deps.Controller.Phase() != quiz.PhaseInProgress {
		return
	}
	q := g.deps.Controller.Current()
	g.mc = components.NewMultiChoice(q.Text, q.Options, q.Answer)
}

func (g *GameScreen) Init() tea.Cmd {
	return nil
}

func (g *GameScreen) Title() string {
	return "Quiz"
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.deps.Controller.ExplanationVisible() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "1-4", Description: "Pick"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	ctrl := g.deps.Controller

	if ctrl.ExplanationVisible() {
		switch kmsg.String() {
		case "enter", "space":
			ctrl.Advance()
			if ctrl.Phase() == quiz.PhaseCompleted {
				results := NewResults(g.deps)
				return g, func() tea.Msg { return router.ReplaceScreenMsg{Screen: results} }
			}
			g.loadQuestion()
		}
		return g, nil
	}

	switch key := kmsg.String(); key {
	case "enter":
		return g.submit()
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(g.mc.Options) {
			g.mc.Selected = idx
			return g.submit()
		}
	default:
		var cmd tea.Cmd
		g.mc, cmd = g.mc.Update(msg)
		return g, cmd
	}

	return g, nil
}

// submit locks in the highlighted option and scores it.
func (g *GameScreen) submit() (screen.Screen, tea.Cmd) {
	g.mc.Submit()
	g.deps.Controller.Submit(g.mc.Chosen())
	return g, nil
}

func (g *GameScreen) View(width, height int) string {
	ctrl := g.deps.Controller
	if ctrl.Phase() != quiz.PhaseInProgress {
		return ""
	}
	q := ctrl.Current()

	var b strings.Builder

	// Progress line.
	total := ctrl.BatchLen()
	percent := 0.0
	if total > 0 {
		percent = float64(ctrl.Index()) / float64(total)
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("  Question %d/%d", ctrl.Index()+1, total),
		percent, false, width-20,
	)
	b.WriteString(bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Source tag.
	source := lipgloss.NewStyle().Foreground(theme.TextDim).Render("  source: " + q.Source)
	b.WriteString(source)
	b.WriteString("\n\n")

	b.WriteString(indent(g.mc.View(), 2))

	if ctrl.ExplanationVisible() {
		b.WriteString("\n")
		if ctrl.WasCorrect() {
			b.WriteString("  " + theme.Correct.Render(fmt.Sprintf("Correct! +%d points", quiz.PointsPerCorrect)))
		} else {
			b.WriteString("  " + theme.Incorrect.Render("Not quite. The answer is: "+q.Answer))
		}
		b.WriteString("\n\n")
		b.WriteString(indent(theme.Hint.Render(q.Explanation), 2))
		b.WriteString("\n")
	}

	return b.String()
}

// indent prefixes every line with n spaces.
func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
