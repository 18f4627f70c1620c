package play

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/quizdeck/quizdeck/internal/quiz"
)

// Fetcher is the slice of the supplier client the play screens need.
type Fetcher interface {
	Fetch(ctx context.Context, topic string) (*quiz.Batch, error)
}

// fetchNotice is the only failure text the player ever sees; every
// fetch failure mode collapses into it.
const fetchNotice = "Couldn't load questions. Check the supplier and try again."

// Deps carries the session state and supplier client shared by the
// play screens. One instance threads through start, game and results.
type Deps struct {
	Controller *quiz.Controller
	Fetcher    Fetcher
	Topic      string // default topic when the player leaves the field blank
}

// fetchBatch requests one batch asynchronously.
func fetchBatch(f Fetcher, topic string) tea.Cmd {
	return func() tea.Msg {
		batch, err := f.Fetch(context.Background(), topic)
		if err != nil {
			return batchFailedMsg{Err: err}
		}
		return batchDeliveredMsg{Batch: batch}
	}
}
