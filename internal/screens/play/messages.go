package play

import (
	"github.com/quizdeck/quizdeck/internal/quiz"
)

// batchDeliveredMsg is sent when a question batch has been fetched.
type batchDeliveredMsg struct {
	Batch *quiz.Batch
}

// batchFailedMsg is sent when the fetch failed for any reason.
type batchFailedMsg struct {
	Err error
}
