// Package history lists the undo log.
package history

import (
	"io"

	"github.com/arthur-debert/toss/pkg/commands/session"
	"github.com/arthur-debert/toss/pkg/logging"
	"github.com/arthur-debert/toss/pkg/ui"
)

// HistoryOptions holds options for the history command
type HistoryOptions struct {
	Format ui.Format
	Writer io.Writer
}

// History renders every record of the undo log, oldest first
func History(s *session.Session, console *ui.Console, opts HistoryOptions) error {
	logger := logging.GetLogger("commands.history")
	logging.LogCommand("history", nil)

	log := s.History()
	records, err := log.Records()
	if err != nil {
		return err
	}
	logger.Debug().Int("records", len(records)).Str("path", log.Path()).Msg("Read history")

	w := opts.Writer
	if w == nil {
		w = console.Out()
	}
	return console.RenderHistory(w, log.Path(), records, opts.Format)
}
