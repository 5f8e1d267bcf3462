// Package revert restores the most recently trashed item.
package revert

import (
	"github.com/arthur-debert/toss/pkg/commands/session"
	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/history"
	"github.com/arthur-debert/toss/pkg/logging"
	"github.com/arthur-debert/toss/pkg/metrics"
)

// Revert undoes the newest history record. An empty history is an error
// with code HISTORY_EMPTY; a record whose trash copy vanished is dropped and
// reported as Missing.
func Revert(s *session.Session) (*history.RevertResult, error) {
	logging.LogCommand("revert", nil)
	defer s.FlushMetrics()

	result, err := s.History().RevertLast()
	if err != nil {
		if !errors.IsErrorCode(err, errors.ErrHistoryEmpty) {
			s.Metrics.Reverted(metrics.RevertFailed)
		}
		return &result, err
	}

	if result.Missing {
		s.Metrics.Reverted(metrics.RevertMissing)
		s.Output.Warn("'%s' is no longer in the trash, dropped it from history", result.Record.TrashPath)
		return &result, nil
	}

	s.Metrics.Reverted(metrics.RevertRestored)
	s.Output.Info("Restored %s", result.Record.OriginalPath)
	return &result, nil
}
