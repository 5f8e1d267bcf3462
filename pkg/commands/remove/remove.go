// Package remove implements the main toss command: select paths, then trash
// them, or delete them permanently in force mode.
package remove

import (
	"github.com/arthur-debert/toss/pkg/commands/session"
	"github.com/arthur-debert/toss/pkg/dedup"
	"github.com/arthur-debert/toss/pkg/interaction"
	"github.com/arthur-debert/toss/pkg/logging"
	"github.com/arthur-debert/toss/pkg/removal"
	"github.com/arthur-debert/toss/pkg/selection"
	"github.com/arthur-debert/toss/pkg/trash"
	"github.com/arthur-debert/toss/pkg/types"
)

// RemoveOptions holds options for the remove command
type RemoveOptions struct {
	Paths    []string
	Criteria types.SelectionCriteria
	DryRun   bool
	Mode     types.InteractiveMode
}

// ForceOptions holds options for permanent removal
type ForceOptions struct {
	Paths  []string
	DryRun bool
	Mode   types.InteractiveMode
}

// Result is what a remove run did
type Result struct {
	Selection selection.Selection
	Report    removal.Report
}

// Failed reports whether any path could not be handled
func (r *Result) Failed() bool {
	return len(r.Selection.Problems) > 0 || r.Report.Failed()
}

// Remove moves the selected paths into the trash. The returned error is set
// only when the selection itself failed, in which case nothing was touched.
func Remove(s *session.Session, opts RemoveOptions) (*Result, error) {
	logger := logging.GetLogger("commands.remove")
	logging.LogCommand("remove", opts.Paths)

	result := &Result{}
	sel, err := selection.New(s.FS, selection.WithWorkDir(s.WorkingDir())).Select(opts.Paths, opts.Criteria)
	result.Selection = sel
	reportProblems(s, sel)
	if err != nil {
		s.FlushMetrics()
		return result, err
	}

	settings := s.Settings()
	engineOpts := []removal.Option{
		removal.WithIDSource(trash.NewIDSource(s.Clock())),
		removal.WithPrivilegeCheck(s.PrivilegeCheck()),
		removal.WithMetrics(s.Metrics),
		removal.WithReporter(s.Output),
	}
	if settings.CheckSHA256 {
		d, err := dedup.New(s.FS, settings.HashAlgorithm, s.Metrics)
		if err != nil {
			return result, err
		}
		engineOpts = append(engineOpts, removal.WithDedup(d, settings.SilentDedupDelete))
	}

	policy := interaction.New(opts.Mode, settings.OnceThreshold, s.Confirmer)
	engine := removal.New(s.FS, s.TrashDir(), s.History(), policy, engineOpts...)

	result.Report = engine.Run(sel.Entries, removal.Options{
		Criteria: opts.Criteria,
		DryRun:   opts.DryRun,
		ArgCount: len(opts.Paths),
	})

	logger.Info().
		Int("trashed", result.Report.Count(types.OutcomeTrashed)).
		Int("deleted", result.Report.Count(types.OutcomePermanentlyDeleted)).
		Int("skipped", result.Report.Count(types.OutcomeSkipped)).
		Int("failed", result.Report.Count(types.OutcomeFailed)).
		Bool("aborted", result.Report.Aborted).
		Msg("Remove finished")

	s.FlushMetrics()
	return result, nil
}

// Force deletes paths permanently, bypassing trash and history
func Force(s *session.Session, opts ForceOptions) *Result {
	logging.LogCommand("force", opts.Paths)

	result := &Result{}
	// Recursive selection admits files and directories verbatim
	sel, _ := selection.New(s.FS, selection.WithWorkDir(s.WorkingDir())).
		Select(opts.Paths, types.SelectionCriteria{Recursive: true})
	result.Selection = sel
	reportProblems(s, sel)

	if opts.DryRun {
		for _, entry := range sel.Entries {
			s.Output.Listed(entry.Path)
			result.Report.Results = append(result.Report.Results, removal.Result{Entry: entry, Outcome: types.OutcomeListed})
		}
		return result
	}

	policy := interaction.New(opts.Mode, s.Settings().OnceThreshold, s.Confirmer)
	engine := removal.New(s.FS, s.TrashDir(), nil, policy,
		removal.WithMetrics(s.Metrics),
		removal.WithReporter(s.Output),
	)
	result.Report = engine.Force(sel.Entries)

	s.FlushMetrics()
	return result
}

// reportProblems prints selection problems and counts them as failed items
func reportProblems(s *session.Session, sel selection.Selection) {
	for _, problem := range sel.Problems {
		s.Output.Problem(problem)
		s.Metrics.ItemProcessed(types.OutcomeFailed)
	}
}
