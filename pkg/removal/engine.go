package removal

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/toss/pkg/dedup"
	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/filesystem"
	"github.com/arthur-debert/toss/pkg/guards"
	"github.com/arthur-debert/toss/pkg/history"
	"github.com/arthur-debert/toss/pkg/interaction"
	"github.com/arthur-debert/toss/pkg/logging"
	"github.com/arthur-debert/toss/pkg/metrics"
	"github.com/arthur-debert/toss/pkg/trash"
	"github.com/arthur-debert/toss/pkg/types"
)

// Reasons attached to results
const (
	ReasonDeclined   = "declined"
	ReasonPrivileged = "running as root"
	ReasonDuplicate  = "identical copy already in trash"
	ReasonEmptyDir   = "empty directory"
	ReasonForced     = "forced"
)

// Options describe one run
type Options struct {
	Criteria types.SelectionCriteria

	// DryRun lists entries instead of removing them
	DryRun bool

	// ArgCount is the number of arguments the user gave, used for the batch
	// prompt. Zero means the number of entries.
	ArgCount int
}

// Engine moves entries into the trash
type Engine struct {
	fs          afero.Fs
	trashDir    string
	history     *history.Log
	policy      *interaction.Policy
	ids         *trash.IDSource
	dedup       *dedup.Deduplicator
	silentDedup bool
	privileged  guards.PrivilegeCheck
	device      guards.DeviceCheck
	metrics     *metrics.Recorder
	reporter    Reporter
	logger      zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithIDSource replaces the wall-clock id source
func WithIDSource(ids *trash.IDSource) Option {
	return func(e *Engine) { e.ids = ids }
}

// WithDedup enables the content check against the trash
func WithDedup(d *dedup.Deduplicator, silent bool) Option {
	return func(e *Engine) {
		e.dedup = d
		e.silentDedup = silent
	}
}

// WithPrivilegeCheck replaces the effective-uid check
func WithPrivilegeCheck(check guards.PrivilegeCheck) Option {
	return func(e *Engine) { e.privileged = check }
}

// WithDeviceCheck replaces the same-device check run before each rename
func WithDeviceCheck(check guards.DeviceCheck) Option {
	return func(e *Engine) { e.device = check }
}

// WithMetrics counts outcomes in rec
func WithMetrics(rec *metrics.Recorder) Option {
	return func(e *Engine) { e.metrics = rec }
}

// WithReporter sets the output sink
func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// New creates an Engine for trashDir recording into log
func New(fs afero.Fs, trashDir string, log *history.Log, policy *interaction.Policy, opts ...Option) *Engine {
	e := &Engine{
		fs:         fs,
		trashDir:   trashDir,
		history:    log,
		policy:     policy,
		ids:        trash.NewIDSource(nil),
		privileged: guards.IsPrivileged,
		device:     guards.CheckDevice,
		reporter:   nopReporter{},
		logger:     logging.GetLogger("removal"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// TrashDir returns the trash directory in use
func (e *Engine) TrashDir() string {
	return e.trashDir
}

// Run processes entries in order
func (e *Engine) Run(entries []types.Entry, opts Options) Report {
	var report Report
	done := logging.LogOperationStart(e.logger, "remove")
	defer done()

	if opts.DryRun {
		for _, entry := range entries {
			e.reporter.Listed(entry.Path)
			report.Results = append(report.Results, e.finish(Result{Entry: entry, Outcome: types.OutcomeListed}))
		}
		return report
	}

	argCount := opts.ArgCount
	if argCount == 0 {
		argCount = len(entries)
	}
	if !e.policy.ConfirmBatch(argCount, opts.Criteria.Recursive) {
		e.logger.Info().Int("count", argCount).Msg("Batch declined")
		report.Aborted = true
		return report
	}

	emptyDirMode := opts.Criteria.TreatEmptyDirAsRemovable && !opts.Criteria.Recursive

	var setupErr error
	if !emptyDirMode && len(entries) > 0 {
		if err := e.fs.MkdirAll(e.trashDir, 0700); err != nil {
			setupErr = errors.Wrapf(err, errors.ErrIO, "cannot create trash directory '%s'", e.trashDir).WithPath(e.trashDir)
		}
	}

	namer := trash.NewNamer(e.fs, e.trashDir)
	for _, entry := range entries {
		var res Result
		switch {
		case setupErr != nil:
			res = failed(entry, setupErr)
		case emptyDirMode:
			res = e.processEmptyDir(entry)
		default:
			res = e.process(entry, namer, opts.Criteria.HasPattern())
		}
		report.Results = append(report.Results, e.finish(res))
	}

	return report
}

// Force permanently removes entries without trash or history
func (e *Engine) Force(entries []types.Entry) Report {
	var report Report
	for _, entry := range entries {
		var res Result
		switch {
		case guards.IsRoot(entry.Path):
			res = failed(entry, guards.CheckRoot(entry.Path))
		case !e.policy.ConfirmItem(entry, false):
			res = Result{Entry: entry, Outcome: types.OutcomeSkipped, Reason: ReasonDeclined}
		default:
			res = e.remove(entry, ReasonForced)
		}
		report.Results = append(report.Results, e.finish(res))
	}
	return report
}

func (e *Engine) finish(res Result) Result {
	e.metrics.ItemProcessed(res.Outcome)
	if res.Outcome == types.OutcomeFailed && res.Err != nil {
		e.reporter.Problem(res.Err)
	}
	e.logger.Debug().
		Str("path", res.Entry.Path).
		Str("outcome", res.Outcome.String()).
		Str("trash", res.TrashPath).
		Str("reason", res.Reason).
		Err(res.Err).
		Msg("Processed entry")
	return res
}

func (e *Engine) process(entry types.Entry, namer *trash.Namer, patternBatch bool) Result {
	if err := guards.CheckRoot(entry.Path); err != nil {
		return failed(entry, err)
	}

	if _, err := filesystem.Lstat(e.fs, entry.Path); err != nil {
		return failed(entry, statError(entry.Path, err))
	}

	if !e.policy.ConfirmItem(entry, false) {
		return Result{Entry: entry, Outcome: types.OutcomeSkipped, Reason: ReasonDeclined}
	}

	id := e.ids.Next()
	target, err := namer.Name(entry.Path, id)
	if err != nil {
		return failed(entry, err)
	}

	if e.privileged != nil && e.privileged() {
		e.reporter.Problem(errors.Newf(errors.ErrPermissionDenied,
			"cannot move '%s' to the trash while running as root", entry.Path).WithPath(entry.Path))
		return e.permanent(entry, ReasonPrivileged)
	}

	if err := e.device(e.fs, entry.Path, e.trashDir); err != nil {
		if !errors.IsErrorCode(err, errors.ErrCrossesDevices) {
			return failed(entry, err)
		}
		e.reporter.Problem(err)
		return e.permanent(entry, errors.UserMessage(err))
	}

	if e.dedup != nil && entry.Kind == types.KindFile {
		same, err := e.dedup.AlreadyTrashedIdentical(entry.Path, e.trashDir)
		if err != nil {
			e.logger.Warn().Err(err).Str("path", entry.Path).Msg("Content check failed, trashing normally")
		} else if same {
			e.reporter.Notice("'%s' is already in the trash with identical content", entry.Path)
			if e.silentDedup {
				return e.remove(entry, ReasonDuplicate)
			}
			return e.permanent(entry, ReasonDuplicate)
		}
	}

	if err := e.fs.Rename(entry.Path, target); err != nil {
		if filesystem.IsPermission(err) {
			return failed(entry, errors.Wrapf(err, errors.ErrPermissionDenied,
				"not enough permission to remove '%s'", entry.Path).WithPath(entry.Path))
		}
		renameErr := errors.Wrapf(err, errors.ErrIO, "cannot move '%s' to the trash", entry.Path).WithPath(entry.Path)
		e.reporter.Problem(renameErr)
		return e.permanent(entry, errors.UserMessage(renameErr))
	}
	namer.Reserve(target)

	if !patternBatch && e.history != nil {
		rec := history.Record{ID: id, OriginalPath: entry.Path, TrashPath: target}
		if err := e.history.Append(rec); err != nil {
			e.reporter.Problem(err)
		} else {
			e.metrics.HistoryRecordAppended()
		}
	}

	e.reporter.Notice("Trashed %s to %s", entry.Path, target)
	return Result{Entry: entry, Outcome: types.OutcomeTrashed, TrashPath: target}
}

// permanent asks before removing entry outside the trash
func (e *Engine) permanent(entry types.Entry, reason string) Result {
	if !e.policy.ConfirmPermanent(entry.Path) {
		return Result{Entry: entry, Outcome: types.OutcomeSkipped, Reason: ReasonDeclined}
	}
	return e.remove(entry, reason)
}

func (e *Engine) remove(entry types.Entry, reason string) Result {
	var err error
	if entry.IsDir() {
		err = e.fs.RemoveAll(entry.Path)
	} else {
		err = e.fs.Remove(entry.Path)
	}
	if err != nil {
		code := errors.ErrIO
		if filesystem.IsPermission(err) {
			code = errors.ErrPermissionDenied
		}
		return failed(entry, errors.Wrapf(err, code, "failed to remove '%s'", entry.Path).WithPath(entry.Path))
	}

	e.reporter.Notice("Removed %s permanently", entry.Path)
	return Result{Entry: entry, Outcome: types.OutcomePermanentlyDeleted, Reason: reason}
}

func (e *Engine) processEmptyDir(entry types.Entry) Result {
	if err := guards.CheckRoot(entry.Path); err != nil {
		return failed(entry, err)
	}

	info, err := filesystem.Lstat(e.fs, entry.Path)
	if err != nil {
		return failed(entry, statError(entry.Path, err))
	}
	if !info.IsDir() {
		return failed(entry, errors.Newf(errors.ErrNotADirectory, "cannot remove '%s': Not a directory", entry.Path).
			WithPath(entry.Path))
	}

	if !e.policy.ConfirmItem(entry, true) {
		return Result{Entry: entry, Outcome: types.OutcomeSkipped, Reason: ReasonDeclined}
	}

	if err := e.fs.Remove(entry.Path); err != nil {
		switch {
		case filesystem.IsDirNotEmpty(err):
			return failed(entry, errors.Wrapf(err, errors.ErrDirectoryNotEmpty,
				"cannot remove '%s': Directory not empty", entry.Path).WithPath(entry.Path))
		case filesystem.IsNotDir(err):
			return failed(entry, errors.Wrapf(err, errors.ErrNotADirectory,
				"cannot remove '%s': Not a directory", entry.Path).WithPath(entry.Path))
		case filesystem.IsPermission(err):
			return failed(entry, errors.Wrapf(err, errors.ErrPermissionDenied,
				"cannot remove '%s': Permission denied", entry.Path).WithPath(entry.Path))
		default:
			return failed(entry, errors.Wrapf(err, errors.ErrIO, "cannot remove '%s'", entry.Path).WithPath(entry.Path))
		}
	}

	e.reporter.Notice("Removed empty directory %s", entry.Path)
	return Result{Entry: entry, Outcome: types.OutcomePermanentlyDeleted, Reason: ReasonEmptyDir}
}

func failed(entry types.Entry, err error) Result {
	return Result{Entry: entry, Outcome: types.OutcomeFailed, Err: err}
}

func statError(path string, err error) error {
	if os.IsNotExist(err) {
		return errors.Newf(errors.ErrNoSuchFile, "cannot remove '%s': no such file or directory", path).WithPath(path)
	}
	if filesystem.IsPermission(err) {
		return errors.Wrapf(err, errors.ErrPermissionDenied, "cannot remove '%s'", path).WithPath(path)
	}
	return errors.Wrapf(err, errors.ErrIO, "cannot remove '%s'", path).WithPath(path)
}
