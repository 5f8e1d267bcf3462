// Package history keeps the undo log of trash moves.
//
// The log is plain text, four lines per record:
//
//	20240309140507
//	/home/user/notes.txt
//	/home/user/.local/share/Trash/files/notes.txt
//	----------------------------
//
// Records are appended on every trash move. RevertLast consumes the newest
// record and moves the item back.
package history

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/filesystem"
	"github.com/arthur-debert/toss/pkg/logging"
)

// Separator terminates every record
const Separator = "----------------------------"

// LinesPerRecord is the number of lines one record occupies
const LinesPerRecord = 4

// DefaultLimit is the number of records kept when the log is rewritten
const DefaultLimit = 40

// Record is one trash move
type Record struct {
	ID           string `json:"id" yaml:"id"`
	OriginalPath string `json:"original_path" yaml:"original_path"`
	TrashPath    string `json:"trash_path" yaml:"trash_path"`
}

// RevertResult describes what RevertLast did
type RevertResult struct {
	Record Record

	// Missing is set when the trash copy was gone; the record is dropped anyway
	Missing bool
}

// Log is the history file at a fixed path
type Log struct {
	fs    afero.Fs
	path  string
	limit int
}

// New creates a Log. A limit below one means DefaultLimit.
func New(fs afero.Fs, path string, limit int) *Log {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Log{fs: fs, path: path, limit: limit}
}

// Path returns the log file location
func (l *Log) Path() string {
	return l.path
}

// Append writes one record at the end of the log, creating it if needed
func (l *Log) Append(r Record) error {
	for _, field := range []string{r.ID, r.OriginalPath, r.TrashPath} {
		if field == "" || strings.ContainsAny(field, "\r\n") {
			return errors.Newf(errors.ErrInvalidInput, "cannot record %q in history", field).WithPath(r.OriginalPath)
		}
	}

	if err := l.fs.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create %s", filepath.Dir(l.path)).WithPath(l.path)
	}

	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to open history %s", l.path).WithPath(l.path)
	}

	_, werr := f.WriteString(formatRecord(r))
	cerr := f.Close()
	if werr != nil {
		return errors.Wrapf(werr, errors.ErrIO, "failed to write history %s", l.path).WithPath(l.path)
	}
	if cerr != nil {
		return errors.Wrapf(cerr, errors.ErrIO, "failed to close history %s", l.path).WithPath(l.path)
	}

	logger := logging.GetLogger("history")
	logger.Debug().
		Str("id", r.ID).
		Str("original", r.OriginalPath).
		Str("trash", r.TrashPath).
		Msg("Recorded trash move")
	return nil
}

// Records returns all complete records, oldest first. A missing log has none.
func (l *Log) Records() ([]Record, error) {
	data, err := afero.ReadFile(l.fs, l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read history %s", l.path).WithPath(l.path)
	}
	return parse(data), nil
}

// RevertLast moves the newest record's item back to its original path and
// removes the record from the log.
func (l *Log) RevertLast() (RevertResult, error) {
	logger := logging.GetLogger("history")

	records, err := l.Records()
	if err != nil {
		return RevertResult{}, err
	}
	if len(records) == 0 {
		return RevertResult{}, l.emptyErr()
	}

	last := records[len(records)-1]
	result := RevertResult{Record: last}

	// a missing copy only drops the record, the original location is irrelevant
	if _, err := filesystem.Lstat(l.fs, last.TrashPath); err != nil {
		if !os.IsNotExist(err) {
			return result, errors.Wrapf(err, errors.ErrIO, "cannot inspect '%s'", last.TrashPath).WithPath(last.TrashPath)
		}
		result.Missing = true
		logger.Warn().Str("trash", last.TrashPath).Msg("Trashed item no longer in trash")
	} else if err := l.restore(last); err != nil {
		return result, err
	}

	remaining := records[:len(records)-1]
	if len(remaining) > l.limit {
		remaining = remaining[len(remaining)-l.limit:]
	}
	if err := l.rewrite(remaining); err != nil {
		return result, err
	}

	logger.Info().
		Str("id", last.ID).
		Str("original", last.OriginalPath).
		Bool("missing", result.Missing).
		Msg("Reverted trash move")
	return result, nil
}

// restore moves the trash copy back unless the original location is taken
func (l *Log) restore(r Record) error {
	if _, err := filesystem.Lstat(l.fs, r.OriginalPath); err == nil {
		return errors.Newf(errors.ErrRevertTargetExists,
			"cannot restore '%s': the path already exists", r.OriginalPath).
			WithPath(r.OriginalPath).
			WithDetail("trash", r.TrashPath)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrIO, "cannot inspect '%s'", r.OriginalPath).WithPath(r.OriginalPath)
	}

	if err := l.fs.MkdirAll(filepath.Dir(r.OriginalPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to create %s", filepath.Dir(r.OriginalPath)).
			WithPath(r.OriginalPath)
	}
	if err := l.fs.Rename(r.TrashPath, r.OriginalPath); err != nil {
		code := errors.ErrIO
		if filesystem.IsPermission(err) {
			code = errors.ErrPermissionDenied
		}
		return errors.Wrapf(err, code, "failed to restore '%s'", r.OriginalPath).WithPath(r.OriginalPath)
	}
	return nil
}

func (l *Log) emptyErr() error {
	return errors.New(errors.ErrHistoryEmpty, "nothing to revert: history is empty").WithPath(l.path)
}

// rewrite replaces the log content through a temporary file in the same directory
func (l *Log) rewrite(records []Record) error {
	var buf bytes.Buffer
	for _, r := range records {
		buf.WriteString(formatRecord(r))
	}

	tmp := l.path + ".tmp"
	if err := afero.WriteFile(l.fs, tmp, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrIO, "failed to write %s", tmp).WithPath(l.path)
	}
	if err := l.fs.Rename(tmp, l.path); err != nil {
		_ = l.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrIO, "failed to replace %s", l.path).WithPath(l.path)
	}
	return nil
}

func formatRecord(r Record) string {
	return r.ID + "\n" + r.OriginalPath + "\n" + r.TrashPath + "\n" + Separator + "\n"
}

// parse collects complete records; fragments that do not end in exactly
// three lines plus a separator are skipped
func parse(data []byte) []Record {
	var records []Record
	var pending []string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == Separator {
			if len(pending) == LinesPerRecord-1 {
				records = append(records, Record{
					ID:           strings.TrimSpace(pending[0]),
					OriginalPath: pending[1],
					TrashPath:    pending[2],
				})
			}
			pending = pending[:0]
			continue
		}
		pending = append(pending, line)
	}
	return records
}
