// Package selection turns command line paths into the ordered list of entries
// a removal run operates on.
//
// How a path is expanded depends on the recursive flag and on whether a name
// pattern was given:
//
//	recursive  pattern  result
//	no         no       the path itself; directories need the empty-dir flag
//	no         yes      matching files, or matching files directly inside a directory
//	yes        no       the path itself, file or directory
//	yes        yes      matching files anywhere below, hidden entries pruned
//
// The filesystem root is always rejected. Missing paths and rejected
// directories become problems and never stop the batch. A pattern that
// matches nothing fails the whole selection.
package selection

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/filesystem"
	"github.com/arthur-debert/toss/pkg/guards"
	"github.com/arthur-debert/toss/pkg/logging"
	"github.com/arthur-debert/toss/pkg/types"
)

// Selection is the result of one Select call
type Selection struct {
	// Entries are in input order, each path at most once
	Entries []types.Entry

	// Problems are per-path errors that excluded the path
	Problems []error
}

// Selector expands raw paths against a filesystem
type Selector struct {
	fs      afero.Fs
	workDir string
}

// Option configures a Selector
type Option func(*Selector)

// WithWorkDir sets the directory relative paths are resolved against
func WithWorkDir(dir string) Option {
	return func(s *Selector) {
		s.workDir = dir
	}
}

// New creates a Selector. Without WithWorkDir the process working directory is used.
func New(fs afero.Fs, opts ...Option) *Selector {
	s := &Selector{fs: fs}
	for _, opt := range opts {
		opt(s)
	}
	if s.workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			s.workDir = wd
		}
	}
	return s
}

type collector struct {
	fs      afero.Fs
	seen    map[string]bool
	pattern string
	result  Selection
}

func (c *collector) problem(err error) {
	c.result.Problems = append(c.result.Problems, err)
}

func (c *collector) add(path string, info os.FileInfo) {
	if c.seen[path] {
		return
	}
	c.seen[path] = true
	c.result.Entries = append(c.result.Entries, types.Entry{
		Path:   path,
		Kind:   types.KindOf(info),
		Exists: true,
	})
}

func (c *collector) matches(name string) bool {
	return strings.Contains(name, c.pattern)
}

// Select expands paths according to criteria
func (s *Selector) Select(paths []string, criteria types.SelectionCriteria) (Selection, error) {
	logger := logging.GetLogger("selection")

	c := &collector{
		fs:      s.fs,
		seen:    make(map[string]bool),
		pattern: criteria.Pattern,
	}

	for _, raw := range paths {
		abs := s.absolute(raw)

		info, err := filesystem.Lstat(s.fs, abs)
		if err != nil || raw == "" {
			if raw == "" || os.IsNotExist(err) {
				c.problem(errors.Newf(errors.ErrNoSuchFile, "cannot remove '%s': no such file or directory", raw).WithPath(abs))
			} else {
				c.problem(errors.Wrapf(err, errors.ErrIO, "cannot remove '%s'", raw).WithPath(abs))
			}
			continue
		}

		// the root is refused whatever the flags, before any expansion
		if err := guards.CheckRoot(abs); err != nil {
			c.problem(err)
			continue
		}

		switch {
		case !criteria.Recursive && !criteria.HasPattern():
			if info.IsDir() && !criteria.TreatEmptyDirAsRemovable {
				c.problem(errors.Newf(errors.ErrIsDirectory, "cannot remove '%s': Is a directory", raw).WithPath(abs))
				continue
			}
			c.add(abs, info)

		case !criteria.Recursive && criteria.HasPattern():
			if !info.IsDir() {
				if c.matches(info.Name()) {
					c.add(abs, info)
				}
				continue
			}
			c.scanDir(abs)

		case criteria.Recursive && !criteria.HasPattern():
			c.add(abs, info)

		default:
			if !info.IsDir() {
				if c.matches(info.Name()) {
					c.add(abs, info)
				}
				continue
			}
			c.walk(abs)
		}
	}

	logger.Debug().
		Int("inputs", len(paths)).
		Int("entries", len(c.result.Entries)).
		Int("problems", len(c.result.Problems)).
		Bool("recursive", criteria.Recursive).
		Str("pattern", criteria.Pattern).
		Msg("Selection complete")

	if criteria.HasPattern() && len(c.result.Entries) == 0 {
		return c.result, errors.Newf(errors.ErrPatternNoMatch, "no files match the pattern '%s'", criteria.Pattern).
			WithDetail("pattern", criteria.Pattern)
	}

	return c.result, nil
}

// scanDir adds matching non-directory children of dir, one level deep
func (c *collector) scanDir(dir string) {
	children, err := afero.ReadDir(c.fs, dir)
	if err != nil {
		c.problem(errors.Wrapf(err, errors.ErrIO, "cannot read directory '%s'", dir).WithPath(dir))
		return
	}
	for _, child := range children {
		if child.IsDir() || !c.matches(child.Name()) {
			continue
		}
		c.add(filepath.Join(dir, child.Name()), child)
	}
}

// walk adds matching non-directories below root, skipping hidden entries
func (c *collector) walk(root string) {
	_ = afero.Walk(c.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			c.problem(errors.Wrapf(err, errors.ErrIO, "cannot access '%s'", path).WithPath(path))
			if info != nil && info.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if path != root && isHidden(info.Name()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			return nil
		}

		if c.matches(info.Name()) {
			c.add(path, info)
		}
		return nil
	})
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func (s *Selector) absolute(raw string) string {
	if filepath.IsAbs(raw) {
		return filepath.Clean(raw)
	}
	return filepath.Join(s.workDir, raw)
}
