// Package session holds what one toss invocation resolved before running a
// command: filesystem, locations, settings and the user-facing ports.
package session

import (
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/arthur-debert/toss/pkg/config"
	"github.com/arthur-debert/toss/pkg/guards"
	"github.com/arthur-debert/toss/pkg/history"
	"github.com/arthur-debert/toss/pkg/metrics"
	"github.com/arthur-debert/toss/pkg/paths"
	"github.com/arthur-debert/toss/pkg/removal"
	"github.com/arthur-debert/toss/pkg/types"
)

// Output is the console as seen by commands
type Output interface {
	removal.Reporter

	// Info prints a result line
	Info(format string, args ...interface{})

	// Warn prints a non-fatal diagnostic
	Warn(format string, args ...interface{})
}

// Session is the resolved environment of one invocation
type Session struct {
	FS      afero.Fs
	WorkDir string
	Paths   paths.Paths
	Config  *config.Config

	Output    Output
	Confirmer types.Confirmer
	Metrics   *metrics.Recorder

	// Privileged defaults to guards.IsPrivileged
	Privileged guards.PrivilegeCheck

	// Now defaults to time.Now
	Now func() time.Time
}

// Settings returns the [settings] table, or the defaults when no config is set
func (s *Session) Settings() config.Settings {
	if s.Config == nil {
		return config.Default().Settings
	}
	return s.Config.Settings
}

// TrashDir is the effective trash directory: environment, then config, then XDG
func (s *Session) TrashDir() string {
	return s.Paths.WithTrashDir(s.Settings().TrashDir).TrashDir()
}

// History opens the undo log
func (s *Session) History() *history.Log {
	return history.New(s.FS, s.Paths.HistoryFile(), s.Settings().HistoryLimit)
}

// PrivilegeCheck returns the configured check or the production one
func (s *Session) PrivilegeCheck() guards.PrivilegeCheck {
	if s.Privileged != nil {
		return s.Privileged
	}
	return guards.IsPrivileged
}

// Clock returns the configured clock or time.Now
func (s *Session) Clock() func() time.Time {
	if s.Now != nil {
		return s.Now
	}
	return time.Now
}

// WorkingDir returns WorkDir or the process working directory
func (s *Session) WorkingDir() string {
	if s.WorkDir != "" {
		return s.WorkDir
	}
	wd, _ := os.Getwd()
	return wd
}

// FlushMetrics writes the metrics textfile when one is configured. Failures
// are reported as warnings.
func (s *Session) FlushMetrics() {
	path := s.Settings().MetricsTextfile
	if path == "" || s.Metrics == nil {
		return
	}
	if err := s.Metrics.WriteTextfile(paths.ExpandHome(path)); err != nil {
		s.Output.Warn("%s", err.Error())
	}
}
