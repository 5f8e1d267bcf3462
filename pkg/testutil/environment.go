package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/arthur-debert/toss/pkg/commands/session"
	"github.com/arthur-debert/toss/pkg/config"
	"github.com/arthur-debert/toss/pkg/filesystem"
	"github.com/arthur-debert/toss/pkg/metrics"
	"github.com/arthur-debert/toss/pkg/paths"
	"github.com/arthur-debert/toss/pkg/types"
	"github.com/arthur-debert/toss/pkg/ui"
)

// FixedTime is the clock of every test session
var FixedTime = time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local)

// FixedID is the trash id FixedTime produces
const FixedID = "20240309140507"

// TestEnvironment is an isolated set of toss directories
type TestEnvironment struct {
	Root      string
	WorkDir   string
	TrashDir  string
	DataDir   string
	ConfigDir string
	StateDir  string

	FS      afero.Fs
	Paths   paths.Paths
	Metrics *metrics.Recorder

	Stdout *bytes.Buffer
	Stderr *bytes.Buffer

	// Answer is returned by the scripted confirmer
	Answer bool
	// Prompts records every question asked
	Prompts []string

	t *testing.T
}

// NewTestEnvironment creates the directories and exports TOSS_* variables
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:      root,
		WorkDir:   filepath.Join(root, "work"),
		TrashDir:  filepath.Join(root, "data", "Trash", "files"),
		DataDir:   filepath.Join(root, "data", "toss"),
		ConfigDir: filepath.Join(root, "config", "toss"),
		StateDir:  filepath.Join(root, "state", "toss"),
		FS:        filesystem.NewOS(),
		Metrics:   metrics.New(),
		Stdout:    &bytes.Buffer{},
		Stderr:    &bytes.Buffer{},
		t:         t,
	}
	if err := os.MkdirAll(env.WorkDir, 0755); err != nil {
		t.Fatalf("Failed to create work dir: %v", err)
	}

	t.Setenv(paths.EnvTrashDir, env.TrashDir)
	t.Setenv(paths.EnvDataDir, env.DataDir)
	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)

	p, err := paths.New()
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p
	return env
}

// Console returns an uncoloured console writing to Stdout and Stderr
func (env *TestEnvironment) Console(verbose bool) *ui.Console {
	return ui.NewConsole(env.Stdout, env.Stderr, verbose).WithColor(false)
}

// Confirmer answers every prompt with Answer and records it
func (env *TestEnvironment) Confirmer() types.Confirmer {
	return types.ConfirmFunc(func(prompt string) (bool, error) {
		env.Prompts = append(env.Prompts, prompt)
		return env.Answer, nil
	})
}

// Session builds a session rooted at WorkDir. A nil cfg means defaults.
func (env *TestEnvironment) Session(cfg *config.Config) *session.Session {
	if cfg == nil {
		cfg = config.Default()
	}
	return &session.Session{
		FS:         env.FS,
		WorkDir:    env.WorkDir,
		Paths:      env.Paths,
		Config:     cfg,
		Output:     env.Console(true),
		Confirmer:  env.Confirmer(),
		Metrics:    env.Metrics,
		Privileged: func() bool { return false },
		Now:        func() time.Time { return FixedTime },
	}
}

// Path joins name onto WorkDir
func (env *TestEnvironment) Path(name ...string) string {
	return filepath.Join(append([]string{env.WorkDir}, name...)...)
}

// TrashPath joins name onto TrashDir
func (env *TestEnvironment) TrashPath(name string) string {
	return filepath.Join(env.TrashDir, name)
}

// WithFileTree creates tree under WorkDir
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.FS, env.WorkDir, tree)
}

// ReadFile returns the content of path or fails the test
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, path)
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists without following symlinks
func (env *TestEnvironment) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// Reset clears captured output and prompts
func (env *TestEnvironment) Reset() {
	env.Stdout.Reset()
	env.Stderr.Reset()
	env.Prompts = nil
}

// String describes the environment in failure messages
func (env *TestEnvironment) String() string {
	return fmt.Sprintf("work=%s trash=%s data=%s", env.WorkDir, env.TrashDir, env.DataDir)
}
