package remove

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/toss/pkg/config"
	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/testutil"
	"github.com/arthur-debert/toss/pkg/types"
)

func TestRemoveTrashesFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{
		"a.txt": "alpha",
		"b.txt": "beta",
	})

	result, err := Remove(env.Session(nil), RemoveOptions{
		Paths: []string{"a.txt", env.Path("b.txt")},
		Mode:  types.InteractiveNever,
	})
	require.NoError(t, err)
	assert.False(t, result.Failed())
	assert.Equal(t, 2, result.Report.Count(types.OutcomeTrashed))

	assert.False(t, env.Exists(env.Path("a.txt")))
	assert.Equal(t, "alpha", env.ReadFile(env.TrashPath("a.txt")))
	assert.Equal(t, "beta", env.ReadFile(env.TrashPath("b.txt")))
	assert.Contains(t, env.Stdout.String(), "Trashed "+env.Path("a.txt"))

	records, err := env.Session(nil).History().Records()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, testutil.FixedID, records[0].ID)
	assert.Equal(t, env.Path("a.txt"), records[0].OriginalPath)
	assert.Equal(t, env.TrashPath("a.txt"), records[0].TrashPath)
}

func TestRemoveReportsSelectionProblems(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{
		"a.txt": "alpha",
		"dir":   testutil.FileTree{"b.txt": "beta"},
	})

	result, err := Remove(env.Session(nil), RemoveOptions{
		Paths: []string{"missing.txt", "dir", "a.txt"},
	})
	require.NoError(t, err)
	assert.True(t, result.Failed())
	require.Len(t, result.Selection.Problems, 2)
	assert.True(t, errors.IsErrorCode(result.Selection.Problems[0], errors.ErrNoSuchFile))
	assert.True(t, errors.IsErrorCode(result.Selection.Problems[1], errors.ErrIsDirectory))

	assert.Contains(t, env.Stderr.String(), "toss: cannot remove 'missing.txt': no such file or directory")
	assert.Contains(t, env.Stderr.String(), "toss: cannot remove 'dir': Is a directory")
	assert.DirExists(t, env.Path("dir"))
	assert.False(t, env.Exists(env.Path("a.txt")), "valid paths are still processed")
}

func TestRemovePatternWithoutMatchTouchesNothing(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{
		"dir": testutil.FileTree{"notes.md": "n"},
	})

	result, err := Remove(env.Session(nil), RemoveOptions{
		Paths:    []string{"dir"},
		Criteria: types.SelectionCriteria{Pattern: ".pdf"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternNoMatch))
	assert.Empty(t, result.Report.Results)
	assert.FileExists(t, env.Path("dir", "notes.md"))
	assert.NoDirExists(t, env.TrashDir)
}

func TestRemovePatternSkipsHistory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{
		"dir": testutil.FileTree{"a.pdf": "a", "b.md": "b"},
	})

	result, err := Remove(env.Session(nil), RemoveOptions{
		Paths:    []string{"dir"},
		Criteria: types.SelectionCriteria{Pattern: ".pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.Count(types.OutcomeTrashed))
	assert.FileExists(t, env.TrashPath("a.pdf"))
	assert.FileExists(t, env.Path("dir", "b.md"))

	records, err := env.Session(nil).History().Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRemoveDryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "alpha"})

	result, err := Remove(env.Session(nil), RemoveOptions{
		Paths:  []string{"a.txt"},
		DryRun: true,
		Mode:   types.InteractiveAlways,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.Count(types.OutcomeListed))
	assert.FileExists(t, env.Path("a.txt"))
	assert.Contains(t, env.Stdout.String(), env.Path("a.txt"))
	assert.Empty(t, env.Prompts)
}

func TestRemoveOnceDeclined(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a": "1", "b": "2", "c": "3", "d": "4"})
	env.Answer = false

	result, err := Remove(env.Session(nil), RemoveOptions{
		Paths: []string{"a", "b", "c", "d"},
		Mode:  types.InteractiveOnce,
	})
	require.NoError(t, err)
	assert.True(t, result.Report.Aborted)
	assert.False(t, result.Failed())
	assert.Equal(t, []string{"remove 4 arguments?"}, env.Prompts)
	for _, name := range []string{"a", "b", "c", "d"} {
		assert.FileExists(t, env.Path(name))
	}
}

func TestRemoveDedupDeletesIdenticalCopy(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "same"})
	require.NoError(t, os.MkdirAll(env.TrashDir, 0700))
	require.NoError(t, os.WriteFile(env.TrashPath("a.txt"), []byte("same"), 0600))

	cfg := config.Default()
	cfg.Settings.CheckSHA256 = true
	cfg.Settings.SilentDedupDelete = true

	result, err := Remove(env.Session(cfg), RemoveOptions{Paths: []string{"a.txt"}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.Count(types.OutcomePermanentlyDeleted))
	assert.False(t, env.Exists(env.Path("a.txt")))

	entries, err := os.ReadDir(env.TrashDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no second copy is trashed")
}

func TestRemoveRejectsUnknownHashAlgorithm(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "alpha"})

	cfg := config.Default()
	cfg.Settings.CheckSHA256 = true
	cfg.Settings.HashAlgorithm = "md5"

	_, err := Remove(env.Session(cfg), RemoveOptions{Paths: []string{"a.txt"}})
	require.Error(t, err)
	assert.FileExists(t, env.Path("a.txt"))
}

func TestRemoveWritesMetricsTextfile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "alpha"})

	cfg := config.Default()
	cfg.Settings.MetricsTextfile = filepath.Join(env.Root, "toss.prom")

	_, err := Remove(env.Session(cfg), RemoveOptions{Paths: []string{"a.txt", "missing"}})
	require.NoError(t, err)

	prom := env.ReadFile(cfg.Settings.MetricsTextfile)
	assert.Contains(t, prom, `toss_items_total{outcome="trashed"} 1`)
	assert.Contains(t, prom, `toss_items_total{outcome="failed"} 1`)
	assert.Contains(t, prom, "toss_history_records_total 1")
}

func TestForce(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{
		"a.txt": "alpha",
		"dir":   testutil.FileTree{"b.txt": "beta"},
	})

	result := Force(env.Session(nil), ForceOptions{
		Paths: []string{"a.txt", "dir", "missing"},
		Mode:  types.InteractiveNever,
	})
	assert.True(t, result.Failed(), "missing path is a failure")
	assert.Equal(t, 2, result.Report.Count(types.OutcomePermanentlyDeleted))
	assert.False(t, env.Exists(env.Path("a.txt")))
	assert.False(t, env.Exists(env.Path("dir")))
	assert.NoDirExists(t, env.TrashDir)

	records, err := env.Session(nil).History().Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestForceDryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WithFileTree(testutil.FileTree{"a.txt": "alpha"})

	result := Force(env.Session(nil), ForceOptions{Paths: []string{"a.txt"}, DryRun: true})
	assert.Equal(t, 1, result.Report.Count(types.OutcomeListed))
	assert.FileExists(t, env.Path("a.txt"))
	assert.Equal(t, env.Path("a.txt")+"\n", env.Stdout.String())
}
