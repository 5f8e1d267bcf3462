package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/toss/pkg/errors"
)

const logPath = "/data/toss/history.log"

func write(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

func exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return ok
}

func TestAppendFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := New(fs, logPath, 0)

	require.NoError(t, l.Append(Record{ID: "20240309140507", OriginalPath: "/home/a.txt", TrashPath: "/trash/a.txt"}))
	require.NoError(t, l.Append(Record{ID: "20240309140508", OriginalPath: "/home/b", TrashPath: "/trash/b"}))

	data, err := afero.ReadFile(fs, logPath)
	require.NoError(t, err)
	assert.Equal(t, "20240309140507\n/home/a.txt\n/trash/a.txt\n"+Separator+"\n"+
		"20240309140508\n/home/b\n/trash/b\n"+Separator+"\n", string(data))
}

func TestAppendRejectsMultilineFields(t *testing.T) {
	l := New(afero.NewMemMapFs(), logPath, 0)
	err := l.Append(Record{ID: "1", OriginalPath: "/home/a\nb", TrashPath: "/trash/a"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRecords(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Record
	}{
		{name: "empty file", content: ""},
		{
			name:    "trailing fragment ignored",
			content: "1\n/a\n/t/a\n" + Separator + "\n2\n/b\n",
			want:    []Record{{ID: "1", OriginalPath: "/a", TrashPath: "/t/a"}},
		},
		{
			name:    "malformed block skipped",
			content: "junk\n" + Separator + "\n1\n/a\n/t/a\n" + Separator + "\n",
			want:    []Record{{ID: "1", OriginalPath: "/a", TrashPath: "/t/a"}},
		},
		{
			name:    "crlf line endings",
			content: "1\r\n/a\r\n/t/a\r\n" + Separator + "\r\n",
			want:    []Record{{ID: "1", OriginalPath: "/a", TrashPath: "/t/a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			write(t, fs, logPath, tt.content)
			got, err := New(fs, logPath, 0).Records()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRevertLast_EmptyLog(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		_, err := New(fs, logPath, 0).RevertLast()
		assert.True(t, errors.IsErrorCode(err, errors.ErrHistoryEmpty))
		assert.False(t, exists(t, fs, logPath), "no log must be created")
	})

	t.Run("empty file", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		write(t, fs, logPath, "")
		_, err := New(fs, logPath, 0).RevertLast()
		assert.True(t, errors.IsErrorCode(err, errors.ErrHistoryEmpty))
	})
}

func TestRevertLast_RestoresExactlyOne(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "/trash/a.txt", "a")
	write(t, fs, "/trash/b.txt", "b")

	l := New(fs, logPath, 0)
	require.NoError(t, l.Append(Record{ID: "1", OriginalPath: "/home/a.txt", TrashPath: "/trash/a.txt"}))
	require.NoError(t, l.Append(Record{ID: "2", OriginalPath: "/home/sub/b.txt", TrashPath: "/trash/b.txt"}))

	res, err := l.RevertLast()
	require.NoError(t, err)
	assert.False(t, res.Missing)
	assert.Equal(t, "2", res.Record.ID)

	assert.True(t, exists(t, fs, "/home/sub/b.txt"), "parent directory is recreated")
	assert.False(t, exists(t, fs, "/trash/b.txt"))
	assert.True(t, exists(t, fs, "/trash/a.txt"), "older record untouched")
	assert.False(t, exists(t, fs, "/home/a.txt"))

	records, err := l.Records()
	require.NoError(t, err)
	assert.Equal(t, []Record{{ID: "1", OriginalPath: "/home/a.txt", TrashPath: "/trash/a.txt"}}, records)
	assert.False(t, exists(t, fs, logPath+".tmp"))
}

// Two files named a.txt trashed from different directories come back to
// their own directories when reverted twice.
func TestRevertLast_TwoSameNamedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "/trash/a.txt", "first")
	write(t, fs, "/trash/a.20240309140507.txt", "second")

	l := New(fs, logPath, 0)
	require.NoError(t, l.Append(Record{ID: "20240309140506", OriginalPath: "/one/a.txt", TrashPath: "/trash/a.txt"}))
	require.NoError(t, l.Append(Record{ID: "20240309140507", OriginalPath: "/two/a.txt", TrashPath: "/trash/a.20240309140507.txt"}))

	_, err := l.RevertLast()
	require.NoError(t, err)
	_, err = l.RevertLast()
	require.NoError(t, err)

	one, err := afero.ReadFile(fs, "/one/a.txt")
	require.NoError(t, err)
	two, err := afero.ReadFile(fs, "/two/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "first", string(one))
	assert.Equal(t, "second", string(two))

	_, err = l.RevertLast()
	assert.True(t, errors.IsErrorCode(err, errors.ErrHistoryEmpty))
}

func TestRevertLast_MissingTrashCopy(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := New(fs, logPath, 0)
	require.NoError(t, l.Append(Record{ID: "1", OriginalPath: "/home/gone.txt", TrashPath: "/trash/gone.txt"}))

	res, err := l.RevertLast()
	require.NoError(t, err)
	assert.True(t, res.Missing)

	records, err := l.Records()
	require.NoError(t, err)
	assert.Empty(t, records, "record is dropped")
}

func TestRevertLast_MissingCopyWithOccupiedTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "/trash/old.txt", "old")
	write(t, fs, "/home/a.txt", "new")

	l := New(fs, logPath, 0)
	require.NoError(t, l.Append(Record{ID: "1", OriginalPath: "/home/old.txt", TrashPath: "/trash/old.txt"}))
	require.NoError(t, l.Append(Record{ID: "2", OriginalPath: "/home/a.txt", TrashPath: "/trash/a.txt"}))

	res, err := l.RevertLast()
	require.NoError(t, err)
	assert.True(t, res.Missing)
	content, _ := afero.ReadFile(fs, "/home/a.txt")
	assert.Equal(t, "new", string(content), "occupant untouched")

	res, err = l.RevertLast()
	require.NoError(t, err)
	assert.False(t, res.Missing)
	assert.Equal(t, "/home/old.txt", res.Record.OriginalPath)
	assert.True(t, exists(t, fs, "/home/old.txt"))

	records, err := l.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRevertLast_TargetExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	write(t, fs, "/trash/a.txt", "trashed")
	write(t, fs, "/home/a.txt", "new")

	l := New(fs, logPath, 0)
	require.NoError(t, l.Append(Record{ID: "1", OriginalPath: "/home/a.txt", TrashPath: "/trash/a.txt"}))
	before, err := afero.ReadFile(fs, logPath)
	require.NoError(t, err)

	_, err = l.RevertLast()
	assert.True(t, errors.IsErrorCode(err, errors.ErrRevertTargetExists))

	after, err := afero.ReadFile(fs, logPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "log untouched")
	content, _ := afero.ReadFile(fs, "/home/a.txt")
	assert.Equal(t, "new", string(content))
	assert.True(t, exists(t, fs, "/trash/a.txt"))
}

func TestRevertLast_CapsRewrittenLog(t *testing.T) {
	fs := afero.NewMemMapFs()
	l := New(fs, logPath, 3)
	for i := 0; i < 6; i++ {
		require.NoError(t, l.Append(Record{
			ID:           fmt.Sprintf("%d", i),
			OriginalPath: fmt.Sprintf("/home/%d", i),
			TrashPath:    fmt.Sprintf("/trash/%d", i),
		}))
	}

	_, err := l.RevertLast()
	require.NoError(t, err)

	records, err := l.Records()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2", records[0].ID)
	assert.Equal(t, "4", records[2].ID)

	data, err := afero.ReadFile(fs, logPath)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), 3*LinesPerRecord)
}

func TestReadErrorIsFatal(t *testing.T) {
	// A directory where the log file should be
	path := filepath.Join(t.TempDir(), "history.log")
	require.NoError(t, os.Mkdir(path, 0755))

	_, err := New(afero.NewOsFs(), path, 0).RevertLast()
	require.Error(t, err)
	assert.False(t, errors.IsErrorCode(err, errors.ErrHistoryEmpty))
}
