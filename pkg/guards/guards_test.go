package guards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/toss/pkg/errors"
)

func TestIsRoot(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"//", true},
		{"/..", true},
		{"/tmp/..", true},
		{"/tmp", false},
		{"relative", false},
		{".", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRoot(tt.path))
		})
	}
}

func TestCheckRoot(t *testing.T) {
	err := CheckRoot("/")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIsRoot))
	assert.NoError(t, CheckRoot("/home"))
}

func TestCrossesDevice_SameDevice(t *testing.T) {
	dir := t.TempDir()
	item := filepath.Join(dir, "a.txt")
	trash := filepath.Join(dir, "trash")
	require.NoError(t, os.WriteFile(item, []byte("x"), 0644))
	require.NoError(t, os.Mkdir(trash, 0700))

	fs := afero.NewOsFs()
	crosses, err := CrossesDevice(fs, item, trash)
	require.NoError(t, err)
	assert.False(t, crosses)
	assert.NoError(t, CheckDevice(fs, item, trash))
}

func TestCrossesDevice_MemoryIsSameDevice(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a", nil, 0644))
	require.NoError(t, fs.MkdirAll("/trash", 0700))

	crosses, err := CrossesDevice(fs, "/a", "/trash")
	require.NoError(t, err)
	assert.False(t, crosses)
}

func TestCrossesDevice_Missing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/trash", 0700))

	_, err := CrossesDevice(fs, "/missing", "/trash")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
}

func TestIsPrivileged(t *testing.T) {
	assert.Equal(t, os.Geteuid() == 0, IsPrivileged())

	var check PrivilegeCheck = func() bool { return true }
	assert.True(t, check())
}
