package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteractiveMode(t *testing.T) {
	tests := []struct {
		input   string
		want    InteractiveMode
		wantErr bool
	}{
		{"", InteractiveNever, false},
		{"never", InteractiveNever, false},
		{"NO", InteractiveNever, false},
		{"none", InteractiveNever, false},
		{"once", InteractiveOnce, false},
		{" Once ", InteractiveOnce, false},
		{"always", InteractiveAlways, false},
		{"yes", InteractiveAlways, false},
		{"sometimes", InteractiveNever, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInteractiveMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindOf(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	link := filepath.Join(dir, "l")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	require.NoError(t, os.Symlink(file, link))

	tests := []struct {
		path string
		want EntryKind
	}{
		{dir, KindDirectory},
		{file, KindFile},
		{link, KindSymlink},
	}
	for _, tt := range tests {
		info, err := os.Lstat(tt.path)
		require.NoError(t, err)
		assert.Equal(t, tt.want, KindOf(info), tt.path)
	}
}

func TestEntryIsDir(t *testing.T) {
	assert.True(t, Entry{Kind: KindDirectory}.IsDir())
	assert.False(t, Entry{Kind: KindSymlink}.IsDir())
	assert.False(t, Entry{Kind: KindFile}.IsDir())
}

func TestConfirmFunc(t *testing.T) {
	var asked string
	var c Confirmer = ConfirmFunc(func(prompt string) (bool, error) {
		asked = prompt
		return true, nil
	})

	ok, err := c.Confirm("remove 'x'?")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "remove 'x'?", asked)
}

func TestOutcomeString(t *testing.T) {
	names := make([]string, 0, len(Outcomes))
	for _, o := range Outcomes {
		names = append(names, o.String())
	}
	assert.Equal(t, []string{"trashed", "deleted", "skipped", "failed", "listed"}, names)
	assert.Equal(t, "unknown", Outcome(99).String())
}
