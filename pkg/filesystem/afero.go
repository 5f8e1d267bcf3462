package filesystem

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// Lstat returns file info without following a final symlink when the
// filesystem supports it, falling back to Stat otherwise.
func Lstat(fsys afero.Fs, name string) (os.FileInfo, error) {
	if lstater, ok := fsys.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(name)
		return info, err
	}
	return fsys.Stat(name)
}

// Exists reports whether name exists. Dangling symlinks exist.
func Exists(fsys afero.Fs, name string) (bool, error) {
	_, err := Lstat(fsys, name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsPermission reports whether err is a permission failure
func IsPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
