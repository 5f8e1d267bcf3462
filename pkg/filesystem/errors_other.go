//go:build !unix

package filesystem

import (
	"errors"
	"io/fs"
)

// IsDirNotEmpty reports whether a directory removal failed because the
// directory still has contents. Without errno values any failure other than
// a missing path is taken as "not empty".
func IsDirNotEmpty(err error) bool {
	return err != nil && !errors.Is(err, fs.ErrNotExist)
}

// IsNotDir always reports false where ENOTDIR is not available
func IsNotDir(err error) bool {
	return false
}
