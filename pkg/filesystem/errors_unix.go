//go:build unix

package filesystem

import (
	"errors"
	"syscall"
)

// IsDirNotEmpty reports whether a directory removal failed because the
// directory still has contents. Some platforms report EEXIST for this.
func IsDirNotEmpty(err error) bool {
	return errors.Is(err, syscall.ENOTEMPTY) || errors.Is(err, syscall.EEXIST)
}

// IsNotDir reports whether err is ENOTDIR
func IsNotDir(err error) bool {
	return errors.Is(err, syscall.ENOTDIR)
}
