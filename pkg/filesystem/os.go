package filesystem

import (
	"github.com/spf13/afero"
)

// NewOS creates the OS-backed filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}
