// Package guards holds the safety checks run before an item is moved.
package guards

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/filesystem"
)

// IsRoot reports whether path is a filesystem root
func IsRoot(path string) bool {
	clean := filepath.Clean(path)
	return filepath.IsAbs(clean) && filepath.Dir(clean) == clean
}

// CheckRoot returns an IS_ROOT error for root paths
func CheckRoot(path string) error {
	if IsRoot(path) {
		return errors.Newf(errors.ErrIsRoot, "it is dangerous to operate recursively on '%s'", path).WithPath(path)
	}
	return nil
}

// CrossesDevice reports whether item and dir live on different devices.
// Device ids that cannot be determined count as the same device.
func CrossesDevice(fs afero.Fs, item, dir string) (bool, error) {
	itemInfo, err := filesystem.Lstat(fs, item)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "cannot stat '%s'", item).WithPath(item)
	}
	dirInfo, err := fs.Stat(dir)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "cannot stat '%s'", dir).WithPath(dir)
	}

	a, okA := deviceID(itemInfo)
	b, okB := deviceID(dirInfo)
	if !okA || !okB {
		return false, nil
	}
	return a != b, nil
}

// DeviceCheck decides whether item can be renamed into dir
type DeviceCheck func(fs afero.Fs, item, dir string) error

// CheckDevice is the production DeviceCheck. It returns a CROSSES_DEVICES error when item cannot be renamed into dir
func CheckDevice(fs afero.Fs, item, dir string) error {
	crosses, err := CrossesDevice(fs, item, dir)
	if err != nil {
		return err
	}
	if crosses {
		return errors.Newf(errors.ErrCrossesDevices, "'%s' is on a different device than the trash", item).
			WithPath(item).
			WithDetail("trash", dir)
	}
	return nil
}

// PrivilegeCheck reports whether the process runs with root privileges
type PrivilegeCheck func() bool

// IsPrivileged is the production PrivilegeCheck
func IsPrivileged() bool {
	return isPrivileged()
}
