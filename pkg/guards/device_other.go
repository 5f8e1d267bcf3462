//go:build !unix

package guards

import "os"

func deviceID(os.FileInfo) (uint64, bool) {
	return 0, false
}

func isPrivileged() bool {
	return false
}
