//go:build unix

package guards

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func deviceID(info os.FileInfo) (uint64, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return 0, false
	}
	return uint64(st.Dev), true //nolint:unconvert // Dev is int32 on some platforms
}

func isPrivileged() bool {
	return unix.Geteuid() == 0
}
