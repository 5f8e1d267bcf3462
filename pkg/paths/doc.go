// Package paths resolves every location toss reads or writes.
//
// Locations follow the XDG Base Directory specification through adrg/xdg
// and can be overridden with environment variables:
//
//	TOSS_TRASH_DIR   trash directory (default $XDG_DATA_HOME/Trash/files)
//	TOSS_DATA_DIR    toss data directory holding history.log
//	TOSS_CONFIG_DIR  directory holding config.toml
//	TOSS_STATE_DIR   directory holding toss.log
//
// Paths are resolved once by the command layer and passed to the core as
// plain values; no core package calls into this one.
package paths
