package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/toss/pkg/errors"
)

// Environment variable names
const (
	// EnvTrashDir overrides the trash directory
	EnvTrashDir = "TOSS_TRASH_DIR"

	// EnvDataDir overrides the XDG data directory for toss
	EnvDataDir = "TOSS_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for toss
	EnvConfigDir = "TOSS_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for toss
	EnvStateDir = "TOSS_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the resolved directories. These are not configurable.
const (
	// AppDirName is the directory name for toss-specific files
	AppDirName = "toss"

	// HistoryFileName is the name of the undo log
	HistoryFileName = "history.log"

	// ConfigFileName is the name of the config file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "toss.log"
)

// TrashSubdir is where trashed files live below the local data directory
var TrashSubdir = filepath.Join("Trash", "files")

// Paths provides the locations toss uses
type Paths interface {
	TrashDir() string
	DataDir() string
	HistoryFile() string
	ConfigDir() string
	ConfigFile() string
	StateDir() string
	LogFilePath() string
	UsedTrashOverride() bool

	// WithTrashDir returns a copy using dir as trash directory unless the
	// trash directory was already fixed by the environment
	WithTrashDir(dir string) Paths
}

type paths struct {
	trashDir      string
	trashFromEnv  bool
	trashOverride bool
	dataDir       string
	configDir     string
	stateDir      string
}

// New resolves all locations from the environment and XDG defaults
func New() (Paths, error) {
	p := &paths{}

	if dir := os.Getenv(EnvTrashDir); dir != "" {
		p.trashDir = expandHome(dir)
		p.trashFromEnv = true
		p.trashOverride = true
	} else {
		p.trashDir = filepath.Join(xdg.DataHome, TrashSubdir)
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = expandHome(dir)
	} else {
		p.dataDir = filepath.Join(xdg.DataHome, AppDirName)
	}

	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.trashDir, &p.dataDir, &p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// TrashDir returns the directory trashed items are moved into
func (p *paths) TrashDir() string {
	return p.trashDir
}

// DataDir returns the toss data directory
func (p *paths) DataDir() string {
	return p.dataDir
}

// HistoryFile returns the path of the undo log
func (p *paths) HistoryFile() string {
	return filepath.Join(p.dataDir, HistoryFileName)
}

// ConfigDir returns the toss config directory
func (p *paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the path of the user config file
func (p *paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StateDir returns the toss state directory
func (p *paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path of the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// UsedTrashOverride reports whether the trash directory is not the XDG default
func (p *paths) UsedTrashOverride() bool {
	return p.trashOverride
}

// WithTrashDir implements Paths
func (p *paths) WithTrashDir(dir string) Paths {
	if dir == "" || p.trashFromEnv {
		return p
	}
	cp := *p
	if abs, err := filepath.Abs(expandHome(dir)); err == nil {
		cp.trashDir = abs
		cp.trashOverride = true
	}
	return &cp
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// ExpandHome expands a leading ~ in path
func ExpandHome(path string) string {
	return expandHome(path)
}
