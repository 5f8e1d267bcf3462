package config

// Supported digest algorithms for the dedup check
const (
	HashSHA256  = "sha256"
	HashBlake2b = "blake2b"
)

// Config is the complete toss configuration
type Config struct {
	Settings Settings `koanf:"settings" toml:"settings"`
}

// Settings holds the [settings] table
type Settings struct {
	CheckSHA256       bool   `koanf:"check_sha256" toml:"check_sha256"`
	SilentDedupDelete bool   `koanf:"silent_dedup_delete" toml:"silent_dedup_delete"`
	HashAlgorithm     string `koanf:"hash_algorithm" toml:"hash_algorithm"`
	HistoryLimit      int    `koanf:"history_limit" toml:"history_limit"`
	OnceThreshold     int    `koanf:"once_threshold" toml:"once_threshold"`
	TrashDir          string `koanf:"trash_dir" toml:"trash_dir"`
	MetricsTextfile   string `koanf:"metrics_textfile" toml:"metrics_textfile"`
}

// Default returns the built-in configuration. It matches embedded/defaults.toml.
func Default() *Config {
	return &Config{
		Settings: Settings{
			CheckSHA256:       false,
			SilentDedupDelete: false,
			HashAlgorithm:     HashSHA256,
			HistoryLimit:      40,
			OnceThreshold:     3,
		},
	}
}

// settingDescriptions documents each key in the generated config file
var settingDescriptions = map[string]string{
	"check_sha256":        "Compare content hashes and delete items already present in the trash",
	"silent_dedup_delete": "Skip the confirmation before deleting such duplicates",
	"hash_algorithm":      "Digest used for the comparison: sha256 or blake2b",
	"history_limit":       "Number of records kept when the history log is rewritten",
	"once_threshold":      "Item count above which --interactive=once asks for confirmation",
	"trash_dir":           "Trash directory, overrides the XDG default",
	"metrics_textfile":    "Write prometheus text metrics to this file after each run",
}
