package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/logging"
)

// EnvPrefix is the prefix of environment variables overriding settings
const EnvPrefix = "TOSS_SETTINGS_"

// Load builds the configuration from the embedded defaults, the file at
// path (skipped when empty or missing), the environment and finally
// overrides, whose keys are setting names without the "settings." prefix.
func Load(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse built-in defaults")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).WithPath(path)
			}
			logger.Debug().Str("path", path).Msg("Loaded user config")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat config %s", path).WithPath(path)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return "settings." + strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(overrides) > 0 {
		flat := make(map[string]interface{}, len(overrides))
		for key, value := range overrides {
			flat["settings."+strings.ToLower(key)] = value
		}
		if err := k.Load(confmap.Provider(flat, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	s := &c.Settings
	s.HashAlgorithm = strings.ToLower(strings.TrimSpace(s.HashAlgorithm))
	switch s.HashAlgorithm {
	case "":
		s.HashAlgorithm = HashSHA256
	case HashSHA256, HashBlake2b:
	default:
		return errors.Newf(errors.ErrConfigParse, "unknown hash_algorithm %q (want %s or %s)",
			s.HashAlgorithm, HashSHA256, HashBlake2b).WithDetail("key", "hash_algorithm")
	}
	if s.HistoryLimit <= 0 {
		return errors.Newf(errors.ErrConfigParse, "history_limit must be positive, got %d", s.HistoryLimit).
			WithDetail("key", "history_limit")
	}
	if s.OnceThreshold < 0 {
		return errors.Newf(errors.ErrConfigParse, "once_threshold must not be negative, got %d", s.OnceThreshold).
			WithDetail("key", "once_threshold")
	}
	return nil
}

// ParseOverrides turns "key=value" pairs into a map for Load
func ParseOverrides(pairs []string) (map[string]interface{}, error) {
	overrides := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid setting %q (want key=value)", pair)
		}
		if _, known := settingDescriptions[strings.ToLower(key)]; !known {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown setting %q", key).WithDetail("key", key)
		}
		overrides[key] = strings.TrimSpace(value)
	}
	return overrides, nil
}
