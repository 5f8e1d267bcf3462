// Package config loads toss settings.
//
// Settings are layered in this order, later sources winning:
//
//  1. built-in defaults (embedded/defaults.toml)
//  2. the user config file, usually $XDG_CONFIG_HOME/toss/config.toml
//  3. TOSS_SETTINGS_* environment variables, e.g. TOSS_SETTINGS_CHECK_SHA256=true
//
// A missing user file is not an error. Its commented-out template can be
// produced with GenerateConfigContent.
package config
