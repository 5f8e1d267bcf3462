// Package genconfig prints or writes the default configuration file.
package genconfig

import (
	"github.com/arthur-debert/toss/pkg/commands/session"
	"github.com/arthur-debert/toss/pkg/config"
	"github.com/arthur-debert/toss/pkg/logging"
)

// GenConfigOptions holds options for the genconfig command
type GenConfigOptions struct {
	// Write creates the user config file instead of only returning the content
	Write bool
	// Path overrides the config file location
	Path string
}

// GenConfigResult is the generated content and where it went
type GenConfigResult struct {
	Content string
	Path    string
	Written bool
}

// GenConfig produces the commented default config. With Write set the file
// is created unless it already exists.
func GenConfig(s *session.Session, opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")
	logging.LogCommand("genconfig", nil)

	content, err := config.GenerateConfigContent()
	if err != nil {
		return nil, err
	}
	result := &GenConfigResult{Content: content}
	if !opts.Write {
		return result, nil
	}

	result.Path = opts.Path
	if result.Path == "" {
		result.Path = s.Paths.ConfigFile()
	}
	result.Written, err = config.WriteDefaultConfig(s.FS, result.Path)
	if err != nil {
		return result, err
	}
	logger.Info().Str("path", result.Path).Bool("written", result.Written).Msg("Generated config")
	return result, nil
}
