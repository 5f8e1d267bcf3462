package config

import (
	"os"
	"path/filepath"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"

	"github.com/arthur-debert/toss/pkg/errors"
)

const configHeader = `# toss configuration
#
# Every value below is the built-in default. Uncomment a line to change it.
`

// GenerateConfigContent renders the default configuration with every value
// commented out
func GenerateConfigContent() (string, error) {
	data, err := gotoml.Marshal(Default())
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigParse, "failed to render default config")
	}
	return configHeader + "\n" + commentOutConfigValues(string(data)), nil
}

// WriteDefaultConfig writes the generated template to path unless a file
// already exists there. It reports whether a file was written.
func WriteDefaultConfig(fs afero.Fs, path string) (bool, error) {
	if _, err := fs.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path).WithPath(path)
	}

	content, err := GenerateConfigContent()
	if err != nil {
		return false, err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "failed to create %s", filepath.Dir(path)).WithPath(path)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "failed to write %s", path).WithPath(path)
	}
	return true, nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments). Known keys get their description above them.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Section headers stay active so uncommented keys land in the right table
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		if key, _, ok := strings.Cut(trimmed, "="); ok {
			if desc, found := settingDescriptions[strings.TrimSpace(key)]; found {
				result = append(result, "# "+desc)
			}
		}
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
