package trash

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/filesystem"
)

// maxCounter bounds the -N suffix search for a single id
const maxCounter = 10000

// Namer picks trash paths for one batch
type Namer struct {
	fs       afero.Fs
	dir      string
	reserved map[string]struct{}
}

// NewNamer creates a namer for trashDir
func NewNamer(fs afero.Fs, trashDir string) *Namer {
	return &Namer{
		fs:       fs,
		dir:      trashDir,
		reserved: make(map[string]struct{}),
	}
}

// Dir returns the trash directory
func (n *Namer) Dir() string {
	return n.dir
}

// Name returns a free path in the trash directory for item. It does not
// reserve the result; call Reserve once the path is committed.
func (n *Namer) Name(item string, id string) (string, error) {
	base := filepath.Base(item)
	if base == "." || base == string(filepath.Separator) {
		return "", errors.Newf(errors.ErrInvalidInput, "cannot derive a trash name from '%s'", item).WithPath(item)
	}

	candidate := filepath.Join(n.dir, base)
	taken, err := n.taken(candidate)
	if err != nil || !taken {
		return candidate, err
	}

	stem, ext := SplitName(base)
	for i := 0; i < maxCounter; i++ {
		candidate = filepath.Join(n.dir, decorate(stem, ext, id, i))
		taken, err = n.taken(candidate)
		if err != nil || !taken {
			return candidate, err
		}
	}

	return "", errors.Newf(errors.ErrIO, "no free trash name for '%s'", item).
		WithPath(item).
		WithDetail("id", id)
}

// Reserve marks path as planned so later Name calls avoid it
func (n *Namer) Reserve(path string) {
	n.reserved[path] = struct{}{}
}

func (n *Namer) taken(path string) (bool, error) {
	if _, ok := n.reserved[path]; ok {
		return true, nil
	}
	exists, err := filesystem.Exists(n.fs, path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "cannot inspect '%s'", path).WithPath(path)
	}
	return exists, nil
}

// SplitName splits a file name into stem and extension (without the dot).
// Names that are only a dotted prefix, like .bashrc, have no extension.
func SplitName(name string) (stem, ext string) {
	e := filepath.Ext(name)
	if e == "" || e == "." || e == name {
		return name, ""
	}
	return strings.TrimSuffix(name, e), e[1:]
}

func decorate(stem, ext, id string, counter int) string {
	var b strings.Builder
	b.WriteString(stem)
	b.WriteByte('.')
	b.WriteString(id)
	if counter > 0 {
		b.WriteByte('-')
		b.WriteString(strconv.Itoa(counter))
	}
	if ext != "" {
		b.WriteByte('.')
		b.WriteString(ext)
	}
	return b.String()
}
