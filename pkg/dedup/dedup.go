// Package dedup detects items whose identical content already sits in the
// trash under the same name.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"golang.org/x/crypto/blake2b"

	"github.com/arthur-debert/toss/pkg/config"
	"github.com/arthur-debert/toss/pkg/errors"
	"github.com/arthur-debert/toss/pkg/filesystem"
	"github.com/arthur-debert/toss/pkg/logging"
	"github.com/arthur-debert/toss/pkg/metrics"
)

// cacheSize bounds the number of trash-side digests kept per batch
const cacheSize = 256

// Deduplicator compares items with their namesakes in the trash
type Deduplicator struct {
	fs        afero.Fs
	algorithm string
	newHash   func() (hash.Hash, error)
	cache     *lru.Cache[string, string]
	metrics   *metrics.Recorder
}

// New creates a Deduplicator using the named digest (sha256 or blake2b).
// rec may be nil.
func New(fs afero.Fs, algorithm string, rec *metrics.Recorder) (*Deduplicator, error) {
	var newHash func() (hash.Hash, error)
	switch algorithm {
	case "", config.HashSHA256:
		algorithm = config.HashSHA256
		newHash = func() (hash.Hash, error) { return sha256.New(), nil }
	case config.HashBlake2b:
		newHash = func() (hash.Hash, error) { return blake2b.New256(nil) }
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown hash algorithm %q", algorithm)
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUnknown, "failed to create digest cache")
	}

	return &Deduplicator{
		fs:        fs,
		algorithm: algorithm,
		newHash:   newHash,
		cache:     cache,
		metrics:   rec,
	}, nil
}

// Algorithm returns the digest name in use
func (d *Deduplicator) Algorithm() string {
	return d.algorithm
}

// AlreadyTrashedIdentical reports whether trashDir holds a regular file with
// the same base name, size and digest as item. Only regular files qualify.
func (d *Deduplicator) AlreadyTrashedIdentical(item, trashDir string) (bool, error) {
	logger := logging.GetLogger("dedup")

	itemInfo, err := filesystem.Lstat(d.fs, item)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrIO, "cannot stat '%s'", item).WithPath(item)
	}
	if !itemInfo.Mode().IsRegular() {
		return false, nil
	}

	candidate := filepath.Join(trashDir, filepath.Base(item))
	trashInfo, err := filesystem.Lstat(d.fs, candidate)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, errors.ErrIO, "cannot stat '%s'", candidate).WithPath(candidate)
	}
	if !trashInfo.Mode().IsRegular() || trashInfo.Size() != itemInfo.Size() {
		return false, nil
	}

	itemDigest, err := d.Digest(item)
	if err != nil {
		d.metrics.DedupChecked(metrics.DedupError)
		return false, err
	}

	key := fmt.Sprintf("%s|%d|%d", candidate, trashInfo.Size(), trashInfo.ModTime().UnixNano())
	trashDigest, ok := d.cache.Get(key)
	if !ok {
		trashDigest, err = d.Digest(candidate)
		if err != nil {
			d.metrics.DedupChecked(metrics.DedupError)
			return false, err
		}
		d.cache.Add(key, trashDigest)
	}

	same := itemDigest == trashDigest
	if same {
		d.metrics.DedupChecked(metrics.DedupIdentical)
	} else {
		d.metrics.DedupChecked(metrics.DedupDifferent)
	}
	logger.Debug().
		Str("item", item).
		Str("trash", candidate).
		Str("algorithm", d.algorithm).
		Bool("identical", same).
		Msg("Compared with trash copy")

	return same, nil
}

// Digest streams path through the configured hash and returns it hex encoded
func (d *Deduplicator) Digest(path string) (string, error) {
	f, err := d.fs.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot open '%s'", path).WithPath(path)
	}
	defer func() { _ = f.Close() }()

	h, err := d.newHash()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrUnknown, "failed to create hash")
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "cannot read '%s'", path).WithPath(path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
