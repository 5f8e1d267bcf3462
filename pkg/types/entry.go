package types

import (
	"io/fs"
)

// EntryKind is the cached kind of a selected filesystem entry
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
	KindSymlink
)

// String returns the string representation of the kind
func (k EntryKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// KindOf derives the entry kind from lstat information
func KindOf(info fs.FileInfo) EntryKind {
	mode := info.Mode()
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	default:
		return KindFile
	}
}

// Entry is one filesystem item selected for removal. Entries are created
// by the selector and never modified afterwards.
type Entry struct {
	// Path is absolute and cleaned
	Path string

	Kind   EntryKind
	Exists bool
}

// IsDir reports whether the entry is a real directory (not a symlink to one)
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// SelectionCriteria configures how raw paths are turned into entries.
// It is supplied once per invocation.
type SelectionCriteria struct {
	Recursive bool

	// Pattern is a substring matched against file names; empty means none
	Pattern string

	// TreatEmptyDirAsRemovable admits directories without Recursive so they
	// can be removed with a non-recursive directory removal
	TreatEmptyDirAsRemovable bool
}

// HasPattern reports whether a pattern filter is active
func (c SelectionCriteria) HasPattern() bool {
	return c.Pattern != ""
}
