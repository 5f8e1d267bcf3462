// Package types defines the data model shared by the toss pipeline:
// selected entries, selection criteria, interaction modes, removal
// outcomes and the confirmation port the engine asks before acting.
package types
