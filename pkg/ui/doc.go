// Package ui renders toss output for the terminal: per-item diagnostics,
// verbose notices, dry-run listings and the history view.
//
// Diagnostics go to stderr prefixed with the program name, like coreutils
// rm. Colors are used only when the stream is a color-capable terminal and
// NO_COLOR is unset.
package ui
