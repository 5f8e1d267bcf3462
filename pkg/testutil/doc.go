// Package testutil provides an isolated toss environment for command and
// CLI tests.
//
// NewTestEnvironment creates a temp directory holding a work tree plus the
// trash, data, config and state directories, and points the TOSS_*
// environment variables at them. Session builds a command session on a
// real filesystem with captured output, a fixed clock and a scripted
// confirmer.
package testutil
