// Package filesystem provides the filesystem seam used by toss.
//
// Every component takes an afero.Fs: production code uses the OS
// filesystem and tests swap in an in-memory one where the behaviour under
// test does not depend on real device ids or directory-removal semantics.
package filesystem
