// Package vfs implements the simulated machine's in-memory filesystem.
//
// The tree is owned top-down: a directory owns its children and nothing
// points back up, so a node can never become its own ancestor. Parent
// lookups re-walk from the root. Children keep their insertion order, which
// is the order ListDir and Walk report them in.
//
// Mutating operations take absolute, already resolved paths; use
// ResolvePath to turn shell input into one. Failures are returned as
// *fs.PathError values wrapping the sentinels in pkg/linuxsim, so
// errors.Is(err, linuxsim.ErrNotFound) and friends work.
//
// A FileSystem is safe for concurrent use.
package vfs
