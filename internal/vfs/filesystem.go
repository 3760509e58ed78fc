package vfs

import (
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// WalkFunc is called by Walk for every node, parents before children.
type WalkFunc func(path string, info FileInfo) error

// FileSystem is an in-memory directory tree rooted at "/".
type FileSystem struct {
	mu   sync.RWMutex
	root *node
	now  func() time.Time
}

// Option configures a FileSystem.
type Option func(*FileSystem)

// WithClock overrides the time source used for modification times.
func WithClock(now func() time.Time) Option {
	return func(f *FileSystem) {
		f.now = now
	}
}

// New creates a filesystem that holds only the root directory.
func New(opts ...Option) *FileSystem {
	f := &FileSystem{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	f.root = newDir("/", f.now())
	return f
}

// ResolvePath is ResolvePath bound to the filesystem, for callers that only
// hold a FileSystem.
func (f *FileSystem) ResolvePath(raw, cwd string) string {
	return ResolvePath(raw, cwd)
}

// Exists reports whether a node exists at p.
func (f *FileSystem) Exists(p string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lookup(p) != nil
}

// IsDirectory reports whether p is an existing directory.
func (f *FileSystem) IsDirectory(p string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := f.lookup(p)
	return n != nil && n.dir
}

// ListDir returns the names of the children of p in insertion order.
func (f *FileSystem) ListDir(p string) ([]string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := f.lookup(p)
	if n == nil {
		return nil, pathError("listdir", p, linuxsim.ErrNotFound)
	}
	if !n.dir {
		return nil, pathError("listdir", p, linuxsim.ErrNotADirectory)
	}
	return n.names(), nil
}

// Stat returns metadata for the node at p.
func (f *FileSystem) Stat(p string) (FileInfo, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := f.lookup(p)
	if n == nil {
		return nil, pathError("stat", p, linuxsim.ErrNotFound)
	}
	return n.info(), nil
}

// Mkdir creates an empty directory at p. The parent must already exist.
func (f *FileSystem) Mkdir(p string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.create("mkdir", p, true)
}

// Touch creates an empty file at p. An existing node of either type is left
// untouched.
func (f *FileSystem) Touch(p string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.lookup(p) != nil {
		return nil
	}
	return f.create("touch", p, false)
}

// ReadFile returns the content of the file at p.
func (f *FileSystem) ReadFile(p string) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := f.lookup(p)
	if n == nil {
		return "", pathError("read", p, linuxsim.ErrNotFound)
	}
	if n.dir {
		return "", pathError("read", p, linuxsim.ErrIsADirectory)
	}
	return n.content, nil
}

// WriteFile replaces the content of the file at p, creating it first when
// missing.
func (f *FileSystem) WriteFile(p, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := f.lookup(p)
	if n == nil {
		if err := f.create("write", p, false); err != nil {
			return err
		}
		n = f.lookup(p)
	}
	if n.dir {
		return pathError("write", p, linuxsim.ErrIsADirectory)
	}
	n.content = content
	n.modTime = f.now()
	return nil
}

// Rm removes the file at p. Directories are refused; use Rmdir.
func (f *FileSystem) Rm(p string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if Clean(p) == linuxsim.RootPath {
		return pathError("rm", p, linuxsim.ErrIsADirectory)
	}
	parent, name, err := f.parentOf("rm", p)
	if err != nil {
		return err
	}
	target := parent.child(name)
	if target == nil {
		return pathError("rm", p, linuxsim.ErrNotFound)
	}
	if target.dir {
		return pathError("rm", p, linuxsim.ErrIsADirectory)
	}
	parent.detach(name)
	return nil
}

// Rmdir removes the directory at p. Unless recursive is set the directory
// must be empty; with recursive the whole subtree is detached at once.
// The root can never be removed.
func (f *FileSystem) Rmdir(p string, recursive bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if Clean(p) == linuxsim.RootPath {
		return pathError("rmdir", p, linuxsim.ErrInvalidArgument)
	}

	parent, name, err := f.parentOf("rmdir", p)
	if err != nil {
		return err
	}
	target := parent.child(name)
	if target == nil {
		return pathError("rmdir", p, linuxsim.ErrNotFound)
	}
	if !target.dir {
		return pathError("rmdir", p, linuxsim.ErrNotADirectory)
	}
	if !recursive && len(target.children) > 0 {
		return pathError("rmdir", p, linuxsim.ErrDirectoryNotEmpty)
	}
	parent.detach(name)
	return nil
}

// Walk calls fn for p and everything below it, depth first, in insertion
// order. The tree is snapshotted before the first call, so fn may mutate
// the filesystem. Walking stops at the first error fn returns.
func (f *FileSystem) Walk(p string, fn WalkFunc) error {
	type entry struct {
		path string
		info FileInfo
	}

	f.mu.RLock()
	start := f.lookup(p)
	if start == nil {
		f.mu.RUnlock()
		return pathError("walk", p, linuxsim.ErrNotFound)
	}
	var entries []entry
	var collect func(string, *node)
	collect = func(at string, n *node) {
		entries = append(entries, entry{path: at, info: n.info()})
		for _, name := range n.order {
			collect(Join(at, name), n.children[name])
		}
	}
	collect(Clean(p), start)
	f.mu.RUnlock()

	for _, e := range entries {
		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", e.path, r)
				}
			}()
			callbackErr = fn(e.path, e.info)
		}()
		if callbackErr != nil {
			return callbackErr
		}
	}
	return nil
}

// MkdirAll creates p and any missing parents. Existing directories are
// accepted; a file anywhere along the way is an error.
func (f *FileSystem) MkdirAll(p string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, err := f.mkdirAll(p)
	return err
}

// AddFile writes content to p, creating missing parent directories.
// It is meant for seeding a tree.
func (f *FileSystem) AddFile(p, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	dir, err := f.mkdirAll(Dir(p))
	if err != nil {
		return err
	}
	name := Base(p)
	n := dir.child(name)
	if n == nil {
		n = newFile(name, f.now())
		dir.attach(n)
	}
	if n.dir {
		return pathError("write", p, linuxsim.ErrIsADirectory)
	}
	n.content = content
	n.modTime = f.now()
	return nil
}

func (f *FileSystem) mkdirAll(p string) (*node, error) {
	cur := f.root
	at := "/"
	for _, seg := range split(Clean(p)) {
		at = Join(at, seg)
		next := cur.child(seg)
		if next == nil {
			next = newDir(seg, f.now())
			cur.attach(next)
		}
		if !next.dir {
			return nil, pathError("mkdir", at, linuxsim.ErrNotADirectory)
		}
		cur = next
	}
	return cur, nil
}

// create adds a new node at p after validating the parent. Callers hold the
// write lock.
func (f *FileSystem) create(op, p string, dir bool) error {
	if f.lookup(p) != nil {
		return pathError(op, p, linuxsim.ErrAlreadyExists)
	}
	parent, name, err := f.parentOf(op, p)
	if err != nil {
		return err
	}
	if dir {
		parent.attach(newDir(name, f.now()))
	} else {
		parent.attach(newFile(name, f.now()))
	}
	return nil
}

// parentOf re-walks from the root to the directory that holds p.
func (f *FileSystem) parentOf(op, p string) (*node, string, error) {
	segs := split(Clean(p))
	if len(segs) == 0 {
		return nil, "", pathError(op, p, linuxsim.ErrInvalidArgument)
	}
	parent := f.lookup(join(segs[:len(segs)-1]))
	if parent == nil {
		return nil, "", pathError(op, p, linuxsim.ErrNotFound)
	}
	if !parent.dir {
		return nil, "", pathError(op, p, linuxsim.ErrNotADirectory)
	}
	return parent, segs[len(segs)-1], nil
}

func (f *FileSystem) lookup(p string) *node {
	cur := f.root
	for _, seg := range split(Clean(p)) {
		cur = cur.child(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

func pathError(op, p string, err error) error {
	return &fs.PathError{Op: op, Path: p, Err: err}
}
