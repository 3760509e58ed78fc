package vfs

import (
	"io/fs"
	"strings"
	"time"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// node is a file or a directory. Directories own their children; order
// records insertion so listings are stable.
type node struct {
	name     string
	dir      bool
	content  string
	children map[string]*node
	order    []string
	modTime  time.Time
}

func newDir(name string, now time.Time) *node {
	return &node{
		name:     name,
		dir:      true,
		children: make(map[string]*node),
		modTime:  now,
	}
}

func newFile(name string, now time.Time) *node {
	return &node{name: name, modTime: now}
}

func (n *node) child(name string) *node {
	if !n.dir {
		return nil
	}
	return n.children[name]
}

func (n *node) attach(c *node) {
	n.children[c.name] = c
	n.order = append(n.order, c.name)
}

func (n *node) detach(name string) {
	delete(n.children, name)
	for i, existing := range n.order {
		if existing == name {
			n.order = append(n.order[:i:i], n.order[i+1:]...)
			return
		}
	}
}

func (n *node) names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

func (n *node) executable() bool {
	return !n.dir && strings.HasPrefix(n.content, "#!")
}

func (n *node) info() *fileInfo {
	fi := &fileInfo{name: n.name, modTime: n.modTime, isDir: n.dir}
	switch {
	case n.dir:
		fi.size = linuxsim.DirectorySize
		fi.mode = 0755 | fs.ModeDir
	case n.executable():
		fi.size = int64(len(n.content))
		fi.mode = 0755
	default:
		fi.size = int64(len(n.content))
		fi.mode = 0644
	}
	return fi
}

// fileInfo implements fs.FileInfo for virtual nodes
type fileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *fileInfo) Name() string       { return f.name }
func (f *fileInfo) Size() int64        { return f.size }
func (f *fileInfo) Mode() fs.FileMode  { return f.mode }
func (f *fileInfo) ModTime() time.Time { return f.modTime }
func (f *fileInfo) IsDir() bool        { return f.isDir }
func (f *fileInfo) Sys() interface{}   { return nil }
