package vfs

import "fmt"

// SeedEntry describes one node of an initial tree. Directories ignore
// Content.
type SeedEntry struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content,omitempty"`
	Dir     bool   `yaml:"dir,omitempty"`
}

const simulatedExecutable = "#!/bin/bash\n# This is a simulated executable"

// DefaultSeed is the layout every new session starts with, in insertion
// order.
var DefaultSeed = []SeedEntry{
	{Path: "/home/user/documents/welcome.txt", Content: "Welcome to LinuxSim!\nThis is a simulated Linux environment running in your browser."},
	{Path: "/home/user/documents/notes.txt", Content: "Some example notes.\nFeel free to edit this file using echo with redirection."},
	{Path: "/home/user/projects", Dir: true},
	{Path: "/home/user/.config/settings.ini", Content: "[Settings]\nShowHiddenFiles=false\nTheme=dark"},
	{Path: "/bin/bash", Content: simulatedExecutable},
	{Path: "/bin/ls", Content: simulatedExecutable},
	{Path: "/bin/cat", Content: simulatedExecutable},
	{Path: "/etc/passwd", Content: "root:x:0:0:root:/root:/bin/bash\nuser:x:1000:1000:User:/home/user:/bin/bash"},
	{Path: "/etc/hosts", Content: "127.0.0.1 localhost\n::1 localhost"},
	{Path: "/tmp", Dir: true},
}

// NewDefault creates a filesystem populated with DefaultSeed.
func NewDefault(opts ...Option) *FileSystem {
	f := New(opts...)
	if err := f.Seed(DefaultSeed); err != nil {
		panic(fmt.Sprintf("vfs: default seed: %v", err))
	}
	return f
}

// Seed adds entries to the tree, creating parents as needed. Existing files
// are overwritten.
func (f *FileSystem) Seed(entries []SeedEntry) error {
	for _, e := range entries {
		var err error
		if e.Dir {
			err = f.MkdirAll(e.Path)
		} else {
			err = f.AddFile(e.Path, e.Content)
		}
		if err != nil {
			return fmt.Errorf("seed %s: %w", e.Path, err)
		}
	}
	return nil
}
