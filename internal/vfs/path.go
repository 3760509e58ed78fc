package vfs

import "strings"

// ResolvePath converts a path expression typed at the shell into a
// normalized absolute path, relative to cwd.
//
//	ResolvePath("docs/../notes", "/home/user") → "/home/user/notes"
//	ResolvePath("../../../..", "/home/user")   → "/"
//	ResolvePath("//etc///", "/tmp")            → "/etc"
//
// Ascending above the root is clamped to the root and never fails. cwd is
// expected to be normalized already; it is returned unchanged for ".".
func ResolvePath(raw, cwd string) string {
	switch {
	case strings.HasPrefix(raw, "/"):
		return Clean(raw)
	case raw == ".":
		return cwd
	case raw == "..":
		return join(pop(split(cwd)))
	}
	return join(walk(split(cwd), raw))
}

// Clean normalizes an absolute path: repeated separators collapse, the
// trailing separator is dropped, "." segments vanish and ".." segments pop
// without ever leaving the root.
func Clean(p string) string {
	return join(walk(nil, p))
}

// Dir returns the parent of an absolute path. The root is its own parent.
func Dir(p string) string {
	return join(pop(split(p)))
}

// Base returns the last element of an absolute path, "/" for the root.
func Base(p string) string {
	segs := split(p)
	if len(segs) == 0 {
		return "/"
	}
	return segs[len(segs)-1]
}

// Join appends name to dir and normalizes the result.
func Join(dir, name string) string {
	return Clean(dir + "/" + name)
}

func walk(acc []string, p string) []string {
	for _, seg := range strings.Split(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			acc = pop(acc)
		default:
			acc = append(acc, seg)
		}
	}
	return acc
}

func pop(segs []string) []string {
	if len(segs) == 0 {
		return segs
	}
	return segs[:len(segs)-1]
}

func split(p string) []string {
	var segs []string
	for _, seg := range strings.Split(p, "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

func join(segs []string) string {
	return "/" + strings.Join(segs, "/")
}
