package shell

import (
	"fmt"
	"strings"

	"github.com/vvka-141/linuxsim/internal/vfs"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

const (
	dirPerms  = "drwxr-xr-x"
	filePerms = "-rw-r--r--"
)

func (in *Interpreter) cd(inv invocation) linuxsim.Result {
	var res linuxsim.Result
	if len(inv.args) == 1 {
		res.NewDir = in.env.Home
		return res
	}

	arg := inv.args[1]
	target := inv.resolve(arg)
	switch {
	case !inv.fs.Exists(target):
		res.Fail("cd: %s: %s", arg, linuxsim.Describe(linuxsim.ErrNotFound))
	case !inv.fs.IsDirectory(target):
		res.Fail("cd: %s: %s", arg, linuxsim.Describe(linuxsim.ErrNotADirectory))
	default:
		res.NewDir = target
	}
	return res
}

func (in *Interpreter) pwd(inv invocation) linuxsim.Result {
	res := linuxsim.Result{Class: linuxsim.ClassSuccess}
	res.Append(inv.cwd)
	return res
}

// ls accepts flags and a path in any order. Flag tokens are matched by
// substring, so "-la", "-al" and "-xa" all enable hidden entries. The last
// operand wins.
func (in *Interpreter) ls(inv invocation) linuxsim.Result {
	var res linuxsim.Result

	target, shown := inv.cwd, inv.cwd
	var showHidden, long bool
	for _, arg := range inv.args[1:] {
		if strings.HasPrefix(arg, "-") {
			showHidden = showHidden || strings.Contains(arg, "a")
			long = long || strings.Contains(arg, "l")
			continue
		}
		target, shown = inv.resolve(arg), arg
	}

	names, err := inv.fs.ListDir(target)
	if err != nil {
		res.Fail("ls: cannot access '%s': %s", shown, linuxsim.Describe(err))
		return res
	}

	stamp := in.env.Now().Format("Jan 02 15:04")
	for _, name := range names {
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		kind := entryKind(inv.fs, vfs.Join(target, name))
		text := name
		if long {
			perms, size := filePerms, 0
			if kind == linuxsim.KindDirectory {
				perms, size = dirPerms, linuxsim.DirectorySize
			}
			text = fmt.Sprintf("%s 1 %s %s %d %s %s", perms, in.env.User, in.env.User, size, stamp, name)
		}
		res.Lines = append(res.Lines, linuxsim.Line{Text: text, Kind: kind})
	}
	return res
}

// tree prints the subtree below a directory, one entry per line, indented
// by depth.
func (in *Interpreter) tree(inv invocation) linuxsim.Result {
	var res linuxsim.Result

	flags, operands := splitFlags(inv.args[1:])
	showHidden := strings.Contains(flags, "a")
	target, shown := inv.cwd, "."
	if len(operands) > 0 {
		shown = operands[len(operands)-1]
		target = inv.resolve(shown)
	}

	if !inv.fs.IsDirectory(target) {
		if inv.fs.Exists(target) {
			res.Fail("tree: %s: %s", shown, linuxsim.Describe(linuxsim.ErrNotADirectory))
		} else {
			res.Fail("tree: %s: %s", shown, linuxsim.Describe(linuxsim.ErrNotFound))
		}
		return res
	}

	base := len(strings.Split(strings.Trim(target, "/"), "/"))
	if target == linuxsim.RootPath {
		base = 0
	}

	var entries []treeEntry
	err := inv.fs.Walk(target, func(p string, info vfs.FileInfo) error {
		if p == target {
			return nil
		}
		rel := strings.Split(strings.Trim(p, "/"), "/")[base:]
		if !showHidden && hasHiddenSegment(rel) {
			return nil
		}
		entries = append(entries, treeEntry{depth: len(rel), info: info})
		return nil
	})
	if err != nil {
		res.Fail("tree: %s: %s", shown, linuxsim.Describe(err))
		return res
	}

	res.Lines = append(res.Lines, linuxsim.Line{Text: shown, Kind: linuxsim.KindDirectory})
	var dirs, files int
	// open[k] reports whether the ancestor at depth k+1 has siblings still to come.
	var open []bool
	for i, e := range entries {
		kind := kindOf(e.info)
		if kind == linuxsim.KindDirectory {
			dirs++
		} else {
			files++
		}
		last := lastSibling(entries, i)
		open = open[:e.depth-1]

		var b strings.Builder
		for _, more := range open {
			if more {
				b.WriteString("│   ")
			} else {
				b.WriteString("    ")
			}
		}
		if last {
			b.WriteString("└── ")
		} else {
			b.WriteString("├── ")
		}
		b.WriteString(e.info.Name())
		res.Lines = append(res.Lines, linuxsim.Line{Text: b.String(), Kind: kind})
		open = append(open, !last)
	}

	res.Append("", fmt.Sprintf("%d directories, %d files", dirs, files))
	return res
}

type treeEntry struct {
	depth int
	info  vfs.FileInfo
}

// lastSibling reports whether entries[i] is the final child of its parent
// in depth-first order.
func lastSibling(entries []treeEntry, i int) bool {
	for _, next := range entries[i+1:] {
		if next.depth < entries[i].depth {
			return true
		}
		if next.depth == entries[i].depth {
			return false
		}
	}
	return true
}

func hasHiddenSegment(segs []string) bool {
	for _, s := range segs {
		if strings.HasPrefix(s, ".") {
			return true
		}
	}
	return false
}

func entryKind(fsys FileSystem, p string) linuxsim.LineKind {
	info, err := fsys.Stat(p)
	if err != nil {
		return linuxsim.KindPlain
	}
	return kindOf(info)
}

func kindOf(info vfs.FileInfo) linuxsim.LineKind {
	switch {
	case info.IsDir():
		return linuxsim.KindDirectory
	case info.Mode()&0111 != 0:
		return linuxsim.KindExecutable
	default:
		return linuxsim.KindPlain
	}
}
