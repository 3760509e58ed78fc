package shell

import (
	"errors"
	"strings"

	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// Operand commands below handle every operand independently: a failure is
// reported and the loop moves on.

func (in *Interpreter) mkdir(inv invocation) linuxsim.Result {
	var res linuxsim.Result

	flags, operands := splitFlags(inv.args[1:])
	if len(operands) == 0 {
		res.Fail("mkdir: missing operand")
		return res
	}
	parents := strings.Contains(flags, "p")

	for _, arg := range operands {
		p := inv.resolve(arg)
		var err error
		if parents {
			err = inv.fs.MkdirAll(p)
		} else {
			err = inv.fs.Mkdir(p)
		}
		if err != nil {
			res.Fail("mkdir: cannot create directory '%s': %s", arg, linuxsim.Describe(err))
		}
	}
	return res
}

func (in *Interpreter) touch(inv invocation) linuxsim.Result {
	var res linuxsim.Result

	if len(inv.args) < 2 {
		res.Fail("touch: missing file operand")
		return res
	}
	for _, arg := range inv.args[1:] {
		if err := inv.fs.Touch(inv.resolve(arg)); err != nil {
			res.Fail("touch: cannot touch '%s': %s", arg, linuxsim.Describe(err))
		}
	}
	return res
}

func (in *Interpreter) cat(inv invocation) linuxsim.Result {
	var res linuxsim.Result

	if len(inv.args) < 2 {
		res.Fail("cat: missing file operand")
		return res
	}
	for _, arg := range inv.args[1:] {
		p := inv.resolve(arg)
		if inv.fs.IsDirectory(p) {
			res.Fail("cat: %s: %s", arg, linuxsim.Describe(linuxsim.ErrIsADirectory))
			continue
		}
		content, err := inv.fs.ReadFile(p)
		if err != nil {
			res.Fail("cat: %s: %s", arg, linuxsim.Describe(err))
			continue
		}
		res.Append(strings.Split(content, "\n")...)
	}
	return res
}

// echo prints its arguments joined by single spaces. "> file" or ">file"
// sends the text to file instead, replacing its content. Words after a
// target still belong to the text. With several redirections every target
// is truncated in order and the last one receives the text. Append (">>")
// is not supported, so such words are printed as they are.
func (in *Interpreter) echo(inv invocation) linuxsim.Result {
	var res linuxsim.Result

	words := inv.args[1:]
	var text, targets []string
	for i := 0; i < len(words); i++ {
		w := words[i]
		switch {
		case !strings.HasPrefix(w, ">") || strings.HasPrefix(w, ">>"):
			text = append(text, w)
		case w == ">":
			if i+1 == len(words) {
				res.Fail("echo: missing operand after '>'")
				return res
			}
			i++
			targets = append(targets, words[i])
		default:
			targets = append(targets, w[1:])
		}
	}

	joined := strings.Join(text, " ")
	if len(targets) == 0 {
		res.Append(joined)
		return res
	}
	for i, target := range targets {
		content := ""
		if i == len(targets)-1 {
			content = joined
		}
		if err := inv.fs.WriteFile(inv.resolve(target), content); err != nil {
			res.Fail("echo: %s: %s", target, linuxsim.Describe(err))
			return res
		}
	}
	return res
}

func (in *Interpreter) rm(inv invocation) linuxsim.Result {
	var res linuxsim.Result

	flags, operands := splitFlags(inv.args[1:])
	if len(operands) == 0 {
		res.Fail("rm: missing operand")
		return res
	}
	recursive := strings.ContainsAny(flags, "rR")
	force := strings.Contains(flags, "f")

	for _, arg := range operands {
		p := inv.resolve(arg)
		var err error
		switch {
		case !inv.fs.IsDirectory(p):
			err = inv.fs.Rm(p)
		case recursive:
			err = inv.fs.Rmdir(p, true)
		default:
			err = linuxsim.ErrIsADirectory
		}
		if err == nil || (force && errors.Is(err, linuxsim.ErrNotFound)) {
			continue
		}
		res.Fail("rm: cannot remove '%s': %s", arg, linuxsim.Describe(err))
	}
	return res
}

func (in *Interpreter) rmdir(inv invocation) linuxsim.Result {
	var res linuxsim.Result

	if len(inv.args) < 2 {
		res.Fail("rmdir: missing operand")
		return res
	}
	for _, arg := range inv.args[1:] {
		if err := inv.fs.Rmdir(inv.resolve(arg), false); err != nil {
			res.Fail("rmdir: failed to remove '%s': %s", arg, linuxsim.Describe(err))
		}
	}
	return res
}
