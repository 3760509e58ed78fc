package linuxsim

import (
	"encoding/json"
	"fmt"
)

// Classification tags a command's output for display styling.
type Classification int

const (
	ClassNormal Classification = iota
	ClassSuccess
	ClassError
	ClassWarning
	ClassInfo
	// ClassClear tells the front end to wipe its displayed history.
	ClassClear
)

var classificationNames = [...]string{
	ClassNormal:  "normal",
	ClassSuccess: "success",
	ClassError:   "error",
	ClassWarning: "warning",
	ClassInfo:    "info",
	ClassClear:   "clear",
}

func (c Classification) String() string {
	if c < 0 || int(c) >= len(classificationNames) {
		return fmt.Sprintf("Classification(%d)", int(c))
	}
	return classificationNames[c]
}

// MarshalJSON encodes the classification by name.
func (c Classification) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// LineKind annotates a single output line, e.g. a directory entry in ls.
type LineKind int

const (
	KindPlain LineKind = iota
	KindDirectory
	KindExecutable
)

func (k LineKind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindExecutable:
		return "executable"
	default:
		return "plain"
	}
}

// MarshalJSON encodes the kind by name.
func (k LineKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Line is one line of command output.
type Line struct {
	Text string   `json:"text"`
	Kind LineKind `json:"kind"`
}

// Result is what the interpreter returns for one command line.
type Result struct {
	Lines []Line         `json:"lines"`
	Class Classification `json:"class"`

	// NewDir is the working directory the caller must switch to.
	// Empty means unchanged.
	NewDir string `json:"new_dir,omitempty"`

	// Exit is set when the session should end.
	Exit bool `json:"exit,omitempty"`
}

// Empty reports whether the result carries nothing to display or apply.
func (r Result) Empty() bool {
	return len(r.Lines) == 0 && r.Class == ClassNormal && r.NewDir == "" && !r.Exit
}

// Text returns the output lines without annotations.
func (r Result) Text() []string {
	out := make([]string, len(r.Lines))
	for i, l := range r.Lines {
		out[i] = l.Text
	}
	return out
}

// Append adds plain lines to the result.
func (r *Result) Append(text ...string) {
	for _, t := range text {
		r.Lines = append(r.Lines, Line{Text: t})
	}
}

// Fail adds an error line and marks the whole result as an error.
// Lines added earlier are preserved.
func (r *Result) Fail(format string, args ...interface{}) {
	r.Lines = append(r.Lines, Line{Text: fmt.Sprintf(format, args...)})
	r.Class = ClassError
}

// Failed reports whether any part of the command failed.
func (r Result) Failed() bool {
	return r.Class == ClassError
}
