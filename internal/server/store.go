package server

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/linuxsim/internal/completion"
	"github.com/vvka-141/linuxsim/internal/shell"
	"github.com/vvka-141/linuxsim/internal/vfs"
	"github.com/vvka-141/linuxsim/pkg/linuxsim"
)

// FileSystemFactory builds the filesystem a new session starts with.
type FileSystemFactory func() (*vfs.FileSystem, error)

// SessionInfo describes an open session.
type SessionInfo struct {
	ID       string    `json:"id"`
	Cwd      string    `json:"cwd"`
	Prompt   string    `json:"prompt"`
	LastUsed time.Time `json:"last_used"`
}

// ExecResult is a command result together with the session state after it.
type ExecResult struct {
	Lines  []linuxsim.Line         `json:"lines"`
	Class  linuxsim.Classification `json:"class"`
	Cwd    string                  `json:"cwd"`
	Prompt string                  `json:"prompt"`
	Exit   bool                    `json:"exit"`
}

// TreeEntry is one node of a session's filesystem.
type TreeEntry struct {
	Path string `json:"path"`
	Dir  bool   `json:"dir"`
	Size int64  `json:"size"`
}

type entry struct {
	mu       sync.Mutex
	id       string
	session  *shell.Session
	lastUsed time.Time
}

// SessionStore keeps every open session in memory. Each session has its
// own filesystem; commands on one session run one at a time.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entry

	interp *shell.Interpreter
	newFS  FileSystemFactory
	max    int
	now    func() time.Time
}

// NewSessionStore creates a store. max <= 0 means no limit.
func NewSessionStore(interp *shell.Interpreter, newFS FileSystemFactory, max int) *SessionStore {
	if newFS == nil {
		newFS = func() (*vfs.FileSystem, error) { return vfs.NewDefault(), nil }
	}
	return &SessionStore{
		sessions: make(map[string]*entry),
		interp:   interp,
		newFS:    newFS,
		max:      max,
		now:      time.Now,
	}
}

// Create opens a session on a fresh filesystem, in the home directory.
func (s *SessionStore) Create() (SessionInfo, error) {
	fsys, err := s.newFS()
	if err != nil {
		return SessionInfo{}, fmt.Errorf("create filesystem: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.max > 0 && len(s.sessions) >= s.max {
		return SessionInfo{}, linuxsim.ErrSessionLimit
	}

	e := &entry{
		id:       uuid.NewString(),
		session:  shell.NewSession(s.interp, fsys),
		lastUsed: s.now(),
	}
	s.sessions[e.id] = e
	return e.info(), nil
}

// Get describes a session without touching its idle timer.
func (s *SessionStore) Get(id string) (SessionInfo, error) {
	e, err := s.lookup(id)
	if err != nil {
		return SessionInfo{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.info(), nil
}

// Exec runs one command line in a session. A command asking to exit
// closes the session after its result is returned.
func (s *SessionStore) Exec(id, line string) (ExecResult, error) {
	e, err := s.lookup(id)
	if err != nil {
		return ExecResult{}, err
	}

	e.mu.Lock()
	res := e.session.Run(line)
	e.lastUsed = s.now()
	out := ExecResult{
		Lines:  res.Lines,
		Class:  res.Class,
		Cwd:    e.session.Cwd(),
		Prompt: e.session.Prompt(),
		Exit:   res.Exit,
	}
	e.mu.Unlock()

	if out.Lines == nil {
		out.Lines = []linuxsim.Line{}
	}
	if res.Exit {
		_ = s.Delete(id)
	}
	return out, nil
}

// Complete lists completions of input in a session.
func (s *SessionStore) Complete(id, input string) ([]string, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = s.now()

	out := completion.Candidates(input, e.session.Cwd(), s.interp.Commands(), e.session.FileSystem())
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// Tree lists every node of a session's filesystem, depth first.
func (s *SessionStore) Tree(id string) ([]TreeEntry, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []TreeEntry
	err = e.session.FileSystem().Walk(linuxsim.RootPath, func(p string, info vfs.FileInfo) error {
		out = append(out, TreeEntry{Path: p, Dir: info.IsDir(), Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete closes a session.
func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return linuxsim.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Expire closes every session idle since before cutoff and returns their
// ids, sorted.
func (s *SessionStore) Expire(cutoff time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var expired []string
	for id, e := range s.sessions {
		e.mu.Lock()
		idle := e.lastUsed.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			expired = append(expired, id)
		}
	}
	sort.Strings(expired)
	return expired
}

// Len returns the number of open sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) lookup(id string) (*entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, linuxsim.ErrSessionNotFound
	}
	return e, nil
}

// info requires e.mu to be held, or e not yet shared.
func (e *entry) info() SessionInfo {
	return SessionInfo{
		ID:       e.id,
		Cwd:      e.session.Cwd(),
		Prompt:   e.session.Prompt(),
		LastUsed: e.lastUsed,
	}
}
