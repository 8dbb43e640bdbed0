package terminal

import (
	"os"
	"os/exec"
	"sync"
	"time"
)

// Mode distinguishes plain shells from privilege-escalated ones.
type Mode string

const (
	ModeUser Mode = "user"
	ModeRoot Mode = "root"
)

// Session represents one tracked PTY-backed shell process.
type Session struct {
	ID         string
	Shell      string
	WorkingDir string
	Mode       Mode
	StartedAt  time.Time

	// Process management
	cmd  *exec.Cmd
	ptmx *os.File

	// Output accumulation
	buf *Buffer

	// Lifecycle
	mu     sync.RWMutex
	exited bool
}

// Exited reports whether the underlying process has terminated. An exited
// session stays in the registry (and its buffer stays drainable) until it
// is explicitly killed.
func (s *Session) Exited() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.exited
}

func (s *Session) markExited() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.exited = true
}

// Info is the public descriptor of a session.
type Info struct {
	ID         string `json:"session_id"`
	Shell      string `json:"shell"`
	WorkingDir string `json:"cwd"`
	Mode       Mode   `json:"mode"`
}

// Info returns the public descriptor for the session.
func (s *Session) Info() Info {
	return Info{
		ID:         s.ID,
		Shell:      s.Shell,
		WorkingDir: s.WorkingDir,
		Mode:       s.Mode,
	}
}
