package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
	"go.uber.org/zap"

	"github.com/shellwright/shellwright/internal/shared/id"
)

// Sentinel errors for the lifecycle operations.
var (
	// ErrNotFound means the id is absent from the registry.
	ErrNotFound = errors.New("session not found")

	// ErrExited means the session's process terminated on its own; the
	// session stays drainable but no longer accepts input.
	ErrExited = errors.New("session has exited")
)

// exitSentinel is appended to a session's buffer when its process
// terminates, so a later drain can observe the death.
const exitSentinel = "\r\n[process exited]\r\n"

// CreateOptions control session creation. All fields are optional; an
// empty RootPassword spawns a plain user shell.
type CreateOptions struct {
	WorkingDir   string
	Shell        string
	RootPassword string
}

// Manager is the session lifecycle controller. It owns a Registry and
// performs create/write/drain/kill/list against it.
type Manager struct {
	registry     *Registry
	defaultShell string
	sudoPath     string
	log          *zap.Logger
}

// NewManager creates a lifecycle controller over the given registry.
// defaultShell overrides the platform shell resolution when non-empty.
func NewManager(registry *Registry, defaultShell string, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		registry:     registry,
		defaultShell: defaultShell,
		sudoPath:     "sudo",
		log:          log,
	}
}

// Create spawns a new PTY-backed shell, registers it and returns its
// descriptor. It never waits for the shell to become interactive. When
// opts.RootPassword is set, the shell is wrapped by sudo reading the
// password from stdin, and the password (plus newline) is written into
// the PTY before Create returns, so it always precedes any later Write.
func (m *Manager) Create(opts CreateOptions) (Info, error) {
	shell := opts.Shell
	if shell == "" {
		shell = m.defaultShell
	}
	if shell == "" {
		shell = platformShell()
	}

	dir := opts.WorkingDir
	if dir == "" {
		dir = os.Getenv("HOME")
	}
	if dir == "" {
		dir = os.TempDir()
	}

	mode := ModeUser
	var cmd *exec.Cmd
	if opts.RootPassword != "" {
		mode = ModeRoot
		// -S reads the password from stdin, -p '' suppresses the prompt.
		cmd = exec.Command(m.sudoPath, "-S", "-p", "", shell)
	} else {
		cmd = exec.Command(shell)
	}
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return Info{}, fmt.Errorf("failed to start PTY: %w", err)
	}

	sess := &Session{
		ID:         string(id.NewTerminalID()),
		Shell:      shell,
		WorkingDir: dir,
		Mode:       mode,
		StartedAt:  time.Now(),
		cmd:        cmd,
		ptmx:       ptmx,
		buf:        NewBuffer(),
	}

	if opts.RootPassword != "" {
		if _, err := ptmx.WriteString(opts.RootPassword + "\n"); err != nil {
			ptmx.Close()
			cmd.Process.Kill()
			return Info{}, fmt.Errorf("failed to authenticate root session: %w", err)
		}
	}

	m.registry.Add(sess)

	go m.readOutput(sess)
	go m.watchExit(sess)

	m.log.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("shell", shell),
		zap.String("cwd", dir),
		zap.String("mode", string(mode)))

	return sess.Info(), nil
}

// readOutput continuously copies PTY output into the session buffer. It
// stops when the PTY master reports an error, which happens once the
// process exits and the master is closed.
func (m *Manager) readOutput(sess *Session) {
	buf := make([]byte, 4096)
	for {
		n, err := sess.ptmx.Read(buf)
		if n > 0 {
			sess.buf.Append(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

// watchExit waits for the process to terminate, appends the exit sentinel
// and flags the session. The session is deliberately NOT removed from the
// registry: the final buffer stays readable until an explicit Kill.
func (m *Manager) watchExit(sess *Session) {
	sess.cmd.Wait()

	sess.markExited()
	sess.buf.AppendString(exitSentinel)
	sess.ptmx.Close()

	m.log.Info("session process exited", zap.String("session_id", sess.ID))
}

// Write sends a command to the session's input stream, appending a
// newline if the caller did not supply one. Fire-and-forget: it does not
// wait for or correlate any resulting output.
func (m *Manager) Write(sessionID, command string) error {
	sess, ok := m.registry.Get(sessionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	if sess.Exited() {
		return fmt.Errorf("%w: %s", ErrExited, sessionID)
	}

	if !strings.HasSuffix(command, "\n") {
		command += "\n"
	}
	if _, err := sess.ptmx.WriteString(command); err != nil {
		return fmt.Errorf("failed to write to session %s: %w", sessionID, err)
	}
	return nil
}

// Drain atomically empties the session's output buffer and returns the
// previous contents, possibly the empty string.
func (m *Manager) Drain(sessionID string) (string, error) {
	sess, ok := m.registry.Get(sessionID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	return sess.buf.Drain(), nil
}

// Kill terminates the session's process and removes it from the registry
// regardless of whether termination is immediate.
func (m *Manager) Kill(sessionID string) error {
	sess, ok := m.registry.Get(sessionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}

	m.registry.Remove(sessionID)
	m.terminate(sess)

	m.log.Info("session killed", zap.String("session_id", sessionID))
	return nil
}

// terminate signals the session's process group and closes the PTY. The
// group signal matters for root sessions: killing only the sudo parent
// would orphan the escalated shell.
func (m *Manager) terminate(sess *Session) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.exited {
		sess.exited = true
		if p := sess.cmd.Process; p != nil {
			// pty.Start puts the child in its own session, so its pid
			// doubles as the process group id.
			if err := syscall.Kill(-p.Pid, syscall.SIGKILL); err != nil {
				p.Kill()
			}
		}
	}
	sess.ptmx.Close()
}

// List returns a snapshot of the registered session ids.
func (m *Manager) List() []string {
	return m.registry.IDs()
}

// Shutdown kills every registered session. Called on server exit so no
// PTYs outlive the control plane.
func (m *Manager) Shutdown() {
	for _, sessionID := range m.registry.IDs() {
		if err := m.Kill(sessionID); err != nil && !errors.Is(err, ErrNotFound) {
			m.log.Warn("failed to kill session during shutdown",
				zap.String("session_id", sessionID),
				zap.Error(err))
		}
	}
}

// platformShell resolves the default shell for the host platform.
func platformShell() string {
	if runtime.GOOS == "windows" {
		return "cmd.exe"
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/bash"
}
