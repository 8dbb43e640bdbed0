// Package privileged runs one-shot commands through a privilege-escalation
// launcher. No session is created: the command runs to completion and the
// combined output comes back in one piece.
package privileged

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes one-shot privileged commands.
type Runner struct {
	launcher string
}

// New creates a runner using sudo as the launcher.
func New() *Runner {
	return &Runner{launcher: "sudo"}
}

// NewWithLauncher creates a runner with a custom launcher binary. Used by
// tests to substitute a stub for sudo.
func NewWithLauncher(path string) *Runner {
	return &Runner{launcher: path}
}

// Run executes command through the launcher, feeding password on stdin
// (-S) with the prompt suppressed (-p ''). Both output streams are
// captured together; on failure the combined output is returned alongside
// the error so the caller can surface the launcher's diagnostic.
func (r *Runner) Run(ctx context.Context, command, password, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, r.launcher, "-S", "-p", "", "sh", "-c", command)
	if dir != "" {
		cmd.Dir = dir
	}
	cmd.Stdin = strings.NewReader(password + "\n")

	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("privileged command failed: %w", err)
	}
	return string(out), nil
}
