// Package syslogs queries host system logs: tail a log file when one is
// available, otherwise fall back to the systemd journal.
package syslogs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultLines is the number of log lines returned when the caller does
// not ask for a specific count.
const DefaultLines = 50

// Service reads system logs.
type Service struct {
	// syslogPath is consulted when no explicit file is requested.
	syslogPath string
}

// NewService creates a log reader. syslogPath is the default log file
// tried before the journalctl fallback.
func NewService(syslogPath string) *Service {
	return &Service{syslogPath: syslogPath}
}

// Get returns the last lines entries of the requested log. An explicit
// file must exist; with no file, the default syslog path is tailed when
// present, else journalctl is queried. Command failures surface with the
// combined diagnostic output.
func (s *Service) Get(ctx context.Context, file string, lines int) (string, error) {
	if lines <= 0 {
		lines = DefaultLines
	}

	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return "", fmt.Errorf("log file not found: %s", file)
		}
		return run(exec.CommandContext(ctx, "tail", "-n", strconv.Itoa(lines), file))
	}

	if s.syslogPath != "" {
		if _, err := os.Stat(s.syslogPath); err == nil {
			return run(exec.CommandContext(ctx, "tail", "-n", strconv.Itoa(lines), s.syslogPath))
		}
	}

	return run(exec.CommandContext(ctx, "journalctl", "-n", strconv.Itoa(lines), "--no-pager"))
}

func run(cmd *exec.Cmd) (string, error) {
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("log query failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
