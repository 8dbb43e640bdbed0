package privileged

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLauncher writes a script that mimics sudo -S: it reads the password
// from stdin, rejects anything but "hunter2" with sudo's diagnostic, and
// otherwise execs the wrapped command.
func stubLauncher(t *testing.T) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("stub launcher requires a POSIX shell")
	}

	script := `#!/bin/sh
read pw
if [ "$pw" != "hunter2" ]; then
	echo "sudo: 1 incorrect password attempt" >&2
	exit 1
fi
shift 3
exec "$@"
`
	path := filepath.Join(t.TempDir(), "fake-sudo")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestRunCapturesOutput(t *testing.T) {
	r := NewWithLauncher(stubLauncher(t))

	out, err := r.Run(context.Background(), "echo escalated", "hunter2", "")
	require.NoError(t, err)
	assert.Contains(t, out, "escalated")
}

func TestRunWrongPassword(t *testing.T) {
	r := NewWithLauncher(stubLauncher(t))

	out, err := r.Run(context.Background(), "echo escalated", "wrong", "")
	require.Error(t, err)
	assert.Contains(t, out, "incorrect password")
	assert.NotContains(t, out, "escalated")
}

func TestRunHonorsWorkingDir(t *testing.T) {
	r := NewWithLauncher(stubLauncher(t))
	dir := t.TempDir()

	out, err := r.Run(context.Background(), "pwd", "hunter2", dir)
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Base(dir))
}

func TestRunMissingLauncher(t *testing.T) {
	r := NewWithLauncher("/nonexistent/launcher")

	_, err := r.Run(context.Background(), "true", "pw", "")
	assert.Error(t, err)
}
