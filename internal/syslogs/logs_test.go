package syslogs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFixture(t *testing.T, n int) string {
	t.Helper()

	var sb strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sb, "entry %d\n", i)
	}
	path := filepath.Join(t.TempDir(), "app.log")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func TestGetTailsExplicitFile(t *testing.T) {
	path := writeLogFixture(t, 100)
	svc := NewService("")

	out, err := svc.Get(context.Background(), path, 10)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "entry 91", lines[0])
	assert.Equal(t, "entry 100", lines[9])
}

func TestGetDefaultLineCount(t *testing.T) {
	path := writeLogFixture(t, 100)
	svc := NewService("")

	out, err := svc.Get(context.Background(), path, 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, DefaultLines)
	assert.Equal(t, "entry 51", lines[0])
}

func TestGetFallsBackToConfiguredSyslog(t *testing.T) {
	path := writeLogFixture(t, 5)
	svc := NewService(path)

	out, err := svc.Get(context.Background(), "", 5)
	require.NoError(t, err)
	assert.Contains(t, out, "entry 5")
}

func TestGetMissingFile(t *testing.T) {
	svc := NewService("")

	_, err := svc.Get(context.Background(), filepath.Join(t.TempDir(), "absent.log"), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log file not found")
}
