package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSpecialFileMissing(t *testing.T) {
	_, err := ReadSpecialFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestReadSpecialFileRawText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain contents\nline two\n"), 0o644))

	out, err := ReadSpecialFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "plain contents\nline two\n", out)
}

func TestReadSpecialFileUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.conf")
	require.NoError(t, os.WriteFile(path, []byte("key=value"), 0o644))

	out, err := ReadSpecialFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "key=value", out)
}

func TestReadSpecialFileCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := ReadSpecialFile(context.Background(), path)
	assert.Error(t, err)
}

func TestReadSpecialFileCorruptWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := ReadSpecialFile(context.Background(), path)
	assert.Error(t, err)
}
