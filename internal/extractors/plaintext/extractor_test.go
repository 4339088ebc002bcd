package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

func TestExtensions(t *testing.T) {
	exts := New().Extensions()
	assert.Contains(t, exts, ".txt")
	assert.Contains(t, exts, ".md")
}

func TestExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.txt")
	content := "Governing law and jurisdiction of Delaware.\nSeverability applies."
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	segments, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, content, segments[0].Text)
	assert.Equal(t, path, segments[0].Source)
	assert.Zero(t, segments[0].Page)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestExtract_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n\t"), 0600))

	_, err := New().Extract(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestExtract_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0600))

	_, err := New().Extract(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}
