package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

func TestStatusCmd_Use(t *testing.T) {
	assert.Equal(t, "status", statusCmd.Use)
}

func TestStatusCmd_WithLoadedIndex(t *testing.T) {
	idx := &fakeIndex{n: 120, dims: 1536, model: "text-embedding-3-small"}
	cleanup := setupTestServices(nil, nil, nil, sessionWith(idx))
	defer cleanup()
	SetOCRStatus(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"status"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Index: loaded")
	assert.Contains(t, out, "Chunks:     120")
	assert.Contains(t, out, "Dimensions: 1536")
	assert.Contains(t, out, "text-embedding-3-small")
	assert.Contains(t, out, "OCR: available")
}

func TestStatusCmd_WithoutSession(t *testing.T) {
	cleanup := setupTestServices(nil, nil, nil, nil)
	defer cleanup()
	SetOCRStatus(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"status"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Index: unavailable")
}

func TestStatusCmd_WithoutIndex(t *testing.T) {
	cleanup := setupTestServices(nil, nil, nil, sessionWith(nil))
	defer cleanup()
	SetOCRStatus(domain.ErrOCRUnavailable)
	defer SetOCRStatus(nil)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"status"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Index: none")
	assert.Contains(t, out, "OCR: unavailable")
}
