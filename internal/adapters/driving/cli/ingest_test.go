package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driving"
)

func TestIngestCmd_Use(t *testing.T) {
	assert.Equal(t, "ingest <file>...", ingestCmd.Use)
}

func TestIngestCmd_RequiresAtLeastOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ingest"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestIngestCmd_PrintsSummary(t *testing.T) {
	fake := &fakeIngest{summary: &driving.IngestSummary{
		FilesIngested: 2,
		FilesSkipped:  []string{"scan.pdf"},
		Chunks:        42,
	}}
	cleanup := setupTestServices(fake, nil, nil, nil)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ingest", "a.txt", "b.docx", "scan.pdf"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.docx", "scan.pdf"}, fake.paths)
	out := buf.String()
	assert.Contains(t, out, "Ingested 2 file(s) into 42 chunks.")
	assert.Contains(t, out, "Skipped 1 file(s):")
	assert.Contains(t, out, "scan.pdf")
}

func TestIngestCmd_EmptyCorpusHasFriendlyError(t *testing.T) {
	cleanup := setupTestServices(&fakeIngest{err: domain.ErrEmptyCorpus}, nil, nil, nil)
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"ingest", "empty.txt"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable text")
}

func TestIngestCmd_ServiceNotConfigured(t *testing.T) {
	cleanup := setupTestServices(nil, nil, nil, nil)
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"ingest", "a.txt"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
