package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
)

func TestPromptStore_LoadsDefaults(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{driven.PromptQA, driven.PromptAudit, driven.PromptClauseDraft} {
		prompt, err := store.Load(name)
		require.NoError(t, err)
		assert.NotEmpty(t, prompt)
	}
}

func TestPromptStore_FirstLoadCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptQA)
	require.NoError(t, err)

	for _, name := range []string{driven.PromptQA, driven.PromptAudit, driven.PromptClauseDraft} {
		_, err := os.Stat(filepath.Join(dir, name+".txt"))
		assert.NoError(t, err, "expected %s.txt to be created", name)
	}
	_, err = os.Stat(filepath.Join(dir, "README.md"))
	assert.NoError(t, err)
}

func TestPromptStore_UserFileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	custom := "Answer tersely. Context: %s Question: %s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, driven.PromptQA+".txt"), []byte(custom), 0o600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptQA)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_UnknownPrompt(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")
	require.Error(t, err)
}

func TestPromptStore_ReloadPicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load(driven.PromptQA)
	require.NoError(t, err)

	edited := "edited %s %s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, driven.PromptQA+".txt"), []byte(edited), 0o600))

	store.Reload()
	prompt, err := store.Load(driven.PromptQA)
	require.NoError(t, err)
	assert.Equal(t, edited, prompt)
}

func TestPromptStore_Dir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())
}
