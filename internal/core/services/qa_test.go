package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

func newQAFixture(idx *mockIndex) (*QAService, *mockEmbedder, *mockLLM) {
	embedder := &mockEmbedder{embedding: []float32{1, 0, 0, 0}}
	llm := &mockLLM{response: "  The contract terminates after 30 days.  "}
	retriever := NewRetriever(loadedSession(idx), embedder)
	return NewQAService(retriever, llm, &mockPrompts{}), embedder, llm
}

func TestQAService_EmptyQuestion(t *testing.T) {
	qa, embedder, llm := newQAFixture(testIndexWithHits())

	for _, question := range []string{"", "   ", "\t\n"} {
		_, err := qa.Answer(context.Background(), question)
		require.ErrorIs(t, err, domain.ErrEmptyQuestion)
	}

	assert.Zero(t, embedder.calls, "empty question must not reach the embedding service")
	assert.Empty(t, llm.prompts, "empty question must not reach the LLM")
}

func TestQAService_NoIndex(t *testing.T) {
	embedder := &mockEmbedder{embedding: []float32{1, 0, 0, 0}}
	llm := &mockLLM{response: "irrelevant"}
	retriever := NewRetriever(NewReviewSession(&mockStore{}), embedder)
	qa := NewQAService(retriever, llm, &mockPrompts{})

	_, err := qa.Answer(context.Background(), "When does the contract terminate?")

	require.ErrorIs(t, err, domain.ErrNoIndex)
	assert.Empty(t, llm.prompts)
}

func TestQAService_GroundedAnswer(t *testing.T) {
	qa, _, llm := newQAFixture(testIndexWithHits())

	answer, err := qa.Answer(context.Background(), "When does the contract terminate?")

	require.NoError(t, err)
	assert.Equal(t, "The contract terminates after 30 days.", answer.Text)

	require.Len(t, answer.Sources, 2)
	assert.Equal(t, "a.txt", answer.Sources[0].Source)
	assert.Equal(t, "termination clause", answer.Sources[0].Preview)

	require.Len(t, llm.prompts, 1)
	prompt := llm.prompts[0]
	assert.Contains(t, prompt, "termination clause")
	assert.Contains(t, prompt, "payment terms")
	assert.Contains(t, prompt, "When does the contract terminate?")
}

func TestQAService_PreviewsAreBounded(t *testing.T) {
	long := strings.Repeat("x", 1000)
	idx := testIndexWithHits()
	idx.hits[0].Chunk.Text = long
	qa, _, _ := newQAFixture(idx)

	answer, err := qa.Answer(context.Background(), "anything?")

	require.NoError(t, err)
	preview := answer.Sources[0].Preview
	assert.Len(t, []rune(preview), previewRunes+3)
	assert.True(t, strings.HasSuffix(preview, "..."))
}

func TestQAService_ShortChunkPreviewKeptWhole(t *testing.T) {
	qa, _, _ := newQAFixture(testIndexWithHits())

	answer, err := qa.Answer(context.Background(), "anything?")

	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(answer.Sources[1].Preview, "..."))
}

func TestQAService_LLMErrorPropagates(t *testing.T) {
	qa, _, llm := newQAFixture(testIndexWithHits())
	llm.generateErr = domain.ErrLLMService

	_, err := qa.Answer(context.Background(), "When does the contract terminate?")

	require.ErrorIs(t, err, domain.ErrLLMService)
}

func TestPreview(t *testing.T) {
	t.Run("under limit returned unchanged", func(t *testing.T) {
		assert.Equal(t, "short", preview("short", 10))
	})

	t.Run("exactly at limit returned unchanged", func(t *testing.T) {
		assert.Equal(t, "12345", preview("12345", 5))
	})

	t.Run("over limit truncated with marker", func(t *testing.T) {
		assert.Equal(t, "12345...", preview("1234567", 5))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		assert.Equal(t, "héllo", preview("héllo", 5))
	})
}
