package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockEmbedder implements driven.EmbeddingService for testing.
type mockEmbedder struct {
	embedding []float32
	embedErr  error
	calls     int
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return m.embedding, nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = m.embedding
	}
	return result, nil
}

func (m *mockEmbedder) Dimensions() int { return len(m.embedding) }

func (m *mockEmbedder) ModelName() string { return "mock-embed" }

func (m *mockEmbedder) Ping(_ context.Context) error { return nil }

func (m *mockEmbedder) Close() error { return nil }

// mockLLM implements driven.LLMService and records every prompt.
type mockLLM struct {
	response    string
	generateErr error
	prompts     []string
}

func (m *mockLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.generateErr != nil {
		return "", m.generateErr
	}
	return m.response, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

func (m *mockLLM) Ping(_ context.Context) error { return nil }

func (m *mockLLM) Close() error { return nil }

// mockIndex implements driven.Index over a fixed chunk list.
// Search returns the configured hits regardless of the query.
type mockIndex struct {
	chunks      []domain.Chunk
	hits        []driven.Hit
	searchErr   error
	searchCalls int
}

func (m *mockIndex) Len() int { return len(m.chunks) }

func (m *mockIndex) Dimensions() int { return 4 }

func (m *mockIndex) ModelName() string { return "mock-embed" }

func (m *mockIndex) Chunks(n int) []domain.Chunk {
	if n <= 0 || n > len(m.chunks) {
		n = len(m.chunks)
	}
	return m.chunks[:n]
}

func (m *mockIndex) Search(_ []float32, k int) ([]driven.Hit, error) {
	m.searchCalls++
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	if k > len(m.hits) || k <= 0 {
		k = len(m.hits)
	}
	return m.hits[:k], nil
}

// mockStore implements driven.IndexStore.
type mockStore struct {
	loadIndex  driven.Index
	loadErr    error
	buildIndex driven.Index
	buildErr   error
	built      []domain.Chunk
}

func (m *mockStore) Build(_ context.Context, chunks []domain.Chunk) (driven.Index, error) {
	m.built = chunks
	if m.buildErr != nil {
		return nil, m.buildErr
	}
	if m.buildIndex != nil {
		return m.buildIndex, nil
	}
	hits := make([]driven.Hit, len(chunks))
	for i, c := range chunks {
		hits[i] = driven.Hit{Chunk: c, Score: 1}
	}
	return &mockIndex{chunks: chunks, hits: hits}, nil
}

func (m *mockStore) Load(_ context.Context) (driven.Index, error) {
	return m.loadIndex, m.loadErr
}

// mockRegistry implements driven.ExtractorRegistry with canned
// per-path segments or errors, keyed by base name.
type mockRegistry struct {
	segments map[string][]domain.Segment
	errs     map[string]error
}

func (m *mockRegistry) ForPath(_ string) (driven.Extractor, error) {
	return nil, fmt.Errorf("%w: mock has no extractors", domain.ErrUnsupportedFormat)
}

func (m *mockRegistry) Extract(_ context.Context, path string) ([]domain.Segment, error) {
	base := path[strings.LastIndex(path, "/")+1:]
	if err, ok := m.errs[base]; ok {
		return nil, err
	}
	if segs, ok := m.segments[base]; ok {
		out := make([]domain.Segment, len(segs))
		copy(out, segs)
		for i := range out {
			if out[i].Source == "" {
				out[i].Source = path
			}
		}
		return out, nil
	}
	return nil, domain.ErrExtraction
}

// mockSplitter implements driven.Splitter, one chunk per segment.
type mockSplitter struct{}

func (mockSplitter) Split(segments []domain.Segment) []domain.Chunk {
	chunks := make([]domain.Chunk, len(segments))
	for i, seg := range segments {
		chunks[i] = domain.Chunk{
			ID:      fmt.Sprintf("chunk-%d", i),
			Source:  seg.Source,
			Page:    seg.Page,
			Ordinal: i,
			Text:    seg.Text,
		}
	}
	return chunks
}

// mockPrompts implements driven.PromptStore with minimal templates.
type mockPrompts struct {
	loadErr error
}

func (m *mockPrompts) Load(name string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	switch name {
	case driven.PromptQA:
		return "CONTEXT: %s QUESTION: %s", nil
	case driven.PromptAudit:
		return "AUDIT: %s", nil
	case driven.PromptClauseDraft:
		return "DRAFT: %s", nil
	default:
		return "", fmt.Errorf("unknown prompt %q", name)
	}
}

// loadedSession returns a session whose active index is idx.
func loadedSession(idx driven.Index) *ReviewSession {
	s := NewReviewSession(&mockStore{})
	s.Replace(idx)
	return s
}
