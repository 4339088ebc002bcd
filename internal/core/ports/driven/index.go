package driven

import (
	"context"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

// Hit is a similarity search result.
type Hit struct {
	// Chunk is the matched chunk.
	Chunk domain.Chunk

	// Score is the cosine similarity against the query (higher is closer).
	Score float64
}

// Index is an immutable-once-built vector index over a chunk corpus.
// Chunks are addressable in insertion order, which doubles as the
// deterministic tie-break for equal similarity scores.
type Index interface {
	// Len returns the number of indexed chunks.
	Len() int

	// Dimensions returns the embedding size the index was built with.
	Dimensions() int

	// ModelName returns the embedding model the index was built with.
	ModelName() string

	// Chunks returns up to n chunks in insertion order.
	// n <= 0 or n > Len returns all chunks.
	Chunks(n int) []domain.Chunk

	// Search returns the k most similar chunks to the query vector,
	// most similar first. Fewer than k indexed chunks returns all of
	// them. A query of the wrong size fails with
	// domain.ErrDimensionMismatch.
	Search(query []float32, k int) ([]Hit, error)
}

// IndexStore owns the persisted vector index lifecycle: a full-corpus
// build atomically replaces any prior index at the configured location,
// and loading across restarts degrades to absent rather than failing.
type IndexStore interface {
	// Build embeds the chunks, constructs an index, and persists it,
	// atomically replacing any prior persisted index.
	// Fails with domain.ErrEmptyCorpus when chunks is empty.
	Build(ctx context.Context, chunks []domain.Chunk) (Index, error)

	// Load reloads the persisted index. Returns (nil, nil) when no
	// persisted index exists, and logs and returns (nil, nil) when
	// persisted data is unreadable or schema-mismatched, so callers
	// can recover by prompting for re-ingestion.
	Load(ctx context.Context) (Index, error)
}
