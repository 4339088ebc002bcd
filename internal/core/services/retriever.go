package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// DefaultRetrievalK is the number of chunks retrieved per question.
const DefaultRetrievalK = 4

// Retriever embeds a query and searches the session's index.
// It is the single retrieval path shared by QA and auditing.
type Retriever struct {
	session  *ReviewSession
	embedder driven.EmbeddingService
	k        int
}

// RetrieverOption configures a Retriever.
type RetrieverOption func(*Retriever)

// WithRetrievalK overrides the default number of retrieved chunks.
func WithRetrievalK(k int) RetrieverOption {
	return func(r *Retriever) {
		if k > 0 {
			r.k = k
		}
	}
}

// NewRetriever creates a retriever over the session and embedding service.
func NewRetriever(session *ReviewSession, embedder driven.EmbeddingService, opts ...RetrieverOption) *Retriever {
	r := &Retriever{
		session:  session,
		embedder: embedder,
		k:        DefaultRetrievalK,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// K returns the configured number of retrieved chunks.
func (r *Retriever) K() int {
	return r.k
}

// Retrieve returns up to k chunks most similar to the query, most
// similar first. A blank query returns no results without touching the
// embedding service. Fails with domain.ErrNoIndex when nothing is
// indexed.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]driven.Hit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		logger.Debug("Blank query, returning no results")
		return nil, nil
	}

	index := r.session.Index()
	if index == nil || index.Len() == 0 {
		return nil, domain.ErrNoIndex
	}

	if k <= 0 {
		k = r.k
	}

	logger.Debug("Retrieving top %d for query %q", k, query)

	embedding, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := index.Search(embedding, k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	logger.Debug("Retrieved %d chunks", len(hits))
	return hits, nil
}
