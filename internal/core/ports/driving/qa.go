package driving

import (
	"context"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

// QAService answers free-text questions grounded in the indexed corpus.
type QAService interface {
	// Answer retrieves the most relevant chunks for the question and
	// asks the LLM to answer strictly from them. Fails with
	// domain.ErrEmptyQuestion for blank input, before any retrieval
	// or LLM call, and domain.ErrNoIndex when nothing is indexed.
	Answer(ctx context.Context, question string) (*domain.Answer, error)
}
