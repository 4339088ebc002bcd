package driving

import (
	"context"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

// AuditOptions configures an audit run.
type AuditOptions struct {
	// DraftMissing asks the LLM for a suggested draft of every clause
	// the keyword pass marked missing.
	DraftMissing bool
}

// AuditService audits the indexed corpus for clause coverage.
type AuditService interface {
	// Audit runs the deterministic keyword pass and the LLM narrative
	// pass and merges both into one report. An empty index
	// short-circuits to a "no documents" report without an LLM call.
	Audit(ctx context.Context, opts AuditOptions) (*domain.AuditReport, error)
}
