package driven

import (
	"context"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

// Extractor converts a raw file into text segments with source metadata.
// Each extractor handles specific file extensions (e.g. .pdf, .docx).
type Extractor interface {
	// Extensions returns the lowercase file extensions this extractor
	// handles, including the leading dot.
	Extensions() []string

	// Extract reads the file and returns its text as one or more segments.
	// Returns domain.ErrExtraction when no usable text could be recovered.
	Extract(ctx context.Context, path string) ([]domain.Segment, error)
}

// ExtractorRegistry selects the extractor for a file path.
// Adding a format means registering an extractor, not growing a conditional.
type ExtractorRegistry interface {
	// ForPath returns the extractor for the path's extension.
	// Returns domain.ErrUnsupportedFormat when none is registered.
	ForPath(path string) (Extractor, error)

	// Extract selects the extractor for the path and runs it, applying
	// the uniform rule that a segment without a source is attributed to
	// the file it came from.
	Extract(ctx context.Context, path string) ([]domain.Segment, error)
}
