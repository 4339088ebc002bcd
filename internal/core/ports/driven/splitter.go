package driven

import "github.com/custodia-labs/lexaudit-cli/internal/core/domain"

// Splitter subdivides extracted segments into overlapping chunks.
// Deterministic for a given configuration: the same segments always
// yield the same chunk boundaries.
type Splitter interface {
	// Split returns the chunks for the given segments, in segment order.
	// Source and page metadata is copied unchanged from each parent
	// segment to every chunk derived from it.
	Split(segments []domain.Segment) []domain.Chunk
}
