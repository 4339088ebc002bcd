// Package splitter provides overlapping fixed-size text chunking.
package splitter

import (
	"github.com/google/uuid"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// separators is the split priority: paragraph breaks, then line breaks,
// then spaces. A chunk is only cut mid-token when none of these occur
// inside the target window.
var separators = []string{"\n\n", "\n", " "}

// Ensure Splitter implements the interface.
var _ driven.Splitter = (*Splitter)(nil)

// Splitter splits segment text into overlapping chunks.
// Boundaries are chosen on a recursive priority of separators so that
// semantic boundaries are preserved when possible. Each chunk starts
// exactly chunkOverlap characters before the previous chunk's end, so a
// known amount of context carries between adjacent chunks.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithChunkOverlap sets the overlap between chunks in characters.
func WithChunkOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a new splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't exceed chunk size
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// Split returns the chunks for the given segments, in segment order.
// Source and page metadata is copied unchanged from each parent segment.
// Ordinals number chunks consecutively across the whole batch.
func (s *Splitter) Split(segments []domain.Segment) []domain.Chunk {
	var chunks []domain.Chunk
	ordinal := 0

	for _, seg := range segments {
		for _, text := range s.splitText(seg.Text) {
			chunks = append(chunks, domain.Chunk{
				ID:      uuid.New().String(),
				Source:  seg.Source,
				Page:    seg.Page,
				Ordinal: ordinal,
				Text:    text,
			})
			ordinal++
		}
	}

	return chunks
}

// splitText cuts text into pieces of at most chunkSize characters.
// Operates on runes so multi-byte characters are never torn apart.
func (s *Splitter) splitText(text string) []string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return nil
	}
	if n <= s.chunkSize {
		return []string{text}
	}

	var pieces []string
	start := 0
	for start < n {
		end := start + s.chunkSize
		if end >= n {
			pieces = append(pieces, string(runes[start:]))
			break
		}
		end = s.boundary(runes, start, end)
		pieces = append(pieces, string(runes[start:end]))
		start = end - s.overlap
	}
	return pieces
}

// boundary finds the best cut position at or before end. It tries each
// separator in priority order, taking the latest occurrence that still
// leaves the next chunk strictly advancing past the overlap region.
// Returns end unchanged (a hard mid-token split) when no separator fits.
func (s *Splitter) boundary(runes []rune, start, end int) int {
	floor := start + s.overlap + 1
	for _, sep := range separators {
		if cut := lastSeparatorEnd(runes, floor, end, []rune(sep)); cut > 0 {
			return cut
		}
	}
	return end
}

// lastSeparatorEnd returns the largest i in [floor, end] such that sep
// ends exactly at i, or 0 when sep does not occur in the window.
func lastSeparatorEnd(runes []rune, floor, end int, sep []rune) int {
	for i := end; i >= floor && i >= len(sep); i-- {
		if matchAt(runes, i-len(sep), sep) {
			return i
		}
	}
	return 0
}

func matchAt(runes []rune, at int, sep []rune) bool {
	if at < 0 {
		return false
	}
	for j, r := range sep {
		if runes[at+j] != r {
			return false
		}
	}
	return true
}
