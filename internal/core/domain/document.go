package domain

// Segment represents a run of text produced by an extractor.
// A file yields one or more segments (e.g. one per OCR'd page).
// Segments are immutable once created.
type Segment struct {
	// Text is the extracted text content.
	Text string

	// Source is the path of the file the text came from.
	Source string

	// Page is the 1-based page number for paginated formats.
	// Zero means the segment is not page-scoped.
	Page int
}

// Chunk represents a searchable unit split from a segment.
// Chunks are the unit of embedding and retrieval.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Source is the path of the originating file, inherited from the segment.
	Source string

	// Page is the segment's page number (0 when not page-scoped).
	Page int

	// Ordinal is the chunk's position in ingestion order across the
	// whole corpus. Used as a deterministic tie-break in retrieval.
	Ordinal int

	// Text is the chunk content.
	Text string
}

// SourceRef cites a chunk that grounded an answer.
type SourceRef struct {
	// Source is the originating file path.
	Source string `json:"source"`

	// Page is the page number, if known.
	Page int `json:"page,omitempty"`

	// Preview is a bounded excerpt of the chunk text. When the chunk
	// was longer than the preview limit it ends with a truncation marker.
	Preview string `json:"preview"`
}

// Answer is the result of a grounded question-answering call.
type Answer struct {
	// Text is the LLM's answer.
	Text string `json:"answer"`

	// Sources lists every chunk used to ground the answer.
	Sources []SourceRef `json:"sources"`
}
