package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a file extension no extractor handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtraction indicates both primary extraction and the OCR
	// fallback produced no usable text for a file.
	ErrExtraction = errors.New("no usable text extracted")

	// ErrEmptyCorpus indicates an ingestion batch where zero files
	// yielded usable segments. Per-file failures alone do not raise it.
	ErrEmptyCorpus = errors.New("no documents could be ingested")

	// ErrEmptyQuestion indicates a blank or whitespace-only question.
	// Raised before any retrieval or LLM call.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrNoIndex indicates no index has been built or loaded yet.
	// The caller should prompt for ingestion.
	ErrNoIndex = errors.New("no index available")

	// ErrEmbeddingService wraps failures at the embedding service boundary.
	ErrEmbeddingService = errors.New("embedding service error")

	// ErrLLMService wraps failures at the LLM service boundary.
	ErrLLMService = errors.New("LLM service error")

	// ErrIndexCorrupt indicates persisted index data exists but is
	// unreadable or schema-mismatched. Loading treats it as absent,
	// never as fatal.
	ErrIndexCorrupt = errors.New("persisted index unreadable")

	// ErrDimensionMismatch indicates a query embedding whose size differs
	// from the dimensionality the index was built with. This is a fatal
	// configuration error, not a silent truncation.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrOCRUnavailable indicates the OCR toolchain is not installed.
	// Detected at startup; disables the PDF OCR fallback.
	ErrOCRUnavailable = errors.New("OCR tools unavailable")
)
