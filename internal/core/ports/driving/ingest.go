package driving

import "context"

// IngestSummary reports the outcome of an ingestion batch.
type IngestSummary struct {
	// FilesIngested is the number of files that yielded segments.
	FilesIngested int

	// FilesSkipped lists files that failed extraction and were skipped.
	FilesSkipped []string

	// Chunks is the number of chunks in the rebuilt index.
	Chunks int
}

// IngestService turns files into a persisted, searchable index.
type IngestService interface {
	// Ingest stages the files into the upload directory, extracts and
	// chunks their text, and rebuilds the persisted index from scratch.
	// Per-file failures are logged and skipped; the batch fails with
	// domain.ErrEmptyCorpus only when zero files yielded segments.
	Ingest(ctx context.Context, paths []string) (*IngestSummary, error)
}
