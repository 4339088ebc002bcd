package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// IngestService stages files, extracts and chunks their text, and
// rebuilds the persisted index from scratch.
type IngestService struct {
	session   *ReviewSession
	registry  driven.ExtractorRegistry
	splitter  driven.Splitter
	uploadDir string
}

// IngestOption configures an IngestService.
type IngestOption func(*IngestService)

// WithUploadDir stages input files into dir before extraction.
// Without it, files are extracted in place.
func WithUploadDir(dir string) IngestOption {
	return func(s *IngestService) {
		s.uploadDir = dir
	}
}

// NewIngestService creates an ingestion service.
func NewIngestService(
	session *ReviewSession,
	registry driven.ExtractorRegistry,
	splitter driven.Splitter,
	opts ...IngestOption,
) *IngestService {
	s := &IngestService{
		session:  session,
		registry: registry,
		splitter: splitter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ingest extracts the given files, rebuilds the index and persists it.
// Files that fail extraction are logged and skipped; the batch fails
// with domain.ErrEmptyCorpus only when no file yielded any text.
func (s *IngestService) Ingest(ctx context.Context, paths []string) (*driving.IngestSummary, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no files given", domain.ErrInvalidInput)
	}

	logger.Section("Ingestion")
	logger.Info("Ingesting %d file(s)", len(paths))

	summary := &driving.IngestSummary{}
	var segments []domain.Segment

	for _, path := range paths {
		staged, err := s.stage(path)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			summary.FilesSkipped = append(summary.FilesSkipped, path)
			continue
		}

		segs, err := s.registry.Extract(ctx, staged)
		if err != nil {
			logger.Warn("Skipping %s: %v", path, err)
			summary.FilesSkipped = append(summary.FilesSkipped, path)
			continue
		}

		logger.Debug("Extracted %d segment(s) from %s", len(segs), path)
		segments = append(segments, segs...)
		summary.FilesIngested++
	}

	if len(segments) == 0 {
		return nil, domain.ErrEmptyCorpus
	}

	chunks := s.splitter.Split(segments)
	logger.Info("Split into %d chunks", len(chunks))

	index, err := s.session.Store().Build(ctx, chunks)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	s.session.Replace(index)
	summary.Chunks = index.Len()

	logger.Info("Index rebuilt: %d chunks from %d file(s), %d skipped",
		summary.Chunks, summary.FilesIngested, len(summary.FilesSkipped))
	return summary, nil
}

// stage copies path into the upload directory and returns the staged
// path. Without an upload directory the original path is returned.
func (s *IngestService) stage(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("stat: %w", err)
	}

	if s.uploadDir == "" {
		return path, nil
	}

	if err := os.MkdirAll(s.uploadDir, 0o700); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	staged := filepath.Join(s.uploadDir, filepath.Base(path))
	if err := copyFile(path, staged); err != nil {
		return "", fmt.Errorf("stage file: %w", err)
	}

	logger.Debug("Staged %s to %s", path, staged)
	return staged, nil
}

// copyFile copies src to dst, replacing any existing file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return nil
}
