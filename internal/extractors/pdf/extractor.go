// Package pdf extracts text from PDF documents.
//
// Primary extraction shells out to pdftotext (poppler). When the text
// layer yields fewer than a configurable minimum of characters (the
// signature of a scanned, image-only PDF) and an OCR backend is
// available, the direct result is discarded and every page is
// rasterised and OCR'd instead.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// DefaultMinTextChars is the minimum aggregate character count below
// which direct extraction is considered near-empty. A heuristic, tuned
// via configuration rather than relied on exactly.
const DefaultMinTextChars = 40

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// Extractor handles PDF documents.
type Extractor struct {
	runner       driven.CommandRunner
	ocr          *OCR
	minTextChars int
}

// Option configures the PDF extractor.
type Option func(*Extractor)

// WithRunner substitutes the command runner. Used by tests.
func WithRunner(r driven.CommandRunner) Option {
	return func(e *Extractor) { e.runner = r }
}

// WithOCR enables the OCR fallback.
func WithOCR(o *OCR) Option {
	return func(e *Extractor) { e.ocr = o }
}

// WithMinTextChars sets the near-empty extraction threshold.
func WithMinTextChars(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.minTextChars = n
		}
	}
}

// New creates a new PDF extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		runner:       ExecRunner{},
		minTextChars: DefaultMinTextChars,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".pdf"}
}

// Extract attempts direct text-layer extraction, falling back to OCR
// when the result is near-empty and OCR is available.
func (e *Extractor) Extract(ctx context.Context, path string) ([]domain.Segment, error) {
	out, err := e.runner.Run(ctx, "pdftotext", "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		if e.ocr != nil {
			logger.Info("pdftotext failed for %s, trying OCR: %v", path, err)
			return e.ocr.Extract(ctx, path)
		}
		return nil, fmt.Errorf("pdftotext failed: %w", err)
	}

	text := string(out)
	extracted := len(strings.TrimSpace(text))

	if extracted < e.minTextChars && e.ocr != nil {
		logger.Info("Direct extraction of %s yielded %d chars, running OCR", path, extracted)
		return e.ocr.Extract(ctx, path)
	}

	if extracted == 0 {
		return nil, fmt.Errorf("%w: %s has no text layer and OCR is unavailable", domain.ErrExtraction, path)
	}

	return []domain.Segment{{Text: text, Source: path}}, nil
}

// CheckAvailable verifies pdftotext is installed.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions returns guidance for installing the PDF tooling.
func InstallInstructions() string {
	return `PDF support requires pdftotext from poppler:
  macOS:  brew install poppler
  Linux:  apt install poppler-utils
OCR fallback for scanned PDFs additionally requires tesseract:
  macOS:  brew install tesseract
  Linux:  apt install tesseract-ocr`
}
