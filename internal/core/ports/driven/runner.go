package driven

import "context"

// CommandRunner executes an external binary and returns its stdout.
// Extractors use it to shell out to pdftotext, pdftoppm and tesseract;
// tests substitute a mock.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
