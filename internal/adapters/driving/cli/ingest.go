package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Ingest documents into the index",
	Long: `Extracts text from the given files (PDF, DOCX, TXT, MD), splits it
into overlapping chunks, and rebuilds the persisted vector index.
Scanned PDFs fall back to OCR when tesseract is installed.

Ingestion replaces the whole index: pass every document that should be
searchable.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	cmd.Printf("Ingesting %d file(s)...\n", len(args))

	summary, err := ingestService.Ingest(context.Background(), args)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCorpus) {
			return errors.New("no usable text found in any of the given files")
		}
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d file(s) into %d chunks.\n", summary.FilesIngested, summary.Chunks)
	if len(summary.FilesSkipped) > 0 {
		cmd.Printf("Skipped %d file(s):\n", len(summary.FilesSkipped))
		for _, path := range summary.FilesSkipped {
			cmd.Printf("  - %s\n", path)
		}
	}
	return nil
}
