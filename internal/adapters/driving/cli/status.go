package cli

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index and toolchain status",
	Long: `Reports whether a vector index is loaded, its size and embedding
model, and whether the OCR toolchain (pdftoppm + tesseract) is
available for scanned PDFs.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if session == nil {
		cmd.Println("Index: unavailable (embedding service not configured)")
		printOCRStatus(cmd)
		return nil
	}

	index := session.Index()
	if index == nil || index.Len() == 0 {
		cmd.Println("Index: none (run 'lexaudit ingest' to build one)")
	} else {
		cmd.Println("Index: loaded")
		cmd.Printf("  Chunks:     %d\n", index.Len())
		cmd.Printf("  Dimensions: %d\n", index.Dimensions())
		cmd.Printf("  Model:      %s\n", index.ModelName())
	}

	printOCRStatus(cmd)
	return nil
}

func printOCRStatus(cmd *cobra.Command) {
	if ocrErr != nil {
		cmd.Printf("OCR: unavailable (%v)\n", ocrErr)
	} else {
		cmd.Println("OCR: available")
	}
}
