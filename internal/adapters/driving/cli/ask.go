package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the ingested documents",
	Long: `Retrieves the chunks most relevant to the question and asks the LLM
to answer strictly from them. Every answer cites its sources.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if qaService == nil {
		return errors.New("QA service not configured")
	}

	answer, err := qaService.Answer(context.Background(), args[0])
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuestion):
			return errors.New("question is empty")
		case errors.Is(err, domain.ErrNoIndex):
			return errors.New("no documents ingested yet; run 'lexaudit ingest' first")
		default:
			return fmt.Errorf("ask failed: %w", err)
		}
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)
	if len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for i, src := range answer.Sources {
			if src.Page > 0 {
				cmd.Printf("  [%d] %s (page %d)\n", i+1, src.Source, src.Page)
			} else {
				cmd.Printf("  [%d] %s\n", i+1, src.Source)
			}
			cmd.Printf("      %s\n", src.Preview)
		}
	}
	return nil
}
