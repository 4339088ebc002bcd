package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driving"
)

var (
	auditDraft bool
	auditJSON  bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the ingested documents for clause coverage",
	Long: `Runs two passes over the indexed documents:

1. A deterministic keyword pass that checks each catalogue clause
   (termination, governing law, confidentiality, ...) and cites where
   it was found.
2. An LLM narrative pass that reports risky, missing or ambiguous
   terms in plain language.

With --draft, the LLM also suggests wording for every missing clause.`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().BoolVar(&auditDraft, "draft", false, "draft wording for missing clauses")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	if auditService == nil {
		return errors.New("audit service not configured")
	}

	report, err := auditService.Audit(context.Background(), driving.AuditOptions{
		DraftMissing: auditDraft,
	})
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if auditJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printAuditReport(cmd, report)
	return nil
}

func printAuditReport(cmd *cobra.Command, report *domain.AuditReport) {
	if report.Empty {
		cmd.Println(report.Narrative)
		return
	}

	cmd.Println("Clause coverage:")
	for _, name := range sortedClauseNames(report.Findings) {
		finding := report.Findings[name]
		if finding.Present {
			location := finding.Source
			if finding.Page > 0 {
				location = fmt.Sprintf("%s, page %d", finding.Source, finding.Page)
			}
			cmd.Printf("  [x] %s (%s)\n", name, location)
			cmd.Printf("      ...%s...\n", finding.Snippet)
		} else {
			cmd.Printf("  [ ] %s - not found\n", name)
		}
	}

	cmd.Println()
	cmd.Println("Reviewer notes:")
	cmd.Println(report.Narrative)

	if len(report.Drafts) > 0 {
		cmd.Println()
		cmd.Println("Suggested drafts:")
		names := make([]string, 0, len(report.Drafts))
		for name := range report.Drafts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			cmd.Printf("\n--- %s ---\n%s\n", name, report.Drafts[name])
		}
	}
}

// sortedClauseNames returns finding names in a stable order.
func sortedClauseNames(findings map[string]domain.ClauseFinding) []string {
	names := make([]string, 0, len(findings))
	for name := range findings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
