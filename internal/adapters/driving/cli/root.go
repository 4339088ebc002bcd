// Package cli implements the lexaudit command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexaudit-cli/internal/core/services"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// version is set at build time via ldflags, or through SetVersion.
var version = "dev"

// Services injected by main before Execute.
var (
	ingestService driving.IngestService
	qaService     driving.QAService
	auditService  driving.AuditService
	session       *services.ReviewSession
	ocrErr        error
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lexaudit",
	Short: "Review legal documents from the command line",
	Long: `Lexaudit ingests contracts (PDF, DOCX, plain text), indexes them for
semantic retrieval, answers questions grounded in their text, and audits
them for risky or missing clauses.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetIngestService injects the ingestion service.
func SetIngestService(svc driving.IngestService) {
	ingestService = svc
}

// SetQAService injects the question-answering service.
func SetQAService(svc driving.QAService) {
	qaService = svc
}

// SetAuditService injects the audit service.
func SetAuditService(svc driving.AuditService) {
	auditService = svc
}

// SetSession injects the review session for status reporting.
func SetSession(s *services.ReviewSession) {
	session = s
}

// SetOCRStatus records whether the OCR toolchain was found at startup.
func SetOCRStatus(err error) {
	ocrErr = err
}
