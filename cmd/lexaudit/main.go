// Command lexaudit reviews legal documents: it ingests contracts,
// answers questions grounded in their text, and audits them for risky
// or missing clauses.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/lexaudit-cli/internal/adapters/driven/ai"
	configfile "github.com/custodia-labs/lexaudit-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/lexaudit-cli/internal/adapters/driven/index/sqlite"
	"github.com/custodia-labs/lexaudit-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/lexaudit-cli/internal/core/services"
	"github.com/custodia-labs/lexaudit-cli/internal/extractors"
	"github.com/custodia-labs/lexaudit-cli/internal/extractors/docx"
	"github.com/custodia-labs/lexaudit-cli/internal/extractors/pdf"
	"github.com/custodia-labs/lexaudit-cli/internal/extractors/plaintext"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
	"github.com/custodia-labs/lexaudit-cli/internal/splitter"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	// API keys may live in a .env file next to the binary.
	_ = godotenv.Load()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	cfg, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	prompts, err := configfile.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("init prompts: %w", err)
	}

	catalogue, err := configfile.LoadCatalogue(cfg.ClauseFile)
	if err != nil {
		return fmt.Errorf("load clause catalogue: %w", err)
	}

	embedder, err := ai.CreateEmbeddingService(cfg.EmbeddingSettings())
	if err != nil {
		return fmt.Errorf("create embedding service: %w", err)
	}
	if embedder != nil {
		defer embedder.Close()
	}

	llm, err := ai.CreateLLMService(cfg.LLMSettings())
	if err != nil {
		return fmt.Errorf("create LLM service: %w", err)
	}
	if llm != nil {
		defer llm.Close()
	}

	ocrErr := pdf.CheckOCRAvailable()
	cli.SetOCRStatus(ocrErr)
	if ocrErr != nil {
		logger.Debug("OCR disabled: %v", ocrErr)
	}

	cli.SetVersion(version)

	if embedder == nil {
		// Without an embedding service there is nothing to index or
		// search. version and status still work; the other commands
		// explain what is missing.
		logger.Warn("Embedding service not configured; set %s or configure ollama in %s",
			"OPENAI_API_KEY", configStore.Path())
		return cli.Execute()
	}

	store, err := sqlite.NewStore(cfg.PersistDir, embedder)
	if err != nil {
		return fmt.Errorf("init index store: %w", err)
	}

	session := services.NewReviewSession(store)
	if err := session.Init(context.Background()); err != nil {
		return fmt.Errorf("load index: %w", err)
	}
	cli.SetSession(session)

	pdfOpts := []pdf.Option{pdf.WithMinTextChars(cfg.OCRMinTextChars)}
	if ocrErr == nil {
		pdfOpts = append(pdfOpts, pdf.WithOCR(pdf.NewOCR(nil, cfg.OCRDPI)))
	}
	registry := extractors.NewRegistry(
		plaintext.New(),
		docx.New(),
		pdf.New(pdfOpts...),
	)

	split := splitter.New(
		splitter.WithChunkSize(cfg.ChunkSize),
		splitter.WithChunkOverlap(cfg.ChunkOverlap),
	)

	cli.SetIngestService(services.NewIngestService(
		session, registry, split,
		services.WithUploadDir(cfg.UploadDir),
	))

	retriever := services.NewRetriever(session, embedder,
		services.WithRetrievalK(cfg.RetrievalK))

	if llm != nil {
		cli.SetQAService(services.NewQAService(retriever, llm, prompts))
		cli.SetAuditService(services.NewAuditService(
			session, retriever, llm, prompts,
			services.WithCatalogue(catalogue),
			services.WithAuditSampleK(cfg.AuditSampleK),
		))
	} else {
		logger.Warn("LLM service not configured; 'ask' and 'audit' are disabled")
	}

	return cli.Execute()
}
