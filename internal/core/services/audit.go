package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// Ensure AuditService implements the interface.
var _ driving.AuditService = (*AuditService)(nil)

// Audit tuning defaults.
const (
	// DefaultKeywordK is how many chunks the keyword pass retrieves
	// per clause.
	DefaultKeywordK = 6

	// DefaultAuditSampleK is how many chunks the narrative pass sends
	// to the LLM.
	DefaultAuditSampleK = 50

	// snippetRadius bounds the excerpt around a matched keyword.
	snippetRadius = 120

	// emptyIndexNarrative is reported when the index holds no chunks.
	emptyIndexNarrative = "No documents have been ingested. Ingest documents before running an audit."
)

// AuditService audits the indexed corpus for clause coverage: a
// deterministic keyword pass per catalogue clause and an LLM narrative
// pass over a corpus sample.
type AuditService struct {
	session   *ReviewSession
	retriever *Retriever
	llm       driven.LLMService
	prompts   driven.PromptStore
	catalogue domain.Catalogue
	keywordK  int
	sampleK   int
}

// AuditOption configures an AuditService.
type AuditOption func(*AuditService)

// WithCatalogue replaces the default clause catalogue.
func WithCatalogue(catalogue domain.Catalogue) AuditOption {
	return func(s *AuditService) {
		if len(catalogue) > 0 {
			s.catalogue = catalogue
		}
	}
}

// WithKeywordK overrides how many chunks the keyword pass retrieves
// per clause.
func WithKeywordK(k int) AuditOption {
	return func(s *AuditService) {
		if k > 0 {
			s.keywordK = k
		}
	}
}

// WithAuditSampleK overrides how many chunks the narrative pass samples.
func WithAuditSampleK(k int) AuditOption {
	return func(s *AuditService) {
		if k > 0 {
			s.sampleK = k
		}
	}
}

// NewAuditService creates an audit service with the default catalogue.
func NewAuditService(
	session *ReviewSession,
	retriever *Retriever,
	llm driven.LLMService,
	prompts driven.PromptStore,
	opts ...AuditOption,
) *AuditService {
	s := &AuditService{
		session:   session,
		retriever: retriever,
		llm:       llm,
		prompts:   prompts,
		catalogue: domain.DefaultCatalogue(),
		keywordK:  DefaultKeywordK,
		sampleK:   DefaultAuditSampleK,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Audit runs both passes and merges them into one report. An empty
// index short-circuits to an explanatory report without touching the
// embedding or LLM services.
func (s *AuditService) Audit(ctx context.Context, opts driving.AuditOptions) (*domain.AuditReport, error) {
	logger.Section("Clause Audit")

	index := s.session.Index()
	if index == nil || index.Len() == 0 {
		logger.Info("Index is empty, skipping audit passes")
		return &domain.AuditReport{
			Findings:  map[string]domain.ClauseFinding{},
			Narrative: emptyIndexNarrative,
			Empty:     true,
		}, nil
	}

	report := &domain.AuditReport{
		Findings: make(map[string]domain.ClauseFinding, len(s.catalogue)),
	}

	logger.Info("Keyword pass: %d clauses, %d chunks each", len(s.catalogue), s.keywordK)
	for _, clause := range s.catalogue {
		hits, err := s.retriever.Retrieve(ctx, clause.Name, s.keywordK)
		if err != nil {
			return nil, fmt.Errorf("retrieve for clause %q: %w", clause.Name, err)
		}
		report.Findings[clause.Name] = scanClause(clause, hits)
	}

	narrative, err := s.narrativePass(ctx, index)
	if err != nil {
		return nil, err
	}
	report.Narrative = narrative

	if opts.DraftMissing {
		drafts, err := s.draftMissing(ctx, report)
		if err != nil {
			return nil, err
		}
		report.Drafts = drafts
	}

	return report, nil
}

// narrativePass asks the LLM for a free-text audit over a sample of
// the indexed corpus.
func (s *AuditService) narrativePass(ctx context.Context, index driven.Index) (string, error) {
	sample := index.Chunks(s.sampleK)
	logger.Info("Narrative pass: sampling %d of %d chunks", len(sample), index.Len())

	parts := make([]string, 0, len(sample))
	for _, chunk := range sample {
		parts = append(parts, chunk.Text)
	}

	template, err := s.prompts.Load(driven.PromptAudit)
	if err != nil {
		return "", fmt.Errorf("load prompt: %w", err)
	}
	prompt := fmt.Sprintf(template, strings.Join(parts, chunkSeparator))

	narrative, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   2048,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(narrative), nil
}

// draftMissing asks the LLM for a suggested draft of every clause the
// keyword pass marked missing.
func (s *AuditService) draftMissing(ctx context.Context, report *domain.AuditReport) (map[string]string, error) {
	missing := report.MissingClauses(s.catalogue)
	if len(missing) == 0 {
		return nil, nil
	}

	logger.Info("Drafting %d missing clause(s)", len(missing))

	template, err := s.prompts.Load(driven.PromptClauseDraft)
	if err != nil {
		return nil, fmt.Errorf("load prompt: %w", err)
	}

	drafts := make(map[string]string, len(missing))
	for _, name := range missing {
		draft, err := s.llm.Generate(ctx, fmt.Sprintf(template, name), driven.GenerateOptions{
			MaxTokens:   1024,
			Temperature: 0,
		})
		if err != nil {
			return nil, fmt.Errorf("draft clause %q: %w", name, err)
		}
		drafts[name] = strings.TrimSpace(draft)
	}
	return drafts, nil
}

// scanClause scans retrieved chunks for the clause's keywords,
// case-insensitively. The first match wins: chunks in rank order,
// keywords in catalogue order within each chunk.
func scanClause(clause domain.Clause, hits []driven.Hit) domain.ClauseFinding {
	for _, hit := range hits {
		for _, keyword := range clause.Keywords {
			if excerpt, ok := clip(hit.Chunk.Text, keyword, snippetRadius); ok {
				return domain.ClauseFinding{
					Present: true,
					Snippet: excerpt,
					Source:  hit.Chunk.Source,
					Page:    hit.Chunk.Page,
				}
			}
		}
	}
	return domain.ClauseFinding{}
}

// clip returns a bounded excerpt of text centred on the first
// case-insensitive occurrence of keyword, or ok=false when keyword
// does not occur.
func clip(text, keyword string, radius int) (string, bool) {
	runes := []rune(text)
	needle := []rune(keyword)
	pos := indexFold(runes, needle)
	if pos < 0 {
		return "", false
	}

	start := pos - radius
	if start < 0 {
		start = 0
	}
	end := pos + len(needle) + radius
	if end > len(runes) {
		end = len(runes)
	}
	return strings.TrimSpace(string(runes[start:end])), true
}

// indexFold returns the index of the first case-insensitive occurrence
// of needle in haystack, or -1. Runes are folded one at a time, so the
// returned index is always a valid position in haystack (strings.ToLower
// can change the rune count, e.g. U+0130).
func indexFold(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		match := true
		for j := range needle {
			if unicode.ToLower(haystack[i+j]) != unicode.ToLower(needle[j]) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
