package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// Ensure QAService implements the interface.
var _ driving.QAService = (*QAService)(nil)

// previewRunes bounds the excerpt cited per source.
const previewRunes = 300

// chunkSeparator joins retrieved chunks into the grounding context.
const chunkSeparator = "\n\n---\n\n"

// QAService answers questions grounded strictly in retrieved chunks.
type QAService struct {
	retriever *Retriever
	llm       driven.LLMService
	prompts   driven.PromptStore
}

// NewQAService creates a question-answering service.
func NewQAService(retriever *Retriever, llm driven.LLMService, prompts driven.PromptStore) *QAService {
	return &QAService{
		retriever: retriever,
		llm:       llm,
		prompts:   prompts,
	}
}

// Answer retrieves the most relevant chunks for the question and asks
// the LLM to answer from them alone. Every retrieved chunk is cited as
// a source with a bounded preview.
func (s *QAService) Answer(ctx context.Context, question string) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, domain.ErrEmptyQuestion
	}

	logger.Section("Question Answering")
	logger.Debug("Question: %q", question)

	hits, err := s.retriever.Retrieve(ctx, question, 0)
	if err != nil {
		return nil, err
	}

	contextText := buildContext(hits)

	template, err := s.prompts.Load(driven.PromptQA)
	if err != nil {
		return nil, fmt.Errorf("load prompt: %w", err)
	}
	prompt := fmt.Sprintf(template, contextText, question)

	text, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   1024,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}

	answer := &domain.Answer{
		Text:    strings.TrimSpace(text),
		Sources: make([]domain.SourceRef, 0, len(hits)),
	}
	for _, hit := range hits {
		answer.Sources = append(answer.Sources, domain.SourceRef{
			Source:  hit.Chunk.Source,
			Page:    hit.Chunk.Page,
			Preview: preview(hit.Chunk.Text, previewRunes),
		})
	}

	logger.Debug("Answer grounded in %d source(s)", len(answer.Sources))
	return answer, nil
}

// buildContext concatenates retrieved chunk texts in rank order.
func buildContext(hits []driven.Hit) string {
	parts := make([]string, 0, len(hits))
	for _, hit := range hits {
		parts = append(parts, hit.Chunk.Text)
	}
	return strings.Join(parts, chunkSeparator)
}

// preview bounds text to limit runes, marking truncation.
func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
