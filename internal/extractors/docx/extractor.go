// Package docx extracts text from Word documents.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles DOCX documents.
// It attempts a structured paragraph-aware parse of word/document.xml
// first; when that fails it falls back to a naive scrape of the raw
// text runs concatenated into a single segment.
type Extractor struct{}

// New creates a new DOCX extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extensions returns the file extensions this extractor handles.
func (e *Extractor) Extensions() []string {
	return []string{".docx"}
}

// Extract reads the document and returns its text as one segment.
func (e *Extractor) Extract(_ context.Context, path string) ([]domain.Segment, error) {
	xmlData, err := readDocumentXML(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrExtraction, path, err)
	}

	content, err := parseStructured(xmlData)
	if err != nil {
		logger.Warn("Structured DOCX parse failed for %s, falling back to naive scrape: %v", path, err)
		content = scrapeTextRuns(xmlData)
	}

	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: %s contains no text", domain.ErrExtraction, path)
	}

	return []domain.Segment{{Text: content, Source: path}}, nil
}

// readDocumentXML opens the DOCX ZIP archive and returns the raw bytes
// of word/document.xml.
func readDocumentXML(path string) ([]byte, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("word/document.xml not found")
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseStructured extracts text paragraph by paragraph.
func parseStructured(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", fmt.Errorf("unmarshal document.xml: %w", err)
	}
	if len(doc.Body.Paragraphs) == 0 {
		return "", fmt.Errorf("no paragraphs found")
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, r := range para.Runs {
			for _, t := range r.Text {
				result.WriteString(t.Content)
			}
		}
	}
	return result.String(), nil
}

// textRunPattern matches the content of <w:t> elements.
var textRunPattern = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// scrapeTextRuns is the naive fallback: it collects every raw text run
// in document order and joins them with newlines, losing paragraph
// structure but salvaging the text.
func scrapeTextRuns(content []byte) string {
	matches := textRunPattern.FindAllSubmatch(content, -1)
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, string(m[1]))
	}
	return strings.Join(parts, "\n")
}
