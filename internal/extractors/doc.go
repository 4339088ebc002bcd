// Package extractors provides file-type specific text extraction.
//
// Each subpackage implements driven.Extractor for one format family:
//
//   - plaintext: .txt and .md files read whole
//   - docx: Word documents, structured parse with a naive fallback
//   - pdf: pdftotext text layer with an OCR fallback for scanned pages
//
// The Registry dispatches by file extension. Adding a format means
// registering a new extractor, not modifying a conditional chain.
package extractors
