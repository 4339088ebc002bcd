// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Extractor: Converts a file into text segments
//   - ExtractorRegistry: Selects the extractor for a file
//   - Splitter: Splits segments into overlapping chunks
//   - EmbeddingService: Generates vector embeddings
//   - IndexStore: Builds, persists and reloads the vector index
//
// # Optional Interfaces
//
// These enable additional features when provided:
//
//   - LLMService: Question answering and narrative audits
//   - PromptStore: User-customisable prompt templates
//   - CommandRunner: External binary execution (pdftotext, tesseract)
package driven
