// Package domain defines the core business entities for Lexaudit.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Segment: A run of extracted text with its source metadata
//   - Chunk: A bounded subdivision of a segment, the unit of retrieval
//   - Answer: A grounded answer with cited source previews
//   - AuditReport: The merged output of the keyword and narrative passes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
