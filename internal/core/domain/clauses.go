package domain

// Clause names a contract clause and the keyword synonyms that signal
// its presence in document text.
type Clause struct {
	// Name is the clause title, also used as the retrieval query.
	Name string

	// Keywords are case-insensitive synonyms scanned for in chunk text.
	Keywords []string
}

// Catalogue is an ordered list of clauses to audit.
// Order is preserved so reports are deterministic.
type Catalogue []Clause

// DefaultCatalogue returns the built-in clause catalogue for commercial
// contract review.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		{Name: "Termination", Keywords: []string{"termination", "end of agreement", "terminate"}},
		{Name: "Governing Law", Keywords: []string{"governing law", "jurisdiction"}},
		{Name: "Confidentiality", Keywords: []string{"confidential", "nondisclosure", "non-disclosure", "NDA"}},
		{Name: "Indemnity", Keywords: []string{"indemnify", "hold harmless", "indemnity"}},
		{Name: "Limitation of Liability", Keywords: []string{"limitation of liability", "liability cap", "cap on liability", "cap on damages"}},
		{Name: "Definitions", Keywords: []string{"definitions", "meaning of", "defined terms"}},
		{Name: "Force Majeure", Keywords: []string{"force majeure", "act of god", "unforeseeable"}},
		{Name: "Payment Terms", Keywords: []string{"payment", "invoice", "due date", "fees", "remit"}},
		{Name: "Assignment", Keywords: []string{"assignment", "assign", "successors", "transfer"}},
	}
}
