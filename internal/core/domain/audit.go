package domain

// ClauseFinding records the keyword-pass result for a single clause.
type ClauseFinding struct {
	// Present is true when any of the clause's keywords matched a
	// retrieved chunk.
	Present bool `json:"present"`

	// Snippet is a bounded excerpt centred on the first matched keyword.
	// Empty when Present is false.
	Snippet string `json:"snippet,omitempty"`

	// Source is the matching chunk's file path.
	Source string `json:"source,omitempty"`

	// Page is the matching chunk's page number, if known.
	Page int `json:"page,omitempty"`
}

// AuditReport is the merged output of the keyword and narrative passes.
// It is derived on demand and never persisted.
type AuditReport struct {
	// Findings maps clause name to its keyword-pass finding.
	Findings map[string]ClauseFinding `json:"keyword_findings"`

	// Narrative is the LLM's free-text audit report.
	Narrative string `json:"llm_report"`

	// Drafts maps missing clause names to LLM-suggested clause drafts.
	// Populated only when drafting was requested.
	Drafts map[string]string `json:"drafts,omitempty"`

	// Empty is true when the index held no chunks; the passes were
	// skipped and Narrative explains that no documents were found.
	Empty bool `json:"empty,omitempty"`
}

// MissingClauses returns the names of clauses the keyword pass did not
// find, in catalogue order.
func (r *AuditReport) MissingClauses(catalogue Catalogue) []string {
	var missing []string
	for _, clause := range catalogue {
		if finding, ok := r.Findings[clause.Name]; ok && !finding.Present {
			missing = append(missing, clause.Name)
		}
	}
	return missing
}
