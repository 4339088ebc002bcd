package driven

// Prompt names recognised by the PromptStore.
const (
	// PromptQA answers a question strictly from retrieved context.
	// Placeholders: %s (context), %s (question).
	PromptQA = "qa_answer"

	// PromptAudit produces the narrative audit report.
	// Placeholders: %s (concatenated document text).
	PromptAudit = "audit_report"

	// PromptClauseDraft drafts a missing clause.
	// Placeholders: %s (clause name).
	PromptClauseDraft = "clause_draft"
)

// PromptStore provides prompt templates for LLM operations.
// Implementations may load user-customised prompts from disk.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)
}
