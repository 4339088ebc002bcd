package domain

// AIProvider identifies an embedding or LLM backend.
type AIProvider string

// Supported AI providers.
const (
	AIProviderOpenAI    AIProvider = "openai"
	AIProviderOllama    AIProvider = "ollama"
	AIProviderAnthropic AIProvider = "anthropic"
)

// EmbeddingSettings configures the embedding service boundary.
type EmbeddingSettings struct {
	// Provider selects the backend.
	Provider AIProvider

	// Model is the embedding model name (e.g. text-embedding-3-small).
	Model string

	// BaseURL overrides the provider's default API endpoint.
	BaseURL string

	// APIKey authenticates hosted providers. Unused by Ollama.
	APIKey string

	// Dimensions overrides the model's default vector size.
	Dimensions int
}

// IsConfigured reports whether enough is set to create a service.
func (s *EmbeddingSettings) IsConfigured() bool {
	if s == nil || s.Provider == "" {
		return false
	}
	if s.Provider == AIProviderOllama {
		return true // local, no key needed
	}
	return s.APIKey != ""
}

// LLMSettings configures the LLM service boundary.
type LLMSettings struct {
	// Provider selects the backend.
	Provider AIProvider

	// Model is the chat model name (e.g. gpt-4o-mini).
	Model string

	// BaseURL overrides the provider's default API endpoint.
	BaseURL string

	// APIKey authenticates hosted providers. Unused by Ollama.
	APIKey string
}

// IsConfigured reports whether enough is set to create a service.
func (s *LLMSettings) IsConfigured() bool {
	if s == nil || s.Provider == "" {
		return false
	}
	if s.Provider == AIProviderOllama {
		return true
	}
	return s.APIKey != ""
}
