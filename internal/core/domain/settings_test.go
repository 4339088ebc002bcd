package domain

import "testing"

func TestEmbeddingSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings *EmbeddingSettings
		want     bool
	}{
		{"nil settings", nil, false},
		{"no provider", &EmbeddingSettings{}, false},
		{"ollama needs no key", &EmbeddingSettings{Provider: AIProviderOllama}, true},
		{"openai without key", &EmbeddingSettings{Provider: AIProviderOpenAI}, false},
		{"openai with key", &EmbeddingSettings{Provider: AIProviderOpenAI, APIKey: "sk-x"}, true},
		{"unknown provider with key", &EmbeddingSettings{Provider: "mystery", APIKey: "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.IsConfigured(); got != tt.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLLMSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		settings *LLMSettings
		want     bool
	}{
		{"nil settings", nil, false},
		{"no provider", &LLMSettings{}, false},
		{"ollama needs no key", &LLMSettings{Provider: AIProviderOllama}, true},
		{"anthropic without key", &LLMSettings{Provider: AIProviderAnthropic}, false},
		{"anthropic with key", &LLMSettings{Provider: AIProviderAnthropic, APIKey: "ak-x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.IsConfigured(); got != tt.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}
