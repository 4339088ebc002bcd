// Package file provides file-based configuration: the TOML config
// store, user-editable prompt templates and the YAML clause catalogue.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

// Environment variables consulted for API keys. Keys never live in the
// config file.
const (
	envOpenAIKey    = "OPENAI_API_KEY"
	envAnthropicKey = "ANTHROPIC_API_KEY"
)

// Config is the on-disk configuration, stored as TOML.
type Config struct {
	// ChunkSize is the maximum chunk length in runes.
	ChunkSize int `toml:"chunk_size"`

	// ChunkOverlap is the overlap between consecutive chunks in runes.
	ChunkOverlap int `toml:"chunk_overlap"`

	// RetrievalK is how many chunks ground each answer.
	RetrievalK int `toml:"retrieval_k"`

	// AuditSampleK is how many chunks the audit narrative pass samples.
	AuditSampleK int `toml:"audit_sample_k"`

	// OCRMinTextChars is the extracted-text length below which a PDF
	// falls back to OCR.
	OCRMinTextChars int `toml:"ocr_min_text_chars"`

	// OCRDPI is the rasterisation resolution for OCR.
	OCRDPI int `toml:"ocr_dpi"`

	// UploadDir stages ingested files. Empty means <config dir>/uploads.
	UploadDir string `toml:"upload_dir"`

	// PersistDir holds the vector index. Empty means <config dir>/index.
	PersistDir string `toml:"persist_dir"`

	// ClauseFile overrides the built-in clause catalogue with a YAML file.
	ClauseFile string `toml:"clause_file"`

	Embedding EmbeddingConfig `toml:"embedding"`
	LLM       LLMConfig       `toml:"llm"`
}

// EmbeddingConfig selects the embedding backend.
type EmbeddingConfig struct {
	Provider   string `toml:"provider"`
	Model      string `toml:"model"`
	BaseURL    string `toml:"base_url"`
	Dimensions int    `toml:"dimensions"`
}

// LLMConfig selects the text-generation backend.
type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	BaseURL  string `toml:"base_url"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize:       1000,
		ChunkOverlap:    200,
		RetrievalK:      4,
		AuditSampleK:    50,
		OCRMinTextChars: 40,
		OCRDPI:          300,
		Embedding: EmbeddingConfig{
			Provider: string(domain.AIProviderOpenAI),
			Model:    "text-embedding-3-small",
		},
		LLM: LLMConfig{
			Provider: string(domain.AIProviderOpenAI),
			Model:    "gpt-4o-mini",
		},
	}
}

// EmbeddingSettings converts the embedding section to domain settings,
// resolving the API key from the environment.
func (c *Config) EmbeddingSettings() *domain.EmbeddingSettings {
	return &domain.EmbeddingSettings{
		Provider:   domain.AIProvider(c.Embedding.Provider),
		Model:      c.Embedding.Model,
		BaseURL:    c.Embedding.BaseURL,
		APIKey:     apiKeyFor(domain.AIProvider(c.Embedding.Provider)),
		Dimensions: c.Embedding.Dimensions,
	}
}

// LLMSettings converts the LLM section to domain settings, resolving
// the API key from the environment.
func (c *Config) LLMSettings() *domain.LLMSettings {
	return &domain.LLMSettings{
		Provider: domain.AIProvider(c.LLM.Provider),
		Model:    c.LLM.Model,
		BaseURL:  c.LLM.BaseURL,
		APIKey:   apiKeyFor(domain.AIProvider(c.LLM.Provider)),
	}
}

// apiKeyFor returns the environment API key for a provider.
func apiKeyFor(provider domain.AIProvider) string {
	switch provider {
	case domain.AIProviderOpenAI:
		return os.Getenv(envOpenAIKey)
	case domain.AIProviderAnthropic:
		return os.Getenv(envAnthropicKey)
	default:
		return ""
	}
}

// ConfigStore loads and saves the TOML config file.
type ConfigStore struct {
	configDir string
	filePath  string
}

// NewConfigStore creates a config store rooted at configDir.
// If configDir is empty, defaults to ~/.lexaudit.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".lexaudit")
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	return &ConfigStore{
		configDir: configDir,
		filePath:  filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads the config file, filling unset values with defaults.
// A missing file returns the defaults without error.
func (s *ConfigStore) Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.applyDirDefaults(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", s.filePath, err)
	}

	s.applyDirDefaults(cfg)
	return cfg, nil
}

// Save persists the config with restricted permissions.
func (s *ConfigStore) Save(cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(s.filePath, data, 0o600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// Dir returns the configuration directory.
func (s *ConfigStore) Dir() string {
	return s.configDir
}

// applyDirDefaults fills directory settings relative to the config dir.
func (s *ConfigStore) applyDirDefaults(cfg *Config) {
	if cfg.UploadDir == "" {
		cfg.UploadDir = filepath.Join(s.configDir, "uploads")
	}
	if cfg.PersistDir == "" {
		cfg.PersistDir = filepath.Join(s.configDir, "index")
	}
}
