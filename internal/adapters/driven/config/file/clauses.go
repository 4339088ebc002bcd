package file

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
)

// clauseEntry is the YAML shape of one catalogue clause.
type clauseEntry struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// clauseFile is the YAML shape of a catalogue file.
type clauseFile struct {
	Clauses []clauseEntry `yaml:"clauses"`
}

// LoadCatalogue reads a clause catalogue from a YAML file.
// An empty path returns the built-in catalogue.
func LoadCatalogue(path string) (domain.Catalogue, error) {
	if path == "" {
		return domain.DefaultCatalogue(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read clause file: %w", err)
	}

	var parsed clauseFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse clause file %s: %w", path, err)
	}

	if len(parsed.Clauses) == 0 {
		return nil, fmt.Errorf("%w: clause file %s defines no clauses", domain.ErrInvalidInput, path)
	}

	catalogue := make(domain.Catalogue, 0, len(parsed.Clauses))
	for i, entry := range parsed.Clauses {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: clause %d has no name", domain.ErrInvalidInput, i)
		}
		if len(entry.Keywords) == 0 {
			return nil, fmt.Errorf("%w: clause %q has no keywords", domain.ErrInvalidInput, entry.Name)
		}
		catalogue = append(catalogue, domain.Clause{
			Name:     entry.Name,
			Keywords: entry.Keywords,
		})
	}
	return catalogue, nil
}
