package extractors

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps file extensions to extractors.
type Registry struct {
	byExt map[string]driven.Extractor
}

// NewRegistry creates a registry over the given extractors.
// Later extractors win when extensions collide.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{byExt: make(map[string]driven.Extractor)}
	for _, e := range extractors {
		for _, ext := range e.Extensions() {
			r.byExt[strings.ToLower(ext)] = e
		}
	}
	return r
}

// ForPath returns the extractor for the path's extension.
func (r *Registry) ForPath(path string) (driven.Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}
	return e, nil
}

// Extract selects the extractor for the path and runs it, then applies
// the uniform source-defaulting rule: every segment whose Source the
// strategy left empty gets the input path.
func (r *Registry) Extract(ctx context.Context, path string) ([]domain.Segment, error) {
	e, err := r.ForPath(path)
	if err != nil {
		return nil, err
	}

	segments, err := e.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	for i := range segments {
		if segments[i].Source == "" {
			segments[i].Source = path
		}
	}
	return segments, nil
}
