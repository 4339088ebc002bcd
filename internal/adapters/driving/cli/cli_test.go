package cli

import (
	"context"

	"github.com/custodia-labs/lexaudit-cli/internal/core/domain"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexaudit-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexaudit-cli/internal/core/services"
)

// --- Fake services for command tests ---

type fakeIngest struct {
	summary *driving.IngestSummary
	err     error
	paths   []string
}

func (f *fakeIngest) Ingest(_ context.Context, paths []string) (*driving.IngestSummary, error) {
	f.paths = paths
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

type fakeQA struct {
	answer   *domain.Answer
	err      error
	question string
}

func (f *fakeQA) Answer(_ context.Context, question string) (*domain.Answer, error) {
	f.question = question
	if f.err != nil {
		return nil, f.err
	}
	return f.answer, nil
}

type fakeAudit struct {
	report *domain.AuditReport
	err    error
	opts   driving.AuditOptions
}

func (f *fakeAudit) Audit(_ context.Context, opts driving.AuditOptions) (*domain.AuditReport, error) {
	f.opts = opts
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

// fakeIndex satisfies driven.Index for status output tests.
type fakeIndex struct {
	n     int
	dims  int
	model string
}

func (f *fakeIndex) Len() int                  { return f.n }
func (f *fakeIndex) Dimensions() int           { return f.dims }
func (f *fakeIndex) ModelName() string         { return f.model }
func (f *fakeIndex) Chunks(int) []domain.Chunk { return nil }
func (f *fakeIndex) Search([]float32, int) ([]driven.Hit, error) {
	return nil, nil
}

// fakeStore satisfies driven.IndexStore; the session tests only need Load.
type fakeStore struct{}

func (fakeStore) Build(_ context.Context, _ []domain.Chunk) (driven.Index, error) {
	return nil, nil
}
func (fakeStore) Load(_ context.Context) (driven.Index, error) { return nil, nil }

// setupTestServices wires fakes into the package-level services and
// returns a cleanup that restores the previous wiring.
func setupTestServices(
	ingest driving.IngestService,
	qa driving.QAService,
	audit driving.AuditService,
	s *services.ReviewSession,
) func() {
	prevIngest, prevQA, prevAudit, prevSession := ingestService, qaService, auditService, session
	ingestService, qaService, auditService, session = ingest, qa, audit, s
	return func() {
		ingestService, qaService, auditService, session = prevIngest, prevQA, prevAudit, prevSession
	}
}

// sessionWith returns a session whose active index is idx.
func sessionWith(idx driven.Index) *services.ReviewSession {
	s := services.NewReviewSession(fakeStore{})
	s.Replace(idx)
	return s
}
