package domain

import (
	"reflect"
	"testing"
)

func TestDefaultCatalogue(t *testing.T) {
	catalogue := DefaultCatalogue()

	if len(catalogue) != 9 {
		t.Fatalf("expected 9 clauses, got %d", len(catalogue))
	}
	for _, clause := range catalogue {
		if clause.Name == "" {
			t.Error("clause with empty name")
		}
		if len(clause.Keywords) == 0 {
			t.Errorf("clause %q has no keywords", clause.Name)
		}
	}
	if catalogue[0].Name != "Termination" {
		t.Errorf("expected Termination first, got %q", catalogue[0].Name)
	}
}

func TestAuditReport_MissingClauses(t *testing.T) {
	catalogue := Catalogue{
		{Name: "Termination", Keywords: []string{"terminate"}},
		{Name: "Indemnity", Keywords: []string{"indemnify"}},
		{Name: "Assignment", Keywords: []string{"assign"}},
	}

	report := &AuditReport{
		Findings: map[string]ClauseFinding{
			"Termination": {Present: true},
			"Indemnity":   {},
			"Assignment":  {},
		},
	}

	missing := report.MissingClauses(catalogue)

	want := []string{"Indemnity", "Assignment"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("MissingClauses() = %v, want %v (catalogue order)", missing, want)
	}
}

func TestAuditReport_MissingClausesIgnoresUnscanned(t *testing.T) {
	catalogue := Catalogue{
		{Name: "Termination", Keywords: []string{"terminate"}},
		{Name: "Never Scanned", Keywords: []string{"x"}},
	}

	report := &AuditReport{
		Findings: map[string]ClauseFinding{
			"Termination": {Present: true},
		},
	}

	if missing := report.MissingClauses(catalogue); missing != nil {
		t.Errorf("expected no missing clauses, got %v", missing)
	}
}

func TestAuditReport_MissingClausesAllPresent(t *testing.T) {
	catalogue := Catalogue{{Name: "Termination", Keywords: []string{"terminate"}}}
	report := &AuditReport{
		Findings: map[string]ClauseFinding{"Termination": {Present: true}},
	}

	if missing := report.MissingClauses(catalogue); len(missing) != 0 {
		t.Errorf("expected none missing, got %v", missing)
	}
}
