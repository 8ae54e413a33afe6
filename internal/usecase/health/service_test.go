package health

import (
	"context"
	"errors"
	"testing"
)

type stubSources struct {
	bad map[string]bool
}

func (s stubSources) Check(_ context.Context, dir string) error {
	if s.bad[dir] {
		return errors.New("unreachable")
	}
	return nil
}

type stubScorer struct {
	err error
}

func (s stubScorer) HealthCheck(context.Context) error { return s.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(stubSources{}, "/a", "/t", stubScorer{})
	rep := svc.Check(context.Background())

	if rep.Status != Healthy {
		t.Errorf("status = %q, want %q", rep.Status, Healthy)
	}
	for name, result := range rep.Checks {
		if result != CheckOK {
			t.Errorf("check %q = %q", name, result)
		}
	}
	if len(rep.Checks) != 3 {
		t.Errorf("expected 3 checks, got %d", len(rep.Checks))
	}
}

func TestCheck_DegradedOnFolderFailure(t *testing.T) {
	svc := New(stubSources{bad: map[string]bool{"/t": true}}, "/a", "/t", nil)
	rep := svc.Check(context.Background())

	if rep.Status != Degraded {
		t.Errorf("status = %q, want %q", rep.Status, Degraded)
	}
	if rep.Checks["term_sheets_folder"] != CheckError {
		t.Errorf("term_sheets_folder = %q", rep.Checks["term_sheets_folder"])
	}
	if rep.Checks["agreements_folder"] != CheckOK {
		t.Errorf("agreements_folder = %q", rep.Checks["agreements_folder"])
	}
}

func TestCheck_NilScorerSkipsCheck(t *testing.T) {
	svc := New(stubSources{}, "/a", "/t", nil)
	rep := svc.Check(context.Background())
	if _, ok := rep.Checks["scoring"]; ok {
		t.Error("scoring check must be skipped for the built-in scorer")
	}
}

func TestCheck_ScorerFailure(t *testing.T) {
	svc := New(stubSources{}, "/a", "/t", stubScorer{err: errors.New("api down")})
	rep := svc.Check(context.Background())
	if rep.Status != Degraded || rep.Checks["scoring"] != CheckError {
		t.Errorf("report = %+v", rep)
	}
}
