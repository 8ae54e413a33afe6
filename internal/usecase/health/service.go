package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks over the document folders and the
// scoring provider.
type Service struct {
	sources       SourceChecker
	agreementsDir string
	termSheetsDir string
	scorer        ScorerChecker
}

// New creates a Service. scorer can be nil when the built-in scorer is in
// use.
func New(sources SourceChecker, agreementsDir, termSheetsDir string, scorer ScorerChecker) *Service {
	return &Service{
		sources:       sources,
		agreementsDir: agreementsDir,
		termSheetsDir: termSheetsDir,
		scorer:        scorer,
	}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.sources.Check(ctx, s.agreementsDir); err != nil {
		checks["agreements_folder"] = CheckError
	} else {
		checks["agreements_folder"] = CheckOK
	}

	if err := s.sources.Check(ctx, s.termSheetsDir); err != nil {
		checks["term_sheets_folder"] = CheckError
	} else {
		checks["term_sheets_folder"] = CheckOK
	}

	if s.scorer != nil {
		if err := s.scorer.HealthCheck(ctx); err != nil {
			checks["scoring"] = CheckError
		} else {
			checks["scoring"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
