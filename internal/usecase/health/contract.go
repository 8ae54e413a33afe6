package health

import "context"

// SourceChecker checks that a document folder is reachable.
type SourceChecker interface {
	Check(ctx context.Context, dir string) error
}

// ScorerChecker checks scoring provider availability.
type ScorerChecker interface {
	HealthCheck(ctx context.Context) error
}
