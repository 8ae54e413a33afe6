package compare

import (
	"context"
	"math"

	"github.com/clearstone-io/tradematch/internal/domain"
	"github.com/clearstone-io/tradematch/internal/domain/comparison"
	"github.com/clearstone-io/tradematch/internal/domain/document"
	"github.com/clearstone-io/tradematch/internal/domain/fieldstore"
)

// Service reconciles the extracted field stores of two documents into a
// comparison report. It is stateless across invocations; each call may run
// concurrently with others.
type Service struct {
	scorer Scorer
}

// New creates a comparison service with the given scoring strategy.
func New(scorer Scorer) *Service {
	return &Service{scorer: scorer}
}

// Compare unions the field names of both documents, scores every field
// present on both sides and reports fields missing on one side as
// differences. Fields missing on a side are excluded from the match
// percentage denominator. Field order in the report is lexicographic, so
// identical inputs always produce an identical report.
//
// Passing a nil document is a contract violation and fails immediately;
// no degraded report is produced.
func (s *Service) Compare(ctx context.Context, agreement, termSheet *document.Document) (comparison.Report, error) {
	if agreement == nil || termSheet == nil {
		return comparison.Report{}, domain.ErrNilDocument
	}

	left := agreement.Fields()
	right := termSheet.Fields()

	names := fieldstore.UnionNames(left, right)
	results := make([]comparison.FieldResult, 0, len(names))

	scored := 0
	totalSimilarity := 0.0

	for _, name := range names {
		leftValue, leftOK := left.Get(name)
		rightValue, rightOK := right.Get(name)

		if !leftOK || !rightOK {
			results = append(results, comparison.FieldResult{
				Field:          name,
				AgreementValue: orNotAvailable(leftValue, leftOK),
				TermSheetValue: orNotAvailable(rightValue, rightOK),
				Similarity:     0.0,
				Match:          false,
			})
			continue
		}

		similarity := clamp01(s.scorer.Score(ctx, leftValue, rightValue))
		scored++
		totalSimilarity += similarity

		results = append(results, comparison.FieldResult{
			Field:          name,
			AgreementValue: leftValue,
			TermSheetValue: rightValue,
			Similarity:     similarity,
			Match:          similarity >= comparison.MatchThreshold,
		})
	}

	return comparison.Report{
		AgreementFile:   agreement.Name(),
		TermSheetFile:   termSheet.Name(),
		MatchPercentage: percentage(totalSimilarity, scored),
		Results:         results,
	}, nil
}

// percentage is the mean similarity over fields present on both sides,
// as a percentage rounded half-up to two decimals. Zero when no field is
// shared.
func percentage(totalSimilarity float64, scored int) float64 {
	if scored == 0 {
		return 0.0
	}
	p := totalSimilarity / float64(scored) * 100
	return math.Round(p*100) / 100
}

func orNotAvailable(v string, ok bool) string {
	if !ok {
		return comparison.NotAvailable
	}
	return v
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
