// Package comparison holds the outcome value objects of a document
// comparison.
package comparison

// NotAvailable is the sentinel reported for a field value absent on one
// side. External callers depend on this exact string.
const NotAvailable = "N/A"

// MatchThreshold is the similarity cutoff at or above which a field pair
// counts as matching.
const MatchThreshold = 0.8

// FieldResult is the outcome of comparing one canonical field across both
// documents. A field absent on either side carries NotAvailable in its
// place, Similarity 0 and Match false.
type FieldResult struct {
	Field          string
	AgreementValue string
	TermSheetValue string
	Similarity     float64
	Match          bool
}

// Absent reports whether the field was missing on at least one side.
func (r FieldResult) Absent() bool {
	return r.AgreementValue == NotAvailable || r.TermSheetValue == NotAvailable
}

// Report is the aggregate comparison outcome. Results are ordered
// lexicographically by field name, so identical inputs always yield an
// identical report.
type Report struct {
	AgreementFile   string
	TermSheetFile   string
	MatchPercentage float64
	Results         []FieldResult
}

// Differences returns the non-matching results, preserving report order.
func (r Report) Differences() []FieldResult {
	diffs := make([]FieldResult, 0, len(r.Results))
	for _, res := range r.Results {
		if !res.Match {
			diffs = append(diffs, res)
		}
	}
	return diffs
}
