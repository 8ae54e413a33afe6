package chi

import (
	"github.com/clearstone-io/tradematch/internal/domain/comparison"
)

// reportResponse is the wire form of a comparison report.
type reportResponse struct {
	TradeAgreementFile string          `json:"tradeAgreementFile"`
	TermSheetFile      string          `json:"termSheetFile"`
	MatchPercentage    float64         `json:"matchPercentage"`
	Differences        []differenceDTO `json:"differences"`
}

// differenceDTO is one mismatched field in a comparison report.
type differenceDTO struct {
	Field               string `json:"field"`
	TradeAgreementValue string `json:"tradeAgreementValue"`
	TermSheetValue      string `json:"termSheetValue"`
}

// errorResponse is the wire form of an API error.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the wire form of the health report.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func reportToWire(rep comparison.Report) reportResponse {
	diffs := rep.Differences()
	out := make([]differenceDTO, len(diffs))
	for i, d := range diffs {
		out[i] = differenceDTO{
			Field:               d.Field,
			TradeAgreementValue: d.AgreementValue,
			TermSheetValue:      d.TermSheetValue,
		}
	}
	return reportResponse{
		TradeAgreementFile: rep.AgreementFile,
		TermSheetFile:      rep.TermSheetFile,
		MatchPercentage:    rep.MatchPercentage,
		Differences:        out,
	}
}
