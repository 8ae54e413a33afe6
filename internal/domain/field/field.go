// Package field defines the canonical field vocabulary shared by every
// extractor, so that a label spelled differently across document types
// still lands on the same key.
package field

import "strings"

// Canonical field names.
const (
	TradeID        = "tradeId"
	Counterparty   = "counterparty"
	TradeDate      = "tradeDate"
	SettlementDate = "settlementDate"
	Currency       = "currency"
	NotionalAmount = "notionalAmount"
	InterestRate   = "interestRate"
	MaturityDate   = "maturityDate"
)

var known = map[string]bool{
	TradeID:        true,
	Counterparty:   true,
	TradeDate:      true,
	SettlementDate: true,
	Currency:       true,
	NotionalAmount: true,
	InterestRate:   true,
	MaturityDate:   true,
}

// synonyms maps stripped, lowercased label spellings onto canonical names.
var synonyms = map[string]string{
	"tradeid":          TradeID,
	"tradereference":   TradeID,
	"tradeno":          TradeID,
	"counterparty":     Counterparty,
	"counterpartyname": Counterparty,
	"counterpartyid":   Counterparty,
	"cp":               Counterparty,
	"tradedate":        TradeDate,
	"date":             TradeDate,
	"dateoftrade":      TradeDate,
	"settlementdate":   SettlementDate,
	"settlement":       SettlementDate,
	"settledate":       SettlementDate,
	"currency":         Currency,
	"ccy":              Currency,
	"notionalamount":   NotionalAmount,
	"notional":         NotionalAmount,
	"principal":        NotionalAmount,
	"amount":           NotionalAmount,
	"interestrate":     InterestRate,
	"rate":             InterestRate,
	"fixedrate":        InterestRate,
	"maturitydate":     MaturityDate,
	"maturity":         MaturityDate,
}

// Known reports whether name belongs to the canonical vocabulary.
func Known(name string) bool { return known[name] }

// Canonicalize maps a raw document label onto the canonical vocabulary.
// The label is lowercased and stripped of whitespace, "-", "_", "#" and ":"
// before the synonym lookup. Unrecognized labels pass through in stripped
// form, so a novel column still surfaces in reports under its own key.
func Canonicalize(raw string) string {
	stripped := strip(raw)
	if canonical, ok := synonyms[stripped]; ok {
		return canonical
	}
	return stripped
}

func strip(label string) string {
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '_', '#', ':':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
