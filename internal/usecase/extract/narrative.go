// Package extract turns raw document content into canonical field stores.
package extract

import (
	"regexp"
	"strings"

	"github.com/clearstone-io/tradematch/internal/domain/field"
	"github.com/clearstone-io/tradematch/internal/domain/fieldstore"
)

// narrativePatterns is the fixed battery applied to agreement text, in
// extraction order. Each pattern is case-insensitive, the first match in
// the text wins and capture group 1 is stored verbatim after trimming.
// An unmatched pattern leaves the field absent; that is normal, not an
// error.
var narrativePatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{field.TradeID, regexp.MustCompile(`(?i)Trade ID[:\s]+(\w+)`)},
	// value runs to the end of the line so the next label is not swallowed
	{field.Counterparty, regexp.MustCompile(`(?i)Counterparty[:\s]+([\w ]+)`)},
	{field.TradeDate, regexp.MustCompile(`(?i)Trade Date[:\s]+(\d{2}/\d{2}/\d{4}|\d{4}-\d{2}-\d{2})`)},
	{field.SettlementDate, regexp.MustCompile(`(?i)Settlement Date[:\s]+(\d{2}/\d{2}/\d{4}|\d{4}-\d{2}-\d{2})`)},
	{field.Currency, regexp.MustCompile(`(?i)Currency[:\s]+([A-Z]{3})`)},
	{field.NotionalAmount, regexp.MustCompile(`(?i)Notional Amount[:\s]+([$€£]?\s?[\d,]+\.?\d*)`)},
	{field.InterestRate, regexp.MustCompile(`(?i)Interest Rate[:\s]+(\d+\.?\d*%)`)},
	{field.MaturityDate, regexp.MustCompile(`(?i)Maturity Date[:\s]+(\d{2}/\d{2}/\d{4}|\d{4}-\d{2}-\d{2})`)},
}

// Narrative applies the pattern battery to raw agreement text and returns
// a fresh field store. Matched values keep currency symbols, separators
// and casing; normalization happens at scoring time.
func Narrative(text string) fieldstore.Store {
	b := fieldstore.NewBuilder()
	for _, p := range narrativePatterns {
		m := p.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			b.Set(p.name, v)
		}
	}
	return b.Build()
}
