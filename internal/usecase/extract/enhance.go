package extract

import (
	"strings"

	"github.com/clearstone-io/tradematch/internal/domain/field"
	"github.com/clearstone-io/tradematch/internal/domain/fieldstore"
)

// labelWindows maps canonical fields to the token sequences announcing
// them in running text. Ordered so multi-token labels are tried first.
var labelWindows = []struct {
	name   string
	labels []string
}{
	{field.TradeID, []string{"trade", "id"}},
	{field.TradeDate, []string{"trade", "date"}},
	{field.SettlementDate, []string{"settlement", "date"}},
	{field.MaturityDate, []string{"maturity", "date"}},
	{field.NotionalAmount, []string{"notional", "amount"}},
	{field.InterestRate, []string{"interest", "rate"}},
	{field.Counterparty, []string{"counterparty"}},
}

// Enhance fills fields the pattern battery left absent by scanning the
// tokenized text for label words followed by a value token. Fields already
// present are never overwritten.
func Enhance(text string, base fieldstore.Store) fieldstore.Store {
	tokens := tokenize(text)

	b := fieldstore.NewBuilder()
	for _, name := range base.Names() {
		v, _ := base.Get(name)
		b.Set(name, v)
	}

	for _, w := range labelWindows {
		if base.Has(w.name) {
			continue
		}
		if v, ok := valueAfterLabels(tokens, w.labels); ok {
			b.SetIfAbsent(w.name, v)
		}
	}
	return b.Build()
}

// tokenize splits on whitespace and strips the label punctuation that
// clings to tokens, keeping value tokens like "2024-01-15" intact.
func tokenize(text string) []string {
	raw := strings.Fields(text)
	tokens := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.Trim(t, ":,;.")
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// valueAfterLabels finds the first occurrence of the label word sequence
// and returns the token following it.
func valueAfterLabels(tokens, labels []string) (string, bool) {
	for i := 0; i+len(labels) < len(tokens); i++ {
		match := true
		for j, l := range labels {
			if !strings.EqualFold(tokens[i+j], l) {
				match = false
				break
			}
		}
		if match {
			return tokens[i+len(labels)], true
		}
	}
	return "", false
}
