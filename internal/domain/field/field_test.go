package field

import "testing"

func TestCanonicalize_SynonymTable(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Trade ID", TradeID},
		{"trade_id", TradeID},
		{"Trade Reference", TradeID},
		{"TRADE NO:", TradeID},
		{"Trade-Id #", TradeID},
		{"Counterparty", Counterparty},
		{"Counterparty Name", Counterparty},
		{"CP", Counterparty},
		{"counterparty_id", Counterparty},
		{"Trade Date", TradeDate},
		{"Date of Trade", TradeDate},
		{"Settlement Date", SettlementDate},
		{"Settle Date", SettlementDate},
		{"Settlement", SettlementDate},
		{"Currency", Currency},
		{"CCY", Currency},
		{"Notional Amount", NotionalAmount},
		{"Notional", NotionalAmount},
		{"Principal", NotionalAmount},
		{"Amount", NotionalAmount},
		{"Interest Rate", InterestRate},
		{"Fixed Rate", InterestRate},
		{"Rate", InterestRate},
		{"Maturity Date", MaturityDate},
		{"Maturity", MaturityDate},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := Canonicalize(tc.raw); got != tc.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestCanonicalize_UnknownLabelPassesThroughStripped(t *testing.T) {
	got := Canonicalize("  Broker - Code ")
	if got != "brokercode" {
		t.Errorf("Canonicalize passthrough = %q, want %q", got, "brokercode")
	}
	if Known(got) {
		t.Errorf("passthrough label %q must not be part of the canonical vocabulary", got)
	}
}

func TestCanonicalize_NarrativeAndTabularConverge(t *testing.T) {
	// A narrative field stored as tradeId and a tabular column labeled
	// "Trade Reference" must land on the same key.
	if Canonicalize("Trade Reference") != TradeID {
		t.Fatal("tabular label did not converge on the narrative key")
	}
}

func TestKnown_CoversVocabulary(t *testing.T) {
	names := []string{
		TradeID, Counterparty, TradeDate, SettlementDate,
		Currency, NotionalAmount, InterestRate, MaturityDate,
	}
	for _, name := range names {
		if !Known(name) {
			t.Errorf("Known(%q) = false, want true", name)
		}
	}
	if Known("brokercode") {
		t.Error("Known must reject non-vocabulary names")
	}
}
