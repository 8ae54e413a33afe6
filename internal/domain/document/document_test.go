package document

import (
	"testing"
	"time"

	"github.com/clearstone-io/tradematch/internal/domain/fieldstore"
)

func TestCell_String(t *testing.T) {
	cached := 250000.5
	cases := []struct {
		name string
		cell Cell
		want string
	}{
		{"text", TextCell("Acme Corp"), "Acme Corp"},
		{"number plain", NumberCell(500000), "500000"},
		{"number decimal", NumberCell(3.75), "3.75"},
		{"number large no exponent", NumberCell(1250000000), "1250000000"},
		{"bool true", BoolCell(true), "true"},
		{"bool false", BoolCell(false), "false"},
		{"date", DateCell(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)), "2024-01-15T00:00:00"},
		{"formula cached string", FormulaCell("A1&B1", "USD500000", &cached), "USD500000"},
		{"formula cached number", FormulaCell("A1*B1", "", &cached), "250000.5"},
		{"formula source fallback", FormulaCell("A1*B1", "", nil), "A1*B1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDocument_Variants(t *testing.T) {
	n := NewNarrative("agreement.pdf", "Trade ID: T-1")
	if n.Kind() != KindNarrative || n.Name() != "agreement.pdf" || n.Text() != "Trade ID: T-1" {
		t.Errorf("unexpected narrative document: %+v", n)
	}

	rows := [][]Cell{{TextCell("Trade ID"), TextCell("T-1")}}
	tab := NewTabular("terms.xlsx", rows)
	if tab.Kind() != KindTabular || len(tab.Rows()) != 1 {
		t.Errorf("unexpected tabular document: %+v", tab)
	}
}

func TestDocument_WithFieldsDoesNotMutate(t *testing.T) {
	base := NewNarrative("agreement.pdf", "Trade ID: T-1")
	populated := base.WithFields(fieldstore.New(fieldstore.Pair{Name: "tradeId", Value: "T-1"}))

	if base.Fields().Len() != 0 {
		t.Error("WithFields mutated the original document")
	}
	if populated.Fields().Len() != 1 {
		t.Error("WithFields did not carry the new store")
	}
}
