package xlsxsource

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/clearstone-io/tradematch/internal/domain"
	"github.com/clearstone-io/tradematch/internal/domain/document"
)

func writeWorkbook(t *testing.T, build func(f *excelize.File)) string {
	t.Helper()
	f := excelize.NewFile()
	build(f)
	path := filepath.Join(t.TempDir(), "terms.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close workbook: %v", err)
	}
	return path
}

func TestReadRows_TypedCells(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		sheet := f.GetSheetName(0)
		_ = f.SetCellValue(sheet, "A1", "Trade ID")
		_ = f.SetCellValue(sheet, "B1", "TRD12345")
		_ = f.SetCellValue(sheet, "A2", "Notional Amount")
		_ = f.SetCellValue(sheet, "B2", 500000.0)
		_ = f.SetCellValue(sheet, "A3", "Callable")
		_ = f.SetCellBool(sheet, "B3", true)
	})

	rows, err := New().ReadRows(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if got := rows[0][1].String(); got != "TRD12345" {
		t.Errorf("text cell = %q", got)
	}
	if rows[1][1].Type() != document.CellNumber {
		t.Errorf("B2 type = %v, want number", rows[1][1].Type())
	}
	if got := rows[1][1].String(); got != "500000" {
		t.Errorf("numeric cell = %q, want plain decimal form", got)
	}
	if rows[2][1].Type() != document.CellBool {
		t.Errorf("B3 type = %v, want bool", rows[2][1].Type())
	}
	if got := rows[2][1].String(); got != "true" {
		t.Errorf("bool cell = %q", got)
	}
}

func TestReadRows_DateStyledNumber(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		sheet := f.GetSheetName(0)
		_ = f.SetCellValue(sheet, "A1", "Settlement Date")
		// serial for 2024-01-12 with the built-in short date format
		_ = f.SetCellValue(sheet, "B1", 45303.0)
		styleID, _ := f.NewStyle(&excelize.Style{NumFmt: 14})
		_ = f.SetCellStyle(sheet, "B1", "B1", styleID)
	})

	rows, err := New().ReadRows(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	cell := rows[0][1]
	if cell.Type() != document.CellDate {
		t.Fatalf("cell type = %v, want date", cell.Type())
	}
	if got := cell.String(); got != "2024-01-12T00:00:00" {
		t.Errorf("date cell = %q", got)
	}
}

func TestReadRows_CustomDateFormat(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		sheet := f.GetSheetName(0)
		_ = f.SetCellValue(sheet, "A1", "Maturity Date")
		// serial for 2023-11-01 with a custom date format (NumFmt >= 164)
		_ = f.SetCellValue(sheet, "B1", 45231.0)
		numFmt := "dd/mm/yyyy"
		styleID, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
		_ = f.SetCellStyle(sheet, "B1", "B1", styleID)
	})

	rows, err := New().ReadRows(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	cell := rows[0][1]
	if cell.Type() != document.CellDate {
		t.Fatalf("cell type = %v, want date", cell.Type())
	}
	if got := cell.String(); got != "2023-11-01T00:00:00" {
		t.Errorf("date cell = %q", got)
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{"dd/mm/yyyy", true},
		{"d-mmm-yyyy", true},
		{"hh:mm:ss", true},
		{"[$-409]d-mmm-yy", true},
		{"0.00", false},
		{"#,##0.00", false},
		{`"yearly rate" 0.00%`, false},
		{`0.00\d`, false},
		{"[Red]0.00", false},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := isDateFormat(tt.format); got != tt.want {
				t.Errorf("isDateFormat(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestReadRows_FormulaCachedResult(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {
		sheet := f.GetSheetName(0)
		_ = f.SetCellValue(sheet, "A1", "Coupon")
		_ = f.SetCellFormula(sheet, "B1", "B2*B3")
	})

	rows, err := New().ReadRows(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	cell := rows[0][1]
	if cell.Type() != document.CellFormula {
		t.Fatalf("cell type = %v, want formula", cell.Type())
	}
	// no cached result in a freshly built workbook: the formula source is
	// the last fallback
	if got := cell.String(); got != "B2*B3" {
		t.Errorf("formula cell = %q", got)
	}
}

func TestReadRows_MissingFile(t *testing.T) {
	_, err := New().ReadRows(context.Background(), filepath.Join(t.TempDir(), "absent.xlsx"))
	if !errors.Is(err, domain.ErrSourceNotFound) {
		t.Errorf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestReadRows_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := New().ReadRows(context.Background(), path)
	if !errors.Is(err, domain.ErrSourceUnreadable) {
		t.Errorf("err = %v, want ErrSourceUnreadable", err)
	}
}
