// Package xlsxsource decodes .xlsx term sheets into typed rows.
package xlsxsource

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/clearstone-io/tradematch/internal/domain"
	"github.com/clearstone-io/tradematch/internal/domain/document"
)

// dateNumFmts are the built-in number formats Excel renders as dates.
var dateNumFmts = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 18: true,
	19: true, 20: true, 21: true, 22: true,
	45: true, 46: true, 47: true,
}

// Reader decodes the first sheet of an .xlsx workbook into rows of typed
// cells. The tabular extractor consumes the result.
type Reader struct{}

// New creates an XLSX reader.
func New() *Reader {
	return &Reader{}
}

// ReadRows returns the rows of the first sheet. A missing file maps to
// domain.ErrSourceNotFound, a broken workbook to domain.ErrSourceUnreadable.
// A cell that cannot be decoded degrades to an empty text cell instead of
// failing the row.
func (r *Reader) ReadRows(_ context.Context, path string) ([][]document.Cell, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("term sheet %s: %w", path, domain.ErrSourceNotFound)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %v: %w", path, err, domain.ErrSourceUnreadable)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets: %w", path, domain.ErrSourceUnreadable)
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %v: %w", sheet, path, err, domain.ErrSourceUnreadable)
	}

	rows := make([][]document.Cell, len(raw))
	for rowIdx, rawRow := range raw {
		cells := make([]document.Cell, len(rawRow))
		for colIdx, rawValue := range rawRow {
			cells[colIdx] = r.cell(f, sheet, colIdx+1, rowIdx+1, rawValue)
		}
		rows[rowIdx] = cells
	}
	return rows, nil
}

// cell maps one workbook cell onto the typed domain cell.
func (r *Reader) cell(f *excelize.File, sheet string, col, row int, raw string) document.Cell {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return document.TextCell("")
	}

	if formula, ferr := f.GetCellFormula(sheet, axis); ferr == nil && formula != "" {
		return formulaCell(f, sheet, axis, formula, raw)
	}

	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return document.TextCell("")
	}

	switch cellType {
	case excelize.CellTypeBool:
		return document.BoolCell(raw == "1" || strings.EqualFold(raw, "true"))
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		return numberCell(f, sheet, axis, raw)
	case excelize.CellTypeDate:
		return numberCell(f, sheet, axis, raw)
	default:
		// shared strings, inline strings, errors: surface the formatted value
		formatted, verr := f.GetCellValue(sheet, axis)
		if verr != nil {
			return document.TextCell("")
		}
		return document.TextCell(formatted)
	}
}

// numberCell decodes a numeric cell, promoting date-formatted serials to
// date cells.
func numberCell(f *excelize.File, sheet, axis, raw string) document.Cell {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return document.TextCell("")
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		// unset type with non-numeric content behaves as text
		return document.TextCell(raw)
	}
	if isDateStyle(f, sheet, axis) {
		if t, terr := excelize.ExcelDateToTime(n, false); terr == nil {
			return document.DateCell(t)
		}
	}
	return document.NumberCell(n)
}

// formulaCell prefers the cached string result, then the cached numeric
// result, then the formula source text.
func formulaCell(f *excelize.File, sheet, axis, formula, raw string) document.Cell {
	cachedText, err := f.GetCellValue(sheet, axis)
	if err != nil {
		cachedText = ""
	}

	var cachedNumber *float64
	if n, nerr := strconv.ParseFloat(strings.TrimSpace(raw), 64); nerr == nil {
		cachedNumber = &n
	}
	if cachedNumber != nil && cachedText == raw {
		// the formatted value is just the raw number; let the numeric
		// fallback format it without exponential notation
		cachedText = ""
	}
	return document.FormulaCell(formula, cachedText, cachedNumber)
}

func isDateStyle(f *excelize.File, sheet, axis string) bool {
	styleID, err := f.GetCellStyle(sheet, axis)
	if err != nil {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if dateNumFmts[style.NumFmt] {
		return true
	}
	if style.CustomNumFmt != nil {
		return isDateFormat(*style.CustomNumFmt)
	}
	return false
}

// isDateFormat reports whether a custom number format string renders as a
// date or time. Quoted literals, bracketed sections (colors, conditions,
// locale prefixes) and escaped characters do not count; any remaining
// y/m/d/h/s code does.
func isDateFormat(format string) bool {
	inQuote := false
	inBracket := false
	for i := 0; i < len(format); i++ {
		c := format[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			// the next character is a literal or padding, not a format code
			i++
		case c == 'y' || c == 'Y' || c == 'm' || c == 'M' || c == 'd' || c == 'D' ||
			c == 'h' || c == 'H' || c == 's' || c == 'S':
			return true
		}
	}
	return false
}
