package document

import (
	"strconv"
	"time"
)

// CellType is the value type of a tabular cell.
type CellType int

// Cell type constants.
const (
	CellText CellType = iota
	CellNumber
	CellBool
	CellDate
	CellFormula
)

// Cell is one typed tabular cell value.
type Cell struct {
	kind    CellType
	text    string
	number  float64
	boolean bool
	date    time.Time
	formula string
	// cached formula results, in preference order
	cachedText   string
	cachedNumber *float64
}

// TextCell creates a text cell.
func TextCell(s string) Cell { return Cell{kind: CellText, text: s} }

// NumberCell creates a numeric cell.
func NumberCell(n float64) Cell { return Cell{kind: CellNumber, number: n} }

// BoolCell creates a boolean cell.
func BoolCell(b bool) Cell { return Cell{kind: CellBool, boolean: b} }

// DateCell creates a date cell.
func DateCell(t time.Time) Cell { return Cell{kind: CellDate, date: t} }

// FormulaCell creates a formula cell carrying the formula source and its
// cached results. cachedNumber may be nil when no numeric result exists.
func FormulaCell(formula, cachedText string, cachedNumber *float64) Cell {
	return Cell{kind: CellFormula, formula: formula, cachedText: cachedText, cachedNumber: cachedNumber}
}

// Type returns the cell value type.
func (c Cell) Type() CellType { return c.kind }

// String converts the cell to the string form stored in the field store:
// text as-is, numbers in plain decimal notation (never exponential),
// booleans as "true"/"false", dates as an ISO timestamp, and formulas by
// preferring the cached string result, then the cached numeric result,
// then the formula source itself.
func (c Cell) String() string {
	switch c.kind {
	case CellText:
		return c.text
	case CellNumber:
		return formatNumber(c.number)
	case CellBool:
		return strconv.FormatBool(c.boolean)
	case CellDate:
		return c.date.Format("2006-01-02T15:04:05")
	case CellFormula:
		if c.cachedText != "" {
			return c.cachedText
		}
		if c.cachedNumber != nil {
			return formatNumber(*c.cachedNumber)
		}
		return c.formula
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
