package xlshift

import (
	"strconv"
	"strings"
)

// CellRef is a single cell position. Row and Col are zero-based.
type CellRef struct {
	Row int
	Col int
}

// NewCellRef creates a CellRef with explicit row and col.
func NewCellRef(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// ParseCellRef parses a canonical cell reference like "B7" into a CellRef.
// Column letters must be uppercase and the row number 1-based, which is
// exactly what String produces; anything else is a *MalformedRefError.
func ParseCellRef(s string) (CellRef, error) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return CellRef{}, malformed(s, "want column letters followed by a row number")
	}

	col, err := NameToCol(s[:i])
	if err != nil {
		return CellRef{}, malformed(s, "invalid column name")
	}

	row, ok := parseRowNumber(s[i:])
	if !ok {
		return CellRef{}, malformed(s, "invalid row number")
	}

	return CellRef{Row: row, Col: col}, nil
}

// parseRowNumber converts a 1-based row number to a zero-based index,
// rejecting signs and leading zeros so that encoding round-trips.
func parseRowNumber(s string) (int, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || strconv.Itoa(n) != s {
		return 0, false
	}
	return n - 1, true
}

// String formats the CellRef in canonical A1 form.
func (c CellRef) String() string {
	return ColToName(c.Col) + strconv.Itoa(c.Row+1)
}

// ColToName converts a zero-based column index to a column name.
// 0→"A", 25→"Z", 26→"AA", 702→"AAA"
func ColToName(col int) string {
	result := ""
	col++ // convert to 1-based for algorithm
	for col > 0 {
		col-- // adjust for 0-indexed letter
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}

// NameToCol converts a column name to a zero-based column index.
// "A"→0, "Z"→25, "AA"→26
func NameToCol(name string) (int, error) {
	if !isLetters(name) {
		return 0, malformed(name, "invalid column name")
	}
	col := 0
	for i := 0; i < len(name); i++ {
		col = col*26 + int(name[i]-'A') + 1
	}
	return col - 1, nil
}

// RangeSep joins the two endpoints of a range reference.
const RangeSep = ":"

// RangeRef is a rectangular span. Each axis is either bounded by a
// start/end pair or left unconstrained: a whole-column range "B:D" has
// HasRows false, a whole-row range "2:5" has HasCols false. Bounded axes
// satisfy start ≤ end.
type RangeRef struct {
	StartRow, EndRow int
	StartCol, EndCol int
	HasRows, HasCols bool
}

// NewRangeRef creates a fully bounded RangeRef from two corner cells.
func NewRangeRef(start, end CellRef) RangeRef {
	return RangeRef{
		StartRow: start.Row, EndRow: end.Row,
		StartCol: start.Col, EndCol: end.Col,
		HasRows: true, HasCols: true,
	}
}

// RowSpan creates a whole-row RangeRef covering rows start..end.
func RowSpan(start, end int) RangeRef {
	return RangeRef{StartRow: start, EndRow: end, HasRows: true}
}

// ColSpan creates a whole-column RangeRef covering columns start..end.
func ColSpan(start, end int) RangeRef {
	return RangeRef{StartCol: start, EndCol: end, HasCols: true}
}

// ParseRangeRef parses a range reference. Accepted forms:
//
//	"B7:D9"  both axes bounded
//	"2:5"    rows bounded, columns unconstrained
//	"B:D"    columns bounded, rows unconstrained
//	"B7"     single cell, start == end
//
// Mixed endpoint forms ("B7:D", "2:D9") and ranges whose bounded axes are
// reversed are rejected with a *MalformedRefError.
func ParseRangeRef(s string) (RangeRef, error) {
	first, last, found := strings.Cut(s, RangeSep)
	if !found {
		c, err := ParseCellRef(s)
		if err != nil {
			return RangeRef{}, err
		}
		return NewRangeRef(c, c), nil
	}

	r, ok := parseEndpoints(first, last)
	if !ok {
		return RangeRef{}, malformed(s, "endpoints must be two cells, two rows, or two columns")
	}
	if r.HasRows && r.StartRow > r.EndRow {
		return RangeRef{}, malformed(s, "start row after end row")
	}
	if r.HasCols && r.StartCol > r.EndCol {
		return RangeRef{}, malformed(s, "start column after end column")
	}
	return r, nil
}

func parseEndpoints(first, last string) (RangeRef, bool) {
	switch {
	case isDigits(first) && isDigits(last):
		start, ok := parseRowNumber(first)
		if !ok {
			return RangeRef{}, false
		}
		end, ok := parseRowNumber(last)
		if !ok {
			return RangeRef{}, false
		}
		return RowSpan(start, end), true

	case isLetters(first) && isLetters(last):
		start, err := NameToCol(first)
		if err != nil {
			return RangeRef{}, false
		}
		end, err := NameToCol(last)
		if err != nil {
			return RangeRef{}, false
		}
		return ColSpan(start, end), true

	default:
		start, err := ParseCellRef(first)
		if err != nil {
			return RangeRef{}, false
		}
		end, err := ParseCellRef(last)
		if err != nil {
			return RangeRef{}, false
		}
		return NewRangeRef(start, end), true
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// String formats the RangeRef, omitting any unconstrained axis so that
// parsed shorthand forms round-trip exactly.
func (r RangeRef) String() string {
	switch {
	case r.HasRows && r.HasCols:
		return r.Start().String() + RangeSep + r.End().String()
	case r.HasRows:
		return strconv.Itoa(r.StartRow+1) + RangeSep + strconv.Itoa(r.EndRow+1)
	case r.HasCols:
		return ColToName(r.StartCol) + RangeSep + ColToName(r.EndCol)
	default:
		return RangeSep
	}
}

// Start returns the top-left corner of a fully bounded range.
func (r RangeRef) Start() CellRef {
	return CellRef{Row: r.StartRow, Col: r.StartCol}
}

// End returns the bottom-right corner of a fully bounded range.
func (r RangeRef) End() CellRef {
	return CellRef{Row: r.EndRow, Col: r.EndCol}
}

// ContainsCell reports whether the cell lies inside the range. An
// unconstrained axis is always satisfied, so a whole-row range acts as a
// pure row filter and a whole-column range as a pure column filter.
func (r RangeRef) ContainsCell(c CellRef) bool {
	if r.HasRows && (c.Row < r.StartRow || c.Row > r.EndRow) {
		return false
	}
	if r.HasCols && (c.Col < r.StartCol || c.Col > r.EndCol) {
		return false
	}
	return true
}

// SpecialMarker prefixes sheet-level metadata keys such as "$extent".
const SpecialMarker = "$"

// RefKind classifies a sheet key as special metadata, a range reference,
// or a cell reference.
type RefKind int

const (
	KindSpecial RefKind = iota
	KindRange
	KindCell
)

// String returns a human-readable name for the RefKind.
func (k RefKind) String() string {
	switch k {
	case KindSpecial:
		return "Special"
	case KindRange:
		return "Range"
	case KindCell:
		return "Cell"
	default:
		return "Unknown"
	}
}

// Classify assigns exactly one RefKind to a key: special if it starts with
// the marker, else range if it contains the separator, else cell. The kind
// says which parser applies, not that the key parses cleanly.
func Classify(key string) RefKind {
	switch {
	case strings.HasPrefix(key, SpecialMarker):
		return KindSpecial
	case strings.Contains(key, RangeSep):
		return KindRange
	default:
		return KindCell
	}
}
