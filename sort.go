package xlshift

import (
	"cmp"
	"slices"
)

// SortAxis selects which coordinate a comparison looks at.
type SortAxis int

const (
	RowAxis SortAxis = iota
	ColAxis
)

// CompareRow orders two cell references by row, top to bottom.
func CompareRow(a, b CellRef) int {
	return cmp.Compare(a.Row, b.Row)
}

// CompareCol orders two cell references by column, start to end.
func CompareCol(a, b CellRef) int {
	return cmp.Compare(a.Col, b.Col)
}

// compareRowMajor orders by row, then column. CellRefs uses it to give
// sheet enumeration a stable documented order.
func compareRowMajor(a, b CellRef) int {
	if c := CompareRow(a, b); c != 0 {
		return c
	}
	return CompareCol(a, b)
}

// SortRefs sorts cell references along one axis, descending when reverse
// is set. The structural operations depend on this ordering: an in-place
// move that overwrites its target is only safe when no cell is moved onto
// a position still awaiting its own move, so insertion walks away from the
// insertion point (bottom-to-top, end-to-start) and deletion walks toward
// the deleted line (top-to-bottom, start-to-end).
func SortRefs(refs []CellRef, axis SortAxis, reverse bool) {
	compare := CompareRow
	if axis == ColAxis {
		compare = CompareCol
	}
	if reverse {
		slices.SortFunc(refs, func(a, b CellRef) int { return compare(b, a) })
		return
	}
	slices.SortFunc(refs, compare)
}
