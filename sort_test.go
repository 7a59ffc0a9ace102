package xlshift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func refStrings(refs []CellRef) []string {
	out := make([]string, len(refs))
	for i, c := range refs {
		out[i] = c.String()
	}
	return out
}

func TestCompareRowCol(t *testing.T) {
	a1 := NewCellRef(0, 0)
	b2 := NewCellRef(1, 1)

	assert.Negative(t, CompareRow(a1, b2))
	assert.Positive(t, CompareRow(b2, a1))
	assert.Zero(t, CompareRow(a1, NewCellRef(0, 5)))

	assert.Negative(t, CompareCol(a1, b2))
	assert.Positive(t, CompareCol(b2, a1))
	assert.Zero(t, CompareCol(a1, NewCellRef(5, 0)))
}

func TestSortRefs(t *testing.T) {
	mk := func() []CellRef {
		return []CellRef{NewCellRef(2, 0), NewCellRef(0, 2), NewCellRef(1, 1)}
	}

	topToBottom := mk()
	SortRefs(topToBottom, RowAxis, false)
	assert.Equal(t, []string{"C1", "B2", "A3"}, refStrings(topToBottom))

	bottomToTop := mk()
	SortRefs(bottomToTop, RowAxis, true)
	assert.Equal(t, []string{"A3", "B2", "C1"}, refStrings(bottomToTop))

	startToEnd := mk()
	SortRefs(startToEnd, ColAxis, false)
	assert.Equal(t, []string{"A3", "B2", "C1"}, refStrings(startToEnd))

	endToStart := mk()
	SortRefs(endToStart, ColAxis, true)
	assert.Equal(t, []string{"C1", "B2", "A3"}, refStrings(endToStart))
}
