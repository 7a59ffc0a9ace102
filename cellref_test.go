package xlshift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		ref string
		row int
		col int
	}{
		{"A1", 0, 0},
		{"B7", 6, 1},
		{"Z1", 0, 25},
		{"AA10", 9, 26},
		{"AAA100", 99, 702},
	}
	for _, tt := range tests {
		c, err := ParseCellRef(tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.row, c.Row, tt.ref)
		assert.Equal(t, tt.col, c.Col, tt.ref)
	}
}

func TestParseCellRef_Malformed(t *testing.T) {
	for _, ref := range []string{"", "7", "B", "b7", "B0", "B07", "B-1", "$A$1", "B7:D9", "A 1"} {
		_, err := ParseCellRef(ref)
		require.Error(t, err, ref)
		var mre *MalformedRefError
		require.ErrorAs(t, err, &mre, ref)
		assert.Equal(t, ref, mre.Ref)
	}
}

func TestCellRefRoundTrip(t *testing.T) {
	for _, ref := range []string{"A1", "B7", "Z99", "AA1", "AZ10", "ZZ100", "AAA1"} {
		c, err := ParseCellRef(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, ref, c.String())
	}
}

func TestColToName(t *testing.T) {
	tests := []struct {
		col  int
		name string
	}{
		{0, "A"}, {1, "B"}, {25, "Z"}, {26, "AA"}, {51, "AZ"}, {701, "ZZ"}, {702, "AAA"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.name, ColToName(tt.col))

		col, err := NameToCol(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.col, col)
	}
}

func TestNameToCol_Malformed(t *testing.T) {
	for _, name := range []string{"", "a", "A1", "A B"} {
		_, err := NameToCol(name)
		assert.Error(t, err, name)
	}
}

func TestParseRangeRef_Bounded(t *testing.T) {
	r, err := ParseRangeRef("B7:D9")
	require.NoError(t, err)
	assert.True(t, r.HasRows)
	assert.True(t, r.HasCols)
	assert.Equal(t, NewCellRef(6, 1), r.Start())
	assert.Equal(t, NewCellRef(8, 3), r.End())
}

func TestParseRangeRef_RowForm(t *testing.T) {
	r, err := ParseRangeRef("2:5")
	require.NoError(t, err)
	assert.True(t, r.HasRows)
	assert.False(t, r.HasCols)
	assert.Equal(t, 1, r.StartRow)
	assert.Equal(t, 4, r.EndRow)
}

func TestParseRangeRef_ColForm(t *testing.T) {
	r, err := ParseRangeRef("B:D")
	require.NoError(t, err)
	assert.False(t, r.HasRows)
	assert.True(t, r.HasCols)
	assert.Equal(t, 1, r.StartCol)
	assert.Equal(t, 3, r.EndCol)
}

func TestParseRangeRef_SingleCell(t *testing.T) {
	r, err := ParseRangeRef("B7")
	require.NoError(t, err)
	assert.True(t, r.HasRows)
	assert.True(t, r.HasCols)
	assert.Equal(t, r.Start(), r.End())
	assert.Equal(t, "B7:B7", r.String())
}

func TestParseRangeRef_Malformed(t *testing.T) {
	for _, ref := range []string{"", ":", "B7:", ":D9", "B7:D", "2:D9", "b:d", "0:5"} {
		_, err := ParseRangeRef(ref)
		require.Error(t, err, ref)
		var mre *MalformedRefError
		assert.ErrorAs(t, err, &mre, ref)
	}
}

func TestParseRangeRef_Reversed(t *testing.T) {
	for _, ref := range []string{"D9:B7", "5:2", "D:B"} {
		_, err := ParseRangeRef(ref)
		assert.Error(t, err, ref)
	}
}

func TestRangeRefRoundTrip(t *testing.T) {
	for _, ref := range []string{"B7:D9", "A1:A1", "2:5", "1:1", "B:D", "A:A", "AA10:AB20"} {
		r, err := ParseRangeRef(ref)
		require.NoError(t, err, ref)
		assert.Equal(t, ref, r.String())
	}
}

func TestRangeRefContainsCell_Unbounded(t *testing.T) {
	rows := RowSpan(1, 4) // "2:5"
	assert.True(t, rows.ContainsCell(NewCellRef(1, 0)))
	assert.True(t, rows.ContainsCell(NewCellRef(4, 700)))
	assert.False(t, rows.ContainsCell(NewCellRef(5, 0)))

	cols := ColSpan(1, 3) // "B:D"
	assert.True(t, cols.ContainsCell(NewCellRef(0, 1)))
	assert.True(t, cols.ContainsCell(NewCellRef(9999, 3)))
	assert.False(t, cols.ContainsCell(NewCellRef(0, 0)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		key  string
		kind RefKind
	}{
		{"$extent", KindSpecial},
		{"$name", KindSpecial},
		{"B7:D9", KindRange},
		{"2:5", KindRange},
		{"B:D", KindRange},
		{"B7", KindCell},
		{"bogus", KindCell},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, Classify(tt.key), tt.key)
	}
}

// Every key matches exactly one kind; the three classes partition the
// key space.
func TestClassify_Partition(t *testing.T) {
	keys := []string{"$extent", "B7", "B7:D9", "2:5", "B:D", "$B7:D9", "", "junk"}
	for _, key := range keys {
		kind := Classify(key)
		matches := 0
		for _, k := range []RefKind{KindSpecial, KindRange, KindCell} {
			if kind == k {
				matches++
			}
		}
		assert.Equal(t, 1, matches, key)
	}
}
