package xlshift

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	s := sheetWith(t, map[string]any{"B2": 1, "C3": 1, "E5": 1})

	parent := mustRange(t, "A1:D4")
	assert.True(t, s.Contains(parent, mustRange(t, "B2:C3")))
	assert.False(t, s.Contains(parent, mustRange(t, "B2:E5"))) // E5 escapes
}

// Containment and overlap are both defined over the populated cells of
// the child range, so disjoint populated ranges share neither.
func TestContainsOverlaps_DisjointDuality(t *testing.T) {
	s := sheetWith(t, map[string]any{
		"A1": 1, "A3": 1, "A5": 1,
		"B1": 1, "B3": 1, "B5": 1,
	})

	a := mustRange(t, "A1:A5")
	b := mustRange(t, "B1:B5")
	assert.False(t, s.Overlaps(a, b))
	assert.False(t, s.Contains(a, b))
	assert.True(t, s.Overlaps(a, a))
	assert.True(t, s.Contains(a, a))
}

// A child range with no populated cells is vacuously contained and never
// overlapping.
func TestContains_EmptyChildVacuous(t *testing.T) {
	s := sheetWith(t, map[string]any{"A1": 1})

	empty := mustRange(t, "F6:H9")
	assert.True(t, s.Contains(mustRange(t, "A1:A1"), empty))
	assert.False(t, s.Overlaps(mustRange(t, "A1:A1"), empty))

	// Even a parent disjoint from everything contains an empty child.
	assert.True(t, s.Contains(mustRange(t, "Z9:Z9"), empty))
}

func TestContains_OpenRangeParent(t *testing.T) {
	s := sheetWith(t, map[string]any{"B2": 1, "C9": 1, "E1": 1})

	cols := mustRange(t, "B:D")
	assert.True(t, s.Contains(cols, mustRange(t, "B2:C9")))
	assert.False(t, s.Contains(cols, mustRange(t, "B1:E9"))) // E1 outside B:D
	assert.True(t, s.Overlaps(cols, mustRange(t, "B1:E9")))
}
