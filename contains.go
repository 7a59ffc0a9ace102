package xlshift

// Contains reports whether every populated cell inside child also lies
// inside parent. Only the sheet's population counts, not the child's
// geometric extent, so a child range with no populated cells is
// vacuously contained.
func (s *Sheet) Contains(parent, child RangeRef) bool {
	inParent := InRange(parent)
	for _, c := range s.RangeCellRefs(child) {
		if !inParent(c) {
			return false
		}
	}
	return true
}

// Overlaps reports whether at least one populated cell inside child also
// lies inside parent.
func (s *Sheet) Overlaps(parent, child RangeRef) bool {
	inParent := InRange(parent)
	for _, c := range s.RangeCellRefs(child) {
		if inParent(c) {
			return true
		}
	}
	return false
}
