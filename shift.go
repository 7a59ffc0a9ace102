package xlshift

import "fmt"

// Delta is a relative displacement in rows and columns.
type Delta struct {
	Rows int
	Cols int
}

// Shift returns the cell reference displaced by the delta.
func (c CellRef) Shift(d Delta) CellRef {
	return CellRef{Row: c.Row + d.Rows, Col: c.Col + d.Cols}
}

// Shift returns the range displaced by the delta. Each component applies
// only to a bounded axis, so a whole-row range ignores the column delta
// and a whole-column range ignores the row delta.
func (r RangeRef) Shift(d Delta) RangeRef {
	if r.HasRows {
		r.StartRow += d.Rows
		r.EndRow += d.Rows
	}
	if r.HasCols {
		r.StartCol += d.Cols
		r.EndCol += d.Cols
	}
	return r
}

// ShiftRef displaces a reference key by the delta, dispatching on its
// classification: cell and range keys are decoded, shifted, and
// re-encoded; special keys pass through unchanged.
func ShiftRef(key string, d Delta) (string, error) {
	switch Classify(key) {
	case KindSpecial:
		return key, nil
	case KindRange:
		r, err := ParseRangeRef(key)
		if err != nil {
			return "", err
		}
		return r.Shift(d).String(), nil
	default:
		c, err := ParseCellRef(key)
		if err != nil {
			return "", err
		}
		return c.Shift(d).String(), nil
	}
}

// MoveCell moves the cell at from to the key to. Any cell already at to
// is silently overwritten; the ordered walks in the insert and delete
// operations rely on exactly that, so callers invoking MoveCell directly
// must order their own moves or accept the loss.
func (s *Sheet) MoveCell(from, to string) error {
	src, err := ParseCellRef(from)
	if err != nil {
		return err
	}
	dst, err := ParseCellRef(to)
	if err != nil {
		return err
	}
	if !s.Has(from) {
		return &MissingCellError{Ref: src.String()}
	}
	s.move(src, dst)
	return nil
}

// MoveCellBy moves the cell at ref by the delta.
func (s *Sheet) MoveCellBy(ref string, d Delta) error {
	src, err := ParseCellRef(ref)
	if err != nil {
		return err
	}
	dst := src.Shift(d)
	if dst.Row < 0 || dst.Col < 0 {
		return fmt.Errorf("move %s by (%+d,%+d): destination off sheet", src, d.Rows, d.Cols)
	}
	if !s.Has(ref) {
		return &MissingCellError{Ref: src.String()}
	}
	s.move(src, dst)
	return nil
}

func (s *Sheet) move(src, dst CellRef) {
	from, to := src.String(), dst.String()
	if from == to {
		return
	}
	s.cells[to] = s.cells[from]
	delete(s.cells, from)
}

// InsertRow opens a blank row at the given index: every cell on or below
// it moves down by one. Returns the sheet, mutated in place, with its
// extent recomputed.
func (s *Sheet) InsertRow(index int) *Sheet {
	refs := s.Select(Or(IsAtRow(index), IsBelow(index)))
	SortRefs(refs, RowAxis, true) // bottom-to-top so no move lands on a pending cell
	for _, c := range refs {
		s.move(c, c.Shift(Delta{Rows: 1}))
	}
	s.UpdateExtent()
	return s
}

// InsertColumn opens a blank column at the given index: every cell on or
// after it moves right by one.
func (s *Sheet) InsertColumn(index int) *Sheet {
	refs := s.Select(Or(IsAtCol(index), IsAfter(index)))
	SortRefs(refs, ColAxis, true)
	for _, c := range refs {
		s.move(c, c.Shift(Delta{Cols: 1}))
	}
	s.UpdateExtent()
	return s
}

// DeleteRow removes the row at the given index: its cells are cleared and
// every cell below moves up by one.
func (s *Sheet) DeleteRow(index int) *Sheet {
	for _, c := range s.Select(IsAtRow(index)) {
		delete(s.cells, c.String())
	}
	refs := s.Select(IsBelow(index))
	SortRefs(refs, RowAxis, false) // top-to-bottom, walking toward the cleared line
	for _, c := range refs {
		s.move(c, c.Shift(Delta{Rows: -1}))
	}
	s.UpdateExtent()
	return s
}

// DeleteColumn removes the column at the given index: its cells are
// cleared and every cell after moves left by one.
func (s *Sheet) DeleteColumn(index int) *Sheet {
	for _, c := range s.Select(IsAtCol(index)) {
		delete(s.cells, c.String())
	}
	refs := s.Select(IsAfter(index))
	SortRefs(refs, ColAxis, false)
	for _, c := range refs {
		s.move(c, c.Shift(Delta{Cols: -1}))
	}
	s.UpdateExtent()
	return s
}

// InsertCellShiftDown opens a blank cell at ref by moving it and every
// cell below it in the same column down by one. Other columns are
// untouched.
func (s *Sheet) InsertCellShiftDown(ref string) error {
	c, err := ParseCellRef(ref)
	if err != nil {
		return err
	}
	refs := s.Select(And(IsAtCol(c.Col), Not(IsAbove(c.Row))))
	SortRefs(refs, RowAxis, true)
	for _, r := range refs {
		s.move(r, r.Shift(Delta{Rows: 1}))
	}
	s.UpdateExtent()
	return nil
}

// InsertCellShiftRight opens a blank cell at ref by moving it and every
// cell after it in the same row right by one. Other rows are untouched.
func (s *Sheet) InsertCellShiftRight(ref string) error {
	c, err := ParseCellRef(ref)
	if err != nil {
		return err
	}
	refs := s.Select(And(IsAtRow(c.Row), Not(IsBefore(c.Col))))
	SortRefs(refs, ColAxis, true)
	for _, r := range refs {
		s.move(r, r.Shift(Delta{Cols: 1}))
	}
	s.UpdateExtent()
	return nil
}
