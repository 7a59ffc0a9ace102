package xlshift

import "slices"

// Sheet is a mapping from cell reference keys to tagged cell values, plus
// sheet-level metadata: the declared extent and an optional name. The
// metadata lives in explicit fields; string-keyed views of a sheet carry
// it under special "$..." keys, which Classify recognizes.
//
// Every key in the mapping is a canonical cell reference (Set enforces
// this). The declared extent, once computed, is the minimal range
// enclosing all populated cells; the structural mutation operations keep
// it consistent after every edit.
//
// A Sheet is owned by one caller at a time. Operations mutate it in place
// with no internal locking; sharing a sheet across goroutines without
// external synchronization is not supported. A failure partway through a
// multi-cell operation leaves the sheet in the intermediate state —
// callers needing atomicity must copy the sheet first.
type Sheet struct {
	Name   string
	Extent string // declared extent, "" until first computed

	cells map[string]Cell
}

// NewSheet creates an empty sheet.
func NewSheet(name string) *Sheet {
	return &Sheet{Name: name, cells: make(map[string]Cell)}
}

// Set stores a cell under the given reference, replacing any existing
// cell. The reference is canonicalized, so "B7" is the only spelling of
// that key.
func (s *Sheet) Set(ref string, cell Cell) error {
	c, err := ParseCellRef(ref)
	if err != nil {
		return err
	}
	s.cells[c.String()] = cell
	return nil
}

// SetValue classifies a Go value with ValueOf and stores it.
func (s *Sheet) SetValue(ref string, v any) error {
	return s.Set(ref, ValueOf(v))
}

// Get returns the cell at the given reference. An absent cell is a
// *MissingCellError, a bad reference a *MalformedRefError.
func (s *Sheet) Get(ref string) (Cell, error) {
	c, err := ParseCellRef(ref)
	if err != nil {
		return Cell{}, err
	}
	cell, ok := s.cells[c.String()]
	if !ok {
		return Cell{}, &MissingCellError{Ref: c.String()}
	}
	return cell, nil
}

// Has reports whether a cell is populated at the given reference.
func (s *Sheet) Has(ref string) bool {
	_, err := s.Get(ref)
	return err == nil
}

// Clear removes the cell at the given reference. Clearing an absent or
// even malformed reference is a no-op.
func (s *Sheet) Clear(ref string) {
	if c, err := ParseCellRef(ref); err == nil {
		delete(s.cells, c.String())
	}
}

// Len returns the number of populated cells.
func (s *Sheet) Len() int {
	return len(s.cells)
}

// CellRefs returns every populated cell reference in row-major order
// (top to bottom, then left to right). The order is part of the contract.
func (s *Sheet) CellRefs() []CellRef {
	refs := make([]CellRef, 0, len(s.cells))
	for key := range s.cells {
		c, err := ParseCellRef(key)
		if err != nil {
			continue // unreachable while the key invariant holds
		}
		refs = append(refs, c)
	}
	slices.SortFunc(refs, compareRowMajor)
	return refs
}

// RangeCellRefs returns the populated cell references lying inside the
// range, in row-major order.
func (s *Sheet) RangeCellRefs(r RangeRef) []CellRef {
	return filterRefs(s.CellRefs(), InRange(r))
}

// Select returns the populated cell references satisfying the predicate,
// in row-major order.
func (s *Sheet) Select(p Predicate) []CellRef {
	return filterRefs(s.CellRefs(), p)
}

func filterRefs(refs []CellRef, p Predicate) []CellRef {
	out := refs[:0:0]
	for _, c := range refs {
		if p(c) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateExtent recomputes the minimal range enclosing all populated cells
// and writes it to Extent. On an empty sheet the previous extent is left
// untouched; callers that need an empty-sheet signal must check Len.
func (s *Sheet) UpdateExtent() {
	refs := s.CellRefs()
	if len(refs) == 0 {
		return
	}
	bounds := NewRangeRef(refs[0], refs[0])
	for _, c := range refs[1:] {
		bounds.StartRow = min(bounds.StartRow, c.Row)
		bounds.EndRow = max(bounds.EndRow, c.Row)
		bounds.StartCol = min(bounds.StartCol, c.Col)
		bounds.EndCol = max(bounds.EndCol, c.Col)
	}
	s.Extent = bounds.String()
}
