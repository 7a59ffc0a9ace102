package xlshift

import "maps"

// Workbook owns an ordered collection of sheets and a table of defined
// names. Structural edits happen on the sheets; the workbook itself only
// provides lookup. Defined names are not rewritten when the ranges they
// point at move.
type Workbook struct {
	sheets []*Sheet
	names  map[string]string
}

// NewWorkbook creates an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{names: make(map[string]string)}
}

// AddSheet appends a new empty sheet with the given name and returns it.
// If a sheet with that name already exists it is returned instead.
func (w *Workbook) AddSheet(name string) *Sheet {
	if s := w.Sheet(name); s != nil {
		return s
	}
	s := NewSheet(name)
	w.sheets = append(w.sheets, s)
	return s
}

// Sheet returns the sheet with the given name, or nil.
func (w *Workbook) Sheet(name string) *Sheet {
	for _, s := range w.sheets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Sheets returns the sheets in workbook order.
func (w *Workbook) Sheets() []*Sheet {
	return w.sheets
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.sheets))
	for i, s := range w.sheets {
		names[i] = s.Name
	}
	return names
}

// DefineName binds a name to a range reference, validating the reference.
func (w *Workbook) DefineName(name, ref string) error {
	if _, err := ParseRangeRef(ref); err != nil {
		return err
	}
	w.names[name] = ref
	return nil
}

// DefinedNames returns a copy of the defined-name table.
func (w *Workbook) DefinedNames() map[string]string {
	return maps.Clone(w.names)
}
