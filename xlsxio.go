package xlshift

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// LoadFile reads an xlsx file into a Workbook. Only cell values and
// defined names are carried over; styling, merged cells, and dimensions
// stay with the file.
func LoadFile(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()
	return loadWorkbook(f)
}

// LoadReader reads an xlsx stream into a Workbook.
func LoadReader(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx stream: %w", err)
	}
	defer f.Close()
	return loadWorkbook(f)
}

func loadWorkbook(f *excelize.File) (*Workbook, error) {
	wb := NewWorkbook()

	for _, name := range f.GetSheetList() {
		sheet := wb.AddSheet(name)

		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("read rows of sheet %q: %w", name, err)
		}
		for rowIdx, row := range rows {
			for colIdx, formatted := range row {
				if formatted == "" {
					continue
				}
				ref := NewCellRef(rowIdx, colIdx).String()
				cell, err := readCell(f, name, ref, formatted)
				if err != nil {
					return nil, fmt.Errorf("read cell %s!%s: %w", name, ref, err)
				}
				if err := sheet.Set(ref, cell); err != nil {
					return nil, err
				}
			}
		}
		sheet.UpdateExtent()
	}

	for _, dn := range f.GetDefinedName() {
		wb.names[dn.Name] = dn.RefersTo
	}
	return wb, nil
}

// readCell classifies one populated cell into a tagged Cell. Formula
// cells contribute their cached result as text; this module never
// evaluates formulas.
func readCell(f *excelize.File, sheet, ref, formatted string) (Cell, error) {
	ct, err := f.GetCellType(sheet, ref)
	if err != nil {
		return Cell{}, err
	}

	switch ct {
	case excelize.CellTypeBool:
		raw, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
		if err != nil {
			return Cell{}, err
		}
		return NewCell(CellBoolean, raw == "1"), nil

	case excelize.CellTypeDate:
		return NewCell(CellDate, formatted), nil

	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		raw, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
		if err != nil {
			return Cell{}, err
		}
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return NewCell(CellNumber, n), nil
		}
		return NewCell(CellText, formatted), nil

	default:
		return NewCell(CellText, formatted), nil
	}
}

// SaveFile writes the workbook to an xlsx file.
func (w *Workbook) SaveFile(path string) error {
	f, err := buildFile(w)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %q: %w", path, err)
	}
	return nil
}

// WriteTo writes the workbook as xlsx to wr.
func (w *Workbook) WriteTo(wr io.Writer) (int64, error) {
	f, err := buildFile(w)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return f.WriteTo(wr)
}

func buildFile(w *Workbook) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, sheet := range w.Sheets() {
		if i == 0 {
			// excelize seeds a new file with "Sheet1"; reuse it.
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("name sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet.Name, err)
		}

		for _, c := range sheet.CellRefs() {
			cell, err := sheet.Get(c.String())
			if err != nil {
				return nil, err
			}
			if err := writeCell(f, sheet.Name, c.String(), cell); err != nil {
				return nil, fmt.Errorf("write cell %s!%s: %w", sheet.Name, c, err)
			}
		}
	}

	for name, ref := range w.DefinedNames() {
		dn := &excelize.DefinedName{Name: name, RefersTo: ref}
		if err := f.SetDefinedName(dn); err != nil {
			return nil, fmt.Errorf("define name %q: %w", name, err)
		}
	}
	return f, nil
}

func writeCell(f *excelize.File, sheet, ref string, cell Cell) error {
	switch cell.Type {
	case CellEmpty:
		return nil
	case CellBoolean:
		if b, ok := cell.Value.(bool); ok {
			return f.SetCellBool(sheet, ref, b)
		}
		return f.SetCellValue(sheet, ref, cell.Value)
	case CellText:
		if s, ok := cell.Value.(string); ok {
			return f.SetCellStr(sheet, ref, s)
		}
		return f.SetCellValue(sheet, ref, cell.Value)
	default:
		return f.SetCellValue(sheet, ref, cell.Value)
	}
}
