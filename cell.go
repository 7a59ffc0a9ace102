package xlshift

import (
	"fmt"
	"time"
)

// CellType represents the type of data in a cell.
type CellType int

const (
	CellEmpty CellType = iota
	CellNumber
	CellBoolean
	CellText
	CellDate
)

// String returns a human-readable name for the CellType.
func (ct CellType) String() string {
	switch ct {
	case CellEmpty:
		return "Empty"
	case CellNumber:
		return "Number"
	case CellBoolean:
		return "Boolean"
	case CellText:
		return "Text"
	case CellDate:
		return "Date"
	default:
		return "Unknown"
	}
}

// Cell is a tagged value stored at a cell reference. The tag is explicit
// rather than inferred from the dynamic type of Value, so callers can carry
// any representation they like under a chosen tag.
type Cell struct {
	Type  CellType
	Value any
}

// NewCell creates a Cell with an explicit tag.
func NewCell(t CellType, v any) Cell {
	return Cell{Type: t, Value: v}
}

// ValueOf classifies a Go value into a tagged Cell. Integers and floats
// become Number (stored as float64), bool becomes Boolean, time.Time
// becomes Date, nil becomes Empty, and everything else is formatted as
// Text.
func ValueOf(v any) Cell {
	switch x := v.(type) {
	case nil:
		return Cell{Type: CellEmpty}
	case bool:
		return Cell{Type: CellBoolean, Value: x}
	case string:
		return Cell{Type: CellText, Value: x}
	case time.Time:
		return Cell{Type: CellDate, Value: x}
	case float64:
		return Cell{Type: CellNumber, Value: x}
	case float32:
		return Cell{Type: CellNumber, Value: float64(x)}
	case int:
		return Cell{Type: CellNumber, Value: float64(x)}
	case int8:
		return Cell{Type: CellNumber, Value: float64(x)}
	case int16:
		return Cell{Type: CellNumber, Value: float64(x)}
	case int32:
		return Cell{Type: CellNumber, Value: float64(x)}
	case int64:
		return Cell{Type: CellNumber, Value: float64(x)}
	case uint:
		return Cell{Type: CellNumber, Value: float64(x)}
	case uint8:
		return Cell{Type: CellNumber, Value: float64(x)}
	case uint16:
		return Cell{Type: CellNumber, Value: float64(x)}
	case uint32:
		return Cell{Type: CellNumber, Value: float64(x)}
	case uint64:
		return Cell{Type: CellNumber, Value: float64(x)}
	default:
		return Cell{Type: CellText, Value: fmt.Sprint(x)}
	}
}
