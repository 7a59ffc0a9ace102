package xlshift

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Predicate is a boolean test over a decoded cell reference. Predicates
// compose with Not, And, and Or and drive the selection steps of the
// structural operations.
type Predicate func(CellRef) bool

// IsAbove matches cells strictly above the given row.
func IsAbove(row int) Predicate {
	return func(c CellRef) bool { return c.Row < row }
}

// IsAtRow matches cells on the given row.
func IsAtRow(row int) Predicate {
	return func(c CellRef) bool { return c.Row == row }
}

// IsBelow matches cells strictly below the given row.
func IsBelow(row int) Predicate {
	return func(c CellRef) bool { return c.Row > row }
}

// IsBefore matches cells strictly left of the given column.
func IsBefore(col int) Predicate {
	return func(c CellRef) bool { return c.Col < col }
}

// IsAtCol matches cells in the given column.
func IsAtCol(col int) Predicate {
	return func(c CellRef) bool { return c.Col == col }
}

// IsAfter matches cells strictly right of the given column.
func IsAfter(col int) Predicate {
	return func(c CellRef) bool { return c.Col > col }
}

// InRange matches cells inside the range, per RangeRef.ContainsCell.
func InRange(r RangeRef) Predicate {
	return r.ContainsCell
}

// Not inverts a predicate.
func Not(p Predicate) Predicate {
	return func(c CellRef) bool { return !p(c) }
}

// And matches when every predicate matches.
func And(ps ...Predicate) Predicate {
	return func(c CellRef) bool {
		for _, p := range ps {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// Or matches when at least one predicate matches.
func Or(ps ...Predicate) Predicate {
	return func(c CellRef) bool {
		for _, p := range ps {
			if p(c) {
				return true
			}
		}
		return false
	}
}

// Filter is a compiled expression over cell positions. The expression
// sees three variables: row (1-based row number), col (column letters),
// and ref (the A1 reference). It must evaluate to a bool.
//
//	row > 2 && col == "B"
//	ref in ["A1", "C3"]
type Filter struct {
	src  string
	prog *vm.Program
}

func filterEnv(c CellRef) map[string]any {
	return map[string]any{
		"row": c.Row + 1,
		"col": ColToName(c.Col),
		"ref": c.String(),
	}
}

// CompileFilter compiles a position filter expression.
func CompileFilter(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.Env(filterEnv(CellRef{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", src, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

// Match evaluates the filter for one cell position.
func (f *Filter) Match(c CellRef) (bool, error) {
	result, err := expr.Run(f.prog, filterEnv(c))
	if err != nil {
		return false, fmt.Errorf("evaluate filter %q: %w", f.src, err)
	}
	return result.(bool), nil
}

// SelectWhere returns the populated cell references matching a filter
// expression, in row-major order. The expression filters cell positions
// only; it has no access to cell values and is unrelated to spreadsheet
// formulas.
func (s *Sheet) SelectWhere(src string) ([]CellRef, error) {
	f, err := CompileFilter(src)
	if err != nil {
		return nil, err
	}
	var out []CellRef
	for _, c := range s.CellRefs() {
		ok, err := f.Match(c)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c)
		}
	}
	return out, nil
}
