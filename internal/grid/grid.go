package grid

import (
	"errors"
	"fmt"
)

// Grid dimensions. Box coordinates run over a 3x3 arrangement of 3x3 boxes.
const (
	Rows    = 9
	Columns = 9
	BoxSize = 3
	Cells   = Rows * Columns
)

// Structural errors. Each is raised at the point of violation and is never
// retried around.
var (
	ErrOutOfRange        = errors.New("coordinates out of range")
	ErrInvalidValue      = errors.New("cell value out of range")
	ErrDuplicateInRow    = errors.New("value already in row")
	ErrDuplicateInColumn = errors.New("value already in column")
	ErrDuplicateInBox    = errors.New("value already in box")
	ErrShapeMismatch     = errors.New("grid input is not 9x9")
)

// Grid is a 9x9 Sudoku grid. Alongside the cell matrix it tracks, for every
// row, column and box, the set of digits definitely present in that group.
// Every mutation keeps the matrix and the three index structures consistent,
// so candidate queries are a set difference rather than a matrix rescan.
//
// A Grid is not safe for concurrent use; each search owns its grid
// exclusively while it runs.
type Grid struct {
	cells [Rows][Columns]uint8
	rows  [Rows]DigitSet
	cols  [Columns]DigitSet
	boxes [BoxSize][BoxSize]DigitSet
}

// New returns an empty grid.
func New() *Grid { return &Grid{} }

// Reset clears the matrix and all index sets.
func (g *Grid) Reset() { *g = Grid{} }

func checkCoords(x, y int) error {
	if x < 0 || x >= Columns || y < 0 || y >= Rows {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, x, y)
	}
	return nil
}

// Value returns the digit at (x, y), 0 for a blank cell.
func (g *Grid) Value(x, y int) (uint8, error) {
	if err := checkCoords(x, y); err != nil {
		return 0, err
	}
	return g.cells[y][x], nil
}

// BoxCoords maps cell coordinates to the coordinates of the 3x3 box that
// contains the cell. For example (4, 1) lies in box (1, 0).
func BoxCoords(x, y int) (bx, by int, err error) {
	if err := checkCoords(x, y); err != nil {
		return 0, 0, err
	}
	return x / BoxSize, y / BoxSize, nil
}

// SetValue assigns val to (x, y). A val of 0 unconditionally clears the cell,
// discarding its prior digit from the row, column and box sets. A val of 1-9
// is validated against all three groups before anything is mutated, so a
// duplicate leaves the grid untouched.
func (g *Grid) SetValue(x, y int, val uint8) error {
	if err := checkCoords(x, y); err != nil {
		return err
	}
	if val > 9 {
		return fmt.Errorf("%w: %d", ErrInvalidValue, val)
	}
	bx, by := x/BoxSize, y/BoxSize
	prev := g.cells[y][x]

	if val == 0 {
		if prev > 0 {
			g.rows[y].Discard(prev)
			g.cols[x].Discard(prev)
			g.boxes[by][bx].Discard(prev)
		}
		g.cells[y][x] = 0
		return nil
	}

	if prev == val {
		return nil
	}
	// prev != val, so prev's membership cannot mask a genuine duplicate.
	if g.boxes[by][bx].Contains(val) {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrDuplicateInBox, val, x, y)
	}
	if g.rows[y].Contains(val) {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrDuplicateInRow, val, x, y)
	}
	if g.cols[x].Contains(val) {
		return fmt.Errorf("%w: %d at (%d,%d)", ErrDuplicateInColumn, val, x, y)
	}
	if prev > 0 {
		g.rows[y].Discard(prev)
		g.cols[x].Discard(prev)
		g.boxes[by][bx].Discard(prev)
	}
	g.cells[y][x] = val
	g.rows[y].Add(val)
	g.cols[x].Add(val)
	g.boxes[by][bx].Add(val)
	return nil
}

// SetForce writes val to (x, y) without duplicate validation. Callers must
// have drawn val from the cell's candidate set; the index sets are still
// updated.
func (g *Grid) SetForce(x, y int, val uint8) {
	g.cells[y][x] = val
	g.rows[y].Add(val)
	g.cols[x].Add(val)
	g.boxes[y/BoxSize][x/BoxSize].Add(val)
}

// PossibleValues returns whether the cell is blank and, if so, the digits
// still consistent with its row, column and box. A filled cell yields
// (false, empty set).
func (g *Grid) PossibleValues(x, y int) (bool, DigitSet, error) {
	if err := checkCoords(x, y); err != nil {
		return false, 0, err
	}
	if g.cells[y][x] > 0 {
		return false, 0, nil
	}
	return true, FullSet().Diff(g.boxes[y/BoxSize][x/BoxSize], g.rows[y], g.cols[x]), nil
}

// ClearRow blanks every cell in row y, discarding each digit from the
// relevant index sets. Used to retry a row during construction without
// disturbing the rest of the grid.
func (g *Grid) ClearRow(y int) error {
	if y < 0 || y >= Rows {
		return fmt.Errorf("%w: row %d", ErrOutOfRange, y)
	}
	for x := 0; x < Columns; x++ {
		v := g.cells[y][x]
		g.rows[y].Discard(v)
		g.cols[x].Discard(v)
		g.boxes[y/BoxSize][x/BoxSize].Discard(v)
		g.cells[y][x] = 0
	}
	return nil
}

// ClearAllRows blanks the whole grid row by row.
func (g *Grid) ClearAllRows() {
	for y := 0; y < Rows; y++ {
		_ = g.ClearRow(y)
	}
}

// CopyFrom resets g and replays other's cells through SetValue in row-major
// order. Replaying rather than copying wholesale means a corrupt source grid
// surfaces as a duplicate error here instead of going unnoticed.
func (g *Grid) CopyFrom(other *Grid) error {
	g.Reset()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			if err := g.SetValue(x, y, other.cells[y][x]); err != nil {
				return err
			}
		}
	}
	return nil
}

// PopulateFromValues loads a hand-authored 9x9 matrix. The shape and value
// range are validated up front; duplicates surface through SetValue.
func (g *Grid) PopulateFromValues(values [][]int) error {
	if len(values) != Rows {
		return fmt.Errorf("%w: %d rows", ErrShapeMismatch, len(values))
	}
	for y, row := range values {
		if len(row) != Columns {
			return fmt.Errorf("%w: %d entries in row %d", ErrShapeMismatch, len(row), y)
		}
		for x, v := range row {
			if v < 0 || v > 9 {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidValue, v, x, y)
			}
		}
	}
	g.Reset()
	for y, row := range values {
		for x, v := range row {
			if v == 0 {
				continue
			}
			if err := g.SetValue(x, y, uint8(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Cells returns a snapshot of the cell matrix.
func (g *Grid) Cells() [Rows][Columns]uint8 { return g.cells }

// RowSet returns the definite-value set for row y.
func (g *Grid) RowSet(y int) DigitSet { return g.rows[y] }

// ColumnSet returns the definite-value set for column x.
func (g *Grid) ColumnSet(x int) DigitSet { return g.cols[x] }

// BoxSet returns the definite-value set for the box at box coordinates
// (bx, by).
func (g *Grid) BoxSet(bx, by int) DigitSet { return g.boxes[by][bx] }

// BlankCount returns the number of blank cells.
func (g *Grid) BlankCount() int {
	n := 0
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			if g.cells[y][x] == 0 {
				n++
			}
		}
	}
	return n
}

// FromCells builds a grid from a cell matrix snapshot, validating it as it
// loads.
func FromCells(cells [Rows][Columns]uint8) (*Grid, error) {
	g := New()
	for y := 0; y < Rows; y++ {
		for x := 0; x < Columns; x++ {
			if err := g.SetValue(x, y, cells[y][x]); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Parse builds a grid from an 81-character string, '.' or '0' for blanks.
func Parse(s string) (*Grid, error) {
	if len(s) != Cells {
		return nil, fmt.Errorf("%w: %d characters", ErrShapeMismatch, len(s))
	}
	g := New()
	for i := 0; i < Cells; i++ {
		ch := s[i]
		switch {
		case ch == '.' || ch == '0':
		case ch >= '1' && ch <= '9':
			if err := g.SetValue(i%Columns, i/Columns, ch-'0'); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidValue, ch, i)
		}
	}
	return g, nil
}
