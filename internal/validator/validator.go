package validator

import (
	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/ports"
)

// FastValidator scans a cell matrix for row/column/box conflicts. It works
// on a raw snapshot rather than through the grid's index sets, so it doubles
// as an independent cross-check of those sets.
type FastValidator struct{}

var _ ports.Validator = (*FastValidator)(nil)

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(cells [grid.Rows][grid.Columns]uint8) (bool, []domain.CellCoord) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for y := 0; y < grid.Rows; y++ {
		m := 0
		for x := 0; x < grid.Columns; x++ {
			val := cells[y][x]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{X: x, Y: y})
			}
			m |= bit
		}
	}
	// columns
	for x := 0; x < grid.Columns; x++ {
		m := 0
		for y := 0; y < grid.Rows; y++ {
			val := cells[y][x]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{X: x, Y: y})
			}
			m |= bit
		}
	}
	// boxes
	for by := 0; by < grid.BoxSize; by++ {
		for bx := 0; bx < grid.BoxSize; bx++ {
			m := 0
			for dy := 0; dy < grid.BoxSize; dy++ {
				for dx := 0; dx < grid.BoxSize; dx++ {
					y := by*grid.BoxSize + dy
					x := bx*grid.BoxSize + dx
					val := cells[y][x]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{X: x, Y: y})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf
}
