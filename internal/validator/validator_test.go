package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/grid"
)

func TestValidateCleanGrid(t *testing.T) {
	var cells [grid.Rows][grid.Columns]uint8
	ok, conflicts := New().Validate(cells)
	assert.True(t, ok)
	assert.Empty(t, conflicts)

	cells[0][0] = 5
	cells[4][4] = 5
	ok, conflicts = New().Validate(cells)
	assert.True(t, ok)
	assert.Empty(t, conflicts)
}

func TestValidateFindsConflicts(t *testing.T) {
	var cells [grid.Rows][grid.Columns]uint8

	// row conflict
	cells[0][0], cells[0][8] = 5, 5
	ok, conflicts := New().Validate(cells)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.CellCoord{X: 8, Y: 0})

	// column conflict
	cells = [grid.Rows][grid.Columns]uint8{}
	cells[0][2], cells[8][2] = 7, 7
	ok, conflicts = New().Validate(cells)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.CellCoord{X: 2, Y: 8})

	// box conflict without sharing a row or column
	cells = [grid.Rows][grid.Columns]uint8{}
	cells[0][0], cells[1][1] = 3, 3
	ok, conflicts = New().Validate(cells)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.CellCoord{X: 1, Y: 1})
}
