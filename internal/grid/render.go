package grid

import "strings"

// Format returns a compact ASCII rendering of the grid, blanks shown as
// spaces.
//
//	+-------+-------+-------+
//	| 8 5   |     1 |     6 |
//	...
func (g *Grid) Format() string {
	var sb strings.Builder
	separator := func() {
		sb.WriteByte('+')
		for x := 0; x < Columns; x++ {
			sb.WriteString("--")
			if x%BoxSize == BoxSize-1 {
				sb.WriteString("-+")
			}
		}
		sb.WriteByte('\n')
	}
	separator()
	for y := 0; y < Rows; y++ {
		sb.WriteByte('|')
		for x := 0; x < Columns; x++ {
			sb.WriteByte(' ')
			if v := g.cells[y][x]; v == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('0' + v)
			}
			if x%BoxSize == BoxSize-1 {
				sb.WriteString(" |")
			}
		}
		sb.WriteByte('\n')
		if y%BoxSize == BoxSize-1 {
			separator()
		}
	}
	return sb.String()
}

// FormatLarge returns a big rendering suitable for printing out and handing
// to a player. Box borders are drawn double-struck, inner cell borders
// single.
func (g *Grid) FormatLarge() string {
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		rowLines := make([]string, 0, 6)
		for x := 0; x < Columns; x++ {
			lines := largeCell(x, y, g.cells[y][x])
			for i, line := range lines {
				if i < len(rowLines) {
					rowLines[i] += line
				} else {
					rowLines = append(rowLines, line)
				}
			}
		}
		for _, line := range rowLines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// largeCell renders one cell of the large format as a list of text lines.
func largeCell(x, y int, val uint8) []string {
	leftOfBox := x%BoxSize == 0
	topOfBox := y%BoxSize == 0
	rightOfGrid := x == Columns-1
	bottomOfGrid := y == Rows-1

	valStr := " "
	if val != 0 {
		valStr = string(rune('0' + val))
	}

	var lines []string
	switch {
	case topOfBox && leftOfBox:
		lines = append(lines, "O=======")
	case topOfBox:
		lines = append(lines, "========")
	case leftOfBox:
		lines = append(lines, "‖-------")
	default:
		lines = append(lines, "+-------")
	}
	edge := "|"
	if leftOfBox {
		edge = "‖"
	}
	lines = append(lines, edge+"       ", edge+"   "+valStr+"   ", edge+"       ")
	if bottomOfGrid {
		if leftOfBox {
			lines = append(lines, "O=======")
		} else {
			lines = append(lines, "========")
		}
	}
	if rightOfGrid {
		for i := range lines {
			if topOfBox && i == 0 {
				lines[i] += "O"
			} else {
				lines[i] += "‖"
			}
		}
	}
	return lines
}
