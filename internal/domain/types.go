package domain

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Leniency controls how strictly blanks must be balanced across boxes.
type Leniency int

const (
	// LeniencyStrict keeps per-box blank counts within one of the average
	// and requires at least five boxes exactly at the average.
	LeniencyStrict Leniency = iota
	// LeniencyForgiving widens the band to two and requires only three
	// boxes at the average.
	LeniencyForgiving
)

// GenerateConfig parameterizes one puzzle generation.
type GenerateConfig struct {
	Seed     int64
	Spaces   int
	Leniency Leniency
}

// Puzzle is a generated Sudoku together with the solved grid it was carved
// from.
type Puzzle struct {
	ID        string      `json:"id"`
	Seed      int64       `json:"seed"`
	Spaces    int         `json:"spaces"`
	Clues     int         `json:"clues"`
	Cells     [9][9]uint8 `json:"cells"`
	Solution  [9][9]uint8 `json:"solution"`
	CreatedAt int64       `json:"createdAt"`
}
