package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/ports"
)

// ErrTooManyFailedConfigurations means the remover hit its cap on space
// configurations rejected by the distribution check. Without the cap an
// unbalanced deep branch can be revisited combinatorially many times with no
// progress. Recoverable: callers may restart the whole generation.
var ErrTooManyFailedConfigurations = errors.New("too many failed space configurations")

// DefaultMaxFailedConfigs is the default cap on rejected configurations per
// Remove call.
const DefaultMaxFailedConfigs = 500

const (
	numBoxes = grid.BoxSize * grid.BoxSize
	boxCells = grid.BoxSize * grid.BoxSize
)

// RemoverConfig parameterizes one space-removal search.
type RemoverConfig struct {
	// Spaces is the exact number of cells to blank.
	Spaces int
	// Leniency widens or narrows the per-box balance band.
	Leniency domain.Leniency
	// MaxFailedConfigs caps rejected configurations; 0 means
	// DefaultMaxFailedConfigs.
	MaxFailedConfigs int
}

// spaceMarker records one cell of the fully populated grid together with the
// digit that will appear there in the solved puzzle. Built once per Remove
// call and processed in a randomized order.
type spaceMarker struct {
	x, y   int
	oldVal uint8
}

// Remover blanks cells of a fully populated grid while an external oracle
// confirms the puzzle stays uniquely solvable, keeping blanks approximately
// evenly spread across the nine boxes.
type Remover struct {
	cfg RemoverConfig
	rng *rand.Rand

	// per-run search state
	g            *grid.Grid
	oracle       ports.Oracle
	avgPerBox    int
	minPerBox    int
	maxPerBox    int
	quotaAtAvg   int
	failureCount int
	accepted     *grid.Grid
}

func NewRemover(rng *rand.Rand, cfg RemoverConfig) *Remover {
	if cfg.MaxFailedConfigs <= 0 {
		cfg.MaxFailedConfigs = DefaultMaxFailedConfigs
	}
	return &Remover{cfg: cfg, rng: rng}
}

// Remove blanks exactly cfg.Spaces cells of g. The oracle must be bound to
// the same grid instance and is consulted after every tentative blanking.
// Returns false with a nil error when the search space is exhausted without
// an acceptable configuration, and ErrTooManyFailedConfigurations when the
// failure cap trips first.
func (r *Remover) Remove(g *grid.Grid, oracle ports.Oracle) (bool, error) {
	r.g = g
	r.oracle = oracle
	r.avgPerBox = r.cfg.Spaces / numBoxes
	band, quota := 1, 5
	if r.cfg.Leniency == domain.LeniencyForgiving {
		band, quota = 2, 3
	}
	r.minPerBox = r.avgPerBox - band
	r.maxPerBox = r.avgPerBox + band
	r.quotaAtAvg = quota
	r.failureCount = 0
	r.accepted = nil

	markers := make([]spaceMarker, 0, grid.Cells)
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Columns; x++ {
			v, err := g.Value(x, y)
			if err != nil {
				return false, err
			}
			markers = append(markers, spaceMarker{x: x, y: y, oldVal: v})
		}
	}
	// Randomization is what makes distinct runs produce distinct puzzles
	// from the same solved grid.
	r.rng.Shuffle(len(markers), func(i, j int) {
		markers[i], markers[j] = markers[j], markers[i]
	})

	ok, err := r.search(markers, 0, 0)
	if err != nil {
		return false, err
	}
	if ok && r.accepted != nil {
		if err := g.CopyFrom(r.accepted); err != nil {
			return false, err
		}
	}
	return ok, nil
}

// search recurses over the shuffled marker list, deciding for each cell
// whether to blank it (tried first) or keep it. Depth-first with
// backtrack-and-restore; returns on the first accepted configuration.
func (r *Remover) search(markers []spaceMarker, index, spaceCount int) (bool, error) {
	if spaceCount >= r.cfg.Spaces {
		if !r.distributionOK() {
			r.failureCount++
			if r.failureCount >= r.cfg.MaxFailedConfigs {
				return false, fmt.Errorf("%w: %d tried", ErrTooManyFailedConfigurations, r.failureCount)
			}
			return false, nil
		}
		snapshot := grid.New()
		if err := snapshot.CopyFrom(r.g); err != nil {
			return false, err
		}
		r.accepted = snapshot
		return true, nil
	}

	// Not enough unprocessed cells left for the spaces still needed.
	if len(markers)-index < r.cfg.Spaces-spaceCount {
		return false, nil
	}

	m := markers[index]

	// Include: tentatively blank this cell.
	if err := r.g.SetValue(m.x, m.y, 0); err != nil {
		return false, err
	}
	bx, by := m.x/grid.BoxSize, m.y/grid.BoxSize
	spacesInBox := boxCells - r.g.BoxSet(bx, by).Len()
	if spacesInBox <= r.maxPerBox && r.oracle.IsUniquelySolvable() {
		ok, err := r.search(markers, index+1, spaceCount+1)
		if err != nil || ok {
			return ok, err
		}
	}
	// Restore the digit that used to be there before exploring further.
	if err := r.g.SetValue(m.x, m.y, m.oldVal); err != nil {
		return false, err
	}

	// Exclude: keep this cell filled.
	return r.search(markers, index+1, spaceCount)
}

// distributionOK checks that blanks are well spread: every box within the
// band around the average, and enough boxes exactly at the average.
func (r *Remover) distributionOK() bool {
	boxesAtAvg := 0
	for by := 0; by < grid.BoxSize; by++ {
		for bx := 0; bx < grid.BoxSize; bx++ {
			spacesInBox := boxCells - r.g.BoxSet(bx, by).Len()
			if spacesInBox == r.avgPerBox {
				boxesAtAvg++
			}
			if spacesInBox > r.maxPerBox || spacesInBox < r.minPerBox {
				return false
			}
		}
	}
	return boxesAtAvg >= r.quotaAtAvg
}
