package usecase

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"svw.info/sudoku-gen/internal/domain"
	"svw.info/sudoku-gen/internal/generator"
	"svw.info/sudoku-gen/internal/grid"
	"svw.info/sudoku-gen/internal/ports"
	"svw.info/sudoku-gen/internal/solver"
)

// maxPipelineTries bounds how often the whole populate-then-blank pipeline
// is retried when a run exhausts one of its internal budgets.
const maxPipelineTries = 30

// ErrPipelineExhausted means every pipeline attempt ran out of budget.
var ErrPipelineExhausted = errors.New("puzzle generation did not converge")

// Service orchestrates puzzle generation and solving.
type Service struct {
	logger *zap.Logger
}

var _ ports.Generator = (*Service)(nil)

func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// Generate produces a puzzle with exactly cfg.Spaces blanks and a verified
// unique solution. Retry-budget failures inside a single attempt
// (ErrGenerationFailed, ErrTooManyFailedConfigurations) are expected
// outcomes and trigger another attempt; structural errors propagate
// immediately.
func (s *Service) Generate(cfg domain.GenerateConfig) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pop := generator.NewPopulator(rng)
	rem := generator.NewRemover(rng, generator.RemoverConfig{
		Spaces:   cfg.Spaces,
		Leniency: cfg.Leniency,
	})

	g := grid.New()
	oracle := solver.NewUniqueness(g)

	for attempt := 1; attempt <= maxPipelineTries; attempt++ {
		g.Reset()
		if err := pop.Fill(g); err != nil {
			if errors.Is(err, generator.ErrGenerationFailed) {
				s.logger.Warn("populate attempt exhausted its retries",
					zap.Int("attempt", attempt))
				continue
			}
			return nil, ports.Stats{}, err
		}
		solution := g.Cells()

		ok, err := rem.Remove(g, oracle)
		if err != nil {
			if errors.Is(err, generator.ErrTooManyFailedConfigurations) {
				s.logger.Warn("space removal hit its failure cap",
					zap.Int("attempt", attempt))
				continue
			}
			return nil, ports.Stats{}, err
		}
		if !ok {
			s.logger.Warn("space removal exhausted its search space",
				zap.Int("attempt", attempt))
			continue
		}

		// Re-verify: the final puzzle must still have exactly one solution.
		count, solved, st := solver.NewBruteForce(g).Solve()
		if count != 1 || solved == nil {
			return nil, ports.Stats{}, fmt.Errorf("generated puzzle has %d solutions", count)
		}
		if solved.Cells() != solution {
			return nil, ports.Stats{}, errors.New("solved puzzle does not match the populated grid")
		}

		id, err := uuid.NewV4()
		if err != nil {
			return nil, ports.Stats{}, err
		}
		stats := ports.Stats{
			Nodes:    oracle.Nodes() + st.Nodes,
			Duration: time.Since(start),
		}
		s.logger.Info("puzzle generated",
			zap.Int("attempt", attempt),
			zap.Int("spaces", cfg.Spaces),
			zap.Int("nodes", stats.Nodes),
			zap.Duration("duration", stats.Duration))
		return &domain.Puzzle{
			ID:        id.String(),
			Seed:      seed,
			Spaces:    cfg.Spaces,
			Clues:     grid.Cells - cfg.Spaces,
			Cells:     g.Cells(),
			Solution:  solution,
			CreatedAt: time.Now().Unix(),
		}, stats, nil
	}
	return nil, ports.Stats{Duration: time.Since(start)}, fmt.Errorf("%w after %d attempts", ErrPipelineExhausted, maxPipelineTries)
}

// Solve exhaustively solves the given cell matrix, returning the solution
// count and one solved grid (nil when unsolvable).
func (s *Service) Solve(g *grid.Grid) (int, *grid.Grid, ports.Stats) {
	return solver.NewBruteForce(g).Solve()
}
