package board

import (
	"math/rand"
	"time"
)

// Generate builds a board with exactly cfg.Mines mines placed by a uniform
// shuffle of the flat cell sequence. A nil rng falls back to a source seeded
// from the wall clock, so placement differs between runs.
func Generate(cfg Config, rng *rand.Rand) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	cells := make([]Cell, cfg.Width*cfg.Height)
	for i := 0; i < cfg.Mines; i++ {
		cells[i].Mine = true
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	b := &Board{
		width:  cfg.Width,
		height: cfg.Height,
		cells:  cells,
	}
	b.countAdjacent()
	return b, nil
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
