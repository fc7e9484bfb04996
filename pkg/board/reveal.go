package board

import (
	"fmt"

	"github.com/gammazero/deque"
)

// Outcome classifies the result of a reveal.
type Outcome uint8

const (
	// Noop means the target was already revealed and nothing changed.
	Noop Outcome = iota
	// Safe means at least one cell was revealed and no mine was touched.
	Safe
	// MineHit means the target cell holds a mine.
	MineHit
)

var outcomeNames = map[Outcome]string{
	Noop:    "Noop",
	Safe:    "Safe",
	MineHit: "MineHit",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Outcome(%d)", o)
}

// Reveal uncovers the cell at p and flood-fills connected zero cells.
func (b *Board) Reveal(p Position) (Outcome, error) {
	outcome, _, err := b.RevealCells(p)
	return outcome, err
}

// RevealCells is Reveal that also returns every position it uncovered, in
// the order they were uncovered.
//
// A mine target yields MineHit and leaves the board untouched. Otherwise the
// target is revealed and unflagged; when it has no adjacent mines its
// neighbors are expanded breadth-first. Expansion skips mines, flagged and
// already revealed cells, and only continues through zero cells. Cells are
// marked revealed before they are queued, so none is visited twice.
func (b *Board) RevealCells(p Position) (Outcome, []Position, error) {
	if !b.InBounds(p) {
		return Noop, nil, fmt.Errorf("%w: reveal %s on %dx%d board", ErrOutOfBounds, p, b.width, b.height)
	}

	target := b.cell(p)
	if target.Revealed {
		return Noop, nil, nil
	}
	if target.Mine {
		return MineHit, nil, nil
	}

	target.Revealed = true
	target.Flagged = false
	revealed := []Position{p}
	if target.Adjacent != 0 {
		return Safe, revealed, nil
	}

	var frontier deque.Deque[Position]
	frontier.PushBack(p)
	for frontier.Len() > 0 {
		cur := frontier.PopFront()
		for _, n := range b.Neighbors(cur) {
			c := b.cell(n)
			if c.Revealed || c.Flagged || c.Mine {
				continue
			}
			c.Revealed = true
			revealed = append(revealed, n)
			if c.Adjacent == 0 {
				frontier.PushBack(n)
			}
		}
	}
	return Safe, revealed, nil
}

// ToggleFlag flips the flag on a hidden cell and returns the new flag state.
// Revealed cells cannot be flagged and are left unchanged.
func (b *Board) ToggleFlag(p Position) (bool, error) {
	if !b.InBounds(p) {
		return false, fmt.Errorf("%w: flag %s on %dx%d board", ErrOutOfBounds, p, b.width, b.height)
	}
	c := b.cell(p)
	if c.Revealed {
		return false, nil
	}
	c.Flagged = !c.Flagged
	return c.Flagged, nil
}
