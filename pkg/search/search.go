// Package search implements fixed-depth alpha-beta search over a Board.
package search

import (
	"fmt"

	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/corwinpratt/chessforge/pkg/eval"
)

// PV is the principal variation found at a given depth.
type PV struct {
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Depth int
}

func (p PV) String() string {
	return fmt.Sprintf("depth=%v score=%v nodes=%v pv=%v", p.Depth, p.Score, p.Nodes, board.FormatMoves(p.Moves))
}

// Searcher runs a synchronous, fixed-depth search from the board's current
// position. Implementations must leave b in its original position: any
// MakeMove they apply while searching must be paired with an UndoMove.
type Searcher interface {
	Search(b *board.Board, depth int) PV
}
