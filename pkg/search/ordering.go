package search

import "github.com/corwinpratt/chessforge/pkg/board"

// orderMoves builds a move list that reverses Black's move order, since the
// generator walks the board from rank 8 downward and Black's most-advanced
// pieces sit at the end of that walk, and then brings the moves of pv (if
// non-empty) to the front in pv order.
func orderMoves(side board.Color, moves []board.Move, pv []board.Move) *board.MoveList {
	ordered := board.ReverseIfBlack(side, moves)
	return board.NewMoveList(ordered, board.PVFirst(pv))
}
