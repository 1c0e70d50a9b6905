package board_test

import (
	"testing"

	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/corwinpratt/chessforge/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeUndoIsInverse walks every legal move from a handful of positions
// two deep and asserts that UndoMove always restores the exact descriptor
// the board had before MakeMove, including castling rights, en passant and
// move clocks.
func TestMakeUndoIsInverse(t *testing.T) {
	positions := []string{
		fen.Initial,
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
	}

	for _, descr := range positions {
		b, err := fen.NewBoard(descr)
		require.NoError(t, err)

		before := b.DescribePosition()
		for _, m := range b.LegalMoves(b.Turn()) {
			b.MakeMove(m)
			for _, m2 := range b.LegalMoves(b.Turn()) {
				b.MakeMove(m2)
				b.UndoMove()
			}
			b.UndoMove()
			assert.Equal(t, before, b.DescribePosition(), "UndoMove after %v did not restore %v", m, descr)
		}
	}
}

func TestUndoMoveRestoresCastlingRightsAfterRookMove(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	before := b.State().Castling

	b.MakeMove(findMove(t, b, "a1", "a2"))
	assert.Equal(t, board.WK, b.State().Castling, "moving the a-rook must revoke only the queenside right")

	b.UndoMove()
	assert.Equal(t, before, b.State().Castling)
}

func TestUndoMoveAfterCastleRestoresHasMoved(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")

	var castle board.Move
	for _, m := range b.LegalMoves(board.White) {
		if m.IsCastle() {
			castle = m
		}
	}
	require.True(t, castle.IsCastle())

	b.MakeMove(castle)
	require.False(t, b.LegalMoves(board.Black) == nil)
	b.UndoMove()

	var found bool
	for _, m := range b.LegalMoves(board.White) {
		if m.IsCastle() {
			found = true
		}
	}
	assert.True(t, found, "castling must be available again after undo")
}

func TestUndoMoveRestoresEnPassantTarget(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	before := b.State().EnPassant

	b.MakeMove(findMove(t, b, "e2", "e4"))
	assert.Equal(t, mustSquare("e3"), b.State().EnPassant)

	b.UndoMove()
	assert.Equal(t, before, b.State().EnPassant)
}

// TestPushE4ThenUndoRestoresStartingDescriptorExactly is spec.md §8's named
// scenario: 1.e4 from the starting position, then undo, must restore the
// starting descriptor byte-for-byte, including fullmove=1 and halfmove=0.
func TestPushE4ThenUndoRestoresStartingDescriptorExactly(t *testing.T) {
	b := newBoard(t, fen.Initial)
	before := b.DescribePosition()
	require.Equal(t, fen.Initial, before)

	b.MakeMove(findMove(t, b, "e2", "e4"))
	assert.NotEqual(t, fen.Initial, b.DescribePosition())

	b.UndoMove()
	assert.Equal(t, fen.Initial, b.DescribePosition())
}

// TestPawnDoublePushSetsEnPassantTargetSquare is spec.md §8's named scenario:
// from a minimal position, e2-e4 sets the resulting descriptor's en passant
// field to e3.
func TestPawnDoublePushSetsEnPassantTargetSquare(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	b.MakeMove(findMove(t, b, "e2", "e4"))
	assert.Equal(t, "4k3/8/8/8/4P3/8/8/4K3 b - e3 0 1", b.DescribePosition())
}
