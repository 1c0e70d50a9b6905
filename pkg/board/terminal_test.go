package board_test

import (
	"testing"

	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckmateDetected(t *testing.T) {
	// Fool's mate.
	b := newBoard(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.Equal(t, board.BlackWin, b.TerminalStatus())
}

func TestStalemateDetected(t *testing.T) {
	b := newBoard(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Empty(t, b.LegalMoves(board.Black))
	assert.Empty(t, b.CheckPaths(board.Black))
	assert.Equal(t, board.DrawStalemate, b.TerminalStatus())
}

func TestFiftyMoveRuleDraw(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 99 50")
	require.Equal(t, board.InProgress, b.TerminalStatus())

	b.MakeMove(findMove(t, b, "e1", "d1"))
	assert.Equal(t, board.Draw50Moves, b.TerminalStatus())
}

func TestThreefoldRepetitionDraw(t *testing.T) {
	b := newBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")

	shuffle := func() {
		b.MakeMove(findMove(t, b, "e1", "d1"))
		b.MakeMove(findMove(t, b, "e8", "d8"))
		b.MakeMove(findMove(t, b, "d1", "e1"))
		b.MakeMove(findMove(t, b, "d8", "e8"))
	}
	shuffle()
	require.Equal(t, board.InProgress, b.TerminalStatus())
	shuffle()
	assert.Equal(t, board.DrawRepetition, b.TerminalStatus())
}

func findMove(t *testing.T, b *board.Board, from, to string) board.Move {
	t.Helper()
	f, to2 := mustSquare(from), mustSquare(to)
	for _, m := range b.LegalMoves(b.Turn()) {
		if m.From == f && m.To == to2 {
			return m
		}
	}
	t.Fatalf("no legal move %v-%v in %v", from, to, b.DescribePosition())
	return board.Move{}
}
