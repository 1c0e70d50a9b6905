package search_test

import (
	"testing"

	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/corwinpratt/chessforge/pkg/board/fen"
	"github.com/corwinpratt/chessforge/pkg/eval"
	"github.com/corwinpratt/chessforge/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaBetaFindsMateInOne(t *testing.T) {
	// Two white rooks deliver a back-rank mate in one: Rg6-g8#, with the h7
	// rook guarding the seventh rank.
	b, err := fen.NewBoard("k7/7R/6R1/8/8/8/8/7K w - - 0 1")
	require.NoError(t, err)

	ab := &search.AlphaBeta{Eval: eval.PieceSquareTables{}}
	pv := ab.Search(b, 2)

	require.NotEmpty(t, pv.Moves)
	assert.Equal(t, eval.Mate-1, int(pv.Score), "mate in one ply from the root scores Mate-1")
}

func TestAlphaBetaIsDeterministicWithClearedPV(t *testing.T) {
	fenStr := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

	var moves []string
	for i := 0; i < 3; i++ {
		b, err := fen.NewBoard(fenStr)
		require.NoError(t, err)

		ab := &search.AlphaBeta{Eval: eval.PieceSquareTables{}}
		pv := ab.Search(b, 3)
		moves = append(moves, board.FormatMoves(pv.Moves))
	}

	assert.Equal(t, moves[0], moves[1])
	assert.Equal(t, moves[0], moves[2])
}

func TestAlphaBetaLeavesBoardUnchanged(t *testing.T) {
	b, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)
	before := b.DescribePosition()

	ab := &search.AlphaBeta{Eval: eval.PieceSquareTables{}}
	ab.Search(b, 3)

	assert.Equal(t, before, b.DescribePosition(), "search must make/unmake in balance and leave the board at the root position")
}

func TestAlphaBetaReusesPreviousRootPV(t *testing.T) {
	b, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)

	ab := &search.AlphaBeta{Eval: eval.PieceSquareTables{}}
	first := ab.Search(b, 2)
	require.NotEmpty(t, first.Moves)

	// Re-searching the same position with its own PV retained reorders the
	// root move list but, since alpha-beta returns the exact minimax value,
	// must not change the resulting score.
	second := ab.Search(b, 2)
	assert.Equal(t, first.Score, second.Score)

	ab.ClearPV()
	cleared := ab.Search(b, 2)
	assert.Equal(t, first.Score, cleared.Score)
}
