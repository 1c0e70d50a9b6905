package eval_test

import (
	"testing"

	"github.com/corwinpratt/chessforge/pkg/board/fen"
	"github.com/corwinpratt/chessforge/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialIsZeroAtStartingPosition(t *testing.T) {
	b, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, eval.ZeroScore, eval.Material{}.Evaluate(b))
}

func TestMaterialFavorsSideUpAPawn(t *testing.T) {
	b, err := fen.NewBoard("4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, eval.Score(eval.PawnValue), eval.Material{}.Evaluate(b))
}

func TestPieceSquareTablesIsSideToMoveRelative(t *testing.T) {
	b, err := fen.NewBoard("4k3/8/8/8/8/4P3/8/4K3 w - - 0 1")
	require.NoError(t, err)
	white := eval.PieceSquareTables{}.Evaluate(b)

	b2, err := fen.NewBoard("4k3/8/8/8/8/4P3/8/4K3 b - - 0 1")
	require.NoError(t, err)
	black := eval.PieceSquareTables{}.Evaluate(b2)

	assert.Equal(t, white, -black, "swapping side to move in an identical placement must negate the score")
}

func TestPieceSquareTablesCheckBonus(t *testing.T) {
	// Black king in check from the white queen down the open e-file; black
	// to move in both positions, differing only in that the white king and
	// queen swap d1 and e1 (both squares score the same in their tables).
	check, err := fen.NewBoard("4k3/8/8/8/8/8/8/3KQ3 b - - 0 1") // Qe1 checks Ke8
	require.NoError(t, err)
	safe, err := fen.NewBoard("4k3/8/8/8/8/8/8/3QK3 b - - 0 1") // Qd1 does not
	require.NoError(t, err)

	assert.Greater(t, int(eval.PieceSquareTables{}.Evaluate(safe)), int(eval.PieceSquareTables{}.Evaluate(check)),
		"black to move while in check must score worse for black than the same material out of check")
}

func TestPieceSquareTablesCheckmateScoresMateForMover(t *testing.T) {
	// Fool's mate: black just delivered checkmate, white to move with no moves.
	b, err := fen.NewBoard("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	require.NoError(t, err)
	assert.Equal(t, -eval.Score(eval.Mate), eval.PieceSquareTables{}.Evaluate(b))
}

func TestPieceSquareTablesStalemateIsSlightlyBelowZero(t *testing.T) {
	b, err := fen.NewBoard("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	score := eval.PieceSquareTables{}.Evaluate(b)
	assert.Less(t, score, eval.ZeroScore)
	assert.Greater(t, score, -eval.Score(1000))
}

func TestMobilityIsZeroAtStartingPosition(t *testing.T) {
	b, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, eval.ZeroScore, eval.Mobility(b), "starting position has symmetric mobility")
}

func TestIncrementMateDistancePrefersShorterMate(t *testing.T) {
	near := eval.IncrementMateDistance(eval.Mate)
	far := eval.IncrementMateDistance(near)
	assert.Less(t, far, near, "a mate found one ply deeper must score worse for the winning side as it propagates up")
}
