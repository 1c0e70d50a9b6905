package board_test

import (
	"testing"

	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestSANPawnPushAndCapture(t *testing.T) {
	push := board.Move{MoverKind: board.Pawn, From: mustSquare("e2"), To: mustSquare("e4")}
	assert.Equal(t, "e4", push.SAN())

	capture := board.Move{MoverKind: board.Pawn, From: mustSquare("e4"), To: mustSquare("d5"), Captured: someID()}
	assert.Equal(t, "exd5", capture.SAN())
}

func TestSANPromotion(t *testing.T) {
	m := board.Move{MoverKind: board.Pawn, From: mustSquare("e7"), To: mustSquare("e8"), PromotionKind: board.Queen}
	assert.Equal(t, "e8=Q", m.SAN())
}

func TestSANEnPassantSuffix(t *testing.T) {
	m := board.Move{MoverKind: board.Pawn, From: mustSquare("e5"), To: mustSquare("d6"), Captured: someID(), IsEnPassant: true}
	assert.Equal(t, "exd6 e.p.", m.SAN())
}

func TestSANPieceMoveWithDisambiguation(t *testing.T) {
	m := board.Move{MoverKind: board.Knight, From: mustSquare("b1"), To: mustSquare("d2"), FileDisambig: true}
	assert.Equal(t, "Nbd2", m.SAN())

	m2 := board.Move{MoverKind: board.Rook, From: mustSquare("a1"), To: mustSquare("a4"), Captured: someID(), RankDisambig: true}
	assert.Equal(t, "R1xa4", m2.SAN())
}

func TestSANCastle(t *testing.T) {
	king := board.Move{MoverKind: board.King, From: mustSquare("e1"), To: mustSquare("g1"), CastledRook: someID()}
	assert.Equal(t, "O-O", king.SAN())

	queen := board.Move{MoverKind: board.King, From: mustSquare("e1"), To: mustSquare("c1"), CastledRook: someID()}
	assert.Equal(t, "O-O-O", queen.SAN())
}

func someID() lang.Optional[board.PieceID] {
	return lang.Some[board.PieceID](0)
}
