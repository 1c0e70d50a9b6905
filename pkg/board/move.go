package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Move carries both a pseudo-legal candidate (as produced by the move
// generator) and, once applied, the undo record for it. It is the command
// Board.MakeMove executes and the record Board.UndoMove consumes, per
// spec.md's MoveRecord component.
type Move struct {
	Mover      PieceID
	MoverKind  PieceKind
	MoverColor Color
	From, To   Square

	// FileDisambig/RankDisambig are set by the generator when another
	// same-kind, same-color piece can also reach To.
	FileDisambig bool
	RankDisambig bool

	// Captured is set when the destination square (or, for en passant, the
	// victim square) holds an enemy piece. Populated at generation time for
	// both ordinary and en passant captures, and set again by MakeMove on
	// the recorded move.
	Captured lang.Optional[PieceID]

	IsEnPassant bool

	// CastledRook/CastledFrom are set when this move is a castle.
	CastledRook lang.Optional[PieceID]
	CastledFrom Square

	// Promoted/PromotionKind are set when this move is a pawn promotion.
	// PromotionKind is decided at generation time (one candidate move per
	// target kind); Promoted is filled in by MakeMove once the new piece is
	// instantiated.
	Promoted      lang.Optional[PieceID]
	PromotionKind PieceKind

	// OldState is a snapshot of the PositionState as it was immediately
	// before this move was made. Populated by MakeMove.
	OldState PositionState

	// MoverHadMoved/CastledRookHadMoved record the mover's (and, for a
	// castle, the rook's) HasMoved flag immediately before this move, so
	// UndoMove can restore it exactly instead of assuming it was false.
	MoverHadMoved       bool
	CastledRookHadMoved bool
}

// IsCapture reports whether the move removes an enemy piece, including en passant.
func (m Move) IsCapture() bool {
	_, ok := m.Captured.V()
	return ok
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.PromotionKind.IsValid()
}

// IsCastle reports whether the move castles.
func (m Move) IsCastle() bool {
	_, ok := m.CastledRook.V()
	return ok
}

// Equals compares the squares and promotion target only, sufficient to
// match a caller-supplied move (e.g. from a UI) against the legal move list.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.PromotionKind == o.PromotionKind
}

func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.PromotionKind)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
