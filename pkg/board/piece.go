package board

// PieceID identifies a Piece within a Board's piece pool. NoPieceID marks an
// absent reference (an empty square, or an optional Move field that was not
// set). Using a small integer id instead of a pointer removes the
// pointer-back-reference lifetime questions a naive port would otherwise
// carry: the pool owns the Piece values, the 64-square array and Move struct
// only ever hold ids into it, and undo is a pure index/value restore.
type PieceID int16

const NoPieceID PieceID = -1

// Piece is a chess piece with identity (color, kind), its current square,
// and its pinned path, if any: the ray of squares it is constrained to if
// pinned to its own king. The pinned path is cleared before every full
// regeneration and re-populated only by the opposing side's sliding-piece
// generation (see Board.calculateAllMoves). A piece's pseudo-legal moves and
// protected squares are not owned per-piece; they are accumulated directly
// into Board's per-color caches as the generator walks the active pieces.
type Piece struct {
	ID       PieceID
	Kind     PieceKind
	Color    Color
	Square   Square
	HasMoved bool

	PinPath []Square
}

// IsPinned reports whether the piece is currently constrained to a pin path.
func (p *Piece) IsPinned() bool {
	return len(p.PinPath) > 0
}

// OnPinPath reports whether sq lies on the piece's pin path.
func (p *Piece) OnPinPath(sq Square) bool {
	for _, s := range p.PinPath {
		if s == sq {
			return true
		}
	}
	return false
}
