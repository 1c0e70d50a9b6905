package board

import "github.com/seekerror/stdlib/pkg/lang"

var kingOffsets = [8]int{1, -1, 7, -7, 8, -8, 9, -9}

// generateKingMoves implements spec.md §4.7. A king never consults its own
// check-paths or pinned-path: it may move to any unprotected square,
// including one that blocks the current checker, and a stalemate/checkmate
// determination always falls out of whether any such square exists.
func (b *Board) generateKingMoves(p *Piece) {
	side := p.Color
	enemy := side.Enemy()
	startFile := p.Square.File()

	for _, off := range kingOffsets {
		to := p.Square + Square(off)
		if !to.IsValid() {
			continue
		}
		df := to.File() - startFile
		if df < 0 {
			df = -df
		}
		if df > 1 {
			continue
		}

		id := b.squares[to]
		if id != NoPieceID && b.pieces[id].Color == side {
			b.addProtecting(side, to)
			continue
		}

		if !containsSquare(b.protecting[enemy], to) {
			b.addMove(p, to, id != NoPieceID, id)
		}
		b.addProtecting(side, to)
	}

	b.generateCastling(p)
}

// castleSpec describes one castling wing for a color.
type castleSpec struct {
	right    Castling
	rookFrom Square
	between  []Square // squares that must be empty
	transit  []Square // squares the king passes through; must be unattacked
	kingTo   Square
	rookTo   Square
}

func castleSpecs(side Color) [2]castleSpec {
	rank := 7
	if side == Black {
		rank = 0
	}
	ks := castleSpec{
		right:    KingSideRight(side),
		rookFrom: NewSquare(7, rank),
		between:  []Square{NewSquare(5, rank), NewSquare(6, rank)},
		transit:  []Square{NewSquare(5, rank), NewSquare(6, rank)},
		kingTo:   NewSquare(6, rank),
		rookTo:   NewSquare(5, rank),
	}
	qs := castleSpec{
		right:    QueenSideRight(side),
		rookFrom: NewSquare(0, rank),
		between:  []Square{NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)},
		transit:  []Square{NewSquare(3, rank), NewSquare(2, rank)},
		kingTo:   NewSquare(2, rank),
		rookTo:   NewSquare(3, rank),
	}
	return [2]castleSpec{ks, qs}
}

// generateCastling implements spec.md §4.7's castling preconditions.
func (b *Board) generateCastling(p *Piece) {
	side := p.Color
	enemy := side.Enemy()

	homeKing := E1
	if side == Black {
		homeKing = E8
	}
	if p.Square != homeKing || p.HasMoved {
		return
	}
	if len(b.checkPaths[side]) > 0 {
		return
	}

	for _, cs := range castleSpecs(side) {
		if !b.state.Castling.Has(cs.right) {
			continue
		}
		rid := b.squares[cs.rookFrom]
		if rid == NoPieceID {
			continue
		}
		rook := &b.pieces[rid]
		if rook.Kind != Rook || rook.Color != side || rook.HasMoved {
			continue
		}

		clear := true
		for _, sq := range cs.between {
			if b.squares[sq] != NoPieceID {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}

		safe := true
		for _, sq := range cs.transit {
			if containsSquare(b.protecting[enemy], sq) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}

		idx := b.addMove(p, cs.kingTo, false, NoPieceID)
		b.moves[side][idx].CastledRook = lang.Some(rid)
		b.moves[side][idx].CastledFrom = cs.rookFrom
	}
}
