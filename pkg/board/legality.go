package board

// legalFilter applies the shared legality filter from the move generator:
// pin filter, then check filter, with the en passant discovered-check
// exception. It is consulted by every non-king move generator before a
// candidate destination is accepted.
func (b *Board) legalFilter(p *Piece, to Square, isEnPassant bool) bool {
	if p.IsPinned() && !p.OnPinPath(to) {
		return false
	}
	return b.passesCheckFilter(p.Color, to, isEnPassant)
}

// passesCheckFilter reports whether to blocks or captures every checker of
// side's king. isEnPassant allows the destination to be the en passant
// target square, instead of the checker's own square, when the checking
// piece is exactly the pawn being captured en passant.
func (b *Board) passesCheckFilter(side Color, to Square, isEnPassant bool) bool {
	paths := b.checkPaths[side]
	if len(paths) == 0 {
		return true
	}
	for _, path := range paths {
		if containsSquare(path, to) {
			continue
		}
		if isEnPassant && len(path) > 0 {
			checker := path[0]
			delta := int(checker) - int(to)
			if delta == 8 || delta == -8 {
				continue
			}
		}
		return false
	}
	return true
}

func containsSquare(path []Square, sq Square) bool {
	for _, s := range path {
		if s == sq {
			return true
		}
	}
	return false
}
