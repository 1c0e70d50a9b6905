package board

var knightOffsets = [8]int{17, 15, 10, 6, -17, -15, -10, -6}

// generateKnightMoves implements spec.md §4.5.
func (b *Board) generateKnightMoves(p *Piece) {
	side := p.Color
	enemy := side.Enemy()
	startFile := p.Square.File()

	for _, off := range knightOffsets {
		to := p.Square + Square(off)
		if !to.IsValid() {
			continue
		}
		df := to.File() - startFile
		if df < 0 {
			df = -df
		}
		if df > 2 {
			continue // wrap guard
		}

		id := b.squares[to]
		if id == NoPieceID {
			if b.legalFilter(p, to, false) {
				idx := b.addMove(p, to, false, NoPieceID)
				b.setDisambiguation(side, idx)
			}
			b.addProtecting(side, to)
			continue
		}

		occ := &b.pieces[id]
		if occ.Color == side {
			b.addProtecting(side, to)
			continue
		}

		if b.legalFilter(p, to, false) {
			idx := b.addMove(p, to, true, id)
			b.setDisambiguation(side, idx)
		}
		if occ.Kind == King {
			b.checkPaths[enemy] = append(b.checkPaths[enemy], []Square{p.Square, to})
		}
	}
}

func knightOffsetValid(from, to Square) bool {
	for _, off := range knightOffsets {
		cand := from + Square(off)
		if !cand.IsValid() || cand != to {
			continue
		}
		df := to.File() - from.File()
		if df < 0 {
			df = -df
		}
		if df <= 2 {
			return true
		}
	}
	return false
}
