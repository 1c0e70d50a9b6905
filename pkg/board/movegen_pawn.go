package board

// generatePawnMoves implements spec.md §4.6, including en passant (§4.6.1)
// and promotion expansion (§4.6.2). Pawn moves never set SAN disambiguation.
func (b *Board) generatePawnMoves(p *Piece) {
	side := p.Color
	enemy := side.Enemy()

	var forward, startRank, promoRank int
	if side == White {
		forward, startRank, promoRank = -8, 6, 0
	} else {
		forward, startRank, promoRank = 8, 1, 7
	}

	one := p.Square + Square(forward)
	canPushOne := one.IsValid() && b.squares[one] == NoPieceID
	if canPushOne && b.legalFilter(p, one, false) {
		b.addPawnMoves(p, one, false, NoPieceID, promoRank)
	}

	if canPushOne && p.Square.Rank() == startRank {
		two := p.Square + Square(forward*2)
		if two.IsValid() && b.squares[two] == NoPieceID && b.legalFilter(p, two, false) {
			b.addPawnMoves(p, two, false, NoPieceID, promoRank)
		}
	}

	startFile := p.Square.File()
	for _, off := range [2]int{forward - 1, forward + 1} {
		to := p.Square + Square(off)
		if !to.IsValid() {
			continue
		}
		df := to.File() - startFile
		if df < 0 {
			df = -df
		}
		if df != 1 {
			continue // wrapped around the board edge
		}

		id := b.squares[to]
		switch {
		case id != NoPieceID && b.pieces[id].Color != side:
			if b.legalFilter(p, to, false) {
				b.addPawnMoves(p, to, true, id, promoRank)
			}
			if b.pieces[id].Kind == King {
				b.checkPaths[enemy] = append(b.checkPaths[enemy], []Square{p.Square, to})
			}

		case id == NoPieceID && b.state.EnPassant.IsValid() && to == b.state.EnPassant && b.safeEnPassant(p, to):
			victimSq := NewSquare(to.File(), p.Square.Rank())
			victimID := b.squares[victimSq]
			if b.legalFilter(p, to, true) {
				idx := b.addMove(p, to, true, victimID)
				b.moves[side][idx].IsEnPassant = true
			}
			b.addProtecting(side, to)

		default:
			// Empty, non-EP (or friendly-occupied): the pawn still defends this square.
			b.addProtecting(side, to)
		}
	}
}

// addPawnMoves appends one move, or four (one per promotion kind) when to
// lies on the promotion rank.
func (b *Board) addPawnMoves(p *Piece, to Square, isCapture bool, capturedID PieceID, promoRank int) {
	if to.Rank() == promoRank {
		for _, k := range [4]PieceKind{Queen, Rook, Bishop, Knight} {
			idx := b.addMove(p, to, isCapture, capturedID)
			b.moves[p.Color][idx].PromotionKind = k
		}
		return
	}
	b.addMove(p, to, isCapture, capturedID)
}

// safeEnPassant implements the K-Pp-R discovered-check safety check of
// spec.md §4.6.1.
func (b *Board) safeEnPassant(p *Piece, target Square) bool {
	kingSq := b.king[p.Color]
	if kingSq.Rank() != p.Square.Rank() {
		return true
	}
	victimSq := NewSquare(target.File(), p.Square.Rank())

	away := -1
	if p.Square.File() > kingSq.File() {
		away = 1
	}

	cur := p.Square
	for {
		nextFile := cur.File() + away
		if nextFile < 0 || nextFile > 7 {
			return true
		}
		cur = NewSquare(nextFile, cur.Rank())
		if cur == victimSq {
			continue
		}
		id := b.squares[cur]
		if id == NoPieceID {
			continue
		}
		occ := &b.pieces[id]
		if occ.Color == p.Color {
			return true
		}
		if occ.Kind == Queen || occ.Kind == Rook {
			return b.safeEnPassantTowardKing(p, victimSq, kingSq)
		}
		return true
	}
}

func (b *Board) safeEnPassantTowardKing(p *Piece, victimSq, kingSq Square) bool {
	toward := 1
	if p.Square.File() > kingSq.File() {
		toward = -1
	}

	cur := p.Square
	for {
		nextFile := cur.File() + toward
		if nextFile < 0 || nextFile > 7 {
			return true
		}
		cur = NewSquare(nextFile, cur.Rank())
		if cur == victimSq {
			continue
		}
		if b.squares[cur] == NoPieceID {
			continue
		}
		return cur != kingSq
	}
}
