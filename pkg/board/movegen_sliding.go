package board

// rayDir is one of the eight compass directions a sliding piece walks.
// delta is the per-step index change; df is the corresponding file change,
// used to detect a ray walking off the left/right edge of the board.
type rayDir struct {
	delta int
	df    int
}

var (
	rookDirs = []rayDir{
		{delta: -8, df: 0},  // N
		{delta: 8, df: 0},   // S
		{delta: 1, df: 1},   // E
		{delta: -1, df: -1}, // W
	}
	bishopDirs = []rayDir{
		{delta: -9, df: -1}, // NW
		{delta: -7, df: 1},  // NE
		{delta: 7, df: -1},  // SW
		{delta: 9, df: 1},   // SE
	}
	queenDirs = append(append([]rayDir{}, rookDirs...), bishopDirs...)
)

func dirsFor(kind PieceKind) []rayDir {
	switch kind {
	case Bishop:
		return bishopDirs
	case Rook:
		return rookDirs
	case Queen:
		return queenDirs
	default:
		return nil
	}
}

// generateSlidingMoves walks every ray of p's direction set, per spec.md
// §4.4: it generates p's pseudo-legal moves and protected squares, and as a
// side effect may publish a check-path for the opposing color or a
// pinned-path on an opposing piece.
func (b *Board) generateSlidingMoves(p *Piece) {
	for _, d := range dirsFor(p.Kind) {
		b.walkRay(p, d)
	}
}

func (b *Board) walkRay(p *Piece, d rayDir) {
	side := p.Color
	enemy := side.Enemy()

	cur := p.Square
	pathToKing := []Square{p.Square}
	potentialPin := false
	var pinnedID PieceID = NoPieceID

	for {
		prevFile := cur.File()
		next := cur + Square(d.delta)
		if !next.IsValid() || next.File()-prevFile != d.df {
			break
		}
		cur = next

		id := b.squares[cur]
		if id == NoPieceID {
			if !potentialPin {
				if b.legalFilter(p, cur, false) {
					idx := b.addMove(p, cur, false, NoPieceID)
					b.setDisambiguation(side, idx)
				}
				b.addProtecting(side, cur)
			}
			pathToKing = append(pathToKing, cur)
			continue
		}

		occ := &b.pieces[id]
		if occ.Color == side {
			if !potentialPin {
				b.addProtecting(side, cur)
			}
			break
		}

		// Enemy-occupied square.
		if !potentialPin {
			if b.legalFilter(p, cur, false) {
				idx := b.addMove(p, cur, true, id)
				b.setDisambiguation(side, idx)
			}
			pathToKing = append(pathToKing, cur)
			if occ.Kind == King {
				b.checkPaths[enemy] = append(b.checkPaths[enemy], append([]Square{}, pathToKing...))
				// Keep walking through the king, with potentialPin still
				// false: the square(s) behind it must stay in protecting[side]
				// too, or the checked king could "capture" its own checker's
				// square and then walk backward off the ray next move.
				continue
			}
			potentialPin = true
			pinnedID = id
			continue
		}

		// A pin is already in progress; this is the second enemy piece hit.
		if occ.Kind == King {
			b.pieces[pinnedID].PinPath = append([]Square{}, pathToKing...)
		}
		break
	}
}

// slidingReachable reports whether a sliding piece p could reach to along
// one of its rays with no intervening piece, ignoring legality. Used only
// for SAN disambiguation, where pin/check status of the candidate is
// irrelevant.
func (b *Board) slidingReachable(p *Piece, to Square) bool {
	for _, d := range dirsFor(p.Kind) {
		cur := p.Square
		for {
			prevFile := cur.File()
			next := cur + Square(d.delta)
			if !next.IsValid() || next.File()-prevFile != d.df {
				break
			}
			cur = next
			if cur == to {
				return true
			}
			if b.squares[cur] != NoPieceID {
				break
			}
		}
	}
	return false
}
