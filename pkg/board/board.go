// Package board implements the chess position: a 64-square piece array,
// per-color move/protected-square/check-path caches, the move generator, and
// the make/unmake machinery that keeps all of it consistent.
package board

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Board is the live game state: the piece pool, the 64-square index into it,
// per-color derived caches, the move history, and the current terminal
// status. Not safe for concurrent use: MakeMove and UndoMove mutate it in
// place.
type Board struct {
	pieces  []Piece
	squares [64]PieceID
	active  [2][]PieceID
	king    [2]Square

	moves      [2][]Move
	protecting [2][]Square
	checkPaths [2][][]Square

	history []Move
	state   PositionState
	status  TerminalStatus

	charBoard [64]byte

	zt *ZobristTable
}

// NewBoard instantiates a board from a PositionState whose Placement field
// is already populated (see pkg/board/fen for parsing a descriptor string
// into one). It performs the three-phase bulk regeneration spec.md §4.2
// requires: side, then Enemy(side), then side again, so that both colors'
// pin-paths and check-paths are correct before construction returns.
func NewBoard(state PositionState) (*Board, error) {
	pieces, squares, kingSq, err := parsePlacement(state.Placement)
	if err != nil {
		return nil, err
	}

	b := &Board{
		pieces:  pieces,
		squares: squares,
		king:    kingSq,
		state:   state,
		zt:      NewZobristTable(1),
	}
	b.rebuildActive()
	b.refreshCharBoard()

	side := state.Turn
	enemy := side.Enemy()

	b.clearAllConditions()
	b.calculateAllMoves(side)
	b.calculateAllMoves(enemy)
	b.calculateAllMoves(side)
	b.evaluateTerminalStatus()

	return b, nil
}

func parsePlacement(placement string) ([]Piece, [64]PieceID, [2]Square, error) {
	var pieces []Piece
	var squares [64]PieceID
	for i := range squares {
		squares[i] = NoPieceID
	}
	kingSq := [2]Square{Invalid, Invalid}

	sq := ZeroSquare
	for _, r := range placement {
		switch {
		case r == '/':
			continue
		case r >= '1' && r <= '8':
			sq += Square(r - '0')
		default:
			kind, ok := ParsePieceKind(byte(r))
			if !ok {
				return nil, squares, kingSq, fmt.Errorf("board: bad placement character %q", r)
			}
			if !sq.IsValid() {
				return nil, squares, kingSq, fmt.Errorf("board: placement overflows the board")
			}
			color := White
			if r >= 'a' && r <= 'z' {
				color = Black
			}
			id := PieceID(len(pieces))
			pieces = append(pieces, Piece{ID: id, Kind: kind, Color: color, Square: sq})
			squares[sq] = id
			if kind == King {
				kingSq[color] = sq
			}
			sq++
		}
	}
	if sq != NumSquares {
		return nil, squares, kingSq, fmt.Errorf("board: placement describes %d squares, want %d", sq, NumSquares)
	}
	if kingSq[White] == Invalid || kingSq[Black] == Invalid {
		return nil, squares, kingSq, fmt.Errorf("board: placement must have exactly one king per color")
	}
	return pieces, squares, kingSq, nil
}

func (b *Board) rebuildActive() {
	b.active[White] = nil
	b.active[Black] = nil
	for i := range b.pieces {
		p := &b.pieces[i]
		b.active[p.Color] = append(b.active[p.Color], p.ID)
	}
}

func (b *Board) removeActive(color Color, id PieceID) {
	arr := b.active[color]
	for i, v := range arr {
		if v == id {
			b.active[color] = append(arr[:i], arr[i+1:]...)
			return
		}
	}
}

func (b *Board) addActiveID(color Color, id PieceID) {
	b.active[color] = append(b.active[color], id)
}

// clearAllConditions resets both colors' check-paths and every piece's
// pinned-path, per spec.md §4.2 — called by make/undo before regeneration.
func (b *Board) clearAllConditions() {
	b.checkPaths[White] = nil
	b.checkPaths[Black] = nil
	for i := range b.pieces {
		b.pieces[i].PinPath = nil
	}
}

// calculateAllMoves implements spec.md §4.2: it clears side's own move and
// protected-square caches, then regenerates them from side's live pieces.
// As a side effect, sliding/knight/pawn generation may publish check-paths
// or pinned-paths that belong to the OPPOSING color.
func (b *Board) calculateAllMoves(side Color) {
	b.moves[side] = b.moves[side][:0]
	b.protecting[side] = b.protecting[side][:0]

	for _, id := range b.active[side] {
		p := &b.pieces[id]
		switch p.Kind {
		case Pawn:
			b.generatePawnMoves(p)
		case Knight:
			b.generateKnightMoves(p)
		case Bishop, Rook, Queen:
			b.generateSlidingMoves(p)
		case King:
			b.generateKingMoves(p)
		}
	}
}

func (b *Board) addMove(p *Piece, to Square, isCapture bool, capturedID PieceID) int {
	m := Move{Mover: p.ID, MoverKind: p.Kind, MoverColor: p.Color, From: p.Square, To: to}
	if isCapture && capturedID != NoPieceID {
		m.Captured = lang.Some(capturedID)
	}
	b.moves[p.Color] = append(b.moves[p.Color], m)
	return len(b.moves[p.Color]) - 1
}

func (b *Board) addProtecting(side Color, sq Square) {
	b.protecting[side] = append(b.protecting[side], sq)
}

// setDisambiguation implements spec.md §4.4's disambiguation scan for
// sliding and knight moves: any other live piece of the same kind and color
// that can reach the same destination sets file- or rank-disambiguation on
// the move at b.moves[side][idx].
func (b *Board) setDisambiguation(side Color, idx int) {
	m := &b.moves[side][idx]
	mover := &b.pieces[m.Mover]

	for _, id := range b.active[side] {
		if id == m.Mover {
			continue
		}
		p2 := &b.pieces[id]
		if p2.Kind != m.MoverKind {
			continue
		}
		if !b.canPieceReach(p2, m.To) {
			continue
		}
		if p2.Square.File() != mover.Square.File() {
			m.FileDisambig = true
		} else if p2.Square.Rank() != mover.Square.Rank() {
			m.RankDisambig = true
		}
	}
}

func (b *Board) canPieceReach(p *Piece, to Square) bool {
	switch p.Kind {
	case Knight:
		return knightOffsetValid(p.Square, to)
	case Bishop, Rook, Queen:
		return b.slidingReachable(p, to)
	default:
		return false
	}
}

// MakeMove applies cand, which must be a member of LegalMoves(cand.MoverColor)
// (per spec.md §7, callers — not this routine — are responsible for that
// membership check). It implements spec.md §4.8.
func (b *Board) MakeMove(cand Move) {
	side := cand.MoverColor
	mover := &b.pieces[cand.Mover]
	if mover.Square != cand.From {
		panic("board: MakeMove called with a stale mover reference")
	}

	rec := cand
	rec.OldState = b.state
	rec.MoverHadMoved = mover.HasMoved

	halfmoveReset := false

	if id := b.squares[cand.To]; id != NoPieceID {
		captured := &b.pieces[id]
		rec.Captured = lang.Some(id)
		b.squares[cand.To] = NoPieceID
		b.removeActive(captured.Color, id)
		halfmoveReset = true
	}

	if cand.IsEnPassant {
		victimSq := NewSquare(cand.To.File(), cand.From.Rank())
		vid := b.squares[victimSq]
		victim := &b.pieces[vid]
		rec.Captured = lang.Some(vid)
		b.squares[victimSq] = NoPieceID
		b.removeActive(victim.Color, vid)
		halfmoveReset = true
	}

	nextEnPassant := Invalid
	if mover.Kind == Pawn {
		delta := int(cand.To) - int(cand.From)
		if delta == 16 || delta == -16 {
			nextEnPassant = Square((int(cand.To) + int(cand.From)) / 2)
		}
	}

	newCastling := b.state.Castling
	if mover.Kind == King {
		newCastling = newCastling.Revoke(KingSideRight(side) | QueenSideRight(side))
	}
	if mover.Kind == Rook {
		switch cand.From {
		case A1:
			newCastling = newCastling.Revoke(QueenSideRight(White))
		case H1:
			newCastling = newCastling.Revoke(KingSideRight(White))
		case A8:
			newCastling = newCastling.Revoke(QueenSideRight(Black))
		case H8:
			newCastling = newCastling.Revoke(KingSideRight(Black))
		}
	}

	if mover.Kind == King && abs(int(cand.To)-int(cand.From)) == 2 {
		var rookFrom, rookTo Square
		for _, cs := range castleSpecs(side) {
			if cs.kingTo == cand.To {
				rookFrom, rookTo = cs.rookFrom, cs.rookTo
				break
			}
		}
		rid := b.squares[rookFrom]
		rook := &b.pieces[rid]
		rec.CastledRookHadMoved = rook.HasMoved
		b.squares[rookFrom] = NoPieceID
		b.squares[rookTo] = rid
		rook.Square = rookTo
		rook.HasMoved = true
		rec.CastledRook = lang.Some(rid)
		rec.CastledFrom = rookFrom
	}

	b.squares[cand.From] = NoPieceID
	b.squares[cand.To] = cand.Mover
	mover.Square = cand.To
	mover.HasMoved = true
	if mover.Kind == King {
		b.king[side] = cand.To
	}

	newHalfmove := b.state.HalfmoveClock + 1
	if mover.Kind == Pawn || halfmoveReset {
		newHalfmove = 0
	}

	if cand.PromotionKind.IsValid() {
		b.squares[cand.To] = NoPieceID
		newID := PieceID(len(b.pieces))
		b.pieces = append(b.pieces, Piece{ID: newID, Kind: cand.PromotionKind, Color: side, Square: cand.To, HasMoved: true})
		b.squares[cand.To] = newID
		b.removeActive(side, cand.Mover)
		b.addActiveID(side, newID)
		rec.Promoted = lang.Some(newID)
	}

	newTurn := side.Enemy()
	newFullmove := b.state.FullmoveNumber
	if newTurn == White {
		newFullmove++
	}

	b.refreshCharBoard()
	b.state = PositionState{
		Turn:           newTurn,
		Castling:       newCastling,
		EnPassant:      nextEnPassant,
		HalfmoveClock:  newHalfmove,
		FullmoveNumber: newFullmove,
		Placement:      b.placementString(),
	}

	b.clearAllConditions()
	b.calculateAllMoves(side)
	b.calculateAllMoves(newTurn)
	b.evaluateTerminalStatus()

	b.history = append(b.history, rec)
}

// UndoMove pops and reverses the last MoveRecord. A no-op on empty history,
// per spec.md §7's NoHistory handling.
func (b *Board) UndoMove() {
	if len(b.history) == 0 {
		return
	}
	rec := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	side := rec.MoverColor
	mover := &b.pieces[rec.Mover]

	if pid, ok := rec.Promoted.V(); ok {
		b.squares[rec.To] = NoPieceID
		b.removeActive(side, pid)
		b.addActiveID(side, rec.Mover)
	}

	b.squares[rec.To] = NoPieceID
	mover.Square = rec.From
	b.squares[rec.From] = rec.Mover
	if mover.Kind == King {
		b.king[side] = rec.From
	}

	if cid, ok := rec.Captured.V(); ok {
		captured := &b.pieces[cid]
		b.squares[captured.Square] = cid
		b.addActiveID(captured.Color, cid)
	}

	if rid, ok := rec.CastledRook.V(); ok {
		rook := &b.pieces[rid]
		b.squares[rook.Square] = NoPieceID
		rook.Square = rec.CastledFrom
		b.squares[rec.CastledFrom] = rid
		rook.HasMoved = rec.CastledRookHadMoved
	}
	mover.HasMoved = rec.MoverHadMoved

	b.state = rec.OldState

	b.refreshCharBoard()
	b.clearAllConditions()
	enemy := side.Enemy()
	b.calculateAllMoves(enemy)
	b.calculateAllMoves(side)
	b.evaluateTerminalStatus()
}

// LegalMoves returns a copy of side's cached legal move list.
func (b *Board) LegalMoves(side Color) []Move {
	out := make([]Move, len(b.moves[side]))
	copy(out, b.moves[side])
	return out
}

// CheckPaths returns a copy of side's check-path list; non-empty iff side's
// king is in check.
func (b *Board) CheckPaths(side Color) [][]Square {
	out := make([][]Square, len(b.checkPaths[side]))
	copy(out, b.checkPaths[side])
	return out
}

// History returns the moves played so far, oldest first.
func (b *Board) History() []Move {
	out := make([]Move, len(b.history))
	copy(out, b.history)
	return out
}

// ActivePieces returns a copy of side's currently live pieces.
func (b *Board) ActivePieces(side Color) []Piece {
	out := make([]Piece, 0, len(b.active[side]))
	for _, id := range b.active[side] {
		out = append(out, b.pieces[id])
	}
	return out
}

func (b *Board) KingSquare(side Color) Square {
	return b.king[side]
}

func (b *Board) Turn() Color {
	return b.state.Turn
}

func (b *Board) State() PositionState {
	return b.state
}

// TerminalStatus returns the current outcome, exactly one of InProgress,
// WhiteWin, BlackWin, DrawStalemate, Draw50Moves or DrawRepetition.
func (b *Board) TerminalStatus() TerminalStatus {
	return b.status
}

// evaluateTerminalStatus implements spec.md §4.9's ordering exactly.
func (b *Board) evaluateTerminalStatus() {
	side := b.state.Turn
	if len(b.moves[side]) == 0 {
		if len(b.checkPaths[side]) > 0 {
			if side == White {
				b.status = BlackWin
			} else {
				b.status = WhiteWin
			}
		} else {
			b.status = DrawStalemate
		}
		return
	}
	if b.state.HalfmoveClock >= 100 {
		b.status = Draw50Moves
		return
	}
	if b.countRepetitions() >= 3 {
		b.status = DrawRepetition
		return
	}
	b.status = InProgress
}

// countRepetitions implements spec.md §4.9's threefold walk: backward
// through history, stopping after any capture, pawn move or castle, using
// the Zobrist hash as a pre-filter ahead of the exact SamePosition compare.
func (b *Board) countRepetitions() int {
	count := 1
	curHash := b.zt.HashState(b.state)

	for j := len(b.history) - 1; j >= 0; j-- {
		m := b.history[j]
		if b.zt.HashState(m.OldState) == curHash && b.state.SamePosition(m.OldState) {
			count++
		}
		if m.IsCapture() || m.MoverKind == Pawn || m.IsCastle() {
			break
		}
	}
	return count
}

// Perft counts leaf positions reached at depth, the correctness self-test
// of spec.md §8.
func (b *Board) Perft(depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves(b.state.Turn)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m)
		nodes += b.Perft(depth - 1)
		b.UndoMove()
	}
	return nodes
}

// DescribePosition renders the current position as a six-field descriptor.
func (b *Board) DescribePosition() string {
	return b.state.String()
}

func (b *Board) refreshCharBoard() {
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		id := b.squares[sq]
		if id == NoPieceID {
			b.charBoard[sq] = '.'
			continue
		}
		p := &b.pieces[id]
		c := p.Kind.String()
		if p.Color == White {
			c = strings.ToUpper(c)
		}
		b.charBoard[sq] = c[0]
	}
}

func (b *Board) placementString() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		if rank > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for file := 0; file < 8; file++ {
			id := b.squares[NewSquare(file, rank)]
			if id == NoPieceID {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			p := &b.pieces[id]
			c := p.Kind.String()
			if p.Color == White {
				c = strings.ToUpper(c)
			}
			sb.WriteString(c)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

func (b *Board) String() string {
	var sb strings.Builder
	for sq := ZeroSquare; sq < NumSquares; sq++ {
		if sq != 0 && sq.File() == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteByte(b.charBoard[sq])
	}
	return fmt.Sprintf("%s\n%s status=%v", sb.String(), b.state, b.status)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
