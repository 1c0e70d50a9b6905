// Package engine wires a Board, an Evaluator and a Searcher together behind
// a small synchronous API suitable for a driver (see pkg/engine/console) or
// a test harness.
package engine

import (
	"context"
	"fmt"

	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/corwinpratt/chessforge/pkg/board/fen"
	"github.com/corwinpratt/chessforge/pkg/eval"
	"github.com/corwinpratt/chessforge/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// ErrorKind distinguishes the two ways a caller-supplied move string can be
// rejected, per spec.md §7.
type ErrorKind int

const (
	// IllegalMove means the squares parsed fine but the result is not a
	// member of LegalMoves for the side to move.
	IllegalMove ErrorKind = iota
	// BadPromotion means the trailing promotion letter is not one of
	// {q, r, b, n} (lowercase, for either side), so it can never name a
	// generated move regardless of legality.
	BadPromotion
)

// Error reports why a UCI-style move string was rejected by MakeMove.
type Error struct {
	Kind ErrorKind
	Move string
}

func (e *Error) Error() string {
	switch e.Kind {
	case BadPromotion:
		return fmt.Sprintf("engine: bad promotion target in move %q", e.Move)
	default:
		return fmt.Sprintf("engine: illegal or unrecognized move %q", e.Move)
	}
}

// Options are engine-wide defaults.
type Options struct {
	// Depth is the default search depth used by SearchBestMove when no
	// explicit depth is given.
	Depth int
}

// Engine owns a Board and exposes move application, querying and search as
// one synchronous unit — there is no background search to halt or resume.
type Engine struct {
	name, author string

	b        *board.Board
	searcher search.Searcher
	opts     Options
}

// Option configures an Engine at construction.
type Option func(*Engine)

func WithSearcher(s search.Searcher) Option {
	return func(e *Engine) { e.searcher = s }
}

func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// New constructs an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) (*Engine, error) {
	e := &Engine{
		name:     name,
		author:   author,
		searcher: &search.AlphaBeta{Eval: eval.PieceSquareTables{}},
		opts:     Options{Depth: 4},
	}
	for _, fn := range opts {
		fn(e)
	}
	if err := e.Reset(ctx, fen.Initial); err != nil {
		return nil, err
	}
	logw.Infof(ctx, "Initialized engine: %v", e.Name())
	return e, nil
}

func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) SetDepth(depth int) {
	e.opts.Depth = depth
}

// Board exposes the underlying board for read-only inspection. Callers
// must not call MakeMove/UndoMove on it directly; use the Engine's own
// methods so engine-level bookkeeping (logging, future move history) stays
// consistent.
func (e *Engine) Board() *board.Board {
	return e.b
}

// Reset replaces the current position with the one descr describes.
func (e *Engine) Reset(ctx context.Context, descr string) error {
	b, err := fen.NewBoard(descr)
	if err != nil {
		return fmt.Errorf("invalid position: %w", err)
	}
	e.b = b
	logw.Infof(ctx, "Reset to %v", descr)
	return nil
}

// MakeMove applies the move named by a UCI-style string (e.g. "e2e4",
// "e7e8q"), which must match a member of LegalMoves for the side to move.
func (e *Engine) MakeMove(ctx context.Context, uci string) error {
	promo, ok := parseUCIPromotion(uci)
	if !ok {
		return &Error{Kind: BadPromotion, Move: uci}
	}
	m, ok := parseUCIMove(e.b.LegalMoves(e.b.Turn()), uci, promo)
	if !ok {
		return &Error{Kind: IllegalMove, Move: uci}
	}
	e.b.MakeMove(m)
	logw.Infof(ctx, "Move %v: %v", m, e.b.DescribePosition())
	return nil
}

// UndoMove reverses the last applied move. A no-op if there is no history.
func (e *Engine) UndoMove(ctx context.Context) {
	e.b.UndoMove()
	logw.Infof(ctx, "Undo: %v", e.b.DescribePosition())
}

func (e *Engine) LegalMoves() []board.Move {
	return e.b.LegalMoves(e.b.Turn())
}

func (e *Engine) TerminalStatus() board.TerminalStatus {
	return e.b.TerminalStatus()
}

func (e *Engine) DescribePosition() string {
	return e.b.DescribePosition()
}

// SearchBestMove runs the configured Searcher to depth plies (or the
// engine's default depth if depth is 0) and returns the resulting
// principal variation.
func (e *Engine) SearchBestMove(ctx context.Context, depth int) search.PV {
	if depth <= 0 {
		depth = e.opts.Depth
	}
	pv := e.searcher.Search(e.b, depth)
	logw.Infof(ctx, "Search: %v", pv)
	return pv
}

// Perft counts leaf nodes at depth from the current position, the
// correctness self-test of the move generator.
func (e *Engine) Perft(depth int) uint64 {
	return e.b.Perft(depth)
}

// parseUCIPromotion reports the promotion kind named by a trailing UCI
// letter, per spec.md §7's BadPromotion: only {q, r, b, n} are valid
// promotion targets, regardless of whether the resulting move turns out to
// be legal. A move string with no fifth character has no promotion target,
// which is valid (ok=true, kind=NoKind).
func parseUCIPromotion(s string) (board.PieceKind, bool) {
	if len(s) <= 4 {
		return board.NoKind, true
	}
	switch s[4] {
	case 'q', 'r', 'b', 'n':
		k, _ := board.ParsePieceKind(s[4])
		return k, true
	default:
		return board.NoKind, false
	}
}

func parseUCIMove(moves []board.Move, s string, promo board.PieceKind) (board.Move, bool) {
	if len(s) < 4 {
		return board.Move{}, false
	}
	from, ok := board.ParseSquare(s[0:2])
	if !ok {
		return board.Move{}, false
	}
	to, ok := board.ParseSquare(s[2:4])
	if !ok {
		return board.Move{}, false
	}

	for _, m := range moves {
		if m.From == from && m.To == to && m.PromotionKind == promo {
			return m, true
		}
	}
	return board.Move{}, false
}
