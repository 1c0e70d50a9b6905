// Package console implements a simple synchronous line-based driver for
// debugging an Engine interactively, in the spirit of xboard's console mode.
package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/corwinpratt/chessforge/pkg/board/fen"
	"github.com/corwinpratt/chessforge/pkg/engine"
	"github.com/seekerror/logw"
)

// Driver reads commands from in and writes responses to out until in
// closes or a "quit" command is received. Unlike a UCI/xboard driver, every
// command — including "analyze" — runs to completion before the next line
// is read: there is no background search to interrupt.
type Driver struct {
	e   *engine.Engine
	out chan<- string
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{e: e, out: out}
	go d.process(ctx, in)
	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer close(d.out)

	logw.Infof(ctx, "Console driver initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard()

	for line := range in {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "reset", "r":
			d.handleReset(ctx, args)

		case "undo", "u":
			d.e.UndoMove(ctx)
			d.printBoard()

		case "print", "p":
			d.printBoard()

		case "depth", "d":
			if len(args) > 0 {
				if n, err := strconv.Atoi(args[0]); err == nil {
					d.e.SetDepth(n)
				}
			}

		case "analyze", "a", "go":
			depth := 0
			if len(args) > 0 {
				depth, _ = strconv.Atoi(args[0])
			}
			pv := d.e.SearchBestMove(ctx, depth)
			d.out <- pv.String()
			if len(pv.Moves) > 0 {
				d.out <- fmt.Sprintf("bestmove %v", pv.Moves[0])
			}

		case "perft":
			depth := 4
			if len(args) > 0 {
				depth, _ = strconv.Atoi(args[0])
			}
			d.out <- fmt.Sprintf("perft(%v) = %v", depth, d.e.Perft(depth))

		case "quit", "exit", "q":
			logw.Infof(ctx, "Console driver closed")
			return

		default:
			if err := d.e.MakeMove(ctx, cmd); err != nil {
				d.out <- fmt.Sprintf("invalid move: %q", cmd)
			} else {
				d.printBoard()
			}
		}
	}
	logw.Infof(ctx, "Input stream closed")
}

func (d *Driver) handleReset(ctx context.Context, args []string) {
	pos := fen.Initial
	move := false
	var moves []string
	for _, a := range args {
		if a == "moves" {
			move = true
			continue
		}
		if move {
			moves = append(moves, a)
		}
	}
	if len(args) > 0 && args[0] != "moves" {
		n := len(args)
		if move {
			n = len(args) - len(moves) - 1
		}
		if n > 6 {
			n = 6
		}
		pos = strings.Join(args[0:n], " ")
	}

	if err := d.e.Reset(ctx, pos); err != nil {
		d.out <- fmt.Sprintf("invalid position: %v", err)
		return
	}
	for _, m := range moves {
		if err := d.e.MakeMove(ctx, m); err != nil {
			d.out <- fmt.Sprintf("invalid move %q: %v", m, err)
			return
		}
	}
	d.printBoard()
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

func (d *Driver) printBoard() {
	b := d.e.Board()

	d.out <- ""
	d.out <- files
	d.out <- horizontal

	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		sb.Reset()
		sb.WriteString(strconv.Itoa(8 - rank))
		sb.WriteString(vertical)
		for file := 0; file < 8; file++ {
			sb.WriteString(squareGlyph(b, board.NewSquare(file, rank)))
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("fen:    %v", d.e.DescribePosition())
	d.out <- fmt.Sprintf("status: %v", d.e.TerminalStatus())
	d.out <- ""
}

func squareGlyph(b *board.Board, sq board.Square) string {
	for _, p := range append(b.ActivePieces(board.White), b.ActivePieces(board.Black)...) {
		if p.Square == sq {
			letter := p.Kind.String()
			if p.Color == board.White {
				return strings.ToUpper(letter)
			}
			return letter
		}
	}
	return " "
}
