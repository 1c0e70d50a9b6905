// perft is a move-generator correctness and performance tool.
// See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corwinpratt/chessforge/pkg/board"
	"github.com/corwinpratt/chessforge/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	b, err := fen.NewBoard(*position)
	if err != nil {
		logw.Exitf(ctx, "Invalid position %q: %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		var nodes uint64
		if *divide && i == *depth {
			nodes = perftDivide(b, i)
		} else {
			nodes = b.Perft(i)
		}
		duration := time.Since(start)

		fmt.Printf("perft,%v,%v,%v,%v\n", *position, i, nodes, duration.Microseconds())
	}
}

// perftDivide prints the leaf count under each of the current side's legal
// moves at the root before returning their sum, so a discrepancy against a
// known-good perft count can be narrowed down to a single offending move.
func perftDivide(b *board.Board, depth int) uint64 {
	var nodes uint64
	for _, m := range b.LegalMoves(b.Turn()) {
		b.MakeMove(m)
		count := b.Perft(depth - 1)
		b.UndoMove()

		fmt.Printf("%v: %v\n", m, count)
		nodes += count
	}
	return nodes
}
