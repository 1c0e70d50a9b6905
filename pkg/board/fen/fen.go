// Package fen reads and writes chess position descriptors (the Forsyth-Edwards
// six-field notation spec.md §4.1 specifies as the on-the-wire format for a
// PositionState).
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corwinpratt/chessforge/pkg/board"
)

const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrorKind distinguishes a malformed descriptor from one that names a
// square that doesn't parse, per SPEC_FULL.md §4.1.
type ErrorKind int

const (
	MalformedDescriptor ErrorKind = iota
	BadSquare
)

type Error struct {
	Kind  ErrorKind
	Descr string
}

func (e *Error) Error() string {
	switch e.Kind {
	case BadSquare:
		return fmt.Sprintf("fen: bad square in descriptor: %q", e.Descr)
	default:
		return fmt.Sprintf("fen: malformed descriptor: %q", e.Descr)
	}
}

// Decode parses a position descriptor into a PositionState. The halfmove
// clock and fullmove number fields may be omitted, in which case they
// default to 0 and 1 respectively.
func Decode(descr string) (board.PositionState, error) {
	fields := strings.Fields(strings.TrimSpace(descr))
	if len(fields) < 4 {
		return board.PositionState{}, &Error{Kind: MalformedDescriptor, Descr: descr}
	}

	placement, err := normalizePlacement(fields[0])
	if err != nil {
		return board.PositionState{}, err
	}

	turn, ok := board.ParseColor(fields[1][0])
	if !ok {
		return board.PositionState{}, &Error{Kind: MalformedDescriptor, Descr: descr}
	}

	castling, ok := board.ParseCastling(fields[2])
	if !ok {
		return board.PositionState{}, &Error{Kind: MalformedDescriptor, Descr: descr}
	}

	ep := board.Invalid
	if fields[3] != "-" {
		sq, ok := board.ParseSquare(fields[3])
		if !ok {
			return board.PositionState{}, &Error{Kind: BadSquare, Descr: fields[3]}
		}
		ep = sq
	}

	halfmove, fullmove := 0, 1
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return board.PositionState{}, &Error{Kind: MalformedDescriptor, Descr: descr}
		}
		halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return board.PositionState{}, &Error{Kind: MalformedDescriptor, Descr: descr}
		}
		fullmove = n
	}

	return board.PositionState{
		Turn:           turn,
		Castling:       castling,
		EnPassant:      ep,
		HalfmoveClock:  halfmove,
		FullmoveNumber: fullmove,
		Placement:      placement,
	}, nil
}

// normalizePlacement validates the placement field (eight ranks, each
// describing exactly eight squares with known piece letters) and returns it
// unchanged.
func normalizePlacement(field string) (string, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return "", &Error{Kind: MalformedDescriptor, Descr: field}
	}
	for _, rank := range ranks {
		count := 0
		for _, r := range rank {
			switch {
			case r >= '1' && r <= '8':
				count += int(r - '0')
			default:
				if _, ok := board.ParsePieceKind(byte(r)); !ok {
					return "", &Error{Kind: MalformedDescriptor, Descr: field}
				}
				count++
			}
		}
		if count != 8 {
			return "", &Error{Kind: MalformedDescriptor, Descr: field}
		}
	}
	return field, nil
}

// Encode renders a PositionState back into descriptor notation.
func Encode(s board.PositionState) string {
	return s.String()
}

// NewBoard decodes descr and constructs a Board from it directly.
func NewBoard(descr string) (*board.Board, error) {
	state, err := Decode(descr)
	if err != nil {
		return nil, err
	}
	return board.NewBoard(state)
}
