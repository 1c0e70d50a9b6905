package fen_test

import (
	"testing"

	"github.com/corwinpratt/chessforge/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 12 34",
	}

	for _, tt := range tests {
		state, err := fen.Decode(tt)
		require.NoError(t, err)
		assert.Equal(t, tt, fen.Encode(state))
	}
}

func TestDecodeOmittedClocks(t *testing.T) {
	state, err := fen.Decode("8/8/8/8/8/8/8/4K2k w - -")
	require.NoError(t, err)
	assert.Equal(t, 0, state.HalfmoveClock)
	assert.Equal(t, 1, state.FullmoveNumber)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := fen.Decode("not-a-fen-string")
	require.Error(t, err)

	ferr, ok := err.(*fen.Error)
	require.True(t, ok)
	assert.Equal(t, fen.MalformedDescriptor, ferr.Kind)
}

func TestDecodeBadSquare(t *testing.T) {
	_, err := fen.Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1")
	require.Error(t, err)
}

func TestNewBoard(t *testing.T) {
	b, err := fen.NewBoard(fen.Initial)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Len(t, b.LegalMoves(b.Turn()), 20)
}
