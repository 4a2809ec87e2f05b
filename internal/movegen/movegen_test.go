//
// chesscore - a bitboard chess engine core in Go
//
// MIT License
//
// Copyright (c) 2020-2024 chesscore contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoepke/chesscore/internal/position"
	. "github.com/mkoepke/chesscore/internal/types"
)

func TestGenerateLegal_StartPositionHas20Moves(t *testing.T) {
	p := position.New()
	assert.Len(t, GenerateLegal(p), 20)
}

func TestGameState_FoolsMateIsCheckmate(t *testing.T) {
	p := position.New()
	require.NoError(t, p.LoadFEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"))
	assert.Empty(t, GenerateLegal(p))
	assert.Equal(t, Checkmate, p.State())
	assert.Equal(t, Checkmate, GameState(p))
}

func TestGameState_Stalemate(t *testing.T) {
	// Black king on h8 has every escape square covered by the white king
	// and queen, but h8 itself is not attacked.
	p := position.New()
	require.NoError(t, p.LoadFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
	assert.Empty(t, GenerateLegal(p))
	assert.Equal(t, Stalemate, p.State())
	assert.Equal(t, Stalemate, GameState(p))
}

func TestGenerateLegal_ClaimsAutomaticDraws(t *testing.T) {
	p := position.New()
	require.NoError(t, p.LoadFEN("4k3/8/8/8/8/8/4P3/4K3 w - - 100 80"))
	assert.Empty(t, GenerateLegal(p), "a fifty-move draw claim precedes generation")
	assert.Equal(t, FiftyMoveRule, p.State())

	require.NoError(t, p.LoadFEN("8/8/8/4k3/8/3NK3/8/8 w - - 0 1"))
	assert.Empty(t, GenerateLegal(p))
	assert.Equal(t, InsufficientMaterial, p.State())
}

func TestGenerateLegal_SetsStatePlayWhenMovesExist(t *testing.T) {
	p := position.New()
	assert.NotEmpty(t, GenerateLegal(p))
	assert.Equal(t, Play, p.State())
}

// Pinned knight cannot move off the pin line even though its destination
// square would otherwise be a legal knight jump.
func TestAbsolutePinRestrictsMovement(t *testing.T) {
	p := position.New()
	require.NoError(t, p.LoadFEN("k3r3/8/8/8/8/4N3/8/4K3 w - - 0 1"))
	moves := GenerateLegal(p)
	knightSq := SquareOf(5, 3)
	for _, m := range moves {
		if m.From() == knightSq {
			t.Fatalf("pinned knight on e3 has no legal moves, got %s", m)
		}
	}
}

// A discovered-check trap: capturing en passant would expose white's own
// king to the black rook on the 5th rank, so the en-passant capture must
// not appear among the legal moves.
func TestEnPassantDiscoveredCheckIsIllegal(t *testing.T) {
	p := position.New()
	require.NoError(t, p.LoadFEN("4k3/8/8/K2Pp2r/8/8/8/8 w - e6 0 1"))
	moves := GenerateLegal(p)
	epTarget := SquareOf(5, 6)
	for _, m := range moves {
		assert.NotEqual(t, epTarget, m.To(), "en passant here discovers check and must be excluded")
	}
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		fen      string
		expected bool
	}{
		{"8/8/8/4k3/8/8/4K3/8 w - - 0 1", true},      // bare kings
		{"8/8/8/4k3/8/3NK3/8/8 w - - 0 1", true},     // king+knight vs king
		{"8/8/8/4k3/8/2B1K3/8/8 w - - 0 1", true},    // king+bishop vs king
		{"8/8/8/4k1b1/8/2B1K3/8/8 w - - 0 1", false}, // a minor on each side can still mate
		{"8/8/8/4k3/8/3PK3/8/8 w - - 0 1", false},    // a pawn remains
		{"8/8/8/4k3/8/3RK3/8/8 w - - 0 1", false},    // king+rook mates just fine
	}
	for _, test := range tests {
		p := position.New()
		require.NoError(t, p.LoadFEN(test.fen))
		assert.Equal(t, test.expected, HasInsufficientMaterial(p), "FEN %q", test.fen)
	}
}

func TestIsLegalAgreesWithGenerateLegal(t *testing.T) {
	p := position.New()
	legal := GenerateLegal(p)
	require.NotEmpty(t, legal)
	for _, m := range legal {
		resolved, ok := IsLegal(p, m)
		assert.True(t, ok)
		assert.Equal(t, m, resolved)
	}
	illegal := NewMove(SquareOf(5, 2), SquareOf(5, 5), NoPieceType) // e2e5, too far
	_, ok := IsLegal(p, illegal)
	assert.False(t, ok)
}
