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

package types

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitboardPopCount(t *testing.T) {
	tests := []struct {
		value    Bitboard
		expected int
	}{
		{Empty, 0},
		{All, 64},
		{Bitboard(1), 1},
		{Bitboard(128), 1},
		{Bitboard(7), 3},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, test.value.PopCount())
		assert.Equal(t, bits.OnesCount64(uint64(test.value)), test.value.PopCount())
	}
}

func TestBitboardPushPop(t *testing.T) {
	var b Bitboard
	b = b.Push(SquareOf(1, 1))
	assert.True(t, b.Has(SquareOf(1, 1)))
	b = b.Pop(SquareOf(1, 1))
	assert.False(t, b.Has(SquareOf(1, 1)))
	assert.Equal(t, Empty, b)
}

func TestBitboardPopLSB(t *testing.T) {
	b := SquareOf(8, 1).Bb() | SquareOf(1, 1).Bb()
	sq, rest := b.PopLSB()
	assert.Equal(t, SquareOf(8, 1), sq)
	assert.Equal(t, SquareOf(1, 1).Bb(), rest)
	sq, rest = rest.PopLSB()
	assert.Equal(t, SquareOf(1, 1), sq)
	assert.Equal(t, Empty, rest)
}

func TestBitboardLSBEmpty(t *testing.T) {
	assert.Equal(t, SquareNone, Empty.LSB())
}

func TestBitboardReverseIsInvolution(t *testing.T) {
	b := Rank1 | FileA | PrimaryDiagonal
	assert.Equal(t, b, b.Reverse().Reverse())
}

func TestRanksAndFilesDisjointCoverAll(t *testing.T) {
	var union Bitboard
	for _, r := range Ranks {
		assert.Equal(t, 8, r.PopCount())
		union |= r
	}
	assert.Equal(t, All, union)

	union = 0
	for _, f := range Files {
		assert.Equal(t, 8, f.PopCount())
		union |= f
	}
	assert.Equal(t, All, union)
}

func TestShiftsClearBoardEdges(t *testing.T) {
	assert.Equal(t, Empty, ShiftNorth(Rank8))
	assert.Equal(t, Empty, ShiftSouth(Rank1))
	assert.Equal(t, Empty, ShiftWest(FileA))
	assert.Equal(t, Empty, ShiftEast(FileH))
}

func TestHyperbolaQuintessenceEmptyBoardRookOnA1(t *testing.T) {
	piece := SquareOf(1, 1).Bb()
	attacks := HyperbolaQuintessence(piece, piece, Files[0])
	assert.Equal(t, 7, attacks.PopCount(), "rook on a1 sweeps the rest of the a-file on an empty board")
	assert.True(t, attacks.Has(SquareOf(1, 8)))
	assert.False(t, attacks.Has(SquareOf(1, 1)))
}
