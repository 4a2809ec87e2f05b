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

// Package types holds the primitive chess data types (Bitboard, Square,
// Color, PieceType, Move, ...) shared by position, movegen, evaluator and
// search. Square 0 is H1 and square 63 is A8; every bitmask and shift below
// is defined against that orientation.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square.
type Bitboard uint64

const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000

	FileA Bitboard = 0x8080808080808080
	FileB Bitboard = 0x4040404040404040
	FileC Bitboard = 0x2020202020202020
	FileD Bitboard = 0x1010101010101010
	FileE Bitboard = 0x0808080808080808
	FileF Bitboard = 0x0404040404040404
	FileG Bitboard = 0x0202020202020202
	FileH Bitboard = 0x0101010101010101

	PrimaryDiagonal   Bitboard = 0x8040201008040201 // bottom-right to top-left (H1-A8)
	SecondaryDiagonal Bitboard = 0x0102040810204080 // bottom-left to top-right (A1-H8)

	Empty Bitboard = 0
	All   Bitboard = 0xFFFFFFFFFFFFFFFF
)

// Ranks indexes rank masks 0..7 for rank number 1..8.
var Ranks = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// Files indexes file masks 0..7 for file number 1..8 (A..H).
var Files = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// Has reports whether the square's bit is set.
func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

// Push sets the square's bit.
func (b Bitboard) Push(s Square) Bitboard {
	return b | s.Bb()
}

// Pop clears the square's bit.
func (b Bitboard) Pop(s Square) Bitboard {
	return b &^ s.Bb()
}

// PopLSB returns the lowest-index set square and the bitboard with that
// bit cleared.
func (b Bitboard) PopLSB() (Square, Bitboard) {
	sq := Square(bits.TrailingZeros64(uint64(b)))
	return sq, b & (b - 1)
}

// LSB returns the lowest-index set square, or SquareNone if empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return SquareNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Reverse reverses the bit order of the board (square 0 <-> square 63).
// Used by the hyperbola-quintessence sliding attack identity.
func (b Bitboard) Reverse() Bitboard {
	return Bitboard(bits.Reverse64(uint64(b)))
}

// North, South, East, West and the four diagonal shifts move every bit of
// b one square in the named compass direction, clearing bits that would
// wrap around a board edge. Because square 0 is H1 (file 8) and square 63
// is A8 (file 1), "west" (toward the A-file) is a shift toward higher bit
// indices and "east" (toward the H-file) is a shift toward lower indices.
func ShiftNorth(b Bitboard) Bitboard { return (b &^ Rank8) << 8 }
func ShiftSouth(b Bitboard) Bitboard { return (b &^ Rank1) >> 8 }
func ShiftWest(b Bitboard) Bitboard  { return (b &^ FileA) << 1 }
func ShiftEast(b Bitboard) Bitboard  { return (b &^ FileH) >> 1 }

func ShiftNorthWest(b Bitboard) Bitboard { return (b &^ FileA) << 9 }
func ShiftNorthEast(b Bitboard) Bitboard { return (b &^ FileH) << 7 }
func ShiftSouthWest(b Bitboard) Bitboard { return (b &^ FileA) >> 7 }
func ShiftSouthEast(b Bitboard) Bitboard { return (b &^ FileH) >> 9 }

// Shift moves b one square in direction d.
func Shift(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return ShiftNorth(b)
	case NorthEast:
		return ShiftNorthEast(b)
	case East:
		return ShiftEast(b)
	case SouthEast:
		return ShiftSouthEast(b)
	case South:
		return ShiftSouth(b)
	case SouthWest:
		return ShiftSouthWest(b)
	case West:
		return ShiftWest(b)
	case NorthWest:
		return ShiftNorthWest(b)
	default:
		return 0
	}
}

// HyperbolaQuintessence computes the sliding attack set for a single piece
// along the ray described by mask, given the board's occupancy. piece must
// be a single-bit Bitboard.
//
//	attacks = (((mask&occ) - 2*piece) xor reverse(reverse(mask&occ) - 2*reverse(piece))) & mask
func HyperbolaQuintessence(piece, occupancy, mask Bitboard) Bitboard {
	o := mask & occupancy
	forward := o - 2*piece
	reverse := (o.Reverse() - 2*piece.Reverse()).Reverse()
	return (forward ^ reverse) & mask
}

// String renders the board as an 8x8 grid, rank 8 first, for debugging.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		for file := 1; file <= 8; file++ {
			sq := SquareOf(file, rank)
			if b.Has(sq) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			if file < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
