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

// Package attacks builds the move generator's precomputed per-square
// attack tables: king and knight jump sets, the four sliding-piece ray
// masks consumed by the hyperbola-quintessence identity, and pawn push
// and diagonal-capture targets for each color. Tables are built once and
// are immutable and safe to share across generators thereafter.
package attacks

import . "github.com/mkoepke/chesscore/internal/types"

// Tables holds every precomputed attack set, one entry per square.
type Tables struct {
	King   [64]Bitboard
	Knight [64]Bitboard

	// PrimaryDiagonal runs bottom-right to top-left (H1-A8 direction);
	// SecondaryDiagonal runs bottom-left to top-right (A1-H8 direction).
	// Both exclude the piece's own square, as required by hyperbola
	// quintessence.
	PrimaryDiagonal   [64]Bitboard
	SecondaryDiagonal [64]Bitboard

	// PrimaryStraight is the occupant's rank; SecondaryStraight is its
	// file. Both exclude the piece's own square.
	PrimaryStraight   [64]Bitboard
	SecondaryStraight [64]Bitboard

	// Pawn tables, indexed by color then square.
	PawnPush     [2][64]Bitboard // single+double forward push targets, assuming nothing blocks
	PawnCaptures [2][64]Bitboard // diagonal capture targets
}

var shared = build()

// Shared returns the single, immutable, process-wide table set.
func Shared() *Tables { return shared }

func build() *Tables {
	t := &Tables{}
	for i := 0; i < 64; i++ {
		sq := Square(i)
		pos := sq.Bb()

		t.King[i] = ShiftNorth(pos) | ShiftSouth(pos) | ShiftEast(pos) | ShiftWest(pos) |
			ShiftNorthEast(pos) | ShiftNorthWest(pos) | ShiftSouthEast(pos) | ShiftSouthWest(pos)

		t.Knight[i] = ShiftNorth(ShiftNorthEast(pos)) | ShiftNorth(ShiftNorthWest(pos)) |
			ShiftSouth(ShiftSouthEast(pos)) | ShiftSouth(ShiftSouthWest(pos)) |
			ShiftEast(ShiftNorthEast(pos)) | ShiftEast(ShiftSouthEast(pos)) |
			ShiftWest(ShiftNorthWest(pos)) | ShiftWest(ShiftSouthWest(pos))

		t.PrimaryStraight[i] = Ranks[sq.Rank()-1] ^ pos
		t.SecondaryStraight[i] = Files[sq.File()-1] ^ pos

		t.PrimaryDiagonal[i], t.SecondaryDiagonal[i] = diagonalMasks(sq, pos)

		t.PawnPush[White][i] = ShiftNorth(pos)
		if pos&Rank2 != 0 {
			t.PawnPush[White][i] |= ShiftNorth(ShiftNorth(pos))
		}
		t.PawnCaptures[White][i] = ShiftNorthEast(pos) | ShiftNorthWest(pos)

		t.PawnPush[Black][i] = ShiftSouth(pos)
		if pos&Rank7 != 0 {
			t.PawnPush[Black][i] |= ShiftSouth(ShiftSouth(pos))
		}
		t.PawnCaptures[Black][i] = ShiftSouthEast(pos) | ShiftSouthWest(pos)
	}
	return t
}

// diagonalMasks shifts the two full-board diagonals so they pass through
// sq, analogous to sliding the constant PrimaryDiagonal/SecondaryDiagonal
// bitboards by the square's vertical distance from each.
func diagonalMasks(sq Square, pos Bitboard) (primary, secondary Bitboard) {
	file := sq.File()
	rank := sq.Rank()

	dPrimary := (file - 1) - (8 - rank)
	dSecondary := (8 - file) - (8 - rank)

	primary = shiftVertical(PrimaryDiagonal, dPrimary)
	secondary = shiftVertical(SecondaryDiagonal, dSecondary)

	return primary ^ pos, secondary ^ pos
}

func shiftVertical(b Bitboard, n int) Bitboard {
	if n >= 0 {
		return b << uint(n*8)
	}
	return b >> uint(-n*8)
}

// SlidingAttacks returns the hyperbola-quintessence attack set for a
// single sliding piece at sq given the two ray masks appropriate to its
// movement (straight pair for rooks, diagonal pair for bishops, all four
// for queens) and the board's full occupancy.
func SlidingAttacks(sq Square, occupancy Bitboard, masks ...[64]Bitboard) Bitboard {
	piece := sq.Bb()
	var attacks Bitboard
	for _, m := range masks {
		attacks |= HyperbolaQuintessence(piece, occupancy, m[sq])
	}
	return attacks
}
