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

import "fmt"

// Square is a board square numbered 0-63. Bit i of a Bitboard corresponds
// to Square(i). File = 8 - (i mod 8), Rank = (i div 8) + 1, so square 0 is
// H1, square 7 is A1 and square 63 is A8. This orientation is load-bearing:
// every precomputed table and FEN routine assumes it.
type Square int8

const (
	SquareNone Square = -1
)

// File returns the file number in [1,8] where 1=A ... 8=H.
func (s Square) File() int {
	return 8 - int(s)%8
}

// Rank returns the rank number in [1,8].
func (s Square) Rank() int {
	return int(s)/8 + 1
}

// Bb returns the single-bit Bitboard for this square.
func (s Square) Bb() Bitboard {
	return Bitboard(1) << uint(s)
}

var fileLetters = "abcdefgh"

// String renders the square in algebraic notation, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return fmt.Sprintf("%c%d", fileLetters[s.File()-1], s.Rank())
}

// SquareFromString parses algebraic notation ("e4") into a Square.
func SquareFromString(sq string) (Square, error) {
	if len(sq) != 2 {
		return SquareNone, fmt.Errorf("invalid square %q", sq)
	}
	file := int(sq[0] - 'a')
	rank := int(sq[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SquareNone, fmt.Errorf("invalid square %q", sq)
	}
	// file letter 'a'..'h' -> file number 1..8; square index = rank*8 + (8-fileNumber)
	fileNumber := file + 1
	return Square(rank*8 + (8 - fileNumber)), nil
}

// SquareOf builds a Square from 1-indexed file (1=A..8=H) and rank (1..8).
func SquareOf(file, rank int) Square {
	return Square((rank-1)*8 + (8 - file))
}
