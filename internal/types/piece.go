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

// Piece is a (Color, PieceType) pair, used where callers need to know
// both at once (FEN I/O, "what sits on this square").
type Piece struct {
	Color Color
	Type  PieceType
}

// NoPiece is the empty-square sentinel.
var NoPiece = Piece{Type: NoPieceType}

// IsNone reports whether this represents an empty square.
func (p Piece) IsNone() bool {
	return p.Type == NoPieceType
}

// BoardIndex returns the [0,12) index into a Position's per-(color,piece)
// bitboard array: color*6 + piece-type-index.
func (p Piece) BoardIndex() int {
	return int(p.Color)*6 + int(p.Type)
}

func (p Piece) String() string {
	if p.IsNone() {
		return "."
	}
	s := p.Type.String()
	if p.Color == Black {
		return string(s[0] + 32) // lowercase
	}
	return s
}

// FENLetter maps a Piece to its FEN placement character.
func (p Piece) FENLetter() byte {
	var letters = map[PieceType]byte{
		Pawn: 'P', Bishop: 'B', Knight: 'N', Rook: 'R', Queen: 'Q', King: 'K',
	}
	l := letters[p.Type]
	if p.Color == Black {
		l += 32
	}
	return l
}

// PieceFromFENLetter parses a FEN placement character into a Piece.
func PieceFromFENLetter(c byte) (Piece, bool) {
	color := White
	if c >= 'a' && c <= 'z' {
		color = Black
		c -= 32
	}
	var pt PieceType
	switch c {
	case 'P':
		pt = Pawn
	case 'B':
		pt = Bishop
	case 'N':
		pt = Knight
	case 'R':
		pt = Rook
	case 'Q':
		pt = Queen
	case 'K':
		pt = King
	default:
		return NoPiece, false
	}
	return Piece{Color: color, Type: pt}, true
}
