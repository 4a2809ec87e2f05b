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

// PieceType is a piece kind without color. The numeric values are the
// bitboard index offsets within a color's block of six boards:
// Pawn=0, Bishop=1, Knight=2, Rook=3, Queen=4, King=5.
type PieceType uint8

const (
	Pawn PieceType = iota
	Bishop
	Knight
	Rook
	Queen
	King
	NoPieceType // the "empty" sentinel used in move encoding
)

// PieceTypes lists the six real piece kinds in board-index order.
var PieceTypes = [6]PieceType{Pawn, Bishop, Knight, Rook, Queen, King}

// PromotionPieceTypes lists the four kinds a pawn may promote to.
var PromotionPieceTypes = [4]PieceType{Bishop, Knight, Rook, Queen}

func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "P"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "-"
	}
}

// Value is the centipawn material value of a piece kind.
func (pt PieceType) Value() Value {
	switch pt {
	case Pawn:
		return 100
	case Bishop:
		return 300
	case Knight:
		return 300
	case Rook:
		return 500
	case Queen:
		return 900
	case King:
		return 99999
	default:
		return 0
	}
}
