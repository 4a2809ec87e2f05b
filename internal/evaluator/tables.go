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

package evaluator

import . "github.com/mkoepke/chesscore/internal/types"

// Piece-square tables. Index i is Square(i): the tables are laid out
// rank 1 first, matching the bit-0-is-H1 orientation directly, so no
// reindexing is needed.
//
// Knight and queen use one table for both colors, read at the same square
// index for either color (the knight table is rank-symmetric, the queen
// table is not quite); rook, bishop and king need separate white/black
// tables since the bonus terms are not symmetric (e.g. a rook's
// 7th-rank bonus).
var knightTable = [64]Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var queenTable = [64]Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// rookTable[0] is White's table, rookTable[1] is Black's.
var rookTable = [2][64]Value{
	{
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	{
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
}

// bishopTable[0] is White's table, bishopTable[1] is Black's.
var bishopTable = [2][64]Value{
	{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	{
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
}

// kingTable[0]/[1] are White/Black's opening tables; [2]/[3] are their
// endgame tables, where the king is rewarded for activity rather than
// hiding in a corner. The endgame tables are identical for both colors:
// an active king is worth the same either way once material is reduced.
var kingTable = [4][64]Value{
	{ // White, opening
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
	{ // Black, opening
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
	{ // White, endgame
		-10, -10, -10, -10, -10, -10, -10, -10,
		-10, -5, -5, -5, -5, -5, -5, -10,
		-10, -5, 5, 5, 5, 5, -5, -10,
		-10, -5, 5, 20, 20, 5, -5, -10,
		-10, -5, 5, 20, 20, 5, -5, -10,
		-10, -5, 5, 5, 5, 5, -5, -10,
		-10, -5, -5, -5, -5, -5, -5, -10,
		-10, -10, -10, -10, -10, -10, -10, -10,
	},
	{ // Black, endgame
		-10, -10, -10, -10, -10, -10, -10, -10,
		-10, -5, -5, -5, -5, -5, -5, -10,
		-10, -5, 5, 5, 5, 5, -5, -10,
		-10, -5, 5, 20, 20, 5, -5, -10,
		-10, -5, 5, 20, 20, 5, -5, -10,
		-10, -5, 5, 5, 5, 5, -5, -10,
		-10, -5, -5, -5, -5, -5, -5, -10,
		-10, -10, -10, -10, -10, -10, -10, -10,
	},
}

// PieceSquareTable returns the positional modifier for pc standing on sq.
// King is excluded: its bonus is phased between the opening and endgame
// tables by game phase, see KingSquareTable.
func PieceSquareTable(pc Piece, sq Square) Value {
	switch pc.Type {
	case Knight:
		return knightTable[sq]
	case Queen:
		return queenTable[sq]
	case Rook:
		if pc.Color == White {
			return rookTable[0][sq]
		}
		return rookTable[1][sq]
	case Bishop:
		if pc.Color == White {
			return bishopTable[0][sq]
		}
		return bishopTable[1][sq]
	default:
		return 0
	}
}

// KingSquareTable returns the king's opening- and endgame-table entries
// for sq and color c, for the caller to interpolate by game phase.
func KingSquareTable(c Color, sq Square) (opening, endgame Value) {
	if c == White {
		return kingTable[0][sq], kingTable[2][sq]
	}
	return kingTable[1][sq], kingTable[3][sq]
}

var passedPawnBonus = [6]Value{50, 40, 30, 20, 10, 5}
var isolatedPawnPenalty = [8]Value{-10, -15, -25, -30, -30, -25, -15, -10}
var badBishopPenalty = [7]Value{-200, -150, -100, -70, -50, -30, -20}
var kingShelterBonus = [4]Value{-200, 50, 100, 120}

var lightSquares, darkSquares Bitboard

func init() {
	for i := 0; i < 64; i++ {
		sq := Square(i)
		if (sq.File()+sq.Rank())%2 == 0 {
			lightSquares = lightSquares.Push(sq)
		}
	}
	darkSquares = lightSquares ^ All
}
