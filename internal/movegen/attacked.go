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

// Package movegen generates pseudo-legal and legal moves from a Position,
// filters them for check and pin legality, classifies terminal game
// states, and counts perft nodes.
package movegen

import (
	"github.com/mkoepke/chesscore/internal/attacks"
	"github.com/mkoepke/chesscore/internal/position"
	. "github.com/mkoepke/chesscore/internal/types"
)

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
// Pawn attacks are tested by reusing the capture table of the opposite
// color centered on sq: the squares a by-colored pawn would need to stand
// on to hit sq are exactly that table's entries, since diagonal capture
// shifts are their own geometric inverse.
func IsSquareAttacked(pos *position.Position, sq Square, by Color) bool {
	tbl := attacks.Shared()
	occ := pos.AllOccupied()

	if tbl.Knight[sq]&pos.Board(by, Knight) != 0 {
		return true
	}
	if tbl.King[sq]&pos.Board(by, King) != 0 {
		return true
	}
	if tbl.PawnCaptures[by.Other()][sq]&pos.Board(by, Pawn) != 0 {
		return true
	}

	diagAttackers := pos.Board(by, Bishop) | pos.Board(by, Queen)
	if diagAttackers != 0 {
		if attacks.SlidingAttacks(sq, occ, tbl.PrimaryDiagonal, tbl.SecondaryDiagonal)&diagAttackers != 0 {
			return true
		}
	}
	straightAttackers := pos.Board(by, Rook) | pos.Board(by, Queen)
	if straightAttackers != 0 {
		if attacks.SlidingAttacks(sq, occ, tbl.PrimaryStraight, tbl.SecondaryStraight)&straightAttackers != 0 {
			return true
		}
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func InCheck(pos *position.Position, c Color) bool {
	return IsSquareAttacked(pos, pos.KingSquare(c), c.Other())
}
