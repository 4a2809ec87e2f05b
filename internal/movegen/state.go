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
	"github.com/mkoepke/chesscore/internal/position"
	. "github.com/mkoepke/chesscore/internal/types"
)

// GameState classifies pos's current game status by running legal move
// generation and reading back the state it derives. Threefold repetition
// is deliberately not detected here: it needs history beyond a single
// Position and belongs to whatever drives the game loop.
func GameState(pos *position.Position) State {
	GenerateLegal(pos)
	return pos.State()
}

// HasInsufficientMaterial reports whether the draw is claimable because
// one side has only its king and the other at most its king plus a single
// knight or bishop. Deliberately narrow: a dead position like same-colored
// bishops is not claimed here, matching the automatic-draw rule the rest
// of the engine was built against.
func HasInsufficientMaterial(pos *position.Position) bool {
	whitePieces := pos.Occupied(White).PopCount()
	blackPieces := pos.Occupied(Black).PopCount()
	if whitePieces > 2 || blackPieces > 2 {
		return false
	}
	if whitePieces == 1 && blackPieces == 1 {
		return true
	}
	if blackPieces == 2 && whitePieces == 1 {
		return pos.Board(Black, Knight)|pos.Board(Black, Bishop) != 0
	}
	if whitePieces == 2 && blackPieces == 1 {
		return pos.Board(White, Knight)|pos.Board(White, Bishop) != 0
	}
	return false
}
