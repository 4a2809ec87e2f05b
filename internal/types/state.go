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

// State describes the game-theoretic status of a position after legal
// move generation has run. The generator never sets MoveRepetition:
// spotting a repeated position requires history beyond a single Position,
// so the caller driving the game loop counts positions itself and sets
// that state on the board when a threefold claim applies.
type State uint8

const (
	Play State = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	FiftyMoveRule
	MoveRepetition
)

func (s State) String() string {
	switch s {
	case Play:
		return "play"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	case FiftyMoveRule:
		return "fifty-move rule"
	case MoveRepetition:
		return "threefold repetition"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether s ends the game without further moves.
func (s State) IsTerminal() bool {
	return s != Play
}
