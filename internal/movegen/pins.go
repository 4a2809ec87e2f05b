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

var rayDirections = [8]struct {
	dir  Direction
	diag bool
}{
	{North, false}, {South, false}, {East, false}, {West, false},
	{NorthEast, true}, {NorthWest, true}, {SouthEast, true}, {SouthWest, true},
}

// pinLines maps the square of every absolutely pinned piece of color us to
// the bitboard of squares it may legally move to (the ray between the king
// and the pinning slider, inclusive of the slider's square). A piece absent
// from the map is not pinned.
//
// Built by casting a ray from the king in each of the 8 compass directions:
// the first occupied square is a candidate pin target; if the next occupied
// square beyond it is an enemy slider that attacks along that direction,
// the candidate is pinned to the ray.
func pinLines(pos *position.Position, us Color) map[Square]Bitboard {
	king := pos.KingSquare(us)
	them := us.Other()
	diagSliders := pos.Board(them, Bishop) | pos.Board(them, Queen)
	straightSliders := pos.Board(them, Rook) | pos.Board(them, Queen)

	pins := map[Square]Bitboard{}
	for _, rd := range rayDirections {
		var (
			line       Bitboard
			candidate  = SquareNone
			foundFirst bool
		)
		b := king.Bb()
		for {
			b = Shift(b, rd.dir)
			if b == 0 {
				break
			}
			sq := b.LSB()
			line = line.Push(sq)
			pc := pos.PieceAt(sq)
			if pc.IsNone() {
				continue
			}
			if !foundFirst {
				if pc.Color != us {
					break // enemy piece adjacent along the ray: no pin, possibly a direct check
				}
				candidate = sq
				foundFirst = true
				continue
			}
			sliders := straightSliders
			if rd.diag {
				sliders = diagSliders
			}
			if pc.Color != us && line.Has(sq) && sliders.Has(sq) {
				pins[candidate] = line
			}
			break
		}
	}
	return pins
}
