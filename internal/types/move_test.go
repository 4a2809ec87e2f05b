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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMovePacksFields(t *testing.T) {
	m := NewMove(SquareOf(5, 2), SquareOf(5, 4), NoPieceType)
	assert.Equal(t, SquareOf(5, 2), m.From())
	assert.Equal(t, SquareOf(5, 4), m.To())
	assert.False(t, m.IsPromotion())
	assert.False(t, m.IsCastling())
}

func TestNewMovePromotion(t *testing.T) {
	m := NewMove(SquareOf(1, 7), SquareOf(1, 8), Queen)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Queen, m.Promotion())
	assert.Equal(t, "a7a8q", m.String())
}

func TestNewCastlingMove(t *testing.T) {
	m := NewCastlingMove(SquareOf(5, 1), SquareOf(7, 1))
	assert.True(t, m.IsCastling())
	assert.Equal(t, SquareOf(5, 1), m.From())
	assert.Equal(t, SquareOf(7, 1), m.To())
}

func TestMoveEqualIgnoresCastlingFlag(t *testing.T) {
	plain := NewMove(SquareOf(5, 1), SquareOf(7, 1), NoPieceType)
	castling := NewCastlingMove(SquareOf(5, 1), SquareOf(7, 1))
	assert.True(t, plain.Equal(castling), "Equal compares only origin/target/promotion, per design")
}

func TestMoveNoneString(t *testing.T) {
	assert.Equal(t, "0000", MoveNone.String())
}
