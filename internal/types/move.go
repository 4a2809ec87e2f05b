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

// Move is a 16-bit packed move: whether it captures, is en-passant, or
// which piece is moving is derived from board state at make-time rather
// than stored here, so the same word stays valid in any position where
// origin and target squares exist.
//
//	bits 0-5:   origin square (0-63)
//	bits 6-11:  target square (0-63)
//	bits 12-14: promotion piece type (NoPieceType = not a promotion)
//	bit 15:     castling flag
type Move uint16

const (
	moveFromShift  = 0
	moveToShift    = 6
	movePromoShift = 12
	moveCastleBit  = 15

	moveFromMask  = 0x3F << moveFromShift
	moveToMask    = 0x3F << moveToShift
	movePromoMask = 0x7 << movePromoShift
)

// MoveNone is the null/invalid move, returned when search or generation
// has nothing to offer.
const MoveNone Move = 0

// NewMove packs a normal (non-castling) move. promo should be NoPieceType
// unless the move is a promotion.
func NewMove(from, to Square, promo PieceType) Move {
	return Move(from)<<moveFromShift | Move(to)<<moveToShift | Move(promo)<<movePromoShift
}

// NewCastlingMove packs a castling move; from/to are the king's squares.
func NewCastlingMove(from, to Square) Move {
	return NewMove(from, to, NoPieceType) | 1<<moveCastleBit
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & moveFromMask) >> moveFromShift)
}

// To returns the target square.
func (m Move) To() Square {
	return Square((m & moveToMask) >> moveToShift)
}

// Promotion returns the promotion piece type, or NoPieceType if this move
// is not a promotion.
func (m Move) Promotion() PieceType {
	return PieceType((m & movePromoMask) >> movePromoShift)
}

// IsPromotion reports whether this move carries a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion() != NoPieceType
}

// IsCastling reports whether the castling flag is set.
func (m Move) IsCastling() bool {
	return m&(1<<moveCastleBit) != 0
}

// Equal reports whether two moves share origin, target and promotion
// piece. Nothing else participates: two differently-flagged castling
// encodings with the same from/to/promo compare equal.
func (m Move) Equal(o Move) bool {
	return m.From() == o.From() && m.To() == o.To() && m.Promotion() == o.Promotion()
}

func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += promoLetter(m.Promotion())
	}
	return s
}

func promoLetter(pt PieceType) string {
	switch pt {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

// ScoredMove pairs a move with an ordering estimate without re-packing
// the 16-bit move word to carry a sort value. The search package's move
// ordering sorts plain Move slices and does not use it.
type ScoredMove struct {
	Move  Move
	Score Value
}

func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s)", m.String())
}
