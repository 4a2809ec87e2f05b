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

// Package position implements the reversible board representation: twelve
// piece bitboards, castling-rights counters, en-passant state and the
// make/undo history stack that lets a search walk the tree without copying
// the board at every node.
package position

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/mkoepke/chesscore/internal/types"
)

// Original square constants for the four castling rooks and the two kings,
// in this engine's H1=0/A8=63 orientation.
const (
	whiteKingHome          = Square(3)  // e1
	whiteKingsideRookHome  = Square(0)  // h1
	whiteQueensideRookHome = Square(7)  // a1
	blackKingHome          = Square(59) // e8
	blackKingsideRookHome  = Square(56) // h8
	blackQueensideRookHome = Square(63) // a8
)

// undoState snapshots everything Make mutates besides the piece boards, so
// Undo can restore a position to byte-for-byte the state it had before the
// corresponding Make call.
type undoState struct {
	move           Move
	movedPiece     Piece
	capturedPiece  Piece
	capturedSquare Square // usually move.To(), but differs for en-passant
	epTarget       Square
	halfmoveClock  int

	whiteKingMoves          int
	blackKingMoves          int
	whiteKingsideRookMoves  int
	whiteQueensideRookMoves int
	blackKingsideRookMoves  int
	blackQueensideRookMoves int
}

// Position is a mutable, reversible chess board.
type Position struct {
	boards [12]Bitboard // indexed by Piece.BoardIndex()

	sideToMove     Color
	halfmoveClock  int
	fullmoveNumber int
	epTarget       Square // target square of a legal en-passant capture, or SquareNone

	whiteKingMoves          int
	blackKingMoves          int
	whiteKingsideRookMoves  int
	whiteQueensideRookMoves int
	blackKingsideRookMoves  int
	blackQueensideRookMoves int

	state State

	history []undoState
}

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New returns a Position set up for a standard game.
func New() *Position {
	p := &Position{}
	p.Reset()
	return p
}

// Reset restores the standard starting position, clearing the history
// stack and every counter.
func (p *Position) Reset() {
	_ = p.LoadFEN(StartFEN)
}

// clear empties the board with white to move; LoadFEN populates from
// there.
func (p *Position) clear() {
	for i := range p.boards {
		p.boards[i] = Empty
	}
	p.sideToMove = White
	p.halfmoveClock = 0
	p.fullmoveNumber = 1
	p.epTarget = SquareNone
	p.whiteKingMoves = 0
	p.blackKingMoves = 0
	p.whiteKingsideRookMoves = 0
	p.whiteQueensideRookMoves = 0
	p.blackKingsideRookMoves = 0
	p.blackQueensideRookMoves = 0
	p.state = Play
	p.history = p.history[:0]
}

// SideToMove returns the color on move.
func (p *Position) SideToMove() Color { return p.sideToMove }

// HalfmoveClock returns the number of plies since the last pawn move or
// capture, for fifty-move-rule detection.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// EnPassantTarget returns the square a pawn may legally capture onto by
// en-passant this move, or SquareNone.
func (p *Position) EnPassantTarget() Square { return p.epTarget }

// State returns the game status most recently derived for this position.
// It is owned by whoever classifies the position -- the move generator
// sets it on every legal-generation call, and a caller tracking position
// repetitions may set MoveRepetition itself.
func (p *Position) State() State { return p.state }

// SetState records a derived game status on the position.
func (p *Position) SetState(s State) { p.state = s }

// Board returns the raw bitboard for a given (color, piece type) pair.
func (p *Position) Board(c Color, pt PieceType) Bitboard {
	return p.boards[Piece{Color: c, Type: pt}.BoardIndex()]
}

// Occupied returns the union of every square occupied by c's pieces.
func (p *Position) Occupied(c Color) Bitboard {
	var bb Bitboard
	base := int(c) * 6
	for i := 0; i < 6; i++ {
		bb |= p.boards[base+i]
	}
	return bb
}

// AllOccupied returns every occupied square on the board.
func (p *Position) AllOccupied() Bitboard {
	return p.Occupied(White) | p.Occupied(Black)
}

// PieceAt returns the piece sitting on sq, or NoPiece if it is empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := sq.Bb()
	for idx, board := range p.boards {
		if board&bb != 0 {
			return Piece{Color: Color(idx / 6), Type: PieceType(idx % 6)}
		}
	}
	return NoPiece
}

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.Board(c, King).LSB()
}

// CanCastle reports whether c still holds the abstract right to castle
// on side kingside (true) or queenside (false) -- rook and king have never
// moved and the rook has never been captured on its home square. It says
// nothing about whether the squares between are empty or attacked; that is
// the move generator's job.
func (p *Position) CanCastle(c Color, kingside bool) bool {
	switch {
	case c == White && kingside:
		return p.whiteKingMoves == 0 && p.whiteKingsideRookMoves == 0
	case c == White && !kingside:
		return p.whiteKingMoves == 0 && p.whiteQueensideRookMoves == 0
	case c == Black && kingside:
		return p.blackKingMoves == 0 && p.blackKingsideRookMoves == 0
	default:
		return p.blackKingMoves == 0 && p.blackQueensideRookMoves == 0
	}
}

func (p *Position) setPiece(sq Square, pc Piece) {
	p.boards[pc.BoardIndex()] = p.boards[pc.BoardIndex()].Push(sq)
}

func (p *Position) clearPiece(sq Square, pc Piece) {
	p.boards[pc.BoardIndex()] = p.boards[pc.BoardIndex()].Pop(sq)
}

// bumpCastlingCounters increments whichever of the six move counters are
// affected by a piece leaving or arriving on sq: a corner's castling
// right dies the moment its king or its original rook leaves home, for
// any reason including being captured there.
func (p *Position) bumpCastlingCounters(sq Square) {
	switch sq {
	case whiteKingHome:
		p.whiteKingMoves++
	case whiteKingsideRookHome:
		p.whiteKingsideRookMoves++
	case whiteQueensideRookHome:
		p.whiteQueensideRookMoves++
	case blackKingHome:
		p.blackKingMoves++
	case blackKingsideRookHome:
		p.blackKingsideRookMoves++
	case blackQueensideRookHome:
		p.blackQueensideRookMoves++
	}
}

// Make applies move to the position. It assumes move is at least
// pseudo-legal for the side to move; full legality (does it leave the
// king in check) is the move generator's responsibility. A move with an
// empty origin square is ignored.
func (p *Position) Make(move Move) {
	from, to := move.From(), move.To()
	mover := p.PieceAt(from)
	if mover.IsNone() {
		return
	}
	us, them := p.sideToMove, p.sideToMove.Other()

	st := undoState{
		move:                    move,
		movedPiece:              mover,
		epTarget:                p.epTarget,
		halfmoveClock:           p.halfmoveClock,
		whiteKingMoves:          p.whiteKingMoves,
		blackKingMoves:          p.blackKingMoves,
		whiteKingsideRookMoves:  p.whiteKingsideRookMoves,
		whiteQueensideRookMoves: p.whiteQueensideRookMoves,
		blackKingsideRookMoves:  p.blackKingsideRookMoves,
		blackQueensideRookMoves: p.blackQueensideRookMoves,
	}

	capturedSquare := to
	isEnPassant := mover.Type == Pawn && to == p.epTarget && p.epTarget != SquareNone
	if isEnPassant {
		if us == White {
			capturedSquare = to - 8
		} else {
			capturedSquare = to + 8
		}
	}
	captured := p.PieceAt(capturedSquare)
	if !captured.IsNone() {
		p.clearPiece(capturedSquare, captured)
		p.bumpCastlingCounters(capturedSquare)
	}
	st.capturedPiece = captured
	st.capturedSquare = capturedSquare

	p.clearPiece(from, mover)
	p.setPiece(to, placedPiece(us, move, mover))
	p.bumpCastlingCounters(from)

	if move.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(us, to)
		rook := Piece{Color: us, Type: Rook}
		p.clearPiece(rookFrom, rook)
		p.setPiece(rookTo, rook)
		p.bumpCastlingCounters(rookFrom)
	}

	p.epTarget = SquareNone
	if mover.Type == Pawn {
		diff := int(to) - int(from)
		if diff == 16 || diff == -16 {
			p.setDoublePushEnPassant(us, to)
		}
	}

	if mover.Type == Pawn || !captured.IsNone() {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if us == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = them

	p.history = append(p.history, st)
}

// setDoublePushEnPassant records an en-passant target only when an enemy
// pawn actually sits beside the landing square and could capture onto it;
// a double push nobody can answer leaves no trace in hash or FEN.
func (p *Position) setDoublePushEnPassant(us Color, to Square) {
	them := us.Other()
	var target Square
	if us == White {
		target = to - 8
	} else {
		target = to + 8
	}
	enemyPawns := p.Board(them, Pawn)
	// Index-1 increases file (File = 8 - i%8), so it stays on-board only
	// when file < 8; index+1 decreases file and needs file > 1.
	file := to.File()
	adjacent := Empty
	if file < 8 {
		adjacent |= Square(to - 1).Bb()
	}
	if file > 1 {
		adjacent |= Square(to + 1).Bb()
	}
	if enemyPawns&adjacent != 0 {
		p.epTarget = target
	}
}

// placedPiece resolves which piece ends up on the target square: the
// mover itself, or for a pawn reaching its promotion rank the promotion
// piece, queen when the move word names none.
func placedPiece(us Color, move Move, mover Piece) Piece {
	if mover.Type != Pawn {
		return mover
	}
	promoRank := Rank8
	if us == Black {
		promoRank = Rank1
	}
	if move.To().Bb()&promoRank == 0 {
		return mover
	}
	pt := move.Promotion()
	if pt == NoPieceType {
		pt = Queen
	}
	return Piece{Color: us, Type: pt}
}

// castlingRookSquares returns the rook's home and destination squares for
// the castling move whose king lands on kingTo.
func castlingRookSquares(c Color, kingTo Square) (from, to Square) {
	switch {
	case c == White && kingTo == 1: // g1
		return whiteKingsideRookHome, 2
	case c == White && kingTo == 5: // c1
		return whiteQueensideRookHome, 4
	case c == Black && kingTo == 57: // g8
		return blackKingsideRookHome, 58
	default: // c == Black && kingTo == 61, c8
		return blackQueensideRookHome, 60
	}
}

// Undo reverts the most recent Make call. With nothing left to undo it
// resets to the starting position.
func (p *Position) Undo() {
	n := len(p.history)
	if n == 0 {
		p.Reset()
		return
	}
	st := p.history[n-1]
	p.history = p.history[:n-1]

	them := p.sideToMove
	us := them.Other()
	p.sideToMove = us

	move := st.move
	from, to := move.From(), move.To()

	p.clearPiece(to, placedPiece(us, move, st.movedPiece))
	p.setPiece(from, st.movedPiece)

	if move.IsCastling() {
		rookFrom, rookTo := castlingRookSquares(us, to)
		rook := Piece{Color: us, Type: Rook}
		p.clearPiece(rookTo, rook)
		p.setPiece(rookFrom, rook)
	}

	if !st.capturedPiece.IsNone() {
		p.setPiece(st.capturedSquare, st.capturedPiece)
	}

	p.epTarget = st.epTarget
	p.halfmoveClock = st.halfmoveClock
	p.whiteKingMoves = st.whiteKingMoves
	p.blackKingMoves = st.blackKingMoves
	p.whiteKingsideRookMoves = st.whiteKingsideRookMoves
	p.whiteQueensideRookMoves = st.whiteQueensideRookMoves
	p.blackKingsideRookMoves = st.blackKingsideRookMoves
	p.blackQueensideRookMoves = st.blackQueensideRookMoves
	if us == Black {
		p.fullmoveNumber--
	}
}

// GamePhase returns a value in [0,1], 0 at the start of a game and 1 with
// no material left, used to interpolate opening/endgame evaluation terms.
// Weights: pawn=0, knight=1, bishop=1, rook=2, queen=4.
func (p *Position) GamePhase() float64 {
	const startWeight = 2*1 + 2*1 + 2*2 + 1*4 // per side
	weight := func(c Color) int {
		return p.Board(c, Knight).PopCount()*1 +
			p.Board(c, Bishop).PopCount()*1 +
			p.Board(c, Rook).PopCount()*2 +
			p.Board(c, Queen).PopCount()*4
	}
	total := weight(White) + weight(Black)
	phase := 1 - float64(total)/float64(2*startWeight)
	if phase < 0 {
		phase = 0
	}
	if phase > 1 {
		phase = 1
	}
	return phase
}

// LoadFEN resets the position and populates it from a FEN string.
func (p *Position) LoadFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("position: malformed FEN %q", fen)
	}
	p.clear()

	rank := 8
	file := 1
	for _, c := range fields[0] {
		switch {
		case c == '/':
			rank--
			file = 1
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			pc, ok := PieceFromFENLetter(byte(c))
			if !ok {
				return fmt.Errorf("position: bad piece letter %q in FEN", c)
			}
			p.setPiece(SquareOf(file, rank), pc)
			file++
		}
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
	default:
		return fmt.Errorf("position: bad side-to-move %q in FEN", fields[1])
	}

	// Marking a counter non-zero is the only way LoadFEN can withhold a
	// right the placement implies; 1 is "moved at least once", which is
	// all CanCastle ever checks.
	if !strings.ContainsRune(fields[2], 'K') {
		p.whiteKingsideRookMoves = 1
	}
	if !strings.ContainsRune(fields[2], 'Q') {
		p.whiteQueensideRookMoves = 1
	}
	if !strings.ContainsRune(fields[2], 'k') {
		p.blackKingsideRookMoves = 1
	}
	if !strings.ContainsRune(fields[2], 'q') {
		p.blackQueensideRookMoves = 1
	}

	if fields[3] != "-" {
		sq, err := SquareFromString(fields[3])
		if err != nil {
			return fmt.Errorf("position: bad en-passant square %q in FEN", fields[3])
		}
		// Many tools emit an en-passant square after every double push,
		// capturable or not. Run it through the same filter Make applies
		// so identical positions hash identically however reached.
		pusher := p.sideToMove.Other()
		pawnSq := sq - 8
		if pusher == White {
			pawnSq = sq + 8
		}
		p.setDoublePushEnPassant(pusher, pawnSq)
	}

	if len(fields) > 4 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmoveClock = n
		}
	}
	if len(fields) > 5 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmoveNumber = n
		}
	}
	return nil
}

// FEN renders the position's current state as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= 8; file++ {
			pc := p.PieceAt(SquareOf(file, rank))
			if pc.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pc.FENLetter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())

	sb.WriteByte(' ')
	rights := ""
	if p.CanCastle(White, true) {
		rights += "K"
	}
	if p.CanCastle(White, false) {
		rights += "Q"
	}
	if p.CanCastle(Black, true) {
		rights += "k"
	}
	if p.CanCastle(Black, false) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	if p.epTarget == SquareNone {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epTarget.String())
	}

	fmt.Fprintf(&sb, " %d %d", p.halfmoveClock, p.fullmoveNumber)
	return sb.String()
}
