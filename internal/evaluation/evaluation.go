package evaluation

import (
	. "github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/helpers"
)

// Scores are signed towards Black: positive favors Black, negative favors
// White.
const BlackSign = 1

var PieceValues = [NumPieceTypes]int{
	Rook:   500,
	Knight: 320,
	Bishop: 330,
	King:   20000,
	Queen:  900,
	Pawn:   100,
}

// Tables are written from White's side of the board: row 0 is rank 8.
// Black looks them up mirrored vertically.
type pieceSquareTable [8][8]int

var _pawnTable = pieceSquareTable{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var _knightTable = pieceSquareTable{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var _bishopTable = pieceSquareTable{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var _rookTable = pieceSquareTable{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
}

var _queenTable = pieceSquareTable{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var _kingTable = pieceSquareTable{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
}

var PieceSquareTables = [NumPieceTypes]*pieceSquareTable{
	Rook:   &_rookTable,
	Knight: &_knightTable,
	Bishop: &_bishopTable,
	King:   &_kingTable,
	Queen:  &_queenTable,
	Pawn:   &_pawnTable,
}

func sign(player Player) int {
	if player == Black {
		return BlackSign
	}
	return -BlackSign
}

// PositionalBonus is the unsigned table entry for piece on s.
func PositionalBonus(piece Piece, s Square) int {
	table := PieceSquareTables[piece.PieceType()]
	if piece.Player() == White {
		return table[s.Row()][s.Col()]
	}
	return table[7-s.Row()][s.Col()]
}

// Evaluate sums signed material and positional bonuses over every occupied
// square. Checkmate is not detected here.
func Evaluate(b *Board) int {
	score := 0
	for s := Square(0); s < NumSquares; s++ {
		piece := b.PieceAt(s)
		if piece == XX {
			continue
		}
		score += sign(piece.Player()) * (PieceValues[piece.PieceType()] + PositionalBonus(piece, s))
	}
	return score
}

func EvaluateMaterial(b *Board) int {
	score := 0
	for s := Square(0); s < NumSquares; s++ {
		piece := b.PieceAt(s)
		if piece == XX {
			continue
		}
		score += sign(piece.Player()) * PieceValues[piece.PieceType()]
	}
	return score
}
