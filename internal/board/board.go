package board

import (
	"errors"

	. "github.com/cricklet/chessduel/internal/helpers"
)

var ErrMissingKing = errors.New("missing king")

// Board is an 8x8 mailbox grid. See helpers.Square for the orientation.
type Board struct {
	Squares [NumSquares]Piece
}

var _initialRows = [8][8]Piece{
	{BR, BN, BB, BQ, BK, BB, BN, BR},
	{BP, BP, BP, BP, BP, BP, BP, BP},
	{XX, XX, XX, XX, XX, XX, XX, XX},
	{XX, XX, XX, XX, XX, XX, XX, XX},
	{XX, XX, XX, XX, XX, XX, XX, XX},
	{XX, XX, XX, XX, XX, XX, XX, XX},
	{WP, WP, WP, WP, WP, WP, WP, WP},
	{WR, WN, WB, WQ, WK, WB, WN, WR},
}

func NewBoard() *Board {
	b := &Board{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			b.Squares[SquareAt(row, col)] = _initialRows[row][col]
		}
	}
	return b
}

func EmptyBoard() *Board {
	return &Board{}
}

func (b *Board) PieceAt(s Square) Piece {
	return b.Squares[s]
}

func (b *Board) Place(s Square, p Piece) {
	b.Squares[s] = p
}

func (b *Board) Copy() *Board {
	c := *b
	return &c
}

func (b *Board) Equal(o *Board) bool {
	return b.Squares == o.Squares
}

func (b *Board) KingSquare(player Player) (Square, Error) {
	king := PieceForPlayer[player][King]
	for s := Square(0); s < NumSquares; s++ {
		if b.Squares[s] == king {
			return s, NilError
		}
	}
	return 0, Errorf("%v: %w", player, ErrMissingKing)
}

// Update is everything needed to invert a single applied move.
type Update struct {
	Move     Move
	Moved    Piece
	Captured Piece
}

func (u Update) Player() Player {
	return u.Moved.Player()
}

// Apply performs the move and returns the Update that reverts it. Pawns
// reaching the far row become queens even if the move carries no promotion.
func (b *Board) Apply(move Move) Update {
	moved := b.Squares[move.From]
	update := Update{
		Move:     move,
		Moved:    moved,
		Captured: b.Squares[move.To],
	}

	placed := moved
	if moved.PieceType() == Pawn && move.To.Row() == PromotionRow(moved.Player()) {
		promotion := move.Promotion.ValueOr(Queen)
		placed = PieceForPlayer[moved.Player()][promotion]
		update.Move.Promotion = Some(promotion)
	}

	b.Squares[move.To] = placed
	b.Squares[move.From] = XX

	return update
}

func (b *Board) Revert(update Update) {
	b.Squares[update.Move.From] = update.Moved
	b.Squares[update.Move.To] = update.Captured
}

func PromotionRow(player Player) int {
	if player == White {
		return 0
	}
	return 7
}

func PawnStartRow(player Player) int {
	if player == White {
		return 6
	}
	return 1
}

// PawnDirection is the row delta of a forward pawn step.
func PawnDirection(player Player) int {
	if player == White {
		return -1
	}
	return 1
}
