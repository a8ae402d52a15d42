package generation

import (
	"sort"

	. "github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/helpers"
)

var GetMovesBuffer, ReleaseMovesBuffer, StatsMoveBuffer = CreatePool(
	func() []Move { return make([]Move, 0, 256) },
	func(t *[]Move) { *t = (*t)[:0] })

type direction struct {
	dRow int
	dCol int
}

var (
	_knightOffsets = []direction{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	_kingOffsets = []direction{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	_diagonals = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	_straights = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	_allRays   = append(append([]direction{}, _straights...), _diagonals...)
)

type generator func(b *Board, from Square, player Player, moves *[]Move)

// Indexed by PieceType; every type has an entry.
var _generators = [NumPieceTypes]generator{
	Rook:   func(b *Board, from Square, player Player, moves *[]Move) { slidingMoves(b, from, player, _straights, moves) },
	Knight: func(b *Board, from Square, player Player, moves *[]Move) { offsetMoves(b, from, player, _knightOffsets, moves) },
	Bishop: func(b *Board, from Square, player Player, moves *[]Move) { slidingMoves(b, from, player, _diagonals, moves) },
	King:   func(b *Board, from Square, player Player, moves *[]Move) { offsetMoves(b, from, player, _kingOffsets, moves) },
	Queen:  func(b *Board, from Square, player Player, moves *[]Move) { slidingMoves(b, from, player, _allRays, moves) },
	Pawn:   pawnMoves,
}

func newMove(b *Board, from Square, to Square) Move {
	moveType := QuietMove
	if b.PieceAt(to) != XX {
		moveType = CaptureMove
	}
	return Move{MoveType: moveType, From: from, To: to}
}

func pawnMove(b *Board, from Square, to Square, player Player) Move {
	m := newMove(b, from, to)
	if to.Row() == PromotionRow(player) {
		m.Promotion = Some(Queen)
	}
	return m
}

func pawnMoves(b *Board, from Square, player Player, moves *[]Move) {
	dir := PawnDirection(player)

	if one, ok := from.Offset(dir, 0); ok && b.PieceAt(one) == XX {
		*moves = append(*moves, pawnMove(b, from, one, player))

		if from.Row() == PawnStartRow(player) {
			if two, ok := from.Offset(2*dir, 0); ok && b.PieceAt(two) == XX {
				*moves = append(*moves, pawnMove(b, from, two, player))
			}
		}
	}

	for _, dCol := range [2]int{-1, 1} {
		to, ok := from.Offset(dir, dCol)
		if !ok {
			continue
		}
		target := b.PieceAt(to)
		if target != XX && !target.BelongsTo(player) {
			*moves = append(*moves, pawnMove(b, from, to, player))
		}
	}
}

func offsetMoves(b *Board, from Square, player Player, offsets []direction, moves *[]Move) {
	for _, offset := range offsets {
		to, ok := from.Offset(offset.dRow, offset.dCol)
		if !ok {
			continue
		}
		if b.PieceAt(to).BelongsTo(player) {
			continue
		}
		*moves = append(*moves, newMove(b, from, to))
	}
}

func slidingMoves(b *Board, from Square, player Player, rays []direction, moves *[]Move) {
	for _, ray := range rays {
		to, ok := from.Offset(ray.dRow, ray.dCol)
		for ok {
			target := b.PieceAt(to)
			if target == XX {
				*moves = append(*moves, newMove(b, from, to))
			} else {
				if !target.BelongsTo(player) {
					*moves = append(*moves, newMove(b, from, to))
				}
				break
			}
			to, ok = to.Offset(ray.dRow, ray.dCol)
		}
	}
}

// AppendMovesFrom appends the pseudo-legal moves of the piece on from.
func AppendMovesFrom(b *Board, from Square, moves *[]Move) {
	piece := b.PieceAt(from)
	if piece == XX {
		return
	}
	_generators[piece.PieceType()](b, from, piece.Player(), moves)
}

// MovesFrom returns the pseudo-legal moves of the piece on from. Moves that
// leave the mover's king attacked are included.
func MovesFrom(b *Board, from Square) []Move {
	moves := []Move{}
	AppendMovesFrom(b, from, &moves)
	return moves
}

// AppendMovesForPlayer appends every pseudo-legal move of player, captures
// first and otherwise in square order.
func AppendMovesForPlayer(b *Board, player Player, moves *[]Move) {
	start := len(*moves)
	for s := Square(0); s < NumSquares; s++ {
		if b.PieceAt(s).BelongsTo(player) {
			AppendMovesFrom(b, s, moves)
		}
	}

	generated := (*moves)[start:]
	sort.SliceStable(generated, func(i, j int) bool {
		return generated[i].MoveType.Captures() && !generated[j].MoveType.Captures()
	})
}

func MovesForPlayer(b *Board, player Player) []Move {
	moves := []Move{}
	AppendMovesForPlayer(b, player, &moves)
	return moves
}
