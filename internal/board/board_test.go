package board

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func sq(s string) Square {
	square, err := SquareFromString(s)
	if !IsNil(err) {
		panic(err)
	}
	return square
}

func move(s string) Move {
	m, err := MoveFromString(s)
	if !IsNil(err) {
		panic(err)
	}
	return m
}

func TestInitialBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, strings.Join([]string{
		"rnbqkbnr",
		"pppppppp",
		"        ",
		"        ",
		"        ",
		"        ",
		"PPPPPPPP",
		"RNBQKBNR",
	}, "\n"), b.String())

	assert.Equal(t, WK, b.PieceAt(sq("e1")))
	assert.Equal(t, BQ, b.PieceAt(sq("d8")))
	assert.Equal(t, XX, b.PieceAt(sq("e4")))
}

func TestPlace(t *testing.T) {
	b := EmptyBoard()
	b.Place(sq("d4"), WN)
	assert.Equal(t, WN, b.PieceAt(sq("d4")))
	b.Place(sq("d4"), XX)
	assert.Equal(t, XX, b.PieceAt(sq("d4")))
}

func TestApplyRevert(t *testing.T) {
	b, _, err := BoardFromFenString("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	assert.True(t, IsNil(err), err)
	before := b.Copy()

	update := b.Apply(move("e4d5"))
	assert.Equal(t, WP, update.Moved)
	assert.Equal(t, BP, update.Captured)
	assert.Equal(t, White, update.Player())
	assert.Equal(t, WP, b.PieceAt(sq("d5")))
	assert.Equal(t, XX, b.PieceAt(sq("e4")))

	b.Revert(update)
	assert.True(t, before.Equal(b))
}

func TestApplyPromotesToQueen(t *testing.T) {
	b, _, err := BoardFromFenString("4k3/P7/8/8/8/8/7p/4K3 w - - 0 1")
	assert.True(t, IsNil(err), err)
	before := b.Copy()

	update := b.Apply(move("a7a8"))
	assert.Equal(t, WQ, b.PieceAt(sq("a8")))
	assert.True(t, update.Move.Promotion.HasValue())
	assert.Equal(t, Queen, update.Move.Promotion.Value())

	blackUpdate := b.Apply(move("h2h1"))
	assert.Equal(t, BQ, b.PieceAt(sq("h1")))

	b.Revert(blackUpdate)
	b.Revert(update)
	assert.True(t, before.Equal(b))
	assert.Equal(t, WP, b.PieceAt(sq("a7")))
}

func TestKingSquare(t *testing.T) {
	b := NewBoard()
	s, err := b.KingSquare(White)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, "e1", s.String())

	b.Place(sq("e8"), XX)
	_, err = b.KingSquare(Black)
	assert.False(t, IsNil(err))
	assert.True(t, errors.Is(err, ErrMissingKing))
}

func TestFen(t *testing.T) {
	for _, fen := range []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
		"8/8/8/8/8/8/8/K6k w - - 0 1",
	} {
		b, player, err := BoardFromFenString(fen)
		assert.True(t, IsNil(err), err)
		assert.Equal(t, fen, FenString(b, player, 1))
	}

	b, player, err := BoardFromFenString("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Black, player)
	assert.Equal(t, WP, b.PieceAt(sq("e4")))
}

func TestInvalidFen(t *testing.T) {
	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x",
	} {
		_, _, err := BoardFromFenString(fen)
		assert.False(t, IsNil(err), fen)
	}
}

func TestBoardUnicode(t *testing.T) {
	unicode := NewBoard().Unicode()
	fmt.Println(unicode)
	assert.Contains(t, unicode, "♚")
	assert.Equal(t, 9, len(strings.Split(strings.TrimSpace(unicode), "\n")))
}
