package board

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/chessduel/internal/helpers"
)

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

func FenStringForPlayer(p Player) string {
	if p == White {
		return "w"
	} else {
		return "b"
	}
}

func FenStringForBoard(b *Board) string {
	s := ""
	for row := 0; row < 8; row++ {
		numSpaces := 0
		for col := 0; col < 8; col++ {
			piece := b.PieceAt(SquareAt(row, col))
			if piece == XX {
				numSpaces++
				continue
			}
			if numSpaces > 0 {
				s += fmt.Sprint(numSpaces)
				numSpaces = 0
			}
			s += piece.String()
		}
		if numSpaces > 0 {
			s += fmt.Sprint(numSpaces)
		}
		if row != 7 {
			s += "/"
		}
	}
	return s
}

// FenString never reports castling rights or en-passant targets since
// neither rule is modelled.
func FenString(b *Board, player Player, fullMoveClock int) string {
	return fmt.Sprintf("%v %v - - 0 %v",
		FenStringForBoard(b),
		FenStringForPlayer(player),
		fullMoveClock)
}

// BoardFromFenString reads the piece placement and side to move. Castling
// and en-passant fields are accepted but ignored.
func BoardFromFenString(s string) (*Board, Player, Error) {
	ss := strings.Fields(s)
	if len(ss) != 6 && len(ss) != 4 && len(ss) != 2 {
		return nil, White, Errorf("wrong num %v of fields in str '%v'", len(ss), s)
	}

	boardStr, playerString := ss[0], ss[1]

	b := EmptyBoard()

	row := 0
	col := 0
	for _, c := range boardStr {
		if c == '/' {
			if col != 8 {
				return nil, White, Errorf("not enough squares in row, '%v'", s)
			}
			row++
			col = 0
		} else if indicesToSkip, err := strconv.ParseInt(string(c), 10, 0); err == nil {
			col += int(indicesToSkip)
		} else if p, err := PieceFromRune(c); IsNil(err) {
			if !OnBoard(row, col) {
				return nil, White, Errorf("too many squares in '%v'", s)
			}
			b.Place(SquareAt(row, col), p)
			col++
		} else {
			return nil, White, Errorf("unknown character '%v' in '%v'", string(c), s)
		}

		if col > 8 {
			return nil, White, Errorf("too many squares in row, '%v'", s)
		}
	}

	if row != 7 || col != 8 {
		return nil, White, Errorf("wrong number of squares in '%v'", s)
	}

	player, err := PlayerFromString(playerString)
	if !IsNil(err) {
		return nil, White, Errorf("invalid player '%v' in '%v'", playerString, s)
	}

	return b, player, NilError
}
