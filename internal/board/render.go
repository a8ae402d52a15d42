package board

import (
	"strings"

	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/fatih/color"
)

var (
	_hintColor        = color.New(color.FgHiBlack)
	_lightSquareColor = color.New(color.BgHiBlack)
	_darkSquareColor  = color.New(color.BgBlack)
	_whitePieceColor  = color.New(color.FgHiWhite, color.Bold)
	_blackPieceColor  = color.New(color.FgRed, color.Bold)
)

// String renders one line per row, rank 8 first, using FEN piece letters.
func (b *Board) String() string {
	rows := []string{}
	for row := 0; row < 8; row++ {
		result := ""
		for col := 0; col < 8; col++ {
			result += b.PieceAt(SquareAt(row, col)).String()
		}
		rows = append(rows, result)
	}
	return strings.Join(rows, "\n")
}

func (b *Board) Unicode() string {
	result := "  "
	for col := 0; col < 8; col++ {
		result += _hintColor.Sprint(" " + string(rune('a'+col)) + " ")
	}
	result += "\n"

	for row := 0; row < 8; row++ {
		result += _hintColor.Sprint(string(rune('8'-row)) + " ")
		for col := 0; col < 8; col++ {
			piece := b.PieceAt(SquareAt(row, col))

			background := _lightSquareColor
			if (row+col)%2 == 1 {
				background = _darkSquareColor
			}

			text := " " + piece.PieceType().Unicode() + " "
			if piece.IsWhite() {
				text = _whitePieceColor.Sprint(text)
			} else if piece.IsBlack() {
				text = _blackPieceColor.Sprint(text)
			}
			result += background.Sprint(text)
		}
		result += "\n"
	}

	return result
}
