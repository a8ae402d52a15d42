package generation

import (
	. "github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/helpers"
)

// Perft counts the legal leaf nodes depth plies below the position.
func Perft(b *Board, player Player, depth int) (int, Error) {
	if depth == 0 {
		return 1, NilError
	}

	moves := GetMovesBuffer()
	defer ReleaseMovesBuffer(moves)
	AppendMovesForPlayer(b, player, moves)

	total := 0
	for _, m := range *moves {
		count, err := func() (int, Error) {
			update := b.Apply(m)
			defer b.Revert(update)

			inCheck, err := InCheck(b, player)
			if !IsNil(err) || inCheck {
				return 0, err
			}
			return Perft(b, player.Other(), depth-1)
		}()
		if !IsNil(err) {
			return total, err
		}
		total += count
	}

	return total, NilError
}

// PerftDivide splits the count by legal root move, in generation order.
func PerftDivide(b *Board, player Player, depth int) ([]Pair[Move, int], Error) {
	if depth < 1 {
		return nil, Errorf("perft divide needs a depth of at least 1, got %v", depth)
	}

	legal, err := LegalMovesForPlayer(b, player)
	if !IsNil(err) {
		return nil, err
	}

	result := []Pair[Move, int]{}
	for _, m := range legal {
		update := b.Apply(m)
		count, err := Perft(b, player.Other(), depth-1)
		b.Revert(update)
		if !IsNil(err) {
			return result, err
		}
		result = append(result, Pair[Move, int]{First: m, Second: count})
	}
	return result, NilError
}
