package generation

import (
	. "github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/helpers"
)

// InCheck reports whether any enemy pseudo-legal move lands on player's
// king. A board without that king is corrupted and returns ErrMissingKing.
func InCheck(b *Board, player Player) (bool, Error) {
	kingSquare, err := b.KingSquare(player)
	if !IsNil(err) {
		return false, err
	}

	moves := GetMovesBuffer()
	defer ReleaseMovesBuffer(moves)

	enemy := player.Other()
	for s := Square(0); s < NumSquares; s++ {
		if !b.PieceAt(s).BelongsTo(enemy) {
			continue
		}

		*moves = (*moves)[:0]
		AppendMovesFrom(b, s, moves)
		for _, m := range *moves {
			if m.To == kingSquare {
				return true, NilError
			}
		}
	}

	return false, NilError
}

// IsLegal applies the move, checks the mover's king and reverts.
func IsLegal(b *Board, move Move) (bool, Error) {
	player := b.PieceAt(move.From).Player()

	update := b.Apply(move)
	defer b.Revert(update)

	inCheck, err := InCheck(b, player)
	if !IsNil(err) {
		return false, err
	}
	return !inCheck, NilError
}

func filterLegal(b *Board, moves []Move) ([]Move, Error) {
	legal := []Move{}
	for _, m := range moves {
		ok, err := IsLegal(b, m)
		if !IsNil(err) {
			return nil, err
		}
		if ok {
			legal = append(legal, m)
		}
	}
	return legal, NilError
}

func LegalMovesFrom(b *Board, from Square) ([]Move, Error) {
	return filterLegal(b, MovesFrom(b, from))
}

func LegalMovesForPlayer(b *Board, player Player) ([]Move, Error) {
	return filterLegal(b, MovesForPlayer(b, player))
}

func HasLegalMoves(b *Board, player Player) (bool, Error) {
	moves := GetMovesBuffer()
	defer ReleaseMovesBuffer(moves)

	AppendMovesForPlayer(b, player, moves)
	for _, m := range *moves {
		ok, err := IsLegal(b, m)
		if !IsNil(err) {
			return false, err
		}
		if ok {
			return true, NilError
		}
	}
	return false, NilError
}

type Status int

const (
	InProgress Status = iota
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "unknown"
}

func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// StatusFor classifies the position for the side to move.
func StatusFor(b *Board, player Player) (Status, Error) {
	hasMoves, err := HasLegalMoves(b, player)
	if !IsNil(err) {
		return InProgress, err
	}
	if hasMoves {
		return InProgress, NilError
	}

	inCheck, err := InCheck(b, player)
	if !IsNil(err) {
		return InProgress, err
	}
	if inCheck {
		return Checkmate, NilError
	}
	return Stalemate, NilError
}
