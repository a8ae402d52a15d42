package game

import (
	"strconv"
	"strings"

	. "github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/helpers"
)

func FenStringForGame(g *GameState) string {
	return FenString(g.Board, g.player, g.FullMoveClock())
}

// GamestateFromFenString sets up a game at the given position with an empty
// history. The full move clock is read when present.
func GamestateFromFenString(s string) (*GameState, Error) {
	b, player, err := BoardFromFenString(s)
	if !IsNil(err) {
		return nil, err
	}

	fullMoveClock := 1
	if fields := strings.Fields(s); len(fields) == 6 {
		n, parseErr := strconv.ParseInt(fields[5], 10, 0)
		if parseErr != nil || n < 1 {
			return nil, Errorf("invalid full move clock '%v' in '%v'", fields[5], s)
		}
		fullMoveClock = int(n)
	}

	g := &GameState{
		Board:              b,
		player:             player,
		startPlayer:        player,
		startFullMoveClock: fullMoveClock,
		Logger:             &SilentLogger,
	}

	err = g.refreshStatus()
	if !IsNil(err) {
		return nil, err
	}

	return g, NilError
}
