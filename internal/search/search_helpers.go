package search

import (
	"fmt"

	. "github.com/cricklet/chessduel/internal/helpers"
)

var Inf int = 999999

// MateScore is the magnitude of a mate found with no remaining depth. Mates
// found with d plies of depth left score MateScore+d.
const MateScore = 100000

func IsMate(score int) bool {
	return AbsDiff(score, 0) >= MateScore && AbsDiff(score, 0) < Inf
}

// MatedScore is the score of a node where player is checkmated.
func MatedScore(player Player, depth int) int {
	if player == Black {
		return -(MateScore + depth)
	}
	return MateScore + depth
}

// MatePlies converts a mate score from a search of searchDepth into the
// number of plies from the root to the mating move.
func MatePlies(score int, searchDepth int) (int, Error) {
	if !IsMate(score) {
		return 0, Errorf("%v is not a mate score", score)
	}
	remaining := AbsDiff(score, 0) - MateScore
	return searchDepth - remaining, NilError
}

// Winner returns which side delivers the mate.
func Winner(score int) Optional[Player] {
	if !IsMate(score) {
		return Empty[Player]()
	}
	if score > 0 {
		return Some(Black)
	}
	return Some(White)
}

func ScoreString(score int) string {
	if IsMate(score) {
		if score > 0 {
			return fmt.Sprint("mate+", score-MateScore)
		}
		return fmt.Sprint("mate-", -score-MateScore)
	}
	return fmt.Sprint(score)
}

// ForPlayer re-signs a score so that positive favors player.
func ForPlayer(score int, player Player) int {
	if player == Black {
		return score
	}
	return -score
}

func maximizingPlayer(maximizing bool) Player {
	if maximizing {
		return Black
	}
	return White
}
