package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	. "github.com/cricklet/chessduel/internal/generation"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/cricklet/chessduel/internal/search"
	combinations "github.com/mxschmitt/golang-combinations"
)

type Outcome int

const (
	WhiteWins Outcome = iota
	BlackWins
	Draw
)

func (o Outcome) String() string {
	return [3]string{"1-0", "0-1", "1/2-1/2"}[o]
}

func outcomeFor(winner Optional[Player]) Outcome {
	if winner.IsEmpty() {
		return Draw
	}
	if winner.Value() == White {
		return WhiteWins
	}
	return BlackWins
}

type gameRunner interface {
	Runner
	SearchWithContext(ctx context.Context) (Optional[string], Optional[int], Error)
	Player() Player
	Status() Status
	Winner() Optional[Player]
}

// playGame alternates white and black from fen. A game still running after
// maxPlies is adjudicated a draw. onPly sees the white runner, which always
// holds the current position.
func playGame(
	ctx context.Context,
	fen string,
	white gameRunner,
	black gameRunner,
	maxPlies int,
	onPly func(gameRunner),
) (Outcome, []string, Error) {
	runners := [2]gameRunner{white, black}
	for _, r := range runners {
		r.Reset()
		err := r.SetupPosition(Position{Fen: fen})
		if !IsNil(err) {
			return Draw, nil, err
		}
	}

	moves := []string{}
	for ply := 0; ; ply++ {
		err := white.PerformMoves(fen, moves)
		if !IsNil(err) {
			return Draw, moves, err
		}
		if onPly != nil {
			onPly(white)
		}

		if white.Status().IsTerminal() {
			return outcomeFor(white.Winner()), moves, NilError
		}
		if ply >= maxPlies {
			return Draw, moves, NilError
		}
		if ctx.Err() != nil {
			return Draw, moves, Wrap(ctx.Err())
		}

		mover := runners[white.Player()]
		err = mover.PerformMoves(fen, moves)
		if !IsNil(err) {
			return Draw, moves, err
		}

		move, _, err := mover.SearchWithContext(ctx)
		if !IsNil(err) {
			return Draw, moves, err
		}
		if move.IsEmpty() {
			return Draw, moves, Errorf("no move found after %v", strings.Join(moves, " "))
		}
		moves = append(moves, move.Value())
	}
}

type standing struct {
	Name   string
	Wins   int
	Draws  int
	Losses int
}

func (s *standing) record(o Outcome, as Player) {
	switch {
	case o == Draw:
		s.Draws++
	case (o == WhiteWins) == (as == White):
		s.Wins++
	default:
		s.Losses++
	}
}

func (s standing) Games() int {
	return s.Wins + s.Draws + s.Losses
}

func (s standing) Score() float64 {
	if s.Games() == 0 {
		return 0.5
	}
	return (float64(s.Wins) + 0.5*float64(s.Draws)) / float64(s.Games())
}

func (s standing) String() string {
	return fmt.Sprintf("%-8v +%-3v =%-3v -%-3v %+5d",
		s.Name, s.Wins, s.Draws, s.Losses, eloDifference(s.Score()))
}

// eloDifference is the rating gap implied by a match score in [0, 1].
// Perfect scores are clamped so the estimate stays finite.
func eloDifference(score float64) int {
	score = math.Max(0.01, math.Min(0.99, score))
	return int(math.Round(-400 * math.Log10(1/score-1)))
}

func parseDepths(s string) ([]string, Error) {
	depths := FilterSlice(strings.Split(s, ","), func(d string) bool {
		return d != ""
	})
	for _, d := range depths {
		depth, err := WrapReturn(strconv.Atoi(d))
		if !IsNil(err) {
			return nil, Errorf("couldn't parse depth %v: %w", d, err)
		}
		err = search.ValidateDepth(depth)
		if !IsNil(err) {
			return nil, err
		}
	}
	if len(depths) < 2 {
		return nil, Errorf("need at least two depths, got %v", s)
	}
	return depths, NilError
}

// pairings lists every pair of distinct depths.
func pairings(depths []string) [][]string {
	return FilterSlice(combinations.All(depths), func(pair []string) bool {
		return len(pair) == 2
	})
}
