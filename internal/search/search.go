package search

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	. "github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/evaluation"
	. "github.com/cricklet/chessduel/internal/generation"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/dustin/go-humanize"
)

var ErrInvalidDepth = errors.New("invalid search depth")

const (
	MinDepth     = 1
	MaxDepth     = 6
	DefaultDepth = 3
)

func ValidateDepth(depth int) Error {
	if depth < MinDepth || depth > MaxDepth {
		return Errorf("%v not in [%v, %v]: %w", depth, MinDepth, MaxDepth, ErrInvalidDepth)
	}
	return NilError
}

type SearchOptions struct {
	Depth   int
	Pruning bool

	debugSearchTree *debugSearchTree
}

var DefaultSearchOptions = SearchOptions{
	Depth:   DefaultDepth,
	Pruning: true,
}

var AllSearchOptions = []string{
	"depth",
	"noPruning",
	"debugSearchTree",
}

func OptionsFromArgs(args ...string) (SearchOptions, Error) {
	options := DefaultSearchOptions

	for _, arg := range args {
		if strings.HasPrefix(arg, "depth") {
			if !strings.Contains(arg, "=") {
				return options, Errorf("expected depth=N, got %v", arg)
			}
			n, err := strconv.ParseInt(strings.Split(arg, "=")[1], 10, 64)
			if err != nil {
				return options, Wrap(err)
			}
			if err := ValidateDepth(int(n)); !IsNil(err) {
				return options, err
			}
			options.Depth = int(n)
		} else if strings.HasPrefix(arg, "noPruning") {
			options.Pruning = false
		} else if strings.HasPrefix(arg, "debugSearchTree") {
			options.debugSearchTree = &debugSearchTree{}
		} else {
			return options, Errorf("unknown option: %s", arg)
		}
	}

	return options, NilError
}

type SearchStats struct {
	Nodes       int
	Evaluations int
	Cutoffs     int
}

// Searcher runs minimax over a board it mutates in place. Every applied move
// is reverted before the call that applied it returns.
type Searcher struct {
	Logger Logger
	Board  *Board

	options SearchOptions
	Stats   SearchStats
}

func NewSearcher(logger Logger, b *Board, options SearchOptions) *Searcher {
	return &Searcher{
		Logger:  logger,
		Board:   b,
		options: options,
	}
}

// DebugTree renders the recorded search tree when the searcher was created
// with the debugSearchTree option.
func (s *Searcher) DebugTree(depth int) string {
	if s.options.debugSearchTree == nil {
		return ""
	}
	return s.options.debugSearchTree.DebugString(depth)
}

// BestMove searches depth plies for player. Black picks the highest score
// and White the lowest; ties keep the first move in generation order. An
// empty result means player has no legal moves.
func (s *Searcher) BestMove(ctx context.Context, player Player, depth int) (Optional[Move], int, Error) {
	if err := ValidateDepth(depth); !IsNil(err) {
		return Empty[Move](), 0, err
	}

	s.Stats = SearchStats{}
	if s.options.debugSearchTree != nil {
		s.options.debugSearchTree.Reset()
	}
	start := time.Now()

	maximizing := player == Black
	alpha, beta := -Inf, Inf

	bestMove := Empty[Move]()
	bestScore := 0

	moves := GetMovesBuffer()
	defer ReleaseMovesBuffer(moves)
	AppendMovesForPlayer(s.Board, player, moves)

	for _, move := range *moves {
		score, legal, err := s.evaluateMove(ctx, move, player, depth, alpha, beta)
		if !IsNil(err) {
			return Empty[Move](), 0, err
		}
		if !legal {
			continue
		}

		if bestMove.IsEmpty() ||
			(maximizing && score > bestScore) ||
			(!maximizing && score < bestScore) {
			bestMove = Some(move)
			bestScore = score
		}

		if s.options.Pruning {
			if maximizing {
				alpha = Max(alpha, score)
			} else {
				beta = Min(beta, score)
			}
		}
	}

	if bestMove.HasValue() {
		elapsed := time.Since(start)
		s.Logger.Println("searched", player, "to depth", depth,
			"-", humanize.Comma(int64(s.Stats.Nodes)), "nodes,",
			humanize.Comma(int64(s.Stats.Evaluations)), "evaluations,",
			humanize.Comma(int64(s.Stats.Cutoffs)), "cutoffs in", elapsed.Round(time.Millisecond),
			"- best move", bestMove.Value().DebugString(),
			"- score", ScoreString(bestScore))
	} else {
		s.Logger.Println("no legal moves for", player)
	}

	return bestMove, bestScore, NilError
}

// Search returns the minimax value of the position with the maximizing flag
// selecting the side to move (Black maximizes). Alpha-beta cutoffs never
// change the returned value relative to Pruning=false.
func (s *Searcher) Search(ctx context.Context, depth int, alpha int, beta int, maximizing bool) (int, Error) {
	if err := ctx.Err(); err != nil {
		return 0, Wrap(err)
	}
	s.Stats.Nodes++

	if depth == 0 {
		s.Stats.Evaluations++
		return Evaluate(s.Board), NilError
	}

	player := maximizingPlayer(maximizing)

	moves := GetMovesBuffer()
	defer ReleaseMovesBuffer(moves)
	AppendMovesForPlayer(s.Board, player, moves)

	best := Inf
	if maximizing {
		best = -Inf
	}
	hasLegalMove := false

	for _, move := range *moves {
		score, legal, err := s.evaluateMove(ctx, move, player, depth, alpha, beta)
		if !IsNil(err) {
			return 0, err
		}
		if !legal {
			continue
		}
		hasLegalMove = true

		if maximizing {
			best = Max(best, score)
			alpha = Max(alpha, score)
		} else {
			best = Min(best, score)
			beta = Min(beta, score)
		}

		if s.options.Pruning && beta <= alpha {
			s.Stats.Cutoffs++
			break
		}
	}

	if !hasLegalMove {
		inCheck, err := InCheck(s.Board, player)
		if !IsNil(err) {
			return 0, err
		}
		if inCheck {
			return MatedScore(player, depth), NilError
		}
		return 0, NilError
	}

	return best, NilError
}

// evaluateMove applies move for player, reports whether it was legal and
// scores the resulting position with depth-1 plies. The board is restored on
// every return path.
func (s *Searcher) evaluateMove(ctx context.Context, move Move, player Player, depth int, alpha int, beta int) (int, bool, Error) {
	var returnScore int
	var returnLegality bool

	if s.options.debugSearchTree != nil {
		index := s.options.debugSearchTree.MovePush(move.DebugString(), player, alpha, beta)
		defer func() {
			s.options.debugSearchTree.MovePop(index, returnScore, returnLegality)
		}()
	}

	update := s.Board.Apply(move)
	defer s.Board.Revert(update)

	inCheck, err := InCheck(s.Board, player)
	if !IsNil(err) {
		return returnScore, returnLegality, err
	}
	if inCheck {
		return returnScore, returnLegality, NilError
	}
	returnLegality = true

	returnScore, err = s.Search(ctx, depth-1, alpha, beta, player.Other() == Black)
	return returnScore, returnLegality, err
}
