package chessgo

import (
	"context"
	"fmt"

	. "github.com/cricklet/chessduel/internal/board"
	"github.com/cricklet/chessduel/internal/evaluation"
	. "github.com/cricklet/chessduel/internal/game"
	. "github.com/cricklet/chessduel/internal/generation"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/cricklet/chessduel/internal/search"
)

// ChessGoRunner drives a GameState through coordinate strings such as
// "e2e4". It is what the UCI loop, the web server and the self-play
// tooling talk to.
type ChessGoRunner struct {
	Logger Logger

	g             *GameState
	searchOptions search.SearchOptions

	StartFen string
}

var _ Runner = (*ChessGoRunner)(nil)

type ChessGoOption func(*ChessGoRunner)

func WithLogger(logger Logger) ChessGoOption {
	return func(r *ChessGoRunner) {
		r.Logger = logger
	}
}

func WithSearchOptions(options search.SearchOptions) ChessGoOption {
	return func(r *ChessGoRunner) {
		r.searchOptions = options
	}
}

func WithDepth(depth int) ChessGoOption {
	return func(r *ChessGoRunner) {
		r.searchOptions.Depth = depth
	}
}

func NewChessGoRunner(options ...ChessGoOption) *ChessGoRunner {
	r := &ChessGoRunner{
		Logger:        &SilentLogger,
		searchOptions: search.DefaultSearchOptions,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *ChessGoRunner) Reset() {
	r.g = nil
	r.StartFen = ""
}

func (r *ChessGoRunner) IsNew() bool {
	return r.g == nil
}

func (r *ChessGoRunner) Game() *GameState {
	return r.g
}

func (r *ChessGoRunner) Depth() int {
	return r.searchOptions.Depth
}

func (r *ChessGoRunner) SetDepth(depth int) Error {
	if err := search.ValidateDepth(depth); !IsNil(err) {
		return err
	}
	r.searchOptions.Depth = depth
	return NilError
}

func (r *ChessGoRunner) LastMove() Optional[Move] {
	if r.IsNew() {
		return Empty[Move]()
	}
	return r.g.LastMove()
}

func (r *ChessGoRunner) Rewind(num int) Error {
	if r.IsNew() {
		return Errorf("position not setup")
	}
	for i := 0; i < num; i++ {
		err := r.g.UndoLast()
		if !IsNil(err) {
			return Errorf("Rewind: %w", err)
		}
	}
	return NilError
}

// Undo takes back the last move pair, the way a player undoes their move
// and the engine's reply.
func (r *ChessGoRunner) Undo() Error {
	if r.IsNew() {
		return Errorf("position not setup")
	}
	return r.g.Undo()
}

func (r *ChessGoRunner) PerformMove(move Move) Error {
	if r.IsNew() {
		return Errorf("position not setup")
	}
	err := r.g.CommitMove(move)
	if !IsNil(err) {
		return Errorf("PerformMove: %w", err)
	}
	return NilError
}

func (r *ChessGoRunner) PerformMoveFromString(s string) Error {
	m, err := MoveFromString(s)
	if !IsNil(err) {
		return err
	}
	return r.PerformMove(m)
}

func firstIndexNotMatching[A any, B any](a []A, b []B, matches func(A, B) bool) int {
	for i := 0; i < MinInt(len(a), len(b)); i++ {
		if !matches(a[i], b[i]) {
			return i
		}
	}
	return MinInt(len(a), len(b))
}

// PerformMoves brings the game to startPos followed by moves, reusing the
// part of the current history that already matches.
func (r *ChessGoRunner) PerformMoves(startPos string, moves []string) Error {
	if r.StartFen != startPos {
		return Errorf("positions don't match: %v != %v", r.StartFen, startPos)
	}

	history := r.MoveHistory()
	startIndex := firstIndexNotMatching(history, moves, func(a string, b string) bool {
		return a == b || a == b+"q"
	})

	err := r.Rewind(len(history) - startIndex)
	if !IsNil(err) {
		return err
	}

	for i := startIndex; i < len(moves); i++ {
		err := r.PerformMoveFromString(moves[i])
		if !IsNil(err) {
			return err
		}
	}

	return NilError
}

func (r *ChessGoRunner) SetupPosition(position Position) Error {
	if !r.IsNew() {
		r.Reset()
	}

	fen := position.Fen
	if fen == "" {
		fen = InitialPositionFen
	}

	game, err := GamestateFromFenString(fen)
	if !IsNil(err) {
		return Errorf("couldn't create game from %v, %w", position, err)
	}
	game.Logger = r.Logger
	r.g = game

	r.StartFen = position.Fen

	for _, m := range position.Moves {
		err := r.PerformMoveFromString(m)
		if !IsNil(err) {
			return err
		}
	}

	return NilError
}

func (r *ChessGoRunner) MovesForSelection(selection string) ([]string, Error) {
	if r.IsNew() {
		return nil, Errorf("position not setup")
	}

	square, err := SquareFromString(selection)
	if !IsNil(err) {
		return nil, Errorf("failed to parse selection %w", err)
	}

	moves, err := r.g.LegalMovesFrom(square)
	if !IsNil(err) {
		return nil, err
	}

	return MapSlice(moves, func(m Move) string {
		return m.String()
	}), NilError
}

func (r *ChessGoRunner) FenString() string {
	return FenStringForGame(r.g)
}

func (r *ChessGoRunner) MoveHistory() []string {
	if r.IsNew() {
		return []string{}
	}
	return MapSlice(r.g.History(), func(u Update) string {
		return u.Move.String()
	})
}

// MoveHistoryString numbers the history by full move, eg "1. e2e4 e7e5 2. ...".
func (r *ChessGoRunner) MoveHistoryString() string {
	result := ""
	fullMove := 1
	halfMove := 0
	for _, move := range r.MoveHistory() {
		if halfMove == 0 {
			result += fmt.Sprintf("%v. ", fullMove)
		}

		result += fmt.Sprintf("%v ", move)

		halfMove += 1
		if halfMove == 2 {
			halfMove = 0
			fullMove += 1
		}
	}
	return result
}

func (r *ChessGoRunner) Player() Player {
	return r.g.Player()
}

func (r *ChessGoRunner) Board() *Board {
	return r.g.Board
}

func (r *ChessGoRunner) Status() Status {
	return r.g.Status()
}

func (r *ChessGoRunner) Winner() Optional[Player] {
	return r.g.Winner()
}

func (r *ChessGoRunner) Search() (Optional[string], Optional[int], Error) {
	return r.SearchWithContext(context.Background())
}

// SearchWithContext returns the best move for the side to move and its
// score, positive for Black. Both are empty when the game is over.
func (r *ChessGoRunner) SearchWithContext(ctx context.Context) (Optional[string], Optional[int], Error) {
	if r.IsNew() {
		return Empty[string](), Empty[int](), Errorf("position not setup")
	}

	move, score, err := r.g.SearchBestMove(ctx, r.searchOptions)
	if !IsNil(err) {
		return Empty[string](), Empty[int](), err
	}

	if move.HasValue() {
		return Some(move.Value().String()), Some(score), NilError
	}

	return Empty[string](), Empty[int](), NilError
}

func (r *ChessGoRunner) PlayerIsInCheck() (bool, Error) {
	return InCheck(r.g.Board, r.g.Player())
}

func (r *ChessGoRunner) Evaluate() int {
	return r.g.Evaluate()
}

// EvaluateMaterial ignores piece placement.
func (r *ChessGoRunner) EvaluateMaterial() int {
	return evaluation.EvaluateMaterial(r.g.Board)
}
