package game

import (
	"context"
	"errors"

	. "github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/evaluation"
	. "github.com/cricklet/chessduel/internal/generation"
	. "github.com/cricklet/chessduel/internal/helpers"
	. "github.com/cricklet/chessduel/internal/search"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// GameState owns a board, the side to move and the history of committed
// moves. It is only changed through CommitMove and the undo methods.
type GameState struct {
	Board  *Board
	Logger Logger

	player  Player
	history []Update

	status Status
	winner Optional[Player]

	startPlayer        Player
	startFullMoveClock int
}

func NewGame() *GameState {
	return &GameState{
		Board:              NewBoard(),
		Logger:             &SilentLogger,
		player:             White,
		startPlayer:        White,
		startFullMoveClock: 1,
	}
}

func (g *GameState) Player() Player {
	return g.player
}

func (g *GameState) Status() Status {
	return g.status
}

func (g *GameState) IsOver() bool {
	return g.status.IsTerminal()
}

// Winner is set only after checkmate.
func (g *GameState) Winner() Optional[Player] {
	return g.winner
}

func (g *GameState) History() []Update {
	return append([]Update{}, g.history...)
}

func (g *GameState) LastMove() Optional[Move] {
	if len(g.history) == 0 {
		return Empty[Move]()
	}
	return Some(g.history[len(g.history)-1].Move)
}

func (g *GameState) FullMoveClock() int {
	plies := len(g.history)
	if g.startPlayer == Black {
		plies++
	}
	return g.startFullMoveClock + plies/2
}

func (g *GameState) Evaluate() int {
	return Evaluate(g.Board)
}

// LegalMovesFrom lists the legal moves of the piece on square. Squares that
// are empty or hold a piece of the side not to move have none.
func (g *GameState) LegalMovesFrom(square Square) ([]Move, Error) {
	if !square.IsValid() {
		return nil, Errorf("invalid square %v", int(square))
	}
	if g.IsOver() || !g.Board.PieceAt(square).BelongsTo(g.player) {
		return []Move{}, NilError
	}
	return LegalMovesFrom(g.Board, square)
}

func (g *GameState) LegalMoves() ([]Move, Error) {
	if g.IsOver() {
		return []Move{}, NilError
	}
	return LegalMovesForPlayer(g.Board, g.player)
}

// CommitMove applies move if it is one of the current legal moves. A
// rejected move leaves the game untouched.
func (g *GameState) CommitMove(move Move) Error {
	if g.IsOver() {
		return Errorf("%v after %v: %w", move, g.status, ErrGameOver)
	}

	if !move.From.IsValid() || !move.To.IsValid() || !g.Board.PieceAt(move.From).BelongsTo(g.player) {
		return Errorf("%v for %v: %w", move, g.player, ErrIllegalMove)
	}

	legal, err := LegalMovesFrom(g.Board, move.From)
	if !IsNil(err) {
		return err
	}

	matched := FindInSlice(legal, move.Matches)
	if matched.IsEmpty() {
		return Errorf("%v for %v: %w", move, g.player, ErrIllegalMove)
	}

	g.history = append(g.history, g.Board.Apply(matched.Value()))
	g.player = g.player.Other()

	return g.refreshStatus()
}

func (g *GameState) refreshStatus() Error {
	status, err := StatusFor(g.Board, g.player)
	if !IsNil(err) {
		return err
	}

	g.status = status
	g.winner = Empty[Player]()
	if status == Checkmate {
		g.winner = Some(g.player.Other())
	}

	if status.IsTerminal() {
		g.Logger.Println(status, "after", len(g.history), "plies:", FenStringForGame(g))
	}
	return NilError
}

// UndoLast reverts the most recent committed move.
func (g *GameState) UndoLast() Error {
	if len(g.history) == 0 {
		return Wrap(ErrNothingToUndo)
	}

	update := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]
	g.Board.Revert(update)

	g.player = update.Player()
	g.status = InProgress
	g.winner = Empty[Player]()

	return NilError
}

// Undo reverts a human move and the automated reply, or a single move when
// only one has been made.
func (g *GameState) Undo() Error {
	err := g.UndoLast()
	if !IsNil(err) {
		return err
	}
	if len(g.history) > 0 {
		return g.UndoLast()
	}
	return NilError
}

// SearchBestMove searches for the side to move without committing anything.
// The board is restored before it returns, even when ctx is cancelled.
func (g *GameState) SearchBestMove(ctx context.Context, options SearchOptions) (Optional[Move], int, Error) {
	if g.IsOver() {
		return Empty[Move](), 0, NilError
	}

	searcher := NewSearcher(g.Logger, g.Board, options)
	return searcher.BestMove(ctx, g.player, options.Depth)
}

// RequestAutomatedMove picks a move for the side to move at the given depth.
// The caller commits it. An empty result means the game is over.
func (g *GameState) RequestAutomatedMove(ctx context.Context, depth int) (Optional[Move], Error) {
	options := DefaultSearchOptions
	options.Depth = depth

	move, _, err := g.SearchBestMove(ctx, options)
	return move, err
}
