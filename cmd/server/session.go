package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	. "github.com/cricklet/chessduel/internal/board"
	"github.com/cricklet/chessduel/internal/chessgo"
	. "github.com/cricklet/chessduel/internal/helpers"
)

type UpdateToWeb struct {
	FenString     string   `json:"fenString"`
	LastMove      string   `json:"lastMove"`
	Selection     string   `json:"selection"`
	PossibleMoves []string `json:"possibleMoves"`
	Player        string   `json:"player"`
	Status        string   `json:"status"`
	Winner        string   `json:"winner"`
	Evaluation    int      `json:"evaluation"`
	Depth         int      `json:"depth"`
	Automated     string   `json:"automated"`
	Error         string   `json:"error,omitempty"`
}

func (u UpdateToWeb) String() string {
	return fmt.Sprint("UpdateToWeb: ", u.FenString, ", ", u.LastMove, ", ", u.Selection, ", ", u.PossibleMoves, ", ", u.Status)
}

// MessageFromWeb carries exactly one request.
type MessageFromWeb struct {
	NewGame   *bool   `json:"newGame"`
	NewFen    *string `json:"newFen"`
	Selection *string `json:"selection"`
	Move      *string `json:"move"`
	Undo      *bool   `json:"undo"`
	Depth     *int    `json:"depth"`
	Automated *string `json:"automated"`
}

func (u MessageFromWeb) String() string {
	if u.NewGame != nil {
		return "MessageFromWeb NewGame"
	}
	if u.NewFen != nil {
		return fmt.Sprint("MessageFromWeb NewFen: ", *u.NewFen)
	}
	if u.Selection != nil {
		return fmt.Sprint("MessageFromWeb Selection: ", *u.Selection)
	}
	if u.Move != nil {
		return fmt.Sprint("MessageFromWeb Move: ", *u.Move)
	}
	if u.Undo != nil {
		return "MessageFromWeb Undo"
	}
	if u.Depth != nil {
		return fmt.Sprint("MessageFromWeb Depth: ", *u.Depth)
	}
	if u.Automated != nil {
		return fmt.Sprint("MessageFromWeb Automated: ", *u.Automated)
	}
	return "MessageFromWeb unknown"
}

// session is one websocket client's game. Messages are handled one at a
// time under the lock, including the engine's reply.
type session struct {
	lock sync.Mutex

	runner    *chessgo.ChessGoRunner
	automated Optional[Player]
	logger    Logger

	write func(v any) Error
}

func newSession(write func(v any) Error, options ...chessgo.ChessGoOption) (*session, Error) {
	s := &session{
		automated: Some(Black),
		write:     write,
	}
	s.logger = FuncLogger(func(message string) {
		// log lines are sent as one element arrays so clients can tell
		// them apart from updates
		s.write([]string{message})
	})

	s.runner = chessgo.NewChessGoRunner(append([]chessgo.ChessGoOption{chessgo.WithLogger(s.logger)}, options...)...)
	err := s.runner.SetupPosition(Position{Fen: InitialPositionFen})
	if !IsNil(err) {
		return nil, err
	}
	return s, NilError
}

func automatedString(automated Optional[Player]) string {
	if automated.IsEmpty() {
		return "none"
	}
	return automated.Value().String()
}

func automatedFromString(s string) (Optional[Player], Error) {
	if s == "none" {
		return Empty[Player](), NilError
	}
	player, err := PlayerFromString(s)
	if !IsNil(err) {
		return Empty[Player](), err
	}
	return Some(player), NilError
}

func (s *session) state(update UpdateToWeb) UpdateToWeb {
	update.FenString = s.runner.FenString()
	update.Player = s.runner.Player().String()
	update.Status = s.runner.Status().String()
	if winner := s.runner.Winner(); winner.HasValue() {
		update.Winner = winner.Value().String()
	}
	if lastMove := s.runner.LastMove(); lastMove.HasValue() {
		update.LastMove = lastMove.Value().String()
	}
	update.Evaluation = s.runner.Evaluate()
	update.Depth = s.runner.Depth()
	update.Automated = automatedString(s.automated)
	return update
}

func (s *session) send(update UpdateToWeb) Error {
	update = s.state(update)
	s.logger.Println("sending", update)
	return s.write(update)
}

func (s *session) engineToMove() bool {
	return s.automated.HasValue() &&
		s.automated.Value() == s.runner.Player() &&
		!s.runner.Status().IsTerminal()
}

func (s *session) performEngineMove(ctx context.Context) Error {
	bestMove, _, err := s.runner.SearchWithContext(ctx)
	if !IsNil(err) {
		return err
	}
	if bestMove.IsEmpty() {
		return Errorf("no move found")
	}
	return s.runner.PerformMoveFromString(bestMove.Value())
}

// handleMessage applies one client message and sends the resulting state.
// When the engine is to move afterwards, a second update follows its move.
// Rejected requests are reported in the update's error field. Only failures
// to decode or write are returned.
func (s *session) handleMessage(ctx context.Context, bytes []byte) Error {
	s.lock.Lock()
	defer s.lock.Unlock()

	var message MessageFromWeb
	if err := json.Unmarshal(bytes, &message); err != nil {
		return Wrap(err)
	}
	s.logger.Println("received", message)

	var update UpdateToWeb
	var err Error
	positionChanged := false

	if message.NewGame != nil {
		err = s.runner.SetupPosition(Position{Fen: InitialPositionFen})
		positionChanged = true
	} else if message.NewFen != nil {
		err = s.runner.SetupPosition(Position{Fen: *message.NewFen})
		if !IsNil(err) {
			s.runner.Reset()
			err = Join(err, s.runner.SetupPosition(Position{Fen: InitialPositionFen}))
		}
		positionChanged = true
	} else if message.Selection != nil {
		update.Selection = *message.Selection
		update.PossibleMoves, err = s.runner.MovesForSelection(*message.Selection)
	} else if message.Move != nil {
		err = s.runner.PerformMoveFromString(*message.Move)
		positionChanged = IsNil(err)
	} else if message.Undo != nil {
		err = s.runner.Undo()
	} else if message.Depth != nil {
		err = s.runner.SetDepth(*message.Depth)
	} else if message.Automated != nil {
		s.automated, err = automatedFromString(*message.Automated)
		positionChanged = IsNil(err)
	} else {
		err = Errorf("empty message")
	}

	if !IsNil(err) {
		s.logger.Println("rejected", message, err)
		update.Error = err.Error()
	}

	writeErr := s.send(update)
	if !IsNil(writeErr) {
		return writeErr
	}

	if positionChanged && s.engineToMove() {
		var engineUpdate UpdateToWeb
		err := s.performEngineMove(ctx)
		if !IsNil(err) {
			s.logger.Println("engine:", err)
			engineUpdate.Error = err.Error()
		}
		return s.send(engineUpdate)
	}

	return NilError
}
