package uci

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/cricklet/chessduel/internal/board"
	"github.com/cricklet/chessduel/internal/chessgo"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/cricklet/chessduel/internal/search"
)

// UciRunner answers the subset of UCI needed to drive the engine from a
// chess GUI: uci, isready, ucinewgame, position, go and d.
type UciRunner struct {
	Runner *chessgo.ChessGoRunner
}

func NewUciRunner(runner *chessgo.ChessGoRunner) *UciRunner {
	return &UciRunner{Runner: runner}
}

func parseFen(input string) (string, Error) {
	s := strings.TrimPrefix(input, "position ")

	if strings.HasPrefix(s, "fen ") {
		s = strings.TrimPrefix(s, "fen ")
		return strings.TrimSpace(strings.Split(s, " moves")[0]), NilError
	} else if strings.HasPrefix(s, "startpos") {
		return InitialPositionFen, NilError
	}

	return "", Errorf("couldn't parse '%v'", s)
}

func parseMoves(input string) []string {
	result := []string{}
	if strings.Contains(input, " moves ") {
		fields := strings.Fields(strings.SplitN(input, " moves ", 2)[1])
		result = append(result, fields...)
	}
	return result
}

func parsePosition(input string) (Position, Error) {
	fen, err := parseFen(input)
	if !IsNil(err) {
		return Position{}, err
	}
	return Position{Fen: fen, Moves: parseMoves(input)}, NilError
}

// parseDepth reads "go depth N". Other go parameters are ignored.
func parseDepth(input string) (Optional[int], Error) {
	fields := strings.Fields(input)
	for i := 0; i < len(fields)-1; i++ {
		if fields[i] == "depth" {
			n, err := strconv.ParseInt(fields[i+1], 10, 0)
			if err != nil {
				return Empty[int](), Wrap(err)
			}
			return Some(int(n)), NilError
		}
	}
	return Empty[int](), NilError
}

// scoreString reports the score from the side to move's point of view, as
// UCI expects.
func scoreString(score int, depth int, player Player) string {
	if search.IsMate(score) {
		plies, err := search.MatePlies(score, depth)
		if IsNil(err) {
			moves := (plies + 1) / 2
			if search.Winner(score) != Some(player) {
				moves = -moves
			}
			return fmt.Sprint("mate ", moves)
		}
	}
	return fmt.Sprint("cp ", search.ForPlayer(score, player))
}

func (u *UciRunner) handlePosition(input string) Error {
	position, err := parsePosition(input)
	if !IsNil(err) {
		return err
	}

	if u.Runner.IsNew() || u.Runner.StartFen != position.Fen {
		return u.Runner.SetupPosition(position)
	}
	return u.Runner.PerformMoves(position.Fen, position.Moves)
}

func (u *UciRunner) handleGo(input string) ([]string, Error) {
	if u.Runner.IsNew() {
		err := u.Runner.SetupPosition(Position{Fen: InitialPositionFen})
		if !IsNil(err) {
			return nil, err
		}
	}

	depth, err := parseDepth(input)
	if !IsNil(err) {
		return nil, err
	}
	if depth.HasValue() {
		previous := u.Runner.Depth()
		err := u.Runner.SetDepth(depth.Value())
		if !IsNil(err) {
			return nil, err
		}
		defer u.Runner.SetDepth(previous)
	}

	player := u.Runner.Player()
	move, score, err := u.Runner.Search()
	if !IsNil(err) {
		return nil, err
	}

	if move.IsEmpty() {
		return []string{"bestmove 0000"}, NilError
	}

	return []string{
		fmt.Sprintf("info depth %v score %v pv %v",
			u.Runner.Depth(), scoreString(score.Value(), u.Runner.Depth(), player), move.Value()),
		fmt.Sprintf("bestmove %v", move.Value()),
	}, NilError
}

func (u *UciRunner) HandleInput(input string) ([]string, Error) {
	input = strings.TrimSpace(input)

	result := []string{}
	if input == "uci" {
		result = append(result, "id name chessduel 1")
		result = append(result, "id author Kenrick Rilee")
		result = append(result, "uciok")
	} else if input == "ucinewgame" {
		u.Runner.Reset()
	} else if input == "isready" {
		result = append(result, "readyok")
	} else if strings.HasPrefix(input, "position ") {
		err := u.handlePosition(input)
		if !IsNil(err) {
			return result, err
		}
	} else if input == "go" || strings.HasPrefix(input, "go ") {
		return u.handleGo(input)
	} else if input == "d" {
		if u.Runner.IsNew() {
			return result, Errorf("position not setup")
		}
		result = append(result, strings.Split(strings.TrimRight(u.Runner.Board().Unicode(), "\n"), "\n")...)
		result = append(result, "Fen: "+u.Runner.FenString())
	}
	return result, NilError
}
