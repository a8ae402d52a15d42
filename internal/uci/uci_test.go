package uci

import (
	"strings"
	"testing"

	"github.com/cricklet/chessduel/internal/chessgo"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func newUciRunner() *UciRunner {
	return NewUciRunner(chessgo.NewChessGoRunner(chessgo.WithDepth(2)))
}

func handle(t *testing.T, r *UciRunner, input string) []string {
	result, err := r.HandleInput(input)
	assert.True(t, IsNil(err), "%v: %v", input, err)
	return result
}

func TestHandshake(t *testing.T) {
	r := newUciRunner()
	assert.Equal(t, []string{"readyok"}, handle(t, r, "isready"))

	result := handle(t, r, "uci")
	assert.Equal(t, "uciok", result[len(result)-1])
	assert.True(t, strings.HasPrefix(result[0], "id name"))

	assert.Empty(t, handle(t, r, "setoption name Hash value 16"))
}

func TestPositionAndGo(t *testing.T) {
	r := newUciRunner()
	handle(t, r, "position startpos moves e2e4 e7e5")
	assert.Equal(t, []string{"e2e4", "e7e5"}, r.Runner.MoveHistory())

	handle(t, r, "position startpos moves e2e4 e7e5 g1f3")
	assert.Equal(t, []string{"e2e4", "e7e5", "g1f3"}, r.Runner.MoveHistory())

	result := handle(t, r, "go depth 1")
	assert.Len(t, result, 2)
	assert.True(t, strings.HasPrefix(result[0], "info depth 1 score cp "), result[0])
	assert.True(t, strings.HasPrefix(result[1], "bestmove "), result[1])
	assert.Equal(t, 2, r.Runner.Depth())

	best := strings.TrimPrefix(result[1], "bestmove ")
	_, err := MoveFromString(best)
	assert.True(t, IsNil(err), err)
}

func TestPositionFen(t *testing.T) {
	r := newUciRunner()
	fen := "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"
	handle(t, r, "position fen "+fen)
	assert.Equal(t, fen, r.Runner.FenString())

	result := handle(t, r, "go depth 2")
	assert.Equal(t, []string{
		"info depth 2 score mate 1 pv a1a8",
		"bestmove a1a8",
	}, result)

	handle(t, r, "position fen "+fen+" moves a1a8")
	assert.Equal(t, []string{"bestmove 0000"}, handle(t, r, "go"))
}

func TestMatedSideReportsNegativeMate(t *testing.T) {
	r := newUciRunner()
	// Kg8 is forced and Ra8 mates
	handle(t, r, "position fen 7k/8/6K1/8/8/8/8/R7 b - - 0 1")

	result := handle(t, r, "go depth 3")
	assert.True(t, strings.HasPrefix(result[0], "info depth 3 score mate -1"), result[0])
}

func TestNewGameResets(t *testing.T) {
	r := newUciRunner()
	handle(t, r, "position startpos moves d2d4")
	handle(t, r, "ucinewgame")
	assert.True(t, r.Runner.IsNew())

	result := handle(t, r, "go")
	assert.Len(t, result, 2)
}

func TestDisplay(t *testing.T) {
	r := newUciRunner()
	_, err := r.HandleInput("d")
	assert.False(t, IsNil(err))

	handle(t, r, "position startpos")
	result := handle(t, r, "d")
	assert.Len(t, result, 10)
	assert.Equal(t, "Fen: rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", result[9])
}

func TestErrors(t *testing.T) {
	r := newUciRunner()

	_, err := r.HandleInput("position nonsense")
	assert.False(t, IsNil(err))

	_, err = r.HandleInput("position startpos moves e2e5")
	assert.False(t, IsNil(err))

	_, err = r.HandleInput("go depth 12")
	assert.False(t, IsNil(err))

	_, err = r.HandleInput("go depth x")
	assert.False(t, IsNil(err))
}
