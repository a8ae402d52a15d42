package generation

import (
	"math/rand"
	"sort"
	"testing"

	. "github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
)

// oracleMoves returns the reference legal moves for fen, minus en-passant
// captures and under-promotions which are not part of the rule set here.
func oracleMoves(t *testing.T, fen string) ([]string, chess.Method) {
	opt, err := chess.FEN(fen)
	assert.NoError(t, err, fen)

	position := chess.NewGame(opt).Position()

	result := []string{}
	for _, m := range position.ValidMoves() {
		if m.HasTag(chess.EnPassant) {
			continue
		}
		if m.Promo() != chess.NoPieceType && m.Promo() != chess.Queen {
			continue
		}
		result = append(result, m.String())
	}
	sort.Strings(result)

	return result, position.Status()
}

func assertMatchesOracle(t *testing.T, b *Board, player Player, fullMove int) []Move {
	fen := FenString(b, player, fullMove)

	legal, err := LegalMovesForPlayer(b, player)
	assert.True(t, IsNil(err), err)

	expected, method := oracleMoves(t, fen)
	assert.Equal(t, expected, moveStrings(legal), fen)

	status, err := StatusFor(b, player)
	assert.True(t, IsNil(err), err)

	switch method {
	case chess.Checkmate:
		assert.Equal(t, Checkmate, status, fen)
	case chess.Stalemate:
		assert.Equal(t, Stalemate, status, fen)
	default:
		if len(legal) > 0 {
			assert.Equal(t, InProgress, status, fen)
		}
	}

	return legal
}

func TestLegalMovesMatchOracle(t *testing.T) {
	fens := append([]string{
		"k7/1Q6/1K6/8/8/8/8/8 b - - 0 1",
		"k7/8/1Q6/8/8/8/8/7K b - - 0 1",
		"4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1",
		"8/8/8/8/8/3k4/4P3/4K3 b - - 0 1",
		"1n2k3/P7/8/8/8/8/5p2/4K1N1 w - - 0 1",
	}, _testFens...)

	for _, fen := range fens {
		b, player := boardFromFen(t, fen)
		assertMatchesOracle(t, b, player, 1)
	}
}

func TestRandomPlayoutsMatchOracle(t *testing.T) {
	numGames := 20
	if testing.Short() {
		numGames = 4
	}

	for seed := int64(0); seed < int64(numGames); seed++ {
		r := rand.New(rand.NewSource(seed))

		b := NewBoard()
		player := White

		for ply := 0; ply < 120; ply++ {
			legal := assertMatchesOracle(t, b, player, ply/2+1)
			if len(legal) == 0 {
				break
			}

			b.Apply(legal[r.Intn(len(legal))])
			player = player.Other()
		}
	}
}
