package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cricklet/chessduel/internal/board"
	"github.com/cricklet/chessduel/internal/chessgo"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
)

const (
	_footerProgress  = 0
	_footerBoard     = 2
	_footerCurrent   = 4
	_footerSearch    = 6
	_footerStandings = 8
)

const _maxPlies = 200

var logger = NewLiveLogger()

// footerWriter redraws whatever is written to it as a single footer.
type footerWriter struct {
	logger *LiveLogger
	index  int
}

func (w footerWriter) Write(p []byte) (int, error) {
	s := strings.TrimSpace(strings.ReplaceAll(string(p), "\r", ""))
	if s != "" {
		w.logger.SetFooter(s, w.index)
	}
	return len(p), nil
}

func standingsString(standings map[string]*standing) string {
	sorted := []*standing{}
	for _, s := range standings {
		sorted = append(sorted, s)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Score() > sorted[j].Score()
	})
	return strings.Join(MapSlice(sorted, func(s *standing) string {
		return s.String()
	}), "\n")
}

func main() {
	args := os.Args[1:]

	games := 10
	depths := []string{"1", "2", "3"}
	fen := board.InitialPositionFen

	var err Error
	for _, arg := range args {
		if arg == "profile" {
			p := profile.Start(profile.ProfilePath("data/CmdEloMain"))
			defer p.Stop()
		} else if strings.HasPrefix(arg, "games=") {
			games, err = WrapReturn(strconv.Atoi(arg[len("games="):]))
		} else if strings.HasPrefix(arg, "depths=") {
			depths, err = parseDepths(arg[len("depths="):])
		} else if strings.HasPrefix(arg, "fen=") {
			fen = arg[len("fen="):]
		} else {
			err = Errorf("unknown arg %v", arg)
		}
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	standings := map[string]*standing{}
	for _, d := range depths {
		standings[d] = &standing{Name: "depth=" + d}
	}

	allPairings := pairings(depths)
	total := games * len(allPairings)

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription("games"),
		progressbar.OptionSetWriter(footerWriter{logger, _footerProgress}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30))

	boardLogger := NewFooterLogger(logger, _footerBoard)
	searchLogger := NewFooterLogger(logger, _footerSearch)
	failures := ErrorRef{}

	ctx := context.Background()
	for _, pair := range allPairings {
		runners := MapSlice(pair, func(d string) *chessgo.ChessGoRunner {
			depth, _ := strconv.Atoi(d)
			return chessgo.NewChessGoRunner(
				chessgo.WithDepth(depth),
				chessgo.WithLogger(searchLogger))
		})

		for i := 0; i < games; i++ {
			// alternate colors so neither depth always moves first
			whiteIndex := i % 2
			white, black := runners[whiteIndex], runners[1-whiteIndex]
			whiteName, blackName := pair[whiteIndex], pair[1-whiteIndex]

			logger.SetFooter(fmt.Sprintf("white depth=%v, black depth=%v", whiteName, blackName), _footerCurrent)

			outcome, moves, err := playGame(ctx, fen, white, black, _maxPlies, func(gameRunner) {
				boardLogger.Print(white.Board().Unicode())
			})
			if !IsNil(err) {
				logger.Println("game failed:", err)
				failures.Add(err)
				_ = bar.Add(1)
				continue
			}

			standings[whiteName].record(outcome, White)
			standings[blackName].record(outcome, Black)

			logger.Printf("depth=%v vs depth=%v: %v in %v plies\n", whiteName, blackName, outcome, len(moves))
			logger.Println(Indent(white.MoveHistoryString(), "    "))
			logger.SetFooter(standingsString(standings), _footerStandings)
			_ = bar.Add(1)
		}
	}

	_ = bar.Finish()
	logger.FlushFooter()
	fmt.Println(standingsString(standings))

	if failures.HasError() {
		fmt.Fprintln(os.Stderr, failures.NumErrors(), "games failed")
		fmt.Fprintln(os.Stderr, failures.Error())
		os.Exit(1)
	}
}
