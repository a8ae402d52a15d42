package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cricklet/chessduel/internal/board"
	. "github.com/cricklet/chessduel/internal/generation"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/dustin/go-humanize"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// divide counts the leaves under each legal root move, one goroutine per
// root move on its own copy of the board.
func divide(b *board.Board, player Player, depth int) ([]Pair[Move, int], Error) {
	legal, err := LegalMovesForPlayer(b, player)
	if !IsNil(err) {
		return nil, err
	}

	progress := CreateProgressBar(len(legal), fmt.Sprint("depth ", depth))
	defer progress.Close()

	result := make([]Pair[Move, int], len(legal))
	errs := make([]Error, len(legal))

	var wg sync.WaitGroup
	var progressLock sync.Mutex
	for i, m := range legal {
		i, m := i, m
		wg.Add(1)
		go func() {
			defer wg.Done()
			child := b.Copy()
			child.Apply(m)
			count, err := Perft(child, player.Other(), depth-1)
			result[i] = Pair[Move, int]{First: m, Second: count}
			errs[i] = err

			progressLock.Lock()
			progress.Add(1)
			progressLock.Unlock()
		}()
	}
	wg.Wait()

	return result, Join(errs...)
}

func main() {
	depth := 4
	fen := board.InitialPositionFen

	for _, arg := range os.Args[1:] {
		if arg == "profile" {
			p := profile.Start(profile.ProfilePath("data/CmdPerftMain"))
			defer p.Stop()
		} else if strings.HasPrefix(arg, "depth=") {
			d, err := WrapReturn(strconv.Atoi(arg[len("depth="):]))
			if !IsNil(err) || d < 1 {
				fmt.Fprintln(os.Stderr, "invalid depth", arg)
				os.Exit(1)
			}
			depth = d
		} else if strings.HasPrefix(arg, "fen=") {
			fen = arg[len("fen="):]
		} else {
			fmt.Fprintln(os.Stderr, "unknown arg", arg)
			os.Exit(1)
		}
	}

	b, player, err := board.BoardFromFenString(fen)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(b.Unicode())

	start := time.Now()
	counts, err := divide(b, player, depth)
	elapsed := time.Since(start)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := message.NewPrinter(language.English)
	for _, c := range counts {
		p.Printf("%v: %d\n", c.First, c.Second)
	}
	total := ReduceSlice(counts, 0, func(acc int, c Pair[Move, int]) int {
		return acc + c.Second
	})

	p.Printf("perft(%d) = %d in %v (%v nodes/s)\n",
		depth, total, elapsed.Round(time.Millisecond),
		humanize.SIWithDigits(float64(total)/elapsed.Seconds(), 1, ""))
	fmt.Println("move buffers:", StatsMoveBuffer())
}
