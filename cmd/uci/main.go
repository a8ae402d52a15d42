package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cricklet/chessduel/internal/chessgo"
	. "github.com/cricklet/chessduel/internal/helpers"
	"github.com/cricklet/chessduel/internal/search"
	"github.com/cricklet/chessduel/internal/uci"
	"github.com/pkg/profile"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath("data/CmdUciMain"))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) > 0 && args[0] == "options" {
		for _, option := range search.AllSearchOptions {
			fmt.Println(option)
		}
		return
	}

	searchOptions, err := search.OptionsFromArgs(args...)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := uci.NewUciRunner(chessgo.NewChessGoRunner(
		chessgo.WithSearchOptions(searchOptions),
		chessgo.WithLogger(FuncLogger(
			func(s string) {
				fmt.Print("info string ", strings.TrimSuffix(s, "\n"), "\n")
			})),
	))

	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		input := scanner.Text()
		if input == "quit" {
			break
		}
		result, err := r.HandleInput(input)
		if !IsNil(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}
		for _, v := range result {
			fmt.Println(v)
		}
	}
}
