package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/boggle/src/lib/boggle"
	"gitlab.com/pnathan/boggle/src/lib/log"
	"gitlab.com/pnathan/boggle/src/lib/wordlist"
)

const (
	red   = "\033[91m"
	reset = "\033[0m"
)

func render(w io.Writer, results []boggle.Result, color bool) {
	fmt.Fprintf(w, "Found %d solutions\n", len(results))
	fmt.Fprintln(w, "Sort results by: score")
	fmt.Fprintf(w, "%-20s %s\n", "Word", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	for _, r := range results {
		if color {
			fmt.Fprintf(w, "%-20s %s%d%s\n", r.Word, red, r.Score, reset)
		} else {
			fmt.Fprintf(w, "%-20s %d\n", r.Word, r.Score)
		}
	}
}

func run(ctx context.Context, w io.Writer, grid, dictionary string, color bool) error {
	board, err := boggle.ParseBoard(grid)
	if err != nil {
		return err
	}
	dict, err := wordlist.Load(ctx, dictionary)
	if err != nil {
		return err
	}
	render(w, boggle.NewSolver(dict).Solve(board), color)
	return nil
}

func main() {
	parser := argparse.NewParser("boggle", "finds every word on a boggle board")

	grid := parser.String("g", "grid", &argparse.Options{Required: true, Help: "letters of the board, row by row, e.g. abcdefghijklmnop"})
	dictionary := parser.String("d", "dictionary", &argparse.Options{Required: false, Help: "word list path or url", Default: "dictionary.txt"})
	noColor := parser.Flag("n", "no-color", &argparse.Options{Help: "plain scores"})
	verbose := parser.Flag("v", "verbose", &argparse.Options{Help: "log to stderr"})
	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		return
	}
	if !*verbose {
		log.SetLogger(zap.NewNop())
	}
	defer log.Sync()

	if err := run(context.Background(), os.Stdout, *grid, *dictionary, !*noColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
