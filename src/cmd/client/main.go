package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/boggle/src/lib/boggle"
	"gitlab.com/pnathan/boggle/src/lib/boggleapi"
	"gitlab.com/pnathan/boggle/src/lib/log"
)

func MustMarshal(v any) []byte {
	b := new(bytes.Buffer)
	encoder := json.NewEncoder(b)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(v)
	if err != nil {
		panic(err)
	}

	return b.Bytes()
}

func Moan(complaint error) {
	log.Fatal("", zap.Error(complaint))
}

// cells validates a typed grid locally before it goes over the wire.
func cells(grid string) []string {
	board, err := boggle.ParseBoard(grid)
	if err != nil {
		Moan(err)
	}
	return board.Cells()
}

func main() {
	parser := argparse.NewParser("boggle client", "boggle solver client")

	endpoint := parser.String("e", "endpoint", &argparse.Options{Required: false, Help: "endpoint to address", Default: "http://localhost:1337"})

	solveCmd := parser.NewCommand("solve", "list every word on a board")
	solveGrid := solveCmd.String("g", "grid", &argparse.Options{Required: true, Help: "board letters, row by row"})

	checkCmd := parser.NewCommand("check", "check one word against a board")
	checkGrid := checkCmd.String("g", "grid", &argparse.Options{Required: true, Help: "board letters, row by row"})
	checkWord := checkCmd.String("w", "word", &argparse.Options{Required: true, Help: "word to check"})

	missedCmd := parser.NewCommand("missed", "list the words a player did not find")
	missedGrid := missedCmd.String("g", "grid", &argparse.Options{Required: true, Help: "board letters, row by row"})
	missedFound := missedCmd.String("f", "found", &argparse.Options{Required: false, Help: "comma separated words already found"})

	rollCmd := parser.NewCommand("roll", "roll a board")
	rollSize := rollCmd.Int("s", "size", &argparse.Options{Required: false, Help: "edge length; server default when unset"})
	rollID := rollCmd.String("i", "id", &argparse.Options{Required: false, Help: "replay the board with this id"})

	statsCmd := parser.NewCommand("stats", "show dictionary statistics")
	reloadCmd := parser.NewCommand("reload", "make the server re-read its dictionary")

	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		return
	}
	defer log.Sync()

	var out any
	switch {
	case solveCmd.Happened():
		out, err = boggleapi.Solve(cells(*solveGrid), *endpoint)
	case checkCmd.Happened():
		out, err = boggleapi.Check(cells(*checkGrid), *checkWord, *endpoint)
	case missedCmd.Happened():
		found := []string{}
		for _, w := range strings.Split(*missedFound, ",") {
			if w = strings.TrimSpace(w); w != "" {
				found = append(found, w)
			}
		}
		out, err = boggleapi.Missed(cells(*missedGrid), found, *endpoint)
	case rollCmd.Happened():
		out, err = boggleapi.RollBoard(*rollSize, *rollID, *endpoint)
	case statsCmd.Happened():
		out, err = boggleapi.GetStatistics(*endpoint)
	case reloadCmd.Happened():
		out, err = boggleapi.ReloadDictionary(*endpoint)
	default:
		err = fmt.Errorf("can't happen")
	}
	if err != nil {
		Moan(err)
	}
	fmt.Println(string(MustMarshal(out)))
}
