package boggle

import (
	"context"

	"gitlab.com/pnathan/boggle/src/lib/utility/trie"
)

// neighbours in the eight compass directions.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Solver finds words on boards. It holds no state of its own; one Solver
// may be shared by any number of goroutines.
type Solver struct {
	dict *Dictionary
}

func NewSolver(d *Dictionary) *Solver {
	return &Solver{dict: d}
}

func (s *Solver) Dictionary() *Dictionary {
	return s.dict
}

// Solve returns every dictionary word on b, each once, sorted by score,
// then length, then alphabetically. An unloaded dictionary or an empty
// board gives an empty result.
func (s *Solver) Solve(b *Board) []Result {
	results, _ := s.SolveContext(context.Background(), b)
	return results
}

// SolveContext is Solve with cancellation checked between starting cells.
// A cancelled solve returns ctx.Err() and no results.
func (s *Solver) SolveContext(ctx context.Context, b *Board) ([]Result, error) {
	if !s.dict.Ready() || b == nil || b.Len() == 0 {
		return []Result{}, nil
	}

	st := &search{
		board:   b,
		visited: make([]bool, b.Len()),
		word:    make([]byte, 0, b.Len()),
		found:   map[string]struct{}{},
	}
	root := s.dict.root()
	for row := 0; row < b.n; row++ {
		for col := 0; col < b.n; col++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			st.walk(row, col, root)
		}
	}

	results := make([]Result, 0, len(st.found))
	for word := range st.found {
		results = append(results, Result{Word: word, Score: ScoreOf(word)})
	}
	sortResults(results)
	return results, nil
}

// Find returns a path spelling word on b when word is in the dictionary.
// It agrees with membership in Solve(b) but only searches for word.
func (s *Solver) Find(b *Board, word string) ([]Cell, bool) {
	if !s.dict.IsWord(word) {
		return nil, false
	}
	return Trace(b, word)
}

// Contains reports whether word is a dictionary word that can be traced on b.
func (s *Solver) Contains(b *Board, word string) bool {
	_, ok := s.Find(b, word)
	return ok
}

type search struct {
	board   *Board
	visited []bool
	word    []byte
	found   map[string]struct{}
}

// walk extends the current path onto (row, col). node is the trie position
// of the path so far; the cell is skipped when its letter has no edge.
func (s *search) walk(row, col int, node *trie.Node) {
	idx := row*s.board.n + col
	c := s.board.cells[idx]
	next := node.Child(c)
	if next == nil {
		return
	}

	s.visited[idx] = true
	s.word = append(s.word, c)
	if next.Terminal() {
		s.found[string(s.word)] = struct{}{}
	}
	for _, d := range directions {
		r, k := row+d[0], col+d[1]
		if s.board.inBounds(r, k) && !s.visited[r*s.board.n+k] {
			s.walk(r, k, next)
		}
	}
	s.word = s.word[:len(s.word)-1]
	s.visited[idx] = false
}

// Trace finds a path of adjacent, unrepeated cells spelling word and
// returns the first one found. No dictionary is consulted.
func Trace(b *Board, word string) ([]Cell, bool) {
	if b == nil || word == "" || len(word) > b.Len() {
		return nil, false
	}
	t := &tracer{
		board:   b,
		word:    word,
		visited: make([]bool, b.Len()),
		path:    make([]Cell, 0, len(word)),
	}
	for row := 0; row < b.n; row++ {
		for col := 0; col < b.n; col++ {
			if t.follow(row, col, 0) {
				return t.path, true
			}
		}
	}
	return nil, false
}

type tracer struct {
	board   *Board
	word    string
	visited []bool
	path    []Cell
}

func (t *tracer) follow(row, col, i int) bool {
	idx := row*t.board.n + col
	if t.visited[idx] || t.board.cells[idx] != t.word[i] {
		return false
	}
	t.visited[idx] = true
	t.path = append(t.path, Cell{Row: row, Col: col})
	if i == len(t.word)-1 {
		return true
	}
	for _, d := range directions {
		r, k := row+d[0], col+d[1]
		if t.board.inBounds(r, k) && t.follow(r, k, i+1) {
			return true
		}
	}
	t.path = t.path[:len(t.path)-1]
	t.visited[idx] = false
	return false
}
