package boggle

import (
	"fmt"
	"strings"
	"unicode"
)

// Cell addresses one square of a Board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a square letter grid stored row-major. A Board is immutable
// once built.
type Board struct {
	n     int
	cells []byte
}

// NewBoard builds a board from n*n single-letter cells in row-major order.
// Cells must already be lowercase a-z; anything else fails with
// ErrInvalidCharacter rather than silently never matching.
func NewBoard(cells []string) (*Board, error) {
	n, err := edge(len(cells))
	if err != nil {
		return nil, err
	}
	b := &Board{n: n, cells: make([]byte, len(cells))}
	for i, cell := range cells {
		if len(cell) != 1 || cell[0] < 'a' || cell[0] > 'z' {
			return nil, fmt.Errorf("%w: cell %d is %q", ErrInvalidCharacter, i, cell)
		}
		b.cells[i] = cell[0]
	}
	return b, nil
}

// ParseBoard reads a grid typed by a person, e.g. "abcd efgh ijkl mnop".
// Whitespace is ignored and letters are lowercased.
func ParseBoard(s string) (*Board, error) {
	cells := []string{}
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		cells = append(cells, strings.ToLower(string(r)))
	}
	return NewBoard(cells)
}

func edge(length int) (int, error) {
	n := 0
	for n*n < length {
		n++
	}
	if n*n != length {
		return 0, fmt.Errorf("%w: %d cells", ErrInvalidBoardShape, length)
	}
	return n, nil
}

// Size is the edge length n.
func (b *Board) Size() int {
	return b.n
}

func (b *Board) Len() int {
	return len(b.cells)
}

func (b *Board) At(row, col int) byte {
	return b.cells[row*b.n+col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.n && col >= 0 && col < b.n
}

// Cells returns a copy of the grid as one-letter strings, row-major.
func (b *Board) Cells() []string {
	out := make([]string, len(b.cells))
	for i, c := range b.cells {
		out[i] = string(c)
	}
	return out
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.At(r, c))
		}
	}
	return sb.String()
}
