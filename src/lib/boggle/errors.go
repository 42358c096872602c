package boggle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBoardShape means the number of cells is not a perfect square.
	ErrInvalidBoardShape = errors.New("invalid board shape")
	// ErrInvalidCharacter means a cell is not a single letter a-z.
	ErrInvalidCharacter = errors.New("invalid board character")
	// ErrInvalidBoardSize is returned when rolling a board with an edge below 1.
	ErrInvalidBoardSize = errors.New("invalid board size")
	// ErrDictionaryState is returned by Load on an index that has already
	// been loaded, or whose earlier load failed.
	ErrDictionaryState = errors.New("dictionary already loaded or failed")
)

// DictionaryLoadError wraps a failure to read the word list.
type DictionaryLoadError struct {
	Source string
	Err    error
}

func (e *DictionaryLoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("dictionary load: %v", e.Err)
	}
	return fmt.Sprintf("dictionary load %s: %v", e.Source, e.Err)
}

func (e *DictionaryLoadError) Unwrap() error {
	return e.Err
}
