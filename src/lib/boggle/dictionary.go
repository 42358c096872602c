package boggle

import (
	"bufio"
	"io"
	"strings"

	"gitlab.com/pnathan/boggle/src/lib/utility/trie"
)

// MinWordLength is the shortest word the index stores.
const MinWordLength = 3

// Dictionary is the word index a Solver searches against. It is written
// exactly once by Load and is read-only afterwards, so any number of
// goroutines may query a ready Dictionary without locking.
type Dictionary struct {
	words  *trie.Trie
	ready  bool
	failed bool
}

func NewDictionary() *Dictionary {
	return &Dictionary{words: trie.New(nil)}
}

// LoadDictionary reads a newline separated word list into a fresh index.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := NewDictionary()
	if err := d.Load(r); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads one word per line. Lines are trimmed and lowercased; anything
// shorter than MinWordLength, containing a byte outside a-z, or longer than
// the read buffer is skipped. A read failure returns a *DictionaryLoadError
// and leaves the index unloaded for good.
func (d *Dictionary) Load(r io.Reader) error {
	if d.ready || d.failed {
		return ErrDictionaryState
	}
	br := bufio.NewReader(r)
	for {
		line, isPrefix, err := br.ReadLine()
		if err == io.EOF {
			break
		}
		if err == nil && isPrefix {
			err = skipRest(br)
			if err == io.EOF {
				break
			}
			if err == nil {
				continue
			}
		}
		if err != nil {
			d.failed = true
			return &DictionaryLoadError{Err: err}
		}
		word := strings.ToLower(strings.TrimSpace(string(line)))
		if len(word) < MinWordLength || !isLetters(word) {
			continue
		}
		d.words.Put(word)
	}
	d.ready = true
	return nil
}

// skipRest drops what is left of a line too long for the buffer.
func skipRest(br *bufio.Reader) error {
	for {
		_, isPrefix, err := br.ReadLine()
		if err != nil || !isPrefix {
			return err
		}
	}
}

func (d *Dictionary) Ready() bool {
	return d != nil && d.ready
}

// Len is the number of distinct words stored.
func (d *Dictionary) Len() int {
	if !d.Ready() {
		return 0
	}
	return d.words.Len()
}

// HasPrefix reports whether any stored word starts with text.
func (d *Dictionary) HasPrefix(text string) bool {
	return d.Ready() && d.words.Exist(text)
}

// IsWord reports whether text is exactly a stored word.
func (d *Dictionary) IsWord(text string) bool {
	return d.Ready() && d.words.IsWord(text)
}

func (d *Dictionary) root() *trie.Node {
	return d.words.Root()
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
