package live

import (
	"context"
	"sync"

	"gitlab.com/pnathan/boggle/src/lib/boggle"
)

// Loader builds a dictionary from a source location.
type Loader func(ctx context.Context, source string) (*boggle.Dictionary, error)

// InternalDictionary is the dictionary a running server solves against.
// Reload builds a complete replacement before swapping it in, so readers
// only ever see a fully loaded index or the previous one.
type InternalDictionary struct {
	Mutex  sync.RWMutex
	solver *boggle.Solver
	source string
	load   Loader
}

// NewDictionary starts unloaded; solves return nothing until Reload succeeds.
func NewDictionary(source string, load Loader) *InternalDictionary {
	return &InternalDictionary{
		solver: boggle.NewSolver(boggle.NewDictionary()),
		source: source,
		load:   load,
	}
}

// Solver returns the current solver. It stays valid after a later swap.
func (d *InternalDictionary) Solver() *boggle.Solver {
	d.Mutex.RLock()
	defer d.Mutex.RUnlock()
	return d.solver
}

func (d *InternalDictionary) Source() string {
	d.Mutex.RLock()
	defer d.Mutex.RUnlock()
	return d.source
}

// SwapIn replaces the dictionary wholesale.
func (d *InternalDictionary) SwapIn(dict *boggle.Dictionary) {
	solver := boggle.NewSolver(dict)
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.solver = solver
}

// Reload reads the source again. On failure the current dictionary is kept.
func (d *InternalDictionary) Reload(ctx context.Context) error {
	dict, err := d.load(ctx, d.Source())
	if err != nil {
		return err
	}
	d.SwapIn(dict)
	return nil
}

func (d *InternalDictionary) Ready() bool {
	return d.Solver().Dictionary().Ready()
}

func (d *InternalDictionary) Len() int {
	return d.Solver().Dictionary().Len()
}
