package element

import "sync"

type tableKey struct {
	Order   int
	Dim     int
	Spacing NodeSpacing
}

// Table is a lazily populated, immutable-once-built lookup of element
// bases keyed by (order, dimension, spacing). A basis is constructed at
// most once per key; concurrent readers share the built entry without
// further locking. The table is an explicit value passed through
// component boundaries, not an ambient singleton.
type Table struct {
	mu      sync.RWMutex
	entries map[tableKey]*Basis
}

func NewTable() *Table {
	return &Table{
		entries: make(map[tableKey]*Basis),
	}
}

// Basis returns the memoized tensor-product basis for the key, building
// it on first use.
func (t *Table) Basis(order, dim int, spacing NodeSpacing) (b *Basis, err error) {
	key := tableKey{Order: order, Dim: dim, Spacing: spacing}

	t.mu.RLock()
	b, ok := t.entries[key]
	t.mu.RUnlock()
	if ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if b, ok = t.entries[key]; ok { // built while waiting for the lock
		return
	}
	r, err := Nodes(order, spacing)
	if err != nil {
		return nil, err
	}
	lg, err := NewLagrange1D(r)
	if err != nil {
		return nil, err
	}
	lines := make([]*Lagrange1D, dim)
	for d := range lines {
		lines[d] = lg
	}
	if b, err = NewBasis(lines...); err != nil {
		return nil, err
	}
	t.entries[key] = b
	return
}
