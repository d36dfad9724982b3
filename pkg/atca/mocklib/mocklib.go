package mocklib

// Table is an in-memory symbol size table implementing atca.SizeResolver.
// The zero value is not usable; call New.
type Table struct {
	sizes    map[string]int
	resolved []string
}

// New returns an empty table.
func New() *Table {
	return &Table{sizes: make(map[string]int)}
}

// SetSize registers the byte size the table reports for name.
func (t *Table) SetSize(name string, size int) {
	t.sizes[name] = size
}

// ResolveSize implements atca.SizeResolver.
func (t *Table) ResolveSize(name string) (int, bool) {
	t.resolved = append(t.resolved, name)
	n, ok := t.sizes[name]
	return n, ok
}

// Resolved returns the names resolved so far, in order, including misses.
func (t *Table) Resolved() []string {
	out := make([]string, len(t.resolved))
	copy(out, t.resolved)
	return out
}
