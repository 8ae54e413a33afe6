// Package fieldstore holds the ordered map of extracted document fields.
package fieldstore

import "sort"

// Pair is a single named field value.
type Pair struct {
	Name  string
	Value string
}

// Store is an ordered, immutable mapping of canonical field names to raw
// extracted values. Values are kept exactly as extracted; normalization is
// deferred to comparison time so the original form survives into reports.
type Store struct {
	names  []string
	values map[string]string
}

// New creates a Store from pairs in order. A repeated name overwrites the
// value but keeps the position of the first occurrence.
func New(pairs ...Pair) Store {
	b := NewBuilder()
	for _, p := range pairs {
		b.Set(p.Name, p.Value)
	}
	return b.Build()
}

// Get returns the raw value for name and whether it is present.
func (s Store) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether name is present.
func (s Store) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Names returns the field names in insertion order.
func (s Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of fields.
func (s Store) Len() int { return len(s.names) }

// UnionNames returns the sorted union of field names across two stores.
// Sorting keeps comparison output deterministic regardless of extraction
// order.
func UnionNames(a, b Store) []string {
	seen := make(map[string]bool, a.Len()+b.Len())
	union := make([]string, 0, a.Len()+b.Len())
	for _, names := range [][]string{a.names, b.names} {
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				union = append(union, n)
			}
		}
	}
	sort.Strings(union)
	return union
}

// Builder accumulates fields during an extraction pass and seals them into
// an immutable Store.
type Builder struct {
	names  []string
	values map[string]string
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[string]string)}
}

// Set inserts or overwrites a field. Insertion order is kept; overwriting
// does not move the field.
func (b *Builder) Set(name, value string) {
	if _, ok := b.values[name]; !ok {
		b.names = append(b.names, name)
	}
	b.values[name] = value
}

// SetIfAbsent inserts a field only when it is not present yet.
func (b *Builder) SetIfAbsent(name, value string) {
	if _, ok := b.values[name]; ok {
		return
	}
	b.Set(name, value)
}

// Build seals the Builder into a Store. The Builder must not be reused.
func (b *Builder) Build() Store {
	return Store{names: b.names, values: b.values}
}
