// Package shift models the per-store shift table: named work periods
// with "HH:MM" start and end clock times. A shift whose end precedes its
// start crosses midnight.
package shift

import "strings"

// Definition is one named shift as configured for a store.
type Definition struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsOvernight reports whether the shift crosses midnight (end at or
// before start on the raw clock).
func (d Definition) IsOvernight() bool {
	return d.End <= d.Start
}

// Registry is an insertion-ordered mapping from normalized shift name to
// Definition, scoped to one store. Iteration order is insertion order;
// the Shift Detector's tie-break depends on it.
type Registry struct {
	names []string
	defs  map[string]Definition
}

func NewRegistry() Registry {
	return Registry{defs: make(map[string]Definition)}
}

// NormalizeName lowercases a shift name and collapses whitespace runs to
// single underscores, matching how store configuration keys are stored.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), "_"))
}

// Add inserts or overwrites a definition under its normalized name.
// A duplicate name keeps its original position but takes the new times
// (last write wins).
func (r *Registry) Add(def Definition) {
	key := NormalizeName(def.Name)
	if key == "" {
		return
	}
	def.Name = key
	if _, exists := r.defs[key]; !exists {
		r.names = append(r.names, key)
	}
	r.defs[key] = def
}

// Lookup returns the definition for a normalized shift name. The second
// return value is false when the name is absent; callers decide how to
// degrade, the registry never invents a zero shift.
func (r Registry) Lookup(name string) (Definition, bool) {
	def, ok := r.defs[NormalizeName(name)]
	return def, ok
}

// Names returns the shift names in insertion order.
func (r Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r Registry) Len() int {
	return len(r.names)
}

// DefaultRegistry returns the built-in three-shift table used whenever a
// store has no usable configuration of its own. Each call returns a
// fresh value so callers can never mutate shared state.
func DefaultRegistry() Registry {
	reg := NewRegistry()
	reg.Add(Definition{Name: "pagi", Start: "07:00", End: "15:00"})
	reg.Add(Definition{Name: "siang", Start: "15:00", End: "23:00"})
	reg.Add(Definition{Name: "malam", Start: "23:00", End: "07:00"})
	return reg
}
