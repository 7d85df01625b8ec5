// Package dfg runs reaching-definitions dataflow analysis over a
// control-flow graph built by pkg/cfg: definition collection, gen/kill
// derivation and the iterative fixed-point solver.
package dfg

import (
	"sort"
	"strconv"
	"strings"
)

// DefSet is a set of definition identifiers ("D1", "D2", ...).
type DefSet map[string]struct{}

// NewDefSet builds a set from the given identifiers.
func NewDefSet(ids ...string) DefSet {
	s := make(DefSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts an identifier.
func (s DefSet) Add(id string) { s[id] = struct{}{} }

// Contains reports membership.
func (s DefSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy.
func (s DefSet) Clone() DefSet {
	c := make(DefSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Union returns a new set holding every member of s and o.
func (s DefSet) Union(o DefSet) DefSet {
	u := s.Clone()
	for id := range o {
		u[id] = struct{}{}
	}
	return u
}

// Minus returns the members of s not in o.
func (s DefSet) Minus(o DefSet) DefSet {
	d := make(DefSet)
	for id := range s {
		if !o.Contains(id) {
			d[id] = struct{}{}
		}
	}
	return d
}

// Equal reports whether s and o hold the same members.
func (s DefSet) Equal(o DefSet) bool {
	if len(s) != len(o) {
		return false
	}
	for id := range s {
		if !o.Contains(id) {
			return false
		}
	}
	return true
}

// Superset reports whether s contains every member of o.
func (s DefSet) Superset(o DefSet) bool {
	for id := range o {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// Sorted returns the identifiers ordered by their numeric suffix, so D2
// sorts before D10.
func (s DefSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, ei := strconv.Atoi(strings.TrimPrefix(ids[i], "D"))
		nj, ej := strconv.Atoi(strings.TrimPrefix(ids[j], "D"))
		if ei == nil && ej == nil {
			return ni < nj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// String renders the set brace-delimited and comma-joined, "{}" when
// empty. This is the form the tabular reports persist.
func (s DefSet) String() string {
	return "{" + strings.Join(s.Sorted(), ",") + "}"
}
