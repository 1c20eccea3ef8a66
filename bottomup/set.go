package bottomup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/arbor"
)

// Set is a sorted set of names, used for the states, the accepting states
// and the alphabet of an automaton. Iteration order is lexicographic.
type Set struct {
	items *treeset.Set
}

// NewSet creates a set from a list of names.
func NewSet(names ...string) *Set {
	s := &Set{items: treeset.NewWithStringComparator()}
	for _, n := range names {
		s.items.Add(n)
	}
	return s
}

// StateSet creates a set from a list of states.
func StateSet(states ...arbor.State) *Set {
	s := NewSet()
	for _, st := range states {
		s.items.Add(string(st))
	}
	return s
}

// Add inserts names into s.
func (s *Set) Add(names ...string) *Set {
	for _, n := range names {
		s.items.Add(n)
	}
	return s
}

// Contains checks if name is a member of s. A nil set contains nothing.
func (s *Set) Contains(name string) bool {
	if s == nil {
		return false
	}
	return s.items.Contains(name)
}

// ContainsState checks if state is a member of s.
func (s *Set) ContainsState(state arbor.State) bool {
	return s.Contains(string(state))
}

// Size returns the number of members of s.
func (s *Set) Size() int {
	if s == nil {
		return 0
	}
	return s.items.Size()
}

// Values returns the members of s in sorted order.
func (s *Set) Values() []string {
	if s == nil {
		return nil
	}
	r := make([]string, 0, s.items.Size())
	it := s.items.Iterator()
	for it.Next() {
		r = append(r, it.Value().(string))
	}
	return r
}

// States returns the members of s as states, in sorted order.
func (s *Set) States() []arbor.State {
	vals := s.Values()
	r := make([]arbor.State, len(vals))
	for i, v := range vals {
		r[i] = arbor.State(v)
	}
	return r
}

func (s *Set) String() string {
	return "{" + strings.Join(s.Values(), ", ") + "}"
}
