package bottomup

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/bottomup/sparse"
)

// Table is the transition table of a bottom-up automaton. Rows are tuples of
// children states, columns are node labels. A table cell holds a non-negative
// int32, usually an index into a slice of transition results kept by the
// client automaton.
//
// Tuples and labels are interned when first seen, so row and column numbers
// reflect insertion order. The cells themselves are stored in a sparse matrix.
type Table struct {
	matrix *sparse.IntMatrix
	rows   map[string]int // encoded tuple → row
	cols   map[string]int // label → column
	tuples []string       // row → encoded tuple
	labels []string       // column → label
}

// NewTable creates an empty transition table.
func NewTable() *Table {
	return &Table{
		matrix: sparse.NewIntMatrix(0, 0, sparse.DefaultNullValue),
		rows:   make(map[string]int),
		cols:   make(map[string]int),
	}
}

// Set enters a value for a key. If the key already has a value, it is
// overwritten (last write wins) and Set returns true.
func (t *Table) Set(key Key, value int32) bool {
	if value < 0 {
		panic(fmt.Sprintf("bottomup.Table.Set() with value < 0: %d", value))
	}
	i, ok := t.rows[key.tuple]
	if !ok {
		i = len(t.tuples)
		t.rows[key.tuple] = i
		t.tuples = append(t.tuples, key.tuple)
	}
	j, ok := t.cols[key.Label]
	if !ok {
		j = len(t.labels)
		t.cols[key.Label] = j
		t.labels = append(t.labels, key.Label)
	}
	overridden := t.matrix.Value(i, j) != t.matrix.NullValue()
	if overridden {
		tracer().Debugf("transition for %s overridden", key)
	}
	t.matrix.Set(i, j, value)
	return overridden
}

// Value returns the value for a key, if present.
func (t *Table) Value(key Key) (int32, bool) {
	i, ok := t.rows[key.tuple]
	if !ok {
		return 0, false
	}
	j, ok := t.cols[key.Label]
	if !ok {
		return 0, false
	}
	v := t.matrix.Value(i, j)
	if v == t.matrix.NullValue() {
		return 0, false
	}
	return v, true
}

// Lookup returns the value for a tuple of children states and a label, if present.
func (t *Table) Lookup(children arbor.Tuple, label string) (int32, bool) {
	return t.Value(KeyFor(children, label))
}

// Len returns the number of entries in t.
func (t *Table) Len() int {
	return t.matrix.ValueCount()
}

// Keys returns all keys of t, sorted by label and then by children tuple.
func (t *Table) Keys() []Key {
	keys := make([]interface{}, 0, t.Len())
	t.matrix.Each(func(i, j int, _ int32) {
		keys = append(keys, Key{tuple: t.tuples[i], Label: t.labels[j]})
	})
	utils.Sort(keys, keyComparator)
	r := make([]Key, len(keys))
	for i, k := range keys {
		r[i] = k.(Key)
	}
	return r
}

// Each calls f for every entry of t, in the order of Keys().
func (t *Table) Each(f func(key Key, value int32)) {
	for _, k := range t.Keys() {
		v, _ := t.Value(k)
		f(k, v)
	}
}

// Labels returns all labels occuring in t, in insertion order.
func (t *Table) Labels() []string {
	return append([]string(nil), t.labels...)
}

// Tuples returns all children tuples occuring in t, in insertion order.
func (t *Table) Tuples() []arbor.Tuple {
	r := make([]arbor.Tuple, len(t.tuples))
	for i, enc := range t.tuples {
		r[i] = decodeTuple(enc)
	}
	return r
}

func keyComparator(a, b interface{}) int {
	return compareKeys(a.(Key), b.(Key))
}
