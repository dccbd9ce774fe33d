package sequential

import "container/heap"

// entry is one open-set entry: a cell ID at a given priority. Duplicate
// entries for the same cell are tolerated; stale ones are discarded after
// pop because their cell is already in the closed set (spec.md §3, §9).
type entry struct {
	id int
	f  float64
}

// openSet is a binary-heap priority queue ordered by f ascending, adapted
// from the teacher's PriorityQueue but simplified: it no longer needs a
// coordinate->index map because staleness is resolved against the global
// node table rather than by mutating in place.
type openSet struct {
	entries []entry
}

func newOpenSet() *openSet {
	os := &openSet{entries: make([]entry, 0, 64)}
	heap.Init(os)
	return os
}

func (os *openSet) Len() int { return len(os.entries) }

func (os *openSet) Less(i, j int) bool { return os.entries[i].f < os.entries[j].f }

func (os *openSet) Swap(i, j int) { os.entries[i], os.entries[j] = os.entries[j], os.entries[i] }

func (os *openSet) Push(x any) { os.entries = append(os.entries, x.(entry)) }

func (os *openSet) Pop() any {
	n := len(os.entries)
	e := os.entries[n-1]
	os.entries = os.entries[:n-1]
	return e
}

// push inserts a new open-set entry. Use heap.Push directly, not Push,
// to keep heap invariants; this wrapper exists for call-site clarity.
func (os *openSet) push(id int, f float64) {
	heap.Push(os, entry{id: id, f: f})
}

func (os *openSet) empty() bool { return len(os.entries) == 0 }

// pop removes and returns the minimum-f entry.
func (os *openSet) pop() entry {
	return heap.Pop(os).(entry)
}
