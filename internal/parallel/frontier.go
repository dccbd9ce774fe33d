package parallel

import "sort"

// item is one open-set entry: a cell, its priority at insertion time and
// the arena version it was relaxed at, used to recognise stale entries at
// extraction time without mutating the structure in place.
type item struct {
	id      int
	f       float64
	version uint32
}

// frontier is the parallel open set: a two-level structure per spec.md
// §4.4.2's "staging buffer" realisation. Insertions during a round land in
// an unsorted staging slice; at the end of the round the staging slice is
// sorted and merged into the already-sorted active slice in one pass,
// keeping extractTopK a cheap prefix read.
type frontier struct {
	active  []item // kept sorted ascending by f
	staging []item // unsorted, appended to by the round just finished
}

func newFrontier() *frontier {
	return &frontier{}
}

// insertBatch appends entries to the staging buffer. It is not safe for
// concurrent use; the solver calls it from a single goroutine once per
// round with every accepted entry.
func (fr *frontier) insertBatch(items []item) {
	fr.staging = append(fr.staging, items...)
}

// merge folds the staging buffer into the sorted active slice and clears
// staging, satisfying extractTopK's invariant for the next round.
func (fr *frontier) merge() {
	if len(fr.staging) == 0 {
		return
	}
	sort.Slice(fr.staging, func(i, j int) bool { return fr.staging[i].f < fr.staging[j].f })
	merged := make([]item, 0, len(fr.active)+len(fr.staging))
	i, j := 0, 0
	for i < len(fr.active) && j < len(fr.staging) {
		if fr.active[i].f <= fr.staging[j].f {
			merged = append(merged, fr.active[i])
			i++
		} else {
			merged = append(merged, fr.staging[j])
			j++
		}
	}
	merged = append(merged, fr.active[i:]...)
	merged = append(merged, fr.staging[j:]...)
	fr.active = merged
	fr.staging = fr.staging[:0]
}

// extractTopK removes up to k minimum-f entries from the active slice. The
// invariant it preserves: every returned entry's f is <= the f of any
// entry left behind (spec.md §4.4.2).
func (fr *frontier) extractTopK(k int) []item {
	if k > len(fr.active) {
		k = len(fr.active)
	}
	batch := fr.active[:k]
	fr.active = fr.active[k:]
	return batch
}

// minF returns the smallest f remaining in the active slice, and whether
// the slice is non-empty. Used by the termination check (spec.md §4.4.1
// step 2): the batch's extracted minimum must be <= this value.
func (fr *frontier) minF() (float64, bool) {
	if len(fr.active) == 0 {
		return 0, false
	}
	return fr.active[0].f, true
}

func (fr *frontier) empty() bool {
	return len(fr.active) == 0 && len(fr.staging) == 0
}
