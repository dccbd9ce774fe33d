package parallel

import "sync/atomic"

// record is one node's state in the arena: best known g, predecessor cell
// ID and a version counter bumped on every improvement so open-set entries
// referencing an older version can be recognised as stale (spec.md §3,
// §4.4.3). Records are immutable once published; relaxation publishes a
// new *record rather than mutating fields in place, following the CAS-cell
// pattern used elsewhere in the corpus for lock-free per-key state.
type record struct {
	g       float64
	pred    int32
	version uint32
	closed  bool
}

// arena is the global node table: a contiguous, atomically-updated slice
// indexed by cell ID, shared by every expansion worker. "At most one
// record per cell" and "smallest g wins" (spec.md §3, §4.4.1 step 6) are
// enforced by a compare-and-swap loop in relax.
type arena struct {
	cells []atomic.Pointer[record]
}

func newArena(n int) *arena {
	return &arena{cells: make([]atomic.Pointer[record], n)}
}

// load returns the current record for id, or nil if the cell is unseen.
func (a *arena) load(id int) *record {
	return a.cells[id].Load()
}

// closedAt reports whether id has been finalised.
func (a *arena) closedAt(id int) bool {
	r := a.cells[id].Load()
	return r != nil && r.closed
}

// relax installs (g, pred) at id if it improves on the current record:
// unseen, or g strictly smaller, or equal g with a smaller predecessor id
// (the deterministic tie-break spec.md §4.4.1 step 5 calls for). Returns
// the new version on success so the caller can stamp the open-set entry
// it is about to push.
func (a *arena) relax(id int, g float64, pred int) (version uint32, ok bool) {
	for {
		old := a.cells[id].Load()
		if old != nil {
			if old.closed {
				return 0, false
			}
			if old.g < g {
				return 0, false
			}
			if old.g == g && old.pred <= int32(pred) {
				return 0, false
			}
		}
		var v uint32 = 1
		if old != nil {
			v = old.version + 1
		}
		next := &record{g: g, pred: int32(pred), version: v}
		if a.cells[id].CompareAndSwap(old, next) {
			return v, true
		}
		// Lost the race to a concurrent winner; reread and retry.
	}
}

// close marks id as finalised, preserving its current g and predecessor.
// id must already have a record (it was extracted from the open set).
func (a *arena) close(id int) {
	for {
		old := a.cells[id].Load()
		if old == nil || old.closed {
			return
		}
		next := *old
		next.closed = true
		if a.cells[id].CompareAndSwap(old, &next) {
			return
		}
	}
}

// stale reports whether an open-set entry for id stamped with version is
// no longer the best known record: the cell has since been closed, or a
// strictly newer version has been installed (spec.md §4.4.1 step 1).
func (a *arena) stale(id int, version uint32) bool {
	r := a.cells[id].Load()
	return r == nil || r.closed || r.version != version
}
