package sequential

// node is the sequential solver's record for one discovered cell
// (spec.md §3's node record). Predecessor is a cell ID rather than a
// pointer, so the global table can own every record in a single slice.
type node struct {
	g    float64
	f    float64
	pred int // predecessor cell ID, -1 for the start
	seen bool
}

const noPredecessor = -1
