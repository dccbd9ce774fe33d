// Package pathresult defines the result type both solvers return, so the
// driver can compare them structurally without caring which solver
// produced which value (spec.md §4.3, §4.4, §6).
package pathresult

// Result is success, the optimal cost and the ordered path from start to
// target inclusive. Path is nil when Success is false.
type Result struct {
	Success bool
	Cost    float64
	Path    []int // cell IDs, start to target inclusive
}
