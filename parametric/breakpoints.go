package parametric

import "math"

// Breakpoint marks the upper bound of a lambda interval on which one source
// set stays optimal. SourceSetIndicator has one entry per original node,
// 1 for the source side.
type Breakpoint struct {
	Lambda             float64
	SourceSetIndicator []int
}

// breakpointStore accumulates breakpoints in emission order. The recursion
// emits lower sub-intervals before higher ones, so the order is ascending by
// construction.
type breakpointStore struct {
	items []Breakpoint
}

// add appends a breakpoint, deep-copying the indicator: callers reuse their
// buffers across recursion levels.
func (s *breakpointStore) add(lambda float64, indicator []int) {
	s.items = append(s.items, Breakpoint{
		Lambda:             lambda,
		SourceSetIndicator: append([]int(nil), indicator...),
	})
}

// removeDuplicates collapses runs of equal lambda values (within tol),
// keeping the first of each run.
func (s *breakpointStore) removeDuplicates(tol float64) {
	if len(s.items) < 2 {
		return
	}
	kept := s.items[:1]
	for _, bp := range s.items[1:] {
		if math.Abs(bp.Lambda-kept[len(kept)-1].Lambda) <= tol {
			continue
		}
		kept = append(kept, bp)
	}
	s.items = kept
}
