// File: validate.go
// Role: boundary validation helpers that return ergmerr.Input-class errors
// instead of panicking, for use by netio/ergmconf when data originates
// from an external file rather than from the sampler's own bookkeeping.
package netgraph

// ValidateNodeID reports ErrOutOfRange if id is not in [0, n).
func ValidateNodeID(n, id int) error {
	if id < 0 || id >= n {
		return ErrOutOfRange
	}
	return nil
}

// CanToggle reports whether i and j may currently be toggled without
// panicking: in range, not a disallowed self-loop, and (for bipartite
// graphs) crossing modes. Loaders should call this before InsertArc/
// InsertEdge on untrusted input.
func (g *Graph) CanToggle(i, j int) error {
	if err := ValidateNodeID(g.n, i); err != nil {
		return err
	}
	if err := ValidateNodeID(g.n, j); err != nil {
		return err
	}
	if i == j && !g.loopsAllowed() {
		return ErrSelfLoop
	}
	if g.bipartite && g.modeOf(i) == g.modeOf(j) {
		return ErrCrossMode
	}
	return nil
}
