// Package netattr holds the four nodal-attribute-kind arrays (binary,
// categorical, continuous, set) plus the snowball-zone and cERGM-term
// overlays, factored out of netgraph so file loaders (package netio) and
// the change-statistics catalogue (package effect) can depend on a narrow
// type instead of the whole graph store.
//
// Each attribute kind owns its own per-attribute integer index space: a
// (Kind, index) pair, plus an optional second/third index for dyadic
// distance effects, uniquely names one attribute. Arrays are read-only
// after load; NA policy is per-kind (see doc comments below).
package netattr

import "math"

// Kind enumerates the four attribute families.
type Kind int

const (
	// Binary attributes hold 0, 1, or NA.
	Binary Kind = iota
	// Categorical attributes hold a non-negative integer, or NA.
	Categorical
	// Continuous attributes hold an IEEE-754 double; NaN denotes NA.
	Continuous
	// Set attributes hold a bit/element vector per node, or a whole-value NA.
	Set
)

func (k Kind) String() string {
	switch k {
	case Binary:
		return "binary"
	case Categorical:
		return "categorical"
	case Continuous:
		return "continuous"
	case Set:
		return "set"
	default:
		return "unknown"
	}
}

// NABinary and NACategorical are the sentinel NA encodings for their kinds.
// Continuous NA is math.NaN(); Set NA is represented by a nil element slice.
const (
	NABinary      int8 = -1
	NACategorical int  = -1
)

// IsNAContinuous reports whether v represents the continuous NA sentinel.
func IsNAContinuous(v float64) bool { return math.IsNaN(v) }

// BinaryAttr is one binary attribute: one value per node, indexed by node id.
type BinaryAttr struct {
	Name   string
	Values []int8 // 0, 1, or NABinary
}

// Get returns the value at node, and whether it is NA.
func (a *BinaryAttr) Get(node int) (int8, bool) {
	v := a.Values[node]
	return v, v == NABinary
}

// CategoricalAttr is one categorical attribute.
type CategoricalAttr struct {
	Name   string
	Values []int // non-negative integer, or NACategorical
}

// Get returns the value at node, and whether it is NA.
func (a *CategoricalAttr) Get(node int) (int, bool) {
	v := a.Values[node]
	return v, v == NACategorical
}

// ContinuousAttr is one continuous attribute.
type ContinuousAttr struct {
	Name   string
	Values []float64 // NaN denotes NA
}

// Get returns the value at node, and whether it is NA.
func (a *ContinuousAttr) Get(node int) (float64, bool) {
	v := a.Values[node]
	return v, IsNAContinuous(v)
}

// SetAttr is one set-valued attribute. Size is one more than the maximum
// integer seen across all nodes for this attribute (see netio's loader);
// a nil Values[node] slice denotes NA for that node (distinct from the
// empty set, which is a non-nil zero-length slice).
type SetAttr struct {
	Name   string
	Size   int
	Values [][]int // per-node sorted element list, or nil for NA
}

// Get returns the element list at node, and whether it is NA.
func (a *SetAttr) Get(node int) ([]int, bool) {
	v := a.Values[node]
	return v, v == nil
}

// Has reports whether node's set contains element. NA sets never contain
// anything.
func (a *SetAttr) Has(node, element int) bool {
	for _, e := range a.Values[node] {
		if e == element {
			return true
		}
	}
	return false
}

// Jaccard returns the Jaccard similarity of node u and node v's sets:
// |intersection| / |union|. Returns (0, false) if either side is NA.
func (a *SetAttr) Jaccard(u, v int) (float64, bool) {
	su, okU := a.Get(u)
	sv, okV := a.Get(v)
	if okU || okV {
		return 0, false
	}
	if len(su) == 0 && len(sv) == 0 {
		return 0, true
	}
	present := make(map[int]struct{}, len(su)+len(sv))
	for _, e := range su {
		present[e] = struct{}{}
	}
	union := len(present)
	inter := 0
	for _, e := range sv {
		if _, ok := present[e]; ok {
			inter++
		} else {
			union++
		}
	}
	return float64(inter) / float64(union), true
}

// Table holds all loaded attributes of every kind, indexed within their
// kind by load order. Lifecycle: populated once by netio, then read-only.
type Table struct {
	Binary      []*BinaryAttr
	Categorical []*CategoricalAttr
	Continuous  []*ContinuousAttr
	Set         []*SetAttr
}

// NewTable returns an empty attribute table.
func NewTable() *Table {
	return &Table{}
}

// DyadicDistance is a 2- or 3-tuple of continuous-attribute indices used by
// GeoDistance/logGeoDistance (latitude, longitude) or EuclideanDistance
// (x, y, z). A third index of -1 means "2-tuple, no z".
type DyadicDistance struct {
	AttrX, AttrY, AttrZ int
}

// Is3D reports whether this descriptor carries a third coordinate.
func (d DyadicDistance) Is3D() bool { return d.AttrZ >= 0 }

// Overlay holds the snowball-zone and cERGM-term per-node overlays and
// their derived sets, per spec.md's "Zone / term overlays".
type Overlay struct {
	Zone            []int // per-node zone number in [0, MaxZone], or -1 if unset
	Term            []int // per-node term number in [0, MaxTerm], or -1 if unset
	MaxZone         int
	MaxTerm         int
	PrevWaveDegree  []int // per-node count of ties to zone-1 (snowball)
	innerNodes      []int // cached: zone < MaxZone
	maxTermNodes    []int // cached: term == MaxTerm
}

// NewOverlay allocates an Overlay sized for n nodes with zones/terms unset.
func NewOverlay(n int) *Overlay {
	o := &Overlay{
		Zone:           make([]int, n),
		Term:           make([]int, n),
		PrevWaveDegree: make([]int, n),
	}
	for i := range o.Zone {
		o.Zone[i] = -1
		o.Term[i] = -1
	}
	return o
}

// Rebuild recomputes InnerNodes/MaxTermNodes from Zone/Term/MaxZone/MaxTerm.
// Call after zones/terms are loaded or mutated.
func (o *Overlay) Rebuild() {
	o.innerNodes = o.innerNodes[:0]
	o.maxTermNodes = o.maxTermNodes[:0]
	for v, z := range o.Zone {
		if z >= 0 && z < o.MaxZone {
			o.innerNodes = append(o.innerNodes, v)
		}
	}
	for v, t := range o.Term {
		if t == o.MaxTerm {
			o.maxTermNodes = append(o.maxTermNodes, v)
		}
	}
}

// InnerNodes returns nodes with zone strictly less than MaxZone.
func (o *Overlay) InnerNodes() []int { return o.innerNodes }

// MaxTermNodes returns nodes whose term equals MaxTerm.
func (o *Overlay) MaxTermNodes() []int { return o.maxTermNodes }

// AdjacentZones reports whether u and v's zones differ by at most one,
// the precondition for any tie's endpoints under snowball conditioning.
func (o *Overlay) AdjacentZones(u, v int) bool {
	d := o.Zone[u] - o.Zone[v]
	if d < 0 {
		d = -d
	}
	return d <= 1
}

// HasZones reports whether any node has been assigned a snowball zone,
// i.e. whether a zone file was loaded for this overlay.
func (o *Overlay) HasZones() bool {
	for _, z := range o.Zone {
		if z >= 0 {
			return true
		}
	}
	return false
}

// HasTerms reports whether any node has been assigned a cERGM term, i.e.
// whether a term file was loaded for this overlay.
func (o *Overlay) HasTerms() bool {
	for _, t := range o.Term {
		if t >= 0 {
			return true
		}
	}
	return false
}

// IsMaxTermNode reports whether v is a cERGM max-term sender.
func (o *Overlay) IsMaxTermNode(v int) bool { return o.Term[v] == o.MaxTerm }
