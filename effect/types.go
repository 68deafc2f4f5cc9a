package effect

import "github.com/ergmgo/ergmnet/netattr"

// NetworkFilter restricts an effect to directed graphs, undirected graphs,
// or both, per spec.md §4.3 ("each effect is tagged with a network-type
// filter").
type NetworkFilter int

const (
	FilterDirected NetworkFilter = iota
	FilterUndirected
	FilterBoth
)

// ModeFilter restricts an effect to one-mode graphs, two-mode (bipartite)
// graphs, or both.
type ModeFilter int

const (
	ModeOneMode ModeFilter = iota
	ModeTwoMode
	ModeBoth
)

// Effect is one bound catalogue entry: a Kind tag plus whichever
// parameters that Kind requires. Unused parameter fields are zero-valued
// and ignored by Delta.
type Effect struct {
	Kind Kind

	// Lambda is the geometric decay parameter for alternating/k-triangle
	// effects (Lambda > 1).
	Lambda float64

	// AttrKind/AttrIdx select the bound attribute for attribute effects.
	AttrKind netattr.Kind
	AttrIdx  int

	// AttrIdx2/AttrIdx3 extend AttrIdx for dyadic-covariate (2- or 3-tuple)
	// and attribute-pair-interaction effects.
	AttrIdx2 int
	AttrIdx3 int

	// Exponent is alpha/beta for Nodematch-style bipartite attribute
	// effects, in [0, 1].
	Exponent float64

	// ReciprocityGated is carried on the Effect but not read by Delta or
	// set by Bind; reciprocity-restricted matching and difference
	// statistics are the separate *Reciprocity Kinds.
	ReciprocityGated bool
}

// catalogueEntry records the static metadata for one Kind: its network
// and mode filters, used by Bind to reject a configuration requesting an
// effect whose filters disagree with the loaded graph (spec.md §4.3's
// "the binder rejects a configuration requesting an effect whose filters
// disagree with the loaded graph").
type catalogueEntry struct {
	netFilter  NetworkFilter
	modeFilter ModeFilter
}

var catalogue = map[Kind]catalogueEntry{
	KindArc:                 {FilterDirected, ModeBoth},
	KindReciprocity:         {FilterDirected, ModeOneMode},
	KindSink:                {FilterDirected, ModeOneMode},
	KindSource:              {FilterDirected, ModeOneMode},
	KindIsolates:            {FilterDirected, ModeOneMode},
	KindInTwoStars:          {FilterDirected, ModeOneMode},
	KindOutTwoStars:         {FilterDirected, ModeOneMode},
	KindTwoPaths:            {FilterDirected, ModeOneMode},
	KindTransitiveTriangles: {FilterDirected, ModeOneMode},
	KindCyclicTriangles:     {FilterDirected, ModeOneMode},

	KindEdge:         {FilterUndirected, ModeOneMode},
	KindEdgeIsolates: {FilterUndirected, ModeOneMode},
	KindTwoStars:     {FilterUndirected, ModeOneMode},
	KindTriangles:    {FilterUndirected, ModeOneMode},

	KindAltInStars:     {FilterDirected, ModeOneMode},
	KindAltOutStars:    {FilterDirected, ModeOneMode},
	KindAltStars:       {FilterUndirected, ModeOneMode},
	KindAltKTrianglesT: {FilterDirected, ModeOneMode},
	KindAltKTrianglesC: {FilterDirected, ModeOneMode},
	KindAltKTrianglesD: {FilterDirected, ModeOneMode},
	KindAltKTrianglesU: {FilterUndirected, ModeOneMode},
	KindAltTwoPathsT:   {FilterDirected, ModeOneMode},
	KindAltTwoPathsD:   {FilterDirected, ModeOneMode},
	KindAltTwoPathsU:   {FilterUndirected, ModeOneMode},
	KindAltTwoPathsTD:  {FilterDirected, ModeOneMode},

	KindBipartiteEdge:                {FilterUndirected, ModeTwoMode},
	KindBipartiteAltStarsA:           {FilterUndirected, ModeTwoMode},
	KindBipartiteAltStarsB:           {FilterUndirected, ModeTwoMode},
	KindBipartiteAltKCyclesAB:        {FilterUndirected, ModeTwoMode},
	KindBipartiteAltK4Cycles:         {FilterUndirected, ModeTwoMode},
	KindBipartiteFourCyclesNodePower: {FilterUndirected, ModeTwoMode},

	KindSenderBinary:      {FilterBoth, ModeOneMode},
	KindReceiverBinary:    {FilterDirected, ModeOneMode},
	KindInteractionBinary: {FilterBoth, ModeOneMode},

	KindMatching:               {FilterBoth, ModeOneMode},
	KindMismatching:            {FilterBoth, ModeOneMode},
	KindMatchingReciprocity:    {FilterDirected, ModeOneMode},
	KindMismatchingReciprocity: {FilterDirected, ModeOneMode},

	KindContinuousSender:          {FilterDirected, ModeOneMode},
	KindContinuousReceiver:        {FilterDirected, ModeOneMode},
	KindContinuousDiff:            {FilterBoth, ModeOneMode},
	KindContinuousSum:             {FilterBoth, ModeOneMode},
	KindContinuousDiffReciprocity: {FilterDirected, ModeOneMode},
	KindContinuousDiffSign:        {FilterDirected, ModeOneMode},

	KindJaccardSimilarity: {FilterBoth, ModeOneMode},

	KindBipartiteActivity:        {FilterUndirected, ModeTwoMode},
	KindBipartiteTwoPathSum:      {FilterUndirected, ModeTwoMode},
	KindBipartiteTwoPathDiff:     {FilterUndirected, ModeTwoMode},
	KindBipartiteTwoPathMatching: {FilterUndirected, ModeTwoMode},
	KindBipartiteNodematchAlpha:  {FilterUndirected, ModeTwoMode},
	KindBipartiteNodematchBeta:   {FilterUndirected, ModeTwoMode},

	KindGeoDistance:       {FilterBoth, ModeBoth},
	KindLogGeoDistance:    {FilterBoth, ModeBoth},
	KindEuclideanDistance: {FilterBoth, ModeBoth},

	KindAttributePairInteraction: {FilterBoth, ModeBoth},
}

// Compatible reports whether Kind k may be bound against a graph with the
// given directedness and bipartite-ness.
func Compatible(k Kind, directed, bipartite bool) bool {
	entry, ok := catalogue[k]
	if !ok {
		return false
	}
	if entry.netFilter == FilterDirected && !directed {
		return false
	}
	if entry.netFilter == FilterUndirected && directed {
		return false
	}
	wantsTwoMode := entry.modeFilter == ModeTwoMode
	wantsOneMode := entry.modeFilter == ModeOneMode
	if wantsTwoMode && !bipartite {
		return false
	}
	if wantsOneMode && bipartite {
		return false
	}
	return true
}
