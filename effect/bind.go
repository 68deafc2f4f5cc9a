package effect

import (
	"strings"

	"github.com/ergmgo/ergmnet/netgraph"
)

// nameToKind is keyed by lower-cased catalogue name.
var nameToKind map[string]Kind

func init() {
	nameToKind = make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		nameToKind[strings.ToLower(name)] = k
	}
}

// Spec is one unbound, parsed effect request: a catalogue name plus
// whichever raw parameters ergmconf's parser extracted from the
// configuration mini-language. Bind resolves the name against the
// catalogue and validates every parameter against the loaded graph.
type Spec struct {
	Name     string
	Lambda   float64
	AttrKind string // "binary" | "categorical" | "continuous" | "set" | ""
	AttrIdx  int
	AttrIdx2 int
	AttrIdx3 int
	Exponent float64
}

// Bind resolves a list of parsed effect Specs into catalogue Effects,
// matching names case-insensitively and
// rejecting any name unknown to the catalogue, any Kind whose network/mode
// filter disagrees with g, any out-of-range attribute index, and any
// alternating-family Kind missing a usable Lambda (> 1).
func Bind(specs []Spec, g *netgraph.Graph) ([]Effect, error) {
	out := make([]Effect, 0, len(specs))
	for _, s := range specs {
		k, ok := nameToKind[strings.ToLower(s.Name)]
		if !ok {
			return nil, ErrUnknownEffectName(s.Name)
		}
		if !Compatible(k, g.Directed(), g.Bipartite()) {
			return nil, ErrFilterMismatch(k)
		}
		if isAlternating(k) && s.Lambda <= 1 {
			return nil, ErrMissingLambda(k)
		}
		if err := checkAttrBounds(g, k, s); err != nil {
			return nil, err
		}
		out = append(out, Effect{
			Kind:     k,
			Lambda:   s.Lambda,
			AttrIdx:  s.AttrIdx,
			AttrIdx2: s.AttrIdx2,
			AttrIdx3: s.AttrIdx3,
			Exponent: s.Exponent,
		})
	}
	return out, nil
}

func isAlternating(k Kind) bool {
	switch k {
	case KindAltInStars, KindAltOutStars, KindAltStars,
		KindAltKTrianglesT, KindAltKTrianglesC, KindAltKTrianglesD, KindAltKTrianglesU,
		KindAltTwoPathsT, KindAltTwoPathsD, KindAltTwoPathsU, KindAltTwoPathsTD,
		KindBipartiteAltStarsA, KindBipartiteAltStarsB,
		KindBipartiteAltKCyclesAB, KindBipartiteAltK4Cycles:
		return true
	default:
		return false
	}
}

func checkAttrBounds(g *netgraph.Graph, k Kind, s Spec) error {
	switch k {
	case KindSenderBinary, KindReceiverBinary, KindInteractionBinary:
		if s.AttrIdx < 0 || s.AttrIdx >= len(g.Attrs.Binary) {
			return ErrMissingAttrIndex(k, s.AttrIdx)
		}
	case KindMatching, KindMismatching, KindMatchingReciprocity, KindMismatchingReciprocity,
		KindBipartiteTwoPathMatching, KindBipartiteNodematchAlpha, KindBipartiteNodematchBeta:
		if s.AttrIdx < 0 || s.AttrIdx >= len(g.Attrs.Categorical) {
			return ErrMissingAttrIndex(k, s.AttrIdx)
		}
	case KindContinuousSender, KindContinuousReceiver, KindContinuousDiff, KindContinuousSum,
		KindContinuousDiffReciprocity, KindContinuousDiffSign, KindBipartiteActivity:
		if s.AttrIdx < 0 || s.AttrIdx >= len(g.Attrs.Continuous) {
			return ErrMissingAttrIndex(k, s.AttrIdx)
		}
	case KindJaccardSimilarity:
		if s.AttrIdx < 0 || s.AttrIdx >= len(g.Attrs.Set) {
			return ErrMissingAttrIndex(k, s.AttrIdx)
		}
	case KindGeoDistance, KindLogGeoDistance, KindEuclideanDistance:
		if s.AttrIdx < 0 || s.AttrIdx >= len(g.Attrs.Continuous) ||
			s.AttrIdx2 < 0 || s.AttrIdx2 >= len(g.Attrs.Continuous) {
			return ErrMissingAttrIndex(k, s.AttrIdx)
		}
		if s.AttrIdx3 >= len(g.Attrs.Continuous) {
			return ErrMissingAttrIndex(k, s.AttrIdx3)
		}
	case KindAttributePairInteraction:
		if s.AttrIdx < 0 || s.AttrIdx >= len(g.Attrs.Continuous) ||
			s.AttrIdx2 < 0 || s.AttrIdx2 >= len(g.Attrs.Continuous) {
			return ErrMissingAttrIndex(k, s.AttrIdx)
		}
	}
	return nil
}
