package effect

import (
	"math"

	"github.com/ergmgo/ergmnet/netgraph"
)

// deltaAttr dispatches the attribute, dyadic-covariate, and attribute-pair
// effect kinds, split out of Delta to keep the structural switch readable.
func deltaAttr(g *netgraph.Graph, e Effect, i, j int) float64 {
	switch e.Kind {
	case KindSenderBinary:
		v, na := g.Attrs.Binary[e.AttrIdx].Get(i)
		if na {
			return 0
		}
		return float64(v)

	case KindReceiverBinary:
		v, na := g.Attrs.Binary[e.AttrIdx].Get(j)
		if na {
			return 0
		}
		return float64(v)

	case KindInteractionBinary:
		vi, naI := g.Attrs.Binary[e.AttrIdx].Get(i)
		vj, naJ := g.Attrs.Binary[e.AttrIdx].Get(j)
		if naI || naJ {
			return 0
		}
		return float64(vi) * float64(vj)

	case KindMatching:
		return categoricalMatch(g, e, i, j, false)
	case KindMismatching:
		return categoricalMatch(g, e, i, j, true)
	case KindMatchingReciprocity:
		if !g.IsArc(j, i) {
			return 0
		}
		return categoricalMatch(g, e, i, j, false)
	case KindMismatchingReciprocity:
		if !g.IsArc(j, i) {
			return 0
		}
		return categoricalMatch(g, e, i, j, true)

	case KindContinuousSender:
		v, na := g.Attrs.Continuous[e.AttrIdx].Get(i)
		if na {
			return 0
		}
		return v
	case KindContinuousReceiver:
		v, na := g.Attrs.Continuous[e.AttrIdx].Get(j)
		if na {
			return 0
		}
		return v
	case KindContinuousDiff:
		vi, vj, ok := continuousPair(g, e.AttrIdx, i, j)
		if !ok {
			return 0
		}
		return math.Abs(vi - vj)
	case KindContinuousSum:
		vi, vj, ok := continuousPair(g, e.AttrIdx, i, j)
		if !ok {
			return 0
		}
		return vi + vj
	case KindContinuousDiffReciprocity:
		if !g.IsArc(j, i) {
			return 0
		}
		vi, vj, ok := continuousPair(g, e.AttrIdx, i, j)
		if !ok {
			return 0
		}
		return math.Abs(vi - vj)
	case KindContinuousDiffSign:
		vi, vj, ok := continuousPair(g, e.AttrIdx, i, j)
		if !ok {
			return 0
		}
		if vi > vj {
			return 1
		}
		if vi < vj {
			return -1
		}
		return 0

	case KindJaccardSimilarity:
		sim, ok := g.Attrs.Set[e.AttrIdx].Jaccard(i, j)
		if !ok {
			return 0
		}
		return sim

	case KindBipartiteActivity:
		v, na := g.Attrs.Continuous[e.AttrIdx].Get(i)
		if na {
			return 0
		}
		w, na2 := g.Attrs.Continuous[e.AttrIdx].Get(j)
		if na2 {
			return 0
		}
		return v + w

	case KindBipartiteTwoPathSum:
		return float64(g.Degree(i) + g.Degree(j))
	case KindBipartiteTwoPathDiff:
		return float64(absInt(g.Degree(i) - g.Degree(j)))
	case KindBipartiteTwoPathMatching:
		return categoricalMatch(g, e, i, j, false)

	case KindBipartiteNodematchAlpha:
		return nodematchPower(g, e, i, j, e.Exponent)
	case KindBipartiteNodematchBeta:
		return nodematchPower(g, e, i, j, e.Exponent)

	case KindGeoDistance:
		return dyadicDistance(g, e, i, j, false)
	case KindLogGeoDistance:
		return dyadicDistance(g, e, i, j, true)
	case KindEuclideanDistance:
		return euclideanDistance(g, e, i, j)

	case KindAttributePairInteraction:
		vi, naI := g.Attrs.Continuous[e.AttrIdx].Get(i)
		vj, naJ := g.Attrs.Continuous[e.AttrIdx2].Get(j)
		if naI || naJ {
			return 0
		}
		return vi * vj

	default:
		return 0
	}
}

func categoricalMatch(g *netgraph.Graph, e Effect, i, j int, mismatch bool) float64 {
	vi, naI := g.Attrs.Categorical[e.AttrIdx].Get(i)
	vj, naJ := g.Attrs.Categorical[e.AttrIdx].Get(j)
	if naI || naJ {
		return 0
	}
	match := vi == vj
	if mismatch {
		match = !match
	}
	if match {
		return 1
	}
	return 0
}

func continuousPair(g *netgraph.Graph, idx, i, j int) (float64, float64, bool) {
	vi, naI := g.Attrs.Continuous[idx].Get(i)
	vj, naJ := g.Attrs.Continuous[idx].Get(j)
	if naI || naJ {
		return 0, 0, false
	}
	return vi, vj, true
}

// nodematchPower implements the Nodematch-alpha/beta family: an exponent-
// weighted categorical match, generalizing plain Matching (exponent 1) to
// a continuous interpolation toward Mismatching (exponent 0).
func nodematchPower(g *netgraph.Graph, e Effect, i, j int, exponent float64) float64 {
	m := categoricalMatch(g, e, i, j, false)
	return math.Pow(m, exponent)
}

// dyadicDistance computes the haversine great-circle distance (km) between
// (lat,lon) continuous-attribute pairs AttrIdx,AttrIdx2 for nodes i and j,
// or log(1 + distance) when logScale is true.
func dyadicDistance(g *netgraph.Graph, e Effect, i, j int, logScale bool) float64 {
	const earthRadiusKm = 6371.0
	latI, naLatI := g.Attrs.Continuous[e.AttrIdx].Get(i)
	lonI, naLonI := g.Attrs.Continuous[e.AttrIdx2].Get(i)
	latJ, naLatJ := g.Attrs.Continuous[e.AttrIdx].Get(j)
	lonJ, naLonJ := g.Attrs.Continuous[e.AttrIdx2].Get(j)
	if naLatI || naLonI || naLatJ || naLonJ {
		return 0
	}
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(latJ - latI)
	dLon := toRad(lonJ - lonI)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(latI))*math.Cos(toRad(latJ))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	dist := earthRadiusKm * c
	if logScale {
		return math.Log1p(dist)
	}
	return dist
}

// euclideanDistance computes the 2D or 3D Euclidean distance between
// continuous-attribute coordinate tuples (AttrIdx, AttrIdx2[, AttrIdx3 when
// it is non-negative]).
func euclideanDistance(g *netgraph.Graph, e Effect, i, j int) float64 {
	xi, naXi := g.Attrs.Continuous[e.AttrIdx].Get(i)
	yi, naYi := g.Attrs.Continuous[e.AttrIdx2].Get(i)
	xj, naXj := g.Attrs.Continuous[e.AttrIdx].Get(j)
	yj, naYj := g.Attrs.Continuous[e.AttrIdx2].Get(j)
	if naXi || naYi || naXj || naYj {
		return 0
	}
	dx, dy := xi-xj, yi-yj
	sum := dx*dx + dy*dy
	if e.AttrIdx3 >= 0 {
		zi, naZi := g.Attrs.Continuous[e.AttrIdx3].Get(i)
		zj, naZj := g.Attrs.Continuous[e.AttrIdx3].Get(j)
		if naZi || naZj {
			return 0
		}
		dz := zi - zj
		sum += dz * dz
	}
	return math.Sqrt(sum)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
