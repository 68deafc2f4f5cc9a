package effect

import (
	"math"

	"github.com/ergmgo/ergmnet/netgraph"
)

// Delta computes the change in one sufficient statistic from adding the
// dyad (i, j) to g. g must not already contain (i, j); the caller (package
// sampler) negates the result for a deletion proposal.
func Delta(g *netgraph.Graph, e Effect, i, j int) float64 {
	switch e.Kind {
	case KindArc, KindEdge, KindBipartiteEdge:
		return 1

	case KindReciprocity:
		if g.IsArc(j, i) {
			return 1
		}
		return 0

	case KindSink:
		if g.OutDegree(i) == 0 {
			return -1
		}
		return 0

	case KindSource:
		if g.InDegree(j) == 0 {
			return -1
		}
		return 0

	case KindIsolates:
		d := 0.0
		if g.OutDegree(i) == 0 && g.InDegree(i) == 0 {
			d--
		}
		if i != j && g.OutDegree(j) == 0 && g.InDegree(j) == 0 {
			d--
		}
		return d

	case KindEdgeIsolates:
		d := 0.0
		if g.Degree(i) == 0 {
			d--
		}
		if i != j && g.Degree(j) == 0 {
			d--
		}
		return d

	case KindInTwoStars:
		return float64(g.InDegree(j))

	case KindOutTwoStars:
		return float64(g.OutDegree(i))

	case KindTwoStars:
		return float64(g.Degree(i) + g.Degree(j))

	case KindTwoPaths:
		return float64(g.InDegree(i) + g.OutDegree(j))

	case KindTransitiveTriangles:
		return float64(g.Mixed(i, j))

	case KindCyclicTriangles:
		return float64(g.Mixed(j, i))

	case KindTriangles:
		return float64(g.CommonNeighbors(i, j))

	case KindAltInStars:
		return altKernel(e.Lambda, float64(g.InDegree(j)))
	case KindAltOutStars:
		return altKernel(e.Lambda, float64(g.OutDegree(i)))
	case KindAltStars:
		return altKernel(e.Lambda, float64(g.Degree(i))) + altKernel(e.Lambda, float64(g.Degree(j)))

	case KindAltKTrianglesT:
		return altKernel(e.Lambda, float64(g.Mixed(i, j)))
	case KindAltKTrianglesC:
		return altKernel(e.Lambda, float64(g.Mixed(j, i)))
	case KindAltKTrianglesD:
		return altKernel(e.Lambda, float64(g.InCommon(i, j)))
	case KindAltKTrianglesU:
		return altKernel(e.Lambda, float64(g.CommonNeighbors(i, j)))

	case KindAltTwoPathsT:
		return altKernel(e.Lambda, float64(g.OutCommon(i, j)))
	case KindAltTwoPathsD:
		return altKernel(e.Lambda, float64(g.InCommon(j, i)))
	case KindAltTwoPathsU:
		return altKernel(e.Lambda, float64(g.CommonNeighbors(i, j)))
	case KindAltTwoPathsTD:
		return altKernel(e.Lambda, float64(g.Mixed(i, j)+g.Mixed(j, i)))

	case KindBipartiteAltStarsA, KindBipartiteAltStarsB:
		return altKernel(e.Lambda, float64(g.Degree(i))) + altKernel(e.Lambda, float64(g.Degree(j)))

	case KindBipartiteAltKCyclesAB, KindBipartiteAltK4Cycles:
		return altKernel(e.Lambda, float64(g.BipartiteTwoPaths(i, j)))

	case KindBipartiteFourCyclesNodePower:
		return float64(g.BipartiteTwoPaths(i, j))

	default:
		return deltaAttr(g, e, i, j)
	}
}

// altKernel is the geometric-decay alternating-statistic kernel
// λ(1 - (1 - 1/λ)^c), the single-term alternating-k-star / alternating-
// k-triangle change statistic (Hunter & Handcock's AKS/AKT family): c is
// the relevant pre-toggle count (a degree or a shared-partner count).
func altKernel(lambda, c float64) float64 {
	if lambda <= 1 {
		return c
	}
	base := 1 - 1/lambda
	return lambda * (1 - math.Pow(base, c))
}
