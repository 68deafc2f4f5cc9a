// File: kernel.go
// Role: the shared accept/reject kernel and the three proposal schemes.
// Grounded on the teacher's dijkstra/prim_kruskal "single hot loop, no
// locking, explicit RNG" control-flow shape, generalized from a
// shortest-path relaxation loop to an MH tie-toggle loop.
package sampler

import (
	"math"

	"github.com/ergmgo/ergmnet/effect"
)

const maxProposalRetries = 10_000

// Run advances ctx by steps proposals, returning a summary. In ModeCommit
// every accepted proposal mutates ctx.Graph; in ModeDryRun the graph is
// left untouched (each accepted toggle is immediately undone after being
// tallied), per spec.md §4.4's "dry-run vs. commit" RunMode contract.
func Run(ctx *RunContext, steps int) (*Result, error) {
	for s := 0; s < steps; s++ {
		i, j, correction, ok := ctx.proposeDyad()
		if !ok {
			return nil, ErrNoValidDyad
		}
		ctx.step(i, j, correction)
	}
	return &Result{
		Accepted: ctx.accepted,
		Proposed: ctx.proposed,
		Trace:    ctx.trace,
	}, nil
}

// step executes one proposal on dyad (i, j): computes the acceptance
// ratio (including the scheme's proposal-imbalance correction, already
// signed for this dyad's add/delete direction by the proposer), decides,
// and commits or undoes according to ctx.mode.
func (c *RunContext) step(i, j int, correction float64) {
	c.proposed++
	wasTie := c.isTie(i, j)

	var logRatio float64
	var delta []float64
	if !wasTie {
		delta = deltaVector(c, i, j)
		logRatio = dot(c.Theta, delta)
	} else {
		c.removeTie(i, j)
		delta = deltaVector(c, i, j) // graph now lacks (i,j): delta is the magnitude of the tie's contribution
		logRatio = -dot(c.Theta, delta)
		if c.mode == ModeDryRun {
			c.insertTie(i, j) // dry-run never leaves the graph mutated mid-decision
		}
	}
	logRatio += correction

	accept := logRatio >= 0 || math.Log(c.RNG.Float64()) < logRatio
	c.recordAndResolve(i, j, wasTie, accept, logRatio)
	if accept && c.mode == ModeCommit {
		sign := 1.0
		if wasTie {
			sign = -1.0
		}
		for k := range c.CurrentStats {
			c.CurrentStats[k] += sign * delta[k]
		}
	}
	c.updateIFDAuxiliary()
}

// updateIFDAuxiliary applies the IFD scheme's Robbins-Monro update to the
// auxiliary scalar V, outside the core accept step (spec.md §4.4): V is
// nudged by ifdGain times the gap between the current edge count and the
// target edge count implied by targetDensity, so V drifts toward whatever
// bias keeps the chain's density near the target as proposals proceed.
func (c *RunContext) updateIFDAuxiliary() {
	if c.scheme != SchemeIFD {
		return
	}
	target := c.targetDensity * float64(maxPossibleDyads(c.Graph))
	c.ifdV += c.ifdGain * (float64(c.Graph.FlatLen()) - target)
}

// recordAndResolve applies the decision's graph-mutation side effects and,
// when tracing is on, appends the Move.
func (c *RunContext) recordAndResolve(i, j int, wasTie, accept bool, logRatio float64) {
	switch {
	case !wasTie && accept && c.mode == ModeCommit:
		c.insertTie(i, j)
	case !wasTie && accept && c.mode == ModeDryRun:
		// nothing to undo: proposeDyad never mutated the graph for an insertion
	case wasTie && !accept:
		// step already removed the tie to probe delta; a rejected deletion
		// proposal must be undone regardless of mode.
		c.insertTie(i, j)
	case wasTie && accept && c.mode == ModeDryRun:
		// step already removed and (for dry-run) reinserted it above; the
		// "accepted" outcome for a dry run is tallied without a net mutation.
	}
	if accept {
		c.accepted++
	}
	if c.tracing {
		c.trace = append(c.trace, Move{I: i, J: j, WasTie: wasTie, Accepted: accept, LogRatio: logRatio})
	}
}

func dot(theta []float64, delta []float64) float64 {
	sum := 0.0
	for k := range theta {
		sum += theta[k] * delta[k]
	}
	return sum
}

func deltaVector(c *RunContext, i, j int) []float64 {
	out := make([]float64, len(c.Effects))
	for k, e := range c.Effects {
		out[k] = effect.Delta(c.Graph, e, i, j)
	}
	return out
}

func (c *RunContext) isTie(i, j int) bool {
	if c.Graph.Directed() {
		return c.Graph.IsArc(i, j)
	}
	return c.Graph.IsEdge(i, j)
}

// insertTie applies an accepted insertion, routing through whichever flat
// incidence list family matches the active conditioning mode so
// InnerFlatLen/MaxTermFlatLen stay consistent with the graph (spec.md
// §4.1's *_updateinnerlist/*_maxterm families).
func (c *RunContext) insertTie(i, j int) {
	switch {
	case c.snowball:
		if c.Graph.Directed() {
			c.Graph.InsertArcUpdateInnerList(i, j)
			return
		}
		c.Graph.InsertEdgeUpdateInnerList(i, j)
	case c.cergm && c.Graph.Directed():
		c.Graph.InsertArcMaxTerm(i, j)
	case c.Graph.Directed():
		c.Graph.InsertArcUpdateList(i, j)
	default:
		c.Graph.InsertEdgeUpdateList(i, j)
	}
}

// removeTie is insertTie's inverse; see its comment.
func (c *RunContext) removeTie(i, j int) {
	switch {
	case c.snowball:
		if c.Graph.Directed() {
			c.Graph.RemoveArcUpdateInnerList(i, j)
			return
		}
		c.Graph.RemoveEdgeUpdateInnerList(i, j)
	case c.cergm && c.Graph.Directed():
		c.Graph.RemoveArcMaxTerm(i, j)
	case c.Graph.Directed():
		c.Graph.RemoveArcUpdateList(i, j)
	default:
		c.Graph.RemoveEdgeUpdateList(i, j)
	}
}

// proposeDyad selects the next candidate dyad per ctx.scheme, returning
// the chosen (i, j), the scheme's signed proposal-imbalance correction to
// add to the log acceptance ratio (0 for the basic scheme, which has no
// correction), and whether a legal candidate was found at all.
func (c *RunContext) proposeDyad() (int, int, float64, bool) {
	switch c.scheme {
	case SchemeIFD:
		return c.proposeIFD()
	case SchemeTNT:
		return c.proposeTNT()
	default:
		return c.proposeBasic()
	}
}

// sampleCandidateDyad draws one candidate (i, j) pair from the
// conditioning-appropriate node population: every node by default, both
// endpoints restricted to Overlay.InnerNodes() under snowball
// conditioning, or i restricted to Overlay.MaxTermNodes() (the cERGM
// "sender") under cERGM conditioning (spec.md §4.4).
func (c *RunContext) sampleCandidateDyad() (int, int, bool) {
	n := c.Graph.N()
	switch {
	case c.cergm:
		nodes := c.Graph.Overlay.MaxTermNodes()
		if len(nodes) == 0 {
			return 0, 0, false
		}
		return nodes[c.RNG.Intn(len(nodes))], c.RNG.Intn(n), true
	case c.snowball:
		nodes := c.Graph.Overlay.InnerNodes()
		if len(nodes) < 2 {
			return 0, 0, false
		}
		return nodes[c.RNG.Intn(len(nodes))], nodes[c.RNG.Intn(len(nodes))], true
	default:
		return c.RNG.Intn(n), c.RNG.Intn(n), true
	}
}

// sampleExistingTie draws one candidate dyad uniformly from the
// conditioning-appropriate flat incidence list: the inner-zones list
// under snowball conditioning, the max-term-sender list under cERGM
// conditioning, or the full flat list otherwise (spec.md §4.4's "flat
// incidence is drawn from the inner-zones list"/"...maxtermsender_arcs").
func (c *RunContext) sampleExistingTie() (int, int, bool) {
	switch {
	case c.snowball:
		if c.Graph.InnerFlatLen() == 0 {
			return 0, 0, false
		}
		d := c.Graph.InnerFlatAt(c.RNG.Intn(c.Graph.InnerFlatLen()))
		return d.I, d.J, true
	case c.cergm:
		if c.Graph.MaxTermFlatLen() == 0 {
			return 0, 0, false
		}
		d := c.Graph.MaxTermFlatAt(c.RNG.Intn(c.Graph.MaxTermFlatLen()))
		return d.I, d.J, true
	default:
		if c.Graph.FlatLen() == 0 {
			return 0, 0, false
		}
		d := c.Graph.FlatAt(c.RNG.Intn(c.Graph.FlatLen()))
		return d.I, d.J, true
	}
}

// tieDomainSize is sampleExistingTie's population size, the TNT scheme's
// "E" (current tie count) restricted to whichever conditioning domain is
// active.
func (c *RunContext) tieDomainSize() int {
	switch {
	case c.snowball:
		return c.Graph.InnerFlatLen()
	case c.cergm:
		return c.Graph.MaxTermFlatLen()
	default:
		return c.Graph.FlatLen()
	}
}

// dyadDomainSize is sampleCandidateDyad's population size, the TNT
// scheme's "D" (total dyad count) restricted to whichever conditioning
// domain is active: inner-zone ordered/unordered pairs under snowball,
// max-term-sender-by-any-receiver pairs under cERGM.
func (c *RunContext) dyadDomainSize() int {
	switch {
	case c.snowball:
		n := len(c.Graph.Overlay.InnerNodes())
		if c.Graph.Directed() {
			return n * (n - 1)
		}
		return n * (n - 1) / 2
	case c.cergm:
		return len(c.Graph.Overlay.MaxTermNodes()) * c.Graph.N()
	default:
		return maxPossibleDyads(c.Graph)
	}
}

// proposeBasic draws i, j uniformly (restricted to the active
// conditioning domain, if any) by rejection sampling against CanToggle
// and allowedByConditioning. No proposal correction.
func (c *RunContext) proposeBasic() (int, int, float64, bool) {
	for try := 0; try < maxProposalRetries; try++ {
		i, j, ok := c.sampleCandidateDyad()
		if !ok {
			return 0, 0, 0, false
		}
		if c.Graph.CanToggle(i, j) != nil {
			continue
		}
		if !c.allowedByConditioning(i, j) {
			continue
		}
		return i, j, 0, true
	}
	return 0, 0, 0, false
}

// proposeIFD chooses "add" or "delete" with probability 1/2 each (spec.md
// §4.4's "Improved-Fixed-Density" paragraph), sampling the delete branch
// from the existing-tie flat list and the add branch from a uniform
// non-tie draw. The proposal-imbalance correction is the auxiliary
// scalar ctx.ifdV, added for "add" and subtracted for "delete"; ifdV
// itself is updated separately after every step (updateIFDAuxiliary).
func (c *RunContext) proposeIFD() (int, int, float64, bool) {
	if c.tieDomainSize() > 0 && c.RNG.Float64() < 0.5 {
		for try := 0; try < maxProposalRetries; try++ {
			i, j, ok := c.sampleExistingTie()
			if !ok {
				return 0, 0, 0, false
			}
			if !c.allowedByConditioning(i, j) {
				continue
			}
			return i, j, -c.ifdV, true
		}
		return 0, 0, 0, false
	}
	for try := 0; try < maxProposalRetries; try++ {
		i, j, ok := c.sampleCandidateDyad()
		if !ok {
			return 0, 0, 0, false
		}
		if c.Graph.CanToggle(i, j) != nil || c.isTie(i, j) {
			continue
		}
		if !c.allowedByConditioning(i, j) {
			continue
		}
		return i, j, c.ifdV, true
	}
	return 0, 0, 0, false
}

// proposeTNT splits proposals between the existing-tie flat list (with
// probability tntTieProb) and a uniform dyad draw, the classic tie/no-tie
// mixture (spec.md §4.4), Hastings-corrected for the resulting proposal
// imbalance: log((E+1)(D-E)) - log(E(D-E+1)) on the add branch, its
// negation on the delete branch, where E/D are tieDomainSize/
// dyadDomainSize (the active conditioning domain's tie and dyad counts).
func (c *RunContext) proposeTNT() (int, int, float64, bool) {
	e := float64(c.tieDomainSize())
	d := float64(c.dyadDomainSize())
	addCorrection := 0.0
	if e > 0 && d-e > 0 {
		addCorrection = math.Log((e+1)*(d-e)) - math.Log(e*(d-e+1))
	}

	if c.tieDomainSize() > 0 && c.RNG.Float64() < c.tntTieProb {
		for try := 0; try < maxProposalRetries; try++ {
			i, j, ok := c.sampleExistingTie()
			if !ok {
				return 0, 0, 0, false
			}
			if !c.allowedByConditioning(i, j) {
				continue
			}
			return i, j, -addCorrection, true
		}
		return 0, 0, 0, false
	}
	for try := 0; try < maxProposalRetries; try++ {
		i, j, ok := c.sampleCandidateDyad()
		if !ok {
			return 0, 0, 0, false
		}
		if c.Graph.CanToggle(i, j) != nil {
			continue
		}
		if !c.allowedByConditioning(i, j) {
			continue
		}
		return i, j, addCorrection, true
	}
	return 0, 0, 0, false
}

// allowedByConditioning reports whether (i, j) is a legal dyad under the
// active snowball/cERGM overlay when conditioning is enabled.
func (c *RunContext) allowedByConditioning(i, j int) bool {
	if !c.conditioned {
		return true
	}
	switch {
	case c.snowball:
		return c.allowedBySnowball(i, j)
	case c.cergm:
		return c.Graph.Overlay.IsMaxTermNode(i)
	default:
		return true
	}
}

// allowedBySnowball implements spec.md §4.4's snowball conditioning: both
// endpoints must already be inner nodes (enforced by sampleCandidateDyad/
// sampleExistingTie drawing only from InnerNodes()/the inner-zones flat
// list, checked again here defensively), a new tie may not span more
// than one zone, and a delete may not drop either endpoint's
// PrevWaveDegree to zero.
func (c *RunContext) allowedBySnowball(i, j int) bool {
	ov := c.Graph.Overlay
	if ov.Zone[i] >= ov.MaxZone || ov.Zone[j] >= ov.MaxZone {
		return false
	}
	if c.isTie(i, j) {
		if ov.Zone[j] == ov.Zone[i]-1 && ov.PrevWaveDegree[i] == 1 {
			return false
		}
		if ov.Zone[i] == ov.Zone[j]-1 && ov.PrevWaveDegree[j] == 1 {
			return false
		}
		return true
	}
	return ov.AdjacentZones(i, j)
}

func maxPossibleDyads(g interface {
	N() int
	Directed() bool
	Bipartite() bool
	Partition() (int, int)
}) int {
	n := g.N()
	if g.Bipartite() {
		nA, nB := g.Partition()
		if g.Directed() {
			return 2 * nA * nB
		}
		return nA * nB
	}
	if g.Directed() {
		return n * (n - 1)
	}
	return n * (n - 1) / 2
}
