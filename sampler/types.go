package sampler

import (
	"math/rand"
	"strings"

	"github.com/ergmgo/ergmnet/effect"
	"github.com/ergmgo/ergmnet/netgraph"
)

// Scheme selects which dyad-proposal strategy Run uses.
type Scheme int

const (
	// SchemeBasic draws uniformly over every valid dyad (tied or not).
	SchemeBasic Scheme = iota
	// SchemeIFD (improved fixed density) alternates insert/delete
	// proposals to hold the tie count near a target density.
	SchemeIFD
	// SchemeTNT (tie/no-tie) splits proposals between the existing-tie
	// flat list and a uniform dyad draw, Hastings-corrected.
	SchemeTNT
)

func (s Scheme) String() string {
	switch s {
	case SchemeBasic:
		return "basic"
	case SchemeIFD:
		return "ifd"
	case SchemeTNT:
		return "tnt"
	default:
		return "unknown"
	}
}

// ParseScheme resolves a configuration-file scheme name ("basic", "ifd",
// "tnt", case-insensitive) into a Scheme, for ergmconf-driven callers.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "", "basic":
		return SchemeBasic, nil
	case "ifd":
		return SchemeIFD, nil
	case "tnt":
		return SchemeTNT, nil
	default:
		return SchemeBasic, ErrUnknownScheme(name)
	}
}

// RunMode selects whether Run commits accepted toggles to the graph
// (ModeCommit, used for simulation/estimation) or only tallies what would
// happen without mutating the graph (ModeDryRun, used to estimate an
// acceptance rate or a would-be statistics trajectory cheaply).
type RunMode int

const (
	ModeCommit RunMode = iota
	ModeDryRun
)

func (m RunMode) String() string {
	switch m {
	case ModeCommit:
		return "commit"
	case ModeDryRun:
		return "dryrun"
	default:
		return "unknown"
	}
}

// ParseRunMode resolves a configuration-file mode name ("commit",
// "dryrun"/"dry_run", case-insensitive, empty defaults to commit) into a
// RunMode, for ergmconf-driven callers.
func ParseRunMode(name string) (RunMode, error) {
	switch strings.ToLower(name) {
	case "", "commit":
		return ModeCommit, nil
	case "dryrun", "dry_run", "dry-run":
		return ModeDryRun, nil
	default:
		return ModeCommit, ErrUnknownMode(name)
	}
}

// Move records one proposed (and possibly accepted) dyad toggle, emitted
// on RunContext.Trace when tracing is enabled.
type Move struct {
	I, J     int
	WasTie   bool // true if the dyad was present before this proposal
	Accepted bool
	LogRatio float64
}

// Option configures a RunContext at construction, mirroring the teacher's
// functional-option GraphOption/BuilderOption idiom (builder/options.go).
type Option func(*RunContext)

// WithScheme selects the proposal scheme; default SchemeBasic.
func WithScheme(s Scheme) Option { return func(c *RunContext) { c.scheme = s } }

// WithMode selects commit vs dry-run; default ModeCommit.
func WithMode(m RunMode) Option { return func(c *RunContext) { c.mode = m } }

// WithTargetDensity sets the IFD scheme's target tie fraction in (0, 1);
// ignored by other schemes. Default 0.5.
func WithTargetDensity(d float64) Option { return func(c *RunContext) { c.targetDensity = d } }

// WithTNTTieProbability sets the TNT scheme's probability of proposing
// from the existing-tie list rather than a uniform dyad draw. Default 0.5.
func WithTNTTieProbability(p float64) Option { return func(c *RunContext) { c.tntTieProb = p } }

// WithIFDGain sets the IFD scheme's Robbins-Monro gain `ifd_K`, the scale
// applied to the (current edge count - target edge count) term when
// updating the auxiliary scalar V after each proposal. Default 0.01.
func WithIFDGain(k float64) Option { return func(c *RunContext) { c.ifdGain = k } }

// WithTrace enables per-step Move recording, retrievable via Result.Trace
// after Run returns. Disabled by default to avoid the allocation cost on
// long estimation runs.
func WithTrace() Option { return func(c *RunContext) { c.tracing = true } }

// WithConditioning restricts proposals to dyads compatible with the
// graph's Overlay (snowball inner nodes / cERGM max-term nodes), per
// spec.md §4.6's zone/term conditioning overlays. Which of the two
// mutually-exclusive modes applies is auto-detected at construction from
// which overlay data is actually populated (Overlay.HasZones/HasTerms) —
// spec.md §4.4 states snowball and cERGM conditioning are mutually
// exclusive, so whichever file (zones or terms) was loaded for this
// network determines the mode; a network with neither loaded ignores
// this option.
func WithConditioning(on bool) Option { return func(c *RunContext) { c.conditioned = on } }

// RunContext is the value-object owning one sampler run's mutable state:
// the graph, the bound effect catalogue, the current parameter vector, and
// the RNG stream. Replaces a global mutable sampler singleton (spec.md
// §9's RunContext re-architecture note).
type RunContext struct {
	Graph   *netgraph.Graph
	Effects []effect.Effect
	Theta   []float64
	RNG     *rand.Rand

	scheme        Scheme
	mode          RunMode
	targetDensity float64
	tntTieProb    float64
	tracing       bool
	conditioned   bool
	snowball      bool
	cergm         bool

	// ifdV is the IFD scheme's auxiliary scalar: a proposal-imbalance
	// bias added (for add) or subtracted (for delete) from the log
	// acceptance ratio, updated after every proposal by a Robbins-Monro
	// rule driven by (current edge count - target edge count) scaled by
	// ifdGain (spec.md §4.4's "Improved-Fixed-Density" paragraph).
	ifdV    float64
	ifdGain float64

	accepted int
	proposed int
	trace    []Move

	// CurrentStats tracks the running sufficient-statistics vector,
	// starting from whatever Graph's initial tie set already contributes
	// and updated by ± delta on every committed toggle (package estimate
	// consumes this instead of recomputing each statistic from scratch).
	CurrentStats []float64
}

// NewRunContext constructs a RunContext over g with the bound effects and
// parameter vector theta (len(theta) must equal len(effects)), seeding its
// RNG stream from seed (0 maps to a fixed reproducible default).
func NewRunContext(g *netgraph.Graph, effects []effect.Effect, theta []float64, seed int64, opts ...Option) *RunContext {
	c := &RunContext{
		Graph:         g,
		Effects:       effects,
		Theta:         theta,
		RNG:           RNGFromSeed(seed),
		scheme:        SchemeBasic,
		mode:          ModeCommit,
		targetDensity: 0.5,
		tntTieProb:    0.5,
		ifdGain:       0.01,
		CurrentStats:  make([]float64, len(effects)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.conditioned {
		c.snowball = g.Overlay.HasZones()
		c.cergm = !c.snowball && g.Overlay.HasTerms()
		switch {
		case c.snowball:
			g.RebuildInnerFlat()
		case c.cergm:
			g.RebuildMaxTermFlat()
		}
	}
	return c
}

// SetInitialStats overrides CurrentStats, for starting a run from a graph
// that is not empty (its already-present ties' contribution to each bound
// statistic must be supplied by the caller, e.g. from a one-time from-
// scratch computation or a loaded observed-statistics file).
func (c *RunContext) SetInitialStats(stats []float64) { c.CurrentStats = stats }

// Accepted returns the number of proposals accepted since construction.
func (c *RunContext) Accepted() int { return c.accepted }

// Proposed returns the total number of proposals made since construction.
func (c *RunContext) Proposed() int { return c.proposed }

// AcceptanceRate returns Accepted/Proposed, or 0 if no proposals were made.
func (c *RunContext) AcceptanceRate() float64 {
	if c.proposed == 0 {
		return 0
	}
	return float64(c.accepted) / float64(c.proposed)
}

// Trace returns the recorded Move history when WithTrace was set,
// otherwise nil.
func (c *RunContext) Trace() []Move { return c.trace }

// Result summarizes one Run call.
type Result struct {
	Accepted int
	Proposed int
	Trace    []Move
}
