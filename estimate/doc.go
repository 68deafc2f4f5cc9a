// Package estimate implements the bounded Robbins-Monro outer driver of
// spec.md §4.9: repeatedly running the sampler for a phase of steps,
// comparing the sampler's end-of-phase sufficient statistics against the observed
// network's, and nudging theta toward the observed value with a
// decaying gain sequence, for a fixed maximum number of phases (never an
// unbounded fixed-point loop).
//
// Grounded on the teacher's dtw package's bounded-iteration, early-exit-
// on-convergence control-flow shape (a fixed work budget plus a tolerance
// check each iteration), generalized from dynamic-time-warping distance
// refinement to stochastic-approximation parameter refinement.
package estimate
