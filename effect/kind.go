package effect

// Kind tags one entry of the closed change-statistics catalogue.
type Kind int

const (
	// --- Structural, directed ---

	KindArc Kind = iota
	KindReciprocity
	KindSink
	KindSource
	KindIsolates
	KindInTwoStars
	KindOutTwoStars
	KindTwoPaths
	KindTransitiveTriangles
	KindCyclicTriangles

	// --- Structural, undirected ---

	KindEdge
	KindEdgeIsolates
	KindTwoStars
	KindTriangles

	// --- Alternating / k-triangle (decay parameter Lambda), both modes ---

	KindAltInStars
	KindAltOutStars
	KindAltStars
	KindAltKTrianglesT
	KindAltKTrianglesC
	KindAltKTrianglesD
	KindAltKTrianglesU
	KindAltTwoPathsT
	KindAltTwoPathsD
	KindAltTwoPathsU
	KindAltTwoPathsTD

	// --- Bipartite structural / alternating ---

	KindBipartiteEdge
	KindBipartiteAltStarsA
	KindBipartiteAltStarsB
	KindBipartiteAltKCyclesAB
	KindBipartiteAltK4Cycles
	KindBipartiteFourCyclesNodePower

	// --- Attribute effects: binary ---

	KindSenderBinary
	KindReceiverBinary
	KindInteractionBinary

	// --- Attribute effects: categorical ---

	KindMatching
	KindMismatching
	KindMatchingReciprocity
	KindMismatchingReciprocity

	// --- Attribute effects: continuous ---

	KindContinuousSender
	KindContinuousReceiver
	KindContinuousDiff
	KindContinuousSum
	KindContinuousDiffReciprocity
	KindContinuousDiffSign

	// --- Attribute effects: set ---

	KindJaccardSimilarity

	// --- Bipartite attribute effects ---

	KindBipartiteActivity
	KindBipartiteTwoPathSum
	KindBipartiteTwoPathDiff
	KindBipartiteTwoPathMatching
	KindBipartiteNodematchAlpha
	KindBipartiteNodematchBeta

	// --- Dyadic covariates ---

	KindGeoDistance
	KindLogGeoDistance
	KindEuclideanDistance

	// --- Attribute-pair interaction ---

	KindAttributePairInteraction
)

// String renders a human-readable catalogue name, used by ergmconf for
// round-tripping parsed configuration back to diagnostics and by
// telemetry for labeling per-effect accumulators.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

var kindNames = map[Kind]string{
	KindArc:                          "Arc",
	KindReciprocity:                  "Reciprocity",
	KindSink:                         "Sink",
	KindSource:                       "Source",
	KindIsolates:                     "Isolates",
	KindInTwoStars:                   "InTwoStars",
	KindOutTwoStars:                  "OutTwoStars",
	KindTwoPaths:                     "TwoPaths",
	KindTransitiveTriangles:          "TransitiveTriangles",
	KindCyclicTriangles:              "CyclicTriangles",
	KindEdge:                         "Edge",
	KindEdgeIsolates:                 "EdgeIsolates",
	KindTwoStars:                     "TwoStars",
	KindTriangles:                    "Triangles",
	KindAltInStars:                   "AltInStars",
	KindAltOutStars:                  "AltOutStars",
	KindAltStars:                     "AltStars",
	KindAltKTrianglesT:               "AltKTrianglesT",
	KindAltKTrianglesC:               "AltKTrianglesC",
	KindAltKTrianglesD:               "AltKTrianglesD",
	KindAltKTrianglesU:               "AltKTrianglesU",
	KindAltTwoPathsT:                 "AltTwoPathsT",
	KindAltTwoPathsD:                 "AltTwoPathsD",
	KindAltTwoPathsU:                 "AltTwoPathsU",
	KindAltTwoPathsTD:                "AltTwoPathsTD",
	KindBipartiteEdge:                "BipartiteEdge",
	KindBipartiteAltStarsA:           "BipartiteAltStarsA",
	KindBipartiteAltStarsB:           "BipartiteAltStarsB",
	KindBipartiteAltKCyclesAB:        "BipartiteAltKCyclesAB",
	KindBipartiteAltK4Cycles:         "BipartiteAltK4Cycles",
	KindBipartiteFourCyclesNodePower: "BipartiteFourCyclesNodePower",
	KindSenderBinary:                 "Sender",
	KindReceiverBinary:               "Receiver",
	KindInteractionBinary:            "Interaction",
	KindMatching:                     "Matching",
	KindMismatching:                  "Mismatching",
	KindMatchingReciprocity:          "MatchingReciprocity",
	KindMismatchingReciprocity:       "MismatchingReciprocity",
	KindContinuousSender:             "ContinuousSender",
	KindContinuousReceiver:           "ContinuousReceiver",
	KindContinuousDiff:               "Diff",
	KindContinuousSum:                "Sum",
	KindContinuousDiffReciprocity:    "DiffReciprocity",
	KindContinuousDiffSign:           "DiffSign",
	KindJaccardSimilarity:            "JaccardSimilarity",
	KindBipartiteActivity:            "BipartiteActivity",
	KindBipartiteTwoPathSum:          "BipartiteTwoPathSum",
	KindBipartiteTwoPathDiff:         "BipartiteTwoPathDiff",
	KindBipartiteTwoPathMatching:     "BipartiteTwoPathMatching",
	KindBipartiteNodematchAlpha:      "BipartiteNodematchAlpha",
	KindBipartiteNodematchBeta:       "BipartiteNodematchBeta",
	KindGeoDistance:                  "GeoDistance",
	KindLogGeoDistance:               "logGeoDistance",
	KindEuclideanDistance:            "EuclideanDistance",
	KindAttributePairInteraction:     "AttributePairInteraction",
}
