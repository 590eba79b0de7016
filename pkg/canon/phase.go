// Package canon implements phased fixed-point canonicalization: an
// ordered list of phases, each an unordered set of transformation kinds
// from the transformation library, applied to a term until none fire anywhere in it, then advanced
// to the next phase.
package canon

import "github.com/gitrdm/hibouengine/pkg/interaction"

// Phase is one unordered set of transformation kinds tried at every
// position before the canonicalizer advances to the next phase.
type Phase struct {
	Name  string
	Kinds []interaction.TransformKind
}

// Basic is the minimal phase list: structural simplification, sorting, and
// gate-merge elimination, run to a fixed point in one phase.
func Basic() []Phase {
	return []Phase{{
		Name: "basic",
		Kinds: []interaction.TransformKind{
			interaction.TkSimpl,
			interaction.TkFlushRight,
			interaction.TkInvertAlt,
			interaction.TkInvertPar,
			interaction.TkTriInvertRF,
			interaction.TkDeduplicate,
			interaction.TkLoopSimpl,
			interaction.TkLoopUnNest,
			interaction.TkSortEmissionTargets,
			interaction.TkMergeAction,
			interaction.TkMergeShiftRight1,
			interaction.TkMergeShiftRight2,
			interaction.TkMergeShiftLeft1,
			interaction.TkMergeShiftLeft2,
			interaction.TkMergeSkip,
			interaction.TkMergeSkipInvert,
		},
	}}
}

// BasicWithToSeq is Basic plus StrictToSeq/ParToSeq, folded into the same
// single phase.
func BasicWithToSeq() []Phase {
	basic := Basic()
	basic[0].Name = "basic-with-to-seq"
	basic[0].Kinds = append(append([]interaction.TransformKind(nil), basic[0].Kinds...),
		interaction.TkStrictToSeq, interaction.TkParToSeq)
	return basic
}

// FivePhases is the named preset: simplification / de-factorize /
// simplification / factorize-suffix / simplification / factorize-prefix /
// simplification: five distinct transformation *sets*, interleaved with
// simplification sweeps that keep each phase's input in a stable shape
// before the next structural move.
func FivePhases() []Phase {
	simpl := Phase{
		Name: "simplify",
		Kinds: []interaction.TransformKind{
			interaction.TkSimpl,
			interaction.TkFlushRight,
			interaction.TkInvertAlt,
			interaction.TkInvertPar,
			interaction.TkTriInvertRF,
			interaction.TkDeduplicate,
			interaction.TkLoopSimpl,
			interaction.TkLoopUnNest,
			interaction.TkSortEmissionTargets,
			interaction.TkMergeAction,
			interaction.TkMergeShiftRight1,
			interaction.TkMergeShiftRight2,
			interaction.TkMergeShiftLeft1,
			interaction.TkMergeShiftLeft2,
			interaction.TkMergeSkip,
			interaction.TkMergeSkipInvert,
		},
	}
	deFactorize := Phase{
		Name: "de-factorize",
		Kinds: []interaction.TransformKind{
			interaction.TkDeFactorizeL,
			interaction.TkDeFactorizeR,
		},
	}
	factorizeSuffix := Phase{
		Name: "factorize-suffix",
		Kinds: []interaction.TransformKind{
			interaction.TkFactorizePrefixPar,
		},
	}
	factorizePrefix := Phase{
		Name: "factorize-prefix",
		Kinds: []interaction.TransformKind{
			interaction.TkFactorizePrefixStrict,
			interaction.TkFactorizePrefixSeq,
		},
	}
	return []Phase{simpl, deFactorize, simpl, factorizeSuffix, simpl, factorizePrefix, simpl}
}
