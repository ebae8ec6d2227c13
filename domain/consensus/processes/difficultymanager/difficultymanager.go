// Package difficultymanager implements the per-block retarget, per
// spec.md §4.6. Two historical height-keyed variants exist for the
// primary path (A: single candidate/tip interval, B: tip/tip.parent
// interval past height 4349) plus a standalone PID controller (variant
// C) kept for networks that select it, and the permitted-transition
// check both paths are validated against.
package difficultymanager

import (
	"math"
	"math/big"

	utilmath "github.com/shaicoin/shaicoin/domain/consensus/utils/math"
)

// VariantBSwitchHeight is the tip height above which Variant B (the
// tip/tip.parent interval) replaces Variant A (the candidate/tip
// interval) for the primary retarget path.
const VariantBSwitchHeight = 4349

// Variant identifies which retarget/permitted-transition rule pair
// applies.
type Variant int

const (
	// VariantA is the single-interval retarget used at height <= 4349.
	VariantA Variant = iota
	// VariantB is the tip/tip.parent interval retarget used above
	// height 4349.
	VariantB
	// VariantC is the moving-window PID controller, selected per
	// network rather than by height.
	VariantC
)

// BlockInfo exposes the fields the retarget needs from a block without
// requiring a concrete block type; tests and callers supply their own
// implementation.
type BlockInfo interface {
	Height() uint64
	Time() uint32
	Bits() uint32
	Parent() BlockInfo
}

// Params bundles the network constants the retarget is evaluated
// against, drawn from dagconfig.Params.
type Params struct {
	TargetSpacing   uint32
	PowLimitCompact uint32
	PowLimit        *big.Int
	NoRetargeting   bool
}

// VariantForHeight returns the primary-path variant (A or B) that
// applies to a block at the given tip height. It never returns
// VariantC; callers select that explicitly per network.
func VariantForHeight(tipHeight uint64) Variant {
	if tipHeight > VariantBSwitchHeight {
		return VariantB
	}
	return VariantA
}

// NextBits implements spec.md §4.6 variants A and B: next_bits(tip, CP).
// candidateTime is the time field of the header being built on top of
// tip. If CP.NoRetargeting is set (regtest), tip.Bits() is returned
// unchanged.
func NextBits(tip BlockInfo, candidateTime uint32, params Params) uint32 {
	if params.NoRetargeting {
		return tip.Bits()
	}

	var laterTime, earlierTime int64
	switch VariantForHeight(tip.Height()) {
	case VariantB:
		parent := tip.Parent()
		if parent == nil {
			return tip.Bits()
		}
		laterTime, earlierTime = int64(tip.Time()), int64(parent.Time())
	default:
		laterTime, earlierTime = int64(candidateTime), int64(tip.Time())
	}

	oldBits := tip.Bits()
	d := laterTime - earlierTime - int64(params.TargetSpacing)
	newBits := retargetSingleInterval(oldBits, d, int64(params.TargetSpacing))
	return clampBits(newBits, params)
}

// retargetSingleInterval implements the shared map()-based formula used
// by both variant A and variant B; only the interval the caller measured
// d over differs between them.
func retargetSingleInterval(oldBits uint32, d, spacing int64) uint32 {
	old := utilmath.CompactToBig(oldBits)
	var newTarget *big.Int

	switch {
	case d >= 42:
		d = clampInt64(d, 42, 600)
		numer := mapLinear(d, 42, 600, 102, 111)
		newTarget = utilmath.MulDivSmall(old, numer, 100)
	case d <= -42:
		d = clampInt64(-d, 42, spacing)
		denom := mapLinear(d, 42, spacing, 101, 105)
		newTarget = utilmath.MulDivSmall(old, 100, denom)
	default:
		return oldBits
	}
	return utilmath.BigToCompact(newTarget)
}

// NextBitsPID implements spec.md §4.6 variant C, the moving-window PID
// controller. times holds the last W+1 block times in chronological
// order (oldest first); its length must be exactly W+1 for the sampled
// deltas to line up, matching GetNextWorkRequired_PID's fixed window.
func NextBitsPID(times []uint32, oldBits uint32, params Params) uint32 {
	const (
		window  = 4
		spacing = 300
		coefP   = 0.716
		coefI   = 0.333
		coefD   = 0.042
	)
	if len(times) != window+1 {
		return oldBits
	}

	var integral, u float64
	for i := 1; i < window; i++ {
		dt := float64(int64(times[i]) - int64(times[i-1]))
		e := float64(spacing) - dt

		ePrev := float64(0)
		if i > 1 {
			prevDt := float64(int64(times[i-1]) - int64(times[i-2]))
			ePrev = float64(spacing) - prevDt
		}
		integral += e

		p := coefP * e
		ii := coefI * integral
		var d float64
		if dt != 0 {
			d = coefD * (e - ePrev) / dt
		}
		u += p + ii + d
	}

	r := int64(math.Round(u / float64(window-1)))

	old := utilmath.CompactToBig(oldBits)
	var newTarget *big.Int
	switch {
	case r < -42:
		r = clampInt64(-r, 42, spacing)
		numer := mapLinear(r, 42, spacing, 105, 132)
		newTarget = utilmath.MulDivSmall(old, numer, 100)
	case r > 42:
		r = clampInt64(r, 42, int64(1.24*spacing))
		denom := mapLinear(r, 42, int64(1.24*spacing), 102, 116)
		newTarget = utilmath.MulDivSmall(old, 100, denom)
	default:
		newTarget = old
	}
	return clampBits(utilmath.BigToCompact(newTarget), params)
}

// IsTransitionPermitted implements spec.md §4.6's permitted-transition
// check: accept iff new falls within the asymmetric band the given
// variant allows around old. Variant C shares Variant A's bounds.
func IsTransitionPermitted(oldBits, newBits uint32, variant Variant) bool {
	old := utilmath.CompactToBig(oldBits)
	new_ := utilmath.CompactToBig(newBits)
	if old.Sign() == 0 {
		return false
	}

	var loNum, loDen, hiNum, hiDen int64
	switch variant {
	case VariantB:
		loNum, loDen, hiNum, hiDen = 100, 106, 112, 100
	default:
		loNum, loDen, hiNum, hiDen = 100, 117, 133, 100
	}

	lo := utilmath.MulDivSmall(old, loNum, loDen)
	hi := utilmath.MulDivSmall(old, hiNum, hiDen)
	return new_.Cmp(lo) >= 0 && new_.Cmp(hi) <= 0
}

// clampBits clamps a computed target to [1, pow_limit_compact], per
// spec.md §4.6; a target that decoded to zero is replaced with the
// pow limit rather than accepted as-is.
func clampBits(bits uint32, params Params) uint32 {
	target := utilmath.CompactToBig(bits)
	if target.Sign() == 0 {
		return params.PowLimitCompact
	}
	if target.Cmp(params.PowLimit) > 0 {
		return params.PowLimitCompact
	}
	return bits
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// mapLinear implements spec.md §4.6's map(x, a->u, b->v) helper using
// integer arithmetic throughout, matching the reference formula exactly.
func mapLinear(x, a, b, u, v int64) int64 {
	return (x-a)*(v-u)/(b-a) + u
}
