package difficultymanager_test

import (
	"math/big"
	"testing"

	"github.com/shaicoin/shaicoin/domain/consensus/processes/difficultymanager"
	utilmath "github.com/shaicoin/shaicoin/domain/consensus/utils/math"
)

var testPowLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 247), big.NewInt(1))

var testParams = difficultymanager.Params{
	TargetSpacing:   120,
	PowLimitCompact: 0x1f7fffff,
	PowLimit:        testPowLimit,
}

// fakeBlock is a minimal difficultymanager.BlockInfo for retarget tests.
type fakeBlock struct {
	height uint64
	time   uint32
	bits   uint32
	parent *fakeBlock
}

func (b *fakeBlock) Height() uint64 { return b.height }
func (b *fakeBlock) Time() uint32   { return b.time }
func (b *fakeBlock) Bits() uint32   { return b.bits }
func (b *fakeBlock) Parent() difficultymanager.BlockInfo {
	if b.parent == nil {
		return nil
	}
	return b.parent
}

func TestVariantForHeight(t *testing.T) {
	if difficultymanager.VariantForHeight(0) != difficultymanager.VariantA {
		t.Error("height 0 should select VariantA")
	}
	if difficultymanager.VariantForHeight(difficultymanager.VariantBSwitchHeight) != difficultymanager.VariantA {
		t.Error("the switch height itself should still select VariantA")
	}
	if difficultymanager.VariantForHeight(difficultymanager.VariantBSwitchHeight+1) != difficultymanager.VariantB {
		t.Error("one above the switch height should select VariantB")
	}
}

func TestNextBitsUnchangedWithinTolerance(t *testing.T) {
	tip := &fakeBlock{height: 10, time: 1000, bits: 0x1e123456}
	candidateTime := tip.time + testParams.TargetSpacing // d == 0
	got := difficultymanager.NextBits(tip, candidateTime, testParams)
	if got != tip.bits {
		t.Errorf("NextBits with d=0 = %08x, want unchanged %08x", got, tip.bits)
	}
}

func TestNextBitsEasesWhenBlocksAreSlow(t *testing.T) {
	tip := &fakeBlock{height: 10, time: 1000, bits: 0x1e123456}
	candidateTime := tip.time + testParams.TargetSpacing + 100 // d == 100, well above 42
	got := difficultymanager.NextBits(tip, candidateTime, testParams)
	oldTarget := utilmath.CompactToBig(tip.bits)
	newTarget := utilmath.CompactToBig(got)
	if newTarget.Cmp(oldTarget) <= 0 {
		t.Errorf("a slow interval should ease the target (increase it); old=%s new=%s", oldTarget, newTarget)
	}
}

func TestNextBitsTightensWhenBlocksAreFast(t *testing.T) {
	tip := &fakeBlock{height: 10, time: 1000, bits: 0x1e123456}
	candidateTime := tip.time + 1 // d is strongly negative
	got := difficultymanager.NextBits(tip, candidateTime, testParams)
	oldTarget := utilmath.CompactToBig(tip.bits)
	newTarget := utilmath.CompactToBig(got)
	if newTarget.Cmp(oldTarget) >= 0 {
		t.Errorf("a fast interval should tighten the target (decrease it); old=%s new=%s", oldTarget, newTarget)
	}
}

func TestNextBitsVariantBUsesTipParentInterval(t *testing.T) {
	parent := &fakeBlock{height: difficultymanager.VariantBSwitchHeight + 1, time: 1000, bits: 0x1e123456}
	tip := &fakeBlock{height: difficultymanager.VariantBSwitchHeight + 2, time: 1000 + testParams.TargetSpacing, bits: 0x1e123456, parent: parent}
	// candidateTime is deliberately irrelevant for VariantB: only tip/parent matters.
	got := difficultymanager.NextBits(tip, 999999, testParams)
	if got != tip.bits {
		t.Errorf("VariantB with a spot-on tip/parent interval should leave bits unchanged, got %08x", got)
	}
}

func TestNextBitsNoRetargeting(t *testing.T) {
	tip := &fakeBlock{height: 10, time: 1000, bits: 0x1e123456}
	params := testParams
	params.NoRetargeting = true
	if got := difficultymanager.NextBits(tip, 99999, params); got != tip.bits {
		t.Errorf("NoRetargeting should return the tip's bits unchanged, got %08x", got)
	}
}

func TestNextBitsPIDRequiresExactWindow(t *testing.T) {
	oldBits := uint32(0x1e123456)
	if got := difficultymanager.NextBitsPID([]uint32{1, 2, 3}, oldBits, testParams); got != oldBits {
		t.Errorf("a short times slice should leave bits unchanged, got %08x", got)
	}
}

func TestNextBitsPIDUnchangedOnPerfectSpacing(t *testing.T) {
	oldBits := uint32(0x1e123456)
	times := []uint32{0, 300, 600, 900, 1200} // every interval exactly 300s, matching the PID's spacing
	got := difficultymanager.NextBitsPID(times, oldBits, testParams)
	if got != oldBits {
		t.Errorf("perfectly spaced blocks should leave bits unchanged, got %08x want %08x", got, oldBits)
	}
}

// TestNextBitsPIDUnequalIntervalsMatchesHandComputedBits pins the PID
// controller to a specific numeric result computed by hand, so that
// summing the wrong number of P/I/D terms (the window's W-1 deltas,
// i=1..3 for W=4, not W of them) would be caught even though it leaves
// perfectly-spaced inputs unchanged. times holds intervals of 300s,
// 300s, 600s; times[4] is unused by the controller, which only looks
// at deltas among the first W=4 samples.
//
// e_1 = 0, e_2 = 0, e_3 = -300; integral after each step: 0, 0, -300.
// u = (P+I+D)_1 + (P+I+D)_2 + (P+I+D)_3
//   = 0 + 0 + (0.716*-300 + 0.333*-300 + 0.042*(-300-0)/600)
//   = -214.8 - 99.9 - 0.021 = -314.721
// r = round(u / (W-1)) = round(-314.721 / 3) = round(-104.907) = -105
// r < -42, so: r' = clamp(105, 42, 300) = 105
// numer = mapLinear(105, 42, 300, 105, 132) = (105-42)*(132-105)/(300-42) + 105 = 111
// newTarget = old * 111 / 100
func TestNextBitsPIDUnequalIntervalsMatchesHandComputedBits(t *testing.T) {
	oldBits := utilmath.BigToCompact(big.NewInt(1_000_000))
	times := []uint32{0, 300, 600, 1200, 5000}

	got := difficultymanager.NextBitsPID(times, oldBits, testParams)
	want := utilmath.BigToCompact(big.NewInt(1_110_000))

	if got != want {
		t.Errorf("NextBitsPID with unequal intervals = %08x, want %08x (old=%08x)", got, want, oldBits)
	}
}

func TestIsTransitionPermitted(t *testing.T) {
	old := utilmath.BigToCompact(big.NewInt(1_000_000))

	tests := []struct {
		name    string
		newBits uint32
		variant difficultymanager.Variant
		want    bool
	}{
		{"identical bits, variant A", old, difficultymanager.VariantA, true},
		{"identical bits, variant B", old, difficultymanager.VariantB, true},
		{
			"far too large for variant A",
			utilmath.BigToCompact(big.NewInt(10_000_000)),
			difficultymanager.VariantA,
			false,
		},
		{
			"within variant B's tighter band",
			utilmath.BigToCompact(big.NewInt(1_080_000)),
			difficultymanager.VariantB,
			true,
		},
		{
			"outside variant B's tighter band",
			utilmath.BigToCompact(big.NewInt(1_200_000)),
			difficultymanager.VariantB,
			false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := difficultymanager.IsTransitionPermitted(old, test.newBits, test.variant); got != test.want {
				t.Errorf("IsTransitionPermitted(%08x, %08x, %v) = %v, want %v",
					old, test.newBits, test.variant, got, test.want)
			}
		})
	}
}
