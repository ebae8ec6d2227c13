// Package pow composes the hashing, graph and Hamiltonian-cycle primitives
// into the single consensus predicate a block's proof of work must satisfy,
// per spec.md §4.5. Three historical variants are dispatched on header
// time; the verifier never returns an error, only accept/reject.
package pow

import (
	"math/big"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/consensushashing"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/graph"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/hamiltonian"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/hashes"
	utilmath "github.com/shaicoin/shaicoin/domain/consensus/utils/math"
)

// TV2 and TV3 are the header-time activation thresholds separating the
// three PoW variants (spec.md §4.5). Header serialization does not consult
// them: the historical RandomXMix field is written whenever it is non-nil,
// whatever the header time.
const (
	TV2 uint32 = 1723869065
	TV3 uint32 = 1726799420
)

// Variant identifies which of the three historical PoW checks applies to a
// header, selected purely by header time.
type Variant int

const (
	// VariantV1 applies to headers with Time <= TV2.
	VariantV1 Variant = iota
	// VariantV2 applies to headers with TV2 < Time <= TV3.
	VariantV2
	// VariantV3 applies to headers with Time > TV3.
	VariantV3
)

// VariantForTime returns the PoW variant that applies at the given header
// time.
func VariantForTime(time uint32) Variant {
	switch {
	case time <= TV2:
		return VariantV1
	case time <= TV3:
		return VariantV2
	default:
		return VariantV3
	}
}

// CheckParams bundles the inputs check_pow needs, mirroring spec.md §4.5's
// interface: check_pow(time, body_hash, block_hash, bits, cycle, CP).
// BlockHash is only consulted by VariantV2 and VariantV3; callers may leave
// it nil when checking a VariantV1-era header.
type CheckParams struct {
	Time      uint32
	BodyHash  *externalapi.DomainHash
	BlockHash *externalapi.DomainHash
	Bits      uint32
	Cycle     *externalapi.Cycle
}

// CheckProofOfWork implements spec.md §4.5 in full: the common preamble
// (decode and range-check the target against powLimit) followed by the
// variant dispatch selected by params.Time.
func CheckProofOfWork(params CheckParams, powLimit *big.Int) bool {
	decoded := utilmath.DecodeCompact(params.Bits)
	if decoded.Negative || decoded.Overflow || decoded.Target.Sign() == 0 {
		return false
	}
	if decoded.Target.Cmp(powLimit) > 0 {
		return false
	}

	switch VariantForTime(params.Time) {
	case VariantV1:
		return checkV1(params, decoded.Target)
	case VariantV2:
		return checkV2(params, decoded.Target)
	default:
		return checkV3(params, decoded.Target)
	}
}

func checkV1(params CheckParams, target *big.Int) bool {
	cycleHash := consensushashing.CycleHash(params.Cycle)
	if hashes.ToBig(cycleHash).Cmp(target) > 0 {
		return false
	}

	seed := hashes.XOR(params.BodyHash, hashes.Sha256(params.BodyHash.ByteSlice()))
	n := graph.GridSizeV1(seed)
	g := graph.BuildV1(seed, n)
	return hamiltonian.Verify(g, params.Cycle)
}

func checkV2(params CheckParams, target *big.Int) bool {
	if hashes.ToBig(params.BlockHash).Cmp(target) > 0 {
		return false
	}

	seed := params.BodyHash
	n := graph.GridSizeV1(seed)
	g := graph.BuildV1(seed, n)
	return hamiltonian.Verify(g, params.Cycle)
}

func checkV3(params CheckParams, target *big.Int) bool {
	if hashes.ToBig(params.BlockHash).Cmp(target) > 0 {
		return false
	}

	seed := params.BodyHash
	n := graph.GridSizeV2(seed)
	g := graph.BuildV2(seed, n)
	return hamiltonian.Verify(g, params.Cycle)
}
