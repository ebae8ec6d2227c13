// Package math holds the 256-bit target arithmetic shared by the PoW
// verifier and the difficulty controller: the compact ("nBits") codec and
// the handful of big.Int helpers used only by retargeting.
package math

import "math/big"

// bigOne is 1 represented as a big.Int, defined once to avoid the
// allocation overhead of recreating it.
var bigOne = big.NewInt(1)

// oneLsh256 is 1 shifted left 256 bits, the overflow threshold for a
// decoded compact target.
var oneLsh256 = new(big.Int).Lsh(bigOne, 256)

// CompactToBig converts a compact-encoded ("nBits") target into its
// big.Int form. It does not validate the result; use DecodeCompact for a
// decode that reports negative/overflow per spec.
func CompactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := compact >> 24

	var bn big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn.SetUint64(uint64(mantissa))
	} else {
		bn.SetUint64(uint64(mantissa))
		bn.Lsh(&bn, uint(8*(exponent-3)))
	}

	if isNegative {
		bn.Neg(&bn)
	}
	return &bn
}

// BigToCompact converts a big.Int target into its compact ("nBits") form.
func BigToCompact(target *big.Int) uint32 {
	if target.Sign() == 0 {
		return 0
	}

	// Take the mantissa from the absolute value of the target, keeping
	// track of its sign separately.
	var mantissaBytes []byte
	isNegative := target.Sign() < 0
	if isNegative {
		mantissaBytes = new(big.Int).Neg(target).Bytes()
	} else {
		mantissaBytes = target.Bytes()
	}

	exponent := uint32(len(mantissaBytes))

	var mantissa uint32
	if exponent <= 3 {
		for _, b := range mantissaBytes {
			mantissa = mantissa<<8 | uint32(b)
		}
		mantissa <<= 8 * (3 - exponent)
	} else {
		mantissa = uint32(mantissaBytes[0])<<16 | uint32(mantissaBytes[1])<<8 | uint32(mantissaBytes[2])
	}

	// The mantissa's high bit doubles as the sign flag; if it's already
	// set, shift everything right by a byte and bump the exponent so the
	// sign bit stays clear of the magnitude.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := exponent<<24 | mantissa
	if isNegative {
		compact |= 0x00800000
	}
	return compact
}

// DecodeResult is the outcome of decoding a compact target, distinguishing
// the failure modes spec.md §4.1/§7 calls out explicitly: a malformed
// target must be rejected, never silently clamped.
type DecodeResult struct {
	Target    *big.Int
	Negative  bool
	Overflow  bool
}

// DecodeCompact decodes a compact target and reports whether it is
// negative (sign bit set with a non-zero mantissa) or overflowing (magnitude
// would exceed 256 bits).
func DecodeCompact(compact uint32) DecodeResult {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0

	target := CompactToBig(compact &^ 0x00800000) // decode magnitude, sign handled below

	overflow := mantissa != 0 && target.CmpAbs(oneLsh256) >= 0

	return DecodeResult{
		Target:   target,
		Negative: isNegative && mantissa != 0,
		Overflow: overflow,
	}
}

// MulDivSmall computes target*num/den using small non-negative int64
// operands, the only arithmetic shape the difficulty controller needs.
func MulDivSmall(target *big.Int, num, den int64) *big.Int {
	result := new(big.Int).Mul(target, big.NewInt(num))
	return result.Div(result, big.NewInt(den))
}
