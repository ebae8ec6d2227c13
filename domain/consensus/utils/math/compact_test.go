package math_test

import (
	"math/big"
	"testing"

	utilmath "github.com/shaicoin/shaicoin/domain/consensus/utils/math"
)

func TestCompactRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		compact uint32
	}{
		{"zero", 0},
		{"mainnet pow limit", 0x1f7fffff},
		{"regtest pow limit", 0x207fffff},
		{"small target", 0x01123456},
		{"three byte boundary", 0x03123456},
		{"negative flag set", 0x01800000},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			target := utilmath.CompactToBig(test.compact)
			roundTripped := utilmath.BigToCompact(target)
			again := utilmath.CompactToBig(roundTripped)
			if target.Cmp(again) != 0 {
				t.Fatalf("compact %08x decoded to %s, round-tripped through %08x decoded to %s",
					test.compact, target, roundTripped, again)
			}
		})
	}
}

func TestBigToCompactKnownVectors(t *testing.T) {
	mainPowLimit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 247), big.NewInt(1))
	if got := utilmath.BigToCompact(mainPowLimit); got != 0x1f7fffff {
		t.Fatalf("BigToCompact(2^247-1) = %08x, want 0x1f7fffff", got)
	}

	regtestPowLimit := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	if got := utilmath.BigToCompact(regtestPowLimit); got != 0x207fffff {
		t.Fatalf("BigToCompact(2^255-1) = %08x, want 0x207fffff", got)
	}

	if got := utilmath.BigToCompact(big.NewInt(0)); got != 0 {
		t.Fatalf("BigToCompact(0) = %08x, want 0", got)
	}
}

func TestDecodeCompactNegativeAndOverflow(t *testing.T) {
	tests := []struct {
		name         string
		compact      uint32
		wantNegative bool
		wantOverflow bool
	}{
		{"zero", 0, false, false},
		{"valid mainnet limit", 0x1f7fffff, false, false},
		{"negative sign bit with nonzero mantissa", 0x01800001, true, false},
		{"sign bit with zero mantissa isn't negative", 0x01800000, false, false},
		{"overflowing exponent", 0xff123456, false, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := utilmath.DecodeCompact(test.compact)
			if result.Negative != test.wantNegative {
				t.Errorf("Negative = %v, want %v", result.Negative, test.wantNegative)
			}
			if result.Overflow != test.wantOverflow {
				t.Errorf("Overflow = %v, want %v", result.Overflow, test.wantOverflow)
			}
		})
	}
}

func TestMulDivSmall(t *testing.T) {
	target := big.NewInt(1000)
	got := utilmath.MulDivSmall(target, 3, 2)
	if got.Cmp(big.NewInt(1500)) != 0 {
		t.Fatalf("MulDivSmall(1000, 3, 2) = %s, want 1500", got)
	}
}
