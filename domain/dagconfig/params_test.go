package dagconfig_test

import (
	"testing"

	utilmath "github.com/shaicoin/shaicoin/domain/consensus/utils/math"
	. "github.com/shaicoin/shaicoin/domain/dagconfig"
)

func TestDefaultNetworksRegistered(t *testing.T) {
	tests := []struct {
		name   string
		params *Params
	}{
		{"mainnet", &MainnetParams},
		{"testnet", &TestnetParams},
		{"signet", &SignetParams},
		{"regtest", &RegtestParams},
	}
	for _, test := range tests {
		if err := Register(test.params); err != ErrDuplicateNet {
			t.Errorf("Register(%s) = %v, want ErrDuplicateNet since it's registered by init()", test.name, err)
		}
	}
}

func TestRegisterRejectsDuplicateNet(t *testing.T) {
	custom := &Params{Name: "custom", Net: Net(0x12345678)}
	if err := Register(custom); err != nil {
		t.Fatalf("Register of a fresh Net failed: %v", err)
	}
	if err := Register(custom); err != ErrDuplicateNet {
		t.Errorf("second Register of the same Net = %v, want ErrDuplicateNet", err)
	}
}

func TestMainnetPowLimitMatchesGenesisBits(t *testing.T) {
	if got := utilmath.BigToCompact(MainnetParams.PowLimit); got != MainnetParams.PowLimitCompact {
		t.Errorf("BigToCompact(MainnetParams.PowLimit) = %08x, want %08x", got, MainnetParams.PowLimitCompact)
	}
	if MainnetParams.GenesisHeader.Bits != MainnetParams.PowLimitCompact {
		t.Errorf("mainnet genesis bits = %08x, want the network's pow limit %08x",
			MainnetParams.GenesisHeader.Bits, MainnetParams.PowLimitCompact)
	}
}

func TestNewSignetParamsDerivesMessageStart(t *testing.T) {
	a := NewSignetParams([]byte("challenge-a"))
	b := NewSignetParams([]byte("challenge-b"))
	if a.MessageStart == b.MessageStart {
		t.Error("two different signet challenges produced the same MessageStart")
	}
	again := NewSignetParams([]byte("challenge-a"))
	if a.MessageStart != again.MessageStart {
		t.Error("NewSignetParams is not deterministic for the same challenge")
	}
}

func TestRegtestHasNoRetargeting(t *testing.T) {
	if !RegtestParams.NoRetargeting {
		t.Error("regtest should disable retargeting")
	}
}
