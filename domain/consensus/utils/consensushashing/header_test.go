package consensushashing_test

import (
	"testing"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/consensushashing"
)

func TestHeaderHashMatchesCycleHash(t *testing.T) {
	header := &externalapi.BlockHeader{
		Version: 1,
		Time:    1234,
		Bits:    0x1f7fffff,
		Nonce:   42,
		Cycle:   externalapi.EmptyCycle(),
	}
	if !consensushashing.HeaderHash(header).Equal(consensushashing.CycleHash(&header.Cycle)) {
		t.Error("HeaderHash and CycleHash disagree for the same header")
	}
}

func TestHeaderHashIgnoresEverythingButCycle(t *testing.T) {
	a := &externalapi.BlockHeader{Version: 1, Time: 1000, Bits: 1, Nonce: 1, Cycle: externalapi.EmptyCycle()}
	b := &externalapi.BlockHeader{Version: 2, Time: 2000, Bits: 2, Nonce: 2, Cycle: externalapi.EmptyCycle()}
	if !consensushashing.HeaderHash(a).Equal(consensushashing.HeaderHash(b)) {
		t.Error("HeaderHash should depend only on Cycle, not the rest of the header")
	}
}

func TestBodyHashIgnoresCycleButNotRest(t *testing.T) {
	base := &externalapi.BlockHeader{Version: 1, Time: 1000, Bits: 0x1f7fffff, Nonce: 7, Cycle: externalapi.EmptyCycle()}
	withDifferentCycle := *base
	withDifferentCycle.Cycle[0] = 0
	withDifferentCycle.Cycle[1] = 1

	if !consensushashing.BodyHash(base).Equal(consensushashing.BodyHash(&withDifferentCycle)) {
		t.Error("BodyHash should not depend on Cycle")
	}

	withDifferentNonce := *base
	withDifferentNonce.Nonce = 8
	if consensushashing.BodyHash(base).Equal(consensushashing.BodyHash(&withDifferentNonce)) {
		t.Error("BodyHash should depend on Nonce")
	}
}
