package externalapi

// CycleLength is the fixed size of the cycle array carried on every header,
// regardless of the grid size actually used to find it.
const CycleLength = 1992

// CycleSentinel marks an unused slot in a Cycle.
const CycleSentinel uint16 = 0xFFFF

// Cycle is the fixed-length Hamiltonian-cycle solution attached to a
// header. The first N entries (N the graph's grid size) are a permutation
// of [0, N) starting with 0; the remainder are CycleSentinel.
type Cycle [CycleLength]uint16

// EmptyCycle returns a Cycle with every slot set to CycleSentinel, the
// value substituted for Cycle when computing BodyHash.
func EmptyCycle() Cycle {
	var c Cycle
	for i := range c {
		c[i] = CycleSentinel
	}
	return c
}

// Length returns the index of the first sentinel in the cycle, i.e. the
// grid size the cycle was solved against. Returns CycleLength if there is
// no sentinel.
func (c *Cycle) Length() int {
	for i, v := range c {
		if v == CycleSentinel {
			return i
		}
	}
	return CycleLength
}

// BlockHeader is the fixed-shape consensus header. RandomXMix is non-nil
// only for the earliest, pre-V2 variant; later headers omit it entirely
// from both the in-memory record and the serialized wire form.
type BlockHeader struct {
	Version     int32
	PrevHash    DomainHash
	MerkleRoot  DomainHash
	Time        uint32
	Bits        uint32
	Nonce       uint32
	Cycle       Cycle
	RandomXMix  *DomainHash
}

// WithoutCycleAndMix returns a shallow copy of the header with Cycle
// replaced by the all-sentinel array and RandomXMix zeroed, the shape
// BodyHash is computed over.
func (h *BlockHeader) WithoutCycleAndMix() *BlockHeader {
	clone := *h
	clone.Cycle = EmptyCycle()
	if clone.RandomXMix != nil {
		zero := DomainHash{}
		clone.RandomXMix = &zero
	}
	return &clone
}
