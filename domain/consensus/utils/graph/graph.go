// Package graph deterministically builds the undirected graph a cycle
// solution must be Hamiltonian over, per spec.md §4.3. Two independent
// generations exist (V1 for the V1/V2 PoW variants, V2 for V3); the
// verifier picks one by header time, mirroring pow.CheckProofOfWork.
package graph

import (
	"encoding/hex"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
)

// MinGridSize and MaxGridSize bound every grid size this chain can
// produce, regardless of generation.
const (
	MinGridSize = 512
	MaxGridSize = 1992
)

// Graph is a symmetric adjacency matrix over N vertices with a zero
// diagonal, transient for the duration of a single verification or mining
// attempt.
type Graph struct {
	N     uint16
	Edges [][]bool
}

func newGraph(n uint16) *Graph {
	edges := make([][]bool, n)
	for i := range edges {
		edges[i] = make([]bool, n)
	}
	return &Graph{N: n, Edges: edges}
}

func (g *Graph) set(i, j uint16, value bool) {
	g.Edges[i][j] = value
	g.Edges[j][i] = value
}

// HasEdge reports whether i and j are adjacent. Undefined for i == j or
// either index out of range, same as the reference algorithm.
func (g *Graph) HasEdge(i, j uint16) bool {
	return g.Edges[i][j]
}

// GridSizeV1 implements the grid-size selector used by PoW variants V1 and
// V2: the first 4 hex characters of the seed, read as a big-endian 16-bit
// integer, mapped into [512, 1992) across 1480 equal-width segments.
func GridSizeV1(seed *externalapi.DomainHash) uint16 {
	seedHex := hex.EncodeToString(seed.ByteSlice())
	g := hexUint16(seedHex[:4])

	const (
		min      = MinGridSize
		max      = MaxGridSize
		segments = 1480
	)
	step := float64(max-min) / float64(segments)
	return uint16(min + int(float64(int(g)%segments)*step))
}

// GridSizeV2 implements the grid-size selector used by PoW variant V3. The
// interval [min=2000, max=1992) is degenerate by construction and is
// preserved verbatim per spec.md §9: the result always saturates to 1992.
func GridSizeV2(seed *externalapi.DomainHash) uint16 {
	seedHex := hex.EncodeToString(seed.ByteSlice())
	g := hexUint32(seedHex[:8])

	const (
		min = 2000
		max = MaxGridSize
	)
	span := max - min // negative in Go's int arithmetic; % below mirrors it
	candidate := min + int(g)%span
	if candidate > max {
		return max
	}
	return uint16(candidate)
}

func hexDigit(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 0
	}
}

func hexUint16(s string) uint16 {
	var v uint16
	for i := 0; i < len(s); i++ {
		v = v<<4 | uint16(hexDigit(s[i]))
	}
	return v
}

func hexUint32(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		v = v<<4 | uint32(hexDigit(s[i]))
	}
	return v
}

// BuildV1 implements edge generation V1, used by PoW variants V1 and V2.
// For each i < j < n, a byte is carved out of the seed's hex string at a
// position keyed by (i, j), and the edge exists iff that byte is < 128.
func BuildV1(seed *externalapi.DomainHash, n uint16) *Graph {
	seedHex := hex.EncodeToString(seed.ByteSlice())
	g := newGraph(n)
	for i := uint16(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			idx := (int(i)*int(n) + int(j)) * 2 % 64
			c1 := seedHex[idx]
			c2 := seedHex[(idx+1)%64]
			ev := hexDigit(c1)<<4 | hexDigit(c2)
			if ev < 128 {
				g.set(i, j, true)
			}
		}
	}
	return g
}

// BuildV2 implements edge generation V2, used by PoW variant V3. A 64-bit
// Mersenne Twister is seeded with the low 64 bits of the seed (the first 8
// bytes, read little-endian) and drawn from MSB-first, 32 bits at a time,
// to assign n*(n-1)/2 edge bits in lexicographic (i, j) order.
func BuildV2(seed *externalapi.DomainHash, n uint16) *Graph {
	seedBytes := seed.ByteArray()
	var low8 [8]byte
	copy(low8[:], seedBytes[:8])
	rng := newMT19937_64(le64(low8))

	g := newGraph(n)

	var word uint32
	var bitsLeft uint
	nextBit := func() bool {
		if bitsLeft == 0 {
			word = uint32(rng.next() >> 32)
			bitsLeft = 32
		}
		bitsLeft--
		bit := (word >> bitsLeft) & 1
		return bit != 0
	}

	for i := uint16(0); i < n; i++ {
		for j := i + 1; j < n; j++ {
			if nextBit() {
				g.set(i, j, true)
			}
		}
	}
	return g
}

func le64(b [8]byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}
