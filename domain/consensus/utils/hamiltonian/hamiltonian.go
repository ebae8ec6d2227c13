// Package hamiltonian verifies and searches for Hamiltonian cycles over a
// graph.Graph, per spec.md §4.4. Verify is consensus-critical and carries
// no deadline; Solve is the producer-side backtracking search used only by
// the miner.
package hamiltonian

import (
	"time"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/graph"
)

// Verify reports whether cycle is a Hamiltonian cycle of g: its first
// sentinel is at index g.N, its first g.N entries are a permutation of
// [0, g.N) starting with 0, and consecutive entries (cyclically) are
// adjacent in g. Slots after the first sentinel are not examined.
func Verify(g *graph.Graph, cycle *externalapi.Cycle) bool {
	n := int(g.N)
	if cycle.Length() != n {
		return false
	}
	if cycle[0] != 0 {
		return false
	}

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := cycle[i]
		if int(v) >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	for i := 1; i < n; i++ {
		if !g.HasEdge(cycle[i-1], cycle[i]) {
			return false
		}
	}
	return g.HasEdge(cycle[n-1], cycle[0])
}

// Solve performs a time-bounded backtracking search for a Hamiltonian
// cycle of g starting from vertex 0, returning ok=false if deadline
// elapses before a solution is found. This is a producer-side policy only;
// Verify never imposes a deadline.
func Solve(g *graph.Graph, deadline time.Duration) (externalapi.Cycle, bool) {
	n := int(g.N)
	path := make([]uint16, n)
	onPath := make([]bool, n)
	path[0] = 0
	onPath[0] = true

	deadlineAt := time.Now().Add(deadline)
	found := solveFrom(g, path, onPath, 1, deadlineAt)
	if !found {
		return externalapi.Cycle{}, false
	}

	cycle := externalapi.EmptyCycle()
	copy(cycle[:n], path)
	return cycle, true
}

func solveFrom(g *graph.Graph, path []uint16, onPath []bool, pos int, deadlineAt time.Time) bool {
	n := len(path)
	if pos == n {
		return g.HasEdge(path[n-1], path[0])
	}

	if time.Now().After(deadlineAt) {
		return false
	}

	for v := uint16(1); v < uint16(n); v++ {
		if onPath[v] || !g.HasEdge(path[pos-1], v) {
			continue
		}
		path[pos] = v
		onPath[v] = true
		if solveFrom(g, path, onPath, pos+1, deadlineAt) {
			return true
		}
		onPath[v] = false
	}
	return false
}
