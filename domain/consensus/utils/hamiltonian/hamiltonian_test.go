package hamiltonian_test

import (
	"testing"
	"time"

	"github.com/shaicoin/shaicoin/domain/consensus/model/externalapi"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/graph"
	"github.com/shaicoin/shaicoin/domain/consensus/utils/hamiltonian"
)

// ringGraph returns the graph whose only edges are the ones connecting i
// and i+1 (mod n), so 0,1,...,n-1 is its unique Hamiltonian cycle up to
// direction and starting point.
func ringGraph(n uint16) *graph.Graph {
	g := &graph.Graph{N: n, Edges: make([][]bool, n)}
	for i := range g.Edges {
		g.Edges[i] = make([]bool, n)
	}
	for i := uint16(0); i < n; i++ {
		j := (i + 1) % n
		g.Edges[i][j] = true
		g.Edges[j][i] = true
	}
	return g
}

func cycleOf(values ...uint16) *externalapi.Cycle {
	c := externalapi.EmptyCycle()
	for i, v := range values {
		c[i] = v
	}
	return &c
}

func TestVerifyAcceptsRingOrder(t *testing.T) {
	g := ringGraph(6)
	cycle := cycleOf(0, 1, 2, 3, 4, 5)
	if !hamiltonian.Verify(g, cycle) {
		t.Fatal("Verify rejected the ring's own cycle order")
	}
}

func TestVerifyRejectsWrongStart(t *testing.T) {
	g := ringGraph(6)
	cycle := cycleOf(1, 2, 3, 4, 5, 0)
	if hamiltonian.Verify(g, cycle) {
		t.Fatal("Verify accepted a cycle not starting at vertex 0")
	}
}

func TestVerifyRejectsDuplicateVertex(t *testing.T) {
	g := ringGraph(6)
	cycle := cycleOf(0, 1, 2, 3, 4, 4)
	if hamiltonian.Verify(g, cycle) {
		t.Fatal("Verify accepted a cycle with a duplicate vertex")
	}
}

func TestVerifyRejectsNonAdjacentStep(t *testing.T) {
	g := ringGraph(6)
	cycle := cycleOf(0, 2, 1, 3, 4, 5)
	if hamiltonian.Verify(g, cycle) {
		t.Fatal("Verify accepted a cycle with a non-adjacent step")
	}
}

func TestVerifyRejectsWrongLength(t *testing.T) {
	g := ringGraph(6)
	cycle := cycleOf(0, 1, 2, 3, 4)
	if hamiltonian.Verify(g, cycle) {
		t.Fatal("Verify accepted a cycle shorter than g.N")
	}
}

func TestSolveFindsAndVerifiesOnRing(t *testing.T) {
	g := ringGraph(10)
	cycle, ok := hamiltonian.Solve(g, time.Second)
	if !ok {
		t.Fatal("Solve failed to find the ring's unique cycle")
	}
	if !hamiltonian.Verify(g, &cycle) {
		t.Fatal("Solve returned a cycle that Verify rejects")
	}
}

func TestSolveFailsWithinDeadlineOnDisconnectedGraph(t *testing.T) {
	n := uint16(8)
	g := &graph.Graph{N: n, Edges: make([][]bool, n)}
	for i := range g.Edges {
		g.Edges[i] = make([]bool, n)
	}
	// Vertex n-1 has no edges at all: no Hamiltonian cycle can exist.
	_, ok := hamiltonian.Solve(g, 200*time.Millisecond)
	if ok {
		t.Fatal("Solve reported success on a graph with an isolated vertex")
	}
}
