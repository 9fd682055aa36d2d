package dcc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// childNames returns the child procedure names of n in insertion order,
// for assertions that don't care about *Function identity.
func childNames(n *CallGraphNode) []string {
	names := make([]string, len(n.Children))
	for i, c := range n.Children {
		names[i] = c.Proc.Name
	}
	return names
}

// Starting with root=A, inserting (A,B), (B,C), (A,B) again, (A,C)
// produces A with children [B,C] and B with child [C], with no duplicate
// A->B arc.
func TestCallGraphDedupesRepeatedArc(t *testing.T) {
	a := NewFunction("A", 0)
	b := NewFunction("B", 0x100)
	c := NewFunction("C", 0x200)

	g := NewCallGraph()
	g.InsertCallerCallee(a, b)
	g.InsertCallerCallee(b, c)
	g.InsertCallerCallee(a, b) // duplicate, must coalesce
	g.InsertCallerCallee(a, c)

	require.Len(t, g.Roots, 1)
	nodeA := g.Roots[0]
	assert.Equal(t, "A", nodeA.Proc.Name)
	assert.Equal(t, []string{"B", "C"}, childNames(nodeA))

	nodeB := nodeA.Children[0]
	assert.Equal(t, []string{"C"}, childNames(nodeB))
}

func TestInsertArcIsIdempotent(t *testing.T) {
	a := NewFunction("A", 0)
	b := NewFunction("B", 0x100)

	g := NewCallGraph()
	g.InsertArc(a, b)
	g.InsertArc(a, b)
	g.InsertArc(a, b)

	node := g.nodeFor(a)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "B", node.Children[0].Proc.Name)
}

func TestInsertAddsArcForNonRootCallerAlreadyInGraph(t *testing.T) {
	a := NewFunction("A", 0)
	b := NewFunction("B", 0x100)
	c := NewFunction("C", 0x200)

	g := NewCallGraph()
	g.InsertCallerCallee(a, b)

	// b is not a root but already appears in the graph as a's callee;
	// Insert must attach the new arc to it instead of silently doing
	// nothing.
	g.Insert(b, c)

	nodeB := g.Roots[0].Children[0]
	assert.Equal(t, []string{"C"}, childNames(nodeB))
}

func TestInsertIsNoOpForUnknownCaller(t *testing.T) {
	a := NewFunction("A", 0)
	x := NewFunction("X", 0x300)
	y := NewFunction("Y", 0x400)

	g := NewCallGraph()
	g.InsertCallerCallee(a, NewFunction("B", 0x100))

	g.Insert(x, y)

	assert.Len(t, g.Roots, 1, "an unknown caller must not create a new root")
}

func TestWriteIndentsByDepthAndStopsAtSeenNodes(t *testing.T) {
	a := NewFunction("A", 0)
	b := NewFunction("B", 0x100)
	c := NewFunction("C", 0x200)

	g := NewCallGraph()
	g.InsertCallerCallee(a, b)
	g.InsertCallerCallee(b, c)
	g.InsertCallerCallee(a, c)

	var buf strings.Builder
	g.Write(&buf)

	want := "A\n" + IndentStr(1) + "B\n" + IndentStr(2) + "C\n" + IndentStr(1) + "C\n"
	assert.Equal(t, want, buf.String())
}
