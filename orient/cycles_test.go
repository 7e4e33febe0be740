package orient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrivast28/ramble-go/bnet"
)

func TestBreakDirectedCycles_NoCycle_Noop(t *testing.T) {
	g := bnet.NewGraph(3)
	_ = g.AddArc(0, 1)
	_ = g.AddArc(1, 2)
	require.NoError(t, BreakDirectedCycles(g, nil))
	assert.True(t, g.HasArc(0, 1) && g.HasArc(1, 2), "acyclic graph should be untouched")
}

func TestBreakDirectedCycles_SimpleCycle_ReversesAnArc(t *testing.T) {
	g := bnet.NewGraph(3)
	_ = g.AddArc(0, 1)
	_ = g.AddArc(1, 2)
	_ = g.AddArc(2, 0)
	require.NoError(t, BreakDirectedCycles(g, nil))
	assert.False(t, g.Directed().HasCycles(), "expected no remaining directed cycle")

	// exactly one of the three original arcs must have been reversed.
	total := 0
	for _, a := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		if g.HasArc(a[0], a[1]) {
			total++
		}
		if g.HasArc(a[1], a[0]) {
			total++
		}
	}
	assert.Equal(t, 3, total, "expected exactly 3 arcs remaining (one reversed)")
}

func TestBreakDirectedCycles_ArcInTwoCycles_IsReversedFirst(t *testing.T) {
	// two triangles sharing arc 0->1: 0->1->2->0 and 0->1->3->0.
	g := bnet.NewGraph(4)
	_ = g.AddArc(0, 1)
	_ = g.AddArc(1, 2)
	_ = g.AddArc(2, 0)
	_ = g.AddArc(1, 3)
	_ = g.AddArc(3, 0)
	require.NoError(t, BreakDirectedCycles(g, nil))
	assert.False(t, g.Directed().HasCycles(), "expected no remaining directed cycle")

	// arc 0->1 belongs to both triangles, so it should be the one reversed.
	assert.False(t, g.HasArc(0, 1))
	assert.True(t, g.HasArc(1, 0), "expected shared arc 0->1 to have been reversed to 1->0")
}
