package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/model"
)

// newLine создаёт граф-цепочку a - b - c - d и изолированную зону x.
func newLine() *Graph {
	return NewGraph(
		Edge{A: "a", B: "b"},
		Edge{A: "b", B: "c"},
		Edge{A: "c", B: "d"},
		Edge{A: "x", B: "x"},
	)
}

func TestGraph_Adjacency(t *testing.T) {
	g := newLine()

	assert.Equal(t, []model.ZoneID{"a", "c"}, g.Adjacent("b"))
	assert.True(t, g.IsAdjacent("a", "b"))
	assert.True(t, g.IsAdjacent("b", "a"))
	assert.False(t, g.IsAdjacent("a", "c"))
	assert.False(t, g.IsAdjacent("a", "a"))
	assert.True(t, g.Contains("x"))
	assert.Empty(t, g.Adjacent("x"))
	assert.Equal(t, []model.ZoneID{"a", "b", "c", "d", "x"}, g.Zones())
}

func TestGraph_AdjacentReturnsCopy(t *testing.T) {
	g := newLine()
	n := g.Adjacent("b")
	n[0] = "zzz"
	assert.Equal(t, []model.ZoneID{"a", "c"}, g.Adjacent("b"))
}

func TestGraph_ShortestPath(t *testing.T) {
	g := newLine()

	assert.Equal(t, []model.ZoneID{"a", "b", "c", "d"}, g.ShortestPath("a", "d"))
	assert.Equal(t, []model.ZoneID{"c", "b"}, g.ShortestPath("c", "b"))
	assert.Equal(t, []model.ZoneID{"b"}, g.ShortestPath("b", "b"))
	assert.Nil(t, g.ShortestPath("a", "x"))
	assert.Nil(t, g.ShortestPath("a", "nowhere"))

	assert.Equal(t, 3, g.Distance("a", "d"))
	assert.Equal(t, -1, g.Distance("a", "x"))
}

func TestLoad_DefaultMap(t *testing.T) {
	require.NoError(t, data.LoadZones())

	g, err := Load()
	require.NoError(t, err)

	assert.True(t, g.IsAdjacent(data.ZoneMidLane, data.ZoneRiver))
	assert.Equal(t, 4, g.Distance(data.ZoneBlueBase, data.ZoneRedBase))
	assert.Len(t, g.Zones(), len(data.ZoneIDs()))
}
