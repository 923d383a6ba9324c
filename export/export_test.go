package export_test

import (
	"errors"
	"testing"

	geojson "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/dijkstra"
	"github.com/katalvlaran/roadgraph/export"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

var (
	locA = geo.New(1, 1)
	locB = geo.New(4, 1)
	locC = geo.New(4, 2)
	locD = geo.New(5, 2)
)

func network(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range []geo.Location{locA, locB, locC, locD} {
		g.AddVertex(l)
	}
	require.NoError(t, g.AddEdge(locA, locB, "Main St", "residential", 1))
	require.NoError(t, g.AddEdge(locB, locC, "Main St", "residential", 1))
	require.NoError(t, g.AddEdge(locC, locD, "", "service", 1))

	return g
}

func TestMarshalRoute(t *testing.T) {
	g := network(t)
	res, err := dijkstra.ShortestPath(g, locA, locD)
	require.NoError(t, err)

	raw, err := export.MarshalRoute(g, res, "dijkstra")
	require.NoError(t, err)

	fc, err := geojson.UnmarshalFeatureCollection(raw)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	line := fc.Features[0]
	require.True(t, line.Geometry.IsLineString())
	require.Equal(t, [][]float64{{1, 1}, {1, 4}, {2, 4}, {2, 5}}, line.Geometry.LineString)
	require.Equal(t, "dijkstra", line.Properties["algorithm"])
	require.Equal(t, 3.0, line.Properties["length_km"])
	require.Equal(t, 3.0, line.Properties["hops"]) // JSON numbers decode as float64
	require.Equal(t, []interface{}{"Main St", "service"}, line.Properties["roads"])

	start, goal := fc.Features[1], fc.Features[2]
	require.True(t, start.Geometry.IsPoint())
	require.Equal(t, []float64{1, 1}, start.Geometry.Point)
	require.Equal(t, "start", start.Properties["role"])
	require.Equal(t, []float64{2, 5}, goal.Geometry.Point)
	require.Equal(t, "goal", goal.Properties["role"])
}

func TestFeatureCollection_SinglePoint(t *testing.T) {
	g := network(t)
	res, err := dijkstra.ShortestPath(g, locB, locB)
	require.NoError(t, err)

	fc, err := export.FeatureCollection(g, res, "dijkstra")
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)
	require.True(t, fc.Features[0].Geometry.IsPoint())
}

func TestFeatureCollection_Errors(t *testing.T) {
	g := network(t)

	_, err := export.FeatureCollection(g, nil, "bfs")
	require.True(t, errors.Is(err, export.ErrEmptyRoute))

	_, err = export.FeatureCollection(g, &search.Result{}, "bfs")
	require.True(t, errors.Is(err, export.ErrEmptyRoute))

	bogus := &search.Result{Path: []geo.Location{locA, locC}, Hops: 1}
	_, err = export.FeatureCollection(g, bogus, "bfs")
	require.True(t, errors.Is(err, export.ErrMissingEdge))

	_, err = export.FeatureCollection(nil, bogus, "bfs")
	require.True(t, errors.Is(err, search.ErrNilGraph))
}
