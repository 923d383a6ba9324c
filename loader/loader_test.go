package loader_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/dijkstra"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/loader"
)

func TestLoadRoadMapFile(t *testing.T) {
	g := core.NewGraph()
	st, err := loader.LoadRoadMapFile(filepath.Join("testdata", "simple.map"), g)
	require.NoError(t, err)
	require.Equal(t, loader.Stats{Vertices: 6, Edges: 6, Skipped: 1}, st)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())

	e, ok := g.Edge(geo.New(4, 1), geo.New(4, 2))
	require.True(t, ok)
	require.Equal(t, "Elm St", e.RoadName)
	require.Equal(t, "residential", e.RoadType)
	require.InDelta(t, geo.New(4, 1).DistanceTo(geo.New(4, 2)), e.Length, 1e-12)

	unnamed, ok := g.Edge(geo.New(-5, -5), geo.New(-6, -6))
	require.True(t, ok)
	require.Empty(t, unnamed.RoadName)
	require.Equal(t, "service", unnamed.RoadType)

	res, err := dijkstra.ShortestPath(g, geo.New(1, 1), geo.New(7, 3))
	require.NoError(t, err)
	require.Equal(t, []geo.Location{geo.New(1, 1), geo.New(4, 1), geo.New(7, 3)}, res.Path)
}

func TestLoadRoadMap_Malformed(t *testing.T) {
	cases := map[string]string{
		"unquoted name":    `1 1 2 2 Main residential`,
		"one quote":        `1 1 2 2 "Main residential`,
		"three coords":     `1 1 2 "Main" residential`,
		"bad float":        `1 x 2 2 "Main" residential`,
		"missing type":     `1 1 2 2 "Main"`,
		"two-word type":    `1 1 2 2 "Main" living street`,
		"lat out of range": `95 1 2 2 "Main" residential`,
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			g := core.NewGraph()
			input := "0 0 0.5 0.5 \"Ok Rd\" residential\n" + line + "\n"
			st, err := loader.LoadRoadMap(strings.NewReader(input), g)
			require.Error(t, err)
			require.True(t, errors.Is(err, loader.ErrMalformedLine))
			require.Contains(t, err.Error(), "line 2")
			require.Equal(t, 1, st.Edges, "segments before the bad line stay loaded")
		})
	}
}

func TestLoadRoadMap_QuotedNameWithSpaces(t *testing.T) {
	g := core.NewGraph()
	_, err := loader.LoadRoadMap(strings.NewReader(`1 1 2 2 "Avenue of the "Stars"" boulevard`), g)
	require.NoError(t, err)
	e, ok := g.Edge(geo.New(1, 1), geo.New(2, 2))
	require.True(t, ok)
	require.Equal(t, `Avenue of the "Stars"`, e.RoadName)
}

func TestLoadRoadMap_Errors(t *testing.T) {
	_, err := loader.LoadRoadMap(strings.NewReader(""), nil)
	require.True(t, errors.Is(err, loader.ErrNilGraph))

	_, err = loader.LoadRoadMapFile(filepath.Join("testdata", "absent.map"), core.NewGraph())
	require.Error(t, err)
}

func TestLoadOSMFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join("testdata", "tiny.osm")

	t.Run("all highways", func(t *testing.T) {
		g := core.NewGraph()
		st, err := loader.LoadOSMFile(ctx, path, g)
		require.NoError(t, err)
		require.Equal(t, loader.Stats{Vertices: 5, Edges: 8, Skipped: 1}, st)

		n1, n2 := geo.New(0, 0), geo.New(0, 0.001)
		n3, n4, n5 := geo.New(0, 0.002), geo.New(0.001, 0.002), geo.New(0.001, 0)

		e, ok := g.Edge(n1, n2)
		require.True(t, ok)
		require.Equal(t, "First St", e.RoadName)
		_, ok = g.Edge(n2, n1)
		require.True(t, ok, "two-way street")

		_, ok = g.Edge(n3, n4)
		require.True(t, ok)
		_, ok = g.Edge(n4, n3)
		require.False(t, ok, "oneway=yes")

		_, ok = g.Edge(n5, n4)
		require.True(t, ok)
		_, ok = g.Edge(n4, n5)
		require.False(t, ok, "oneway=-1")

		footway, ok := g.Edge(n1, n5)
		require.True(t, ok)
		require.Equal(t, "footway", footway.RoadType)
	})

	t.Run("filtered highways", func(t *testing.T) {
		g := core.NewGraph()
		st, err := loader.LoadOSMFile(ctx, path, g, loader.WithHighways("residential", "primary"))
		require.NoError(t, err)
		require.Equal(t, loader.Stats{Vertices: 4, Edges: 5, Skipped: 1}, st)
		require.False(t, g.HasVertex(geo.New(0.001, 0)))
	})
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]loader.Format{
		"a.osm":     loader.FormatXML,
		"a.xml":     loader.FormatXML,
		"a.osm.pbf": loader.FormatPBF,
		"A.PBF":     loader.FormatPBF,
	} {
		got, err := loader.FormatFromPath(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	_, err := loader.FormatFromPath("a.geojson")
	require.True(t, errors.Is(err, loader.ErrUnknownFormat))
	_, err = loader.LoadOSMFile(context.Background(), "a.geojson", core.NewGraph())
	require.True(t, errors.Is(err, loader.ErrUnknownFormat))
}
