package export

import (
	"errors"
	"fmt"

	geojson "github.com/paulmach/go.geojson"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/search"
)

var (
	// ErrEmptyRoute is returned for a nil result or an empty path.
	ErrEmptyRoute = errors.New("export: empty route")

	// ErrMissingEdge is returned when consecutive path locations are not joined by an edge in g.
	ErrMissingEdge = errors.New("export: path edge not in graph")
)

// FeatureCollection converts res into GeoJSON. g supplies road names for the hops.
func FeatureCollection(g *core.Graph, res *search.Result, algo string) (*geojson.FeatureCollection, error) {
	if res == nil || len(res.Path) == 0 {
		return nil, ErrEmptyRoute
	}
	if g == nil {
		return nil, search.ErrNilGraph
	}

	roads, err := roadNames(g, res.Path)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	if len(res.Path) > 1 {
		line := make([][]float64, len(res.Path))
		for i, l := range res.Path {
			line[i] = position(l)
		}
		f := geojson.NewLineStringFeature(line)
		f.SetProperty("algorithm", algo)
		f.SetProperty("length_km", res.Length)
		f.SetProperty("hops", res.Hops)
		f.SetProperty("visited", res.Visited)
		f.SetProperty("roads", roads)
		fc.AddFeature(f)
	}

	fc.AddFeature(point(res.Path[0], "start"))
	fc.AddFeature(point(res.Path[len(res.Path)-1], "goal"))

	return fc, nil
}

// MarshalRoute is FeatureCollection followed by JSON encoding.
func MarshalRoute(g *core.Graph, res *search.Result, algo string) ([]byte, error) {
	fc, err := FeatureCollection(g, res, algo)
	if err != nil {
		return nil, err
	}

	return fc.MarshalJSON()
}

func position(l geo.Location) []float64 {
	p := l.Point()
	return []float64{p.Lon(), p.Lat()}
}

func point(l geo.Location, role string) *geojson.Feature {
	f := geojson.NewPointFeature(position(l))
	f.SetProperty("role", role)
	return f
}

// roadNames lists road names along path, collapsing repeats of the same road.
// Unnamed segments are reported by their road type.
func roadNames(g *core.Graph, path []geo.Location) ([]string, error) {
	names := []string{}
	for i := 1; i < len(path); i++ {
		e, ok := g.Edge(path[i-1], path[i])
		if !ok {
			return nil, fmt.Errorf("%w: %s→%s", ErrMissingEdge, path[i-1], path[i])
		}
		name := e.RoadName
		if name == "" {
			name = e.RoadType
		}
		if len(names) == 0 || names[len(names)-1] != name {
			names = append(names, name)
		}
	}

	return names, nil
}
