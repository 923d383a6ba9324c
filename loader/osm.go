package loader

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// Format selects the OSM decoder.
type Format int

const (
	FormatXML Format = iota
	FormatPBF
)

func (f Format) String() string {
	if f == FormatPBF {
		return "pbf"
	}
	return "xml"
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".osm", ".xml":
		return FormatXML, nil
	case ".pbf":
		return FormatPBF, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "file extension '%s' for file '%s'", filepath.Ext(path), path)
	}
}

// OSMScanner is the part of osmxml.Scanner and osmpbf.Scanner used here.
type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// LoadOSMFile opens path, picks the decoder by extension and calls LoadOSM.
func LoadOSMFile(ctx context.Context, path string, g *core.Graph, opts ...Option) (Stats, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Stats{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, errors.Wrap(err, "File open")
	}
	defer f.Close()

	return LoadOSM(ctx, f, format, g, opts...)
}

// way is the routing-relevant part of an osm.Way.
type way struct {
	nodes     []osm.NodeID
	name      string
	highway   string
	direction int // 0 both ways, 1 forward only, -1 backward only
}

// LoadOSM decodes an OSM stream in a single pass, then adds every highway way
// as consecutive segments. Way nodes without coordinates in the stream are
// counted as Skipped.
func LoadOSM(ctx context.Context, r io.Reader, format Format, g *core.Graph, opts ...Option) (Stats, error) {
	if g == nil {
		return Stats{}, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var scanner OSMScanner
	switch format {
	case FormatPBF:
		scanner = osmpbf.New(ctx, r, cfg.Procs)
	default:
		scanner = osmxml.New(ctx, r)
	}
	defer scanner.Close()

	coords := make(map[osm.NodeID]geo.Location)
	var ways []way
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			coords[obj.ID] = geo.New(obj.Lat, obj.Lon)
		case *osm.Way:
			highway := obj.Tags.Find("highway")
			if !cfg.keep(highway) {
				continue
			}
			w := way{
				nodes:     make([]osm.NodeID, len(obj.Nodes)),
				name:      obj.Tags.Find("name"),
				highway:   highway,
				direction: direction(obj.Tags),
			}
			for i, n := range obj.Nodes {
				w.nodes[i] = n.ID
			}
			ways = append(ways, w)
		}
	}
	if err := scanner.Err(); err != nil {
		return Stats{}, errors.Wrap(err, "Scanner error")
	}

	var st Stats
	for _, w := range ways {
		for i := 1; i < len(w.nodes); i++ {
			a, okA := coords[w.nodes[i-1]]
			b, okB := coords[w.nodes[i]]
			if !okA || !okB {
				st.Skipped++
				continue
			}
			if w.direction >= 0 {
				st.add(g, roadSegment{from: a, to: b, name: w.name, kind: w.highway})
			}
			if w.direction <= 0 {
				st.add(g, roadSegment{from: b, to: a, name: w.name, kind: w.highway})
			}
		}
	}

	return st, nil
}

// direction reads oneway and junction tags.
func direction(tags osm.Tags) int {
	switch tags.Find("oneway") {
	case "yes", "1", "true":
		return 1
	case "-1", "reverse":
		return -1
	case "no", "false", "0":
		return 0
	}
	if tags.Find("junction") == "roundabout" {
		return 1
	}
	return 0
}
