package loader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/geo"
)

// LoadRoadMapFile opens path and calls LoadRoadMap.
func LoadRoadMapFile(path string, g *core.Graph) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, errors.Wrap(err, "File open")
	}
	defer f.Close()

	st, err := LoadRoadMap(f, g)
	if err != nil {
		return st, errors.Wrapf(err, "road map %s", path)
	}

	return st, nil
}

// LoadRoadMap reads road-map lines from r into g. Loading stops at the first
// malformed line; segments read before it stay in g.
func LoadRoadMap(r io.Reader, g *core.Graph) (Stats, error) {
	var st Stats
	if g == nil {
		return st, ErrNilGraph
	}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		seg, err := parseLine(line)
		if err != nil {
			return st, errors.Wrapf(err, "line %d", lineNo)
		}
		st.add(g, seg)
	}
	if err := sc.Err(); err != nil {
		return st, errors.Wrap(err, "Scanner error")
	}

	return st, nil
}

// roadSegment is one parsed directed segment.
type roadSegment struct {
	from, to geo.Location
	name     string
	kind     string
}

// add registers both endpoints and the segment, counting what changed.
func (st *Stats) add(g *core.Graph, seg roadSegment) {
	if g.AddVertex(seg.from) {
		st.Vertices++
	}
	if g.AddVertex(seg.to) {
		st.Vertices++
	}
	if err := g.AddEdge(seg.from, seg.to, seg.name, seg.kind, seg.from.DistanceTo(seg.to)); err != nil {
		st.Skipped++
		return
	}
	st.Edges++
}

// parseLine splits `lat1 lon1 lat2 lon2 "name" type`. The name is everything
// between the first and the last double quote.
func parseLine(line string) (roadSegment, error) {
	open := strings.IndexByte(line, '"')
	closing := strings.LastIndexByte(line, '"')
	if open < 0 || closing == open {
		return roadSegment{}, errors.Wrap(ErrMalformedLine, "road name must be double-quoted")
	}

	coords := strings.Fields(line[:open])
	if len(coords) != 4 {
		return roadSegment{}, errors.Wrapf(ErrMalformedLine, "want 4 coordinates, got %d", len(coords))
	}
	var v [4]float64
	for i, c := range coords {
		f, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return roadSegment{}, errors.Wrapf(ErrMalformedLine, "coordinate %q", c)
		}
		v[i] = f
	}

	kind := strings.TrimSpace(line[closing+1:])
	if kind == "" || strings.ContainsAny(kind, " \t") {
		return roadSegment{}, errors.Wrapf(ErrMalformedLine, "road type %q", kind)
	}

	seg := roadSegment{
		from: geo.New(v[0], v[1]),
		to:   geo.New(v[2], v[3]),
		name: line[open+1 : closing],
		kind: kind,
	}
	if !seg.from.Valid() || !seg.to.Valid() {
		return roadSegment{}, errors.Wrapf(ErrMalformedLine, "coordinates out of range: %s %s", seg.from, seg.to)
	}

	return seg, nil
}
