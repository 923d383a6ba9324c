// Command roadroute loads a road network and either answers one route query or
// serves routing over HTTP.
//
//	roadroute -map data/simple.map -from 1,1 -to 7,3 -algorithm astar
//	roadroute -osm city.osm.pbf -highways primary,secondary,residential -serve -addr :8080
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/roadgraph/core"
	"github.com/katalvlaran/roadgraph/export"
	"github.com/katalvlaran/roadgraph/geo"
	"github.com/katalvlaran/roadgraph/loader"
	"github.com/katalvlaran/roadgraph/server"
)

var (
	mapFile     = flag.String("map", "", "Road-map text file (lat1 lon1 lat2 lon2 \"name\" type per line)")
	osmFile     = flag.String("osm", "", "OSM extract (*.osm, *.xml or *.pbf)")
	highwayTags = flag.String("highways", "", "Comma-separated highway tags to keep from -osm (empty keeps all)")
	roadTypes   = flag.String("types", "", "Comma-separated road types to route on (empty routes on all)")
	fromStr     = flag.String("from", "", "Start intersection as lat,lon")
	toStr       = flag.String("to", "", "Goal intersection as lat,lon")
	algoStr     = flag.String("algorithm", "dijkstra", "Routing algorithm. Expected values: bfs / dijkstra / astar / ch")
	geojsonOut  = flag.String("geojson", "", "Write the route as GeoJSON to this file")
	serve       = flag.Bool("serve", false, "Serve HTTP instead of answering a single query")
	addr        = flag.String("addr", ":8080", "HTTP listen address for -serve")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags)

	g, err := loadGraph()
	if err != nil {
		log.Fatal(err)
	}

	algo, err := server.ParseAlgorithm(*algoStr)
	if err != nil {
		log.Fatal(err)
	}
	cfg := server.DefaultConfig()
	cfg.Addr = *addr
	cfg.DefaultAlgorithm = algo
	srv := server.New(g, cfg)

	if *serve {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := srv.Run(ctx); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := query(srv, g, algo); err != nil {
		log.Fatal(err)
	}
}

func loadGraph() (*core.Graph, error) {
	if *mapFile == "" && *osmFile == "" {
		return nil, errors.New("one of -map or -osm is required")
	}

	g := core.NewGraph()
	st := time.Now()
	if *mapFile != "" {
		stats, err := loader.LoadRoadMapFile(*mapFile, g)
		if err != nil {
			return nil, errors.Wrap(err, "Can't load road map")
		}
		log.Printf("loaded %s in %v: %s", *mapFile, time.Since(st), stats)
	}
	if *osmFile != "" {
		var opts []loader.Option
		if *highwayTags != "" {
			opts = append(opts, loader.WithHighways(strings.Split(*highwayTags, ",")...))
		}
		stats, err := loader.LoadOSMFile(context.Background(), *osmFile, g, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "Can't load OSM data")
		}
		log.Printf("loaded %s in %v: %s", *osmFile, time.Since(st), stats)
	}

	if *roadTypes != "" {
		g = core.RoadTypeView(g, strings.Split(*roadTypes, ",")...)
		log.Printf("restricted to road types %s: %d segments", *roadTypes, g.NumEdges())
	}

	return g, nil
}

func query(srv *server.Server, g *core.Graph, algo server.Algorithm) error {
	from, err := geo.Parse(*fromStr)
	if err != nil {
		return errors.Wrap(err, "-from")
	}
	to, err := geo.Parse(*toStr)
	if err != nil {
		return errors.Wrap(err, "-to")
	}

	st := time.Now()
	res, err := srv.Route(context.Background(), algo, from, to, nil)
	if err != nil {
		return errors.Wrapf(err, "%s route %s → %s", algo, from, to)
	}
	log.Printf("%s settled %d intersections in %v", algo, res.Visited, time.Since(st))

	for i, l := range res.Path {
		fmt.Printf("%3d  %s\n", i, l)
	}
	fmt.Printf("length: %.3f km, hops: %d\n", res.Length, res.Hops)

	if *geojsonOut != "" {
		body, err := export.MarshalRoute(g, res, string(algo))
		if err != nil {
			return errors.Wrap(err, "GeoJSON")
		}
		if err := os.WriteFile(*geojsonOut, body, 0o644); err != nil {
			return errors.Wrap(err, "File write")
		}
	}

	return nil
}
