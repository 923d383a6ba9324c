package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// metersPerKilometer converts orb's metre distances into the km unit used by edge lengths.
const metersPerKilometer = 1000.0

// ErrBadLocation is returned by Parse for text that is not a valid "lat,lon" pair.
var ErrBadLocation = errors.New("geo: bad location")

// Location is an immutable geographic coordinate in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// New returns the Location at (lat, lon).
func New(lat, lon float64) Location { return Location{Lat: lat, Lon: lon} }

// FromPoint converts an orb.Point (lon, lat order) into a Location.
func FromPoint(p orb.Point) Location { return Location{Lat: p.Lat(), Lon: p.Lon()} }

// Point converts l into an orb.Point.
func (l Location) Point() orb.Point { return orb.Point{l.Lon, l.Lat} }

// Valid reports whether both coordinates are finite and inside the degree ranges.
func (l Location) Valid() bool {
	if math.IsNaN(l.Lat) || math.IsNaN(l.Lon) || math.IsInf(l.Lat, 0) || math.IsInf(l.Lon, 0) {
		return false
	}

	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

// DistanceTo returns the haversine distance from l to other in kilometres.
func (l Location) DistanceTo(other Location) float64 {
	return orbgeo.DistanceHaversine(l.Point(), other.Point()) / metersPerKilometer
}

// String renders l as "lat,lon", the same form Parse accepts.
func (l Location) String() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(l.Lon, 'f', -1, 64)
}

// Parse reads a "lat,lon" pair. Surrounding whitespace is ignored.
func Parse(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("%w: %q", ErrBadLocation, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: latitude %q: %v", ErrBadLocation, parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("%w: longitude %q: %v", ErrBadLocation, parts[1], err)
	}
	loc := Location{Lat: lat, Lon: lon}
	if !loc.Valid() {
		return Location{}, fmt.Errorf("%w: %q out of range", ErrBadLocation, s)
	}

	return loc, nil
}

// Less orders Locations by latitude, then longitude.
// Used wherever a reproducible enumeration order is needed.
func Less(a, b Location) bool {
	if a.Lat != b.Lat {
		return a.Lat < b.Lat
	}

	return a.Lon < b.Lon
}
