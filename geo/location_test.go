package geo_test

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadgraph/geo"
)

func TestLocation_MapKeyEquality(t *testing.T) {
	seen := map[geo.Location]int{}
	seen[geo.New(32.86, -117.21)]++
	seen[geo.Location{Lat: 32.86, Lon: -117.21}]++
	require.Len(t, seen, 1)
	require.Equal(t, 2, seen[geo.New(32.86, -117.21)])
}

func TestLocation_Valid(t *testing.T) {
	cases := []struct {
		name string
		loc  geo.Location
		want bool
	}{
		{"origin", geo.New(0, 0), true},
		{"corner", geo.New(-90, 180), true},
		{"nan", geo.New(math.NaN(), 1), false},
		{"inf", geo.New(1, math.Inf(1)), false},
		{"lat out of range", geo.New(91, 0), false},
		{"lon out of range", geo.New(0, -181), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.loc.Valid())
		})
	}
}

func TestLocation_DistanceTo(t *testing.T) {
	a := geo.New(0, 0)
	b := geo.New(0, 1)
	// one degree of longitude on the equator: arc of orb's Earth radius, in km
	oneDegree := orb.EarthRadius * math.Pi / 180 / 1000
	require.InDelta(t, oneDegree, a.DistanceTo(b), 1e-6)
	require.InDelta(t, 111.32, a.DistanceTo(b), 0.01)
	require.InDelta(t, a.DistanceTo(b), b.DistanceTo(a), 1e-9)
	require.Zero(t, a.DistanceTo(a))
}

func TestLocation_PointRoundTrip(t *testing.T) {
	loc := geo.New(55.75, 37.64)
	p := loc.Point()
	require.Equal(t, orb.Point{37.64, 55.75}, p)
	require.Equal(t, loc, geo.FromPoint(p))
}

func TestParse(t *testing.T) {
	loc, err := geo.Parse(" 32.5 , -117.25 ")
	require.NoError(t, err)
	require.Equal(t, geo.New(32.5, -117.25), loc)
	require.Equal(t, "32.5,-117.25", loc.String())

	for _, in := range []string{"", "1", "a,b", "1,2,3", "100,0"} {
		_, err := geo.Parse(in)
		require.True(t, errors.Is(err, geo.ErrBadLocation), "input %q", in)
	}
}

func TestLess(t *testing.T) {
	require.True(t, geo.Less(geo.New(1, 5), geo.New(2, 0)))
	require.True(t, geo.Less(geo.New(1, 0), geo.New(1, 5)))
	require.False(t, geo.Less(geo.New(1, 5), geo.New(1, 5)))
}
