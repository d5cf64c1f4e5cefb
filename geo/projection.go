// Package geo projects WGS84 longitude/latitude position fixes onto a planar
// grid measured in metres, the coordinate space the position filters work in.
package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/wroge/wgs84"
)

const (
	// maxIter caps the refinement of inverse projections
	maxIter = 10
	// gridTol is the grid distance in metres at which refinement stops
	gridTol = 1e-6
)

// ErrNoGrid is returned when a Projector is created without a grid.
var ErrNoGrid = errors.New("no grid reference system")

// Bounds limits the area, in WGS84 degrees, a grid is valid for.
type Bounds struct {
	MinLon, MinLat float64
	MaxLon, MaxLat float64
}

// Contains returns true if lon, lat fall within b.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon && lat >= b.MinLat && lat <= b.MaxLat
}

// Local returns a transverse mercator grid on the WGS84 datum whose origin
// (0, 0) is at lon0, lat0. The grid is valid within 3 degrees of its origin.
func Local(lon0, lat0 float64) wgs84.ProjectedReferenceSystem {
	b := Bounds{
		MinLon: lon0 - 3,
		MinLat: math.Max(lat0-3, -90),
		MaxLon: lon0 + 3,
		MaxLat: math.Min(lat0+3, 90),
	}

	crs := wgs84.WGS84().TransverseMercator(lon0, lat0, 1, 0, 0)
	crs.Area = wgs84.AreaFunc(b.Contains)

	return crs
}

// BritishNationalGrid returns the OSGB36 British National Grid (EPSG:27700).
func BritishNationalGrid() wgs84.ProjectedReferenceSystem {
	return wgs84.OSGB36NationalGrid()
}

// Projector converts points between WGS84 lon/lat and a planar grid.
type Projector struct {
	forward wgs84.SafeFunc
	inverse wgs84.Func
}

// NewProjector creates new Projector for the grid crs.
// It returns ErrNoGrid if crs is nil.
func NewProjector(crs wgs84.CoordinateReferenceSystem) (*Projector, error) {
	if crs == nil {
		return nil, ErrNoGrid
	}

	return &Projector{
		forward: wgs84.SafeTransform(wgs84.LonLat(), crs),
		inverse: wgs84.Transform(crs, wgs84.LonLat()),
	}, nil
}

// Project converts ll given as {lon, lat} in degrees to {easting, northing} in metres.
// It returns error wrapping wgs84.ErrOutOfBounds if ll is outside of the grid area of use.
func (p *Projector) Project(ll orb.Point) (orb.Point, error) {
	e, n, _, err := p.forward(ll.Lon(), ll.Lat(), 0)
	if err != nil {
		return orb.Point{}, fmt.Errorf("project %v: %w", ll, err)
	}

	return orb.Point{e, n}, nil
}

// Unproject converts grid point {easting, northing} in metres back to {lon, lat} in degrees
// on the WGS84 ellipsoid surface, so that Unproject inverts Project.
//
// A grid datum differing from WGS84 leaves a point on the WGS84 surface with
// a non-zero grid height which Project drops, so the closed-form inverse is
// refined until the point projects back onto en.
func (p *Projector) Unproject(en orb.Point) orb.Point {
	lon0, lat0, _ := p.inverse(en.X(), en.Y(), 0)
	lon, lat := lon0, lat0

	for i := 0; i < maxIter; i++ {
		e, n, _, err := p.forward(lon, lat, 0)
		if err != nil || math.Hypot(e-en.X(), n-en.Y()) < gridTol {
			break
		}

		l, t, _ := p.inverse(e, n, 0)
		lon, lat = lon+lon0-l, lat+lat0-t
	}

	return orb.Point{lon, lat}
}
