package sqlgeom

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// SphericalBounds computes a spherical cap bounding every coordinate of a
// geography value, for callers that need a bound accounting for the
// curvature an axis-aligned Envelope ignores (e.g. values crossing the
// antimeridian or near a pole).
func SphericalBounds(g Geometry) s2.Cap {
	rect := s2.EmptyRect()
	walkPoints(g, func(p Point) {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Y, p.X))
	})
	if rect.IsEmpty() {
		return s2.EmptyCap()
	}

	center := rect.Center()
	radius := s1.Angle(0)
	for _, ll := range []s2.LatLng{
		{Lat: s1.Angle(rect.Lat.Lo), Lng: s1.Angle(rect.Lng.Lo)},
		{Lat: s1.Angle(rect.Lat.Lo), Lng: s1.Angle(rect.Lng.Hi)},
		{Lat: s1.Angle(rect.Lat.Hi), Lng: s1.Angle(rect.Lng.Lo)},
		{Lat: s1.Angle(rect.Lat.Hi), Lng: s1.Angle(rect.Lng.Hi)},
	} {
		if d := center.Distance(ll); d > radius {
			radius = d
		}
	}

	return s2.CapFromCenterAngle(s2.PointFromLatLng(center), radius)
}

func pointFromXY(p Point) s2.Point {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(p.Y, p.X))
}

func walkPoints(g Geometry, visit func(Point)) {
	switch g.Type {
	case TypePoint:
		visit(g.Point)
	case TypeLineString:
		for _, p := range g.Line {
			visit(p)
		}
	case TypePolygon:
		for _, ring := range g.Rings {
			for _, p := range ring {
				visit(p)
			}
		}
	default:
		for _, c := range g.Children {
			walkPoints(c, visit)
		}
	}
}
