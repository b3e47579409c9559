package sqlgeom

import "github.com/paulmach/go.geojson"

// ToGeoJSON converts a decoded geometry tree into a go.geojson Geometry.
// Geography values keep their (longitude, latitude) axis order, which is
// what GeoJSON expects; geometry values are emitted as-is.
func ToGeoJSON(g Geometry) *geojson.Geometry {
	switch g.Type {
	case TypePoint:
		return geojson.NewPointGeometry([]float64{g.Point.X, g.Point.Y})

	case TypeLineString:
		return geojson.NewLineStringGeometry(coords(g.Line))

	case TypePolygon:
		rings := make([][][]float64, len(g.Rings))
		for i, ring := range g.Rings {
			rings[i] = coords(ring)
		}
		return geojson.NewPolygonGeometry(rings)

	case TypeMultiPoint:
		pts := make([][]float64, len(g.Children))
		for i, c := range g.Children {
			pts[i] = []float64{c.Point.X, c.Point.Y}
		}
		return geojson.NewMultiPointGeometry(pts...)

	case TypeMultiLineString:
		lines := make([][][]float64, len(g.Children))
		for i, c := range g.Children {
			lines[i] = coords(c.Line)
		}
		return geojson.NewMultiLineStringGeometry(lines...)

	case TypeMultiPolygon:
		polys := make([][][][]float64, len(g.Children))
		for i, c := range g.Children {
			rings := make([][][]float64, len(c.Rings))
			for j, ring := range c.Rings {
				rings[j] = coords(ring)
			}
			polys[i] = rings
		}
		return geojson.NewMultiPolygonGeometry(polys...)

	case TypeGeometryCollection:
		members := make([]*geojson.Geometry, len(g.Children))
		for i, c := range g.Children {
			members[i] = ToGeoJSON(c)
		}
		return geojson.NewCollectionGeometry(members...)

	default:
		return &geojson.Geometry{}
	}
}

func coords(pts []Point) [][]float64 {
	out := make([][]float64, len(pts))
	for i, p := range pts {
		out[i] = []float64{p.X, p.Y}
	}
	return out
}
