package sqlgeom

import "testing"

func TestToGeoJSONPoint(t *testing.T) {
	g := Geometry{Type: TypePoint, Point: Point{X: 1, Y: 2}}
	gj := ToGeoJSON(g)
	if !gj.IsPoint() {
		t.Fatalf("expected Point geometry, got %v", gj.Type)
	}
	if gj.Point[0] != 1 || gj.Point[1] != 2 {
		t.Errorf("Point = %v, want [1 2]", gj.Point)
	}
}

func TestToGeoJSONPolygon(t *testing.T) {
	g := Geometry{Type: TypePolygon, Rings: [][]Point{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}},
	}}
	gj := ToGeoJSON(g)
	if !gj.IsPolygon() {
		t.Fatalf("expected Polygon geometry, got %v", gj.Type)
	}
	if len(gj.Polygon) != 1 || len(gj.Polygon[0]) != 4 {
		t.Errorf("Polygon = %v", gj.Polygon)
	}
}

func TestToGeoJSONCollection(t *testing.T) {
	g := Geometry{
		Type: TypeGeometryCollection,
		Children: []Geometry{
			{Type: TypePoint, Point: Point{X: 1, Y: 2}},
			{Type: TypeLineString, Line: []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}},
		},
	}
	gj := ToGeoJSON(g)
	if !gj.IsCollection() {
		t.Fatalf("expected GeometryCollection, got %v", gj.Type)
	}
	if len(gj.Geometries) != 2 {
		t.Fatalf("got %d member geometries, want 2", len(gj.Geometries))
	}
}
