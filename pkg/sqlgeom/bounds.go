package sqlgeom

import "math"

// Envelope is an axis-aligned bounding box in the same (X, Y) coordinate
// space as Point: for geography values X is longitude and Y is latitude.
type Envelope struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether the envelope has never absorbed a point.
func (e Envelope) Empty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY
}

func (e Envelope) union(o Envelope) Envelope {
	if o.Empty() {
		return e
	}
	if e.Empty() {
		return o
	}
	return Envelope{
		MinX: math.Min(e.MinX, o.MinX),
		MinY: math.Min(e.MinY, o.MinY),
		MaxX: math.Max(e.MaxX, o.MaxX),
		MaxY: math.Max(e.MaxY, o.MaxY),
	}
}

func envelopeOfPoint(p Point) Envelope {
	return Envelope{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// Bounds computes the axis-aligned envelope of every coordinate reachable
// from g, recursing into Multi*/Collection children.
func Bounds(g Geometry) Envelope {
	env := Envelope{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}

	switch g.Type {
	case TypePoint:
		env = envelopeOfPoint(g.Point)
	case TypeLineString:
		for _, p := range g.Line {
			env = env.union(envelopeOfPoint(p))
		}
	case TypePolygon:
		for _, ring := range g.Rings {
			for _, p := range ring {
				env = env.union(envelopeOfPoint(p))
			}
		}
	default:
		for _, child := range g.Children {
			env = env.union(Bounds(child))
		}
	}

	return env
}
