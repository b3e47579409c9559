package sqlgeom

// Serialization property bits (offset 5 of the buffer). See §4.2.
const (
	propHasZ            = 0x01
	propHasM            = 0x02
	propIsValid         = 0x04
	propIsSinglePoint   = 0x08
	propIsSingleLineSeg = 0x10
	propIsWholeGlobe    = 0x20
)

// Shape type tags (§6.1).
const (
	shapeUnknown            = 0
	shapePoint              = 1
	shapeLineString         = 2
	shapePolygon            = 3
	shapeMultiPoint         = 4
	shapeMultiLineString    = 5
	shapeMultiPolygon       = 6
	shapeGeometryCollection = 7
)

const rootParentSentinel = 0xFFFFFFFF

// layout holds the decoded prefix and, for complex geometries, the absolute
// offsets and counts of the three parallel tables. It exists only for the
// duration of one parse call.
type layout struct {
	r    reader
	kind ColumnKind

	srid      uint32
	props     byte
	pointSize int

	shortForm  bool // single point or single line segment
	wholeGlobe bool // propIsWholeGlobe bit; recognized, no decoding effect

	pointPos  int
	numPoints int

	figurePos  int
	numFigures int

	shapePos  int
	numShapes int
}

func decodeLayout(data []byte, kind ColumnKind) (*layout, error) {
	if len(data) < 10 {
		return nil, truncatedErr(len(data), len(data))
	}

	r := newReader(data)

	srid, err := r.u32(0)
	if err != nil {
		return nil, err
	}

	version, err := r.u8(4)
	if err != nil {
		return nil, err
	}
	if version != 1 {
		return nil, malformed(ReasonBadVersion, 4, len(data), "version byte must be 1")
	}

	props, err := r.u8(5)
	if err != nil {
		return nil, err
	}

	pointSize := 16
	if props&propHasZ != 0 {
		pointSize += 8
	}
	if props&propHasM != 0 {
		pointSize += 8
	}

	lay := &layout{
		r:          r,
		kind:       kind,
		srid:       srid,
		props:      props,
		pointSize:  pointSize,
		wholeGlobe: props&propIsWholeGlobe != 0,
	}

	switch {
	case props&propIsSinglePoint != 0:
		lay.shortForm = true
		lay.pointPos = 6
		lay.numPoints = 1
		if !r.fits(6, pointSize) {
			return nil, truncatedErr(6+pointSize, len(data))
		}
		return lay, nil

	case props&propIsSingleLineSeg != 0:
		lay.shortForm = true
		lay.pointPos = 6
		lay.numPoints = 2
		if !r.fits(6, 2*pointSize) {
			return nil, truncatedErr(6+2*pointSize, len(data))
		}
		return lay, nil
	}

	numPoints, err := r.u32(6)
	if err != nil {
		return nil, err
	}
	if int32(numPoints) <= 0 {
		return nil, malformed(ReasonNegativePointCount, 6, len(data), "nNumPoints must be positive")
	}
	lay.numPoints = int(numPoints)
	lay.pointPos = 10

	figurePos := lay.pointPos + pointSize*lay.numPoints
	if !r.fits(figurePos, 4) {
		return nil, truncatedErr(figurePos+4, len(data))
	}
	numFigures, err := r.u32(figurePos)
	if err != nil {
		return nil, err
	}
	if int32(numFigures) <= 0 {
		return nil, malformed(ReasonNegativeFigureCount, figurePos, len(data), "nNumFigures must be positive")
	}
	lay.numFigures = int(numFigures)
	lay.figurePos = figurePos + 4

	shapePos := lay.figurePos + 5*lay.numFigures
	if !r.fits(shapePos, 4) {
		return nil, truncatedErr(shapePos+4, len(data))
	}
	numShapes, err := r.u32(shapePos)
	if err != nil {
		return nil, err
	}
	if int32(numShapes) <= 0 {
		return nil, malformed(ReasonNegativeShapeCount, shapePos, len(data), "nNumShapes must be positive")
	}
	lay.numShapes = int(numShapes)
	lay.shapePos = shapePos + 4

	if !r.fits(lay.shapePos, 9*lay.numShapes) {
		return nil, truncatedErr(lay.shapePos+9*lay.numShapes, len(data))
	}

	return lay, nil
}

// --- point array accessors (§4.2 step 4) ---

// X/Y pairs are stored first, 16 bytes each; any Z and M arrays follow all
// of them, so the X/Y stride is 16 whatever pointSize is.

func (l *layout) x(i int) (float64, error) {
	return l.r.f64(l.pointPos + 16*i)
}

func (l *layout) y(i int) (float64, error) {
	return l.r.f64(l.pointPos + 16*i + 8)
}

// point reads stored point i and applies the axis-order rule (§4.3).
func (l *layout) point(i int) (Point, error) {
	if i < 0 || i >= l.numPoints {
		return Point{}, truncatedErr(l.pointPos+l.pointSize*i, l.r.len())
	}
	x, err := l.x(i)
	if err != nil {
		return Point{}, err
	}
	y, err := l.y(i)
	if err != nil {
		return Point{}, err
	}
	if l.kind == KindGeography {
		return Point{X: y, Y: x}, nil
	}
	return Point{X: x, Y: y}, nil
}

// --- figures table accessors (§3.3) ---

func (l *layout) pointOffset(i int) (int, error) {
	v, err := l.r.u32(l.figurePos + i*5 + 1)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func (l *layout) nextPointOffset(i int) (int, error) {
	if i+1 < l.numFigures {
		return l.pointOffset(i + 1)
	}
	return l.numPoints, nil
}

// --- shapes table accessors (§3.3) ---

func (l *layout) parentOffset(i int) (uint32, error) {
	return l.r.u32(l.shapePos + i*9)
}

func (l *layout) figureOffset(i int) (int, error) {
	v, err := l.r.u32(l.shapePos + i*9 + 4)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

func (l *layout) shapeType(i int) (byte, error) {
	return l.r.u8(l.shapePos + i*9 + 8)
}

func (l *layout) nextFigureOffset(i int) (int, error) {
	if i+1 < l.numShapes {
		return l.figureOffset(i + 1)
	}
	return l.numFigures, nil
}
