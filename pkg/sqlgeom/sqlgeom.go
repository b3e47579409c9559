// Package sqlgeom is the public API for decoding SQL Server geometry and
// geography wire values. It wraps the pure codec in internal/sqlgeom with
// the third-party-backed conveniences applications actually want: spatial
// indexing, bounding boxes, GeoJSON export, and spherical bounds for
// geography columns.
package sqlgeom

import "github.com/go-spatial/mssqlgeom/internal/sqlgeom"

// ColumnKind selects the axis order used when reading coordinates.
type ColumnKind = sqlgeom.ColumnKind

const (
	KindGeometry  = sqlgeom.KindGeometry
	KindGeography = sqlgeom.KindGeography
)

// Point is a single 2D coordinate in (X, Y) order; for geography values X is
// longitude and Y is latitude.
type Point = sqlgeom.Point

// Type identifies which variant of the geometry forest a Geometry node is.
type Type = sqlgeom.Type

const (
	TypePoint              = sqlgeom.TypePoint
	TypeLineString         = sqlgeom.TypeLineString
	TypePolygon            = sqlgeom.TypePolygon
	TypeMultiPoint         = sqlgeom.TypeMultiPoint
	TypeMultiLineString    = sqlgeom.TypeMultiLineString
	TypeMultiPolygon       = sqlgeom.TypeMultiPolygon
	TypeGeometryCollection = sqlgeom.TypeGeometryCollection
)

// Geometry is one node of a decoded tree.
type Geometry = sqlgeom.Geometry

// MalformedInputError reports why a buffer failed to decode.
type MalformedInputError = sqlgeom.MalformedInputError

// Reason identifies a MalformedInputError's failure kind.
type Reason = sqlgeom.Reason

const (
	ReasonTruncated            = sqlgeom.ReasonTruncated
	ReasonBadVersion           = sqlgeom.ReasonBadVersion
	ReasonBadRootParent        = sqlgeom.ReasonBadRootParent
	ReasonNegativePointCount   = sqlgeom.ReasonNegativePointCount
	ReasonNegativeFigureCount  = sqlgeom.ReasonNegativeFigureCount
	ReasonNegativeShapeCount   = sqlgeom.ReasonNegativeShapeCount
	ReasonUnsupportedShapeType = sqlgeom.ReasonUnsupportedShapeType
)

// Value is the result of decoding one column value: the SRID carried in the
// buffer plus the root of the decoded geometry tree.
type Value struct {
	SRID uint32
	Root Geometry

	// Envelope is the root geometry's axis-aligned bounding box, populated
	// only when the parse that produced this Value set
	// ParseOptions.ComputeBounds. HasEnvelope reports whether it was.
	Envelope    Envelope
	HasEnvelope bool
}

// ParseOptions configures decoding behavior. The zero value is the default:
// strict decoding with no shape-count cap.
type ParseOptions struct {
	// Kind selects geometry or geography axis handling. Required.
	Kind ColumnKind

	// MaxShapes rejects a buffer whose declared shape count exceeds this
	// value before any shape is read. Zero means unlimited, matching the
	// buffer-derived bound alone.
	MaxShapes int

	// ComputeBounds computes the value's envelope during Parse and attaches
	// it as Value.Envelope, so callers that need it don't walk the tree a
	// second time via Bounds. Off by default since most callers parse far
	// more values than they bound.
	ComputeBounds bool
}

// DefaultParseOptions returns the default geometry parse options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Kind: KindGeometry}
}

// Parser decodes wire values and remembers the SRID of the last value it
// parsed, as a convenience for callers that process a single column stream
// where every row shares one spatial reference.
type Parser struct {
	opts     ParseOptions
	lastSRID uint32
	hasSRID  bool
}

// NewParser returns a Parser configured by opts.
func NewParser(opts ParseOptions) *Parser {
	return &Parser{opts: opts}
}

// Parse decodes a single wire value using the parser's configured column
// kind. Parse itself is stateless with respect to its result; only the
// bookkeeping convenience (LastSRID) is stateful.
func (p *Parser) Parse(data []byte) (Value, error) {
	limits := sqlgeom.Limits{MaxShapes: p.opts.MaxShapes}
	parsed, err := sqlgeom.ParseWithLimits(data, p.opts.Kind, limits)
	if err != nil {
		return Value{}, err
	}
	p.lastSRID = parsed.SRID
	p.hasSRID = true

	v := Value{SRID: parsed.SRID, Root: parsed.Root}
	if p.opts.ComputeBounds {
		v.Envelope = Bounds(v.Root)
		v.HasEnvelope = true
	}
	return v, nil
}

// LastSRID returns the SRID of the most recent successfully parsed value
// and whether any value has been parsed yet.
func (p *Parser) LastSRID() (uint32, bool) {
	return p.lastSRID, p.hasSRID
}

// Parse decodes a single wire value with no parser state. It is equivalent
// to NewParser(ParseOptions{Kind: kind}).Parse(data).
func Parse(data []byte, kind ColumnKind) (Value, error) {
	parsed, err := sqlgeom.Parse(data, kind)
	if err != nil {
		return Value{}, err
	}
	return Value{SRID: parsed.SRID, Root: parsed.Root}, nil
}
