package sqlgeom

// Limits bounds how much structure a single parse is willing to walk,
// independent of what the buffer itself declares. A zero value imposes no
// limit beyond what decodeLayout already derives from the buffer's own
// length.
type Limits struct {
	// MaxShapes rejects buffers whose declared shape count exceeds this
	// value before any shape is read, guarding against a buffer that
	// declares an implausibly large forest. Zero means unlimited.
	MaxShapes int
}

// Parse decodes a single SQL Server geometry/geography wire value. It is a
// pure function: the same bytes and column kind always produce either the
// same tree or the same error, and the call has no observable side effects.
//
// The returned value does not reference data; the caller may reuse or
// discard the buffer immediately after Parse returns.
func Parse(data []byte, kind ColumnKind) (ParsedValue, error) {
	return ParseWithLimits(data, kind, Limits{})
}

// ParseWithLimits is Parse with an additional resource cap applied before
// the shapes table is walked.
func ParseWithLimits(data []byte, kind ColumnKind, limits Limits) (ParsedValue, error) {
	lay, err := decodeLayout(data, kind)
	if err != nil {
		return ParsedValue{}, err
	}
	if limits.MaxShapes > 0 && lay.numShapes > limits.MaxShapes {
		return ParsedValue{}, malformed(ReasonNegativeShapeCount, lay.shapePos, lay.r.len(), "nNumShapes exceeds configured limit")
	}

	root, err := buildTree(lay)
	if err != nil {
		return ParsedValue{}, err
	}

	return ParsedValue{SRID: lay.srid, Root: root}, nil
}
