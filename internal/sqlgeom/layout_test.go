package sqlgeom

import (
	"encoding/binary"
	"testing"
)

func header(srid uint32, version, props byte) []byte {
	b := make([]byte, 6)
	binary.LittleEndian.PutUint32(b[0:4], srid)
	b[4] = version
	b[5] = props
	return b
}

func TestDecodeLayoutTooShort(t *testing.T) {
	for n := 0; n < 10; n++ {
		_, err := decodeLayout(make([]byte, n), KindGeometry)
		assertReason(t, err, ReasonTruncated)
	}
}

func TestDecodeLayoutBadVersion(t *testing.T) {
	data := append(header(4326, 2, 0), make([]byte, 4)...)
	_, err := decodeLayout(data, KindGeometry)
	assertReason(t, err, ReasonBadVersion)
}

func TestDecodeLayoutSinglePointTooShort(t *testing.T) {
	data := append(header(4326, 1, propIsSinglePoint|propIsValid), make([]byte, 8)...) // needs 16
	_, err := decodeLayout(data, KindGeometry)
	assertReason(t, err, ReasonTruncated)
}

func TestDecodeLayoutSingleLineSegTooShort(t *testing.T) {
	data := append(header(4326, 1, propIsSingleLineSeg|propIsValid), make([]byte, 16)...) // needs 32
	_, err := decodeLayout(data, KindGeometry)
	assertReason(t, err, ReasonTruncated)
}

func TestDecodeLayoutSinglePointWithZM(t *testing.T) {
	data := header(4326, 1, propIsSinglePoint|propHasZ|propHasM)
	data = append(data, make([]byte, 32)...) // 16 + 8(Z) + 8(M)

	lay, err := decodeLayout(data, KindGeometry)
	if err != nil {
		t.Fatalf("decodeLayout returned error: %v", err)
	}
	if lay.pointSize != 32 {
		t.Errorf("pointSize = %d, want 32", lay.pointSize)
	}
	if !lay.shortForm || lay.numPoints != 1 {
		t.Errorf("expected short-form single point, got shortForm=%v numPoints=%d", lay.shortForm, lay.numPoints)
	}
}

func TestDecodeLayoutNegativePointCount(t *testing.T) {
	data := append(header(4326, 1, 0), make([]byte, 4)...) // nNumPoints == 0
	_, err := decodeLayout(data, KindGeometry)
	assertReason(t, err, ReasonNegativePointCount)
}

func TestDecodeLayoutNegativeFigureCount(t *testing.T) {
	data := header(4326, 1, 0)
	num := make([]byte, 4)
	binary.LittleEndian.PutUint32(num, 1) // one point
	data = append(data, num...)
	data = append(data, make([]byte, 16)...) // the point itself
	binary.LittleEndian.PutUint32(num, 0)    // nNumFigures == 0
	data = append(data, num...)

	_, err := decodeLayout(data, KindGeometry)
	assertReason(t, err, ReasonNegativeFigureCount)
}

func TestDecodeLayoutNegativeShapeCount(t *testing.T) {
	data := header(4326, 1, 0)
	num := make([]byte, 4)
	binary.LittleEndian.PutUint32(num, 1)
	data = append(data, num...)
	data = append(data, make([]byte, 16)...)
	binary.LittleEndian.PutUint32(num, 1) // one figure
	data = append(data, num...)
	data = append(data, make([]byte, 5)...)
	binary.LittleEndian.PutUint32(num, 0) // nNumShapes == 0
	data = append(data, num...)

	_, err := decodeLayout(data, KindGeometry)
	assertReason(t, err, ReasonNegativeShapeCount)
}

func TestDecodeLayoutShapesTableTruncated(t *testing.T) {
	data := header(4326, 1, 0)
	num := make([]byte, 4)
	binary.LittleEndian.PutUint32(num, 1)
	data = append(data, num...)
	data = append(data, make([]byte, 16)...)
	binary.LittleEndian.PutUint32(num, 1)
	data = append(data, num...)
	data = append(data, make([]byte, 5)...)
	binary.LittleEndian.PutUint32(num, 1) // declares one shape, but no bytes follow
	data = append(data, num...)

	_, err := decodeLayout(data, KindGeometry)
	assertReason(t, err, ReasonTruncated)
}

func TestPointAxisSwap(t *testing.T) {
	data := header(4326, 1, propIsSinglePoint|propIsValid)
	pt := make([]byte, 16)
	binary.LittleEndian.PutUint64(pt[0:8], 0x4000000000000000)  // 2.0
	binary.LittleEndian.PutUint64(pt[8:16], 0x3FF0000000000000) // 1.0
	data = append(data, pt...)

	lay, err := decodeLayout(data, KindGeography)
	if err != nil {
		t.Fatalf("decodeLayout returned error: %v", err)
	}
	p, err := lay.point(0)
	if err != nil {
		t.Fatalf("point(0) returned error: %v", err)
	}
	if p.X != 1.0 || p.Y != 2.0 {
		t.Errorf("point = %+v, want X=1 Y=2 (swapped)", p)
	}
}
