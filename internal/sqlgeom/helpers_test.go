package sqlgeom

import (
	"encoding/binary"
	"math"
)

// figureSpec and shapeSpec let tests assemble complex-form buffers without
// hand-counting byte offsets.
type figureSpec struct {
	attr        byte
	pointOffset uint32
}

type shapeSpec struct {
	parent      uint32
	figureOffset uint32
	shapeType   byte
}

// buildComplex assembles a well-formed complex-form buffer (SRID 4326,
// version 1, no Z/M) from its three tables.
func buildComplex(points [][2]float64, figures []figureSpec, shapes []shapeSpec) []byte {
	buf := make([]byte, 0, 256)

	hdr := make([]byte, 6)
	binary.LittleEndian.PutUint32(hdr[0:4], 4326)
	hdr[4] = 1
	hdr[5] = 0 // no flags: plain complex form
	buf = append(buf, hdr...)

	num := make([]byte, 4)
	binary.LittleEndian.PutUint32(num, uint32(len(points)))
	buf = append(buf, num...)

	for _, p := range points {
		b := make([]byte, 16)
		binary.LittleEndian.PutUint64(b[0:8], math.Float64bits(p[0]))
		binary.LittleEndian.PutUint64(b[8:16], math.Float64bits(p[1]))
		buf = append(buf, b...)
	}

	binary.LittleEndian.PutUint32(num, uint32(len(figures)))
	buf = append(buf, num...)
	for _, f := range figures {
		b := make([]byte, 5)
		b[0] = f.attr
		binary.LittleEndian.PutUint32(b[1:5], f.pointOffset)
		buf = append(buf, b...)
	}

	binary.LittleEndian.PutUint32(num, uint32(len(shapes)))
	buf = append(buf, num...)
	for _, s := range shapes {
		b := make([]byte, 9)
		binary.LittleEndian.PutUint32(b[0:4], s.parent)
		binary.LittleEndian.PutUint32(b[4:8], s.figureOffset)
		b[8] = s.shapeType
		buf = append(buf, b...)
	}

	return buf
}
