package raster

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"

	"github.com/pietgo/piet/internal/chroma"
)

// buildPNG hand-assembles a minimal, valid PNG byte stream from a
// row-major pixel grid, so tests don't depend on how any particular
// encoder (including the standard library's) happens to choose a
// color type or filter.
func buildPNG(rows [][]chroma.RGB) []byte {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	var raw bytes.Buffer
	for _, row := range rows {
		raw.WriteByte(filterNone)
		for _, c := range row {
			raw.WriteByte(c.R)
			raw.WriteByte(c.G)
			raw.WriteByte(c.B)
		}
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	zw.Write(raw.Bytes())
	zw.Close()

	var out bytes.Buffer
	out.Write(pngSignature[:])

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = 8
	ihdr[9] = byte(colorTrueColor)
	writeChunk(&out, "IHDR", ihdr)
	writeChunk(&out, "IDAT", compressed.Bytes())
	writeChunk(&out, "IEND", nil)

	return out.Bytes()
}

func writeChunk(out *bytes.Buffer, typ string, data []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	out.Write(lenBuf[:])

	body := append([]byte(typ), data...)
	out.Write(body)

	crc := crc32.ChecksumIEEE(body)
	var crcBuf [4]byte
	binary.BigEndian.PutUint32(crcBuf[:], crc)
	out.Write(crcBuf[:])
}
