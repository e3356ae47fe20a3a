package navigate

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"hash/crc32"

	"github.com/pietgo/piet/internal/chroma"
	"github.com/pietgo/piet/internal/raster"
)

var pngSignature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func buildTestGrid(rows [][]chroma.RGB) *raster.Grid {
	img, err := raster.Decode(bytes.NewReader(buildTestPNG(rows)))
	if err != nil {
		panic(err)
	}
	grid, err := img.Codels(1)
	if err != nil {
		panic(err)
	}
	return grid
}

func buildTestPNG(rows [][]chroma.RGB) []byte {
	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}

	var raw bytes.Buffer
	for _, row := range rows {
		raw.WriteByte(0)
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
	ihdr[9] = 2
	writeTestChunk(&out, "IHDR", ihdr)
	writeTestChunk(&out, "IDAT", compressed.Bytes())
	writeTestChunk(&out, "IEND", nil)

	return out.Bytes()
}

func writeTestChunk(out *bytes.Buffer, typ string, data []byte) {
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
