package raster

import (
	"encoding/binary"
	"fmt"
)

// pngSignature is the 8-byte magic every PNG stream begins with.
var pngSignature = [8]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const chunkHeaderSize = 8 // 4-byte length + 4-byte type
const chunkCRCSize = 4

// chunk is one length-prefixed, typed block of a PNG stream. The CRC
// trailer is consumed but not verified, matching the behavior of the
// reference decoder this package is grounded on.
type chunk struct {
	typ  string
	data []byte
}

// readChunks walks every chunk in buf (the stream after the 8-byte
// signature) until IEND, returning them in file order. Chunk types
// this package doesn't recognize are kept too; the caller skips them.
func readChunks(buf []byte) ([]chunk, error) {
	var chunks []chunk
	i := 0
	for {
		if i+chunkHeaderSize > len(buf) {
			return nil, fmt.Errorf("%w: incomplete chunk header at offset %d", ErrTruncatedChunk, i)
		}
		length := binary.BigEndian.Uint32(buf[i : i+4])
		typ := string(buf[i+4 : i+8])
		dataStart := i + chunkHeaderSize
		dataEnd := dataStart + int(length)
		if dataEnd+chunkCRCSize > len(buf) {
			return nil, fmt.Errorf("%w: %s chunk overruns stream", ErrTruncatedChunk, typ)
		}
		chunks = append(chunks, chunk{typ: typ, data: buf[dataStart:dataEnd]})
		i = dataEnd + chunkCRCSize
		if typ == "IEND" {
			return chunks, nil
		}
		if i >= len(buf) {
			return chunks, nil
		}
	}
}
