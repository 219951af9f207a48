package fountain

import "encoding/binary"

// headerSize is the fixed size, in bytes, of every packet's header.
const headerSize = 16

// header is the parsed form of a packet's fixed 16-byte prefix. All four
// fields are big-endian on the wire.
type header struct {
	RunID   uint32
	K       uint32
	OrigLen uint32
	SeqNum  uint32
}

// putHeader writes h into the first headerSize bytes of dst. dst must be
// at least headerSize bytes long.
func putHeader(dst []byte, h header) {
	binary.BigEndian.PutUint32(dst[0:4], h.RunID)
	binary.BigEndian.PutUint32(dst[4:8], h.K)
	binary.BigEndian.PutUint32(dst[8:12], h.OrigLen)
	binary.BigEndian.PutUint32(dst[12:16], h.SeqNum)
}

// parseHeader reads the 16-byte header from the front of packet. Returns
// ok=false if packet is too short to contain a header or carries a
// block_size of zero; both are malformed-packet conditions the caller
// must drop silently.
func parseHeader(packet []byte) (h header, blockSize int, ok bool) {
	if len(packet) < headerSize {
		return header{}, 0, false
	}

	h = header{
		RunID:   binary.BigEndian.Uint32(packet[0:4]),
		K:       binary.BigEndian.Uint32(packet[4:8]),
		OrigLen: binary.BigEndian.Uint32(packet[8:12]),
		SeqNum:  binary.BigEndian.Uint32(packet[12:16]),
	}

	blockSize = len(packet) - headerSize
	if blockSize < 1 {
		return header{}, 0, false
	}

	return h, blockSize, true
}

// PacketHeader exposes a packet's parsed header fields to callers outside
// this package, e.g. a CLI sizing its first Decoder before any session
// has been established, without exposing the unexported header type.
func PacketHeader(packet []byte) (runID, k, origLen, seqNum uint32, blockSize int, ok bool) {
	h, bs, ok := parseHeader(packet)
	return h.RunID, h.K, h.OrigLen, h.SeqNum, bs, ok
}
