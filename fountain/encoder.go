package fountain

// Encoder produces an unbounded stream of self-describing LT packets for
// one transfer session. It holds the padded source blocks for the
// lifetime of the session and is not safe for concurrent use: callers
// must not invoke NextPacket on the same Encoder from two goroutines at
// once, though independent Encoders may run concurrently.
type Encoder struct {
	source  *sourceBlocks
	origLen uint32
	runID   uint32
	seq     uint32
	rsd     *robustSoliton
}

// NewEncoder constructs an Encoder for data, splitting it into
// ceil(len(data)/blockSize) blocks of blockSize bytes (zero-padded) and
// scoping every emitted packet to runID. blockSize is clamped to at
// least 1.
func NewEncoder(data []byte, blockSize uint32, runID uint32) *Encoder {
	bs := int(blockSize)
	if bs < 1 {
		bs = 1
	}

	src := newSourceBlocks(data, bs)
	return &Encoder{
		source:  src,
		origLen: uint32(len(data)),
		runID:   runID,
		rsd:     newRobustSoliton(src.count()),
	}
}

// BlockCount returns k, the number of source blocks.
func (e *Encoder) BlockCount() uint32 { return uint32(e.source.count()) }

// BlockSize returns the fixed size, in bytes, of every source block.
func (e *Encoder) BlockSize() uint32 { return uint32(e.source.blockSize) }

// OriginalLen returns the payload length before block padding.
func (e *Encoder) OriginalLen() uint32 { return e.origLen }

// RunID returns the session identifier every packet carries.
func (e *Encoder) RunID() uint32 { return e.runID }

// NextPacket produces the next packet in the stream: a 16-byte header
// followed by a blockSize XOR payload. It never fails: given a
// successfully constructed Encoder every call returns headerSize +
// BlockSize() bytes, and each call is pure given the current sequence
// number, so two Encoders with identical (data, blockSize, runID) that
// have emitted the same number of packets produce bit-identical output.
func (e *Encoder) NextPacket() []byte {
	seq := e.seq
	e.seq++

	neighbors := packetNeighbors(e.rsd, e.runID, seq)

	blockSize := e.source.blockSize
	pkt := make([]byte, headerSize+blockSize)
	putHeader(pkt, header{
		RunID:   e.runID,
		K:       e.BlockCount(),
		OrigLen: e.origLen,
		SeqNum:  seq,
	})

	payload := pkt[headerSize:]
	e.source.xorInto(payload, neighbors)

	return pkt
}
