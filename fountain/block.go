package fountain

// sourceBlocks is the encoder's immutable, padded source array: the
// payload followed by zero padding to a multiple of blockSize, split into
// k equal-size blocks. Built once at construction and never mutated.
type sourceBlocks struct {
	blocks    [][]byte
	blockSize int
}

// newSourceBlocks pads data to a multiple of blockSize and slices it into
// ceil(len(data)/blockSize) blocks (at least one, even for empty input).
func newSourceBlocks(data []byte, blockSize int) *sourceBlocks {
	k := (len(data) + blockSize - 1) / blockSize
	if k < 1 {
		k = 1
	}

	padded := make([]byte, k*blockSize)
	copy(padded, data)

	blocks := make([][]byte, k)
	for i := range blocks {
		blocks[i] = padded[i*blockSize : (i+1)*blockSize]
	}

	return &sourceBlocks{blocks: blocks, blockSize: blockSize}
}

func (s *sourceBlocks) count() int { return len(s.blocks) }

// xorInto XORs the blocks named by indices into dst, which must already
// be blockSize bytes long.
func (s *sourceBlocks) xorInto(dst []byte, indices []int) {
	for _, i := range indices {
		xorBytes(dst, s.blocks[i])
	}
}

// recoveredBlocks is the decoder's block store: k slots of blockSize
// bytes, each written exactly once, plus a count of how many are known.
type recoveredBlocks struct {
	blocks    [][]byte
	decoded   []bool
	blockSize int
	count     int
}

func newRecoveredBlocks(k, blockSize int) *recoveredBlocks {
	return &recoveredBlocks{
		blocks:    make([][]byte, k),
		decoded:   make([]bool, k),
		blockSize: blockSize,
	}
}

func (r *recoveredBlocks) isDecoded(i int) bool { return r.decoded[i] }

// set freezes slot i with data. Writing an already-decoded slot is a
// no-op: once decoded[i] is true the slot stays frozen.
func (r *recoveredBlocks) set(i int, data []byte) {
	if r.decoded[i] {
		return
	}
	r.blocks[i] = data
	r.decoded[i] = true
	r.count++
}

// concat returns all k blocks concatenated in order. Only meaningful once
// every slot is decoded; callers check that themselves.
func (r *recoveredBlocks) concat() []byte {
	out := make([]byte, 0, len(r.blocks)*r.blockSize)
	for _, b := range r.blocks {
		out = append(out, b...)
	}
	return out
}

// xorBytes XORs src into dst in place. Caller guarantees equal lengths.
func xorBytes(dst, src []byte) {
	for i := range src {
		dst[i] ^= src[i]
	}
}
