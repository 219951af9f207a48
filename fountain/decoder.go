package fountain

// pendingPacket is an unresolved packet: a packet whose neighbor set has
// not yet collapsed to a single unknown block. Invariant: len(neighbors)
// >= 2 always holds for a packet stored here.
type pendingPacket struct {
	neighbors map[int]struct{}
	data      []byte
}

// resolution is one item of the belief-propagation work queue: a block
// index that just became known, and the bytes it resolved to.
type resolution struct {
	block int
	data  []byte
}

// Decoder ingests LT packets for one session and runs belief propagation
// as blocks resolve. It is not safe for concurrent use by multiple
// goroutines, matching Encoder.
type Decoder struct {
	initialized bool
	runID       uint32
	k           int
	blockSize   int
	rsd         *robustSoliton

	blocks *recoveredBlocks

	// pending and index together implement the block -> unresolved-packet
	// relation: pending owns each packet by a stable handle, index is
	// purely navigational and never owns data.
	pending    map[int]*pendingPacket
	index      []map[int]struct{}
	nextHandle int
}

// NewDecoder constructs a Decoder with a size hint. The hint is only used
// until the first packet arrives; at that point the decoder commits to
// whatever (run_id, k, block_size) that packet's header actually carries.
func NewDecoder(k, blockSize, runID uint32) *Decoder {
	d := &Decoder{}
	d.reset(runID, int(k), int(blockSize))
	return d
}

// reset (re)initializes session state from (runID, k, blockSize),
// discarding anything previously in flight. Called both for the initial
// hint and whenever a session switch is detected.
func (d *Decoder) reset(runID uint32, k, blockSize int) {
	if k < 1 {
		k = 1
	}
	d.runID = runID
	d.k = k
	d.blockSize = blockSize
	d.rsd = newRobustSoliton(k)
	d.blocks = newRecoveredBlocks(k, blockSize)
	d.pending = make(map[int]*pendingPacket)
	d.index = make([]map[int]struct{}, k)
	for i := range d.index {
		d.index[i] = make(map[int]struct{})
	}
	d.nextHandle = 0
}

// BlockCount returns k for the current session.
func (d *Decoder) BlockCount() uint32 { return uint32(d.k) }

// DecodedCount returns how many of the k source blocks are known so far.
func (d *Decoder) DecodedCount() uint32 { return uint32(d.blocks.count) }

// IsDone reports whether every source block has been recovered.
func (d *Decoder) IsDone() bool { return d.blocks.count == d.k }

// PushPacket ingests one packet and returns true iff the session is now
// complete. Malformed, redundant, and post-completion packets are all
// dropped silently: the decoder never errors on channel anomalies, to
// preserve the rateless property.
func (d *Decoder) PushPacket(packet []byte) bool {
	h, blockSize, ok := parseHeader(packet)
	if !ok {
		return d.IsDone()
	}

	if !d.initialized || h.RunID != d.runID {
		d.reset(h.RunID, int(h.K), blockSize)
		d.initialized = true
	}

	if blockSize != d.blockSize {
		// Malformed with respect to the committed session: a packet
		// claiming a different block_size than every prior packet of
		// this run_id. Drop silently.
		return d.IsDone()
	}

	if d.IsDone() {
		return true
	}

	neighbors := packetNeighbors(d.rsd, d.runID, h.SeqNum)

	residue := make([]byte, d.blockSize)
	copy(residue, packet[headerSize:])

	remaining := make(map[int]struct{}, len(neighbors))
	for _, i := range neighbors {
		if d.blocks.isDecoded(i) {
			xorBytes(residue, d.blocks.blocks[i])
		} else {
			remaining[i] = struct{}{}
		}
	}

	switch len(remaining) {
	case 0:
		// RedundantPacket: every neighbor already decoded.
	case 1:
		d.resolve(soleKey(remaining), residue)
	default:
		handle := d.nextHandle
		d.nextHandle++
		d.pending[handle] = &pendingPacket{neighbors: remaining, data: residue}
		for i := range remaining {
			d.index[i][handle] = struct{}{}
		}
	}

	return d.IsDone()
}

// resolve runs belief propagation starting from a single newly-resolved
// block, using a work queue instead of recursion so stack depth stays
// bounded regardless of k.
func (d *Decoder) resolve(block int, data []byte) {
	queue := []resolution{{block: block, data: data}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if d.blocks.isDecoded(cur.block) {
			continue
		}
		d.blocks.set(cur.block, cur.data)

		handles := d.index[cur.block]
		d.index[cur.block] = make(map[int]struct{})

		for handle := range handles {
			p, ok := d.pending[handle]
			if !ok {
				continue
			}

			xorBytes(p.data, cur.data)
			delete(p.neighbors, cur.block)

			switch len(p.neighbors) {
			case 0:
				delete(d.pending, handle)
			case 1:
				next := soleKey(p.neighbors)
				delete(d.pending, handle)
				delete(d.index[next], handle)
				if !d.blocks.isDecoded(next) {
					queue = append(queue, resolution{block: next, data: p.data})
				}
			}
		}
	}
}

// soleKey returns the single key of a one-element map. Callers only use
// this when len(m) == 1 is already established.
func soleKey(m map[int]struct{}) int {
	for k := range m {
		return k
	}
	panic("fountain: soleKey called on an empty map")
}

// GetResult returns the reconstructed payload trimmed to origLen. Returns
// an empty slice if the session is not yet complete.
func (d *Decoder) GetResult(origLen uint32) []byte {
	if !d.IsDone() {
		return []byte{}
	}

	out := d.blocks.concat()
	if int(origLen) < len(out) {
		out = out[:origLen]
	}
	return out
}
