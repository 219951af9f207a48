package fountain

// sampleNeighbors picks degree distinct block indices from [0, k) using
// rng. Order is irrelevant, since the payload is a commutative XOR, so the
// result is returned in draw order, not sorted.
//
// This is a repeated-draw-with-rejection sampler, not reservoir sampling:
// sufficient because degree <= k and in practice degree is much smaller
// than k, so collisions are rare.
func sampleNeighbors(rng *xorshift64, k, degree int) []int {
	if degree >= k {
		all := make([]int, k)
		for i := range all {
			all[i] = i
		}
		return all
	}

	chosen := make([]int, 0, degree)
	seen := make(map[int]bool, degree)
	for len(chosen) < degree {
		i := rng.intn(k)
		if seen[i] {
			continue
		}
		seen[i] = true
		chosen = append(chosen, i)
	}
	return chosen
}

// packetNeighbors reproduces, bit-for-bit, the neighbor set an encoder
// would choose for packet (runID, seqNum) against the session's k source
// blocks. Both Encoder and Decoder call this against the same rsd (built
// once per session) so they never drift apart.
func packetNeighbors(rsd *robustSoliton, runID, seqNum uint32) []int {
	rng := newXorshift64(runID, seqNum)
	degree := rsd.sample(rng)
	return sampleNeighbors(rng, rsd.k, degree)
}
