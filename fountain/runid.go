package fountain

import "github.com/google/uuid"

// NewRunID generates a session identifier suitable for NewEncoder's runID
// argument. It is host-side convenience, not part of the wire contract:
// nothing stops a caller from picking their own run_id, and the decoder
// never validates where a run_id came from, only that it stays constant
// for the life of a session.
//
// The 128-bit UUID is folded down to 32 bits with the same xorshift64
// generator used for packet neighbor selection, and remapped away from
// zero the same way a packet seed is, so the result can never collide
// with the "use a fixed fallback seed" case.
func NewRunID() uint32 {
	id := uuid.New()
	state := uint64(1)
	for _, b := range id[:] {
		state ^= uint64(b)
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
	}

	runID := uint32(state ^ (state >> 32))
	if runID == 0 {
		runID = 1
	}
	return runID
}
