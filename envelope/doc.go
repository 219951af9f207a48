// Package envelope implements the two optional byte-to-byte wrappers that
// sit between a raw payload and the fountain codec: a gzip compression
// envelope with a skip-if-no-benefit policy, and a filename envelope.
//
// Both are pure transforms, with no I/O and no state held across calls,
// applied in the order file envelope, then compression envelope, before
// fountain encoding, and unwound in reverse after decoding.
package envelope
