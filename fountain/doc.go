/*
Package fountain implements a Luby Transform (LT) fountain codec for
unidirectional, rateless bulk transfer across a lossy channel with no
back-channel. It was built for shipping data over a sequence of on-screen
barcodes read by a camera, but it is agnostic to the transport.

A sender splits a payload into k fixed-size source blocks and emits an
unbounded stream of packets, each an XOR of a randomly chosen subset of
those blocks. A receiver pushes packets, in any order and with any amount
of duplication, into a decoder that runs belief propagation as blocks
resolve, until all k blocks are known.

The degree distribution (Robust Soliton) and the pseudo-random neighbor
selection are a wire-compatibility contract: every implementation must
derive the same neighbor set from the same (run_id, seq_num, k) triple.
See prng.go and degree.go for the pinned constants.

This package performs no I/O and holds no global state; every Encoder and
Decoder is an independent, single-threaded, synchronous instance.
*/
package fountain
