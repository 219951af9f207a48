package fountain

import "testing"

func TestParseHeaderRoundTrip(t *testing.T) {
	want := header{RunID: 0xdeadbeef, K: 5, OrigLen: 1000, SeqNum: 42}
	pkt := make([]byte, headerSize+10)
	putHeader(pkt, want)

	got, blockSize, ok := parseHeader(pkt)
	if !ok {
		t.Fatalf("parseHeader reported not ok for a well-formed packet")
	}
	if got != want {
		t.Errorf("parseHeader = %+v, want %+v", got, want)
	}
	if blockSize != 10 {
		t.Errorf("blockSize = %d, want 10", blockSize)
	}
}

func TestParseHeaderRejectsShortPacket(t *testing.T) {
	for _, n := range []int{0, 1, 15} {
		if _, _, ok := parseHeader(make([]byte, n)); ok {
			t.Errorf("parseHeader accepted a %d-byte packet", n)
		}
	}
}

func TestParseHeaderRejectsEmptyPayload(t *testing.T) {
	if _, _, ok := parseHeader(make([]byte, headerSize)); ok {
		t.Errorf("parseHeader accepted a packet with zero-length payload")
	}
}

func TestPacketHeaderExportedWrapper(t *testing.T) {
	pkt := make([]byte, headerSize+4)
	putHeader(pkt, header{RunID: 1, K: 2, OrigLen: 3, SeqNum: 4})

	runID, k, origLen, seqNum, blockSize, ok := PacketHeader(pkt)
	if !ok || runID != 1 || k != 2 || origLen != 3 || seqNum != 4 || blockSize != 4 {
		t.Errorf("PacketHeader = (%d, %d, %d, %d, %d, %v), want (1, 2, 3, 4, 4, true)",
			runID, k, origLen, seqNum, blockSize, ok)
	}
}
