package fountain

import "testing"

func TestSampleNeighborsReturnsDistinctIndices(t *testing.T) {
	rng := newXorshift64(0x1357, 99)
	got := sampleNeighbors(rng, 20, 6)

	if len(got) != 6 {
		t.Fatalf("len(got) = %d, want 6", len(got))
	}
	seen := make(map[int]bool, len(got))
	for _, i := range got {
		if i < 0 || i >= 20 {
			t.Fatalf("index %d out of range [0, 20)", i)
		}
		if seen[i] {
			t.Fatalf("index %d returned more than once", i)
		}
		seen[i] = true
	}
}

func TestSampleNeighborsDegreeAtLeastKReturnsEveryIndex(t *testing.T) {
	rng := newXorshift64(0xabcd, 1)
	got := sampleNeighbors(rng, 5, 5)
	if len(got) != 5 {
		t.Fatalf("len(got) = %d, want 5", len(got))
	}
	for i := 0; i < 5; i++ {
		found := false
		for _, v := range got {
			if v == i {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("index %d missing from result covering the full block set", i)
		}
	}

	got = sampleNeighbors(newXorshift64(0xabcd, 2), 5, 9)
	if len(got) != 5 {
		t.Fatalf("degree > k: len(got) = %d, want 5", len(got))
	}
}

func TestPacketNeighborsIsDeterministic(t *testing.T) {
	rsd := newRobustSoliton(30)

	a := packetNeighbors(rsd, 77, 12)
	b := packetNeighbors(rsd, 77, 12)

	if len(a) != len(b) {
		t.Fatalf("len(a) = %d, len(b) = %d, want equal", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("a[%d] = %d, b[%d] = %d, want equal", i, a[i], i, b[i])
		}
	}
}

func TestPacketNeighborsVariesWithSeqNum(t *testing.T) {
	rsd := newRobustSoliton(30)

	a := packetNeighbors(rsd, 77, 1)
	b := packetNeighbors(rsd, 77, 2)

	if len(a) == len(b) {
		same := true
		for i := range a {
			if a[i] != b[i] {
				same = false
				break
			}
		}
		if same {
			t.Errorf("packetNeighbors produced identical neighbor sets for different seq_num values")
		}
	}
}
