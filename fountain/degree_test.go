package fountain

import "testing"

func TestRobustSolitonForcesDegreeOneWhenK1(t *testing.T) {
	rsd := newRobustSoliton(1)
	rng := newXorshift64(1, 1)
	for i := 0; i < 20; i++ {
		if d := rsd.sample(rng); d != 1 {
			t.Errorf("sample() with k=1 returned degree %d, want 1", d)
		}
	}
}

func TestRobustSolitonDegreeWithinRange(t *testing.T) {
	const k = 40
	rsd := newRobustSoliton(k)
	for seq := uint32(0); seq < 500; seq++ {
		rng := newXorshift64(0x01020304, seq)
		d := rsd.sample(rng)
		if d < 1 || d > k {
			t.Errorf("sample() returned degree %d, want in [1, %d]", d, k)
		}
	}
}

func TestRobustSolitonIsDeterministic(t *testing.T) {
	rsd := newRobustSoliton(40)
	a := rsd.sample(newXorshift64(99, 7))
	b := rsd.sample(newXorshift64(99, 7))
	if a != b {
		t.Errorf("two samples from the same seed diverged: %d vs %d", a, b)
	}
}
