package fountain

import (
	"math"
	"sort"
)

// robustSolitonC and robustSolitonDelta are the two constants that, together with the
// xorshift64 PRNG and its seeding rule, form the wire-compatibility
// contract between encoder and decoder. They must never be changed
// independently on one side of a transfer.
const (
	robustSolitonC     = 0.03
	robustSolitonDelta = 0.05
)

// robustSoliton holds the CDF for the Robust Soliton
// Distribution over degrees 1..k, built once per session and reused for
// every packet sampled in that session.
type robustSoliton struct {
	k   int
	cdf []float64 // cdf[i] is P(degree <= i+1), i.e. cdf is 0-indexed for degree i+1
}

// newRobustSoliton builds the CDF for k source blocks using the pinned
// (c, delta) parameters.
func newRobustSoliton(k int) *robustSoliton {
	if k <= 1 {
		return &robustSoliton{k: k}
	}

	kf := float64(k)
	r := robustSolitonC * math.Log(kf/robustSolitonDelta) * math.Sqrt(kf)
	m := int(math.Floor(kf / r))
	if m < 1 {
		m = 1
	}
	if m > k {
		m = k
	}

	pmf := make([]float64, k+1) // 1-indexed; pmf[0] unused
	for i := 1; i <= k; i++ {
		var rho float64
		if i == 1 {
			rho = 1 / kf
		} else {
			rho = 1 / (float64(i) * float64(i-1))
		}

		var tau float64
		switch {
		case i < m:
			tau = r / (float64(i) * kf)
		case i == m:
			tau = r * math.Log(r/robustSolitonDelta) / kf
		default:
			tau = 0
		}

		pmf[i] = rho + tau
	}

	var total float64
	for i := 1; i <= k; i++ {
		total += pmf[i]
	}

	cdf := make([]float64, k)
	var acc float64
	for i := 1; i <= k; i++ {
		acc += pmf[i] / total
		cdf[i-1] = acc
	}

	return &robustSoliton{k: k, cdf: cdf}
}

// sample draws a degree in [1, k] from the distribution using a uniform
// draw from rng and a binary search over the CDF.
func (rsd *robustSoliton) sample(rng *xorshift64) int {
	if rsd.k <= 1 {
		return 1
	}

	u := rng.float64()
	i := sort.Search(len(rsd.cdf), func(i int) bool { return rsd.cdf[i] >= u })
	if i >= len(rsd.cdf) {
		i = len(rsd.cdf) - 1
	}
	return i + 1
}
