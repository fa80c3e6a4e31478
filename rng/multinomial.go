package rng

// Binomial draws the number of successes in n independent Bernoulli(p)
// trials from the vector stream. No multinomial or binomial sampler
// appears anywhere in the example corpus, so this is the one place in
// the package built directly on math/rand's primitives rather than a
// borrowed idiom: a plain sequential trial count, which is exact and
// simple to audit even though it is O(n).
func Binomial(g *Generator, n int, p float64) int {
	switch {
	case n <= 0 || p <= 0:
		return 0
	case p >= 1:
		return n
	}
	k := 0
	for i := 0; i < n; i++ {
		if g.vector.Float64() < p {
			k++
		}
	}
	return k
}

// Multinomial draws a random partition of n items across
// len(weights) bins with selection probability proportional to
// weights, replacing the source's numpy.random.multinomial calls (one
// for spreading a total connection count across partitions
// proportional to partition size, another for spreading a target's
// in-degree across source partitions). It reduces the draw to a
// sequence of binomial draws: each bin in turn takes a Binomial
// sample of the remaining count against its share of the remaining
// weight, which is the standard way to construct a multinomial
// sampler out of a binomial one.
func Multinomial(g *Generator, n int, weights []float64) []int {
	counts := make([]int, len(weights))
	if len(weights) == 0 {
		return counts
	}
	remaining := n
	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}
	for i := 0; i < len(weights)-1 && remaining > 0; i++ {
		if totalWeight <= 0 {
			break
		}
		p := weights[i] / totalWeight
		k := Binomial(g, remaining, p)
		counts[i] = k
		remaining -= k
		totalWeight -= weights[i]
	}
	counts[len(weights)-1] += remaining
	return counts
}
