package generating

import (
	"math"
	"math/rand"
)

// samplePoisson sorteia de uma Poisson com a média informada. Médias grandes
// são divididas em blocos para manter exp(-media) fora da região de underflow
// do método de Knuth; a soma de Poissons independentes preserva a distribuição.
func samplePoisson(rng *rand.Rand, mean float64) int {
	if mean <= 0 {
		return 0
	}

	const block = 500.0

	total := 0
	for mean > block {
		total += poissonKnuth(rng, block)
		mean -= block
	}

	return total + poissonKnuth(rng, mean)
}

func poissonKnuth(rng *rand.Rand, mean float64) int {
	limit := math.Exp(-mean)

	k := 0
	p := 1.0
	for {
		k++
		p *= rng.Float64()
		if p <= limit {
			break
		}
	}

	return k - 1
}

// sampleBinomial sorteia de uma Binomial(n, p) por afinamento de Bernoulli,
// o que garante resultado <= n por construção.
func sampleBinomial(rng *rand.Rand, n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}

	count := 0
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			count++
		}
	}

	return count
}

// sampleNormal sorteia de uma Normal com média e desvio padrão informados.
func sampleNormal(rng *rand.Rand, mean, stddev float64) float64 {
	return mean + rng.NormFloat64()*stddev
}
