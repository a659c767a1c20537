package generating

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSamplePoisson_MediaZero(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, 0, samplePoisson(rng, 0))
	assert.Equal(t, 0, samplePoisson(rng, -10))
}

func TestSamplePoisson_ConvergeParaMedia(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	tests := []float64{5, 80, 500, 1500, 2000}

	for _, mean := range tests {
		const samples = 2000

		total := 0
		for i := 0; i < samples; i++ {
			total += samplePoisson(rng, mean)
		}
		got := float64(total) / samples

		// Tolerância de 4 desvios padrão da média amostral
		tolerance := 4 * math.Sqrt(mean/samples)
		assert.InDelta(t, mean, got, tolerance, "media=%v", mean)
	}
}

func TestSamplePoisson_MediaGrandeNaoDegenera(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	// exp(-2000) sofre underflow no método de Knuth puro; a divisão em
	// blocos precisa manter o sorteio longe de zero
	for i := 0; i < 100; i++ {
		got := samplePoisson(rng, 2000)
		assert.Greater(t, got, 1500)
		assert.Less(t, got, 2500)
	}
}

func TestSampleBinomial_Limites(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, 0, sampleBinomial(rng, 0, 0.5))
	assert.Equal(t, 0, sampleBinomial(rng, 100, 0))
	assert.Equal(t, 100, sampleBinomial(rng, 100, 1))
}

func TestSampleBinomial_NuncaExcedeN(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		n := rng.Intn(2000)
		got := sampleBinomial(rng, n, 0.08)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, n)
	}
}

func TestSampleBinomial_ConvergeParaNP(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const (
		samples = 2000
		n       = 1000
		p       = 0.05
	)

	total := 0
	for i := 0; i < samples; i++ {
		total += sampleBinomial(rng, n, p)
	}
	got := float64(total) / samples

	assert.InDelta(t, n*p, got, 4*math.Sqrt(n*p*(1-p)/samples))
}

func TestSampleNormal_ConvergeParaMedia(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const (
		samples = 5000
		mean    = 1500.0
		stddev  = 300.0
	)

	total := 0.0
	for i := 0; i < samples; i++ {
		total += sampleNormal(rng, mean, stddev)
	}
	got := total / samples

	assert.InDelta(t, mean, got, 4*stddev/math.Sqrt(samples))
}
