package rush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xrand "golang.org/x/exp/rand"
)

func TestGeneratorDeterministicWithSeed(t *testing.T) {
	// It is normal to force the seed so generated data is the same from
	// run to run.
	a, err := NewGenerator(8, WithSeed(42))
	require.NoError(t, err)
	b, err := NewGenerator(8, WithSeed(42))
	require.NoError(t, err)

	fdsA, err := a.FDs(20)
	require.NoError(t, err)
	fdsB, err := b.FDs(20)
	require.NoError(t, err)
	assert.Equal(t, fdsA, fdsB)

	c, err := NewGenerator(8, WithSeed(43))
	require.NoError(t, err)
	fdsC, err := c.FDs(20)
	require.NoError(t, err)
	assert.NotEqual(t, fdsA, fdsC)
}

func TestGeneratorWordLength(t *testing.T) {
	for _, n := range []int{0, 1, 5, 63, 64} {
		g, err := NewGenerator(n, WithSeed(1))
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			assert.Equal(t, n, g.Word().Len())
		}
	}
}

func TestGeneratorFDsDistinct(t *testing.T) {
	g, err := NewGenerator(2, WithSeed(7))
	require.NoError(t, err)

	// All 16 distinct dependencies over 2 attributes must eventually
	// surface.
	fds, err := g.FDs(16)
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, f := range fds {
		require.False(t, seen[f.String()], "duplicate %v", f)
		seen[f.String()] = true
	}
	assert.Len(t, seen, 16)

	_, err = g.FDs(17)
	assert.ErrorIs(t, err, ErrTooManyFDs)
	_, err = g.FDs(-1)
	assert.ErrorIs(t, err, ErrBadFDCount)
}

func TestGeneratorValidation(t *testing.T) {
	_, err := NewGenerator(-1)
	assert.ErrorIs(t, err, ErrBadAttributeCount)
	_, err = NewGenerator(65)
	assert.ErrorIs(t, err, ErrBadAttributeCount)
	_, err = NewGenerator(4, WithDistribution(Binomial(1.5)))
	assert.ErrorIs(t, err, ErrBadProbability)
	_, err = NewGenerator(4, WithDistribution(Custom(nil)))
	assert.ErrorIs(t, err, ErrNilDrawFunc)
}

func TestBinomialDistributionBias(t *testing.T) {
	const n = 16
	g, err := NewGenerator(n, WithSeed(11), WithDistribution(Binomial(0.1)))
	require.NoError(t, err)

	ones := 0
	const draws = 500
	for i := 0; i < draws; i++ {
		ones += g.Word().PopCount()
	}
	// Mean popcount is n*p = 1.6; a band of [1, 2.4] is ~10 sigma wide.
	mean := float64(ones) / draws
	assert.Greater(t, mean, 1.0)
	assert.Less(t, mean, 2.4)
}

func TestRealisticDistributionPopCount(t *testing.T) {
	const n = 10
	g, err := NewGenerator(n, WithSeed(12), WithDistribution(Realistic()))
	require.NoError(t, err)

	ones := 0
	const draws = 500
	for i := 0; i < draws; i++ {
		ones += g.Word().PopCount()
	}
	// Mean popcount is n/2 = 5.
	mean := float64(ones) / draws
	assert.Greater(t, mean, 4.0)
	assert.Less(t, mean, 6.0)
}

func TestCustomDistribution(t *testing.T) {
	g, err := NewGenerator(4, WithDistribution(Custom(
		func(n int, rng *xrand.Rand) uint64 { return 0b0101 })))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		assert.Equal(t, uint64(0b0101), g.Word().Bits())
	}
}

func TestCustomDistributionMasked(t *testing.T) {
	// Draws wider than the universe are masked to length.
	g, err := NewGenerator(3, WithDistribution(Custom(
		func(n int, rng *xrand.Rand) uint64 { return 0xff })))
	require.NoError(t, err)
	assert.Equal(t, uint64(0b111), g.Word().Bits())
}
