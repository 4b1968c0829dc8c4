package rush

import (
	"github.com/cockroachdb/errors"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrBadProbability = errors.New("rush: probability outside [0, 1]")
	ErrNilDrawFunc    = errors.New("rush: nil custom draw function")
)

// Distribution decides how random attribute set values are drawn. The
// strategies are a closed set resolved at construction time: Uniform,
// Realistic, Binomial and Custom.
type Distribution interface {
	draw(n int, rng *xrand.Rand) uint64
	validate() error
}

type uniformDist struct{}

// Uniform draws every n bit value with equal probability.
func Uniform() Distribution { return uniformDist{} }

func (uniformDist) draw(n int, rng *xrand.Rand) uint64 {
	if n == 0 {
		return 0
	}
	if n == 64 {
		return rng.Uint64()
	}
	return rng.Uint64n(1 << uint(n))
}

func (uniformDist) validate() error { return nil }

type realisticDist struct{}

// Realistic weights the population count like real schema dependencies: the
// number of set bits is Binomial(n, 1/2) and the bits are placed by a
// random permutation.
func Realistic() Distribution { return realisticDist{} }

func (realisticDist) draw(n int, rng *xrand.Rand) uint64 {
	if n == 0 {
		return 0
	}
	bin := distuv.Binomial{N: float64(n), P: 0.5, Src: rng}
	k := int(bin.Rand())
	var bits uint64
	for _, i := range rng.Perm(n)[:k] {
		bits |= 1 << uint(i)
	}
	return bits
}

func (realisticDist) validate() error { return nil }

type binomialDist struct {
	p float64
}

// Binomial sets each bit independently with probability p.
func Binomial(p float64) Distribution { return binomialDist{p: p} }

func (d binomialDist) draw(n int, rng *xrand.Rand) uint64 {
	var bits uint64
	for i := 0; i < n; i++ {
		if rng.Float64() < d.p {
			bits |= 1 << uint(i)
		}
	}
	return bits
}

func (d binomialDist) validate() error {
	if d.p < 0 || d.p > 1 {
		return errors.Wrapf(ErrBadProbability, "%v", d.p)
	}
	return nil
}

type customDist struct {
	fn func(n int, rng *xrand.Rand) uint64
}

// Custom draws raw values from fn; results are masked to n bits by the
// generator.
func Custom(fn func(n int, rng *xrand.Rand) uint64) Distribution {
	return customDist{fn: fn}
}

func (d customDist) draw(n int, rng *xrand.Rand) uint64 { return d.fn(n, rng) }

func (d customDist) validate() error {
	if d.fn == nil {
		return ErrNilDrawFunc
	}
	return nil
}
