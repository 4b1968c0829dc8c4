package rush

import (
	"time"

	"github.com/cockroachdb/errors"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/KamiliArsyad/FDSampleRush/bitword"
	"github.com/KamiliArsyad/FDSampleRush/fd"
)

var (
	ErrBadAttributeCount = errors.New("rush: attribute count out of range")
	ErrBadFDCount        = errors.New("rush: fd count negative")
	ErrTooManyFDs        = errors.New("rush: more distinct fds requested than exist")
)

// Generator draws random attribute sets and functional dependencies over a
// fixed universe. Not safe for concurrent use; create one per goroutine.
type Generator struct {
	n    int
	dist Distribution
	rng  *xrand.Rand
}

type generatorOptions struct {
	dist Distribution
	src  xrand.Source
}

type GeneratorOption func(*generatorOptions)

// WithDistribution selects the value distribution. Default is Uniform.
func WithDistribution(d Distribution) GeneratorOption {
	return func(o *generatorOptions) { o.dist = d }
}

// WithSeed makes the generator deterministic: a fixed seed reproduces the
// same sequence from run to run.
func WithSeed(seed uint64) GeneratorOption {
	return func(o *generatorOptions) {
		src := prng.NewMT19937()
		src.Seed(seed)
		o.src = src
	}
}

// WithSource supplies the randomness source directly, overriding WithSeed.
func WithSource(src xrand.Source) GeneratorOption {
	return func(o *generatorOptions) { o.src = src }
}

func NewGenerator(n int, opts ...GeneratorOption) (*Generator, error) {
	if n < 0 || n > bitword.MaxBits {
		return nil, errors.Wrapf(ErrBadAttributeCount, "%d not in [0, %d]", n, bitword.MaxBits)
	}

	o := generatorOptions{dist: Uniform()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.dist.validate(); err != nil {
		return nil, err
	}
	if o.src == nil {
		src := prng.NewMT19937()
		src.Seed(uint64(time.Now().UnixNano()))
		o.src = src
	}
	return &Generator{n: n, dist: o.dist, rng: xrand.New(o.src)}, nil
}

// N is the attribute universe size the generator draws over.
func (g *Generator) N() int { return g.n }

// Word draws one attribute set.
func (g *Generator) Word() bitword.Word {
	return bitword.FromBits(g.n, g.dist.draw(g.n, g.rng))
}

// FD draws one dependency: two independent attribute sets.
func (g *Generator) FD() fd.FD {
	return fd.FD{LHS: g.Word(), RHS: g.Word()}
}

// FDs draws m structurally distinct dependencies. There are 4^n distinct
// dependencies over n attributes; asking for more fails instead of looping
// forever. A degenerate Custom distribution that cannot produce m distinct
// values will still loop; that is the caller's contract to uphold.
func (g *Generator) FDs(m int) ([]fd.FD, error) {
	if m < 0 {
		return nil, errors.Wrapf(ErrBadFDCount, "%d", m)
	}
	if 2*g.n < 63 && uint64(m) > 1<<(2*uint(g.n)) {
		return nil, errors.Wrapf(ErrTooManyFDs, "%d > 4^%d", m, g.n)
	}

	seen := make(map[fd.FD]bool, m)
	out := make([]fd.FD, 0, m)
	for len(out) < m {
		f := g.FD()
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out, nil
}
