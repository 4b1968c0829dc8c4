// Package rush generates random functional dependency sets and batches
// normal form classification over them: the statistical sampling harness
// around the fd engine. Work is bounded by wall clock only; the underlying
// enumeration is exponential and the harness makes no attempt to cut a
// sample short.
package rush

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"

	"github.com/KamiliArsyad/FDSampleRush/fd"
)

var (
	ErrBadBudget = errors.New("rush: budget must be positive")
	ErrBadMaxFDs = errors.New("rush: max fds out of range")
)

// Result is one classified sample. The normal form booleans are laddered:
// ThirdNF and SecondNF are reported true whenever a stronger form already
// holds, matching how the strongest form is found.
type Result struct {
	Attributes int
	FDs        []fd.FD
	BCNF       bool
	ThirdNF    bool
	SecondNF   bool
	Form       fd.Form
	Elapsed    time.Duration
}

// Classify runs the laddered normal form checks over one sample, timing
// them with a wall clock.
func Classify(n int, fds []fd.FD) Result {
	start := time.Now()
	c := fd.NewClassifier(n, fds)

	r := Result{Attributes: n, FDs: fds, Form: fd.Form1NF}
	r.BCNF = c.IsBCNF()
	r.ThirdNF = r.BCNF || c.Is3NF()
	r.SecondNF = r.ThirdNF || c.Is2NF()
	switch {
	case r.BCNF:
		r.Form = fd.FormBCNF
	case r.ThirdNF:
		r.Form = fd.Form3NF
	case r.SecondNF:
		r.Form = fd.Form2NF
	}
	r.Elapsed = time.Since(start)
	return r
}

// Summary aggregates a batch of results. The per-form counts are
// cumulative: a BCNF sample counts toward ThirdNF and SecondNF as well,
// while FirstNF counts only the samples that satisfy nothing stronger.
type Summary struct {
	Samples  int
	BCNF     int
	ThirdNF  int
	SecondNF int
	FirstNF  int
	Elapsed  time.Duration
}

func Summarize(results []Result) Summary {
	s := Summary{Samples: len(results)}
	for _, r := range results {
		if r.BCNF {
			s.BCNF++
		}
		if r.ThirdNF {
			s.ThirdNF++
		}
		if r.SecondNF {
			s.SecondNF++
		} else {
			s.FirstNF++
		}
		s.Elapsed += r.Elapsed
	}
	return s
}

// Config parameterizes a Rush.
type Config struct {
	// Attributes is the universe size of every generated sample.
	Attributes int

	// Budget is the wall clock limit; sampling stops at the first sample
	// boundary past it.
	Budget time.Duration

	// MaxFDs caps the dependency count per sample.
	MaxFDs int

	// Seed fixes the random sequence. Zero seeds from the clock.
	Seed uint64

	// Distribution for attribute set values. Nil means Uniform.
	Distribution Distribution

	// Count draws the dependency count for the next sample, in [1, max].
	// Nil means uniform.
	Count func(rng *xrand.Rand, max int) int

	// Logger for per-sample debug lines and the final summary. Nil means
	// no logging.
	Logger *zap.Logger
}

// Rush drives repeated sample generation and classification under a wall
// clock budget.
type Rush struct {
	cfg     Config
	id      uuid.UUID
	gen     *Generator
	rng     *xrand.Rand
	log     *zap.SugaredLogger
	results []Result
}

func New(cfg Config) (*Rush, error) {
	if cfg.Attributes < 1 || cfg.Attributes > 64 {
		return nil, errors.Wrapf(ErrBadAttributeCount, "%d not in [1, 64]", cfg.Attributes)
	}
	if cfg.Budget <= 0 {
		return nil, errors.Wrapf(ErrBadBudget, "%v", cfg.Budget)
	}
	if cfg.MaxFDs < 1 {
		return nil, errors.Wrapf(ErrBadMaxFDs, "%d < 1", cfg.MaxFDs)
	}
	if 2*cfg.Attributes < 63 && uint64(cfg.MaxFDs) > 1<<(2*uint(cfg.Attributes)) {
		return nil, errors.Wrapf(ErrBadMaxFDs, "%d > 4^%d distinct fds", cfg.MaxFDs, cfg.Attributes)
	}

	if cfg.Distribution == nil {
		cfg.Distribution = Uniform()
	}
	if cfg.Count == nil {
		cfg.Count = func(rng *xrand.Rand, max int) int { return 1 + rng.Intn(max) }
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen, err := NewGenerator(cfg.Attributes,
		WithDistribution(cfg.Distribution), WithSeed(seed))
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	return &Rush{
		cfg: cfg,
		id:  id,
		gen: gen,
		rng: xrand.New(seededSource(seed + 1)),
		log: cfg.Logger.Sugar().With("rush", id.String()),
	}, nil
}

// ID is the run correlation id carried on every log line.
func (r *Rush) ID() uuid.UUID { return r.id }

// Results returns every sample classified so far.
func (r *Rush) Results() []Result { return r.results }

// Run samples until the budget or ctx expires and returns the aggregate.
// On cancellation the summary of the samples completed so far is returned
// together with the context error.
func (r *Rush) Run(ctx context.Context) (Summary, error) {
	r.log.Infow("rush started",
		"attributes", r.cfg.Attributes, "budget", r.cfg.Budget, "maxFDs", r.cfg.MaxFDs)

	deadline := time.Now().Add(r.cfg.Budget)
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return r.summarize(), err
		}

		m := r.cfg.Count(r.rng, r.cfg.MaxFDs)
		fds, err := r.gen.FDs(m)
		if err != nil {
			return r.summarize(), err
		}

		res := Classify(r.cfg.Attributes, fds)
		r.results = append(r.results, res)
		r.log.Debugw("sample classified",
			"sample", len(r.results), "fds", m, "form", res.Form.String(), "elapsed", res.Elapsed)
	}

	return r.summarize(), nil
}

func (r *Rush) summarize() Summary {
	s := Summarize(r.results)
	r.log.Infow("rush finished",
		"samples", s.Samples, "bcnf", s.BCNF, "3nf", s.ThirdNF, "2nf", s.SecondNF,
		"1nf", s.FirstNF, "classification", s.Elapsed)
	return s
}

func seededSource(seed uint64) xrand.Source {
	src := prng.NewMT19937()
	src.Seed(seed)
	return src
}
