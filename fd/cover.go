package fd

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/KamiliArsyad/FDSampleRush/bitword"
)

// Decompose rewrites every dependency L -> R as one dependency L -> {r} per
// attribute r of R. The conjunction of the singleton consequences is
// equivalent to the original, so decomposition is lossless.
func Decompose(fds []FD) []FD {
	var out []FD
	for _, f := range fds {
		for _, r := range f.RHS.Indices() {
			out = append(out, FD{LHS: f.LHS, RHS: bitword.FromIndices(f.RHS.Len(), r)})
		}
	}
	return out
}

// NonTrivial filters out dependencies whose right side is a subset of their
// left side.
func NonTrivial(fds []FD) []FD {
	var out []FD
	for _, f := range fds {
		if !f.Trivial() {
			out = append(out, f)
		}
	}
	return out
}

// Compact merges dependencies sharing a left side by unioning their right
// sides, preserving first-seen left side order.
func Compact(fds []FD) []FD {
	var out []FD
	for _, f := range fds {
		merged := false
		for i := range out {
			if out[i].LHS == f.LHS {
				out[i].RHS = out[i].RHS.Or(f.RHS)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, f)
		}
	}
	return out
}

// MinimizeLeft removes redundant left side attributes from each dependency,
// returning a single left-reduced set. A bit i of an LHS is redundant when
// the closure of LHS minus i under the current working set still covers the
// RHS; reductions are applied permanently so later tests see them.
func MinimizeLeft(fds []FD) []FD {
	work := append([]FD(nil), fds...)
	for i := range work {
		if work[i].LHS.PopCount() <= 1 {
			continue
		}
		for b := 0; b < work[i].LHS.Len(); b++ {
			lhs := work[i].LHS
			if !lhs.Has(b) {
				continue
			}
			reduced := lhs.ClearBit(b)
			if work[i].RHS.SubsetOf(Closure(reduced, work)) {
				work[i].LHS = reduced
			}
		}
	}
	return Canonical(work)
}

// MinimizeRight drops trivial dependencies, then removes each dependency
// that is implied by the rest: L -> R is redundant when R is in the closure
// of L computed without that slot.
func MinimizeRight(fds []FD) []FD {
	slots := makeSlots(NonTrivial(fds))
	for i := range slots {
		f := slots[i].fd
		if f.RHS.SubsetOf(closureSlots(f.LHS, slots, i)) {
			slots[i].removed = true
		}
	}
	return Canonical(compactSlots(slots))
}

// MinimalCover produces one minimal cover of fds: singleton right sides, no
// redundant left side attribute, no redundant dependency.
func MinimalCover(fds []FD) []FD {
	return MinimizeRight(MinimizeLeft(Canonical(NonTrivial(Decompose(fds)))))
}

// MinimizeLeftAll is the exhaustive counterpart of MinimizeLeft: it returns
// every left-reduced variant of fds. The search keeps a worklist of full
// working copies. At each dependency position, every variant is rewritten
// with the first minimal replacement left side and forked once per further
// incomparable replacement. Forking copies the whole variant, not the
// single dependency, because replacements for later positions are tested
// against the reduced earlier positions of the same variant.
func MinimizeLeftAll(fds []FD) [][]FD {
	base := append([]FD(nil), fds...)
	variants := [][]FD{append([]FD(nil), base...)}

	for i := range base {
		if base[i].LHS.PopCount() <= 1 {
			continue
		}
		// Forks appended below must not be reprocessed at this position.
		settled := len(variants)
		for v := 0; v < settled; v++ {
			variant := variants[v]
			reps := minimalLeftSides(variant[i], variant)
			for k, lhs := range reps {
				if k == 0 {
					variant[i] = FD{LHS: lhs, RHS: variant[i].RHS}
					continue
				}
				forked := append([]FD(nil), variant...)
				forked[i] = FD{LHS: lhs, RHS: forked[i].RHS}
				variants = append(variants, forked)
			}
		}
	}

	return dedupeCovers(variants)
}

// minimalLeftSides returns every minimal replacement left side for f that
// still implies f.RHS under fds (which includes f itself, so the full left
// side is always a fallback). Candidates are enumerated size-ascending and
// any candidate containing an accepted replacement is skipped, so each
// accepted side is minimal by construction.
func minimalLeftSides(f FD, fds []FD) []bitword.Word {
	attrs := f.LHS.Indices()
	var reps []bitword.Word
	for c := 1; c <= len(attrs); c++ {
		gen := combin.NewCombinationGenerator(len(attrs), c)
		buf := make([]int, c)
		for gen.Next() {
			gen.Combination(buf)
			cand := bitword.New(f.LHS.Len())
			for _, j := range buf {
				cand = cand.SetBit(attrs[j], true)
			}
			if containsSubsetOf(reps, cand) {
				continue
			}
			if f.RHS.SubsetOf(Closure(cand, fds)) {
				reps = append(reps, cand)
			}
		}
	}
	return reps
}

// MinimizeRightAll is the exhaustive counterpart of MinimizeRight: it
// returns every subset-minimal way of dropping redundant dependencies from
// fds. At each position the variant list forks into drop and keep whenever
// dropping is valid under that variant, so k droppable dependencies produce
// up to 2^k raw variants. The raw variants are then reduced to the
// subset-minimal antichain; the second pass is mandatory because naive
// branching emits many covers that are valid but strict supersets of other
// emitted covers.
func MinimizeRightAll(fds []FD) [][]FD {
	base := NonTrivial(fds)
	variants := [][]slot{makeSlots(base)}

	for i := range base {
		prev := variants
		variants = variants[:0:0]
		for _, variant := range prev {
			f := variant[i].fd
			if f.RHS.SubsetOf(closureSlots(f.LHS, variant, i)) {
				dropped := append([]slot(nil), variant...)
				dropped[i].removed = true
				variants = append(variants, dropped)
			}
			variants = append(variants, variant)
		}
	}

	covers := make([][]FD, 0, len(variants))
	for _, variant := range variants {
		covers = append(covers, Canonical(compactSlots(variant)))
	}
	sortCovers(covers)

	// Keep only the antichain: walking smallest first, a cover survives
	// unless some survivor is a subset of it (equal sets de-duplicate here
	// too, since each cover is a subset of its duplicates).
	var kept [][]FD
	for _, c := range covers {
		dominated := false
		for _, k := range kept {
			if coverSubsetOf(k, c) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, c)
		}
	}
	return kept
}

// MinimalCovers enumerates every minimal cover of the literal input set:
// normalize, left-reduce exhaustively, right-reduce each left variant
// exhaustively, and de-duplicate covers that distinct branches reached.
func MinimalCovers(fds []FD) [][]FD {
	norm := Canonical(NonTrivial(Decompose(fds)))
	var covers [][]FD
	for _, lm := range MinimizeLeftAll(norm) {
		covers = append(covers, MinimizeRightAll(lm)...)
	}
	return dedupeCovers(covers)
}

// AllMinimalCovers enumerates every minimal cover of the dependency set
// IMPLIED by fds over an n attribute universe, by widening the working set
// to the reduced generating set of the semantic closure before the cover
// search.
func AllMinimalCovers(n int, fds []FD) [][]FD {
	norm := NonTrivial(Decompose(fds))
	return MinimalCovers(SigmaPlusLimited(n, norm))
}

// coverSubsetOf reports whether cover a, as a set of FDs, is contained in
// cover b. Both must be canonical.
func coverSubsetOf(a, b []FD) bool {
	j := 0
	for _, f := range a {
		for j < len(b) && less(b[j], f) {
			j++
		}
		if j >= len(b) || b[j] != f {
			return false
		}
		j++
	}
	return true
}

func sortCovers(covers [][]FD) {
	sort.Slice(covers, func(i, j int) bool {
		a, b := covers[i], covers[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return less(a[k], b[k])
			}
		}
		return false
	})
}

// dedupeCovers canonicalizes each cover, removes structural duplicates and
// returns the survivors in (size, lexicographic) order.
func dedupeCovers(covers [][]FD) [][]FD {
	seen := make(map[string]bool, len(covers))
	out := make([][]FD, 0, len(covers))
	for _, c := range covers {
		c = Canonical(c)
		k := coverKey(c)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	sortCovers(out)
	return out
}

func coverKey(cover []FD) string {
	var b strings.Builder
	for _, f := range cover {
		b.WriteString(f.String())
		b.WriteByte(';')
	}
	return b.String()
}
