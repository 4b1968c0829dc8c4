package fd

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/KamiliArsyad/FDSampleRush/bitword"
)

// CandidateKeys enumerates the candidate keys (minimal superkeys) of fds
// over a universe of n attributes. n is always explicit, never inferred
// from the input; an empty or fully trivial FD set yields exactly the full
// attribute set.
//
// Subsets are tried in ascending size, and any subset containing an already
// found key is pruned before testing, so every recorded key is minimal by
// construction. The result is the antichain of keys, sorted ascending by
// (size, value).
func CandidateKeys(n int, fds []FD) []bitword.Word {
	nt := NonTrivial(fds)

	var keys []bitword.Word
	for c := 0; c <= n; c++ {
		for _, cand := range subsets(n, c, keys) {
			if Closure(cand, nt).IsOnes() {
				keys = append(keys, cand)
			}
		}
	}
	sortWords(keys)
	return keys
}

// subsets returns the size-c subsets of an n attribute universe in
// lexicographic bit-index order, skipping any subset that contains a member
// of exclude.
func subsets(n, c int, exclude []bitword.Word) []bitword.Word {
	if c == 0 {
		empty := bitword.New(n)
		if containsSubsetOf(exclude, empty) {
			return nil
		}
		return []bitword.Word{empty}
	}

	var out []bitword.Word
	gen := combin.NewCombinationGenerator(n, c)
	buf := make([]int, c)
	for gen.Next() {
		gen.Combination(buf)
		cand := bitword.FromIndices(n, buf...)
		if containsSubsetOf(exclude, cand) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// containsSubsetOf reports whether any member of words is a subset of cand.
func containsSubsetOf(words []bitword.Word, cand bitword.Word) bool {
	for _, w := range words {
		if w.SubsetOf(cand) {
			return true
		}
	}
	return false
}
