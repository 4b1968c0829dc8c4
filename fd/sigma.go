package fd

import "github.com/KamiliArsyad/FDSampleRush/bitword"

// SigmaPlusLimited produces the reduced generating set of the semantic
// closure of fds over an n attribute universe: one dependency
// (S, Closure(S)) per attribute subset S, restricted to subsets that do not
// contain a discovered superkey. The restriction loses nothing a minimal
// cover could use (any subset of a key already determines everything) and
// keeps the output far below the unrestricted sigma plus.
//
// Feeding the result to MinimalCovers enumerates every minimal cover of the
// implied dependency set rather than of the literal input; that is what
// AllMinimalCovers does.
//
// An empty or fully trivial fds over a known n is well defined: every
// closure is the identity, so the output is the reflexive generating set
// and every recorded dependency is trivial.
func SigmaPlusLimited(n int, fds []FD) []FD {
	nt := NonTrivial(fds)

	var found []bitword.Word
	var out []FD
	for c := 0; c <= n; c++ {
		for _, sub := range subsets(n, c, found) {
			cl := Closure(sub, nt)
			if cl.IsOnes() {
				found = append(found, sub)
			}
			out = append(out, FD{LHS: sub, RHS: cl})
		}
	}
	return Canonical(out)
}
