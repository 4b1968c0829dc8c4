package fd

import (
	"fmt"
	"sort"

	"github.com/KamiliArsyad/FDSampleRush/bitword"
)

// FD is a functional dependency LHS -> RHS. Both words must share the
// universe length; a mismatch panics on first combination. FD is a
// comparable value, equality is structural.
type FD struct {
	LHS bitword.Word
	RHS bitword.Word
}

// Trivial reports whether the dependency always holds, ie RHS is a subset
// of LHS.
func (f FD) Trivial() bool { return f.RHS.SubsetOf(f.LHS) }

func (f FD) String() string {
	return fmt.Sprintf("%s -> %s", f.LHS, f.RHS)
}

// less is the canonical FD order: ascending by left side value, then right.
func less(a, b FD) bool {
	if a.LHS.Bits() != b.LHS.Bits() {
		return a.LHS.Bits() < b.LHS.Bits()
	}
	return a.RHS.Bits() < b.RHS.Bits()
}

// Canonical de-duplicates fds structurally and sorts the result into the
// canonical (LHS, RHS) order. The input is not modified.
func Canonical(fds []FD) []FD {
	out := append([]FD(nil), fds...)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	j := 0
	for i, f := range out {
		if i > 0 && f == out[j-1] {
			continue
		}
		out[j] = f
		j++
	}
	return out[:j]
}

func sortWords(words []bitword.Word) {
	sort.Slice(words, func(i, j int) bool {
		a, b := words[i], words[j]
		if a.PopCount() != b.PopCount() {
			return a.PopCount() < b.PopCount()
		}
		return a.Bits() < b.Bits()
	})
}
