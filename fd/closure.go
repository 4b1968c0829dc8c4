package fd

import "github.com/KamiliArsyad/FDSampleRush/bitword"

// Closure computes the attribute closure of x under fds: the fixpoint of
// unioning in the right side of every dependency whose left side is
// contained in the working set. Any FD structurally equal to a member of
// exclude is skipped, which lets callers ask "what would the closure be
// without this dependency" when probing for redundancy.
func Closure(x bitword.Word, fds []FD, exclude ...FD) bitword.Word {
	cl := x
	for changed := true; changed; {
		changed = false
		for _, f := range fds {
			if len(exclude) > 0 && containsFD(exclude, f) {
				continue
			}
			if !f.LHS.SubsetOf(cl) {
				continue
			}
			next := cl.Or(f.RHS)
			if next != cl {
				cl = next
				changed = true
			}
		}
	}
	return cl
}

// IsSuperkey reports whether x determines the full attribute universe.
func IsSuperkey(x bitword.Word, fds []FD) bool {
	return Closure(x, fds).IsOnes()
}

func containsFD(fds []FD, f FD) bool {
	for _, g := range fds {
		if g == f {
			return true
		}
	}
	return false
}

// slot is one entry of a mutable working set during the cover search. FDs
// are dropped by tombstoning rather than compaction so positions stay
// stable within a pass.
type slot struct {
	fd      FD
	removed bool
}

func makeSlots(fds []FD) []slot {
	slots := make([]slot, len(fds))
	for i, f := range fds {
		slots[i].fd = f
	}
	return slots
}

func compactSlots(slots []slot) []FD {
	var out []FD
	for _, s := range slots {
		if !s.removed {
			out = append(out, s.fd)
		}
	}
	return out
}

// closureSlots is Closure over a tombstoned working set, excluding the slot
// at excludeIdx (-1 for none). Excluding by index rather than by value keeps
// the redundancy probe correct when the working set contains structurally
// equal FDs at different positions.
func closureSlots(x bitword.Word, slots []slot, excludeIdx int) bitword.Word {
	cl := x
	for changed := true; changed; {
		changed = false
		for i, s := range slots {
			if s.removed || i == excludeIdx {
				continue
			}
			if !s.fd.LHS.SubsetOf(cl) {
				continue
			}
			next := cl.Or(s.fd.RHS)
			if next != cl {
				cl = next
				changed = true
			}
		}
	}
	return cl
}
