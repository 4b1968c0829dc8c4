package fd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xrand "golang.org/x/exp/rand"

	"github.com/KamiliArsyad/FDSampleRush/bitword"
)

func TestDecompose(t *testing.T) {
	got := Decompose(fdsOf(3, [2]uint64{1, 6}, [2]uint64{2, 0}, [2]uint64{4, 1}))
	want := fdsOf(3, [2]uint64{1, 2}, [2]uint64{1, 4}, [2]uint64{4, 1})
	assert.Equal(t, want, got)
}

func TestNonTrivial(t *testing.T) {
	got := NonTrivial(fdsOf(3, [2]uint64{3, 1}, [2]uint64{3, 5}, [2]uint64{2, 0}, [2]uint64{1, 6}))
	want := fdsOf(3, [2]uint64{3, 5}, [2]uint64{1, 6})
	assert.Equal(t, want, got)
}

func TestCompact(t *testing.T) {
	got := Compact(fdsOf(3, [2]uint64{1, 2}, [2]uint64{2, 1}, [2]uint64{1, 4}))
	want := fdsOf(3, [2]uint64{1, 6}, [2]uint64{2, 1})
	assert.Equal(t, want, got)
}

func TestCanonical(t *testing.T) {
	got := Canonical(fdsOf(3, [2]uint64{4, 1}, [2]uint64{1, 2}, [2]uint64{4, 1}, [2]uint64{1, 1}))
	want := fdsOf(3, [2]uint64{1, 1}, [2]uint64{1, 2}, [2]uint64{4, 1})
	assert.Equal(t, want, got)
}

func TestMinimizeLeft(t *testing.T) {
	// ABC -> D reduces to AC -> D: C determines B, so B is redundant (the
	// single-result reduction keeps the first reduction it finds).
	fds := fdsOf(4, [2]uint64{7, 8}, [2]uint64{2, 4}, [2]uint64{4, 2})
	got := MinimizeLeft(Canonical(fds))
	want := fdsOf(4, [2]uint64{2, 4}, [2]uint64{4, 2}, [2]uint64{5, 8})
	assert.Equal(t, want, got)
}

func TestMinimizeRight(t *testing.T) {
	// A -> C follows from A -> B, B -> C.
	fds := fdsOf(3, [2]uint64{1, 2}, [2]uint64{2, 4}, [2]uint64{1, 4})
	got := MinimizeRight(fds)
	want := fdsOf(3, [2]uint64{1, 2}, [2]uint64{2, 4})
	assert.Equal(t, want, got)
}

func TestMinimizeRightDuplicates(t *testing.T) {
	// Redundancy is probed per slot, so one copy of a duplicated FD
	// survives and the other is dropped.
	fds := fdsOf(3, [2]uint64{1, 2}, [2]uint64{1, 2})
	got := MinimizeRight(fds)
	want := fdsOf(3, [2]uint64{1, 2})
	assert.Equal(t, want, got)
}

func TestMinimalCover(t *testing.T) {
	fds := fdsOf(4, [2]uint64{7, 8}, [2]uint64{2, 4}, [2]uint64{4, 2})
	got := MinimalCover(fds)
	want := fdsOf(4, [2]uint64{2, 4}, [2]uint64{4, 2}, [2]uint64{5, 8})
	assert.Equal(t, want, got)
}

func TestMinimalCovers(t *testing.T) {
	// ABC -> D, B -> C, C -> B admits exactly two minimal covers,
	// replacing ABC with AB or with AC.
	fds := fdsOf(4, [2]uint64{7, 8}, [2]uint64{2, 4}, [2]uint64{4, 2})
	got := MinimalCovers(fds)
	want := [][]FD{
		fdsOf(4, [2]uint64{2, 4}, [2]uint64{3, 8}, [2]uint64{4, 2}),
		fdsOf(4, [2]uint64{2, 4}, [2]uint64{4, 2}, [2]uint64{5, 8}),
	}
	assert.Equal(t, want, got)
}

func TestMinimizeRightAllAntichain(t *testing.T) {
	// A -> B, B -> C, A -> C: dropping A -> C is the only valid removal,
	// and keeping it must not survive as a separate non-minimal variant.
	fds := fdsOf(3, [2]uint64{1, 2}, [2]uint64{2, 4}, [2]uint64{1, 4})
	got := MinimizeRightAll(fds)
	want := [][]FD{fdsOf(3, [2]uint64{1, 2}, [2]uint64{2, 4})}
	assert.Equal(t, want, got)
}

func TestMinimizeRightAllForks(t *testing.T) {
	// A -> B, B -> A, A -> C, B -> C: either of the two -> C dependencies
	// is redundant given the other, but not both at once.
	fds := fdsOf(3, [2]uint64{1, 2}, [2]uint64{2, 1}, [2]uint64{1, 4}, [2]uint64{2, 4})
	got := MinimizeRightAll(fds)
	want := [][]FD{
		fdsOf(3, [2]uint64{1, 2}, [2]uint64{1, 4}, [2]uint64{2, 1}),
		fdsOf(3, [2]uint64{1, 2}, [2]uint64{2, 1}, [2]uint64{2, 4}),
	}
	assert.Equal(t, want, got)
}

func TestAllMinimalCoversOfImpliedSet(t *testing.T) {
	// A -> B over {A, B}: the implied dependency set still has exactly one
	// minimal cover, A -> B itself.
	got := AllMinimalCovers(2, fdsOf(2, [2]uint64{1, 2}))
	want := [][]FD{fdsOf(2, [2]uint64{1, 2})}
	assert.Equal(t, want, got)

	// A <-> B: the implied set admits both orientations as covers.
	got = AllMinimalCovers(2, fdsOf(2, [2]uint64{1, 2}, [2]uint64{2, 1}))
	want = [][]FD{fdsOf(2, [2]uint64{1, 2}, [2]uint64{2, 1})}
	assert.Equal(t, want, got)
}

// equivalent reports whether f and c imply the same closure for every
// subset of an n attribute universe.
func equivalent(n int, f, c []FD) bool {
	for bits := uint64(0); bits < 1<<n; bits++ {
		x := bitword.FromBits(n, bits)
		if Closure(x, f) != Closure(x, c) {
			return false
		}
	}
	return true
}

func TestCoverProperties(t *testing.T) {
	const n = 4
	rng := xrand.New(xrand.NewSource(3))

	for sample := 0; sample < 60; sample++ {
		fds := randomFDs(rng, n, 1+int(rng.Uint64()%5))

		single := MinimalCover(fds)
		require.True(t, equivalent(n, fds, single),
			"MinimalCover must preserve every closure (fds=%v cover=%v)", fds, single)
		assertMinimal(t, n, single)

		covers := MinimalCovers(fds)
		require.NotEmpty(t, covers)
		for _, c := range covers {
			require.True(t, equivalent(n, fds, c),
				"every enumerated cover must preserve closures (fds=%v cover=%v)", fds, c)
			assertMinimal(t, n, c)
		}
	}
}

// assertMinimal checks the three minimal cover conditions: singleton right
// sides, no clearable left side attribute, no removable dependency.
func assertMinimal(t *testing.T, n int, cover []FD) {
	t.Helper()
	for i, f := range cover {
		assert.Equal(t, 1, f.RHS.PopCount(), "rhs of %v must be a single attribute", f)

		for _, b := range f.LHS.Indices() {
			reduced := append([]FD(nil), cover...)
			reduced[i] = FD{LHS: f.LHS.ClearBit(b), RHS: f.RHS}
			assert.False(t, equivalent(n, cover, reduced),
				"bit %d of %v is redundant in %v", b, f, cover)
		}

		without := append(append([]FD(nil), cover[:i]...), cover[i+1:]...)
		assert.False(t, equivalent(n, cover, without),
			"%v is redundant in %v", f, cover)
	}
}
