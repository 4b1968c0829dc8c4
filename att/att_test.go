package att

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KamiliArsyad/FDSampleRush/bitword"
	"github.com/KamiliArsyad/FDSampleRush/fd"
)

func TestNewMapSortsNames(t *testing.T) {
	m, err := NewMap([]string{"C", "A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"A", "B", "C"}, m.Attributes())

	w, err := m.Word("A", "C")
	require.NoError(t, err)
	assert.Equal(t, bitword.FromBits(3, 0b101), w)
}

func TestNewMapErrors(t *testing.T) {
	type args struct {
		names []string
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{"empty list", args{nil}, ErrNoAttributes},
		{"empty name", args{[]string{"A", ""}}, ErrEmptyName},
		{"duplicate", args{[]string{"A", "B", "A"}}, ErrDuplicateName},
		{"too many", args{make65()}, ErrTooManyAttributes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMap(tt.args.names)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewMap() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func make65() []string {
	names := make([]string, 65)
	for i := range names {
		names[i] = string(rune('A' + i%26)) + string(rune('a'+i/26))
	}
	return names
}

func TestCollect(t *testing.T) {
	nfds := []NamedFD{
		{LHS: []string{"B", "A"}, RHS: []string{"C"}},
		{LHS: []string{"C"}, RHS: []string{"D", "A"}},
	}
	m, err := Collect(nfds)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, m.Attributes())
}

func TestWordUnknownAttribute(t *testing.T) {
	m, err := NewMap([]string{"A", "B"})
	require.NoError(t, err)
	_, err = m.Word("A", "X")
	assert.ErrorIs(t, err, ErrUnknownAttribute)
}

func TestFDRoundTrip(t *testing.T) {
	m, err := NewMap([]string{"A", "B", "C", "D", "E"})
	require.NoError(t, err)

	nfds := []NamedFD{
		{LHS: []string{"A", "B"}, RHS: []string{"C", "D", "E"}},
		{LHS: []string{"B"}, RHS: []string{"C"}},
	}
	fds, err := m.FDs(nfds)
	require.NoError(t, err)
	assert.Equal(t, []fd.FD{
		{LHS: bitword.FromBits(5, 3), RHS: bitword.FromBits(5, 28)},
		{LHS: bitword.FromBits(5, 2), RHS: bitword.FromBits(5, 4)},
	}, fds)

	back, err := m.Named(fds)
	require.NoError(t, err)
	assert.Equal(t, nfds, back)
}

func TestNamesLengthMismatch(t *testing.T) {
	m, err := NewMap([]string{"A", "B"})
	require.NoError(t, err)
	_, err = m.Names(bitword.New(3))
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestParseNamedFD(t *testing.T) {
	type want struct {
		nfd NamedFD
		err error
	}
	tests := []struct {
		name string
		in   string
		want want
	}{
		{"simple", "A -> B", want{nfd: NamedFD{LHS: []string{"A"}, RHS: []string{"B"}}}},
		{"lists", " A , B->C,D ", want{nfd: NamedFD{LHS: []string{"A", "B"}, RHS: []string{"C", "D"}}}},
		{"empty lhs", "-> A", want{nfd: NamedFD{RHS: []string{"A"}}}},
		{"no arrow", "A B", want{err: ErrBadFD}},
		{"double arrow", "A -> B -> C", want{err: ErrBadFD}},
		{"no rhs", "A -> ", want{err: ErrBadFD}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNamedFD(tt.in)
			if tt.want.err != nil {
				if !errors.Is(err, tt.want.err) {
					t.Errorf("ParseNamedFD() error = %v, want %v", err, tt.want.err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.nfd, got)
		})
	}
}

func TestParseNamedFDs(t *testing.T) {
	nfds, err := ParseNamedFDs("A,B -> C; B -> C\nC -> B;")
	require.NoError(t, err)
	assert.Equal(t, []NamedFD{
		{LHS: []string{"A", "B"}, RHS: []string{"C"}},
		{LHS: []string{"B"}, RHS: []string{"C"}},
		{LHS: []string{"C"}, RHS: []string{"B"}},
	}, nfds)

	_, err = ParseNamedFDs(" ; ")
	assert.ErrorIs(t, err, ErrBadFD)
}

func TestNamedFDString(t *testing.T) {
	assert.Equal(t, "A,B -> C", NamedFD{LHS: []string{"A", "B"}, RHS: []string{"C"}}.String())
	assert.Equal(t, " -> A", NamedFD{RHS: []string{"A"}}.String())
}
