// Package att maps human-readable attribute names onto the dense bit
// positions the fd package computes over. Names are sorted and assigned
// positions 0..n-1; the core only ever sees bitword values of a fixed
// declared length.
package att

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/KamiliArsyad/FDSampleRush/bitword"
	"github.com/KamiliArsyad/FDSampleRush/fd"
)

var (
	ErrNoAttributes      = errors.New("att: no attributes")
	ErrEmptyName         = errors.New("att: empty attribute name")
	ErrDuplicateName     = errors.New("att: duplicate attribute name")
	ErrTooManyAttributes = errors.New("att: too many attributes")
	ErrUnknownAttribute  = errors.New("att: unknown attribute")
	ErrLengthMismatch    = errors.New("att: word length does not match schema")
)

// Map is an immutable assignment of attribute names to bit positions.
type Map struct {
	names []string
	pos   map[string]int
}

// NewMap builds a Map over the given names. Names are sorted ascending, so
// the bit assignment depends only on the name set, not on declaration
// order.
func NewMap(names []string) (*Map, error) {
	if len(names) == 0 {
		return nil, ErrNoAttributes
	}
	if len(names) > bitword.MaxBits {
		return nil, errors.Wrapf(ErrTooManyAttributes, "%d > %d", len(names), bitword.MaxBits)
	}

	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	pos := make(map[string]int, len(sorted))
	for i, name := range sorted {
		if name == "" {
			return nil, ErrEmptyName
		}
		if _, ok := pos[name]; ok {
			return nil, errors.Wrapf(ErrDuplicateName, "%q", name)
		}
		pos[name] = i
	}
	return &Map{names: sorted, pos: pos}, nil
}

// Collect builds a Map from the distinct attribute names mentioned by nfds.
func Collect(nfds []NamedFD) (*Map, error) {
	seen := make(map[string]bool)
	var names []string
	for _, nfd := range nfds {
		for _, side := range [][]string{nfd.LHS, nfd.RHS} {
			for _, name := range side {
				if !seen[name] {
					seen[name] = true
					names = append(names, name)
				}
			}
		}
	}
	return NewMap(names)
}

// Len is the number of attributes, the universe size for the fd package.
func (m *Map) Len() int { return len(m.names) }

// Attributes returns the attribute names in bit position order.
func (m *Map) Attributes() []string {
	return append([]string(nil), m.names...)
}

// Word converts attribute names to their set representation.
func (m *Map) Word(names ...string) (bitword.Word, error) {
	w := bitword.New(len(m.names))
	for _, name := range names {
		i, ok := m.pos[name]
		if !ok {
			return bitword.Word{}, errors.Wrapf(ErrUnknownAttribute, "%q", name)
		}
		w = w.SetBit(i, true)
	}
	return w, nil
}

// Names converts a set back to attribute names, ascending by bit position.
func (m *Map) Names(w bitword.Word) ([]string, error) {
	if w.Len() != len(m.names) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d != %d", w.Len(), len(m.names))
	}
	out := make([]string, 0, w.PopCount())
	for _, i := range w.Indices() {
		out = append(out, m.names[i])
	}
	return out, nil
}

// FD converts one named dependency.
func (m *Map) FD(nfd NamedFD) (fd.FD, error) {
	lhs, err := m.Word(nfd.LHS...)
	if err != nil {
		return fd.FD{}, err
	}
	rhs, err := m.Word(nfd.RHS...)
	if err != nil {
		return fd.FD{}, err
	}
	return fd.FD{LHS: lhs, RHS: rhs}, nil
}

// FDs converts a list of named dependencies.
func (m *Map) FDs(nfds []NamedFD) ([]fd.FD, error) {
	out := make([]fd.FD, len(nfds))
	for i, nfd := range nfds {
		f, err := m.FD(nfd)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// NamedFD converts one dependency back to names.
func (m *Map) NamedFD(f fd.FD) (NamedFD, error) {
	lhs, err := m.Names(f.LHS)
	if err != nil {
		return NamedFD{}, err
	}
	rhs, err := m.Names(f.RHS)
	if err != nil {
		return NamedFD{}, err
	}
	return NamedFD{LHS: lhs, RHS: rhs}, nil
}

// Named converts a list of dependencies back to names.
func (m *Map) Named(fds []fd.FD) ([]NamedFD, error) {
	out := make([]NamedFD, len(fds))
	for i, f := range fds {
		nfd, err := m.NamedFD(f)
		if err != nil {
			return nil, err
		}
		out[i] = nfd
	}
	return out, nil
}
