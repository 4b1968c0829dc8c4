package att

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrBadFD = errors.New("att: malformed functional dependency")

// NamedFD is a functional dependency over attribute names, the exchange
// form between user input and the bitset core.
type NamedFD struct {
	LHS []string
	RHS []string
}

func (n NamedFD) String() string {
	return strings.Join(n.LHS, ",") + " -> " + strings.Join(n.RHS, ",")
}

// ParseNamedFD parses "A,B -> C,D". Whitespace around names is ignored.
// The left side may be empty ("-> A" is a valid degenerate dependency); at
// least one right side attribute is required.
func ParseNamedFD(s string) (NamedFD, error) {
	lhs, rhs, ok := strings.Cut(s, "->")
	if !ok {
		return NamedFD{}, errors.Wrapf(ErrBadFD, "missing '->' in %q", s)
	}
	if strings.Contains(rhs, "->") {
		return NamedFD{}, errors.Wrapf(ErrBadFD, "multiple '->' in %q", s)
	}
	nfd := NamedFD{LHS: splitNames(lhs), RHS: splitNames(rhs)}
	if len(nfd.RHS) == 0 {
		return NamedFD{}, errors.Wrapf(ErrBadFD, "no right side attributes in %q", s)
	}
	return nfd, nil
}

// ParseNamedFDs parses a list of dependencies separated by ';' or newlines,
// eg "A,B -> C; C -> D". Empty segments are skipped.
func ParseNamedFDs(s string) ([]NamedFD, error) {
	var out []NamedFD
	for _, seg := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		if strings.TrimSpace(seg) == "" {
			continue
		}
		nfd, err := ParseNamedFD(seg)
		if err != nil {
			return nil, err
		}
		out = append(out, nfd)
	}
	if len(out) == 0 {
		return nil, errors.Wrapf(ErrBadFD, "no dependencies in %q", s)
	}
	return out, nil
}

func splitNames(s string) []string {
	var out []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
