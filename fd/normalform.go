package fd

import "github.com/KamiliArsyad/FDSampleRush/bitword"

// Form is a normal form classification, ordered weakest to strongest.
type Form int

const (
	Form1NF Form = iota + 1
	Form2NF
	Form3NF
	FormBCNF
)

func (f Form) String() string {
	switch f {
	case Form1NF:
		return "1NF"
	case Form2NF:
		return "2NF"
	case Form3NF:
		return "3NF"
	case FormBCNF:
		return "BCNF"
	}
	return "unknown"
}

// Classifier evaluates normal form predicates for one schema, computing the
// candidate keys at most once. It is not safe for concurrent use; the free
// functions IsBCNF, Is3NF and Is2NF wrap a throwaway classifier.
type Classifier struct {
	n    int
	fds  []FD
	keys []bitword.Word
}

func NewClassifier(n int, fds []FD) *Classifier {
	return &Classifier{n: n, fds: fds}
}

// Keys returns the schema's candidate keys, computed on first use.
func (c *Classifier) Keys() []bitword.Word {
	if c.keys == nil {
		c.keys = CandidateKeys(c.n, c.fds)
	}
	return c.keys
}

// Prime returns the union of all candidate keys, the prime attributes.
func (c *Classifier) Prime() bitword.Word {
	prime := bitword.New(c.n)
	for _, k := range c.Keys() {
		prime = prime.Or(k)
	}
	return prime
}

// IsBCNF reports whether every non-trivial dependency has a superkey left
// side.
func (c *Classifier) IsBCNF() bool {
	for _, f := range c.fds {
		if !f.Trivial() && !IsSuperkey(f.LHS, c.fds) {
			return false
		}
	}
	return true
}

// Is3NF reports third normal form: a non-trivial dependency violates it
// when its right side contributes a non-prime attribute and its left side
// is not a superkey (no candidate key inside the left side).
func (c *Classifier) Is3NF() bool {
	prime := c.Prime()
	for _, f := range c.fds {
		if f.Trivial() || f.RHS.SubsetOf(prime) {
			continue
		}
		if !c.keyWithin(f.LHS) {
			return false
		}
	}
	return true
}

// Is2NF reports second normal form: a non-trivial dependency violates it
// when a non-prime attribute depends on a proper subset of some candidate
// key (a partial dependency).
func (c *Classifier) Is2NF() bool {
	prime := c.Prime()
	for _, f := range c.fds {
		if f.Trivial() || f.RHS.SubsetOf(prime) {
			continue
		}
		for _, k := range c.Keys() {
			if f.LHS.ProperSubsetOf(k) {
				return false
			}
		}
	}
	return true
}

// Classify returns the strongest form the schema satisfies, using the
// ladder (BCNF implies 3NF implies 2NF) to short-circuit the weaker
// checks.
func (c *Classifier) Classify() Form {
	switch {
	case c.IsBCNF():
		return FormBCNF
	case c.Is3NF():
		return Form3NF
	case c.Is2NF():
		return Form2NF
	}
	return Form1NF
}

func (c *Classifier) keyWithin(lhs bitword.Word) bool {
	for _, k := range c.Keys() {
		if k.SubsetOf(lhs) {
			return true
		}
	}
	return false
}

// IsBCNF reports whether the schema of n attributes with dependencies fds
// is in Boyce-Codd normal form.
func IsBCNF(n int, fds []FD) bool { return NewClassifier(n, fds).IsBCNF() }

// Is3NF reports whether the schema is in third normal form.
func Is3NF(n int, fds []FD) bool { return NewClassifier(n, fds).Is3NF() }

// Is2NF reports whether the schema is in second normal form.
func Is2NF(n int, fds []FD) bool { return NewClassifier(n, fds).Is2NF() }
