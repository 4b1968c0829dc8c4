package bitword

/*

# Fixed-width attribute sets

This package provides the Word value: an attribute set over a relation schema
of n attributes, represented as n bit positions packed into a single uint64.
Attribute i of the schema is bit i of the word, bit 0 being the least
significant.

Words are immutable values. Every operation returns a new Word; nothing is
mutated in place, so Words can be freely shared, stored in maps (Word is
comparable) and passed across goroutines.

The closure and cover algorithms built on top of this package are exponential
in the number of attributes, so the 64 bit ceiling is never the binding
constraint in practice; enumerating all minimal covers over even 20
attributes is already intractable.

## Contract violations

Bit positions outside [0, Len) and combinations of words with differing
lengths are programming errors, not recoverable conditions. They panic with
an error wrapping ErrBitRange or ErrLengthMismatch so tests can assert on
them precisely. Packages that accept untrusted input are expected to
validate before constructing Words.

*/
