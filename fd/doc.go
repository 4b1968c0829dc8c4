package fd

/*

# Functional dependency closures, keys, covers and normal forms

This package is the closure/cover engine for relational schema analysis. A
schema is a universe of n attributes (a bitword length) together with a list
of functional dependencies, each an ordered pair of bitword.Word values
L -> R meaning "the attributes L determine the attributes R".

Everything else is derived from two primitives:

  - Closure: the fixpoint of repeatedly firing FDs whose left side is
    already contained in the working set. Closure is monotone
    (X subset Y implies X+ subset Y+) and idempotent ((X+)+ = X+).
  - Subset enumeration: size-ascending, lexicographic by bit index, with
    superset pruning against an accumulating witness set. Trying subsets
    small-to-large and never revisiting a superset of an accepted witness
    makes every accepted witness minimal by construction, so no separate
    minimality pass is ever needed.

On those two, the package builds:

  - CandidateKeys: the antichain of minimal superkeys.
  - MinimalCover: one minimal cover (singleton right sides, no redundant
    left-side attribute, no redundant FD).
  - MinimizeLeftAll / MinimizeRightAll / MinimalCovers: every minimal cover
    of the literal FD set. These are branching searches over full working
    copies ("variants"): whenever an FD admits several incomparable minimal
    reductions, the whole working set forks, because later reductions in
    the same variant must be tested against the earlier ones.
  - SigmaPlusLimited: the reduced generating set of the semantic closure
    (one FD per attribute subset, subsets that contain a discovered key
    pruned). AllMinimalCovers runs the cover search over this set to
    enumerate every minimal cover of the implied dependency set, not just
    of the literal input.
  - Classifier / IsBCNF / Is3NF / Is2NF: normal form predicates over the
    candidate keys.

## Determinism

Results never depend on map iteration order. De-duplication is by the
canonical (LHS.Bits, RHS.Bits) key and every returned FD list is sorted
ascending by that key (Canonical); lists of covers are sorted by size then
lexicographically. Callers comparing covers should still compare as sets of
FDs; the canonical order is a convenience, not part of the contract.

## Cost

Enumerating keys, sigma plus, and all minimal covers is exponential in the
attribute count by nature. The package treats this as a correctness problem,
not a performance one: there is no internal cutoff. Callers needing bounded
latency must bound n or wrap calls with their own wall-clock budget, as the
rush package does.

All functions are pure and all inputs are treated as immutable; concurrent
calls over independent FD sets are safe.

*/
