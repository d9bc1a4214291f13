// Package twincollapse shrinks a graph and its modular decomposition tree
// in lockstep by merging redundant module leaves into single
// representatives.
//
// The walk is post-order from the root:
//
//   - A Leaf is a no-op.
//   - A Series or Parallel module recurses into its children first. All of
//     its Leaf children are then mutual twins (true under Series, false
//     under Parallel), so one survives and the rest are removed from both
//     structures. A module left with only that survivor is itself
//     retargeted into a Leaf.
//   - A Prime module recurses into every child. If afterwards every child
//     is a Leaf, the module collapses to a single representative:
//     unconditionally at four or fewer children, and for larger modules
//     only when the configured line-graph oracle confirms the quotient is
//     a line graph. Without an oracle, or when the oracle says no, the
//     module is deliberately left untouched.
//
// Graph removals swap-compact while tree ids stay stable, so leaves keep
// naming pre-collapse graph slots during the walk; one
// core.SwapRemoveMap bridges the numbering and a final pass rewrites the
// surviving leaves onto the compacted slots.
//
// Oracle failures are recoverable: the affected module is skipped
// conservatively, the pass completes and leaves a consistent graph/tree
// pair, and the first failure is returned wrapped so the caller may
// inspect or ignore it. Structural impossibilities in the input tree are
// fatal instead.
//
// Collapse decisions are logged through go.uber.org/zap at debug level;
// the default logger is a no-op.
//
// Errors:
//
//	ErrNilInput          - nil graph or tree.
//	ErrTreeContract      - a Series/Parallel module with no children.
//	ErrOracleUnavailable - the oracle process cannot be reached.
//	ErrOracleProtocol    - the oracle reply is not a boolean.
package twincollapse
