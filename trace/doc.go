// Package trace records the ordered, append-only audit trail of a solve.
//
// Every transformation a solver applies is described by one Step. Step is a
// closed tagged variant with one concrete type per kind:
//
//   - PivotSwap  (pivot-swap): two rows exchanged during partial pivoting.
//   - Normalize  (normalize):  a pivot row divided by its pivot.
//   - Eliminate  (eliminate):  row_target -= factor·row_source (or a Thomas sweep update).
//   - Substitute (substitute): one unknown computed during forward/back substitution.
//   - Info       (info):       a snapshot or advisory (a row of L, the final U, ...).
//
// Each step carries only its relevant fields and deep-copies its snapshots,
// so a Recorder's steps are immutable once appended and a reader can replay
// the algorithm's intermediate state at every point. Record flattens any step
// into the uniform wire shape consumed by the HTTP boundary.
package trace
