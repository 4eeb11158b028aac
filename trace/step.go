package trace

import (
	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
)

// Kind tags a Step variant.
type Kind string

// Step kinds.
const (
	KindPivotSwap  Kind = "pivot-swap"
	KindNormalize  Kind = "normalize"
	KindEliminate  Kind = "eliminate"
	KindSubstitute Kind = "substitute"
	KindInfo       Kind = "info"
)

// Pivot identifies the pivot used by a step. Row is 0-based.
type Pivot struct {
	Row   int
	Value rational.Value
}

// Step is one entry of the audit trail. The interface is sealed: only the
// variants declared in this package implement it.
type Step interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Description is a human-readable sentence explaining the step.
	Description() string
	// Operation is the short operation label, e.g. "R2 ← R2 - 1/2·R1".
	Operation() string
	// Record flattens the step into the wire shape.
	Record() Record

	sealed()
}

// PivotSwap records the exchange of rows From and To (0-based) so that the
// largest |value| in Column becomes the pivot.
type PivotSwap struct {
	Column    int
	From, To  int
	Pivot     Pivot
	Augmented *matrix.Dense // [A | b] after the swap
}

// Normalize records row Row being divided by Divisor.
type Normalize struct {
	Row       int
	Divisor   rational.Value
	Augmented *matrix.Dense // [A | b] after the division
}

// Eliminate records Target ← Target − Factor·Source.
//
// Elimination-family solvers fill Augmented; the Thomas sweep, which never
// builds a matrix, fills Diagonal and RHS instead.
type Eliminate struct {
	Target, Source int
	Factor         rational.Value
	Pivot          Pivot
	Augmented      *matrix.Dense
	Diagonal       matrix.Vector
	RHS            matrix.Vector
}

// Substitute records one unknown computed as (RHS − Sum) / Divisor.
// Degenerate is set when Divisor was zero and Value was substituted by 0.
type Substitute struct {
	Symbol     string // "x" or "y"
	Index      int    // 0-based
	RHS        rational.Value
	Sum        rational.Value
	Divisor    rational.Value
	Value      rational.Value
	Degenerate bool
	Vector     matrix.Vector // the partially solved vector after this step
}

// Info is a free-form snapshot: a constructed row of a factor, the finished
// factor, or an advisory.
type Info struct {
	Label  string
	Text   string
	Matrix *matrix.Dense
	Vector matrix.Vector
	Pivot  *Pivot
}

func (PivotSwap) Kind() Kind  { return KindPivotSwap }
func (Normalize) Kind() Kind  { return KindNormalize }
func (Eliminate) Kind() Kind  { return KindEliminate }
func (Substitute) Kind() Kind { return KindSubstitute }
func (Info) Kind() Kind       { return KindInfo }

func (PivotSwap) sealed()  {}
func (Normalize) sealed()  {}
func (Eliminate) sealed()  {}
func (Substitute) sealed() {}
func (Info) sealed()       {}

// freeze returns a copy of s whose snapshots share no memory with the caller.
func freeze(s Step) Step {
	switch v := s.(type) {
	case *PivotSwap:
		return freeze(*v)
	case *Normalize:
		return freeze(*v)
	case *Eliminate:
		return freeze(*v)
	case *Substitute:
		return freeze(*v)
	case *Info:
		return freeze(*v)
	case PivotSwap:
		v.Augmented = cloneDense(v.Augmented)
		return v
	case Normalize:
		v.Augmented = cloneDense(v.Augmented)
		return v
	case Eliminate:
		v.Augmented = cloneDense(v.Augmented)
		v.Diagonal = v.Diagonal.Clone()
		v.RHS = v.RHS.Clone()
		return v
	case Substitute:
		v.Vector = v.Vector.Clone()
		return v
	case Info:
		v.Matrix = cloneDense(v.Matrix)
		v.Vector = v.Vector.Clone()
		if v.Pivot != nil {
			p := *v.Pivot
			v.Pivot = &p
		}
		return v
	}

	return s
}

func cloneDense(m *matrix.Dense) *matrix.Dense {
	if m == nil {
		return nil
	}

	return m.Clone()
}
