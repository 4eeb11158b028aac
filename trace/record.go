package trace

import (
	"fmt"

	"github.com/katalvlaran/linsys/matrix"
	"github.com/katalvlaran/linsys/rational"
)

// PivotRecord is the wire form of a Pivot; Row is 1-based for display.
type PivotRecord struct {
	Row   int            `json:"row" yaml:"row"`
	Value rational.Value `json:"value" yaml:"value"`
}

// Record is the uniform, serializable shape of any Step. Matrix, Vector and
// Pivot are nil when the step has no such snapshot.
type Record struct {
	Kind        Kind         `json:"kind" yaml:"kind"`
	Description string       `json:"description" yaml:"description"`
	Matrix      [][]string   `json:"matrix" yaml:"matrix"`
	Vector      []string     `json:"vector" yaml:"vector"`
	RHS         []string     `json:"rhs,omitempty" yaml:"rhs,omitempty"`
	Pivot       *PivotRecord `json:"pivot" yaml:"pivot"`
	Operation   string       `json:"operation" yaml:"operation"`
}

func pivotRecord(p Pivot) *PivotRecord {
	return &PivotRecord{Row: p.Row + 1, Value: p.Value}
}

func denseStrings(m *matrix.Dense) [][]string {
	if m == nil {
		return nil
	}

	return m.Strings()
}

func vectorStrings(v matrix.Vector) []string {
	if v == nil {
		return nil
	}

	return v.Strings()
}

// lastColumn extracts b from an augmented [A | b] snapshot.
func lastColumn(m *matrix.Dense) []string {
	if m == nil {
		return nil
	}
	col, err := m.Col(m.Cols() - 1)
	if err != nil {
		return nil
	}

	return col.Strings()
}

// ---------- PivotSwap ----------

// Operation returns e.g. "R1 ↔ R2".
func (s PivotSwap) Operation() string {
	return fmt.Sprintf("R%d ↔ R%d", s.To+1, s.From+1)
}

// Description explains why the rows were swapped.
func (s PivotSwap) Description() string {
	return fmt.Sprintf("Swap R%d and R%d: the largest absolute value in column %d is %s.",
		s.To+1, s.From+1, s.Column+1, s.Pivot.Value)
}

// Record flattens the step.
func (s PivotSwap) Record() Record {
	return Record{
		Kind:        KindPivotSwap,
		Description: s.Description(),
		Matrix:      denseStrings(s.Augmented),
		Vector:      lastColumn(s.Augmented),
		Pivot:       pivotRecord(s.Pivot),
		Operation:   s.Operation(),
	}
}

// ---------- Normalize ----------

// Operation returns e.g. "R1 ← R1 / 2".
func (s Normalize) Operation() string {
	return fmt.Sprintf("R%d ← R%d / %s", s.Row+1, s.Row+1, s.Divisor)
}

// Description states the normalization.
func (s Normalize) Description() string {
	return fmt.Sprintf("Divide R%d by its pivot %s so the pivot becomes 1.", s.Row+1, s.Divisor)
}

// Record flattens the step.
func (s Normalize) Record() Record {
	return Record{
		Kind:        KindNormalize,
		Description: s.Description(),
		Matrix:      denseStrings(s.Augmented),
		Vector:      lastColumn(s.Augmented),
		Pivot:       pivotRecord(Pivot{Row: s.Row, Value: s.Divisor}),
		Operation:   s.Operation(),
	}
}

// ---------- Eliminate ----------

// sweep reports whether the step comes from a Thomas forward sweep.
func (s Eliminate) sweep() bool { return s.Augmented == nil }

// Operation returns "R2 ← R2 - 1/2·R1", or for a tridiagonal sweep
// "b[1] ← b[1] - 1/4·c[0]".
func (s Eliminate) Operation() string {
	if s.sweep() {
		return fmt.Sprintf("b[%d] ← b[%d] - %s·c[%d]", s.Target, s.Target, s.Factor, s.Source)
	}

	return fmt.Sprintf("R%d ← R%d - %s·R%d", s.Target+1, s.Target+1, s.Factor, s.Source+1)
}

// Description explains the row combination.
func (s Eliminate) Description() string {
	if s.sweep() {
		return fmt.Sprintf("Row %d: b[%d] ← b[%d] - %s·c[%d] and d[%d] ← d[%d] - %s·d[%d].",
			s.Target+1, s.Target, s.Target, s.Factor, s.Source, s.Target, s.Target, s.Factor, s.Source)
	}

	return fmt.Sprintf("Subtract %s times R%d from R%d to eliminate its entry in column %d.",
		s.Factor, s.Source+1, s.Target+1, s.Pivot.Row+1)
}

// Record flattens the step.
func (s Eliminate) Record() Record {
	r := Record{
		Kind:        KindEliminate,
		Description: s.Description(),
		Pivot:       pivotRecord(s.Pivot),
		Operation:   s.Operation(),
	}
	if s.sweep() {
		r.Vector = vectorStrings(s.Diagonal)
		r.RHS = vectorStrings(s.RHS)
	} else {
		r.Matrix = denseStrings(s.Augmented)
		r.Vector = lastColumn(s.Augmented)
	}

	return r
}

// ---------- Substitute ----------

// Operation returns the unknown, e.g. "x[2]".
func (s Substitute) Operation() string {
	return fmt.Sprintf("%s[%d]", s.Symbol, s.Index+1)
}

// Description shows the substitution formula with its numbers.
func (s Substitute) Description() string {
	if s.Degenerate {
		return fmt.Sprintf("%s: divisor is 0 (singular matrix), %s[%d] set to 0.",
			s.direction(), s.Symbol, s.Index+1)
	}

	return fmt.Sprintf("%s: %s[%d] = (%s - %s) / %s = %s",
		s.direction(), s.Symbol, s.Index+1, s.RHS, s.Sum, s.Divisor, s.Value)
}

func (s Substitute) direction() string {
	if s.Symbol == "y" {
		return "Forward substitution"
	}

	return "Back substitution"
}

// Record flattens the step.
func (s Substitute) Record() Record {
	return Record{
		Kind:        KindSubstitute,
		Description: s.Description(),
		Vector:      vectorStrings(s.Vector),
		Pivot:       pivotRecord(Pivot{Row: s.Index, Value: s.Divisor}),
		Operation:   s.Operation(),
	}
}

// ---------- Info ----------

// Operation returns the label.
func (s Info) Operation() string { return s.Label }

// Description returns the free text.
func (s Info) Description() string { return s.Text }

// Record flattens the step.
func (s Info) Record() Record {
	r := Record{
		Kind:        KindInfo,
		Description: s.Text,
		Matrix:      denseStrings(s.Matrix),
		Vector:      vectorStrings(s.Vector),
		Operation:   s.Label,
	}
	if s.Pivot != nil {
		r.Pivot = pivotRecord(*s.Pivot)
	}

	return r
}
