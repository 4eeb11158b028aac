package trace

import (
	"fmt"
	"strings"
)

// Recorder accumulates steps in order. It is append-only: there is no way to
// modify or remove a step once recorded. A Recorder belongs to exactly one
// solve and is not safe for concurrent use.
type Recorder struct {
	steps []Step
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Append freezes s (deep-copying its snapshots) and adds it to the trail.
// A nil step is ignored.
func (r *Recorder) Append(s Step) {
	if s == nil {
		return
	}
	r.steps = append(r.steps, freeze(s))
}

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded steps in order. The returned slice is a copy;
// the steps themselves are immutable values.
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)

	return out
}

// Records returns the wire form of every recorded step.
func (r *Recorder) Records() []Record { return Records(r.steps) }

// Text renders the numbered, human-readable trace.
func (r *Recorder) Text() string { return Text(r.steps) }

// Records flattens steps into their wire form, preserving order.
func Records(steps []Step) []Record {
	out := make([]Record, len(steps))
	for i, s := range steps {
		out[i] = s.Record()
	}

	return out
}

// Text renders steps as
//
//	Step 1: R1 ↔ R2
//	Augmented matrix now: [[...]]
//
// with one blank-line-free block per step. Steps without a matrix show their
// vectors or their description instead.
func Text(steps []Step) string {
	var sb strings.Builder
	for i, s := range steps {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Step %d: %s", i+1, s.Operation())
		switch v := s.(type) {
		case PivotSwap:
			fmt.Fprintf(&sb, "\nAugmented matrix now: %s", v.Augmented)
		case Normalize:
			fmt.Fprintf(&sb, "\nAugmented matrix now: %s", v.Augmented)
		case Eliminate:
			if v.sweep() {
				fmt.Fprintf(&sb, "\nVector b now: %s\nVector d now: %s", v.Diagonal, v.RHS)
			} else {
				fmt.Fprintf(&sb, "\nAugmented matrix now: %s", v.Augmented)
			}
		case Substitute:
			fmt.Fprintf(&sb, "\n%s", v.Description())
		case Info:
			if v.Text != "" {
				fmt.Fprintf(&sb, "\n%s", v.Text)
			}
			if v.Matrix != nil {
				fmt.Fprintf(&sb, "\n%s", v.Matrix)
			}
			if v.Vector != nil {
				fmt.Fprintf(&sb, "\n%s", v.Vector)
			}
		}
	}

	return sb.String()
}
