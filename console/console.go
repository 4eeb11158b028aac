// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linsys/api"
	"github.com/katalvlaran/linsys/rational"
	"github.com/katalvlaran/linsys/solver"
)

// ErrInput is returned when the user's input cannot be used; the message has
// already been printed.
var ErrInput = errors.New("console: invalid input")

// session couples the line reader with the output.
type session struct {
	in  *bufio.Scanner
	out io.Writer
}

// Run executes one interactive solve. It returns ErrInput for unusable
// input (after printing the reason), io.ErrUnexpectedEOF when input ends
// early, and the solver's error when the solve aborts.
func Run(in io.Reader, out io.Writer, d api.Defaults) error {
	s := &session{in: bufio.NewScanner(in), out: out}

	fmt.Fprintln(out, "\nn×n linear system calculator")
	line, err := s.prompt("Size n: ")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 {
		return s.reject("n must be a positive integer")
	}

	fmt.Fprintln(out, "Enter A row by row, values separated by spaces (fractions like 1/3 allowed):")
	rows := make([][]rational.Value, n)
	for i := 0; i < n; i++ {
		if rows[i], err = s.values(fmt.Sprintf("Row %d: ", i+1), n, "each row must have n values"); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "Enter b, values separated by spaces:")
	b, err := s.values("b: ", n, "b must have n values")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(solver.Methods()))
	for _, m := range solver.Methods() {
		names = append(names, string(m))
	}
	fmt.Fprintf(out, "Available methods: %s\n", strings.Join(names, ", "))
	line, err = s.prompt("Method: ")
	if err != nil {
		return err
	}
	method, err := solver.ParseMethod(line)
	if err != nil {
		return s.reject("unknown method")
	}

	req := api.Request{Method: string(method), A: rows, B: b}
	if method == solver.MethodGauss || method == solver.MethodGaussJordan {
		yes, err := s.confirm("Use partial pivoting? (y/n): ")
		if err != nil {
			return err
		}
		req.Pivoting = &yes
	}
	verbose, err := s.confirm("Show detailed steps? (y/n): ")
	if err != nil {
		return err
	}

	resp, err := api.Solve(req, d)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return err
	}
	s.print(resp, verbose)

	return nil
}

func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(s.out)
		return "", io.ErrUnexpectedEOF
	}

	return s.in.Text(), nil
}

func (s *session) values(label string, n int, lengthMsg string) ([]rational.Value, error) {
	line, err := s.prompt(label)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, s.reject(lengthMsg)
	}
	out := make([]rational.Value, n)
	for i, f := range fields {
		if out[i], err = rational.Parse(f); err != nil {
			return nil, s.reject(fmt.Sprintf("%q is not a number", f))
		}
	}

	return out, nil
}

func (s *session) confirm(label string) (bool, error) {
	line, err := s.prompt(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	}

	return false, nil
}

func (s *session) reject(msg string) error {
	fmt.Fprintln(s.out, "Error:", msg+".")
	return fmt.Errorf("%w: %s", ErrInput, msg)
}

func (s *session) print(resp *api.Response, verbose bool) {
	if verbose {
		if len(resp.Steps) > 0 {
			fmt.Fprintln(s.out, stepsText(resp))
		}
		if len(resp.Iterations) > 0 {
			fmt.Fprint(s.out, tableText(resp))
		}
	}
	if resp.Factors != nil {
		fmt.Fprintln(s.out, "L:", gridText(resp.Factors.L))
		fmt.Fprintln(s.out, "U:", gridText(resp.Factors.U))
	}
	for _, w := range resp.Warnings {
		fmt.Fprintln(s.out, "Warning:", w)
	}

	parts := make([]string, len(resp.Solution.Vector))
	names := solver.VariableNames(resp.N)
	for i, v := range resp.Solution.Vector {
		parts[i] = names[i] + " = " + v
	}
	fmt.Fprintln(s.out, "\nSolution:", strings.Join(parts, ", "))
	if resp.Residual != nil {
		fmt.Fprintln(s.out, "Residual:", resp.Residual)
	}
	if resp.Approximate {
		fmt.Fprintln(s.out, "Note: square roots were approximated; the solution is not exact.")
	}
	if resp.SpectralRadius != nil {
		fmt.Fprintf(s.out, "Spectral radius of the iteration matrix: %.4g\n", *resp.SpectralRadius)
	}
	if resp.Note != "" {
		fmt.Fprintln(s.out, resp.Note)
	}
}

func stepsText(resp *api.Response) string {
	var sb strings.Builder
	for i, r := range resp.Steps {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "Step %d: %s\n%s", i+1, r.Operation, r.Description)
		if r.Matrix != nil {
			fmt.Fprintf(&sb, "\n%s", gridText(r.Matrix))
		}
	}

	return sb.String()
}

func tableText(resp *api.Response) string {
	var sb strings.Builder
	names := solver.VariableNames(resp.N)
	fmt.Fprintf(&sb, "%-5s", "iter")
	for _, n := range names {
		fmt.Fprintf(&sb, " %12s", n)
	}
	fmt.Fprintf(&sb, " %12s\n", "max error")
	for _, row := range resp.Iterations {
		fmt.Fprintf(&sb, "%-5d", row.Iteration)
		for _, v := range row.Values {
			fmt.Fprintf(&sb, " %12s", formatFloat(v))
		}
		fmt.Fprintf(&sb, " %12s\n", formatFloat(row.MaxError))
	}

	return sb.String()
}

func gridText(rows [][]string) string {
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = "[" + strings.Join(r, ", ") + "]"
	}

	return "[" + strings.Join(parts, ",\n ") + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
