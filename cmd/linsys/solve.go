package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/api"
	"github.com/katalvlaran/linsys/chart"
	"github.com/katalvlaran/linsys/console"
	"github.com/katalvlaran/linsys/solver"
)

type solveFlags struct {
	method        string
	a, b          string
	file          string
	output        string
	chart         string
	chartKind     string
	noPivoting    bool
	tolerance     float64
	maxIterations int
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one system given on the command line or in a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.request(cmd)
			if err != nil {
				return err
			}

			return runSolve(a, f, req)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.method, "method", "m", string(solver.MethodGauss), "method: "+methodList())
	fl.StringVar(&f.a, "A", "", `matrix as JSON, e.g. '[[2,1],[1,3]]' (fractions as strings: "1/3")`)
	fl.StringVar(&f.b, "b", "", "right-hand side as JSON, e.g. '[4,7]'")
	fl.StringVarP(&f.file, "file", "f", "", "request file (.json or .yaml) instead of --A/--b")
	fl.StringVarP(&f.output, "output", "o", "text", "output format: text, json, yaml")
	fl.StringVar(&f.chart, "chart", "", "write a convergence chart (iterative methods); .html gives an interactive page")
	fl.StringVar(&f.chartKind, "chart-kind", "values", "chart kind: values or errors")
	fl.BoolVar(&f.noPivoting, "no-pivoting", false, "disable partial pivoting (gauss, gauss-jordan)")
	fl.Float64Var(&f.tolerance, "tolerance", 0, "convergence tolerance (iterative; 0 = configured)")
	fl.IntVar(&f.maxIterations, "max-iterations", 0, "iteration cap (iterative; 0 = configured)")

	return cmd
}

func methodList() string {
	names := make([]string, 0, len(solver.Methods()))
	for _, m := range solver.Methods() {
		names = append(names, string(m))
	}

	return strings.Join(names, ", ")
}

// request builds the api.Request from either --file or --A/--b.
func (f *solveFlags) request(cmd *cobra.Command) (api.Request, error) {
	var req api.Request
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return req, err
		}
		switch strings.ToLower(filepath.Ext(f.file)) {
		case ".yaml", ".yml":
			err = yaml.Unmarshal(data, &req)
		default:
			err = json.Unmarshal(data, &req)
		}
		if err != nil {
			return req, fmt.Errorf("%s: %w", f.file, err)
		}
	} else {
		if f.a == "" || f.b == "" {
			return req, fmt.Errorf("either --file or both --A and --b are required")
		}
		if err := json.Unmarshal([]byte(f.a), &req.A); err != nil {
			return req, fmt.Errorf("--A: %w", err)
		}
		if err := json.Unmarshal([]byte(f.b), &req.B); err != nil {
			return req, fmt.Errorf("--b: %w", err)
		}
	}

	if req.Method == "" || cmd.Flags().Changed("method") {
		req.Method = f.method
	}
	if f.noPivoting {
		off := false
		req.Pivoting = &off
	}
	if f.tolerance > 0 {
		req.Tolerance = &f.tolerance
	}
	if f.maxIterations > 0 {
		req.MaxIterations = &f.maxIterations
	}

	return req, nil
}

func runSolve(a *app, f *solveFlags, req api.Request) error {
	d := a.cfg.Defaults()
	resp, err := api.Solve(req, d)
	if err != nil {
		return err
	}
	a.logger.WithField("method", resp.Method).WithField("n", resp.N).Debug("solved")

	switch f.output {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err = enc.Encode(resp); err == nil {
			err = enc.Close()
		}
	default:
		err = printText(a, resp)
	}
	if err != nil {
		return err
	}

	if f.chart != "" {
		return writeChart(a, f, req)
	}

	return nil
}

func printText(a *app, resp *api.Response) error {
	w := a.stdout
	for i, s := range resp.Steps {
		fmt.Fprintf(w, "Step %d: %s\n%s\n", i+1, s.Operation, s.Description)
	}
	for _, row := range resp.Iterations {
		fmt.Fprintf(w, "iter %d: %v (max error %g)\n", row.Iteration, row.Values, row.MaxError)
	}
	for _, warn := range resp.Warnings {
		fmt.Fprintln(w, "Warning:", warn)
	}
	names := solver.VariableNames(resp.N)
	parts := make([]string, len(resp.Solution.Vector))
	for i, v := range resp.Solution.Vector {
		parts[i] = names[i] + " = " + v
	}
	fmt.Fprintln(w, "Solution:", strings.Join(parts, ", "))
	if resp.Residual != nil {
		fmt.Fprintln(w, "Residual:", resp.Residual.String())
	}
	if resp.Note != "" {
		fmt.Fprintln(w, resp.Note)
	}

	return nil
}

func writeChart(a *app, f *solveFlags, req api.Request) error {
	res, err := api.SolveIterative(req, a.cfg.Defaults())
	if err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(f.chart), ".html") {
		out, err := os.Create(f.chart)
		if err != nil {
			return err
		}
		defer out.Close()
		if err = chart.WriteHTML(out, res, a.cfg.ChartOptions()...); err != nil {
			return err
		}
		a.logger.WithField("path", f.chart).Info("chart page written")

		return out.Close()
	}
	var c *chart.Chart
	if f.chartKind == "errors" {
		c, err = chart.MaxError(res, a.cfg.ChartOptions()...)
	} else {
		c, err = chart.Values(res, a.cfg.ChartOptions()...)
	}
	if err != nil {
		return err
	}
	if err = c.Save(f.chart); err != nil {
		return err
	}
	a.logger.WithField("path", f.chart).Info("chart written")

	return nil
}

func runConsole(a *app) error {
	return console.Run(a.stdin, a.stdout, a.cfg.Defaults())
}

