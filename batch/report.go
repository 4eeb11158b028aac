// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsys/api"
)

// reportEntry is the YAML shape of one outcome.
type reportEntry struct {
	Name      string            `yaml:"name"`
	Method    string            `yaml:"method,omitempty"`
	Solution  map[string]string `yaml:"solution,omitempty"`
	Residual  string            `yaml:"residual,omitempty"`
	Warnings  []string          `yaml:"warnings,omitempty"`
	Converged *bool             `yaml:"converged,omitempty"`
	Note      string            `yaml:"note,omitempty"`
	Error     string            `yaml:"error,omitempty"`
	Millis    float64           `yaml:"millis"`
}

// WriteReport encodes outcomes as a YAML document {results: [...]}. With
// full set, each entry carries the complete api.Response instead of the
// summary.
func WriteReport(w io.Writer, outcomes []Outcome, full bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	var doc interface{}
	if full {
		type fullEntry struct {
			Name     string        `yaml:"name"`
			Response *api.Response `yaml:"response,omitempty"`
			Error    string        `yaml:"error,omitempty"`
		}
		entries := make([]fullEntry, len(outcomes))
		for i, o := range outcomes {
			entries[i] = fullEntry{Name: o.Name, Response: o.Response}
			if o.Err != nil {
				entries[i].Error = o.Err.Error()
			}
		}
		doc = map[string]interface{}{"results": entries}
	} else {
		entries := make([]reportEntry, len(outcomes))
		for i, o := range outcomes {
			entries[i] = summarize(o)
		}
		doc = map[string]interface{}{"results": entries}
	}

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("batch: report: %w", err)
	}

	return enc.Close()
}

func summarize(o Outcome) reportEntry {
	e := reportEntry{Name: o.Name, Millis: float64(o.Duration.Microseconds()) / 1000}
	if o.Err != nil {
		e.Error = o.Err.Error()
		return e
	}
	r := o.Response
	e.Method = r.Method
	e.Solution = r.Solution.Variables
	e.Warnings = r.Warnings
	e.Converged = r.Converged
	e.Note = r.Note
	if r.Residual != nil {
		e.Residual = r.Residual.String()
	}

	return e
}
